package pgn

import (
	"strings"

	"github.com/lgbarn/pgn-core/chess"
	"github.com/lgbarn/pgn-core/pgnerror"
)

// ResolveSAN matches SAN move text against the legal moves available on
// board (as produced by a MoveGenerator for board.ToMove) and returns the
// single move it identifies. It returns ErrSanIllegal if text does not
// match any legal move, or ErrSanAmbiguous if it matches more than one
// (meaning the disambiguation text in text was insufficient, or the move
// generator has a bug).
func ResolveSAN(legalMoves []chess.Move, board *chess.Board, text string) (chess.Move, error) {
	s := strings.TrimRight(text, "+#!?")

	switch s {
	case "O-O", "0-0":
		return findCastle(legalMoves, 1)
	case "O-O-O", "0-0-0":
		return findCastle(legalMoves, 5)
	}

	promo := chess.None
	if idx := strings.IndexByte(s, '='); idx >= 0 && idx+1 < len(s) {
		promo = promotionLetterKind(s[idx+1])
		s = s[:idx]
	}

	pieceKind := chess.Pawn
	if len(s) > 0 {
		if k, ok := pieceLetterKind(s[0]); ok {
			pieceKind = k
			s = s[1:]
		}
	}
	s = strings.ReplaceAll(s, "x", "")

	if len(s) < 2 {
		return chess.Move{}, pgnerror.Wrapf(pgnerror.ErrSanIllegal, "malformed move text %q", text)
	}
	destStr := s[len(s)-2:]
	disambig := s[:len(s)-2]
	dest := chess.SquareFromAlgebraic(destStr)
	if dest < 0 {
		return chess.Move{}, pgnerror.Wrapf(pgnerror.ErrSanIllegal, "invalid destination square in %q", text)
	}

	originFile, originRank := -1, -1
	for i := 0; i < len(disambig); i++ {
		c := disambig[i]
		switch {
		case c >= 'a' && c <= 'h':
			originFile = 7 - int(c-'a')
		case c >= '1' && c <= '8':
			originRank = int(c - '1')
		}
	}

	var matches []chess.Move
	for _, m := range legalMoves {
		if m.Dest != dest {
			continue
		}
		if promo != chess.None {
			if !m.Kind.IsPromotion() || m.Kind.PromotedKind() != promo {
				continue
			}
		} else if m.Kind.IsPromotion() {
			continue
		}
		if board.Get(m.Origin).Kind() != pieceKind {
			continue
		}
		if originFile >= 0 && m.Origin.File() != originFile {
			continue
		}
		if originRank >= 0 && m.Origin.RankIndex() != originRank {
			continue
		}
		matches = append(matches, m)
	}

	switch len(matches) {
	case 0:
		return chess.Move{}, pgnerror.Wrapf(pgnerror.ErrSanIllegal, "no legal move matches %q", text)
	case 1:
		return matches[0], nil
	default:
		return chess.Move{}, pgnerror.Wrapf(pgnerror.ErrSanAmbiguous, "move text %q matches %d legal moves", text, len(matches))
	}
}

func findCastle(legalMoves []chess.Move, destFile int) (chess.Move, error) {
	for _, m := range legalMoves {
		if m.Kind == chess.Castle && m.Dest.File() == destFile {
			return m, nil
		}
	}
	return chess.Move{}, pgnerror.Wrap(pgnerror.ErrSanIllegal, "castling is not legal here")
}

func pieceLetterKind(c byte) (chess.PieceKind, bool) {
	switch c {
	case 'N':
		return chess.Knight, true
	case 'B':
		return chess.Bishop, true
	case 'R':
		return chess.Rook, true
	case 'Q':
		return chess.Queen, true
	case 'K':
		return chess.King, true
	default:
		return chess.None, false
	}
}

func promotionLetterKind(c byte) chess.PieceKind {
	switch c {
	case 'Q':
		return chess.Queen
	case 'R':
		return chess.Rook
	case 'B':
		return chess.Bishop
	case 'N':
		return chess.Knight
	default:
		return chess.None
	}
}
