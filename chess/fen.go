package chess

import (
	"strconv"
	"strings"

	"github.com/lgbarn/pgn-core/pgnerror"
)

var fenPieceLetters = map[byte]PieceKind{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// LoadFEN resets b to the position described by the FEN record fen:
// "<board> <side> <castling> <ep> <halfmove> <fullmove>". The last two
// fields are optional. A halfmove clock, when present, must be an integer
// but is not stored: the history's fifty-move count starts at 0. The
// fullmove number is ignored.
func (b *Board) LoadFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return pgnerror.Wrapf(pgnerror.ErrInvalidFEN, "expected at least 4 fields, got %d", len(fields))
	}

	for i := range b.Pieces {
		b.Pieces[i] = EmptySquare
	}
	for i := range b.PieceCounts {
		b.PieceCounts[i] = 0
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return pgnerror.Wrapf(pgnerror.ErrInvalidFEN, "expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rankIndex := 7 - i
		file := 7 // FEN ranks run a..h; our file index runs 7('a')..0('h')
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file -= int(c - '0')
				continue
			}
			kind, ok := fenPieceLetters[toLowerASCII(c)]
			if !ok {
				return pgnerror.Wrapf(pgnerror.ErrInvalidFEN, "unrecognized piece letter %q", c)
			}
			color := White
			if c >= 'a' && c <= 'z' {
				color = Black
			}
			if file < 0 {
				return pgnerror.Wrapf(pgnerror.ErrInvalidFEN, "rank %q overflows 8 files", rankStr)
			}
			sq := SquareFromFileRank(file, rankIndex)
			b.place(sq, MakePiece(color, kind))
			if kind == King {
				b.SetKingSquare(color, sq)
			}
			file--
		}
	}
	b.PieceCounts[EmptySquare] = 64 - countNonEmpty(b)

	switch fields[1] {
	case "w":
		b.ToMove = White
	case "b":
		b.ToMove = Black
	default:
		return pgnerror.Wrapf(pgnerror.ErrInvalidFEN, "invalid side to move %q", fields[1])
	}

	b.RookMoveCount = [4]int{1, 1, 1, 1}
	b.KingMoveCount = [2]int{0, 0}
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				b.RookMoveCount[WhiteKingSide] = 0
			case 'Q':
				b.RookMoveCount[WhiteQueenSide] = 0
			case 'k':
				b.RookMoveCount[BlackKingSide] = 0
			case 'q':
				b.RookMoveCount[BlackQueenSide] = 0
			}
		}
	}
	b.Castled = [2]bool{}

	b.EPTarget = NoSquare
	b.epStack = nil
	if fields[3] != "-" {
		sq := SquareFromAlgebraic(fields[3])
		if sq < 0 {
			return pgnerror.Wrapf(pgnerror.ErrInvalidFEN, "invalid en-passant square %q", fields[3])
		}
		b.EPTarget = sq
	}

	if len(fields) >= 5 {
		if _, err := strconv.Atoi(fields[4]); err != nil {
			return pgnerror.Wrapf(pgnerror.ErrInvalidFEN, "invalid halfmove clock %q", fields[4])
		}
	}

	b.Zobrist = ComputeZobrist(b)
	b.History.Reset(b)
	return nil
}

func countNonEmpty(b *Board) int {
	total := 0
	for kind, n := range b.PieceCounts {
		if PieceKind(Piece(kind)&^blackBit) != None {
			total += n
		}
	}
	return total
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
