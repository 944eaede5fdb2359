// Package engine generates legal moves, applies and unmakes them, and
// detects check, built on the chess package's 0-63 square model and the
// precomputed movetables rays instead of walking file/rank offsets on
// every call.
package engine

import (
	"github.com/lgbarn/pgn-core/chess"
	"github.com/lgbarn/pgn-core/movetables"
)

// IsInCheck reports whether c's king, sitting at kingSquare, is attacked by
// the opposing color on b.
func IsInCheck(b *chess.Board, c chess.Color, kingSquare chess.Square) bool {
	return IsSquareAttacked(b, kingSquare, c.Opposite())
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by.
func IsSquareAttacked(b *chess.Board, sq chess.Square, by chess.Color) bool {
	t := movetables.Default

	var pawnAttackers []chess.Square
	if by == chess.White {
		pawnAttackers = t.WhitePawnAttackers[sq]
	} else {
		pawnAttackers = t.BlackPawnAttackers[sq]
	}
	for _, from := range pawnAttackers {
		p := b.Get(from)
		if p.Kind() == chess.Pawn && p.Color() == by {
			return true
		}
	}

	for _, from := range t.KnightMoves[sq] {
		p := b.Get(from)
		if p.Kind() == chess.Knight && p.Color() == by {
			return true
		}
	}

	for _, from := range t.KingMoves[sq] {
		p := b.Get(from)
		if p.Kind() == chess.King && p.Color() == by {
			return true
		}
	}

	if raySliderAttacks(b, t.DiagonalRays[sq], by, chess.Bishop, chess.Queen) {
		return true
	}
	if raySliderAttacks(b, t.StraightRays[sq], by, chess.Rook, chess.Queen) {
		return true
	}
	return false
}

func raySliderAttacks(b *chess.Board, raysFromSq [][]chess.Square, by chess.Color, kind1, kind2 chess.PieceKind) bool {
	for _, ray := range raysFromSq {
		for _, sq := range ray {
			p := b.Get(sq)
			if p.IsEmpty() {
				continue
			}
			if p.Color() == by && (p.Kind() == kind1 || p.Kind() == kind2) {
				return true
			}
			break
		}
	}
	return false
}
