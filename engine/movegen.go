package engine

import (
	"github.com/lgbarn/pgn-core/chess"
	"github.com/lgbarn/pgn-core/movetables"
)

// MoveGenerator enumerates legal moves for a position. It owns an Applier
// so it can test candidate moves for self-check by playing and unmaking
// them on the live board, rather than cloning the board per candidate.
type MoveGenerator struct {
	applier Applier
}

// NewMoveGenerator returns a ready-to-use MoveGenerator.
func NewMoveGenerator() *MoveGenerator {
	return &MoveGenerator{}
}

// EnumLegalMoves returns every legal move available to color on b. The
// board is left unchanged; each pseudo-legal candidate is applied, tested
// for self-check, and unmade before the next candidate is generated.
func (g *MoveGenerator) EnumLegalMoves(b *chess.Board, color chess.Color) []chess.Move {
	var out []chess.Move
	t := movetables.Default

	// Candidates are probed through the Applier, which moves for b.ToMove,
	// so color is made the side to move for the duration of the call.
	savedToMove := b.ToMove
	b.ToMove = color
	defer func() { b.ToMove = savedToMove }()

	for sq := chess.Square(0); sq < 64; sq++ {
		p := b.Get(sq)
		if p.IsEmpty() || p.Color() != color {
			continue
		}
		switch p.Kind() {
		case chess.Pawn:
			g.genPawnMoves(b, sq, color, &out)
		case chess.Knight:
			g.genJumps(b, sq, color, t.KnightMoves[sq], &out)
		case chess.King:
			g.genJumps(b, sq, color, t.KingMoves[sq], &out)
		case chess.Bishop:
			g.genSlides(b, sq, color, t.DiagonalRays[sq], &out)
		case chess.Rook:
			g.genSlides(b, sq, color, t.StraightRays[sq], &out)
		case chess.Queen:
			g.genSlides(b, sq, color, t.QueenRays[sq], &out)
		}
	}
	g.genCastling(b, color, &out)
	return out
}

func (g *MoveGenerator) addIfLegal(b *chess.Board, m chess.Move, out *[]chess.Move) {
	color := b.ToMove
	g.applier.Apply(b, m)
	kingSquare := b.KingSquare(color)
	legal := !IsInCheck(b, color, kingSquare)
	g.applier.Unmake(b)
	if legal {
		*out = append(*out, m)
	}
}

func (g *MoveGenerator) genJumps(b *chess.Board, from chess.Square, color chess.Color, dests []chess.Square, out *[]chess.Move) {
	for _, to := range dests {
		target := b.Get(to)
		if !target.IsEmpty() && target.Color() == color {
			continue
		}
		flags := chess.MoveFlags(0)
		if !target.IsEmpty() {
			flags |= chess.PieceEaten
		}
		g.addIfLegal(b, chess.Move{Origin: from, Dest: to, Kind: chess.Normal, Flags: flags, MovedKind: b.Get(from).Kind()}, out)
	}
}

func (g *MoveGenerator) genSlides(b *chess.Board, from chess.Square, color chess.Color, raysFromSq [][]chess.Square, out *[]chess.Move) {
	movedKind := b.Get(from).Kind()
	for _, ray := range raysFromSq {
		for _, to := range ray {
			target := b.Get(to)
			if target.IsEmpty() {
				g.addIfLegal(b, chess.Move{Origin: from, Dest: to, Kind: chess.Normal, MovedKind: movedKind}, out)
				continue
			}
			if target.Color() != color {
				g.addIfLegal(b, chess.Move{Origin: from, Dest: to, Kind: chess.Normal, Flags: chess.PieceEaten, MovedKind: movedKind}, out)
			}
			break
		}
	}
}

var promotionKinds = []chess.MoveKind{chess.PromoteQueen, chess.PromoteRook, chess.PromoteBishop, chess.PromoteKnight}

func (g *MoveGenerator) genPawnMoves(b *chess.Board, from chess.Square, color chess.Color, out *[]chess.Move) {
	dir := 1
	startRank := 1
	promoteRank := 7
	if color == chess.Black {
		dir = -1
		startRank = 6
		promoteRank = 0
	}

	oneAhead := from.RankIndex() + dir
	if chess.OnBoard(from.File(), oneAhead) {
		to := chess.SquareFromFileRank(from.File(), oneAhead)
		if b.Get(to).IsEmpty() {
			g.addPawnAdvance(b, from, to, promoteRank, out)
			if from.RankIndex() == startRank {
				twoAhead := from.RankIndex() + 2*dir
				to2 := chess.SquareFromFileRank(from.File(), twoAhead)
				if b.Get(to2).IsEmpty() {
					g.addIfLegal(b, chess.Move{Origin: from, Dest: to2, Kind: chess.Normal, MovedKind: chess.Pawn}, out)
				}
			}
		}
	}

	for _, df := range []int{-1, 1} {
		toFile := from.File() + df
		if !chess.OnBoard(toFile, oneAhead) {
			continue
		}
		to := chess.SquareFromFileRank(toFile, oneAhead)
		target := b.Get(to)
		if !target.IsEmpty() && target.Color() != color {
			g.addPawnCapture(b, from, to, promoteRank, out)
			continue
		}
		if to == b.EPTarget && b.EPTarget != chess.NoSquare {
			g.addIfLegal(b, chess.Move{Origin: from, Dest: to, Kind: chess.EnPassant, Flags: chess.PieceEaten, MovedKind: chess.Pawn}, out)
		}
	}
}

func (g *MoveGenerator) addPawnAdvance(b *chess.Board, from, to chess.Square, promoteRank int, out *[]chess.Move) {
	if to.RankIndex() == promoteRank {
		for _, k := range promotionKinds {
			g.addIfLegal(b, chess.Move{Origin: from, Dest: to, Kind: k, MovedKind: chess.Pawn}, out)
		}
		return
	}
	g.addIfLegal(b, chess.Move{Origin: from, Dest: to, Kind: chess.Normal, MovedKind: chess.Pawn}, out)
}

func (g *MoveGenerator) addPawnCapture(b *chess.Board, from, to chess.Square, promoteRank int, out *[]chess.Move) {
	if to.RankIndex() == promoteRank {
		for _, k := range promotionKinds {
			g.addIfLegal(b, chess.Move{Origin: from, Dest: to, Kind: k, Flags: chess.PieceEaten, MovedKind: chess.Pawn}, out)
		}
		return
	}
	g.addIfLegal(b, chess.Move{Origin: from, Dest: to, Kind: chess.Normal, Flags: chess.PieceEaten, MovedKind: chess.Pawn}, out)
}

// castleSidesFor returns the two CastleSide values belonging to color.
func castleSidesFor(color chess.Color) [2]chess.CastleSide {
	if color == chess.White {
		return [2]chess.CastleSide{chess.WhiteKingSide, chess.WhiteQueenSide}
	}
	return [2]chess.CastleSide{chess.BlackKingSide, chess.BlackQueenSide}
}

func (g *MoveGenerator) genCastling(b *chess.Board, color chess.Color, out *[]chess.Move) {
	if IsInCheck(b, color, b.KingSquare(color)) {
		return
	}
	for _, side := range castleSidesFor(color) {
		if !b.CanCastle(side) {
			continue
		}
		geom := chess.CastleGeometries[side]
		empty := true
		for _, sq := range geom.Empties {
			if !b.Get(sq).IsEmpty() {
				empty = false
				break
			}
		}
		if !empty {
			continue
		}
		attacked := false
		for _, sq := range geom.CrossingSquares {
			if IsSquareAttacked(b, sq, color.Opposite()) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		g.addIfLegal(b, chess.Move{Origin: geom.KingFrom, Dest: geom.KingTo, Kind: chess.Castle, MovedKind: chess.King}, out)
	}
}
