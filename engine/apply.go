package engine

import "github.com/lgbarn/pgn-core/chess"

// undoRecord captures everything Apply changed about a board so Unmake can
// reverse it exactly, without needing to clone the whole position.
type undoRecord struct {
	move           chess.Move
	captured       chess.Piece
	capturedSquare chess.Square
	prevToMove     chess.Color
	// rookSides lists every CastleSide whose RookMoveCount this move
	// incremented: the moving rook's own side, the captured rook's side,
	// or (rarely) both when a rook captures another rook still sitting on
	// its home square.
	rookSides     []chess.CastleSide
	kingColor     int // -1 if no king-move-count change
	castledBefore bool
	castledColor  int // -1 if Castled flag was not touched
	historyLen    int
}

// Applier plays and unwinds moves on a Board, maintaining its Zobrist key
// incrementally and recording enough state per move to unmake it. Zero
// value is ready to use.
type Applier struct {
	undo []undoRecord
}

const noColor = -1

// setSquare places p on sq, keeping b.Pieces, PieceCounts and the Zobrist
// key consistent, and returns the piece previously on sq.
func setSquare(b *chess.Board, sq chess.Square, p chess.Piece) chess.Piece {
	old := b.Get(sq)
	if !old.IsEmpty() {
		b.Zobrist ^= chess.ZobristPieceSquare(sq, old)
	}
	b.SetSquare(sq, p)
	if !p.IsEmpty() {
		b.Zobrist ^= chess.ZobristPieceSquare(sq, p)
	}
	return old
}

// castleRights snapshots CanCastle for all four sides, letting Apply and
// Unmake detect exactly which castling rights a move revoked or restored.
type castleRights [4]bool

func snapshotCastleRights(b *chess.Board) castleRights {
	var c castleRights
	for side := chess.CastleSide(0); side < 4; side++ {
		c[side] = b.CanCastle(side)
	}
	return c
}

// syncCastleAndEPZobrist XORs in/out the castling-right and en-passant-file
// keys for every side or file whose availability changed between before
// (captured before the move's state changes) and the board's current
// state, keeping b.Zobrist in step with chess.ComputeZobrist. XOR is its
// own inverse, so the same before/after comparison works unchanged whether
// it is called from Apply or from Unmake.
func syncCastleAndEPZobrist(b *chess.Board, before castleRights, beforeEP chess.Square) {
	after := snapshotCastleRights(b)
	for side := chess.CastleSide(0); side < 4; side++ {
		if before[side] != after[side] {
			b.Zobrist ^= chess.ZobristCastleRight(side)
		}
	}
	afterEP := b.EPTarget
	if beforeEP == afterEP {
		return
	}
	if beforeEP != chess.NoSquare {
		b.Zobrist ^= chess.ZobristEPFile(beforeEP.File())
	}
	if afterEP != chess.NoSquare {
		b.Zobrist ^= chess.ZobristEPFile(afterEP.File())
	}
}

// Apply plays move on b, updating every piece of board state: Zobrist key,
// king-square cache, castling/en-passant rights, move history, and the
// fifty-move/threefold counters. It reports whether the resulting position
// is an automatic draw.
func (a *Applier) Apply(b *chess.Board, move chess.Move) chess.RepeatResult {
	rec := undoRecord{
		move:           move,
		prevToMove:     b.ToMove,
		kingColor:      noColor,
		castledColor:   noColor,
		historyLen:     b.History.Len(),
		capturedSquare: move.Dest,
	}

	beforeCastle := snapshotCastleRights(b)
	beforeEP := b.EPTarget

	color := b.ToMove
	mover := b.Get(move.Origin)
	pawnMoveOrCapture := mover.Kind() == chess.Pawn || move.IsCapture()

	if move.Kind == chess.EnPassant {
		victimRank := move.Origin.RankIndex()
		rec.capturedSquare = chess.SquareFromFileRank(move.Dest.File(), victimRank)
	}
	if move.IsCapture() {
		rec.captured = setSquare(b, rec.capturedSquare, chess.EmptySquare)
	}

	b.PushEPTarget()

	setSquare(b, move.Origin, chess.EmptySquare)
	destKind := mover.Kind()
	if move.Kind.IsPromotion() {
		destKind = move.Kind.PromotedKind()
	}
	setSquare(b, move.Dest, chess.MakePiece(color, destKind))

	if mover.Kind() == chess.King {
		b.SetKingSquare(color, move.Dest)
		colorIdx := colorIndex(color)
		rec.kingColor = colorIdx
		b.KingMoveCount[colorIdx]++
	}
	if side, ok := rookSideFor(color, move.Origin); ok && mover.Kind() == chess.Rook {
		rec.rookSides = append(rec.rookSides, side)
		b.RookMoveCount[side]++
	}
	// A rook captured on its home square loses castling rights too.
	if move.IsCapture() {
		if side, ok := rookSideFor(color.Opposite(), rec.capturedSquare); ok {
			rec.rookSides = append(rec.rookSides, side)
			b.RookMoveCount[side]++
		}
	}

	if move.Kind == chess.Castle {
		geom := castleGeometryFor(color, move)
		setSquare(b, geom.RookFrom, chess.EmptySquare)
		setSquare(b, geom.RookTo, chess.MakePiece(color, chess.Rook))
		colorIdx := colorIndex(color)
		rec.castledColor = colorIdx
		rec.castledBefore = b.Castled[colorIdx]
		b.Castled[colorIdx] = true
	}

	if mover.Kind() == chess.Pawn && abs(move.Dest.RankIndex()-move.Origin.RankIndex()) == 2 {
		epRank := (move.Origin.RankIndex() + move.Dest.RankIndex()) / 2
		b.EPTarget = chess.SquareFromFileRank(move.Origin.File(), epRank)
	}

	b.ToMove = color.Opposite()
	b.Zobrist ^= chess.ZobristSideToMove()
	syncCastleAndEPZobrist(b, beforeCastle, beforeEP)

	result := b.History.AddCurrent(b, pawnMoveOrCapture)
	b.History.UpdateCurrentExtra(b)

	a.undo = append(a.undo, rec)
	return result
}

// Unmake reverses the most recent Apply call.
func (a *Applier) Unmake(b *chess.Board) {
	n := len(a.undo)
	rec := a.undo[n-1]
	a.undo = a.undo[:n-1]

	beforeCastle := snapshotCastleRights(b)
	beforeEP := b.EPTarget

	b.History.Truncate(rec.historyLen)
	b.ToMove = rec.prevToMove
	b.Zobrist ^= chess.ZobristSideToMove()

	color := rec.prevToMove
	move := rec.move

	if move.Kind == chess.Castle {
		geom := castleGeometryFor(color, move)
		setSquare(b, geom.RookTo, chess.EmptySquare)
		setSquare(b, geom.RookFrom, chess.MakePiece(color, chess.Rook))
		b.Castled[rec.castledColor] = rec.castledBefore
	}

	movedKind := move.MovedKind
	setSquare(b, move.Dest, chess.EmptySquare)
	setSquare(b, move.Origin, chess.MakePiece(color, movedKind))

	if movedKind == chess.King {
		b.SetKingSquare(color, move.Origin)
		b.KingMoveCount[rec.kingColor]--
	}
	for _, side := range rec.rookSides {
		b.RookMoveCount[side]--
	}

	if move.IsCapture() {
		setSquare(b, rec.capturedSquare, rec.captured)
	}

	b.PopEPTarget()
	syncCastleAndEPZobrist(b, beforeCastle, beforeEP)
}

func colorIndex(c chess.Color) int {
	if c == chess.Black {
		return 1
	}
	return 0
}

// rookSideFor reports which CastleSide owns sq for color, if any.
func rookSideFor(color chess.Color, sq chess.Square) (chess.CastleSide, bool) {
	for side := chess.CastleSide(0); side < 4; side++ {
		geom := chess.CastleGeometries[side]
		sideColor := chess.White
		if side == chess.BlackKingSide || side == chess.BlackQueenSide {
			sideColor = chess.Black
		}
		if sideColor == color && geom.RookFrom == sq {
			return side, true
		}
	}
	return 0, false
}

func castleGeometryFor(color chess.Color, move chess.Move) chess.CastleGeometry {
	for side := chess.CastleSide(0); side < 4; side++ {
		geom := chess.CastleGeometries[side]
		sideColor := chess.White
		if side == chess.BlackKingSide || side == chess.BlackQueenSide {
			sideColor = chess.Black
		}
		if sideColor == color && geom.KingFrom == move.Origin && geom.KingTo == move.Dest {
			return geom
		}
	}
	panic("castle move does not match any known castling geometry")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
