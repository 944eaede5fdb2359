package chess

import "math/rand"

// zobristSeed fixes the random source used to build the Zobrist key table
// so that hashes are reproducible across runs and across processes, which
// matters for diagnostics and for tests that compare hash values literally.
const zobristSeed = 0x5a6f6272697374

type zobristKeys struct {
	pieceSquare [64][16]uint64
	sideToMove  uint64
	castleRight [4]uint64
	epFile      [8]uint64
}

var zobrist = buildZobristKeys()

func buildZobristKeys() zobristKeys {
	r := rand.New(rand.NewSource(zobristSeed))
	var k zobristKeys
	for sq := 0; sq < 64; sq++ {
		for p := 0; p < 16; p++ {
			k.pieceSquare[sq][p] = r.Uint64()
		}
	}
	k.sideToMove = r.Uint64()
	for i := range k.castleRight {
		k.castleRight[i] = r.Uint64()
	}
	for i := range k.epFile {
		k.epFile[i] = r.Uint64()
	}
	return k
}

// ComputeZobrist recomputes b's Zobrist key from scratch by scanning every
// square. The engine's move application maintains the key incrementally
// instead of calling this on every move; it is used only when a position is
// first established, e.g. after a FEN load.
func ComputeZobrist(b *Board) uint64 {
	var h uint64
	for sq := 0; sq < 64; sq++ {
		p := b.Pieces[sq]
		if p.IsEmpty() {
			continue
		}
		h ^= zobrist.pieceSquare[sq][p]
	}
	if b.ToMove == Black {
		h ^= zobrist.sideToMove
	}
	for side := CastleSide(0); side < 4; side++ {
		if b.CanCastle(side) {
			h ^= zobrist.castleRight[side]
		}
	}
	if b.EPTarget != NoSquare {
		h ^= zobrist.epFile[b.EPTarget.File()]
	}
	return h
}

// ZobristPieceSquare exposes the piece/square key, for the engine's
// incremental updates.
func ZobristPieceSquare(sq Square, p Piece) uint64 { return zobrist.pieceSquare[sq][p] }

// ZobristSideToMove exposes the side-to-move key.
func ZobristSideToMove() uint64 { return zobrist.sideToMove }

// ZobristCastleRight exposes the per-side castling-right key.
func ZobristCastleRight(side CastleSide) uint64 { return zobrist.castleRight[side] }

// ZobristEPFile exposes the per-file en-passant key.
func ZobristEPFile(file int) uint64 { return zobrist.epFile[file] }
