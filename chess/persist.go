package chess

import (
	"encoding/binary"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/lgbarn/pgn-core/pgnerror"
)

// xmlMoveList and xmlMove mirror the on-disk XML schema for a MovePosStack:
// a MoveList element wrapping ordered Move elements, each carrying the
// attributes needed to reconstruct a PlayedMove without replaying the game.
type xmlMoveList struct {
	XMLName        xml.Name  `xml:"MoveList"`
	PositionInList int       `xml:"PositionInList,attr"`
	Moves          []xmlMove `xml:"Move"`
}

type xmlMove struct {
	OriginalPiece    int `xml:"OriginalPiece,attr"`
	StartingPosition int `xml:"StartingPosition,attr"`
	EndingPosition   int `xml:"EndingPosition,attr"`
	MoveType         int `xml:"MoveType,attr"`
}

// EncodeXML writes s to w as the MoveList/Move XML schema.
func (s *MovePosStack) EncodeXML(w io.Writer) error {
	doc := xmlMoveList{PositionInList: s.position}
	for _, pm := range s.moves {
		doc.Moves = append(doc.Moves, xmlMove{
			OriginalPiece:    int(pm.OriginalPiece),
			StartingPosition: int(pm.StartingSquare),
			EndingPosition:   int(pm.EndingSquare),
			MoveType:         int(pm.Move.Kind),
		})
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return pgnerror.Wrap(err, "encode move list xml")
	}
	return nil
}

// DecodeXML reads a MoveList/Move document from r and replaces s's contents.
func (s *MovePosStack) DecodeXML(r io.Reader) error {
	var doc xmlMoveList
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return pgnerror.Wrap(err, "decode move list xml")
	}
	moves := make([]PlayedMove, 0, len(doc.Moves))
	for _, m := range doc.Moves {
		origin := Square(m.StartingPosition)
		dest := Square(m.EndingPosition)
		moves = append(moves, PlayedMove{
			Move: Move{
				Origin: origin,
				Dest:   dest,
				Kind:   MoveKind(m.MoveType),
			},
			OriginalPiece:  Piece(m.OriginalPiece),
			StartingSquare: origin,
			EndingSquare:   dest,
		})
	}
	if doc.PositionInList < 0 || doc.PositionInList > len(moves) {
		return pgnerror.Wrapf(pgnerror.ErrIO, "move list cursor %d out of range [0,%d]", doc.PositionInList, len(moves))
	}
	s.moves = moves
	s.position = doc.PositionInList
	return nil
}

// binary record layout: 4 bytes piece, 4 bytes start square, 4 bytes end
// square, 4 bytes move type, all little-endian, preceded by a little-endian
// uint32 move count and a little-endian uint32 cursor position.
const binaryRecordSize = 16

// EncodeBinary writes s to w in the fixed-width binary format.
func (s *MovePosStack) EncodeBinary(w io.Writer) error {
	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], uint32(len(s.moves)))
	binary.LittleEndian.PutUint32(header[4:8], uint32(s.position))
	if _, err := w.Write(header); err != nil {
		return pgnerror.Wrap(err, "write move list header")
	}
	rec := make([]byte, binaryRecordSize)
	for _, pm := range s.moves {
		binary.LittleEndian.PutUint32(rec[0:4], uint32(pm.OriginalPiece))
		binary.LittleEndian.PutUint32(rec[4:8], uint32(pm.StartingSquare))
		binary.LittleEndian.PutUint32(rec[8:12], uint32(pm.EndingSquare))
		binary.LittleEndian.PutUint32(rec[12:16], uint32(pm.Move.Kind))
		if _, err := w.Write(rec); err != nil {
			return pgnerror.Wrap(err, "write move list record")
		}
	}
	return nil
}

// DecodeBinary reads the fixed-width binary format from r and replaces s's
// contents.
func (s *MovePosStack) DecodeBinary(r io.Reader) error {
	header := make([]byte, 8)
	if _, err := io.ReadFull(r, header); err != nil {
		return pgnerror.Wrap(err, "read move list header")
	}
	count := binary.LittleEndian.Uint32(header[0:4])
	cursor := binary.LittleEndian.Uint32(header[4:8])

	moves := make([]PlayedMove, 0, count)
	rec := make([]byte, binaryRecordSize)
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, rec); err != nil {
			return pgnerror.Wrap(err, "read move list record")
		}
		origin := Square(binary.LittleEndian.Uint32(rec[4:8]))
		dest := Square(binary.LittleEndian.Uint32(rec[8:12]))
		moves = append(moves, PlayedMove{
			Move: Move{
				Origin: origin,
				Dest:   dest,
				Kind:   MoveKind(binary.LittleEndian.Uint32(rec[12:16])),
			},
			OriginalPiece:  Piece(binary.LittleEndian.Uint32(rec[0:4])),
			StartingSquare: origin,
			EndingSquare:   dest,
		})
	}
	if int(cursor) > len(moves) {
		return fmt.Errorf("%w: move list cursor %d out of range [0,%d]", pgnerror.ErrIO, cursor, len(moves))
	}
	s.moves = moves
	s.position = int(cursor)
	return nil
}
