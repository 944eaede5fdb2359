// Package charsource provides a windowed, random-access character stream
// over an io.Reader. It is the lowest layer of the PGN engine: the lexer
// consumes it one character at a time, with at most one character of
// pushback, while still being able to slice back into recently-seen bytes
// to quote context in diagnostics.
package charsource

import (
	"io"

	"github.com/lgbarn/pgn-core/pgnerror"
)

// ChunkSize is the size of each retained window, favoring large,
// coarse-grained I/O over byte-at-a-time reads.
const ChunkSize = 1 << 20 // 1 MiB

// defaultRetention is the number of chunks, including the current one, kept
// in memory before older ones are discarded by flushOld.
const defaultRetention = 2

// EOFChar is returned by Peek and Get once the underlying reader is
// exhausted. It is never a legal PGN input byte (PGN text is printable
// ASCII/UTF-8), so it is safe to use as a sentinel.
const EOFChar byte = 0

// Source is a windowed random-access reader over a byte stream. Chunks are
// filled eagerly: once a chunk is opened it is read to completion (chunk
// size or short read) in one loop, rather than one byte at a time.
type Source struct {
	r         io.Reader
	chunkSize int
	retention int

	chunks       [][]byte
	chunkOffsets []int64
	nextOffset   int64 // absolute offset the next unread chunk will start at
	readerDone   bool

	curChunk int
	curIdx   int

	offset          int64 // absolute offset of the next character Get() will return
	firstCharOfLine bool
	prevFirstChar   bool // firstCharOfLine value just before the last consumed char

	havePushed bool
	pushedChar byte

	oldestKept int // index of the oldest chunk still retained in s.chunks
}

// New creates a Source that reads from r, retaining chunks of ChunkSize.
func New(r io.Reader) *Source {
	return &Source{
		r:               r,
		chunkSize:       ChunkSize,
		retention:       defaultRetention,
		firstCharOfLine: true,
	}
}

// Peek returns the next character without consuming it. It returns EOFChar
// at end of input.
func (s *Source) Peek() byte {
	ch := s.Get()
	s.PushBack(ch)
	return ch
}

// Get consumes and returns the next character, or EOFChar at end of input.
func (s *Source) Get() byte {
	var ch byte
	if s.havePushed {
		ch = s.pushedChar
		s.havePushed = false
	} else {
		ch = s.readRaw()
	}
	s.applyChar(ch)
	return ch
}

// PushBack returns a single character to the stream so the next Get or Peek
// sees it again. Pushing back a second character before it is consumed is a
// programmer error: the contract allows at most one character of lookback.
func (s *Source) PushBack(ch byte) {
	if s.havePushed {
		panic(pgnerror.Wrap(pgnerror.ErrProgrammer, "charsource: second pushback before first was consumed"))
	}
	s.havePushed = true
	s.pushedChar = ch
	if ch != EOFChar {
		s.offset--
	}
	s.firstCharOfLine = s.prevFirstChar
}

// applyChar advances offset and the first-character-of-line flag to reflect
// having just consumed ch. It is also used to re-apply the same transition
// when a pushed-back character is consumed again, which keeps PushBack a
// pure undo of the immediately preceding Get.
func (s *Source) applyChar(ch byte) {
	s.prevFirstChar = s.firstCharOfLine
	if ch == EOFChar {
		return
	}
	s.offset++
	switch ch {
	case '\r':
		s.firstCharOfLine = true
	case '\n':
		// unchanged
	default:
		s.firstCharOfLine = false
	}
}

// Offset returns the absolute byte offset of the next character Get will
// return.
func (s *Source) Offset() int64 {
	return s.offset
}

// FirstCharOfLine reports whether the character Get will next return is the
// first character of a line: true immediately after a '\r', unchanged across
// a following '\n', and cleared by any other character.
func (s *Source) FirstCharOfLine() bool {
	return s.firstCharOfLine
}

// readRaw pulls the next byte out of the chunk list, loading further chunks
// from the reader as needed. It returns EOFChar once the reader and all
// buffered chunks are exhausted.
func (s *Source) readRaw() byte {
	for {
		if s.curChunk >= len(s.chunks) {
			if !s.fillNextChunk() {
				return EOFChar
			}
			continue
		}
		chunk := s.chunks[s.curChunk]
		if s.curIdx < len(chunk) {
			b := chunk[s.curIdx]
			s.curIdx++
			return b
		}
		if s.readerDone {
			return EOFChar
		}
		s.curChunk++
		s.curIdx = 0
		s.flushOld()
	}
}

// fillNextChunk reads one more chunk of up to chunkSize bytes from the
// reader. It returns false once the reader has been fully drained and no
// new chunk was produced (including the case of an empty input, which still
// yields exactly one, empty, chunk).
func (s *Source) fillNextChunk() bool {
	if s.readerDone {
		return false
	}
	buf := make([]byte, s.chunkSize)
	total := 0
	var err error
	for total < len(buf) {
		var n int
		n, err = s.r.Read(buf[total:])
		total += n
		if err != nil {
			break
		}
	}
	if err != nil {
		s.readerDone = true
	}
	if total == 0 && len(s.chunks) > 0 {
		return false
	}
	s.chunkOffsets = append(s.chunkOffsets, s.nextOffset)
	s.chunks = append(s.chunks, buf[:total])
	s.nextOffset += int64(total)
	return true
}

// flushOld discards chunks older than the retention window to cap memory on
// very large inputs. Once discarded, Slice into that range returns empty.
func (s *Source) flushOld() {
	keepFrom := s.curChunk - (s.retention - 1)
	for s.oldestKept < keepFrom {
		s.chunks[s.oldestKept] = nil
		s.oldestKept++
	}
}

// Slice returns the characters in the absolute byte range [start,
// start+length). The range must not cross more than one chunk boundary and
// length must not exceed the chunk size; these are caller invariants used to
// quote short snippets of context (e.g. in diagnostics), not to stream
// arbitrary spans. Slice returns the sentinel "<empty>" for length 0, and
// returns "" for a range that has fallen outside the retention window.
func (s *Source) Slice(start int64, length int) string {
	if length == 0 {
		return "<empty>"
	}
	end := start + int64(length)
	var out []byte
	for i := s.oldestKept; i < len(s.chunks); i++ {
		chunk := s.chunks[i]
		if chunk == nil {
			continue
		}
		chunkStart := s.chunkOffsets[i]
		chunkEnd := chunkStart + int64(len(chunk))
		lo := start
		if lo < chunkStart {
			lo = chunkStart
		}
		hi := end
		if hi > chunkEnd {
			hi = chunkEnd
		}
		if lo >= hi {
			continue
		}
		out = append(out, chunk[lo-chunkStart:hi-chunkStart]...)
	}
	return string(out)
}
