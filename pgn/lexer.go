package pgn

import (
	"io"
	"strings"

	"github.com/lgbarn/pgn-core/charsource"
	"github.com/lgbarn/pgn-core/pgnerror"
)

// Lexer tokenizes PGN text one character at a time from a charsource.Source,
// which gives it the one-character pushback it needs to decide where a
// symbol run ends without ever re-reading a byte twice.
type Lexer struct {
	src  *charsource.Source
	line int
}

// NewLexer returns a Lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{src: charsource.New(r), line: 1}
}

// isSymbolChar reports whether ch can appear inside a PGN symbol token:
// move text, tag names, NAG-free annotations, and game results all share
// this character set.
func isSymbolChar(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return true
	case ch == '_' || ch == '+' || ch == '#' || ch == '=' || ch == '-' || ch == '/':
		return true
	default:
		return false
	}
}

// Next returns the next token, skipping whitespace and ';'-prefixed
// line comments.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipInsignificant(); err != nil {
		return Token{}, err
	}

	ch := l.src.Get()
	line := l.line

	switch {
	case ch == charsource.EOFChar:
		return Token{Type: Eof, Line: line}, nil
	case ch == '[':
		return Token{Type: OpenSBracket, Text: "[", Line: line}, nil
	case ch == ']':
		return Token{Type: CloseSBracket, Text: "]", Line: line}, nil
	case ch == '.':
		return Token{Type: Dot, Text: ".", Line: line}, nil
	case ch == '*':
		return Token{Type: Termination, Text: "*", Line: line}, nil
	case ch == '(' || ch == ')':
		return Token{Type: UnknownToken, Text: string(ch), Line: line}, nil
	case ch == '$':
		return l.lexNag(line)
	case ch == '"':
		return l.lexString(line)
	case ch == '{':
		return l.lexBraceComment(line)
	case isSymbolChar(ch):
		l.src.PushBack(ch)
		return l.lexSymbolRun(line)
	default:
		return Token{Type: UnknownToken, Text: string(ch), Line: line}, nil
	}
}

// skipInsignificant consumes whitespace and ';' line comments, both of
// which carry no information the parser needs.
func (l *Lexer) skipInsignificant() error {
	for {
		ch := l.src.Get()
		switch {
		case ch == '\n':
			l.line++
		case ch == ' ' || ch == '\t' || ch == '\r':
			// skip
		case ch == ';':
			for {
				c := l.src.Get()
				if c == '\n' {
					l.line++
					break
				}
				if c == charsource.EOFChar {
					l.src.PushBack(c)
					return nil
				}
			}
		default:
			l.src.PushBack(ch)
			return nil
		}
	}
}

func (l *Lexer) lexSymbolRun(line int) (Token, error) {
	var text []byte
	for {
		ch := l.src.Get()
		if !isSymbolChar(ch) {
			if ch != charsource.EOFChar {
				l.src.PushBack(ch)
			}
			break
		}
		text = append(text, ch)
	}
	s := string(text)
	switch {
	case s == "1-0" || s == "0-1" || s == "1/2-1/2":
		return Token{Type: Termination, Text: s, Line: line}, nil
	case strings.Contains(s, "/"):
		return Token{}, &pgnerror.LexError{Err: pgnerror.ErrLexical, Offset: l.src.Offset(), Line: line}
	case isAllDigits(s):
		return Token{Type: Integer, Text: s, Line: line}, nil
	default:
		return Token{Type: Symbol, Text: s, Line: line}, nil
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (l *Lexer) lexNag(line int) (Token, error) {
	var digits []byte
	for {
		ch := l.src.Get()
		if ch < '0' || ch > '9' {
			if ch != charsource.EOFChar {
				l.src.PushBack(ch)
			}
			break
		}
		digits = append(digits, ch)
	}
	if len(digits) == 0 {
		return Token{}, &pgnerror.LexError{Err: pgnerror.ErrLexical, Offset: l.src.Offset(), Line: line}
	}
	return Token{Type: Nag, Text: string(digits), Line: line}, nil
}

func (l *Lexer) lexString(line int) (Token, error) {
	var text []byte
	for {
		ch := l.src.Get()
		if ch == charsource.EOFChar {
			return Token{}, &pgnerror.LexError{Err: pgnerror.ErrLexical, Offset: l.src.Offset(), Line: line}
		}
		if ch == '\\' {
			next := l.src.Get()
			text = append(text, next)
			continue
		}
		if ch == '"' {
			break
		}
		text = append(text, ch)
	}
	return Token{Type: String, Text: string(text), Line: line}, nil
}

func (l *Lexer) lexBraceComment(line int) (Token, error) {
	var text []byte
	for {
		ch := l.src.Get()
		if ch == charsource.EOFChar {
			return Token{}, &pgnerror.LexError{Err: pgnerror.ErrLexical, Offset: l.src.Offset(), Line: line}
		}
		if ch == '\n' {
			l.line++
		}
		if ch == '}' {
			break
		}
		text = append(text, ch)
	}
	return Token{Type: Comment, Text: string(text), Line: line}, nil
}
