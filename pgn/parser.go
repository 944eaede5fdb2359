package pgn

import (
	"errors"
	"io"

	"github.com/lgbarn/pgn-core/chess"
	"github.com/lgbarn/pgn-core/engine"
	"github.com/lgbarn/pgn-core/pgnerror"
)

// ParsedGame is the result of parsing one PGN game: its tag pairs, the
// board it started from, the resolved move list, and how the game ended.
type ParsedGame struct {
	Tags        map[string]string
	StartFEN    string
	Moves       []chess.Move
	Termination string

	// SkippedVariations counts the RAV (recursive annotation variation)
	// blocks that were present in the source text but not resolved into
	// the main Moves line.
	SkippedVariations int

	// Truncated is set if the game text ended before a termination marker
	// was seen, or if a recoverable error cut the game short.
	Truncated bool
}

// PgnParser parses a stream of PGN games from a single io.Reader.
type PgnParser struct {
	lex       *Lexer
	gen       *engine.MoveGenerator
	applier   engine.Applier
	peeked    *Token
	gameCount int
}

// NewParser returns a parser reading PGN text from r.
func NewParser(r io.Reader) *PgnParser {
	return &PgnParser{
		lex: NewLexer(r),
		gen: engine.NewMoveGenerator(),
	}
}

func (p *PgnParser) next() (Token, error) {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		return t, nil
	}
	return p.lex.Next()
}

func (p *PgnParser) peek() (Token, error) {
	if p.peeked == nil {
		t, err := p.lex.Next()
		if err != nil {
			return Token{}, err
		}
		p.peeked = &t
	}
	return *p.peeked, nil
}

// ParseGame parses the next game from the stream. It returns io.EOF itself
// (not wrapped) once no more games remain.
func (p *PgnParser) ParseGame() (*ParsedGame, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Type == Eof {
		return nil, io.EOF
	}

	p.gameCount++
	game := &ParsedGame{Tags: make(map[string]string)}

	if err := p.parseTagSection(game); err != nil {
		return p.recoverGame(game, err)
	}

	board := chess.NewBoard()
	if fen, ok := game.Tags["FEN"]; ok {
		game.StartFEN = fen
		if err := board.LoadFEN(fen); err != nil {
			return nil, gameErr(p.gameCount, 0, err)
		}
	}

	if err := p.parseMoveText(game, board); err != nil {
		return p.recoverGame(game, err)
	}

	backfillResult(game)
	return game, nil
}

func gameErr(gameNum, ply int, err error) error {
	return &pgnerror.GameError{Err: err, GameNum: gameNum, PlyNum: ply}
}

// recoverGame handles an error raised while parsing the current game.
// LexicalError, ParseError and the SAN resolution errors are recoverable:
// the rest of this game's text is discarded by scanning forward to its
// next Termination token, the game is returned with Truncated set instead
// of an error, and the stream is left positioned to parse the following
// game cleanly. IoError and ProgrammerError are not recoverable and are
// returned unchanged, wrapped with the game/ply they occurred at.
func (p *PgnParser) recoverGame(game *ParsedGame, cause error) (*ParsedGame, error) {
	if !isRecoverable(cause) {
		return nil, gameErr(p.gameCount, len(game.Moves), cause)
	}
	game.Truncated = true
	p.resyncToTermination(game)
	backfillResult(game)
	return game, nil
}

func isRecoverable(err error) bool {
	return errors.Is(err, pgnerror.ErrLexical) ||
		errors.Is(err, pgnerror.ErrParse) ||
		errors.Is(err, pgnerror.ErrSanIllegal) ||
		errors.Is(err, pgnerror.ErrSanAmbiguous)
}

// resyncToTermination discards tokens from the stream up to and including
// the next Termination token, or until EOF, so that a subsequent ParseGame
// call starts cleanly on the following game. Further lexical errors hit
// while scanning are themselves swallowed: the goal here is only to find
// the next termination marker, not to re-validate the discarded text.
func (p *PgnParser) resyncToTermination(game *ParsedGame) {
	for {
		tok, err := p.next()
		if err != nil {
			continue
		}
		if tok.Type == Eof {
			return
		}
		if tok.Type == Termination {
			game.Termination = tok.Text
			return
		}
	}
}

// backfillResult sets the Result tag from the termination marker whenever
// one was seen, replacing any value the tag section gave, so the movetext's
// own termination token wins over a stale or missing tag. With no
// termination marker, a missing Result tag is set to "*" and an existing
// one is left as it is.
func backfillResult(game *ParsedGame) {
	if game.Termination != "" {
		game.Tags["Result"] = game.Termination
	} else if _, ok := game.Tags["Result"]; !ok {
		game.Tags["Result"] = "*"
	}
}

func (p *PgnParser) parseTagSection(game *ParsedGame) error {
	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.Type != OpenSBracket {
			return nil
		}
		if _, err := p.next(); err != nil {
			return err
		}

		nameTok, err := p.next()
		if err != nil {
			return err
		}
		if nameTok.Type != Symbol {
			return pgnerror.Wrapf(pgnerror.ErrParse, "expected tag name, got %s", nameTok.Type)
		}

		valueTok, err := p.next()
		if err != nil {
			return err
		}
		if valueTok.Type != String {
			return pgnerror.Wrapf(pgnerror.ErrParse, "expected tag value string, got %s", valueTok.Type)
		}
		game.Tags[nameTok.Text] = valueTok.Text

		closeTok, err := p.next()
		if err != nil {
			return err
		}
		if closeTok.Type != CloseSBracket {
			return pgnerror.Wrapf(pgnerror.ErrParse, "expected ']' closing tag, got %s", closeTok.Type)
		}
	}
}

func (p *PgnParser) parseMoveText(game *ParsedGame, board *chess.Board) error {
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}

		switch tok.Type {
		case Eof:
			game.Truncated = true
			return nil

		case Termination:
			game.Termination = tok.Text
			return nil

		case Integer, Dot, Comment, Nag:
			// Move numbers, their dots, comments, and NAGs annotate the
			// movetext but don't themselves resolve to a move.
			continue

		case UnknownToken:
			if tok.Text == "(" {
				if err := p.skipVariation(); err != nil {
					return err
				}
				game.SkippedVariations++
			}
			continue

		case Symbol:
			legalMoves := p.gen.EnumLegalMoves(board, board.ToMove)
			mv, err := ResolveSAN(legalMoves, board, tok.Text)
			if err != nil {
				return err
			}
			p.applier.Apply(board, mv)
			game.Moves = append(game.Moves, mv)

		default:
			return pgnerror.Wrapf(pgnerror.ErrParse, "unexpected token %s %q in movetext", tok.Type, tok.Text)
		}
	}
}

// skipVariation consumes tokens through the matching ')' for a RAV block
// that was just opened, honoring nested variations.
func (p *PgnParser) skipVariation() error {
	depth := 1
	for depth > 0 {
		tok, err := p.next()
		if err != nil {
			return err
		}
		if tok.Type == Eof {
			return pgnerror.Wrap(pgnerror.ErrParse, "unterminated variation")
		}
		if tok.Type == UnknownToken {
			switch tok.Text {
			case "(":
				depth++
			case ")":
				depth--
			}
		}
	}
	return nil
}
