// Package testutil provides shared test utilities for the pgn-core project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/pgn-core/pgn"
)

// ParseTestGame parses a PGN string and returns the first game, or nil if
// parsing fails or no games are found. Use this for tests where parse failure
// is an acceptable outcome.
func ParseTestGame(pgnText string) *pgn.ParsedGame {
	if games := ParseTestGames(pgnText); len(games) > 0 {
		return games[0]
	}
	return nil
}

// ParseTestGames parses a PGN string and returns all games found.
// Returns an empty slice if parsing fails or no games are found.
func ParseTestGames(pgnText string) []*pgn.ParsedGame {
	p := pgn.NewParser(strings.NewReader(pgnText))
	var games []*pgn.ParsedGame
	for {
		game, err := p.ParseGame()
		if err != nil {
			break
		}
		games = append(games, game)
	}
	return games
}

// MustParseGame parses a PGN string and returns the first game.
// It calls t.Fatal if parsing fails or no games are found.
// Use this in test setup where parse failure should abort the test.
func MustParseGame(t *testing.T, pgnText string) *pgn.ParsedGame {
	t.Helper()
	game := ParseTestGame(pgnText)
	if game == nil {
		t.Fatalf("failed to parse test game:\n%s", pgnText)
	}
	return game
}

// MustParseGames parses a PGN string and returns all games found.
// It calls t.Fatal if parsing fails or no games are found.
func MustParseGames(t *testing.T, pgnText string) []*pgn.ParsedGame {
	t.Helper()
	games := ParseTestGames(pgnText)
	if len(games) == 0 {
		t.Fatalf("failed to parse any games from PGN:\n%s", pgnText)
	}
	return games
}
