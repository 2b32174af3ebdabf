// Package strategy loads and serves the basic-strategy decision table.
package strategy

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lox/blackjacksim/internal/game"
)

//go:embed basic.csv
var basicTable []byte

// cellKey indexes one decision: categorized player hand vs dealer up-card.
type cellKey struct {
	player   int
	dealerUp int
}

// Table maps (strategy key, dealer up rank) pairs to actions.
type Table struct {
	actions map[cellKey]game.Action
}

// Load parses a delimited strategy table. The header row labels the
// dealer up-cards (2..10, A); each following row starts with a player
// hand label (hard total, "A"+digit soft hand, or doubled-digit pair
// like "88", "TT", "AA") followed by one action letter per column.
// Unrecognized action letters skip that cell only; a malformed hand
// label skips its row.
func Load(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading strategy table: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("strategy table needs a header row and at least one hand row")
	}

	header := records[0]
	dealerCols := make([]int, len(header))
	for i := 1; i < len(header); i++ {
		up, err := parseDealerLabel(header[i])
		if err != nil {
			return nil, fmt.Errorf("strategy table header: %w", err)
		}
		dealerCols[i] = up
	}

	t := &Table{actions: make(map[cellKey]game.Action)}
	for _, row := range records[1:] {
		if len(row) == 0 {
			continue
		}
		key, err := parseHandLabel(row[0])
		if err != nil {
			continue
		}
		for i := 1; i < len(row) && i < len(header); i++ {
			action, ok := parseAction(row[i])
			if !ok {
				continue
			}
			t.actions[cellKey{player: key, dealerUp: dealerCols[i]}] = action
		}
	}
	return t, nil
}

// LoadFile loads a strategy table from a file on disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening strategy table: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded basic-strategy table.
func Default() *Table {
	t, err := Load(bytes.NewReader(basicTable))
	if err != nil {
		// The embedded table is validated by tests; failing to parse it
		// is a build defect.
		panic(fmt.Sprintf("embedded strategy table: %v", err))
	}
	return t
}

// Action resolves a lookup, defaulting to Stand when the cell is
// unmapped. The fallback keeps an incomplete table from ever producing
// an unbounded hit loop, at the cost of conservative play on gaps.
func (t *Table) Action(playerKey, dealerUp int) game.Action {
	if a, ok := t.actions[cellKey{player: playerKey, dealerUp: dealerUp}]; ok {
		return a
	}
	return game.Stand
}

// Len returns the number of mapped cells.
func (t *Table) Len() int {
	return len(t.actions)
}

// parseDealerLabel maps a header label to a dealer up rank: "A" is 1,
// face labels fold to 10.
func parseDealerLabel(s string) (int, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	switch s {
	case "A":
		return 1, nil
	case "T", "J", "Q", "K":
		return 10, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 2 || n > 10 {
		return 0, fmt.Errorf("invalid dealer up-card label %q", s)
	}
	return n, nil
}

// parseHandLabel maps a row label to a strategy key.
func parseHandLabel(s string) (int, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	switch {
	case s == "":
		return 0, fmt.Errorf("empty hand label")
	case s == "AA":
		return 201, nil
	case s == "TT" || s == "1010":
		return 210, nil
	case len(s) >= 2 && s[0] == 'A':
		n, err := strconv.Atoi(s[1:])
		if err != nil || n < 2 || n > 10 {
			return 0, fmt.Errorf("invalid soft hand label %q", s)
		}
		return 100 + n, nil
	case len(s) == 2 && s[0] == s[1] && s[0] >= '2' && s[0] <= '9':
		return 200 + int(s[0]-'0'), nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil || n < 2 || n > 21 {
			return 0, fmt.Errorf("invalid hand label %q", s)
		}
		return n, nil
	}
}

// parseAction maps an action letter to its Action; unknown letters are
// reported as not-ok so the caller can skip the cell.
func parseAction(s string) (game.Action, bool) {
	switch strings.TrimSpace(strings.ToUpper(s)) {
	case "H":
		return game.Hit, true
	case "S":
		return game.Stand, true
	case "D":
		return game.DoubleDown, true
	case "P":
		return game.SplitPair, true
	default:
		return game.Stand, false
	}
}
