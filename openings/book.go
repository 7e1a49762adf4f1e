// Package openings holds the fixed opening book: the settled best plays
// for each two-die roll made on the exact starting position. The search
// controller consults it before generating anything.
package openings

import (
	_ "embed"
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/bgkit/gammon/board"
	"github.com/bgkit/gammon/move"
)

//go:embed book.yaml
var bookYAML []byte

type bookMove struct {
	From int   `yaml:"from"`
	To   int   `yaml:"to"`
	Die  uint8 `yaml:"die"`
}

type bookFile struct {
	Rolls map[string][]bookMove `yaml:"rolls"`
}

// Book maps an unordered opening roll to its fixed move pair, in
// PlayerB's frame (the side moving downward).
type Book struct {
	rolls map[string][]bookMove
}

// NewBook parses the embedded book.
func NewBook() (*Book, error) {
	var bf bookFile
	if err := yaml.Unmarshal(bookYAML, &bf); err != nil {
		return nil, fmt.Errorf("parsing opening book: %w", err)
	}
	for key, plays := range bf.Rolls {
		if len(plays) != 2 {
			return nil, fmt.Errorf("opening book entry %q has %d moves, want 2", key, len(plays))
		}
	}
	log.Debug().Int("entries", len(bf.Rolls)).Msg("opening-book-loaded")
	return &Book{rolls: bf.Rolls}, nil
}

// Lookup returns the book's fixed move pair if the snapshot is exactly the
// start position, exactly two dice remain, and an entry exists for that
// unordered pair. The returned sequence is in the mover's frame.
func (b *Book) Lookup(pos board.Position, pool board.Dice) (move.Sequence, bool) {
	if len(pool) != 2 || pool[0] == pool[1] {
		return nil, false
	}
	if pos != board.StartingPosition(pos.Mover) {
		return nil, false
	}
	hi, lo := pool[0], pool[1]
	if lo > hi {
		hi, lo = lo, hi
	}
	plays, ok := b.rolls[fmt.Sprintf("%d-%d", hi, lo)]
	if !ok {
		return nil, false
	}
	seq := make(move.Sequence, len(plays))
	for i, p := range plays {
		from, to := p.From, p.To
		if pos.Mover == board.PlayerA {
			from = board.BarDistance - from
			to = board.BarDistance - to
		}
		seq[i] = move.Move{From: int8(from), To: int8(to), Die: p.Die}
	}
	return seq, true
}
