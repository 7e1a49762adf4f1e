package openings

import (
	"testing"

	"github.com/matryer/is"

	"github.com/bgkit/gammon/board"
	"github.com/bgkit/gammon/move"
)

func TestLookupStandardFrame(t *testing.T) {
	is := is.New(t)
	book, err := NewBook()
	is.NoErr(err)

	pos := board.StartingPosition(board.PlayerB)
	seq, ok := book.Lookup(pos, board.Dice{6, 5})
	is.True(ok)
	is.True(seq.Equal(move.Sequence{
		{From: 24, To: 18, Die: 6},
		{From: 18, To: 13, Die: 5},
	}))

	// The roll key is unordered.
	swapped, ok := book.Lookup(pos, board.Dice{5, 6})
	is.True(ok)
	is.True(seq.Equal(swapped))
}

func TestLookupMirrored(t *testing.T) {
	is := is.New(t)
	book, err := NewBook()
	is.NoErr(err)

	pos := board.StartingPosition(board.PlayerA)
	seq, ok := book.Lookup(pos, board.Dice{3, 1})
	is.True(ok)
	// 8/5 6/5 in standard notation, mirrored for the upward mover.
	is.True(seq.Equal(move.Sequence{
		{From: 17, To: 20, Die: 3},
		{From: 19, To: 20, Die: 1},
	}))
}

func TestLookupMisses(t *testing.T) {
	is := is.New(t)
	book, err := NewBook()
	is.NoErr(err)
	start := board.StartingPosition(board.PlayerB)

	_, ok := book.Lookup(start, board.Dice{4, 4}) // doubles never open
	is.True(!ok)

	_, ok = book.Lookup(start, board.Dice{6, 6, 6, 6})
	is.True(!ok)

	moved := start
	moved.Points[24].Count = 1
	moved.Points[23] = board.Point{Owner: board.PlayerB, Count: 1}
	_, ok = book.Lookup(moved, board.Dice{6, 5})
	is.True(!ok)
}

func TestBookEntriesPlayLegally(t *testing.T) {
	is := is.New(t)
	book, err := NewBook()
	is.NoErr(err)

	// Every entry, replayed from the start, must leave a valid position
	// with both dice consumed.
	for _, pl := range []board.Player{board.PlayerA, board.PlayerB} {
		pos := board.StartingPosition(pl)
		for hi := uint8(2); hi <= 6; hi++ {
			for lo := uint8(1); lo < hi; lo++ {
				seq, ok := book.Lookup(pos, board.Dice{hi, lo})
				is.True(ok)
				is.Equal(len(seq), 2)
				is.Equal(seq[0].Die+seq[1].Die, hi+lo)
				after := pos.ApplySequence(seq)
				is.NoErr(after.Validate())
			}
		}
	}
}
