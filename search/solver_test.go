package search

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/bgkit/gammon/board"
	"github.com/bgkit/gammon/config"
	"github.com/bgkit/gammon/equity"
	"github.com/bgkit/gammon/move"
	"github.com/bgkit/gammon/openings"
)

func mustParse(t *testing.T, s string) board.Position {
	t.Helper()
	pos, err := board.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return pos
}

func newTestSolver() *Solver {
	return NewSolver(config.DefaultConfig(), equity.NewEvaluator(nil), nil)
}

func TestSolveDeterministic(t *testing.T) {
	is := is.New(t)
	pos := board.StartingPosition(board.PlayerA)
	pool := board.Dice{3, 1}

	s := newTestSolver()
	v1, seq1, err := s.Solve(context.Background(), pos, pool)
	is.NoErr(err)
	v2, seq2, err := s.Solve(context.Background(), pos, pool)
	is.NoErr(err)
	is.Equal(v1, v2)
	is.True(seq1.Equal(seq2))

	// A fresh solver agrees: no hidden state influences selection.
	_, seq3, err := newTestSolver().Solve(context.Background(), pos, pool)
	is.NoErr(err)
	is.True(seq1.Equal(seq3))
}

func TestSolveForcedBarEntry(t *testing.T) {
	is := is.New(t)
	// A is on the bar, entry with the 3 is blocked, so every legal play
	// begins by entering with the 5.
	pos := mustParse(t, "bar.a:1 a12:5 a17:4 a19:5 "+
		"b3:2 b24:2 b13:4 b8:2 b6:5 mover:a")

	_, seq, err := newTestSolver().Solve(context.Background(), pos, board.Dice{3, 5})
	is.NoErr(err)
	is.True(len(seq) > 0)
	is.True(seq[0].IsBarEntry())
	is.Equal(seq[0].Die, uint8(5))
}

func TestSolveForcedPass(t *testing.T) {
	is := is.New(t)
	// A is on the bar against a closed board.
	pos := mustParse(t, "bar.a:1 a12:5 a17:4 a19:5 "+
		"b1:2 b2:2 b3:2 b4:2 b5:3 b6:4 mover:a")

	_, seq, err := newTestSolver().Solve(context.Background(), pos, board.Dice{6, 2})
	is.NoErr(err)
	is.Equal(len(seq), 0)
	is.Equal(seq.String(), "(no play)")
}

func TestSolvePrefersBearingOff(t *testing.T) {
	is := is.New(t)
	pos := mustParse(t, "a19:5 a20:5 a21:5 b1:5 b2:5 b3:5 mover:a")

	s := newTestSolver()
	_, seq, err := s.Solve(context.Background(), pos, board.Dice{6, 5})
	is.NoErr(err)
	is.Equal(len(seq), 2)
	offs := 0
	for _, m := range seq {
		if m.IsBearOff() {
			offs++
		}
	}
	// 19/off with the 6 and 20/off with the 5 beat any shuffling play.
	is.Equal(offs, 2)
	is.True(s.Nodes() > 0) // few candidates, so the deep search ran
}

func TestSolveOpeningBook(t *testing.T) {
	is := is.New(t)
	book, err := openings.NewBook()
	is.NoErr(err)
	s := NewSolver(config.DefaultConfig(), equity.NewEvaluator(nil), book)

	pos := board.StartingPosition(board.PlayerA)
	score, seq, err := s.Solve(context.Background(), pos, board.Dice{6, 5})
	is.NoErr(err)
	is.Equal(score, 0.0) // book hits skip evaluation entirely
	is.True(seq.Equal(move.Sequence{
		{From: 1, To: 7, Die: 6},
		{From: 7, To: 12, Die: 5},
	}))

	// With the book off the pipeline runs and still returns a full play.
	s.SetBookOptim(false)
	_, seq, err = s.Solve(context.Background(), pos, board.Dice{6, 5})
	is.NoErr(err)
	is.Equal(len(seq), 2)
}

func TestSolveRejectsMalformedInput(t *testing.T) {
	is := is.New(t)
	s := newTestSolver()
	pos := board.StartingPosition(board.PlayerA)

	_, _, err := s.Solve(context.Background(), pos, board.Dice{0, 3})
	is.True(err != nil)

	bad := pos
	bad.Points[1].Count = 1 // 14 checkers for A
	_, _, err = s.Solve(context.Background(), bad, board.Dice{3, 1})
	is.True(errors.Is(err, board.ErrConservation))
}

func TestSolveHonorsContext(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := newTestSolver().Solve(ctx, board.StartingPosition(board.PlayerA), board.Dice{3, 1})
	is.True(errors.Is(err, context.Canceled))
}

func TestFilterDropsBlotInOpponentHome(t *testing.T) {
	is := is.New(t)
	pos := board.StartingPosition(board.PlayerA)

	exposed := &candidate{result: mustParse(t, "a2:1 a12:5 a17:4 a19:5 "+
		"b24:2 b13:5 b8:3 b6:5 mover:a")}
	safe := &candidate{result: board.StartingPosition(board.PlayerA)}

	kept := applyFilters(pos, []*candidate{exposed, safe})
	is.Equal(len(kept), 1)
	is.Equal(kept[0], safe)
}

func TestFilterWaivedWhenNothingSurvives(t *testing.T) {
	is := is.New(t)
	pos := board.StartingPosition(board.PlayerA)
	exposed := &candidate{result: mustParse(t, "a2:1 a12:5 a17:4 a19:5 "+
		"b24:2 b13:5 b8:3 b6:5 mover:a")}

	// The only candidate violates the blot filter; the filter must yield
	// rather than leave the turn with no play.
	kept := applyFilters(pos, []*candidate{exposed})
	is.Equal(len(kept), 1)
	is.Equal(kept[0], exposed)
}
