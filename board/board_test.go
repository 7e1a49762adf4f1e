package board

import (
	"testing"

	"github.com/matryer/is"

	"github.com/bgkit/gammon/move"
)

func TestStartingPositionValid(t *testing.T) {
	is := is.New(t)
	pos := StartingPosition(PlayerA)
	is.NoErr(pos.Validate())
	is.Equal(pos.CheckersOn(PlayerA), 15)
	is.Equal(pos.CheckersOn(PlayerB), 15)
}

func TestStartingPipCount(t *testing.T) {
	is := is.New(t)
	pos := StartingPosition(PlayerA)
	// The standard start is 167 pips for both sides.
	is.Equal(pos.PipCount(PlayerA), 167)
	is.Equal(pos.PipCount(PlayerB), 167)
}

func TestValidateCatchesConservation(t *testing.T) {
	is := is.New(t)
	pos := StartingPosition(PlayerA)
	pos.Points[1].Count = 3 // 16 checkers for A
	err := pos.Validate()
	is.True(err != nil)
}

func TestValidateCatchesOwnerCountMismatch(t *testing.T) {
	is := is.New(t)
	pos := StartingPosition(PlayerA)
	pos.Points[2] = Point{Owner: PlayerA, Count: 0}
	err := pos.Validate()
	is.True(err != nil)
}

func TestApplyPlainMove(t *testing.T) {
	is := is.New(t)
	pos := StartingPosition(PlayerA)
	next := pos.Apply(move.Move{From: 1, To: 7, Die: 6})
	is.NoErr(next.Validate())
	is.Equal(next.Points[1], Point{Owner: PlayerA, Count: 1})
	is.Equal(next.Points[7], Point{Owner: PlayerA, Count: 1})
	// The original snapshot is untouched.
	is.Equal(pos.Points[1].Count, uint8(2))
}

func TestApplyHitSendsToBar(t *testing.T) {
	is := is.New(t)
	pos, err := Parse("a1:2 a12:5 a17:3 a19:4 a5:1 " +
		"b24:2 b13:5 b8:4 b6:3 b7:1 mover:a")
	is.NoErr(err)
	// A hits B's blot on 7 from 1 with a 6.
	next := pos.Apply(move.Move{From: 1, To: 7, Die: 6})
	is.NoErr(next.Validate())
	is.Equal(next.Points[7], Point{Owner: PlayerA, Count: 1})
	is.Equal(next.BarCount(PlayerB), 1)
	is.Equal(pos.BarCount(PlayerB), 0)
}

func TestApplyBarEntry(t *testing.T) {
	is := is.New(t)
	pos, err := Parse("bar.a:1 a12:5 a17:4 a19:5 " +
		"b24:2 b13:5 b8:3 b6:5 mover:a")
	is.NoErr(err)
	next := pos.Apply(move.Move{From: move.BarSource, To: 3, Die: 3})
	is.NoErr(next.Validate())
	is.Equal(next.BarCount(PlayerA), 0)
	is.Equal(next.Points[3], Point{Owner: PlayerA, Count: 1})
}

func TestApplyBearOff(t *testing.T) {
	is := is.New(t)
	pos, err := Parse("a19:5 a20:5 a21:5 b1:5 b2:5 b3:5 mover:a")
	is.NoErr(err)
	next := pos.Apply(move.Move{From: 19, To: move.OffTarget, Die: 6})
	is.NoErr(next.Validate())
	is.Equal(next.OffCount(PlayerA), 1)
	is.Equal(next.Points[19].Count, uint8(4))
}

func TestAllHome(t *testing.T) {
	is := is.New(t)
	pos, err := Parse("a19:5 a20:5 a21:5 b1:5 b2:5 b3:5 mover:a")
	is.NoErr(err)
	is.True(pos.AllHome(PlayerA))
	is.True(pos.AllHome(PlayerB))

	pos2, err := Parse("a18:1 a19:4 a20:5 a21:5 b1:5 b2:5 b3:5 mover:a")
	is.NoErr(err)
	is.True(!pos2.AllHome(PlayerA))
}

func TestBackmost(t *testing.T) {
	is := is.New(t)
	pos := StartingPosition(PlayerA)
	is.Equal(pos.Backmost(PlayerA), 1)
	is.Equal(pos.Backmost(PlayerB), 24)
}

func TestEncodeDistinguishesPositions(t *testing.T) {
	is := is.New(t)
	a := StartingPosition(PlayerA)
	b := StartingPosition(PlayerB)
	is.True(a.Encode() != b.Encode())

	c := a.Apply(move.Move{From: 1, To: 3, Die: 2})
	is.True(a.Encode() != c.Encode())
	is.Equal(a.Encode(), StartingPosition(PlayerA).Encode())
}

func TestParseFormatRoundTrip(t *testing.T) {
	is := is.New(t)
	pos, err := Parse("a1:2 a12:5 a17:3 a19:4 bar.a:1 " +
		"b24:2 b13:5 b8:3 b6:4 off.b:1 mover:b")
	is.NoErr(err)
	is.Equal(pos.BarCount(PlayerA), 1)
	is.Equal(pos.OffCount(PlayerB), 1)
	is.Equal(pos.Mover, PlayerB)

	again, err := Parse(pos.Format())
	is.NoErr(err)
	is.Equal(pos, again)
}

func TestParseRejectsBadInput(t *testing.T) {
	for _, in := range []string{
		"a1:2 mover:a",            // conservation
		"a25:2 mover:a",           // bad point
		"garbage",                 // bad token
		"a1:2 a1:3 mover:a",       // point set twice
		"a1:15 b24:15",            // no mover
		"c1:15 b24:15 mover:a",    // bad player
		"a1:15 b24:15 mover:a x",  // dangling token
		"a1:15 b24:16 mover:a",    // too many checkers
	} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should have failed", in)
		}
	}
}

func TestDicePool(t *testing.T) {
	is := is.New(t)
	is.Equal(len(NewRoll(6, 6)), 4)
	is.Equal(len(NewRoll(6, 5)), 2)

	pool := NewRoll(6, 5)
	rest := pool.Remove(6)
	is.Equal(len(rest), 1)
	is.Equal(rest[0], uint8(5))
	// Remove does not touch the receiver.
	is.Equal(len(pool), 2)

	is.Equal(len(NewRoll(3, 3).Distinct()), 1)
	is.Equal(len(pool.Distinct()), 2)
	is.True(pool.Contains(5))
	is.True(!rest.Contains(6))
}
