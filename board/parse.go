package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse builds a position from a compact text form used by the shell and
// tests. Tokens are whitespace separated:
//
//	a12:5      five PlayerA checkers on point 12
//	bar.b:1    one PlayerB checker on the bar
//	off.a:2    two PlayerA checkers borne off
//	mover:a    side to move
//
// Example: "a1:2 a12:5 a17:3 a19:5 b24:2 b13:5 b8:3 b6:5 mover:a" is the
// starting position. Parse validates the result before returning it.
func Parse(s string) (Position, error) {
	var pos Position
	for _, tok := range strings.Fields(s) {
		name, val, ok := strings.Cut(tok, ":")
		if !ok {
			return Position{}, fmt.Errorf("bad token %q", tok)
		}
		switch {
		case name == "mover":
			pl, err := parsePlayer(val)
			if err != nil {
				return Position{}, err
			}
			pos.Mover = pl
		case strings.HasPrefix(name, "bar."):
			pl, err := parsePlayer(strings.TrimPrefix(name, "bar."))
			if err != nil {
				return Position{}, err
			}
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 || n > NumCheckers {
				return Position{}, fmt.Errorf("bad bar count %q", tok)
			}
			pos.Bar[side(pl)] = uint8(n)
		case strings.HasPrefix(name, "off."):
			pl, err := parsePlayer(strings.TrimPrefix(name, "off."))
			if err != nil {
				return Position{}, err
			}
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 || n > NumCheckers {
				return Position{}, fmt.Errorf("bad off count %q", tok)
			}
			pos.Off[side(pl)] = uint8(n)
		default:
			pl, err := parsePlayer(name[:1])
			if err != nil {
				return Position{}, fmt.Errorf("bad token %q", tok)
			}
			pt, err := strconv.Atoi(name[1:])
			if err != nil || pt < 1 || pt > NumPoints {
				return Position{}, fmt.Errorf("bad point in %q", tok)
			}
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 || n > NumCheckers {
				return Position{}, fmt.Errorf("bad count in %q", tok)
			}
			if pos.Points[pt].Owner != NoPlayer {
				return Position{}, fmt.Errorf("point %d set twice", pt)
			}
			pos.Points[pt] = Point{Owner: pl, Count: uint8(n)}
		}
	}
	if err := pos.Validate(); err != nil {
		return Position{}, err
	}
	return pos, nil
}

func parsePlayer(s string) (Player, error) {
	switch strings.ToLower(s) {
	case "a":
		return PlayerA, nil
	case "b":
		return PlayerB, nil
	}
	return NoPlayer, fmt.Errorf("bad player %q", s)
}

// Format renders the position in the same token form Parse accepts.
func (p Position) Format() string {
	var sb strings.Builder
	for pt := 1; pt <= NumPoints; pt++ {
		if p.Points[pt].Owner != NoPlayer {
			fmt.Fprintf(&sb, "%s%d:%d ", strings.ToLower(p.Points[pt].Owner.String()), pt, p.Points[pt].Count)
		}
	}
	for _, pl := range []Player{PlayerA, PlayerB} {
		if p.Bar[side(pl)] > 0 {
			fmt.Fprintf(&sb, "bar.%s:%d ", strings.ToLower(pl.String()), p.Bar[side(pl)])
		}
		if p.Off[side(pl)] > 0 {
			fmt.Fprintf(&sb, "off.%s:%d ", strings.ToLower(pl.String()), p.Off[side(pl)])
		}
	}
	fmt.Fprintf(&sb, "mover:%s", strings.ToLower(p.Mover.String()))
	return sb.String()
}
