// Package shell is the interactive analyzer: set up a position, roll or
// set dice, and ask the engine for its best sequence.
package shell

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/bgkit/gammon/board"
	"github.com/bgkit/gammon/config"
	"github.com/bgkit/gammon/equity"
	"github.com/bgkit/gammon/openings"
	"github.com/bgkit/gammon/search"
)

type Shell struct {
	cfg       *config.Config
	evaluator *equity.Evaluator
	solver    *search.Solver

	pos  board.Position
	dice board.Dice

	l *readline.Instance
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewShell(cfg *config.Config) (*Shell, error) {
	book, err := openings.NewBook()
	if err != nil {
		return nil, err
	}
	ev := equity.NewEvaluator(cfg)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mgammon>\033[0m ",
		HistoryFile:     "/tmp/gammon_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return &Shell{
		cfg:       cfg,
		evaluator: ev,
		solver:    search.NewSolver(cfg, ev, book),
		pos:       board.StartingPosition(board.PlayerA),
		l:         l,
	}, nil
}

func (s *Shell) Close() error {
	return s.l.Close()
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "show - display the current position\n")
	io.WriteString(w, "set <tokens> - set up a position, e.g. set a1:2 a12:5 ... mover:a\n")
	io.WriteString(w, "reset [a|b] - back to the start position with that side to move\n")
	io.WriteString(w, "roll - roll two dice for the mover\n")
	io.WriteString(w, "dice <d1> <d2> - set the dice by hand\n")
	io.WriteString(w, "best - find the best sequence for the current dice\n")
	io.WriteString(w, "eval - print the evaluation breakdown for the mover\n")
	io.WriteString(w, "phase - print the detected game phase\n")
	io.WriteString(w, "exit - quit\n")
}

func (s *Shell) Loop() {
	for {
		line, err := s.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "exit" || line == "bye" {
			break
		}
		if line == "" {
			continue
		}
		if err := s.execute(line); err != nil {
			fmt.Fprintf(s.l.Stderr(), "error: %v\n", err)
		}
	}
}

func (s *Shell) out(format string, args ...interface{}) {
	fmt.Fprintf(s.l.Stdout(), format, args...)
}

func (s *Shell) execute(line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		usage(s.l.Stderr())
	case "show":
		s.out("%s", s.pos.Render())
		if len(s.dice) > 0 {
			s.out("dice: %v\n", s.dice)
		}
	case "set":
		pos, err := board.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		s.pos = pos
		s.dice = nil
		s.out("%s", s.pos.Render())
	case "reset":
		mover := board.PlayerA
		if len(args) > 0 && strings.EqualFold(args[0], "b") {
			mover = board.PlayerB
		}
		s.pos = board.StartingPosition(mover)
		s.dice = nil
		s.out("%s", s.pos.Render())
	case "roll":
		d1 := uint8(frand.Intn(6) + 1)
		d2 := uint8(frand.Intn(6) + 1)
		s.dice = board.NewRoll(d1, d2)
		s.out("rolled %d %d\n", d1, d2)
	case "dice":
		if len(args) != 2 {
			return fmt.Errorf("usage: dice <d1> <d2>")
		}
		d1, err1 := strconv.Atoi(args[0])
		d2, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil {
			return fmt.Errorf("usage: dice <d1> <d2>")
		}
		dice := board.NewRoll(uint8(d1), uint8(d2))
		if err := dice.Validate(); err != nil {
			return err
		}
		s.dice = dice
	case "best":
		if len(s.dice) == 0 {
			return fmt.Errorf("no dice; use roll or dice first")
		}
		value, seq, err := s.solver.Solve(context.Background(), s.pos, s.dice)
		if err != nil {
			return err
		}
		s.out("best: %s (value %.1f)\n", seq, value)
		s.out("%s", s.pos.ApplySequence(seq).Render())
	case "eval":
		bd := s.evaluator.Explain(s.pos, s.pos.Mover)
		s.out("phase: %s\n", bd.Phase)
		for _, t := range bd.Terms {
			s.out("%-13s own %8.2f  opp %8.2f  w %6.2f  -> %8.2f\n",
				t.Name, t.Own, t.Opp, t.Weight, t.Value())
		}
		s.out("%-13s %45.2f\n", "key-points", bd.KeyPoint)
		s.out("%-13s %45.2f\n", "home-rush", bd.HomeRush)
		s.out("%-13s %45.2f\n", "total", bd.Total)
	case "phase":
		s.out("%s\n", equity.DetectPhase(s.pos, s.pos.Mover))
	default:
		log.Debug().Str("line", line).Msg("unknown-command")
		return fmt.Errorf("unknown command %q; try help", cmd)
	}
	return nil
}
