// Package console implements a line-oriented command interface to a position.
package console

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hailam/chesspos/internal/board"
	"github.com/hailam/chesspos/internal/render"
	"github.com/hailam/chesspos/internal/storage"
	"golang.org/x/exp/slices"
)

// Recorder receives the outcome of every interactively submitted move.
type Recorder interface {
	RecordMove(result storage.MoveResult) error
}

// Store is the persistent state the console reads and writes.
type Store interface {
	Recorder
	LoadPreferences() (*storage.Preferences, error)
	SavePreferences(prefs *storage.Preferences) error
	LoadStats() (*storage.MoveStats, error)
}

// Console reads commands and applies them to a single position.
type Console struct {
	position *board.Position
	store    Store // nil disables persistence
	prefs    *storage.Preferences
	out      io.Writer
}

// New creates a console writing to out. store may be nil.
func New(out io.Writer, store Store) *Console {
	c := &Console{
		position: board.NewPosition(),
		store:    store,
		prefs:    storage.DefaultPreferences(),
		out:      out,
	}
	if store != nil {
		prefs, err := store.LoadPreferences()
		if err != nil {
			log.Printf("console: load preferences: %v", err)
		} else {
			c.prefs = prefs
		}
	}
	return c
}

// SetPosition replaces the current position.
func (c *Console) SetPosition(pos *board.Position) {
	c.position = pos
}

// Position returns a copy of the current position.
func (c *Console) Position() *board.Position {
	return c.position.Clone()
}

// Run processes commands from in until "quit" or end of input.
func (c *Console) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		if quit := c.Execute(scanner.Text()); quit {
			return nil
		}
	}
	return scanner.Err()
}

// Execute runs one command line and reports whether it was "quit".
func (c *Console) Execute(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	parts := strings.Fields(line)
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "position":
		if board.DebugMoveValidation {
			log.Printf("console: position %s", strings.Join(args, " "))
		}
		c.handlePosition(args)
	case "move":
		if len(args) != 1 {
			c.printf("usage: move <from><to>\n")
			return false
		}
		c.handleMove(args[0])
	case "d":
		c.printf("%s\n", c.position.String())
	case "fen":
		c.printf("%s\n", c.position.ToFEN())
	case "moves":
		c.handleMoves()
	case "attacks":
		c.handleAttacks(args)
	case "perft":
		c.handlePerft(args)
	case "render":
		c.handleRender(args)
	case "prefs":
		c.handlePrefs(args)
	case "stats":
		c.handleStats()
	case "help":
		c.printHelp()
	case "quit":
		return true
	default:
		if _, _, err := board.ParseSquares(cmd); err == nil && len(args) == 0 {
			c.handleMove(cmd)
			return false
		}
		c.printf("unknown command: %s\n", cmd)
	}
	return false
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
//
// The current position is replaced only if the FEN and every move are valid.
func (c *Console) handlePosition(args []string) {
	if len(args) == 0 {
		c.printf("usage: position startpos|fen <fen> [moves ...]\n")
		return
	}

	movesAt := slices.Index(args, "moves")
	head := args
	var moves []string
	if movesAt >= 0 {
		head, moves = args[:movesAt], args[movesAt+1:]
	}
	if len(head) == 0 {
		c.printf("usage: position startpos|fen <fen> [moves ...]\n")
		return
	}

	var pos *board.Position
	switch head[0] {
	case "startpos":
		pos = board.NewPosition()
	case "fen":
		var err error
		pos, err = board.ParseFEN(strings.Join(head[1:], " "))
		if err != nil {
			c.printf("invalid fen: %v\n", err)
			return
		}
	default:
		c.printf("usage: position startpos|fen <fen> [moves ...]\n")
		return
	}

	for _, mv := range moves {
		if err := pos.MakeMoveUCI(mv); err != nil {
			c.printf("illegal move %s: %v\n", mv, err)
			return
		}
	}

	c.position = pos
	c.printf("%s\n", pos.ToFEN())
}

// handleMove plays one move, records the outcome and prints the new FEN.
func (c *Console) handleMove(s string) {
	from, to, err := board.ParseSquares(s)
	if err != nil {
		err = fmt.Errorf("%w: %v", board.ErrOffBoard, err)
		c.record(storage.MoveResult{Reason: board.Reason(err)})
		c.printf("illegal move %s: %v\n", s, err)
		return
	}

	b := c.position.Board()
	m := board.NewMove(from, to, &b)
	ep := m.IsEnPassant(c.position.EnPassant())

	if err := c.position.MakeMove(from, to); err != nil {
		c.record(storage.MoveResult{Reason: board.Reason(err)})
		c.printf("illegal move %s: %v\n", s, err)
		return
	}

	c.record(storage.MoveResult{
		Capture:   m.IsCapture() || ep,
		Castle:    m.IsCastling(),
		EnPassant: ep,
	})
	c.printf("%s\n", c.position.ToFEN())
}

func (c *Console) record(result storage.MoveResult) {
	if c.store == nil {
		return
	}
	if err := c.store.RecordMove(result); err != nil {
		log.Printf("console: record move: %v", err)
	}
}

// handleMoves lists the legal moves in square order.
func (c *Console) handleMoves() {
	moves := c.position.LegalMoves()
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.String())
	}
	slices.Sort(names)
	c.printf("%d: %s\n", len(names), strings.Join(names, " "))
}

// handleAttacks prints the attack map of one color, by default the side
// not to move.
func (c *Console) handleAttacks(args []string) {
	color := c.position.SideToMove().Other()
	if len(args) > 0 {
		switch args[0] {
		case "white", "w":
			color = board.White
		case "black", "b":
			color = board.Black
		default:
			c.printf("usage: attacks [white|black]\n")
			return
		}
	}
	c.printf("%s attacks:\n%s", color, c.position.Attacks(color))
}

// handlePerft runs a perft test.
func (c *Console) handlePerft(args []string) {
	depth := 3
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 1 {
			c.printf("invalid depth: %s\n", args[0])
			return
		}
		depth = d
	}

	start := time.Now()
	nodes := board.Perft(c.position, depth)
	elapsed := time.Since(start)

	c.printf("Nodes: %d\n", nodes)
	c.printf("Time: %v\n", elapsed)
	if elapsed > 0 {
		nps := float64(nodes) / elapsed.Seconds()
		c.printf("NPS: %.0f\n", nps)
	}
}

// handleRender writes the position as a PNG using the stored preferences.
func (c *Console) handleRender(args []string) {
	if len(args) != 1 {
		c.printf("usage: render <file.png>\n")
		return
	}

	f, err := os.Create(args[0])
	if err != nil {
		c.printf("render: %v\n", err)
		return
	}

	opts := render.Options{
		SquareSize:  c.prefs.SquareSize,
		Flip:        c.prefs.Flip,
		ShowAttacks: c.prefs.ShowAttacks,
	}
	err = render.WritePNG(f, c.position, opts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		c.printf("render: %v\n", err)
		return
	}
	c.printf("wrote %s\n", args[0])
}

// handlePrefs shows preferences, or changes one with "prefs <key> <value>".
func (c *Console) handlePrefs(args []string) {
	if len(args) == 0 {
		p := c.prefs
		c.printf("username %s\nsize %d\nflip %v\nattacks %v\n", p.Username, p.SquareSize, p.Flip, p.ShowAttacks)
		return
	}
	if len(args) != 2 {
		c.printf("usage: prefs [username|size|flip|attacks <value>]\n")
		return
	}

	key, value := args[0], args[1]
	switch key {
	case "username":
		c.prefs.Username = value
	case "size":
		n, err := strconv.Atoi(value)
		if err != nil || n < 16 {
			c.printf("invalid size: %s\n", value)
			return
		}
		c.prefs.SquareSize = n
	case "flip", "attacks":
		b, err := strconv.ParseBool(value)
		if err != nil {
			c.printf("invalid %s: %s\n", key, value)
			return
		}
		if key == "flip" {
			c.prefs.Flip = b
		} else {
			c.prefs.ShowAttacks = b
		}
	default:
		c.printf("unknown preference: %s\n", key)
		return
	}

	if c.store != nil {
		if err := c.store.SavePreferences(c.prefs); err != nil {
			c.printf("prefs: %v\n", err)
			return
		}
	}
	c.printf("%s set to %s\n", key, value)
}

func (c *Console) handleStats() {
	if c.store == nil {
		c.printf("storage disabled\n")
		return
	}

	stats, err := c.store.LoadStats()
	if err != nil {
		c.printf("stats: %v\n", err)
		return
	}

	c.printf("applied %d\nrejected %d (%.1f%%)\ncaptures %d\ncastles %d\nen passant %d\n",
		stats.Applied, stats.Rejected, stats.RejectionRate(), stats.Captures, stats.Castles, stats.EnPassant)

	reasons := make([]string, 0, len(stats.RejectedByReason))
	for r := range stats.RejectedByReason {
		reasons = append(reasons, r)
	}
	slices.Sort(reasons)
	for _, r := range reasons {
		c.printf("  %s %d\n", r, stats.RejectedByReason[r])
	}
}

func (c *Console) printHelp() {
	c.printf(`commands:
  position startpos|fen <fen> [moves <m>...]
  move <from><to>   (or just <from><to>)
  d                 show the board
  fen               print the FEN
  moves             list legal moves
  attacks [white|black]
  perft [depth]
  render <file.png>
  prefs [<key> <value>]
  stats
  quit
`)
}
