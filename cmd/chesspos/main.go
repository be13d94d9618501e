// Command chesspos is an interactive chess position console.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/chesspos/internal/board"
	"github.com/hailam/chesspos/internal/console"
	"github.com/hailam/chesspos/internal/storage"
)

var (
	fen        = flag.String("fen", "", "starting position in FEN (default: standard start)")
	dbDir      = flag.String("db", "", "database directory (default: platform data dir)")
	noDB       = flag.Bool("nodb", false, "run without persistent storage")
	debug      = flag.Bool("debug", false, "log every rejected move")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

// envOr returns the flag value, or the environment variable when the flag is empty.
func envOr(value, key string) string {
	if value == "" {
		return os.Getenv(key)
	}
	return value
}

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	if profilePath := envOr(*cpuprofile, "CPUPROFILE"); profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	board.DebugMoveValidation = *debug

	var store console.Store
	if !*noDB {
		s, err := openStorage(envOr(*dbDir, "CHESSPOS_DB"))
		if err != nil {
			log.Printf("Warning: storage unavailable: %v (preferences and stats disabled)", err)
		} else {
			defer s.Close()
			store = s
		}
	}

	c := console.New(os.Stdout, store)
	if start := envOr(*fen, "CHESSPOS_FEN"); start != "" {
		pos, err := board.ParseFEN(start)
		if err != nil {
			log.Fatal("invalid starting FEN: ", err)
		}
		c.SetPosition(pos)
	}

	if err := c.Run(os.Stdin); err != nil {
		log.Printf("reading input: %v", err)
	}
}

func openStorage(dir string) (*storage.Storage, error) {
	if dir == "" {
		return storage.NewStorage()
	}
	return storage.Open(dir)
}
