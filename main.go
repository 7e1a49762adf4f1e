package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bgkit/gammon/config"
	"github.com/bgkit/gammon/shell"
)

var debug = flag.Bool("debug", false, "enable debug logging")

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading-config")
	}

	sh, err := shell.NewShell(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("starting-shell")
	}
	defer sh.Close()
	sh.Loop()
}
