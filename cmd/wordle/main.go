// Command wordle plays Wordle in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/config"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/console"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file (default $WORDLE_CONFIG)")
	dailyMode := flag.Bool("daily", false, "play the word of the day")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	config.SetupLogging(cfg, true)

	list, err := words.Load(cfg.Words.AnswersFile, cfg.Words.AllowedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	opts := console.Options{
		ShowSecret:  cfg.Console.ShowSecret,
		RevealDelay: cfg.Console.RevealDelay,
	}
	if *dailyMode {
		opts.Daily = &daily.Picker{Salt: cfg.Server.DailySalt}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Run blocks on stdin, so an interrupt is handled here rather than by Run.
	errc := make(chan error, 1)
	go func() { errc <- console.New(os.Stdin, os.Stdout, list, opts).Run(ctx) }()
	select {
	case err := <-errc:
		if err != nil {
			log.Fatal().Err(err).Msg("game exited")
		}
	case <-ctx.Done():
		fmt.Fprintln(os.Stdout)
	}
}
