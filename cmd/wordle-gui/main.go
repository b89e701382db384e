// Command wordle-gui plays Wordle in a window.
package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/config"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/gui"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/scene"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file (default $WORDLE_CONFIG)")
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

	m := scene.New(func() (*game.Session, error) {
		s, err := game.Start(list)
		if err == nil {
			log.Debug().Str("gameId", s.ID).Str("answer", s.Secret()).Msg("session started")
		}
		return s, err
	})

	ebiten.SetWindowSize(gui.ScreenWidth, gui.ScreenHeight)
	ebiten.SetWindowTitle(gui.WindowTitle)
	if err := ebiten.RunGame(gui.New(m)); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
