package main

import (
	"fmt"

	"Damka/game/core"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr      string `env:"DAMKA_ADDR" envDefault:":8080"`
	BoardSize int    `env:"DAMKA_BOARD_SIZE" envDefault:"8"`
	Player1   string `env:"DAMKA_PLAYER1" envDefault:"Player 1"`
	Player2   string `env:"DAMKA_PLAYER2" envDefault:"Computer"`
	// StaticDir is served under /static when set.
	StaticDir string `env:"DAMKA_STATIC_DIR"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if !core.BoardSize(cfg.BoardSize).Valid() {
		return cfg, fmt.Errorf("%w: %d", core.ErrInvalidBoardSize, cfg.BoardSize)
	}
	return cfg, nil
}
