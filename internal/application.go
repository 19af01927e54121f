package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitlinegames/tictactoe-cli/internal/apperror"
	"github.com/bitlinegames/tictactoe-cli/internal/config"
	"github.com/bitlinegames/tictactoe-cli/internal/transport/terminal"
	"github.com/bitlinegames/tictactoe-cli/pkg/tictactoe"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	game := tictactoe.NewGame()
	session := terminal.New(logger, game, os.Stdin, os.Stdout, terminal.Options{
		Profile:   terminal.ProfileFor(conf.ColorMode),
		ShowMoves: conf.ShowMoves,
	})

	log.Info("Starting match")

	if err := session.Run(ctx); err != nil {
		if errors.Is(err, apperror.ErrMatchAbandoned) {
			log.Info("Match abandoned, shutting down")
			return nil
		}

		return fmt.Errorf("terminal session error: %w", err)
	}

	log.Info("Match finished", "state", game.State().String())

	return nil
}
