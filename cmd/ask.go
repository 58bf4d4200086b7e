package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rorical/RoriChat/internal/console"
	"github.com/Rorical/RoriChat/internal/logging"
	"github.com/Rorical/RoriChat/internal/render"
	"github.com/Rorical/RoriChat/internal/transcript"
	"github.com/Rorical/RoriChat/internal/widget"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err := logging.New("", verbose)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		renderer, err := render.NewTerminal(80, "")
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}

		view := console.NewView(cmd.OutOrStdout(), renderer, true)
		w := widget.New(view, newClient(cfg), logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if !w.Submit(ctx, strings.Join(args, " ")) {
			return fmt.Errorf("question is empty")
		}

		if err := transcript.Save(cfg.GetTranscript(), "RoriChat", view.Messages()); err != nil {
			logger.Error("failed to save transcript", zap.Error(err))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
