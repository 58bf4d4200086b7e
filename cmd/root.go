package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rorical/RoriChat/internal/app"
	"github.com/Rorical/RoriChat/internal/backend"
	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/console"
	"github.com/Rorical/RoriChat/internal/logging"
	"github.com/Rorical/RoriChat/internal/render"
	"github.com/Rorical/RoriChat/internal/transcript"
	"github.com/Rorical/RoriChat/internal/widget"
)

var (
	serverURL      string
	plainMode      bool
	transcriptPath string
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "rorichat",
	Short: "Terminal chat client for a /chat question-answering backend",
	Long: `RoriChat sends your questions to a chat backend and renders the
answers as formatted markdown.

Run without arguments to start the interactive chat interface.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runChat(cfg)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "backend base URL (overrides the active profile)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&transcriptPath, "transcript", "", "save the conversation as HTML to this file on exit")
	rootCmd.PersistentFlags().BoolVar(&plainMode, "plain", false, "use a line-oriented prompt instead of the full-screen UI")

	rootCmd.AddCommand(profileCmd)
}

// loadConfig applies command-line overrides on top of the config file and
// environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.OverrideServerURL(serverURL)
	cfg.OverrideTranscript(transcriptPath)
	return cfg, nil
}

func newClient(cfg *config.Config) *backend.Client {
	return backend.NewClient(backend.Options{
		ServerURL: cfg.GetServerURL(),
		ChatPath:  cfg.GetChatPath(),
		Timeout:   cfg.GetTimeout(),
	})
}

func runChat(cfg *config.Config) error {
	if plainMode {
		return runPlain(cfg)
	}

	// The full-screen UI owns the terminal, so diagnostics go to a file
	logger, err := logging.New(cfg.GetLogFile(), verbose)
	if err != nil {
		return err
	}

	application := app.NewApplication(cfg, logger)
	defer application.Stop()

	if err := application.Start(); err != nil {
		return fmt.Errorf("application error: %w", err)
	}
	return nil
}

func runPlain(cfg *config.Config) error {
	logger, err := logging.New("", verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	renderer, err := render.NewTerminal(80, "")
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	rl, err := console.NewReader()
	if err != nil {
		return err
	}
	defer rl.Close()

	view := console.NewView(os.Stdout, renderer, false)
	w := widget.New(view, newClient(cfg), logger)

	fmt.Printf("Connected to %s (profile %s). Type 'exit' to quit.\n\n", cfg.GetServerURL(), cfg.ActiveProfile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := console.Run(ctx, rl, w)

	if err := transcript.Save(cfg.GetTranscript(), "RoriChat", view.Messages()); err != nil {
		logger.Error("failed to save transcript", zap.Error(err))
	}
	return runErr
}
