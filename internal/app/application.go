package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Rorical/RoriChat/internal/backend"
	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/core"
	"github.com/Rorical/RoriChat/internal/dispatcher"
	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/transcript"
	"github.com/Rorical/RoriChat/internal/widget"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	logger     *zap.Logger
	dispatcher *dispatcher.EventDispatcher
	service    *core.ChatService
	model      *AppModel
}

func NewApplication(cfg *config.Config, logger *zap.Logger) *Application {
	if logger == nil {
		logger = zap.NewNop()
	}

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(err eventbus.EventBusError) {
		logger.Warn("event bus error", zap.String("operation", err.Operation), zap.Error(err.Err))
	})

	disp := dispatcher.NewEventDispatcher(eb)

	client := backend.NewClient(backend.Options{
		ServerURL: cfg.GetServerURL(),
		ChatPath:  cfg.GetChatPath(),
		Timeout:   cfg.GetTimeout(),
	})
	chatService := core.NewChatService(client, eb, logger)

	state := createInitialState(cfg)
	view := newTUIView(state, "")
	w := widget.New(view, client, logger)

	return &Application{
		config:     cfg,
		logger:     logger,
		dispatcher: disp,
		service:    chatService,
		model:      newAppModel(state, view, w, disp),
	}
}

func (app *Application) Start() error {
	app.service.Start()
	app.logger.Info("chat started",
		zap.String("profile", app.config.ActiveProfile),
		zap.String("server", app.config.GetServerURL()))

	p := tea.NewProgram(app.model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.GetEventBus().Close()

	if err := transcript.Save(app.config.GetTranscript(), "RoriChat", app.model.view.Messages()); err != nil {
		app.logger.Error("failed to save transcript", zap.Error(err))
	}
	_ = app.logger.Sync()
}

func createInitialState(cfg *config.Config) *models.AppModel {
	return &models.AppModel{
		Status:        "Ready",
		InputEnabled:  false,
		ServerURL:     cfg.GetServerURL(),
		ActiveProfile: cfg.ActiveProfile,
	}
}
