package core

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/widget"
)

// ChatService answers AskEvents from the UI. Every ask gets its own
// goroutine, so nothing here serializes or queues requests.
type ChatService struct {
	asker    widget.Asker
	eventBus *eventbus.EventBus
	logger   *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	inFlight sync.WaitGroup
	done     chan struct{}
}

func NewChatService(asker widget.Asker, eb *eventbus.EventBus, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &ChatService{
		asker:    asker,
		eventBus: eb,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Start runs the core logic in a goroutine
func (cs *ChatService) Start() {
	go cs.eventLoop()
}

// Stop cancels outstanding requests and waits for their goroutines.
func (cs *ChatService) Stop() {
	cs.cancel()
	<-cs.done
	cs.inFlight.Wait()
}

func (cs *ChatService) eventLoop() {
	defer close(cs.done)
	for {
		select {
		case <-cs.ctx.Done():
			return
		case event, ok := <-cs.eventBus.UIToCore():
			if !ok {
				return
			}
			cs.handleUIEvent(event)
		}
	}
}

func (cs *ChatService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.AskEvent:
		cs.inFlight.Add(1)
		go cs.answer(e)
	}
}

func (cs *ChatService) answer(e eventbus.AskEvent) {
	defer cs.inFlight.Done()

	reply := cs.asker.Ask(cs.ctx, e.Question)
	if err := cs.eventBus.SendToUI(eventbus.ReplyEvent{Question: e.Question, Reply: reply}); err != nil {
		cs.logger.Warn("dropping reply", zap.String("outcome", reply.Outcome.String()), zap.Error(err))
	}
}
