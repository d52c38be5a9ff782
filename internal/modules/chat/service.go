// README: Chat assistant service (windowed history, one completions call per turn).
package chat

import (
	"context"
	"errors"
	"strings"

	"travelgenie/internal/ai"
)

// historyWindow bounds how many prior messages are sent with each turn.
const historyWindow = 10

const welcomeText = "Hi 👋 I'm your travel assistant. I can help with flights, hotels, and a day-by-day plan. Where are you flying from and where do you want to go? ✈️"

var ErrEmptyMessage = errors.New("message is empty")

// Service owns one conversation with the assistant.
type Service struct {
	provider ai.Provider
	store    *Store
}

// NewService seeds the assistant greeting when the restored history is empty.
func NewService(provider ai.Provider, store *Store) *Service {
	s := &Service{provider: provider, store: store}
	if store.Len() == 0 {
		store.Append(newMessage(SenderAssistant, welcomeText))
	}
	return s
}

func (s *Service) History() []Message {
	return s.store.Messages()
}

// Send appends the user's message, sends the recent window to the model and
// appends the assistant's reply verbatim. On failure the user message stays in
// the history and the error is surfaced to the caller; there is no retry.
func (s *Service) Send(ctx context.Context, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}

	s.store.Append(newMessage(SenderUser, text))

	window := s.store.Tail(historyWindow)
	history := make([]ai.Message, 0, len(window))
	for _, m := range window {
		role := "assistant"
		if m.Sender == SenderUser {
			role = "user"
		}
		history = append(history, ai.Message{Role: role, Content: m.Text})
	}

	reply, err := s.provider.Chat(ctx, history)
	if err != nil {
		return Message{}, err
	}

	msg := newMessage(SenderAssistant, reply)
	s.store.Append(msg)
	return msg, nil
}
