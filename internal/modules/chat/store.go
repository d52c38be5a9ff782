// README: Chat history store, persisted as one named blob.
package chat

import (
	"log"
	"sync"

	"travelgenie/internal/infra"
)

const historyBlob = "chat_history"

// Store keeps the ordered message history and writes it through to its blob on
// every append. A missing or corrupted blob restores as empty history.
type Store struct {
	mu       sync.Mutex
	blobs    *infra.BlobStore
	messages []Message
}

func NewStore(blobs *infra.BlobStore) *Store {
	s := &Store{blobs: blobs}
	if !blobs.Load(historyBlob, &s.messages) {
		s.messages = nil
	}
	return s
}

func (s *Store) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func (s *Store) Append(m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
	if err := s.blobs.Save(historyBlob, s.messages); err != nil {
		log.Printf("chat store: persist history: %v", err)
	}
}

// Tail returns up to n of the most recent messages in order.
func (s *Store) Tail(n int) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	start := len(s.messages) - n
	if start < 0 {
		start = 0
	}
	out := make([]Message, len(s.messages)-start)
	copy(out, s.messages[start:])
	return out
}
