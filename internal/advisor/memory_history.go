package advisor

import (
	"context"
	"sync"

	"github.com/cloudwego/eino/schema"
)

// MemoryHistory is a map-backed History for tests and Redis-less runs.
type MemoryHistory struct {
	mu       sync.Mutex
	sessions map[string][]*schema.Message
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{sessions: make(map[string][]*schema.Message)}
}

func (h *MemoryHistory) Append(ctx context.Context, sessionID string, msg *schema.Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[sessionID] = append(h.sessions[sessionID], msg)
	return nil
}

func (h *MemoryHistory) Load(ctx context.Context, sessionID string) ([]*schema.Message, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	msgs := h.sessions[sessionID]
	out := make([]*schema.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (h *MemoryHistory) Clear(ctx context.Context, sessionID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, sessionID)
	return nil
}

var _ History = (*MemoryHistory)(nil)
