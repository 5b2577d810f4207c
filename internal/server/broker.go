package server

import (
	"encoding/json"
	"sync"
)

// GameEvent is the payload published to a session's SSE subscribers while
// an attempt is in progress.
type GameEvent struct {
	Type      string `json:"type"`
	Game      string `json:"game"`
	PuzzleID  string `json:"puzzleId"`
	Result    string `json:"result,omitempty"`
	CellIndex *int   `json:"cellIndex,omitempty"`
	Points    *int   `json:"points,omitempty"`
}

// Broker is an in-process pub/sub for SSE events, keyed by session ID.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events for the
// given session.
func (b *Broker) Subscribe(sessionID string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[sessionID] == nil {
		b.subs[sessionID] = make(map[chan []byte]struct{})
	}
	b.subs[sessionID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the session's subscribers.
func (b *Broker) Unsubscribe(sessionID string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[sessionID], ch)
	if len(b.subs[sessionID]) == 0 {
		delete(b.subs, sessionID)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers of the given session.
func (b *Broker) Publish(sessionID string, event GameEvent) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[sessionID] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
