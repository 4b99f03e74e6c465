package main

import (
	"encoding/json"
	"sync"
)

// Hub fans progress and job-lifecycle events out to every websocket client,
// the same shape as the teacher's Hub: a registry guarded by a mutex and one
// buffered broadcast channel per payload kind, drained by Run.
type Hub struct {
	mu               sync.Mutex
	clients          map[*wsClient]struct{}
	broadcastProgress chan progressPayload
	broadcastJob      chan jobPayload
}

type wsClient struct {
	hub  *Hub
	send chan []byte
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type progressPayload struct {
	JobID   string `json:"job_id"`
	Message string `json:"message"`
}

type jobPayload struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

func NewHub() *Hub {
	return &Hub{
		clients:           make(map[*wsClient]struct{}),
		broadcastProgress: make(chan progressPayload, 64),
		broadcastJob:      make(chan jobPayload, 32),
	}
}

func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-h.broadcastProgress:
			h.fanOut(wsMessage{Type: "progress", Payload: mustMarshal(payload)})
		case payload := <-h.broadcastJob:
			h.fanOut(wsMessage{Type: "job", Payload: mustMarshal(payload)})
		}
	}
}

func (h *Hub) fanOut(msg wsMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.sendJSON(msg)
	}
}

func (h *Hub) Register(c *wsClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *wsClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) HasClients() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) > 0
}

func (c *wsClient) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}
