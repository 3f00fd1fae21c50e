package mock

import (
	"context"
	"sync"

	towerbridge "github.com/openappintel/tower-bridge"
)

// Transport is a scripted towerbridge.Transport for tests and examples.
// Exchanges are served from a queue in order; once the queue is empty it
// falls back to a plain success response. Every request is recorded for
// later inspection.
type Transport struct {
	// AlwaysStatus, when non-zero, makes every exchange return this
	// status with AlwaysBody, ignoring the queue. Useful for driving
	// the retry path without scripting five identical responses.
	AlwaysStatus int
	AlwaysBody   []byte

	mu       sync.Mutex
	queue    []scripted
	requests []*towerbridge.APIRequest
}

type scripted struct {
	resp *towerbridge.APIResponse
	err  error
}

// Script queues one response to serve verbatim.
func (m *Transport) Script(resp *towerbridge.APIResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, scripted{resp: resp})
}

// ScriptJSON queues a response with the given status and JSON body.
func (m *Transport) ScriptJSON(status int, body string) {
	m.Script(&towerbridge.APIResponse{
		StatusCode: status,
		Headers:    map[string]string{"content-type": "application/json"},
		Body:       []byte(body),
	})
}

// ScriptError queues a transport-level failure.
func (m *Transport) ScriptError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, scripted{err: err})
}

// RoundTrip serves the next scripted exchange and records the request.
func (m *Transport) RoundTrip(ctx context.Context, req *towerbridge.APIRequest) (*towerbridge.APIResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)

	if m.AlwaysStatus != 0 {
		body := m.AlwaysBody
		if body == nil {
			body = []byte(`{"error":"scripted failure"}`)
		}
		return &towerbridge.APIResponse{
			StatusCode: m.AlwaysStatus,
			Headers:    map[string]string{},
			Body:       body,
		}, nil
	}

	if len(m.queue) > 0 {
		next := m.queue[0]
		m.queue = m.queue[1:]
		if next.err != nil {
			return nil, next.err
		}
		return next.resp, nil
	}

	return &towerbridge.APIResponse{
		StatusCode: 200,
		Headers:    map[string]string{},
		Body:       []byte(`{"success":true}`),
	}, nil
}

// Requests returns a copy of every request served so far, in order.
func (m *Transport) Requests() []*towerbridge.APIRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*towerbridge.APIRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// LastRequest returns the most recent request, or nil before any call.
func (m *Transport) LastRequest() *towerbridge.APIRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

// Calls reports how many exchanges the transport has served.
func (m *Transport) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
