package internal

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// MemoryTransport serves canned responses keyed by "METHOD /path" and
// records every request it sees
type MemoryTransport struct {
	mu        sync.Mutex
	responses map[string]*Response
	failures  map[string]error
	requests  []*Request
}

// NewMemoryTransport creates an empty MemoryTransport
func NewMemoryTransport() *MemoryTransport {
	return &MemoryTransport{
		responses: make(map[string]*Response),
		failures:  make(map[string]error),
	}
}

// Respond registers a response for method and path
func (m *MemoryTransport) Respond(method, path string, status int, body string) *MemoryTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[method+" "+path] = &Response{StatusCode: status, Body: []byte(body)}
	return m
}

// Fail makes requests to method and path return err
func (m *MemoryTransport) Fail(method, path string, err error) *MemoryTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[method+" "+path] = err
	return m
}

// Do implements Transport
func (m *MemoryTransport) Do(_ context.Context, req *Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)

	key := req.Method + " " + req.Path
	if err, ok := m.failures[key]; ok {
		return nil, err
	}
	if resp, ok := m.responses[key]; ok {
		return resp, nil
	}
	return nil, fmt.Errorf("no response registered for %s", key)
}

// Requests returns the requests seen so far
func (m *MemoryTransport) Requests() []*Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Paths returns the paths requested so far, in order
func (m *MemoryTransport) Paths() []string {
	var paths []string
	for _, r := range m.Requests() {
		paths = append(paths, r.Path)
	}
	return paths
}

// ErrScriptExhausted is returned by ScriptedPrompter when it runs out of answers
var ErrScriptExhausted = errors.New("prompt script exhausted")

// ScriptedPrompter answers prompts from a fixed list, in order
type ScriptedPrompter struct {
	Answers []string
	// Asked records the labels of every prompt shown
	Asked []string
	// Offered records the choices of every selection prompt
	Offered [][]Choice
}

// NewScriptedPrompter creates a prompter answering with answers in order
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{Answers: answers}
}

func (p *ScriptedPrompter) next(label string) (string, error) {
	p.Asked = append(p.Asked, label)
	if len(p.Answers) == 0 {
		return "", ErrScriptExhausted
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, nil
}

// Input implements Prompter
func (p *ScriptedPrompter) Input(label string) (string, error) {
	return p.next(label)
}

// Password implements Prompter
func (p *ScriptedPrompter) Password(label string) (string, error) {
	return p.next(label)
}

// Select implements Prompter
func (p *ScriptedPrompter) Select(label string, choices []Choice) (string, error) {
	p.Offered = append(p.Offered, choices)
	return p.next(label)
}
