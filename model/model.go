package model

import (
	"context"
	"fmt"

	"github.com/hupe1980/ragmesh/core"
)

// Request captures the normalized completion input assembled by the chat
// engine: the full ordered message sequence plus the sampling temperature.
type Request struct {
	Messages    []core.Message `json:"messages"`
	Temperature float64        `json:"temperature"`
}

// Response is the completion engine's reply.
type Response struct {
	Content string `json:"content"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", ...
}

// Model is the minimal interface the chat engine requires to produce a
// reply. Implementations must support at least the system, user and
// assistant roles.
type Model interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests and examples.
// It replies with a canned completion registered for the final user message,
// or a generic echo when none is registered.
type MockModel struct {
	info      Info
	responses map[string]string
	err       error
}

var _ Model = (*MockModel)(nil)

// NewMockModel constructs a MockModel.
func NewMockModel() *MockModel {
	return &MockModel{
		info:      Info{Name: "mock-model", Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockModel) AddResponse(prompt, response string) { m.responses[prompt] = response }

// FailWith makes every subsequent Generate call fail with err (nil restores
// normal operation).
func (m *MockModel) FailWith(err error) { m.err = err }

// Generate implements Model.
func (m *MockModel) Generate(ctx context.Context, req Request) (*Response, error) {
	if m.err != nil {
		return nil, &core.CompletionError{Provider: m.info.Provider, Err: m.err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(req.Messages) == 0 {
		return nil, &core.CompletionError{Provider: m.info.Provider, Err: fmt.Errorf("no messages provided")}
	}
	last := req.Messages[len(req.Messages)-1]
	if reply, ok := m.responses[last.Content]; ok {
		return &Response{Content: reply}, nil
	}
	return &Response{Content: fmt.Sprintf("Mock response to: %s", last.Content)}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
