// Package chat assembles completion requests from retrieved passages, a
// system directive and the rolling conversation history, and manages the
// append-only chat history of a session.
package chat

import (
	"context"
	"strings"

	"github.com/hupe1980/ragmesh/core"
	"github.com/hupe1980/ragmesh/logging"
	"github.com/hupe1980/ragmesh/model"
	"github.com/hupe1980/ragmesh/retriever"
)

// DefaultSystemDirective steers the completion engine when the caller does
// not supply a directive of their own.
const DefaultSystemDirective = "You are a helpful assistant. Answer using the provided context where it is relevant. If the context does not contain the answer, say so."

// DefaultTemperature is the default sampling temperature.
const DefaultTemperature = 0.7

// Options configure a chat Engine.
type Options struct {
	// TopK is the number of retrieved passages injected per query.
	TopK int

	// SystemDirective is the caller-supplied instruction text prepended to
	// the retrieved context in the system message.
	SystemDirective string

	// Temperature is the default sampling temperature; RespondWith can
	// override it per call.
	Temperature float64

	// Logger receives structured chat logs. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Engine is the conversation manager for one session. On every query it
// retrieves context, builds the message sequence
// [system] + history + [user query], calls the completion engine and, only
// on success, appends the user and assistant turns to the history. History
// grows without bound for the session's lifetime; nothing trims or
// summarizes it (documented default behavior, a known scaling limitation for
// very long sessions).
type Engine struct {
	model     model.Model
	retriever *retriever.Retriever
	session   *core.Session
	opts      Options
}

// New creates a chat engine for a session.
func New(m model.Model, r *retriever.Retriever, session *core.Session, optFns ...func(o *Options)) *Engine {
	opts := Options{
		TopK:            retriever.DefaultTopK,
		SystemDirective: DefaultSystemDirective,
		Temperature:     DefaultTemperature,
		Logger:          logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Engine{model: m, retriever: r, session: session, opts: opts}
}

// Session returns the session this engine manages.
func (e *Engine) Session() *core.Session { return e.session }

// Respond answers a user query with the configured temperature.
func (e *Engine) Respond(ctx context.Context, query string) (string, error) {
	return e.RespondWith(ctx, query, e.opts.Temperature)
}

// RespondWith answers a user query with an explicit sampling temperature. On
// success exactly two turns (user, then assistant) are appended to the
// history; on any failure the history is left unchanged.
func (e *Engine) RespondWith(ctx context.Context, query string, temperature float64) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", core.ErrEmptyQuery
	}
	if e.model == nil {
		return "", core.ErrModelNotReady
	}

	results, err := e.retriever.Search(ctx, query, e.opts.TopK)
	if err != nil {
		return "", err
	}

	messages := e.assemble(query, results)

	resp, err := e.model.Generate(ctx, model.Request{Messages: messages, Temperature: temperature})
	if err != nil {
		e.opts.Logger.Error("completion failed", "session", e.session.ID, "error", err)
		return "", err
	}

	e.session.AppendExchange(core.UserMessage(query), core.AssistantMessage(resp.Content))
	e.opts.Logger.Info("exchange completed", "session", e.session.ID, "passages", len(results), "history", e.session.HistoryLen())
	return resp.Content, nil
}

// assemble builds the full message sequence: a system message carrying the
// directive plus the ranked context block, the prior history, and the user's
// literal query as the final turn. The retrieved context supplements the
// question, it never replaces it.
func (e *Engine) assemble(query string, results []core.Result) []core.Message {
	history := e.session.History()
	messages := make([]core.Message, 0, len(history)+2)
	messages = append(messages, core.SystemMessage(e.systemContent(results)))
	messages = append(messages, history...)
	messages = append(messages, core.UserMessage(query))
	return messages
}

// systemContent renders the system message: the directive, then each
// retrieved passage tagged with its source in ranked order, best first.
func (e *Engine) systemContent(results []core.Result) string {
	if len(results) == 0 {
		return e.opts.SystemDirective
	}
	var b strings.Builder
	b.WriteString(e.opts.SystemDirective)
	b.WriteString("\n\nContext:\n")
	for i, res := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[Source: ")
		b.WriteString(res.Source)
		b.WriteString("] ")
		b.WriteString(res.Text)
	}
	return b.String()
}
