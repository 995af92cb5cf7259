// Package rpc exposes a core.Service as named, remote-procedure-style methods
// with JSON params and results.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/aretw0/todos/pkg/core"
)

type handlerFunc func(ctx context.Context, params json.RawMessage) (any, error)

// Server dispatches calls to a core.Service.
type Server struct {
	svc     *core.Service
	logger  *slog.Logger
	methods map[string]handlerFunc
}

// NewServer creates a Server for svc. A nil logger discards diagnostics.
func NewServer(svc *core.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{svc: svc, logger: logger}
	s.methods = map[string]handlerFunc{
		"greet":    s.greet,
		"add":      s.add,
		"remove":   s.remove,
		"get":      s.get,
		"update":   s.update,
		"paginate": s.paginate,
		"list":     s.paginate,
		"state":    s.state,
	}
	return s
}

// Methods returns the registered method names, sorted.
func (s *Server) Methods() []string {
	names := make([]string, 0, len(s.methods))
	for name := range s.methods {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Call invokes a method and returns its JSON-encoded result.
func (s *Server) Call(ctx context.Context, method string, params json.RawMessage) (json.RawMessage, error) {
	h, ok := s.methods[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	start := time.Now()
	result, err := h(ctx, params)
	s.logger.Debug("call", "method", method, "duration", time.Since(start), "error", err)
	if err != nil {
		return nil, err
	}

	out, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result of %s: %w", method, err)
	}
	return out, nil
}

// Handle executes req and builds its response.
func (s *Server) Handle(ctx context.Context, req Request) Response {
	result, err := s.Call(ctx, req.Method, req.Params)
	if err != nil {
		return Response{ID: req.ID, Error: toError(err)}
	}
	return Response{ID: req.ID, Result: result}
}

func (s *Server) greet(_ context.Context, raw json.RawMessage) (any, error) {
	var p greetParams
	if err := decodeParams(raw, &p); err != nil {
		return nil, err
	}
	return fmt.Sprintf("Hello, %s!", p.Name), nil
}

func (s *Server) add(_ context.Context, raw json.RawMessage) (any, error) {
	var p addParams
	if err := decodeParams(raw, &p); err != nil {
		return nil, err
	}
	if p.Text == nil {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidParams)
	}
	return s.svc.Add(*p.Text), nil
}

func (s *Server) remove(_ context.Context, raw json.RawMessage) (any, error) {
	id, err := decodeID(raw)
	if err != nil {
		return nil, err
	}
	return found(s.svc.Remove(id)), nil
}

func (s *Server) get(_ context.Context, raw json.RawMessage) (any, error) {
	id, err := decodeID(raw)
	if err != nil {
		return nil, err
	}
	return found(s.svc.Get(id)), nil
}

func (s *Server) update(_ context.Context, raw json.RawMessage) (any, error) {
	id, err := decodeID(raw)
	if err != nil {
		return nil, err
	}
	var patch core.Patch
	if err := decodeParams(raw, &patch); err != nil {
		return nil, err
	}
	return found(s.svc.Update(id, patch)), nil
}

func (s *Server) paginate(_ context.Context, raw json.RawMessage) (any, error) {
	var p pageParams
	if err := decodeParams(raw, &p); err != nil {
		return nil, err
	}
	if p.Match == "" {
		return s.svc.List(p.Offset, p.Limit), nil
	}
	todos, err := s.svc.Match(p.Match, p.Offset, p.Limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return todos, nil
}

func (s *Server) state(_ context.Context, _ json.RawMessage) (any, error) {
	return s.svc.State(), nil
}

// found turns a lookup into a result that encodes as null when absent.
func found(t core.Todo, ok bool) any {
	if !ok {
		return nil
	}
	return t
}

func decodeID(raw json.RawMessage) (uint32, error) {
	var p idParams
	if err := decodeParams(raw, &p); err != nil {
		return 0, err
	}
	if p.ID == nil {
		return 0, fmt.Errorf("%w: id is required", ErrInvalidParams)
	}
	return *p.ID, nil
}

// decodeParams treats missing params as an empty object.
func decodeParams(raw json.RawMessage, v any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		raw = []byte("{}")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return nil
}
