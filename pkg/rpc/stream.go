package rpc

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/lifecycle"
)

type inputLine struct {
	data []byte
	err  error
}

// Serve reads one JSON request per line from r and writes one JSON response
// per line to w, in order, until r is exhausted or ctx is done.
// Lines have no length limit. Blank lines are skipped. A line that is not a
// valid request yields a parse error response rather than stopping the loop.
//
// Serve returns as soon as ctx is done, even while waiting for input. The
// goroutine reading r exits once its pending read returns.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan inputLine)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(lines)
		br := bufio.NewReader(r)
		for {
			data, err := br.ReadBytes('\n')
			select {
			case lines <- inputLine{data: data, err: err}:
			case <-ctx.Done():
				return nil
			}
			if err != nil {
				return nil
			}
		}
	})

	enc := json.NewEncoder(w)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var in inputLine
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return nil
			}
			in = l
		}

		if line := bytes.TrimSpace(in.data); len(line) > 0 {
			if err := enc.Encode(s.handleLine(ctx, line)); err != nil {
				return fmt.Errorf("failed to write response: %w", err)
			}
		}

		if in.err != nil {
			if errors.Is(in.err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read request: %w", in.err)
		}
	}
}

func (s *Server) handleLine(ctx context.Context, line []byte) Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		s.logger.Warn("malformed request", "error", err)
		return Response{Error: toError(fmt.Errorf("%w: %w", ErrParse, err))}
	}
	return s.Handle(ctx, req)
}
