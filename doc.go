// Package todos is the Composition Root for the todo service.
//
// It wires the in-memory record store (pkg/core) into a concurrency-safe
// service and exposes it to remote callers through a line-delimited JSON
// call surface (pkg/rpc).
//
// Records are identified by 1-based ids that are never reused: removing a
// todo does not free its id. Lookups of unknown ids are not errors; they
// report absence (false in Go, null on the wire).
//
// State lives in memory only and is lost when the process exits.
//
// Usage:
//
//	svc, err := todos.New(todos.WithLogger(logger))
//
//	todo := svc.Add("buy milk")
//	svc.Update(todo.ID, todos.SetCompleted(true))
//	page := svc.List(0, 10)
package todos
