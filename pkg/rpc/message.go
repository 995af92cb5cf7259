package rpc

import "encoding/json"

// Request is a single call. ID is echoed back untouched and may be omitted.
type Request struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Response carries either a result or an error, never both.
// A result of JSON null means "not found" and is not an error.
type Response struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *Error          `json:"error,omitempty"`
}

type greetParams struct {
	Name string `json:"name"`
}

type addParams struct {
	Text *string `json:"text"`
}

type idParams struct {
	ID *uint32 `json:"id"`
}

type pageParams struct {
	Offset uint32 `json:"offset"`
	Limit  uint32 `json:"limit"`
	Match  string `json:"match"`
}
