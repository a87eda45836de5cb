// Package apierror models the error envelope the remote Bluestrek API puts
// on 4xx/5xx responses. The client decodes it when present so the detail can
// be logged; user-facing reporting stays generic and never echoes server
// internals back to a screen.
package apierror

import "encoding/json"

// Envelope is the canonical error body of the remote API.
type Envelope struct {
	Detail string `json:"detail"`
}

func New(msg string) *Envelope {
	return &Envelope{Detail: msg}
}

// Decode parses an error body. A body that is not the envelope (HTML error
// pages, empty bodies from proxies) yields an empty detail, not an error.
func Decode(body []byte) Envelope {
	var e Envelope
	_ = json.Unmarshal(body, &e)
	return e
}
