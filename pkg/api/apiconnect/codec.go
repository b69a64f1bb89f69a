// Package apiconnect wires the proofy.v1 services to Connect: procedure
// names, handler constructors and typed clients.
package apiconnect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// Codec serializes the plain-struct messages of package api as JSON. It
// registers under the "json" name, so clients send application/json and
// browsers can call the services with fetch.
type Codec struct{}

var _ connect.Codec = Codec{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	// Connect sends an empty body for messages with no fields set.
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
}
