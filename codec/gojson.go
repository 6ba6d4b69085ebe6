package codec

import gojson "github.com/goccy/go-json"

// GoJSON encodes split results with github.com/goccy/go-json.
//
// A Result marshals as one JSON array per input element. NA elements are
// encoded as [null] and empty outputs as []. GoJSON is the Default codec of
// the command line.
type GoJSON struct{}

// Marshal encodes v, typically a unisplit.Result or a vector.
func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// Unmarshal decodes a JSON array of strings and nulls, such as the -json input
// of the command line.
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name returns "go-json".
func (GoJSON) Name() string { return "go-json" }
