package codec

import (
	"encoding/json"

	gojson "github.com/goccy/go-json"
)

// Default is the codec VectorReader and VectorWriter use when none is given.
var Default Codec = GoJSON{}

// GoJSON decodes and encodes vector lines with github.com/goccy/go-json.
//
// The CLI reads every row of its input through this codec, so it is the
// default. Output is byte-compatible with JSON for []float32.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

func (GoJSON) Name() string { return "go-json" }

// JSON is the standard-library codec, selectable by name as "json".
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (JSON) Name() string { return "json" }
