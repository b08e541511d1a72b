package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/cpool/classfile"
)

// Encoder has no MarshalText requirement: the cbor encoder produces no text form.
type Encoder interface {
	Encode(class *classfile.Class) error
}

// NewEncoder returns the encoder registered under name.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "line":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "cbor":
		return NewCBOREncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (expected line, json, or cbor)", name)
	}
}
