package format

import (
	"io"

	"github.com/dhamidi/cpool/classfile"
	"github.com/fxamacker/cbor/v2"
)

// CBOREncoder writes one CBOR data item per class.
type CBOREncoder struct {
	enc *cbor.Encoder
}

func NewCBOREncoder(w io.Writer) *CBOREncoder {
	return &CBOREncoder{enc: cbor.NewEncoder(w)}
}

func (e *CBOREncoder) Encode(class *classfile.Class) error {
	return e.enc.Encode(newClassDoc(class))
}
