package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/cpool/classfile"
)

type JSONEncoder struct {
	w     io.Writer
	class *classfile.Class
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(class *classfile.Class) error {
	e.class = class
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(newClassDoc(e.class), "", "  ")
}
