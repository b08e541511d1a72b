package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/cpool/classfile"
)

// LineEncoder writes one tab-separated line per resolved constant, grouped
// by kind, each prefixed with its index inside that kind.
type LineEncoder struct {
	w     io.Writer
	class *classfile.Class
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(class *classfile.Class) error {
	e.class = class
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	c := e.class
	cp := &c.ConstantPool

	fmt.Fprintf(&sb, "header\t%x\t%s\n", c.Magic, c.Version)

	for i, s := range cp.Utf8s {
		fmt.Fprintf(&sb, "utf8\t%d\t%q\n", i, s)
	}
	for i := range cp.Classes {
		name, _ := cp.ClassNameAt(uint16(i))
		fmt.Fprintf(&sb, "class\t%d\t%s\n", i, name)
	}
	for i := range cp.Strings {
		s, _ := cp.StringAt(uint16(i))
		fmt.Fprintf(&sb, "string\t%d\t%q\n", i, s)
	}
	for i := range cp.NameAndTypes {
		name, desc, _ := cp.NameAndTypeAt(uint16(i))
		fmt.Fprintf(&sb, "nameandtype\t%d\t%s\t%s\n", i, name, desc)
	}
	for i := range cp.FieldRefs {
		class, name, desc, _ := cp.FieldRefAt(uint16(i))
		fmt.Fprintf(&sb, "fieldref\t%d\t%s\t%s\t%s\n", i, classfile.InternalToSourceName(class), name, fieldTypeStr(desc))
	}
	for i := range cp.MethodRefs {
		class, name, desc, _ := cp.MethodRefAt(uint16(i))
		fmt.Fprintf(&sb, "methodref\t%d\t%s\t%s\t%s\n", i, classfile.InternalToSourceName(class), name, methodTypeStr(desc))
	}

	return []byte(sb.String()), nil
}

func fieldTypeStr(desc string) string {
	ft, err := classfile.ParseFieldDescriptor(desc)
	if err != nil {
		return desc
	}
	return ft.String()
}

func methodTypeStr(desc string) string {
	md, err := classfile.ParseMethodDescriptor(desc)
	if err != nil {
		return desc
	}
	return md.String()
}
