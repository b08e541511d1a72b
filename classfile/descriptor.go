package classfile

import (
	"fmt"
	"strings"
)

// FieldType is a decoded field descriptor such as "I" or "[Ljava/lang/String;".
type FieldType struct {
	BaseType   string
	ClassName  string
	ArrayDepth int
}

func (ft *FieldType) String() string {
	var sb strings.Builder
	if ft.BaseType != "" {
		sb.WriteString(ft.BaseType)
	} else {
		sb.WriteString(InternalToSourceName(ft.ClassName))
	}
	for i := 0; i < ft.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

func (ft *FieldType) IsArray() bool     { return ft.ArrayDepth > 0 }
func (ft *FieldType) IsPrimitive() bool { return ft.BaseType != "" && ft.ArrayDepth == 0 }

// MethodDescriptor is a decoded method descriptor. ReturnType is nil for void.
type MethodDescriptor struct {
	Parameters []FieldType
	ReturnType *FieldType
}

func (md *MethodDescriptor) String() string {
	params := make([]string, len(md.Parameters))
	for i := range md.Parameters {
		params[i] = md.Parameters[i].String()
	}
	ret := "void"
	if md.ReturnType != nil {
		ret = md.ReturnType.String()
	}
	return "(" + strings.Join(params, ", ") + ") " + ret
}

type DescriptorError struct {
	Descriptor string
	Offset     int
}

func (e *DescriptorError) Error() string {
	return fmt.Sprintf("malformed descriptor %q at offset %d", e.Descriptor, e.Offset)
}

var baseTypes = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
}

func ParseFieldDescriptor(desc string) (*FieldType, error) {
	ft, n := parseFieldType(desc, 0)
	if ft == nil {
		return nil, &DescriptorError{Descriptor: desc, Offset: n}
	}
	if n != len(desc) {
		return nil, &DescriptorError{Descriptor: desc, Offset: n}
	}
	return ft, nil
}

func ParseMethodDescriptor(desc string) (*MethodDescriptor, error) {
	if len(desc) == 0 || desc[0] != '(' {
		return nil, &DescriptorError{Descriptor: desc}
	}

	md := &MethodDescriptor{}
	i := 1
	for i < len(desc) && desc[i] != ')' {
		ft, next := parseFieldType(desc, i)
		if ft == nil {
			return nil, &DescriptorError{Descriptor: desc, Offset: next}
		}
		md.Parameters = append(md.Parameters, *ft)
		i = next
	}
	if i >= len(desc) {
		return nil, &DescriptorError{Descriptor: desc, Offset: i}
	}
	i++

	if i < len(desc) && desc[i] == 'V' && i+1 == len(desc) {
		return md, nil
	}
	ret, next := parseFieldType(desc, i)
	if ret == nil || next != len(desc) {
		return nil, &DescriptorError{Descriptor: desc, Offset: next}
	}
	md.ReturnType = ret
	return md, nil
}

// parseFieldType decodes one field type starting at start and returns the
// offset just past it. On failure the type is nil and the offset points at
// the offending byte.
func parseFieldType(desc string, start int) (*FieldType, int) {
	ft := &FieldType{}
	i := start
	for i < len(desc) && desc[i] == '[' {
		ft.ArrayDepth++
		i++
	}
	if i >= len(desc) {
		return nil, i
	}

	if base, ok := baseTypes[desc[i]]; ok {
		ft.BaseType = base
		return ft, i + 1
	}
	if desc[i] != 'L' {
		return nil, i
	}
	semicolon := strings.IndexByte(desc[i:], ';')
	if semicolon <= 1 {
		return nil, i
	}
	ft.ClassName = desc[i+1 : i+semicolon]
	return ft, i + semicolon + 1
}

func InternalToSourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}
