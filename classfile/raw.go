package classfile

import (
	"fmt"
)

// RawClassFile is the class file header and the constant pool as it appears
// on the wire. Indices inside the entries have not been checked.
type RawClassFile struct {
	Magic             uint32
	Minor             uint16
	Major             uint16
	ConstantPoolCount uint16
	// ConstantPool holds slots 1..ConstantPoolCount-1 at offsets 0..ConstantPoolCount-2.
	ConstantPool []RawConstant
}

type RawConstant interface {
	Kind() ConstantKind
	rawConstant()
}

type RawClass struct {
	NameIndex uint16
}

type RawFieldRef struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

type RawMethodRef struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

type RawString struct {
	StringIndex uint16
}

type RawNameAndType struct {
	NameIndex       uint16
	DescriptorIndex uint16
}

type RawUtf8 struct {
	Length uint16
	Bytes  []byte
}

func (*RawClass) Kind() ConstantKind       { return KindClass }
func (*RawFieldRef) Kind() ConstantKind    { return KindFieldRef }
func (*RawMethodRef) Kind() ConstantKind   { return KindMethodRef }
func (*RawString) Kind() ConstantKind      { return KindString }
func (*RawNameAndType) Kind() ConstantKind { return KindNameAndType }
func (*RawUtf8) Kind() ConstantKind        { return KindUtf8 }

func (*RawClass) rawConstant()       {}
func (*RawFieldRef) rawConstant()    {}
func (*RawMethodRef) rawConstant()   {}
func (*RawString) rawConstant()      {}
func (*RawNameAndType) rawConstant() {}
func (*RawUtf8) rawConstant()        {}

// UnexpectedConstantTagError reports a tag byte that names no constant kind.
type UnexpectedConstantTagError struct {
	Tag uint8
}

func (e *UnexpectedConstantTagError) Error() string {
	return fmt.Sprintf("unexpected constant tag %d", e.Tag)
}

// UnsupportedError reports a known constant tag this decoder cannot read.
type UnsupportedError struct {
	Tag ConstantTag
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported constant %s (tag %d)", e.Tag, uint8(e.Tag))
}

// NormaliseIndex converts a 1-based constant pool index into an offset into
// RawClassFile.ConstantPool.
func NormaliseIndex(i uint16) int {
	return int(i) - 1
}

// ParseRaw decodes the header and constant pool of a class file.
func ParseRaw(b []byte) (*RawClassFile, error) {
	c := NewCursor(b)
	cf := &RawClassFile{}

	var err error
	if cf.Magic, err = c.ReadU4(); err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", err)
	}
	if cf.Minor, err = c.ReadU2(); err != nil {
		return nil, fmt.Errorf("failed to read minor version: %w", err)
	}
	if cf.Major, err = c.ReadU2(); err != nil {
		return nil, fmt.Errorf("failed to read major version: %w", err)
	}
	if cf.ConstantPoolCount, err = c.ReadU2(); err != nil {
		return nil, fmt.Errorf("failed to read constant pool count: %w", err)
	}

	if cf.ConstantPoolCount > 1 {
		cf.ConstantPool = make([]RawConstant, 0, cf.ConstantPoolCount-1)
	}
	for i := uint16(1); i < cf.ConstantPoolCount; i++ {
		entry, err := readRawConstant(c)
		if err != nil {
			return nil, fmt.Errorf("failed to read constant pool entry %d: %w", i, err)
		}
		cf.ConstantPool = append(cf.ConstantPool, entry)
	}

	return cf, nil
}

func readRawConstant(c *Cursor) (RawConstant, error) {
	b, err := c.ReadU1()
	if err != nil {
		return nil, err
	}
	tag := ConstantTag(b)

	switch tag {
	case TagUtf8:
		length, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		bytes, err := c.ReadBytes(int(length))
		if err != nil {
			return nil, err
		}
		return &RawUtf8{Length: length, Bytes: bytes}, nil

	case TagClass:
		nameIndex, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		return &RawClass{NameIndex: nameIndex}, nil

	case TagString:
		stringIndex, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		return &RawString{StringIndex: stringIndex}, nil

	case TagFieldref, TagMethodref:
		classIndex, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		nameAndTypeIndex, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		if tag == TagFieldref {
			return &RawFieldRef{ClassIndex: classIndex, NameAndTypeIndex: nameAndTypeIndex}, nil
		}
		return &RawMethodRef{ClassIndex: classIndex, NameAndTypeIndex: nameAndTypeIndex}, nil

	case TagNameAndType:
		nameIndex, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		descriptorIndex, err := c.ReadU2()
		if err != nil {
			return nil, err
		}
		return &RawNameAndType{NameIndex: nameIndex, DescriptorIndex: descriptorIndex}, nil

	case TagInteger, TagFloat, TagLong, TagDouble,
		TagInterfaceMethodref, TagMethodHandle, TagMethodType, TagInvokeDynamic:
		return nil, &UnsupportedError{Tag: tag}

	default:
		return nil, &UnexpectedConstantTagError{Tag: b}
	}
}
