package classfile

import (
	"fmt"
	"os"
)

// Class is a decoded class file header with its resolved constant pool.
type Class struct {
	Magic        uint32
	Version      Version
	ConstantPool ConstantPool
}

type Version struct {
	Major uint16
	Minor uint16
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

func (c *Class) HasValidMagic() bool {
	return c.Magic == Magic
}

// Build resolves the constant pool of raw and assembles a Class.
func Build(raw *RawClassFile) (*Class, error) {
	cp, err := Resolve(raw.ConstantPool, raw.ConstantPoolCount)
	if err != nil {
		return nil, err
	}
	return &Class{
		Magic:        raw.Magic,
		Version:      Version{Major: raw.Major, Minor: raw.Minor},
		ConstantPool: *cp,
	}, nil
}

// Parse decodes a complete class file held in b. The returned Class does not
// retain b.
func Parse(b []byte) (*Class, error) {
	raw, err := ParseRaw(b)
	if err != nil {
		return nil, err
	}
	return Build(raw)
}

func ParseFile(path string) (*Class, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class file: %w", err)
	}
	return Parse(b)
}
