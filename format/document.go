package format

import (
	"fmt"

	"github.com/dhamidi/cpool/classfile"
)

// classDoc is the structured form shared by the json and cbor encoders.
type classDoc struct {
	Magic        string  `json:"magic" cbor:"magic"`
	Version      version `json:"version" cbor:"version"`
	ConstantPool pool    `json:"constantPool" cbor:"constantPool"`
}

type version struct {
	Major uint16 `json:"major" cbor:"major"`
	Minor uint16 `json:"minor" cbor:"minor"`
}

type pool struct {
	Utf8s        []string      `json:"utf8s" cbor:"utf8s"`
	Classes      []classEntry  `json:"classes" cbor:"classes"`
	Strings      []stringEntry `json:"strings" cbor:"strings"`
	NameAndTypes []natEntry    `json:"nameAndTypes" cbor:"nameAndTypes"`
	FieldRefs    []memberEntry `json:"fieldRefs" cbor:"fieldRefs"`
	MethodRefs   []memberEntry `json:"methodRefs" cbor:"methodRefs"`
}

type classEntry struct {
	NameIndex uint16 `json:"nameIndex" cbor:"nameIndex"`
}

type stringEntry struct {
	StringIndex uint16 `json:"stringIndex" cbor:"stringIndex"`
}

type natEntry struct {
	NameIndex       uint16 `json:"nameIndex" cbor:"nameIndex"`
	DescriptorIndex uint16 `json:"descriptorIndex" cbor:"descriptorIndex"`
}

type memberEntry struct {
	ClassIndex       uint16 `json:"classIndex" cbor:"classIndex"`
	NameAndTypeIndex uint16 `json:"nameAndTypeIndex" cbor:"nameAndTypeIndex"`
}

func newClassDoc(c *classfile.Class) classDoc {
	cp := &c.ConstantPool
	doc := classDoc{
		Magic:   fmt.Sprintf("%x", c.Magic),
		Version: version{Major: c.Version.Major, Minor: c.Version.Minor},
		ConstantPool: pool{
			Utf8s:        append([]string{}, cp.Utf8s...),
			Classes:      make([]classEntry, len(cp.Classes)),
			Strings:      make([]stringEntry, len(cp.Strings)),
			NameAndTypes: make([]natEntry, len(cp.NameAndTypes)),
			FieldRefs:    make([]memberEntry, len(cp.FieldRefs)),
			MethodRefs:   make([]memberEntry, len(cp.MethodRefs)),
		},
	}
	for i, e := range cp.Classes {
		doc.ConstantPool.Classes[i] = classEntry{NameIndex: e.NameIndex}
	}
	for i, e := range cp.Strings {
		doc.ConstantPool.Strings[i] = stringEntry{StringIndex: e.StringIndex}
	}
	for i, e := range cp.NameAndTypes {
		doc.ConstantPool.NameAndTypes[i] = natEntry{NameIndex: e.NameIndex, DescriptorIndex: e.DescriptorIndex}
	}
	for i, e := range cp.FieldRefs {
		doc.ConstantPool.FieldRefs[i] = memberEntry{ClassIndex: e.ClassIndex, NameAndTypeIndex: e.NameAndTypeIndex}
	}
	for i, e := range cp.MethodRefs {
		doc.ConstantPool.MethodRefs[i] = memberEntry{ClassIndex: e.ClassIndex, NameAndTypeIndex: e.NameAndTypeIndex}
	}
	return doc
}
