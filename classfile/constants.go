package classfile

import "fmt"

const (
	Magic = 0xCAFEBABE
)

type ConstantTag uint8

const (
	TagUtf8               ConstantTag = 1
	TagInteger            ConstantTag = 3
	TagFloat              ConstantTag = 4
	TagLong               ConstantTag = 5
	TagDouble             ConstantTag = 6
	TagClass              ConstantTag = 7
	TagString             ConstantTag = 8
	TagFieldref           ConstantTag = 9
	TagMethodref          ConstantTag = 10
	TagInterfaceMethodref ConstantTag = 11
	TagNameAndType        ConstantTag = 12
	TagMethodHandle       ConstantTag = 15
	TagMethodType         ConstantTag = 16
	TagInvokeDynamic      ConstantTag = 18
)

var tagNames = map[ConstantTag]string{
	TagUtf8:               "Utf8",
	TagInteger:            "Integer",
	TagFloat:              "Float",
	TagLong:               "Long",
	TagDouble:             "Double",
	TagClass:              "Class",
	TagString:             "String",
	TagFieldref:           "Fieldref",
	TagMethodref:          "Methodref",
	TagInterfaceMethodref: "InterfaceMethodref",
	TagNameAndType:        "NameAndType",
	TagMethodHandle:       "MethodHandle",
	TagMethodType:         "MethodType",
	TagInvokeDynamic:      "InvokeDynamic",
}

func (t ConstantTag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

// ConstantKind is a constant pool entry kind that the decoder materializes.
type ConstantKind uint8

const (
	KindClass ConstantKind = iota + 1
	KindFieldRef
	KindMethodRef
	KindString
	KindNameAndType
	KindUtf8
)

func (k ConstantKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindFieldRef:
		return "fieldref"
	case KindMethodRef:
		return "methodref"
	case KindString:
		return "string"
	case KindNameAndType:
		return "nameandtype"
	case KindUtf8:
		return "utf8"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}
