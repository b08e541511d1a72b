package classfile

// example is a class file holding a Utf8 "foo" at slot 1 and a Class naming
// it at slot 2.
var example = []byte{
	0xCA, 0xFE, 0xBA, 0xBE, // magic
	0x00, 0x00, // minor
	0x00, 0x34, // major
	0x00, 0x03, // constant_pool_count
	0x01, 0x00, 0x03, 0x66, 0x6F, 0x6F, // #1 Utf8 "foo"
	0x07, 0x00, 0x01, // #2 Class #1
}

func classBytes(count uint16, entries ...[]byte) []byte {
	b := []byte{0xCA, 0xFE, 0xBA, 0xBE, 0x00, 0x00, 0x00, 0x34}
	b = append(b, u2(count)...)
	for _, e := range entries {
		b = append(b, e...)
	}
	return b
}

func u2(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

func utf8Entry(s string) []byte {
	b := append([]byte{byte(TagUtf8)}, u2(uint16(len(s)))...)
	return append(b, s...)
}

func classEntry(name uint16) []byte {
	return append([]byte{byte(TagClass)}, u2(name)...)
}

func stringEntry(index uint16) []byte {
	return append([]byte{byte(TagString)}, u2(index)...)
}

func pairEntry(tag ConstantTag, a, b uint16) []byte {
	e := append([]byte{byte(tag)}, u2(a)...)
	return append(e, u2(b)...)
}

func copyOf(b []byte) []byte {
	return append([]byte(nil), b...)
}

// samplePool is a small but complete pool with forward references.
//
//	#1  Methodref #2.#3
//	#2  Class #4
//	#3  NameAndType #5:#6
//	#4  Utf8 java/lang/Object
//	#5  Utf8 <init>
//	#6  Utf8 ()V
//	#7  Fieldref #8.#9
//	#8  Class #10
//	#9  NameAndType #11:#12
//	#10 Utf8 Foo
//	#11 Utf8 bar
//	#12 Utf8 I
//	#13 String #14
//	#14 Utf8 hello
func samplePool() []byte {
	return classBytes(15,
		pairEntry(TagMethodref, 2, 3),
		classEntry(4),
		pairEntry(TagNameAndType, 5, 6),
		utf8Entry("java/lang/Object"),
		utf8Entry("<init>"),
		utf8Entry("()V"),
		pairEntry(TagFieldref, 8, 9),
		classEntry(10),
		pairEntry(TagNameAndType, 11, 12),
		utf8Entry("Foo"),
		utf8Entry("bar"),
		utf8Entry("I"),
		stringEntry(14),
		utf8Entry("hello"),
	)
}
