package classfile

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("cpool.classfile")

// ConstantPool is a resolved constant pool. Each kind lives in its own slice
// in the order it first appeared in the class file, and every index held by
// an entry points into the slice of the kind it refers to.
type ConstantPool struct {
	Classes      []ClassConstant
	FieldRefs    []FieldRef
	MethodRefs   []MethodRef
	Strings      []StringConstant
	NameAndTypes []NameAndType
	Utf8s        []string
}

// ClassConstant.NameIndex is an index into Utf8s.
type ClassConstant struct {
	NameIndex uint16
}

// FieldRef.ClassIndex is an index into Classes, NameAndTypeIndex into NameAndTypes.
type FieldRef struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

type MethodRef struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

type StringConstant struct {
	StringIndex uint16
}

// NameAndType indices both point into Utf8s.
type NameAndType struct {
	NameIndex       uint16
	DescriptorIndex uint16
}

// OutOfRangeIndexError reports a raw constant pool index outside the pool.
type OutOfRangeIndexError struct {
	Index uint16
}

func (e *OutOfRangeIndexError) Error() string {
	return fmt.Sprintf("out of range constant pool index %d", e.Index)
}

// Slot is the normalised offset of the offending index.
func (e *OutOfRangeIndexError) Slot() int {
	return NormaliseIndex(e.Index)
}

type UnexpectedConstantKindError struct {
	Expected ConstantKind
	Actual   ConstantKind
}

func (e *UnexpectedConstantKindError) Error() string {
	return fmt.Sprintf("expected %s constant, but instead got a %s constant", e.Expected, e.Actual)
}

// Utf8DecodeError reports a Utf8 entry whose bytes are not valid UTF-8.
// Offset is the position of the first invalid byte inside the entry.
type Utf8DecodeError struct {
	Slot   int
	Offset int
}

func (e *Utf8DecodeError) Error() string {
	return fmt.Sprintf("invalid utf-8 in constant pool entry %d at byte %d", e.Slot+1, e.Offset)
}

// ErrMissingConstant reports a nil entry in a raw constant pool.
var ErrMissingConstant = errors.New("missing constant")

const unassigned = -1

// indexKeeper maps a raw slot to the index its entry received in the
// resolved slice of one kind.
type indexKeeper []int

func newIndexKeeper(raw []RawConstant, count uint16, kind ConstantKind) indexKeeper {
	size := int(count)
	if len(raw) > size {
		size = len(raw)
	}
	k := make(indexKeeper, size)
	next := 0
	for s := range k {
		k[s] = unassigned
		if s < len(raw) && raw[s].Kind() == kind {
			k[s] = next
			next++
		}
	}
	return k
}

type resolver struct {
	raw   []RawConstant
	count int

	utf8s        indexKeeper
	classes      indexKeeper
	nameAndTypes indexKeeper
}

// Resolve validates every reference in a raw constant pool and re-indexes it
// per kind. count is the constant_pool_count from the class file header.
func Resolve(raw []RawConstant, count uint16) (*ConstantPool, error) {
	for s, entry := range raw {
		if isNilConstant(entry) {
			return nil, fmt.Errorf("failed to resolve constant pool entry %d: %w", s+1, ErrMissingConstant)
		}
	}

	r := &resolver{
		raw:          raw,
		count:        int(count),
		utf8s:        newIndexKeeper(raw, count, KindUtf8),
		classes:      newIndexKeeper(raw, count, KindClass),
		nameAndTypes: newIndexKeeper(raw, count, KindNameAndType),
	}

	cp := &ConstantPool{}
	for s, entry := range raw {
		if err := r.resolveEntry(cp, s, entry); err != nil {
			return nil, fmt.Errorf("failed to resolve constant pool entry %d: %w", s+1, err)
		}
	}

	log.Debugf("resolved constant pool: %d utf8, %d class, %d string, %d fieldref, %d methodref, %d nameandtype",
		len(cp.Utf8s), len(cp.Classes), len(cp.Strings), len(cp.FieldRefs), len(cp.MethodRefs), len(cp.NameAndTypes))

	return cp, nil
}

func isNilConstant(c RawConstant) bool {
	switch e := c.(type) {
	case nil:
		return true
	case *RawClass:
		return e == nil
	case *RawFieldRef:
		return e == nil
	case *RawMethodRef:
		return e == nil
	case *RawString:
		return e == nil
	case *RawNameAndType:
		return e == nil
	case *RawUtf8:
		return e == nil
	}
	return false
}

func (r *resolver) resolveEntry(cp *ConstantPool, s int, entry RawConstant) error {
	switch e := entry.(type) {
	case *RawUtf8:
		str, err := decodeUtf8(s, e.Bytes)
		if err != nil {
			return err
		}
		cp.Utf8s = append(cp.Utf8s, str)

	case *RawClass:
		name, err := r.single(e.NameIndex, KindUtf8)
		if err != nil {
			return err
		}
		cp.Classes = append(cp.Classes, ClassConstant{NameIndex: name})

	case *RawString:
		str, err := r.single(e.StringIndex, KindUtf8)
		if err != nil {
			return err
		}
		cp.Strings = append(cp.Strings, StringConstant{StringIndex: str})

	case *RawNameAndType:
		name, err := r.dual(e.NameIndex, KindUtf8)
		if err != nil {
			return err
		}
		descriptor, err := r.dual(e.DescriptorIndex, KindUtf8)
		if err != nil {
			return err
		}
		cp.NameAndTypes = append(cp.NameAndTypes, NameAndType{NameIndex: name, DescriptorIndex: descriptor})

	case *RawFieldRef:
		class, nat, err := r.member(e.ClassIndex, e.NameAndTypeIndex)
		if err != nil {
			return err
		}
		cp.FieldRefs = append(cp.FieldRefs, FieldRef{ClassIndex: class, NameAndTypeIndex: nat})

	case *RawMethodRef:
		class, nat, err := r.member(e.ClassIndex, e.NameAndTypeIndex)
		if err != nil {
			return err
		}
		cp.MethodRefs = append(cp.MethodRefs, MethodRef{ClassIndex: class, NameAndTypeIndex: nat})

	default:
		return fmt.Errorf("unhandled raw constant %T", entry)
	}
	return nil
}

func (r *resolver) member(classIndex, nameAndTypeIndex uint16) (uint16, uint16, error) {
	class, err := r.dual(classIndex, KindClass)
	if err != nil {
		return 0, 0, err
	}
	nat, err := r.dual(nameAndTypeIndex, KindNameAndType)
	if err != nil {
		return 0, 0, err
	}
	return class, nat, nil
}

// single checks an index carried by an entry with one reference.
func (r *resolver) single(i uint16, want ConstantKind) (uint16, error) {
	return r.lookup(i, r.count-1, want)
}

// dual checks an index carried by an entry with two references. Such an
// index may not name the last slot of the pool.
func (r *resolver) dual(i uint16, want ConstantKind) (uint16, error) {
	return r.lookup(i, r.count-2, want)
}

func (r *resolver) lookup(i uint16, limit int, want ConstantKind) (uint16, error) {
	s := NormaliseIndex(i)
	if i < 1 || int(i) > limit || s >= len(r.raw) {
		return 0, &OutOfRangeIndexError{Index: i}
	}

	if actual := r.raw[s].Kind(); actual != want {
		return 0, &UnexpectedConstantKindError{Expected: want, Actual: actual}
	}

	var keeper indexKeeper
	switch want {
	case KindUtf8:
		keeper = r.utf8s
	case KindClass:
		keeper = r.classes
	case KindNameAndType:
		keeper = r.nameAndTypes
	default:
		return 0, fmt.Errorf("%s constants cannot be referenced", want)
	}
	return uint16(keeper[s]), nil
}

func decodeUtf8(slot int, b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	off := 0
	for off < len(b) {
		r, size := utf8.DecodeRune(b[off:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		off += size
	}
	return "", &Utf8DecodeError{Slot: slot, Offset: off}
}

func (cp *ConstantPool) Utf8At(index uint16) (string, bool) {
	if int(index) >= len(cp.Utf8s) {
		return "", false
	}
	return cp.Utf8s[index], true
}

// ClassNameAt returns the internal name of the class at index in Classes.
func (cp *ConstantPool) ClassNameAt(index uint16) (string, bool) {
	if int(index) >= len(cp.Classes) {
		return "", false
	}
	return cp.Utf8At(cp.Classes[index].NameIndex)
}

func (cp *ConstantPool) StringAt(index uint16) (string, bool) {
	if int(index) >= len(cp.Strings) {
		return "", false
	}
	return cp.Utf8At(cp.Strings[index].StringIndex)
}

func (cp *ConstantPool) NameAndTypeAt(index uint16) (name, descriptor string, ok bool) {
	if int(index) >= len(cp.NameAndTypes) {
		return "", "", false
	}
	nat := cp.NameAndTypes[index]
	name, ok = cp.Utf8At(nat.NameIndex)
	if !ok {
		return "", "", false
	}
	descriptor, ok = cp.Utf8At(nat.DescriptorIndex)
	if !ok {
		return "", "", false
	}
	return name, descriptor, true
}

func (cp *ConstantPool) FieldRefAt(index uint16) (className, name, descriptor string, ok bool) {
	if int(index) >= len(cp.FieldRefs) {
		return "", "", "", false
	}
	return cp.memberRef(cp.FieldRefs[index].ClassIndex, cp.FieldRefs[index].NameAndTypeIndex)
}

func (cp *ConstantPool) MethodRefAt(index uint16) (className, name, descriptor string, ok bool) {
	if int(index) >= len(cp.MethodRefs) {
		return "", "", "", false
	}
	return cp.memberRef(cp.MethodRefs[index].ClassIndex, cp.MethodRefs[index].NameAndTypeIndex)
}

func (cp *ConstantPool) memberRef(classIndex, nameAndTypeIndex uint16) (className, name, descriptor string, ok bool) {
	className, ok = cp.ClassNameAt(classIndex)
	if !ok {
		return "", "", "", false
	}
	name, descriptor, ok = cp.NameAndTypeAt(nameAndTypeIndex)
	if !ok {
		return "", "", "", false
	}
	return className, name, descriptor, true
}
