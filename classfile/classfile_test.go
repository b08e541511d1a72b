package classfile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
)

func TestParseExample(t *testing.T) {
	class, err := Parse(example)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	t.Run("magic", func(t *testing.T) {
		if class.Magic != 0xCAFEBABE {
			t.Errorf("Magic = 0x%X, want 0xCAFEBABE", class.Magic)
		}
		if !class.HasValidMagic() {
			t.Error("Expected HasValidMagic() to be true")
		}
	})

	t.Run("version", func(t *testing.T) {
		if got := class.Version.String(); got != "52.0" {
			t.Errorf("Version = %q, want %q", got, "52.0")
		}
	})

	t.Run("constant pool", func(t *testing.T) {
		if name, ok := class.ConstantPool.ClassNameAt(0); !ok || name != "foo" {
			t.Errorf("ClassNameAt(0) = %q, %v, want %q", name, ok, "foo")
		}
	})
}

func TestParseIsDeterministic(t *testing.T) {
	a, err := Parse(samplePool())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	b, err := Parse(samplePool())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two parses of the same input differ")
	}
}

func TestParseConcurrent(t *testing.T) {
	want, err := Parse(samplePool())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Parse(samplePool())
			if err != nil {
				errs <- err
				return
			}
			if !reflect.DeepEqual(got, want) {
				errs <- errors.New("concurrent parse differs")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestParseDoesNotValidateMagic(t *testing.T) {
	b := copyOf(example)
	b[0] = 0x00

	class, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if class.HasValidMagic() {
		t.Error("Expected HasValidMagic() to be false")
	}
}

func TestParsePropagatesStageErrors(t *testing.T) {
	t.Run("raw", func(t *testing.T) {
		_, err := Parse(example[:15])
		var rpe *ReadPastEndError
		if !errors.As(err, &rpe) {
			t.Errorf("error = %v, want *ReadPastEndError", err)
		}
	})

	t.Run("resolve", func(t *testing.T) {
		_, err := Parse(classBytes(2, classEntry(0)))
		var oor *OutOfRangeIndexError
		if !errors.As(err, &oor) {
			t.Errorf("error = %v, want *OutOfRangeIndexError", err)
		}
	})
}

func TestBuild(t *testing.T) {
	raw := &RawClassFile{
		Magic:             Magic,
		Minor:             3,
		Major:             45,
		ConstantPoolCount: 3,
		ConstantPool: []RawConstant{
			&RawClass{NameIndex: 2},
			&RawUtf8{Length: 1, Bytes: []byte("A")},
		},
	}

	class, err := Build(raw)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if class.Version != (Version{Major: 45, Minor: 3}) {
		t.Errorf("Version = %v, want 45.3", class.Version)
	}
	if name, ok := class.ConstantPool.ClassNameAt(0); !ok || name != "A" {
		t.Errorf("ClassNameAt(0) = %q, %v, want %q", name, ok, "A")
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Foo.class")
	if err := os.WriteFile(path, example, 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	class, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(class.ConstantPool.Utf8s) != 1 {
		t.Errorf("len(Utf8s) = %d, want 1", len(class.ConstantPool.Utf8s))
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.class")); err == nil {
		t.Error("Expected error for missing file")
	}
}
