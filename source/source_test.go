package source

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeZip(t *testing.T, entries map[string][]byte, order []string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range order {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", name, err)
		}
		if _, err := w.Write(entries[name]); err != nil {
			t.Fatalf("Write(%q) error: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	return buf.Bytes()
}

func TestLoadClassFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Foo.class")
	if err := os.WriteFile(path, []byte{0xCA, 0xFE}, 0o644); err != nil {
		t.Fatal(err)
	}

	inputs, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(inputs) != 1 || inputs[0].Name != path || !bytes.Equal(inputs[0].Data, []byte{0xCA, 0xFE}) {
		t.Errorf("Load() = %+v", inputs)
	}
}

func TestLoadJar(t *testing.T) {
	inner := writeZip(t, map[string][]byte{
		"lib/Inner.class": {0x03},
		"lib/notes.txt":   {0x04},
	}, []string{"lib/Inner.class", "lib/notes.txt"})

	outer := writeZip(t, map[string][]byte{
		"META-INF/MANIFEST.MF": []byte("Manifest-Version: 1.0\n"),
		"com/example/A.class":  {0x01},
		"libs/inner.jar":       inner,
		"com/example/B.class":  {0x02},
	}, []string{"META-INF/MANIFEST.MF", "com/example/A.class", "libs/inner.jar", "com/example/B.class"})

	path := filepath.Join(t.TempDir(), "app.jar")
	if err := os.WriteFile(path, outer, 0o644); err != nil {
		t.Fatal(err)
	}

	inputs, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := []string{
		path + "!com/example/A.class",
		path + "!com/example/B.class",
		path + "!libs/inner.jar!lib/Inner.class",
	}
	if len(inputs) != len(want) {
		t.Fatalf("len(inputs) = %d, want %d: %+v", len(inputs), len(want), inputs)
	}
	for i, name := range want {
		if inputs[i].Name != name {
			t.Errorf("inputs[%d].Name = %q, want %q", i, inputs[i].Name, name)
		}
	}
	if !bytes.Equal(inputs[2].Data, []byte{0x03}) {
		t.Errorf("nested entry data = %v, want [3]", inputs[2].Data)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	if _, err := Load("Foo.java"); err == nil {
		t.Error("Expected error for .java file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.class")); err == nil {
		t.Error("Expected error for missing file")
	}
}
