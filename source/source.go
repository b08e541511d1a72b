// Package source loads class file bytes from .class files and from the
// entries of .jar and .zip archives.
package source

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Input is the content of one class file. Name is the file path, or
// "archive!entry" for archive members.
type Input struct {
	Name string
	Data []byte
}

func Load(path string) ([]Input, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".class":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read class file: %w", err)
		}
		return []Input{{Name: path, Data: data}}, nil
	case ".jar", ".zip":
		return loadArchive(path)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s (expected .class, .jar, or .zip)", filepath.Ext(path))
	}
}

func loadArchive(path string) ([]Input, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	return scanArchive(&r.Reader, path)
}

// scanArchive collects class entries in archive order, descending into
// nested jars one level deep.
func scanArchive(r *zip.Reader, name string) ([]Input, error) {
	var inputs []Input
	var jarFiles []*zip.File
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(f.Name)) {
		case ".class":
			data, err := readEntry(f)
			if err != nil {
				return nil, fmt.Errorf("read %s!%s: %w", name, f.Name, err)
			}
			inputs = append(inputs, Input{Name: name + "!" + f.Name, Data: data})
		case ".jar":
			jarFiles = append(jarFiles, f)
		}
	}

	for _, jarFile := range jarFiles {
		nested, err := scanNestedJar(jarFile, name)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, nested...)
	}
	return inputs, nil
}

func scanNestedJar(jarFile *zip.File, outer string) ([]Input, error) {
	name := outer + "!" + jarFile.Name
	jarData, err := readEntry(jarFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	jarReader, err := zip.NewReader(bytes.NewReader(jarData), int64(len(jarData)))
	if err != nil {
		return nil, fmt.Errorf("open nested jar %s: %w", name, err)
	}

	var inputs []Input
	for _, f := range jarReader.File {
		if f.FileInfo().IsDir() || strings.ToLower(filepath.Ext(f.Name)) != ".class" {
			continue
		}
		data, err := readEntry(f)
		if err != nil {
			return nil, fmt.Errorf("read %s!%s: %w", name, f.Name, err)
		}
		inputs = append(inputs, Input{Name: name + "!" + f.Name, Data: data})
	}
	return inputs, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
