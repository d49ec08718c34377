package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yml
var defaultDocument []byte

type document struct {
	Records []Record `yaml:"records"`
}

// Load decodes a catalog document and builds the catalog.
func Load(r io.Reader) (*Catalog, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoder.Decode() > %w", err)
	}
	c, err := New(doc.Records)
	if err != nil {
		return nil, fmt.Errorf("New() > %w", err)
	}
	return c, nil
}

// LoadFile loads a catalog document from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("Load(%s) > %w", path, err)
	}
	return c, nil
}

// LoadDefault loads the catalog compiled into the binary.
func LoadDefault() (*Catalog, error) {
	return Load(bytes.NewReader(defaultDocument))
}

// MustLoadDefault is like LoadDefault but panics on error.
func MustLoadDefault() *Catalog {
	c, err := LoadDefault()
	if err != nil {
		panic(fmt.Errorf("LoadDefault() > %w", err))
	}
	return c
}

// Open loads path when it is set, and the default catalog otherwise.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return LoadDefault()
	}
	return LoadFile(path)
}
