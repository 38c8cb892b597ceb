// Package catalog builds model definitions from declarative YAML or JSON
// files.
//
// A catalog file lists models by name, each with an ordered list of fields:
//
//	models:
//	  user:
//	    description: Registered account
//	    fields:
//	      - name: id
//	        type: string
//	        alias: ID
//	        required: true
//	        max_length: 10
//	        messages:
//	          required: id is mandatory
//	      - name: age
//	        type: int
//	        min: 0
//	        max: 150
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/fieldset/pkg/model"
)

// ErrModelNotFound is returned by Get for unknown model names.
var ErrModelNotFound = errors.New("model not found")

// Format selects the catalog file syntax.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatFromPath infers the format from the file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// File represents the structure of a catalog file.
type File struct {
	Models map[string]ModelSpec `yaml:"models" json:"models"`
}

// ModelSpec declares one model. Fields stay raw maps until decoded so that
// every entry can be checked for unknown keys.
type ModelSpec struct {
	Description string           `yaml:"description" json:"description"`
	Fields      []map[string]any `yaml:"fields" json:"fields"`
}

// Catalog is a named set of model definitions.
type Catalog struct {
	defs         map[string]*model.Definition
	descriptions map[string]string
}

// LoadFile reads a catalog file (YAML or JSON by extension).
func LoadFile(path string, opts ...model.Option) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data, FormatFromPath(path), opts...)
}

// Parse builds a catalog from raw file contents. opts are applied to every
// definition.
func Parse(data []byte, format Format, opts ...model.Option) (*Catalog, error) {
	var file File
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
		}
	}
	return Build(file, opts...)
}

// Build turns a parsed File into a Catalog.
func Build(file File, opts ...model.Option) (*Catalog, error) {
	c := &Catalog{
		defs:         make(map[string]*model.Definition, len(file.Models)),
		descriptions: make(map[string]string, len(file.Models)),
	}

	for _, name := range slices.Sorted(maps.Keys(file.Models)) {
		spec := file.Models[name]
		decls := make([]model.Decl, 0, len(spec.Fields))
		for i, raw := range spec.Fields {
			decl, err := decodeField(raw)
			if err != nil {
				return nil, fmt.Errorf("model %s: field %d: %w", name, i, err)
			}
			decls = append(decls, decl)
		}

		def, err := model.Define(name, decls...)
		if err != nil {
			return nil, err
		}
		c.defs[name] = def.With(opts...)
		c.descriptions[name] = spec.Description
	}

	return c, nil
}

// Get returns the named definition.
func (c *Catalog) Get(name string) (*model.Definition, error) {
	def, ok := c.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return def, nil
}

// Names returns the model names, sorted.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.defs))
}

// Description returns the free-text description of a model.
func (c *Catalog) Description(name string) string {
	return c.descriptions[name]
}

// With returns a catalog whose definitions are configured by opts.
func (c *Catalog) With(opts ...model.Option) *Catalog {
	out := &Catalog{
		defs:         make(map[string]*model.Definition, len(c.defs)),
		descriptions: c.descriptions,
	}
	for name, def := range c.defs {
		out.defs[name] = def.With(opts...)
	}
	return out
}
