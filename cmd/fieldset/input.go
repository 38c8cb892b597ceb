package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/fieldset/pkg/model"
)

// input is either one record or a batch of them, as read from a document
// whose top level is a mapping or a sequence.
type input struct {
	record model.Record
	batch  []model.Record
	isList bool
}

// readInput reads the document named by args, or stdin when args is empty.
func readInput(args []string, stdin io.Reader) (input, error) {
	var (
		data []byte
		err  error
	)
	if len(args) > 0 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return input{}, fmt.Errorf("failed to read input: %w", err)
	}
	return parseInput(data)
}

// parseInput decodes YAML (and therefore JSON) records. A mapping is a
// single record, a sequence of mappings is a batch.
func parseInput(data []byte) (input, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return input{}, fmt.Errorf("failed to parse input: %w", err)
	}

	switch v := doc.(type) {
	case map[string]any:
		return input{record: model.Record(v)}, nil
	case []any:
		batch := make([]model.Record, 0, len(v))
		for i, item := range v {
			rec, ok := item.(map[string]any)
			if !ok {
				return input{}, fmt.Errorf("record %d: expected a mapping, got %T", i, item)
			}
			batch = append(batch, model.Record(rec))
		}
		return input{batch: batch, isList: true}, nil
	case nil:
		return input{}, errors.New("input is empty")
	default:
		return input{}, fmt.Errorf("expected a mapping or a sequence, got %T", doc)
	}
}
