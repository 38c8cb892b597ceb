package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fieldset/pkg/catalog"
	"github.com/aretw0/fieldset/pkg/model"
	"github.com/aretw0/fieldset/pkg/schema"
)

func TestLoadFile_YAML(t *testing.T) {
	c, err := catalog.LoadFile("testdata/models.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"dummy", "person"}, c.Names())
	assert.Equal(t, "Identifier plus display name", c.Description("dummy"))

	t.Run("String Fields", func(t *testing.T) {
		def, err := c.Get("dummy")
		require.NoError(t, err)

		decls := def.Fields()
		require.Len(t, decls, 2)
		assert.Equal(t, "id", decls[0].Name)
		assert.Equal(t, "name", decls[1].Name)

		d := schema.Describe(decls[0].Field)
		assert.Equal(t, schema.TypeString, d.Type)
		assert.Equal(t, "ID", d.Alias)
		assert.True(t, d.Required)
		require.NotNil(t, d.MaxLength)
		assert.Equal(t, 10, *d.MaxLength)

		_, report := def.New().Load(model.Record{"ID": "abc", "NAME": "far too long a name"})
		assert.Equal(t, model.ErrorReport{"name": "name is too long"}, report)
	})

	t.Run("Mixed Types", func(t *testing.T) {
		def, err := c.Get("person")
		require.NoError(t, err)

		decls := def.Fields()
		require.Len(t, decls, 4)
		assert.Equal(t, schema.TypeString, decls[0].Field.Type())
		assert.Equal(t, "E-mail", decls[0].Field.Option("label", nil))
		assert.Equal(t, schema.TypeInt, decls[1].Field.Type())
		assert.Equal(t, schema.TypeFloat, decls[2].Field.Type())
		assert.Equal(t, schema.TypeBool, decls[3].Field.Type())
		assert.Equal(t, true, decls[3].Field.Default())

		_, report := def.New().Load(model.Record{
			"email":  "a@b.c",
			"age":    151,
			"score":  2.0,
			"active": "yes",
		})
		assert.ElementsMatch(t, []string{"age", "score", "active"}, report.Fields())
	})

	t.Run("Unknown Model", func(t *testing.T) {
		_, err := c.Get("nope")
		assert.ErrorIs(t, err, catalog.ErrModelNotFound)
	})
}

func TestLoadFile_JSON(t *testing.T) {
	c, err := catalog.LoadFile("testdata/models.json")
	require.NoError(t, err)

	def, err := c.Get("dummy")
	require.NoError(t, err)

	_, report := def.New().Load(model.Record{"ID": "exceeds-ten-chars", "age": -1})
	assert.ElementsMatch(t, []string{"id", "age"}, report.Fields())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := catalog.LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown type", `
models:
  m:
    fields:
      - {name: a, type: list}
`},
		{"unknown key", `
models:
  m:
    fields:
      - {name: a, type: string, maxlength: 3}
`},
		{"missing name", `
models:
  m:
    fields:
      - {type: string}
`},
		{"max_length on int", `
models:
  m:
    fields:
      - {name: a, type: int, max_length: 3}
`},
		{"min on string", `
models:
  m:
    fields:
      - {name: a, type: string, min: 3}
`},
		{"fractional int bound", `
models:
  m:
    fields:
      - {name: a, type: int, max: 2.5}
`},
		{"duplicate field", `
models:
  m:
    fields:
      - {name: a, type: string}
      - {name: a, type: int}
`},
		{"colliding alias", `
models:
  m:
    fields:
      - {name: id, type: string, alias: name}
      - {name: name, type: string}
`},
		{"bad yaml", `models: [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.yaml), catalog.FormatYAML)
			assert.Error(t, err)
		})
	}
}

func TestCatalog_With(t *testing.T) {
	c, err := catalog.LoadFile("testdata/models.yaml")
	require.NoError(t, err)

	var loads int
	hooked := c.With(model.WithHooks(model.Hooks{
		OnLoad: func(*model.LoadEvent) { loads++ },
	}))

	def, err := hooked.Get("dummy")
	require.NoError(t, err)
	def.New().Load(model.Record{"id": "x"})
	assert.Equal(t, 1, loads)

	plain, err := c.Get("dummy")
	require.NoError(t, err)
	plain.New().Load(model.Record{"id": "x"})
	assert.Equal(t, 1, loads)
	assert.Equal(t, c.Names(), hooked.Names())
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, catalog.FormatJSON, catalog.FormatFromPath("a/b.JSON"))
	assert.Equal(t, catalog.FormatYAML, catalog.FormatFromPath("a/b.yml"))
	assert.Equal(t, catalog.FormatYAML, catalog.FormatFromPath("noext"))
}
