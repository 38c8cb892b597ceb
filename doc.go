/*
Package fieldset is a declarative schema engine for flat records.

A model is an ordered list of named, typed fields. Raw records (plain maps)
are passed through the model in one of two directions:

  - Dump copies values in without validation and returns them keyed by
    attribute name.
  - Load validates each value and returns an alias-keyed snapshot together
    with an ErrorReport of per-field messages.

Both look a value up by attribute name first, falling back to the field alias
when the name is absent or holds nil.

Batches of records go through a ListModel, which keeps the results and hands
them out through a forward-only cursor.

# Packages

  - pkg/schema: field types, constraints and validation errors.
  - pkg/model: Definition, Model and ListModel.
  - pkg/catalog: definitions declared in YAML or JSON files.
  - pkg/adapters/openapi: definitions taken from OpenAPI 3 component schemas.
  - pkg/observability: Prometheus metrics and structured logging hooks.

# Usage

Models can be declared in code:

	def := model.MustDefine("user",
		model.Attr("id", schema.NewString(schema.StringOptions{
			Alias:     "ID",
			Required:  true,
			MaxLength: schema.Limit(10),
		})),
	)

	snapshot, report := def.New().Load(model.Record{"ID": "u-1"})
	if !report.Valid() {
		log.Fatal(report.Err())
	}

Or read from a catalog file:

	cat, err := fieldset.Open("models.yaml", fieldset.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}
	def, err := cat.Get("user")
*/
package fieldset
