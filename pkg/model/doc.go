/*
Package model maps raw, untyped records onto declared field shapes.

A Definition is declared once, as an explicit ordered list of named fields:

	user := model.MustDefine("user",
		model.Attr("id", schema.NewString(schema.StringOptions{Alias: "ID", Required: true, MaxLength: schema.Limit(10)})),
		model.Attr("name", schema.NewString(schema.StringOptions{Alias: "NAME", MaxLength: schema.Limit(10)})),
	)

Every Model created from it owns a fresh set of value slots; the field
schemas themselves are shared read-only. Two entry points fill the slots:

  - Dump assigns raw values unchecked and never fails.
  - Load assigns raw values through the field checks and reports every
    failing field in an ErrorReport instead of stopping at the first one.

	m := user.New()
	snapshot, report := m.Load(model.Record{"ID": "exceeds-ten-chars"})
	// report["id"] == "Expected value length 10, but 17."

A ListModel applies the same operations to a batch of records, one fresh
Model per record, and exposes the results through a forward-only cursor:

	list := user.NewList()
	list.Loads(records)
	for i, res := range list.All() {
		...
	}

Observers can be attached with Definition.With(WithHooks(...)); they run
synchronously after each operation and never change its outcome.
*/
package model
