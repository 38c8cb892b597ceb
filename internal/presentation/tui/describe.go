package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/fieldset/pkg/model"
	"github.com/aretw0/fieldset/pkg/schema"
)

// DescribeMarkdown renders a model definition as a markdown section with one
// table row per field, in declaration order.
func DescribeMarkdown(def *model.Definition, description string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", def.Name())
	if description != "" {
		fmt.Fprintf(&b, "%s\n\n", description)
	}

	b.WriteString("| Field | Type | Alias | Required | Constraints |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, decl := range def.Fields() {
		d := schema.Describe(decl.Field)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			decl.Name,
			d.Type,
			orDash(d.Alias),
			yesNo(d.Required),
			orDash(constraints(d)),
		)
	}
	return b.String()
}

func constraints(d schema.Descriptor) string {
	var parts []string
	if d.MaxLength != nil {
		parts = append(parts, "max length "+strconv.Itoa(*d.MaxLength))
	}
	if d.Min != nil {
		parts = append(parts, "min "+formatFloat(*d.Min))
	}
	if d.Max != nil {
		parts = append(parts, "max "+formatFloat(*d.Max))
	}
	return strings.Join(parts, ", ")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
