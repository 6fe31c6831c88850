// Package forms derives UI-renderable form schemas from SHACL NodeShape
// declarations in a shape graph.
package forms

import (
	"strconv"
	"strings"

	"github.com/knakk/rdf"

	"github.com/c360studio/ontoserve/graphstore"
	"github.com/c360studio/ontoserve/vocabulary"
)

// Field describes one form field derived from a property constraint.
type Field struct {
	// Name is the human-readable label from sh:name.
	Name string `json:"name"`

	// Path is the IRI of the governed predicate from sh:path.
	Path string `json:"path"`

	// Required is true iff sh:minCount is present and parses to an
	// integer strictly greater than zero.
	Required bool `json:"required"`
}

// Schema maps a domain name (the short name of a shape's target class) to
// its ordered field descriptors.
type Schema map[string][]Field

// Compile walks every sh:NodeShape in the shape graph and derives the form
// schema.
//
// Shapes without a sh:targetClass are skipped entirely; they cannot be
// rendered as a form. Constraints missing sh:path or sh:name are dropped
// field by field, so partial shape data degrades the schema instead of
// failing the request. When two shapes share a target class the
// later-processed shape overwrites the earlier one; downstream behavior
// depends on that overwrite, so it must not be "fixed" into a merge.
func Compile(shapes *graphstore.Graph) Schema {
	schema := Schema{}

	for _, shape := range shapes.SubjectsByType(vocabulary.ShNodeShape) {
		target, ok := shapes.Value(shape, vocabulary.ShTargetClass)
		if !ok {
			continue
		}
		key := vocabulary.LocalName(graphstore.TermValue(target))

		fields := []Field{}
		for _, constraint := range shapes.Objects(shape, vocabulary.ShProperty) {
			subj, ok := constraint.(rdf.Subject)
			if !ok {
				continue
			}
			if field, ok := compileField(shapes, subj); ok {
				fields = append(fields, field)
			}
		}

		schema[key] = fields
	}

	return schema
}

// compileField reads one property constraint. The second return value is
// false when the constraint lacks a path or a name.
func compileField(shapes *graphstore.Graph, constraint rdf.Subject) (Field, bool) {
	path, ok := shapes.Value(constraint, vocabulary.ShPath)
	if !ok {
		return Field{}, false
	}
	name, ok := shapes.Value(constraint, vocabulary.ShName)
	if !ok {
		return Field{}, false
	}

	required := false
	if minCount, ok := shapes.Value(constraint, vocabulary.ShMinCount); ok {
		required = parsesPositive(graphstore.TermValue(minCount))
	}

	return Field{
		Name:     graphstore.TermValue(name),
		Path:     graphstore.TermValue(path),
		Required: required,
	}, true
}

// parsesPositive reports whether s parses to an integer greater than zero.
// Absent, zero, negative and non-numeric values all mean "optional".
func parsesPositive(s string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil && n > 0
}
