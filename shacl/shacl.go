// Package shacl implements the shape validation engine: it checks a data
// graph against SHACL shape declarations and produces a conformance verdict
// plus a diagnostic report.
//
// The engine covers the SHACL core constraint components this system's shape
// graphs use (sh:minCount, sh:maxCount, sh:datatype, sh:class, sh:nodeKind)
// with sh:targetClass targeting and optional RDFS schema inference. Input
// graphs are never mutated; inference materializes into a transient working
// graph local to the call.
package shacl

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/knakk/rdf"

	"github.com/c360studio/ontoserve/graphstore"
	"github.com/c360studio/ontoserve/vocabulary"
)

// Inference selects the schema-level inference applied to the data graph
// before constraint checks run.
type Inference string

const (
	// InferenceNone validates the data graph as-is.
	InferenceNone Inference = "none"

	// InferenceRDFS materializes rdfs:subClassOf, rdfs:domain and
	// rdfs:range entailments from the schema graph before validating.
	InferenceRDFS Inference = "rdfs"
)

// ErrMetaSHACLUnsupported is returned when meta-SHACL validation is
// requested; this engine does not validate shape graphs against the SHACL
// meta-shapes.
var ErrMetaSHACLUnsupported = errors.New("shacl: meta-SHACL validation is not supported")

// Options configures a validation run.
type Options struct {
	// OntGraph optionally supplies a separate ontology graph for
	// class/property inference. When nil, the shapes graph doubles as the
	// schema graph; both deployment configurations are valid.
	OntGraph *graphstore.Graph

	// Inference selects the pre-validation inference mode.
	Inference Inference

	// AbortOnFirst stops after the first violation instead of collecting
	// all of them.
	AbortOnFirst bool

	// MetaSHACL requests validation of the shapes graph against its own
	// meta-shape. Unsupported; must be false.
	MetaSHACL bool
}

// Validate checks data against the shape declarations in shapes and returns
// a report. The only error conditions are configuration-level (unsupported
// options); constraint violations are reported, not returned as errors.
func Validate(data, shapes *graphstore.Graph, opts Options) (*Report, error) {
	if opts.MetaSHACL {
		return nil, ErrMetaSHACLUnsupported
	}

	schema := opts.OntGraph
	if schema == nil {
		schema = shapes
	}

	working := data
	if opts.Inference == InferenceRDFS {
		working = materializeRDFS(data, schema)
	}

	report := &Report{Conforms: true}

	for _, shape := range shapes.SubjectsByType(vocabulary.ShNodeShape) {
		target, ok := shapes.Value(shape, vocabulary.ShTargetClass)
		if !ok {
			continue
		}

		focusNodes := working.Subjects(vocabulary.RdfType, target)
		for _, constraint := range shapes.Objects(shape, vocabulary.ShProperty) {
			constraintSubj, ok := constraint.(rdf.Subject)
			if !ok {
				continue
			}
			done := checkPropertyConstraint(working, shapes, shape, constraintSubj, focusNodes, opts, report)
			if done {
				return report, nil
			}
		}
	}

	return report, nil
}

// checkPropertyConstraint evaluates one sh:property constraint against every
// focus node. It returns true when AbortOnFirst is set and a violation was
// recorded.
func checkPropertyConstraint(working, shapes *graphstore.Graph, shape, constraint rdf.Subject, focusNodes []rdf.Subject, opts Options, report *Report) bool {
	pathTerm, ok := shapes.Value(constraint, vocabulary.ShPath)
	if !ok {
		// A constraint without a path governs nothing.
		return false
	}
	path := graphstore.TermValue(pathTerm)

	for _, focus := range focusNodes {
		values := working.Objects(focus, path)

		for _, violation := range checkCardinality(shapes, constraint, focus, path, values) {
			report.add(shape, violation)
			if opts.AbortOnFirst {
				return true
			}
		}
		for _, violation := range checkValues(working, shapes, constraint, focus, path, values) {
			report.add(shape, violation)
			if opts.AbortOnFirst {
				return true
			}
		}
	}
	return false
}

// checkCardinality evaluates sh:minCount and sh:maxCount.
func checkCardinality(shapes *graphstore.Graph, constraint rdf.Subject, focus rdf.Subject, path string, values []rdf.Term) []Result {
	var out []Result

	if min, ok := intConstraint(shapes, constraint, vocabulary.ShMinCount); ok && len(values) < min {
		out = append(out, Result{
			FocusNode:           graphstore.TermValue(focus),
			Path:                path,
			ConstraintComponent: vocabulary.ShMinCountConstraintComponent,
			Message:             fmt.Sprintf("Less than %d values on %s->%s", min, graphstore.TermValue(focus), path),
		})
	}
	if max, ok := intConstraint(shapes, constraint, vocabulary.ShMaxCount); ok && len(values) > max {
		out = append(out, Result{
			FocusNode:           graphstore.TermValue(focus),
			Path:                path,
			ConstraintComponent: vocabulary.ShMaxCountConstraintComponent,
			Message:             fmt.Sprintf("More than %d values on %s->%s", max, graphstore.TermValue(focus), path),
		})
	}
	return out
}

// checkValues evaluates the per-value components sh:datatype, sh:class and
// sh:nodeKind.
func checkValues(working, shapes *graphstore.Graph, constraint rdf.Subject, focus rdf.Subject, path string, values []rdf.Term) []Result {
	var out []Result

	if dt, ok := shapes.Value(constraint, vocabulary.ShDatatype); ok {
		want := graphstore.TermValue(dt)
		for _, v := range values {
			if datatypeOf(v) != want {
				out = append(out, Result{
					FocusNode:           graphstore.TermValue(focus),
					Path:                path,
					ConstraintComponent: vocabulary.ShDatatypeConstraintComponent,
					Message:             fmt.Sprintf("Value %s is not of datatype <%s>", termDisplay(v), want),
				})
			}
		}
	}

	if class, ok := shapes.Value(constraint, vocabulary.ShClass); ok {
		for _, v := range values {
			subj, isSubj := v.(rdf.Subject)
			if !isSubj || !working.Has(subj, vocabulary.RdfType, class) {
				out = append(out, Result{
					FocusNode:           graphstore.TermValue(focus),
					Path:                path,
					ConstraintComponent: vocabulary.ShClassConstraintComponent,
					Message:             fmt.Sprintf("Value %s does not have class <%s>", termDisplay(v), graphstore.TermValue(class)),
				})
			}
		}
	}

	if kind, ok := shapes.Value(constraint, vocabulary.ShNodeKind); ok {
		want := graphstore.TermValue(kind)
		for _, v := range values {
			if !matchesNodeKind(v, want) {
				out = append(out, Result{
					FocusNode:           graphstore.TermValue(focus),
					Path:                path,
					ConstraintComponent: vocabulary.ShNodeKindConstraintComponent,
					Message:             fmt.Sprintf("Value %s does not have node kind <%s>", termDisplay(v), want),
				})
			}
		}
	}

	return out
}

// intConstraint reads an integer-valued constraint parameter. Non-numeric
// values are treated as absent rather than failing the run.
func intConstraint(shapes *graphstore.Graph, constraint rdf.Subject, predIRI string) (int, bool) {
	term, ok := shapes.Value(constraint, predIRI)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(graphstore.TermValue(term))
	if err != nil {
		return 0, false
	}
	return n, true
}

// datatypeOf returns the datatype IRI of a literal term, or "" for
// non-literals. Plain literals carry xsd:string per RDF 1.1.
func datatypeOf(t rdf.Term) string {
	lit, ok := t.(rdf.Literal)
	if !ok {
		return ""
	}
	return lit.DataType.String()
}

func matchesNodeKind(t rdf.Term, kind string) bool {
	switch kind {
	case vocabulary.ShIRI:
		return t.Type() == rdf.TermIRI
	case vocabulary.ShLiteral:
		return t.Type() == rdf.TermLiteral
	case vocabulary.ShBlankNode:
		return t.Type() == rdf.TermBlank
	default:
		return false
	}
}

// termDisplay renders a term for violation messages.
func termDisplay(t rdf.Term) string {
	return t.Serialize(rdf.NTriples)
}
