package shacl

import (
	"fmt"
	"strings"

	"github.com/knakk/rdf"

	"github.com/c360studio/ontoserve/graphstore"
	"github.com/c360studio/ontoserve/vocabulary"
)

// Result is one validation result (a single constraint violation).
type Result struct {
	// FocusNode is the node that failed the constraint.
	FocusNode string `json:"focus_node"`

	// Path is the predicate IRI the constraint governs.
	Path string `json:"path"`

	// SourceShape is the shape the constraint belongs to.
	SourceShape string `json:"source_shape"`

	// ConstraintComponent is the SHACL constraint component IRI.
	ConstraintComponent string `json:"constraint_component"`

	// Message is the human-readable diagnostic.
	Message string `json:"message"`
}

// Report is the outcome of a validation run.
type Report struct {
	Conforms bool     `json:"conforms"`
	Results  []Result `json:"results"`
}

func (r *Report) add(shape rdf.Subject, result Result) {
	result.SourceShape = graphstore.TermValue(shape)
	r.Results = append(r.Results, result)
	r.Conforms = false
}

// Text renders the report in the conventional human-readable layout. The
// text is treated as opaque by callers and returned to clients verbatim.
func (r *Report) Text() string {
	var sb strings.Builder
	sb.WriteString("Validation Report\n")
	sb.WriteString(fmt.Sprintf("Conforms: %v\n", r.Conforms))
	if len(r.Results) == 0 {
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Results (%d):\n", len(r.Results)))
	for _, res := range r.Results {
		sb.WriteString(fmt.Sprintf("Constraint Violation in %s (<%s>):\n",
			vocabulary.LocalName(res.ConstraintComponent), res.ConstraintComponent))
		sb.WriteString("\tSeverity: sh:Violation\n")
		sb.WriteString(fmt.Sprintf("\tSource Shape: <%s>\n", res.SourceShape))
		sb.WriteString(fmt.Sprintf("\tFocus Node: %s\n", res.FocusNode))
		if res.Path != "" {
			sb.WriteString(fmt.Sprintf("\tResult Path: <%s>\n", res.Path))
		}
		sb.WriteString(fmt.Sprintf("\tMessage: %s\n", res.Message))
	}
	return sb.String()
}

// Triples emits the report as an RDF graph using the SHACL report
// vocabulary, suitable for Turtle serialization via the export package.
func (r *Report) Triples() []rdf.Triple {
	report := mustBlank("report")
	out := []rdf.Triple{
		{Subj: report, Pred: graphstore.MustIRI(vocabulary.RdfType), Obj: graphstore.MustIRI(vocabulary.ShValidationReport)},
		{Subj: report, Pred: graphstore.MustIRI(vocabulary.ShConforms), Obj: boolLiteral(r.Conforms)},
	}

	for i, res := range r.Results {
		node := mustBlank(fmt.Sprintf("result%d", i))
		out = append(out,
			rdf.Triple{Subj: report, Pred: graphstore.MustIRI(vocabulary.ShResult), Obj: node},
			rdf.Triple{Subj: node, Pred: graphstore.MustIRI(vocabulary.RdfType), Obj: graphstore.MustIRI(vocabulary.ShValidationResult)},
			rdf.Triple{Subj: node, Pred: graphstore.MustIRI(vocabulary.ShResultSeverity), Obj: graphstore.MustIRI(vocabulary.ShViolation)},
			rdf.Triple{Subj: node, Pred: graphstore.MustIRI(vocabulary.ShSourceConstraintComponent), Obj: graphstore.MustIRI(res.ConstraintComponent)},
			rdf.Triple{Subj: node, Pred: graphstore.MustIRI(vocabulary.ShResultMessage), Obj: stringLiteral(res.Message)},
		)
		if iri, err := rdf.NewIRI(res.FocusNode); err == nil {
			out = append(out, rdf.Triple{Subj: node, Pred: graphstore.MustIRI(vocabulary.ShFocusNode), Obj: iri})
		}
		if res.Path != "" {
			if iri, err := rdf.NewIRI(res.Path); err == nil {
				out = append(out, rdf.Triple{Subj: node, Pred: graphstore.MustIRI(vocabulary.ShResultPath), Obj: iri})
			}
		}
		if iri, err := rdf.NewIRI(res.SourceShape); err == nil {
			out = append(out, rdf.Triple{Subj: node, Pred: graphstore.MustIRI(vocabulary.ShSourceShape), Obj: iri})
		}
	}
	return out
}

func mustBlank(id string) rdf.Blank {
	b, err := rdf.NewBlank(id)
	if err != nil {
		panic(fmt.Sprintf("shacl: invalid blank node id %q: %v", id, err))
	}
	return b
}

func boolLiteral(v bool) rdf.Literal {
	return rdf.NewTypedLiteral(fmt.Sprintf("%v", v), graphstore.MustIRI(vocabulary.XsdBoolean))
}

func stringLiteral(v string) rdf.Literal {
	return rdf.NewTypedLiteral(v, graphstore.MustIRI(vocabulary.XsdString))
}
