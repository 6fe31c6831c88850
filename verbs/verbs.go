// Package verbs resolves verb strings against the ontology graph, producing
// situation mappings with a defined fallback chain.
package verbs

import (
	"strings"

	"github.com/knakk/rdf"

	"github.com/c360studio/ontoserve/graphstore"
	"github.com/c360studio/ontoserve/vocabulary"
	"github.com/c360studio/ontoserve/vocabulary/onto"
)

// Messages surfaced to clients. Handlers return these verbatim; no internal
// query detail ever leaks through them.
const (
	msgNotFound = "Verb not found in ontology."
	msgUnmapped = "Verb is known but has no situation mappings."

	// vnClassPlaceholder stands in when the ontology has no vn_class fact
	// for the verb.
	vnClassPlaceholder = "Unknown"
)

// Mapping is one evoked situation of a verb. FallbackDomain and VNClass are
// verb-level facts, so they repeat identically across all mappings of the
// same lookup. FallbackDomain is nil, and serializes as null, when the
// ontology carries no semantic_domain fact for the verb.
type Mapping struct {
	Situation      string  `json:"situation"`
	FallbackDomain *string `json:"fallback_domain"`
	VNClass        string  `json:"vn_class"`
}

// Result is the outcome of a verb lookup: not-found, known-but-unmapped
// (Found with empty Mappings), or found-with-mappings.
type Result struct {
	Found   bool   `json:"found"`
	Verb    string `json:"verb,omitempty"`
	Message string `json:"message,omitempty"`

	// Mappings is nil (omitted) when the verb is not found, an empty
	// list when the verb is known but unmapped, and one entry per evokes
	// edge otherwise.
	Mappings []Mapping `json:"mappings,omitzero"`
}

// Resolver resolves verbs against an immutable ontology graph.
type Resolver struct {
	graph *graphstore.Graph
	base  string
}

// NewResolver creates a resolver over the given ontology graph. base is the
// namespace verbs are resolved against; empty means onto.DefaultBase.
func NewResolver(graph *graphstore.Graph, base string) *Resolver {
	if base == "" {
		base = onto.DefaultBase
	}
	return &Resolver{graph: graph, base: base}
}

// Canonicalize normalizes a raw verb string: lowercase, outer whitespace
// stripped, internal spaces replaced with underscores. The mapping is lossy
// and case-insensitive by design; two inputs that canonicalize identically
// are indistinguishable to the resolver.
func Canonicalize(verb string) string {
	v := strings.ToLower(strings.TrimSpace(verb))
	return strings.ReplaceAll(v, " ", "_")
}

// Lookup resolves a raw verb string to its situation mappings.
//
// A verb with evokes edges yields one Mapping per edge, in graph order, with
// no deduplication or ranking. A verb with no evokes edges but an explicit
// Verb type fact is reported found with an empty mapping list. Anything else
// is not found.
func (r *Resolver) Lookup(verb string) Result {
	canonical := Canonicalize(verb)

	verbIRI, err := rdf.NewIRI(onto.IRI(r.base, canonical))
	if err != nil {
		// The raw string cannot name an ontology entity.
		return Result{Found: false, Message: msgNotFound}
	}

	situations := r.graph.Objects(verbIRI, onto.IRI(r.base, onto.Evokes))
	if len(situations) == 0 {
		if r.isDeclaredVerb(verbIRI) {
			return Result{
				Found:    true,
				Verb:     verb,
				Message:  msgUnmapped,
				Mappings: []Mapping{},
			}
		}
		return Result{Found: false, Message: msgNotFound}
	}

	var fallbackDomain *string
	if domain, ok := r.graph.Value(verbIRI, onto.IRI(r.base, onto.SemanticDomain)); ok {
		name := vocabulary.LocalName(graphstore.TermValue(domain))
		fallbackDomain = &name
	}

	vnClass := vnClassPlaceholder
	if class, ok := r.graph.Value(verbIRI, onto.IRI(r.base, onto.VNClass)); ok {
		vnClass = vocabulary.LocalName(graphstore.TermValue(class))
	}

	mappings := make([]Mapping, 0, len(situations))
	for _, sit := range situations {
		mappings = append(mappings, Mapping{
			Situation:      vocabulary.LocalName(graphstore.TermValue(sit)),
			FallbackDomain: fallbackDomain,
			VNClass:        vnClass,
		})
	}

	return Result{Found: true, Verb: verb, Mappings: mappings}
}

func (r *Resolver) isDeclaredVerb(verbIRI rdf.IRI) bool {
	class, err := rdf.NewIRI(onto.IRI(r.base, onto.ClassVerb))
	if err != nil {
		return false
	}
	return r.graph.Has(verbIRI, vocabulary.RdfType, class)
}
