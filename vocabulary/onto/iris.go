// Package onto defines the verb ontology vocabulary: the base namespace the
// service resolves verbs against and the predicates attached to verb and
// situation entities.
package onto

// DefaultBase is the base namespace for ontology entities. Deployments can
// override it via config (graph.base_iri); every IRI helper in this package
// takes the base explicitly so the override flows through.
const DefaultBase = "http://example.org/ontology/"

// Verb-level predicates. These attach to the verb entity itself, not to the
// situations it evokes, which is why fallback domain and VerbNet class repeat
// identically across all mappings of one lookup.
const (
	// Evokes links a verb to a Situation it can denote.
	Evokes = "evokes"

	// SemanticDomain is the verb's fallback classification, used to select
	// which form/shape applies when no more specific mapping exists.
	SemanticDomain = "semantic_domain"

	// VNClass is the verb's VerbNet classification.
	VNClass = "vn_class"

	// Lemma is the citation form of a lexical entry.
	Lemma = "lemma"

	// Gloss is a human-readable sense definition.
	Gloss = "gloss"
)

// Ontology classes.
const (
	// ClassVerb marks a subject as a known verb. A verb carrying this type
	// but no evokes edges is "known but unmapped".
	ClassVerb = "Verb"

	// ClassSituation marks a subject as a situation (an event or state a
	// verb can denote).
	ClassSituation = "Situation"
)

// IRI resolves a local name against the given base namespace.
func IRI(base, name string) string {
	if base == "" {
		base = DefaultBase
	}
	return base + name
}
