// Package graphstore provides an immutable, insertion-ordered triple store
// over RDF graphs parsed with github.com/knakk/rdf.
//
// A Graph is built once (at process start for the ontology and shape graphs,
// or per request for transient validation data) and never mutated afterwards,
// so it is safe to share across arbitrary concurrency without synchronization.
//
// Determinism: every query walks the triple slice in insertion order, which
// for parsed documents is document order. Callers may rely on this ordering;
// it is part of the store's contract, not an implementation accident.
package graphstore

import (
	"fmt"

	"github.com/knakk/rdf"
)

// Graph is an immutable set of RDF triples queryable by partial pattern.
type Graph struct {
	triples []rdf.Triple
}

// New builds a graph from the given triples. The slice is copied; the caller
// keeps ownership of its argument.
func New(triples []rdf.Triple) *Graph {
	g := &Graph{triples: make([]rdf.Triple, len(triples))}
	copy(g.triples, triples)
	return g
}

// Merge combines graphs into one, preserving per-graph insertion order.
// Ontology and shape facts may be deployed as two documents treated as one
// logical graph; Merge is how that configuration is realized.
func Merge(graphs ...*Graph) *Graph {
	merged := &Graph{}
	for _, g := range graphs {
		if g == nil {
			continue
		}
		merged.triples = append(merged.triples, g.triples...)
	}
	return merged
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns a copy of all triples in insertion order.
func (g *Graph) Triples() []rdf.Triple {
	out := make([]rdf.Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// Subjects returns every subject that carries the given predicate and object,
// in insertion order, without deduplication.
func (g *Graph) Subjects(predIRI string, obj rdf.Term) []rdf.Subject {
	var out []rdf.Subject
	for _, t := range g.triples {
		if predEq(t.Pred, predIRI) && TermsEqual(t.Obj, obj) {
			out = append(out, t.Subj)
		}
	}
	return out
}

// SubjectsByType returns every subject typed rdf:type <classIRI>.
func (g *Graph) SubjectsByType(classIRI string) []rdf.Subject {
	class, err := rdf.NewIRI(classIRI)
	if err != nil {
		return nil
	}
	return g.Subjects("http://www.w3.org/1999/02/22-rdf-syntax-ns#type", class)
}

// Objects returns every object of (subj, pred, ?) in insertion order.
func (g *Graph) Objects(subj rdf.Subject, predIRI string) []rdf.Term {
	var out []rdf.Term
	for _, t := range g.triples {
		if TermsEqual(t.Subj, subj) && predEq(t.Pred, predIRI) {
			out = append(out, t.Obj)
		}
	}
	return out
}

// Value returns the first object of (subj, pred, ?), or false when the
// pattern has no match. "First" follows the insertion-order guarantee.
func (g *Graph) Value(subj rdf.Subject, predIRI string) (rdf.Term, bool) {
	for _, t := range g.triples {
		if TermsEqual(t.Subj, subj) && predEq(t.Pred, predIRI) {
			return t.Obj, true
		}
	}
	return nil, false
}

// Has reports whether the exact triple (subj, pred, obj) is present.
func (g *Graph) Has(subj rdf.Subject, predIRI string, obj rdf.Term) bool {
	for _, t := range g.triples {
		if TermsEqual(t.Subj, subj) && predEq(t.Pred, predIRI) && TermsEqual(t.Obj, obj) {
			return true
		}
	}
	return false
}

// TermsEqual reports whether two terms are the same RDF term. Terms of
// different kinds (IRI vs literal vs blank) are never equal.
func TermsEqual(a, b rdf.Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	return a.Serialize(rdf.NTriples) == b.Serialize(rdf.NTriples)
}

// TermValue returns the bare lexical value of a term: the IRI string for
// IRIs, the literal value for literals, the label for blank nodes.
func TermValue(t rdf.Term) string {
	if t == nil {
		return ""
	}
	switch v := t.(type) {
	case rdf.IRI:
		return v.String()
	case rdf.Literal:
		return v.String()
	case rdf.Blank:
		return v.String()
	default:
		return t.Serialize(rdf.NTriples)
	}
}

// MustIRI builds an IRI term from a known-good IRI string, panicking on
// malformed input. Reserve it for vocabulary constants; user-derived strings
// go through rdf.NewIRI and handle the error.
func MustIRI(iri string) rdf.IRI {
	term, err := rdf.NewIRI(iri)
	if err != nil {
		panic(fmt.Sprintf("graphstore: invalid IRI constant %q: %v", iri, err))
	}
	return term
}

func predEq(p rdf.Predicate, iri string) bool {
	i, ok := p.(rdf.IRI)
	return ok && i.String() == iri
}
