package graphstore

import (
	"testing"

	"github.com/knakk/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureTurtle = `
@prefix ont: <http://example.org/ontology/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

ont:eat rdf:type ont:Verb ;
    ont:evokes ont:Ingestion ;
    ont:evokes ont:Consumption ;
    ont:semantic_domain ont:Food .

ont:give rdf:type ont:Verb .
`

func mustDecode(t *testing.T, data string) *Graph {
	t.Helper()
	g, err := DecodeString(data)
	require.NoError(t, err)
	return g
}

func TestDecodeString(t *testing.T) {
	g := mustDecode(t, fixtureTurtle)
	assert.Equal(t, 5, g.Len())
}

func TestDecodeString_Malformed(t *testing.T) {
	g, err := DecodeString("this is not turtle @@@")
	assert.Error(t, err)
	assert.Nil(t, g)
}

func TestObjects_InsertionOrder(t *testing.T) {
	g := mustDecode(t, fixtureTurtle)

	objs := g.Objects(MustIRI("http://example.org/ontology/eat"), "http://example.org/ontology/evokes")
	require.Len(t, objs, 2)
	assert.Equal(t, "http://example.org/ontology/Ingestion", TermValue(objs[0]))
	assert.Equal(t, "http://example.org/ontology/Consumption", TermValue(objs[1]))
}

func TestSubjectsByType(t *testing.T) {
	g := mustDecode(t, fixtureTurtle)

	subjects := g.SubjectsByType("http://example.org/ontology/Verb")
	require.Len(t, subjects, 2)
	assert.Equal(t, "http://example.org/ontology/eat", TermValue(subjects[0]))
	assert.Equal(t, "http://example.org/ontology/give", TermValue(subjects[1]))
}

func TestValue(t *testing.T) {
	g := mustDecode(t, fixtureTurtle)

	domain, ok := g.Value(MustIRI("http://example.org/ontology/eat"), "http://example.org/ontology/semantic_domain")
	require.True(t, ok)
	assert.Equal(t, "http://example.org/ontology/Food", TermValue(domain))

	_, ok = g.Value(MustIRI("http://example.org/ontology/give"), "http://example.org/ontology/semantic_domain")
	assert.False(t, ok)
}

func TestValue_FirstMatchWins(t *testing.T) {
	g := mustDecode(t, `
@prefix ont: <http://example.org/ontology/> .
ont:eat ont:evokes ont:First .
ont:eat ont:evokes ont:Second .
`)
	obj, ok := g.Value(MustIRI("http://example.org/ontology/eat"), "http://example.org/ontology/evokes")
	require.True(t, ok)
	assert.Equal(t, "http://example.org/ontology/First", TermValue(obj))
}

func TestHas(t *testing.T) {
	g := mustDecode(t, fixtureTurtle)

	verb := MustIRI("http://example.org/ontology/Verb")
	assert.True(t, g.Has(MustIRI("http://example.org/ontology/eat"), "http://www.w3.org/1999/02/22-rdf-syntax-ns#type", verb))
	assert.False(t, g.Has(MustIRI("http://example.org/ontology/Food"), "http://www.w3.org/1999/02/22-rdf-syntax-ns#type", verb))
}

func TestMerge(t *testing.T) {
	a := mustDecode(t, `<http://ex.org/a> <http://ex.org/p> <http://ex.org/b> .`)
	b := mustDecode(t, `<http://ex.org/c> <http://ex.org/p> <http://ex.org/d> .`)

	merged := Merge(a, nil, b)
	require.Equal(t, 2, merged.Len())
	// First graph's triples come first.
	assert.Equal(t, "http://ex.org/a", TermValue(merged.Triples()[0].Subj))
	assert.Equal(t, "http://ex.org/c", TermValue(merged.Triples()[1].Subj))
}

func TestTermsEqual(t *testing.T) {
	iri := MustIRI("http://ex.org/a")
	other := MustIRI("http://ex.org/b")
	lit, err := rdf.NewLiteral("http://ex.org/a")
	require.NoError(t, err)

	assert.True(t, TermsEqual(iri, MustIRI("http://ex.org/a")))
	assert.False(t, TermsEqual(iri, other))
	// Same lexical value, different term kind.
	assert.False(t, TermsEqual(iri, lit))
	assert.True(t, TermsEqual(nil, nil))
	assert.False(t, TermsEqual(iri, nil))
}

func TestGraph_Immutability(t *testing.T) {
	src := mustDecode(t, fixtureTurtle)
	triples := src.Triples()
	triples[0] = rdf.Triple{}

	// Mutating the returned slice must not affect the graph.
	assert.Equal(t, "http://example.org/ontology/eat", TermValue(src.Triples()[0].Subj))
}

func TestDecodeString_NumericLiteralAtLineEnd(t *testing.T) {
	// A bare integer directly followed by a line break is valid Turtle.
	g := mustDecode(t, `
@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix ont: <http://example.org/ontology/> .

ont:c sh:minCount 1
    .
ont:d ont:count 3
    ; ont:label "d" .
`)
	require.Equal(t, 3, g.Len())

	count, ok := g.Value(MustIRI("http://example.org/ontology/d"), "http://example.org/ontology/count")
	require.True(t, ok)
	assert.Equal(t, "3", TermValue(count))
}

func TestDecodeString_TrailingPropertySemicolon(t *testing.T) {
	// A predicate-object list may end with a redundant ";" before "]" or ".".
	g := mustDecode(t, `
@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix ont: <http://example.org/ontology/> .

ont:Shape a sh:NodeShape ;
    sh:targetClass ont:Thing ;
    sh:property [
        sh:path ont:f ;
        sh:name "f" ;
        sh:minCount 1 ;
    ] ;
    .
`)
	assert.Greater(t, g.Len(), 0)

	shapes := g.SubjectsByType("http://www.w3.org/ns/shacl#NodeShape")
	require.Len(t, shapes, 1)
}

func TestDecodeString_LiteralsSurviveNormalization(t *testing.T) {
	// Punctuation inside quoted literals and fragments inside IRIs must
	// pass through the pre-parse rewrite untouched.
	g := mustDecode(t, `
@prefix ont: <http://example.org/ontology/> .

ont:a ont:note "semi ; ] inside" .
ont:b ont:note """line one
line two # not a comment""" .
<http://example.org/onto#frag> ont:note "x" .
`)
	require.Equal(t, 3, g.Len())

	note, ok := g.Value(MustIRI("http://example.org/ontology/a"), "http://example.org/ontology/note")
	require.True(t, ok)
	assert.Equal(t, "semi ; ] inside", TermValue(note))

	long, ok := g.Value(MustIRI("http://example.org/ontology/b"), "http://example.org/ontology/note")
	require.True(t, ok)
	assert.Equal(t, "line one\nline two # not a comment", TermValue(long))

	_, ok = g.Value(MustIRI("http://example.org/onto#frag"), "http://example.org/ontology/note")
	assert.True(t, ok)
}
