package shacl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontoserve/graphstore"
	"github.com/c360studio/ontoserve/vocabulary"
)

const ontologySchemaTurtle = `
@prefix ont: <http://example.org/ontology/> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .

ont:Dynamic_Possession rdfs:subClassOf ont:Possession .
ont:Possession rdfs:subClassOf ont:Situation .
ont:possessor rdfs:domain ont:Possession .
ont:possessor rdfs:range ont:Agent .
`

func TestMaterializeRDFS_SubClassClosure(t *testing.T) {
	schema := decode(t, ontologySchemaTurtle)
	data := decode(t, `
@prefix ont: <http://example.org/ontology/> .
ont:p a ont:Dynamic_Possession .
`)

	working := materializeRDFS(data, schema)

	subj := graphstore.MustIRI("http://example.org/ontology/p")
	assert.True(t, working.Has(subj, vocabulary.RdfType, graphstore.MustIRI("http://example.org/ontology/Dynamic_Possession")))
	assert.True(t, working.Has(subj, vocabulary.RdfType, graphstore.MustIRI("http://example.org/ontology/Possession")))
	assert.True(t, working.Has(subj, vocabulary.RdfType, graphstore.MustIRI("http://example.org/ontology/Situation")))
}

func TestMaterializeRDFS_DomainAndRange(t *testing.T) {
	schema := decode(t, ontologySchemaTurtle)
	data := decode(t, `
@prefix ont: <http://example.org/ontology/> .
ont:p ont:possessor ont:alice .
`)

	working := materializeRDFS(data, schema)

	p := graphstore.MustIRI("http://example.org/ontology/p")
	alice := graphstore.MustIRI("http://example.org/ontology/alice")
	// Domain types the subject, range types the object, both with
	// superclasses expanded.
	assert.True(t, working.Has(p, vocabulary.RdfType, graphstore.MustIRI("http://example.org/ontology/Possession")))
	assert.True(t, working.Has(p, vocabulary.RdfType, graphstore.MustIRI("http://example.org/ontology/Situation")))
	assert.True(t, working.Has(alice, vocabulary.RdfType, graphstore.MustIRI("http://example.org/ontology/Agent")))
}

func TestMaterializeRDFS_DoesNotMutateInputs(t *testing.T) {
	schema := decode(t, ontologySchemaTurtle)
	data := decode(t, `
@prefix ont: <http://example.org/ontology/> .
ont:p a ont:Dynamic_Possession .
`)
	before := data.Len()

	_ = materializeRDFS(data, schema)

	assert.Equal(t, before, data.Len())
	assert.False(t, data.Has(graphstore.MustIRI("http://example.org/ontology/p"), vocabulary.RdfType, graphstore.MustIRI("http://example.org/ontology/Possession")))
}

func TestValidate_SubclassSatisfiesSuperclassTarget(t *testing.T) {
	shapes := decode(t, shapesTurtle)
	schema := decode(t, ontologySchemaTurtle)
	data := decode(t, `
@prefix ont: <http://example.org/ontology/> .
ont:p a ont:Dynamic_Possession .
`)

	// With RDFS inference the subclass instance is targeted by the
	// Possession shape and fails its minCount.
	report, err := Validate(data, shapes, Options{OntGraph: schema, Inference: InferenceRDFS})
	require.NoError(t, err)
	assert.False(t, report.Conforms)

	// Without inference the instance is not targeted at all.
	report, err = Validate(data, shapes, Options{Inference: InferenceNone})
	require.NoError(t, err)
	assert.True(t, report.Conforms)
}
