package verbs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontoserve/graphstore"
)

const ontologyTurtle = `
@prefix ont: <http://example.org/ontology/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

ont:eat rdf:type ont:Verb ;
    ont:evokes ont:Ingestion ;
    ont:evokes ont:Consumption ;
    ont:semantic_domain ont:Food ;
    ont:vn_class ont:eat-39.1 .

ont:own rdf:type ont:Verb ;
    ont:evokes ont:Static_Possession .

ont:sleep rdf:type ont:Verb .
`

func testResolver(t *testing.T) *Resolver {
	t.Helper()
	g, err := graphstore.DecodeString(ontologyTurtle)
	require.NoError(t, err)
	return NewResolver(g, "http://example.org/ontology/")
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"eat", "eat"},
		{"Eat", "eat"},
		{"  EAT  ", "eat"},
		{"give up", "give_up"},
		{" Give Up ", "give_up"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonicalize(tt.in), "Canonicalize(%q)", tt.in)
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	for _, in := range []string{"Eat", " give up ", "RUN_AWAY"} {
		once := Canonicalize(in)
		assert.Equal(t, once, Canonicalize(once))
	}
}

func TestLookup_CaseAndWhitespaceInsensitive(t *testing.T) {
	r := testResolver(t)

	base := r.Lookup("eat")
	require.True(t, base.Found)

	for _, in := range []string{"Eat", " eat ", "EAT"} {
		got := r.Lookup(in)
		assert.True(t, got.Found, "Lookup(%q)", in)
		assert.Equal(t, base.Mappings, got.Mappings, "Lookup(%q)", in)
	}
}

func TestLookup_MappingsShareVerbLevelFacts(t *testing.T) {
	r := testResolver(t)

	result := r.Lookup("eat")
	require.True(t, result.Found)
	require.Len(t, result.Mappings, 2)

	// One mapping per evokes edge, in graph order.
	assert.Equal(t, "Ingestion", result.Mappings[0].Situation)
	assert.Equal(t, "Consumption", result.Mappings[1].Situation)

	// Fallback domain and vn_class are verb-level facts, repeated on
	// every mapping.
	for _, m := range result.Mappings {
		require.NotNil(t, m.FallbackDomain)
		assert.Equal(t, "Food", *m.FallbackDomain)
		assert.Equal(t, "eat-39.1", m.VNClass)
	}
}

func TestLookup_MissingVerbLevelFacts(t *testing.T) {
	r := testResolver(t)

	result := r.Lookup("own")
	require.True(t, result.Found)
	require.Len(t, result.Mappings, 1)

	assert.Equal(t, "Static_Possession", result.Mappings[0].Situation)
	assert.Nil(t, result.Mappings[0].FallbackDomain)
	assert.Equal(t, "Unknown", result.Mappings[0].VNClass)
}

func TestLookup_MissingDomainSerializesNull(t *testing.T) {
	r := testResolver(t)

	data, err := json.Marshal(r.Lookup("own"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"fallback_domain":null`)
}

func TestLookup_KnownButUnmapped(t *testing.T) {
	r := testResolver(t)

	result := r.Lookup("sleep")
	assert.True(t, result.Found)
	assert.NotNil(t, result.Mappings)
	assert.Empty(t, result.Mappings)
	assert.NotEmpty(t, result.Message)
}

func TestLookup_NotFound(t *testing.T) {
	r := testResolver(t)

	result := r.Lookup("defenestrate")
	assert.False(t, result.Found)
	assert.Empty(t, result.Mappings)
	assert.NotEmpty(t, result.Message)
}

func TestLookup_EmptyGraph(t *testing.T) {
	r := NewResolver(graphstore.New(nil), "")

	result := r.Lookup("eat")
	assert.False(t, result.Found)
}
