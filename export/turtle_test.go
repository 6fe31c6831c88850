package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontoserve/graphstore"
)

const fixture = `
@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix ont: <http://example.org/ontology/> .

ont:report a sh:ValidationReport ;
    sh:conforms false ;
    sh:result ont:r1 .

ont:r1 a sh:ValidationResult ;
    sh:resultMessage "Less than 1 values" .
`

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("turtle")
	require.NoError(t, err)
	assert.Equal(t, FormatTurtle, f)

	_, err = ParseFormat("trix")
	assert.Error(t, err)
}

func TestGetFormatInfo(t *testing.T) {
	info, ok := GetFormatInfo(FormatTurtle)
	require.True(t, ok)
	assert.Equal(t, "text/turtle", info.MIMEType)
	assert.Equal(t, ".ttl", info.Extension)

	_, ok = GetFormatInfo(Format("bogus"))
	assert.False(t, ok)
}

func TestSerialize_Turtle(t *testing.T) {
	g, err := graphstore.DecodeString(fixture)
	require.NoError(t, err)

	s := NewSerializer(FormatTurtle)
	out, err := s.Serialize(g.Triples())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "@prefix"))
	assert.Contains(t, out, "sh:ValidationReport")
	assert.Contains(t, out, "sh:resultMessage")

	// The output must parse back to the same number of triples.
	back, err := graphstore.DecodeString(out)
	require.NoError(t, err)
	assert.Equal(t, g.Len(), back.Len())
}

func TestSerialize_NTriples(t *testing.T) {
	g, err := graphstore.DecodeString(fixture)
	require.NoError(t, err)

	s := NewSerializer(FormatNTriples)
	out, err := s.Serialize(g.Triples())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, g.Len())
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, " ."), "line %q", line)
	}
}

func TestSerialize_UnsupportedFormat(t *testing.T) {
	s := &Serializer{format: Format("bogus"), prefixes: map[string]string{}}
	_, err := s.Serialize(nil)
	assert.Error(t, err)
}
