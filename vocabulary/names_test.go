package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalName(t *testing.T) {
	tests := []struct {
		name string
		iri  string
		want string
	}{
		{
			name: "slash-delimited IRI",
			iri:  "http://example.org/ontology/Possession",
			want: "Possession",
		},
		{
			name: "fragment IRI",
			iri:  "http://www.w3.org/ns/shacl#NodeShape",
			want: "NodeShape",
		},
		{
			name: "fragment wins over slash",
			iri:  "http://example.org/onto#Dynamic_Possession",
			want: "Dynamic_Possession",
		},
		{
			name: "trailing slash yields empty",
			iri:  "http://example.org/ontology/",
			want: "",
		},
		{
			name: "no separators",
			iri:  "Possession",
			want: "Possession",
		},
		{
			name: "empty input",
			iri:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalName(tt.iri))
		})
	}
}
