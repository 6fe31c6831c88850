package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/knakk/rdf"

	"github.com/c360studio/ontoserve/vocabulary"
)

// Serializer writes RDF triples in the configured format, grouping Turtle
// output into subject blocks with a sorted prefix header.
type Serializer struct {
	format   Format
	prefixes map[string]string
}

// NewSerializer creates a serializer for the given format with the standard
// namespace prefixes preloaded.
func NewSerializer(format Format) *Serializer {
	prefixes := make(map[string]string, len(vocabulary.StandardPrefixes))
	for k, v := range vocabulary.StandardPrefixes {
		prefixes[k] = v
	}
	return &Serializer{format: format, prefixes: prefixes}
}

// SetPrefix sets a namespace prefix used when compacting Turtle output.
func (s *Serializer) SetPrefix(prefix, iri string) {
	s.prefixes[prefix] = iri
}

// Serialize renders the triples in the serializer's format.
func (s *Serializer) Serialize(triples []rdf.Triple) (string, error) {
	switch s.format {
	case FormatTurtle:
		return s.toTurtle(triples), nil
	case FormatNTriples:
		return toNTriples(triples), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s.format)
	}
}

// toTurtle groups triples by subject, preserving first-seen subject order
// and per-subject statement order.
func (s *Serializer) toTurtle(triples []rdf.Triple) string {
	var sb strings.Builder
	s.writePrefixes(&sb)

	var subjectOrder []string
	grouped := make(map[string][]rdf.Triple)
	for _, t := range triples {
		key := t.Subj.Serialize(rdf.Turtle)
		if _, seen := grouped[key]; !seen {
			subjectOrder = append(subjectOrder, key)
		}
		grouped[key] = append(grouped[key], t)
	}

	for _, subj := range subjectOrder {
		group := grouped[subj]
		sb.WriteString(subj)
		sb.WriteString("\n")
		for i, t := range group {
			terminator := " ;"
			if i == len(group)-1 {
				terminator = " ."
			}
			sb.WriteString(fmt.Sprintf("    %s %s%s\n", s.compact(t.Pred.Serialize(rdf.Turtle)), s.compact(t.Obj.Serialize(rdf.Turtle)), terminator))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// writePrefixes writes prefix declarations in sorted order for consistent
// output.
func (s *Serializer) writePrefixes(sb *strings.Builder) {
	keys := make([]string, 0, len(s.prefixes))
	for k := range s.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, prefix := range keys {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, s.prefixes[prefix]))
	}
	sb.WriteString("\n")
}

// compact rewrites <full-iri> terms into prefix:local form when a registered
// prefix covers them. Non-IRI terms pass through untouched.
func (s *Serializer) compact(term string) string {
	if !strings.HasPrefix(term, "<") || !strings.HasSuffix(term, ">") {
		return term
	}
	iri := term[1 : len(term)-1]
	for prefix, ns := range s.prefixes {
		if rest, ok := strings.CutPrefix(iri, ns); ok && rest != "" && !strings.ContainsAny(rest, "/#") {
			return prefix + ":" + rest
		}
	}
	return term
}

func toNTriples(triples []rdf.Triple) string {
	var sb strings.Builder
	for _, t := range triples {
		sb.WriteString(t.Subj.Serialize(rdf.NTriples))
		sb.WriteString(" ")
		sb.WriteString(t.Pred.Serialize(rdf.NTriples))
		sb.WriteString(" ")
		sb.WriteString(t.Obj.Serialize(rdf.NTriples))
		sb.WriteString(" .\n")
	}
	return sb.String()
}
