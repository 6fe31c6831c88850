package vocabulary

import "strings"

// LocalName derives the short name of an IRI: the final slash-delimited
// segment. A trailing fragment ("#name") takes precedence when present, so
// both "http://ex.org/onto/Possession" and "http://ex.org/onto#Possession"
// yield "Possession".
//
// This is the canonical short-name rule for the whole system; schema keys,
// situation names and domain names are all derived with it.
func LocalName(iri string) string {
	if iri == "" {
		return ""
	}
	if i := strings.LastIndex(iri, "#"); i >= 0 && i < len(iri)-1 {
		return iri[i+1:]
	}
	if i := strings.LastIndex(iri, "/"); i >= 0 {
		return iri[i+1:]
	}
	return iri
}
