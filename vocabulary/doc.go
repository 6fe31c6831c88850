// Package vocabulary provides semantic vocabulary definitions shared across
// the service.
//
// The top-level package holds W3C standard IRIs (RDF, RDFS, XSD, SHACL) used
// when querying and validating graphs. Domain-specific namespaces live in
// subpackages (see vocabulary/onto for the verb ontology vocabulary).
//
// All constants are full IRIs. Short names are derived with LocalName, which
// implements the single short-name rule used everywhere in this system: the
// final slash-delimited segment of the IRI.
package vocabulary
