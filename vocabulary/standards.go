package vocabulary

// Standard Vocabulary IRIs
//
// These constants provide the W3C standard IRIs this service queries and
// emits. Keeping them in one place keeps the mapping from RDF predicate to
// semantic field statically checkable instead of scattering string literals
// through the query code.
//
// References:
// - RDF: https://www.w3.org/TR/rdf11-concepts/
// - RDFS: https://www.w3.org/TR/rdf-schema/
// - SHACL: https://www.w3.org/TR/shacl/
// - XSD: https://www.w3.org/TR/xmlschema11-2/

// RDF Standard IRIs
const (
	// RdfType asserts the class of a resource.
	RdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
)

// RDF Schema Standard IRIs
const (
	// RdfsLabel provides a human-readable name for a resource.
	RdfsLabel = "http://www.w3.org/2000/01/rdf-schema#label"

	// RdfsComment provides a human-readable description.
	RdfsComment = "http://www.w3.org/2000/01/rdf-schema#comment"

	// RdfsSubClassOf declares class subsumption. The validator expands
	// its transitive closure during RDFS inference.
	RdfsSubClassOf = "http://www.w3.org/2000/01/rdf-schema#subClassOf"

	// RdfsDomain declares the class of subjects using a property.
	RdfsDomain = "http://www.w3.org/2000/01/rdf-schema#domain"

	// RdfsRange declares the class of values of a property.
	RdfsRange = "http://www.w3.org/2000/01/rdf-schema#range"
)

// SHACL Core Standard IRIs (shape declarations)
const (
	ShNodeShape   = "http://www.w3.org/ns/shacl#NodeShape"
	ShTargetClass = "http://www.w3.org/ns/shacl#targetClass"
	ShProperty    = "http://www.w3.org/ns/shacl#property"
	ShPath        = "http://www.w3.org/ns/shacl#path"
	ShName        = "http://www.w3.org/ns/shacl#name"
	ShMinCount    = "http://www.w3.org/ns/shacl#minCount"
	ShMaxCount    = "http://www.w3.org/ns/shacl#maxCount"
	ShDatatype    = "http://www.w3.org/ns/shacl#datatype"
	ShClass       = "http://www.w3.org/ns/shacl#class"
	ShNodeKind    = "http://www.w3.org/ns/shacl#nodeKind"
	ShIRI         = "http://www.w3.org/ns/shacl#IRI"
	ShLiteral     = "http://www.w3.org/ns/shacl#Literal"
	ShBlankNode   = "http://www.w3.org/ns/shacl#BlankNode"
)

// SHACL Validation Report IRIs
const (
	ShValidationReport          = "http://www.w3.org/ns/shacl#ValidationReport"
	ShValidationResult          = "http://www.w3.org/ns/shacl#ValidationResult"
	ShConforms                  = "http://www.w3.org/ns/shacl#conforms"
	ShResult                    = "http://www.w3.org/ns/shacl#result"
	ShFocusNode                 = "http://www.w3.org/ns/shacl#focusNode"
	ShResultPath                = "http://www.w3.org/ns/shacl#resultPath"
	ShResultMessage             = "http://www.w3.org/ns/shacl#resultMessage"
	ShResultSeverity            = "http://www.w3.org/ns/shacl#resultSeverity"
	ShSourceConstraintComponent = "http://www.w3.org/ns/shacl#sourceConstraintComponent"
	ShSourceShape               = "http://www.w3.org/ns/shacl#sourceShape"
	ShViolation                 = "http://www.w3.org/ns/shacl#Violation"

	// SHACL constraint component IRIs referenced in validation results.
	ShMinCountConstraintComponent = "http://www.w3.org/ns/shacl#MinCountConstraintComponent"
	ShMaxCountConstraintComponent = "http://www.w3.org/ns/shacl#MaxCountConstraintComponent"
	ShDatatypeConstraintComponent = "http://www.w3.org/ns/shacl#DatatypeConstraintComponent"
	ShClassConstraintComponent    = "http://www.w3.org/ns/shacl#ClassConstraintComponent"
	ShNodeKindConstraintComponent = "http://www.w3.org/ns/shacl#NodeKindConstraintComponent"
)

// XSD Datatype IRIs
const (
	XsdString  = "http://www.w3.org/2001/XMLSchema#string"
	XsdInteger = "http://www.w3.org/2001/XMLSchema#integer"
	XsdBoolean = "http://www.w3.org/2001/XMLSchema#boolean"
	XsdDecimal = "http://www.w3.org/2001/XMLSchema#decimal"
	XsdFloat   = "http://www.w3.org/2001/XMLSchema#float"
	XsdDouble  = "http://www.w3.org/2001/XMLSchema#double"
)

// Namespace prefixes used when serializing graphs back out (see the export
// package). Keys are the conventional prefix, values the namespace IRI.
var StandardPrefixes = map[string]string{
	"rdf":  "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfs": "http://www.w3.org/2000/01/rdf-schema#",
	"sh":   "http://www.w3.org/ns/shacl#",
	"xsd":  "http://www.w3.org/2001/XMLSchema#",
}
