package shacl

import (
	"github.com/knakk/rdf"

	"github.com/c360studio/ontoserve/graphstore"
	"github.com/c360studio/ontoserve/vocabulary"
)

// materializeRDFS returns a transient working graph containing the data
// graph plus the RDFS schema entailments relevant to shape targeting:
//
//   - rdfs:subClassOf: every typed node also gets the transitive
//     superclasses of its declared types.
//   - rdfs:domain: a subject using a property with a declared domain gets
//     typed with that domain (and its superclasses).
//   - rdfs:range: an IRI or blank object of a property with a declared
//     range gets typed with that range (and its superclasses).
//
// Neither input graph is mutated.
func materializeRDFS(data, schema *graphstore.Graph) *graphstore.Graph {
	closure := subClassClosure(schema)
	domains, ranges := propertySchemas(schema)

	triples := data.Triples()
	seen := make(map[string]bool, len(triples))
	for _, t := range triples {
		seen[tripleKey(t)] = true
	}

	add := func(subj rdf.Subject, classIRI string) {
		class, err := rdf.NewIRI(classIRI)
		if err != nil {
			return
		}
		t := rdf.Triple{Subj: subj, Pred: graphstore.MustIRI(vocabulary.RdfType), Obj: class}
		key := tripleKey(t)
		if !seen[key] {
			seen[key] = true
			triples = append(triples, t)
		}
	}

	typeWithSupers := func(subj rdf.Subject, classIRI string) {
		add(subj, classIRI)
		for _, super := range closure[classIRI] {
			add(subj, super)
		}
	}

	for _, t := range data.Triples() {
		pred, ok := t.Pred.(rdf.IRI)
		if !ok {
			continue
		}
		predIRI := pred.String()

		if predIRI == vocabulary.RdfType {
			typeWithSupers(t.Subj, graphstore.TermValue(t.Obj))
			continue
		}

		if domain, ok := domains[predIRI]; ok {
			typeWithSupers(t.Subj, domain)
		}
		if rng, ok := ranges[predIRI]; ok {
			if obj, isSubj := t.Obj.(rdf.Subject); isSubj {
				typeWithSupers(obj, rng)
			}
		}
	}

	return graphstore.New(triples)
}

// subClassClosure computes the transitive rdfs:subClassOf closure of the
// schema graph, keyed by subclass IRI.
func subClassClosure(schema *graphstore.Graph) map[string][]string {
	direct := make(map[string][]string)
	for _, t := range schema.Triples() {
		pred, ok := t.Pred.(rdf.IRI)
		if !ok || pred.String() != vocabulary.RdfsSubClassOf {
			continue
		}
		sub := graphstore.TermValue(t.Subj)
		super := graphstore.TermValue(t.Obj)
		direct[sub] = append(direct[sub], super)
	}

	closure := make(map[string][]string, len(direct))
	for sub := range direct {
		var supers []string
		visited := map[string]bool{sub: true}
		stack := append([]string(nil), direct[sub]...)
		for len(stack) > 0 {
			next := stack[0]
			stack = stack[1:]
			if visited[next] {
				continue
			}
			visited[next] = true
			supers = append(supers, next)
			stack = append(stack, direct[next]...)
		}
		closure[sub] = supers
	}
	return closure
}

// propertySchemas extracts rdfs:domain and rdfs:range declarations from the
// schema graph, keyed by property IRI. First declaration wins.
func propertySchemas(schema *graphstore.Graph) (domains, ranges map[string]string) {
	domains = make(map[string]string)
	ranges = make(map[string]string)
	for _, t := range schema.Triples() {
		pred, ok := t.Pred.(rdf.IRI)
		if !ok {
			continue
		}
		prop := graphstore.TermValue(t.Subj)
		switch pred.String() {
		case vocabulary.RdfsDomain:
			if _, dup := domains[prop]; !dup {
				domains[prop] = graphstore.TermValue(t.Obj)
			}
		case vocabulary.RdfsRange:
			if _, dup := ranges[prop]; !dup {
				ranges[prop] = graphstore.TermValue(t.Obj)
			}
		}
	}
	return domains, ranges
}

func tripleKey(t rdf.Triple) string {
	return t.Subj.Serialize(rdf.NTriples) + "|" + t.Pred.Serialize(rdf.NTriples) + "|" + t.Obj.Serialize(rdf.NTriples)
}
