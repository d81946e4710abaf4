// Package mh defines the IRI vocabulary for the mental health knowledge
// graph: the base ontology namespace, the class and property terms used by
// the TBox and ABox builders, the standard RDF/OWL/SKOS/QB terms they depend
// on, and the static Wikidata cross-reference table for countries.
package mh
