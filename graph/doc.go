// Package graph builds the knowledge graph from survey records: a static
// TBox (classes, properties, OLAP annotations) and a per-row ABox with
// normalized dimension entities. Triples are written and re-read as Turtle.
package graph
