package benchmark

import (
	"fmt"
	"strconv"

	"github.com/cayleygraph/cayley"
	cayleygraph "github.com/cayleygraph/cayley/graph"
	"github.com/cayleygraph/quad"
	"github.com/knakk/rdf"

	"github.com/mindcube/mindcube/graph"
	"github.com/mindcube/mindcube/vocabulary/mh"
)

// Graph is a loaded knowledge graph: the quad store the queries run
// against, plus the raw triples the subsampler filters.
type Graph struct {
	Store   *cayley.Handle
	Triples []rdf.Triple
}

// Load reads one or more Turtle files (typically the TBox and the ABox)
// into a single in-memory graph.
func Load(paths ...string) (*Graph, error) {
	var triples []rdf.Triple
	for _, path := range paths {
		ts, err := graph.ReadTurtleFile(path)
		if err != nil {
			return nil, err
		}
		triples = append(triples, ts...)
	}
	return NewGraph(triples)
}

// NewGraph builds an in-memory quad store over the given triples.
func NewGraph(triples []rdf.Triple) (*Graph, error) {
	cayleygraph.IgnoreDuplicates = true
	cayleygraph.IgnoreMissing = true

	store, err := cayley.NewMemoryGraph()
	if err != nil {
		return nil, fmt.Errorf("create memory graph: %w", err)
	}

	for _, t := range triples {
		q, err := toQuad(t)
		if err != nil {
			return nil, err
		}
		if err := store.AddQuad(q); err != nil {
			return nil, fmt.Errorf("add quad: %w", err)
		}
	}

	return &Graph{Store: store, Triples: triples}, nil
}

func toQuad(t rdf.Triple) (quad.Quad, error) {
	s, err := toValue(t.Subj)
	if err != nil {
		return quad.Quad{}, fmt.Errorf("subject: %w", err)
	}
	p, err := toValue(t.Pred)
	if err != nil {
		return quad.Quad{}, fmt.Errorf("predicate: %w", err)
	}
	o, err := toValue(t.Obj)
	if err != nil {
		return quad.Quad{}, fmt.Errorf("object: %w", err)
	}
	return quad.Quad{Subject: s, Predicate: p, Object: o}, nil
}

// toValue converts an RDF term to a quad store value. Numeric literals are
// converted to native quad types so the queries never see untyped text;
// ingestion already guaranteed the lexical forms parse.
func toValue(term rdf.Term) (quad.Value, error) {
	switch term.Type() {
	case rdf.TermIRI:
		return quad.IRI(term.String()), nil
	case rdf.TermLiteral:
		lit, ok := term.(rdf.Literal)
		if !ok {
			return nil, fmt.Errorf("literal term has unexpected concrete type %T", term)
		}
		switch lit.DataType.String() {
		case mh.XSDInteger:
			n, err := strconv.ParseInt(lit.String(), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse integer literal %q: %w", lit.String(), err)
			}
			return quad.Int(n), nil
		case mh.XSDFloat, mh.XSDDecimal:
			f, err := strconv.ParseFloat(lit.String(), 64)
			if err != nil {
				return nil, fmt.Errorf("parse float literal %q: %w", lit.String(), err)
			}
			return quad.Float(f), nil
		default:
			return quad.String(lit.String()), nil
		}
	default:
		return nil, fmt.Errorf("unsupported term type for %s", term.String())
	}
}
