package graph

import (
	"fmt"
	"strconv"

	"github.com/knakk/rdf"

	"github.com/mindcube/mindcube/vocabulary/mh"
)

// iri builds an IRI term. All IRIs here are assembled from vocabulary
// constants and integer identifiers, so construction cannot fail.
func iri(s string) rdf.IRI {
	i, err := rdf.NewIRI(s)
	if err != nil {
		panic(fmt.Sprintf("invalid vocabulary IRI %q: %v", s, err))
	}
	return i
}

func stringLit(s string) rdf.Literal {
	return rdf.NewTypedLiteral(s, iri(mh.XSDString))
}

func langLit(s, lang string) rdf.Literal {
	l, err := rdf.NewLangLiteral(s, lang)
	if err != nil {
		panic(fmt.Sprintf("invalid language literal %q@%s: %v", s, lang, err))
	}
	return l
}

func intLit(v int) rdf.Literal {
	return rdf.NewTypedLiteral(strconv.Itoa(v), iri(mh.XSDInteger))
}

func floatLit(v float64) rdf.Literal {
	return rdf.NewTypedLiteral(strconv.FormatFloat(v, 'g', -1, 64), iri(mh.XSDFloat))
}

func triple(s rdf.Subject, p rdf.Predicate, o rdf.Object) rdf.Triple {
	return rdf.Triple{Subj: s, Pred: p, Obj: o}
}
