package graph

import (
	"testing"

	"github.com/knakk/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindcube/mindcube/vocabulary/mh"
)

func TestSchema_Deterministic(t *testing.T) {
	first := Schema()
	second := Schema()

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Serialize(rdf.NTriples), second[i].Serialize(rdf.NTriples))
	}
}

func TestSchema_Classes(t *testing.T) {
	triples := Schema()

	assert.True(t, hasTriple(triples, mh.ClassPerson, mh.RDFType, "<"+mh.OWLClass+">"))
	assert.True(t, hasTriple(triples, mh.ClassGender, mh.RDFType, "<"+mh.OWLClass+">"))
	assert.True(t, hasTriple(triples, mh.ClassAlcoholConsumption, mh.RDFType, "<"+mh.OWLClass+">"))

	// Measurement is the cube structure, not a plain class.
	assert.True(t, hasTriple(triples, mh.ClassMeasurement, mh.RDFType, "<"+mh.QBDataStructureDefinition+">"))
	assert.False(t, hasTriple(triples, mh.ClassMeasurement, mh.RDFType, "<"+mh.OWLClass+">"))
}

func TestSchema_Hierarchies(t *testing.T) {
	triples := Schema()

	assert.True(t, hasTriple(triples, mh.CountryHierarchy, mh.RDFType, "<"+mh.SKOSConceptScheme+">"))
	assert.True(t, hasTriple(triples, mh.ClassCountry, mh.SKOSInScheme, "<"+mh.CountryHierarchy+">"))
	assert.True(t, hasTriple(triples, mh.ClassSeverity, mh.SKOSInScheme, "<"+mh.SeverityHierarchy+">"))
}

func TestSchema_MeasureAnnotations(t *testing.T) {
	triples := Schema()

	measures := 0
	for _, tr := range triples {
		if tr.Pred.String() == mh.QBMeasure {
			measures++
		}
	}
	assert.Equal(t, 4, measures, "the four numeric facts carry qb:measure")

	assert.True(t, hasTriple(triples, mh.PropHasSleepHours, mh.RDFSRange, "<"+mh.XSDFloat+">"))
	assert.True(t, hasTriple(triples, mh.PropHasWorkHours, mh.RDFSRange, "<"+mh.XSDInteger+">"))
	assert.True(t, hasTriple(triples, mh.PropHasCountry, mh.OWLEquivalentProperty, "<"+mh.WikidataCountryProperty+">"))
}
