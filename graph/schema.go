package graph

import (
	"github.com/knakk/rdf"

	"github.com/mindcube/mindcube/vocabulary/mh"
)

// Schema builds the TBox: class and property declarations with labels,
// comments, domain/range and the QB4OLAP measure annotations. The result is
// independent of row data and identical on every call.
func Schema() []rdf.Triple {
	var ts []rdf.Triple
	ts = append(ts, classTriples()...)
	ts = append(ts, hierarchyTriples()...)
	ts = append(ts, propertyTriples()...)
	return ts
}

func classTriples() []rdf.Triple {
	ts := []rdf.Triple{
		triple(iri(mh.ClassPerson), iri(mh.RDFType), iri(mh.OWLClass)),
		triple(iri(mh.ClassPerson), iri(mh.RDFSLabel), langLit("Person", "en")),
		triple(iri(mh.ClassPerson), iri(mh.RDFSComment), stringLit("Represents an individual with demographic attributes.")),

		triple(iri(mh.ClassMentalHealth), iri(mh.RDFType), iri(mh.OWLClass)),
		triple(iri(mh.ClassMentalHealth), iri(mh.RDFSLabel), langLit("Mental Health", "en")),
		triple(iri(mh.ClassMentalHealth), iri(mh.RDFSComment), stringLit("Captures mental health condition details.")),

		triple(iri(mh.ClassLifestyle), iri(mh.RDFType), iri(mh.OWLClass)),
		triple(iri(mh.ClassLifestyle), iri(mh.RDFSLabel), langLit("Lifestyle", "en")),
		triple(iri(mh.ClassLifestyle), iri(mh.RDFSComment), stringLit("Captures lifestyle factors like diet, smoking.")),
	}

	// Normalized dimension classes of the snowflake schema.
	for _, class := range []string{
		mh.ClassGender,
		mh.ClassOccupation,
		mh.ClassCountry,
		mh.ClassSeverity,
		mh.ClassConsultation,
		mh.ClassStressLevel,
		mh.ClassMedication,
		mh.ClassDietQuality,
		mh.ClassSmokingHabit,
		mh.ClassAlcoholConsumption,
	} {
		ts = append(ts, triple(iri(class), iri(mh.RDFType), iri(mh.OWLClass)))
	}

	// Measurement is the OLAP cube structure, not a plain class.
	ts = append(ts,
		triple(iri(mh.ClassMeasurement), iri(mh.RDFType), iri(mh.QBDataStructureDefinition)),
		triple(iri(mh.ClassMeasurement), iri(mh.RDFSLabel), langLit("Measurement", "en")),
		triple(iri(mh.ClassMeasurement), iri(mh.RDFSComment), stringLit("Multidimensional measurements for OLAP.")),
	)

	return ts
}

func hierarchyTriples() []rdf.Triple {
	return []rdf.Triple{
		triple(iri(mh.CountryHierarchy), iri(mh.RDFType), iri(mh.SKOSConceptScheme)),
		triple(iri(mh.CountryHierarchy), iri(mh.RDFSLabel), stringLit("Country Hierarchy")),
		triple(iri(mh.ClassCountry), iri(mh.SKOSInScheme), iri(mh.CountryHierarchy)),

		triple(iri(mh.SeverityHierarchy), iri(mh.RDFType), iri(mh.SKOSConceptScheme)),
		triple(iri(mh.ClassSeverity), iri(mh.SKOSInScheme), iri(mh.SeverityHierarchy)),
	}
}

func propertyTriples() []rdf.Triple {
	var ts []rdf.Triple

	object := func(prop, domain, rng string) {
		ts = append(ts,
			triple(iri(prop), iri(mh.RDFType), iri(mh.OWLObjectProperty)),
			triple(iri(prop), iri(mh.RDFSDomain), iri(domain)),
			triple(iri(prop), iri(mh.RDFSRange), iri(rng)),
		)
	}
	datatype := func(prop, domain, rng string) {
		ts = append(ts,
			triple(iri(prop), iri(mh.RDFType), iri(mh.OWLDatatypeProperty)),
			triple(iri(prop), iri(mh.RDFSDomain), iri(domain)),
			triple(iri(prop), iri(mh.RDFSRange), iri(rng)),
		)
	}
	measure := func(prop, label string) {
		ts = append(ts, triple(iri(prop), iri(mh.QBMeasure), stringLit(label)))
	}

	// Person properties.
	datatype(mh.PropHasAge, mh.ClassPerson, mh.XSDInteger)
	object(mh.PropHasGender, mh.ClassPerson, mh.ClassGender)
	object(mh.PropHasOccupation, mh.ClassPerson, mh.ClassOccupation)
	object(mh.PropHasCountry, mh.ClassPerson, mh.ClassCountry)
	ts = append(ts, triple(iri(mh.PropHasCountry), iri(mh.OWLEquivalentProperty), iri(mh.WikidataCountryProperty)))

	// Mental health properties.
	object(mh.PropHasMentalHealth, mh.ClassPerson, mh.ClassMentalHealth)
	object(mh.PropHasSeverity, mh.ClassMentalHealth, mh.ClassSeverity)
	object(mh.PropHasConsultationHistory, mh.ClassMentalHealth, mh.ClassConsultation)
	object(mh.PropHasStressLevel, mh.ClassMentalHealth, mh.ClassStressLevel)
	object(mh.PropHasMedicationUsage, mh.ClassMentalHealth, mh.ClassMedication)

	// Lifestyle properties.
	object(mh.PropHasLifestyle, mh.ClassPerson, mh.ClassLifestyle)
	object(mh.PropHasDietQuality, mh.ClassLifestyle, mh.ClassDietQuality)
	object(mh.PropHasSmokingHabit, mh.ClassLifestyle, mh.ClassSmokingHabit)
	object(mh.PropHasAlcoholConsumption, mh.ClassLifestyle, mh.ClassAlcoholConsumption)

	// Measurement facts.
	datatype(mh.PropHasSleepHours, mh.ClassMeasurement, mh.XSDFloat)
	measure(mh.PropHasSleepHours, "Sleep Hours")
	datatype(mh.PropHasWorkHours, mh.ClassMeasurement, mh.XSDInteger)
	measure(mh.PropHasWorkHours, "Work Hours")
	datatype(mh.PropHasPhysicalActivityHours, mh.ClassMeasurement, mh.XSDInteger)
	measure(mh.PropHasPhysicalActivityHours, "Physical Activity Hours")
	datatype(mh.PropHasSocialMediaUsage, mh.ClassMeasurement, mh.XSDFloat)
	measure(mh.PropHasSocialMediaUsage, "Social Media Usage")

	object(mh.PropHasMeasurement, mh.ClassPerson, mh.ClassMeasurement)

	return ts
}
