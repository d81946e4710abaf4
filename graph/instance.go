package graph

import (
	"strconv"

	"github.com/knakk/rdf"

	"github.com/mindcube/mindcube/dataset"
	"github.com/mindcube/mindcube/vocabulary/mh"
)

// InstanceBuilder accumulates the ABox for one generation run. Dimension
// entities are emitted once per distinct value; MentalHealth, Lifestyle and
// Measurement entities are emitted fresh for every row. Rows must be added
// in input order, since dimension identifiers follow first-seen order.
type InstanceBuilder struct {
	triples []rdf.Triple

	gender       *DimensionTable
	occupation   *DimensionTable
	country      *DimensionTable
	severity     *DimensionTable
	consultation *DimensionTable
	stress       *DimensionTable
	medication   *DimensionTable
	diet         *DimensionTable
	smoking      *DimensionTable
	alcohol      *DimensionTable

	mentalHealthCount int
	lifestyleCount    int
}

// NewInstanceBuilder creates a builder with empty dimension tables.
func NewInstanceBuilder() *InstanceBuilder {
	return &InstanceBuilder{
		gender:       NewDimensionTable(mh.SegmentGender, mh.ClassGender),
		occupation:   NewDimensionTable(mh.SegmentOccupation, mh.ClassOccupation),
		country:      NewDimensionTable(mh.SegmentCountry, mh.ClassCountry),
		severity:     NewDimensionTable(mh.SegmentSeverity, mh.ClassSeverity),
		consultation: NewDimensionTable(mh.SegmentConsultation, mh.ClassConsultation),
		stress:       NewDimensionTable(mh.SegmentStress, mh.ClassStressLevel),
		medication:   NewDimensionTable(mh.SegmentMedication, mh.ClassMedication),
		diet:         NewDimensionTable(mh.SegmentDiet, mh.ClassDietQuality),
		smoking:      NewDimensionTable(mh.SegmentSmoking, mh.ClassSmokingHabit),
		alcohol:      NewDimensionTable(mh.SegmentAlcohol, mh.ClassAlcoholConsumption),
	}
}

// AddAll adds every record in order.
func (b *InstanceBuilder) AddAll(records []dataset.Record) {
	for _, rec := range records {
		b.Add(rec)
	}
}

// Add emits the triples for one survey row.
func (b *InstanceBuilder) Add(rec dataset.Record) {
	user := iri(mh.EntityIRI(mh.SegmentUser, strconv.Itoa(rec.UserID)))
	b.emit(user, mh.RDFType, iri(mh.ClassPerson))
	b.emit(user, mh.PropHasAge, intLit(rec.Age))

	b.emit(user, mh.PropHasGender, b.dimension(b.gender, rec.Gender))
	b.emit(user, mh.PropHasOccupation, b.dimension(b.occupation, rec.Occupation))
	b.emit(user, mh.PropHasCountry, b.countryEntity(rec.Country))

	// MentalHealth is per-row, never deduplicated.
	b.mentalHealthCount++
	mental := iri(mh.EntityIRI(mh.SegmentMentalHealth, strconv.Itoa(b.mentalHealthCount)))
	b.emit(mental, mh.RDFType, iri(mh.ClassMentalHealth))
	b.emit(mental, mh.RDFSLabel, stringLit(rec.Condition))
	b.emit(user, mh.PropHasMentalHealth, mental)
	b.emit(mental, mh.PropHasSeverity, b.dimension(b.severity, rec.Severity))
	b.emit(mental, mh.PropHasConsultationHistory, b.dimension(b.consultation, rec.Consultation))
	b.emit(mental, mh.PropHasStressLevel, b.dimension(b.stress, rec.StressLevel))
	b.emit(mental, mh.PropHasMedicationUsage, b.dimension(b.medication, rec.Medication))

	// Lifestyle is per-row as well.
	b.lifestyleCount++
	lifestyle := iri(mh.EntityIRI(mh.SegmentLifestyle, strconv.Itoa(b.lifestyleCount)))
	b.emit(lifestyle, mh.RDFType, iri(mh.ClassLifestyle))
	b.emit(user, mh.PropHasLifestyle, lifestyle)
	b.emit(lifestyle, mh.PropHasDietQuality, b.dimension(b.diet, rec.DietQuality))
	b.emit(lifestyle, mh.PropHasSmokingHabit, b.dimension(b.smoking, rec.SmokingHabit))
	b.emit(lifestyle, mh.PropHasAlcoholConsumption, b.dimension(b.alcohol, rec.AlcoholConsumption))

	// Measurement carries the numeric facts, keyed by the row identifier.
	measurement := iri(mh.EntityIRI(mh.SegmentMeasurement, strconv.Itoa(rec.UserID)))
	b.emit(measurement, mh.RDFType, iri(mh.ClassMeasurement))
	b.emit(measurement, mh.PropHasSleepHours, floatLit(rec.SleepHours))
	b.emit(measurement, mh.PropHasWorkHours, intLit(rec.WorkHours))
	b.emit(measurement, mh.PropHasPhysicalActivityHours, intLit(rec.PhysicalActivityHours))
	b.emit(measurement, mh.PropHasSocialMediaUsage, floatLit(rec.SocialMediaUsage))
	b.emit(user, mh.PropHasMeasurement, measurement)
}

// Triples returns the accumulated instance graph.
func (b *InstanceBuilder) Triples() []rdf.Triple {
	return b.triples
}

// Countries exposes the country table for reporting.
func (b *InstanceBuilder) Countries() *DimensionTable {
	return b.country
}

func (b *InstanceBuilder) emit(s rdf.Subject, pred string, o rdf.Object) {
	b.triples = append(b.triples, triple(s, iri(pred), o))
}

// dimension interns the value and emits the entity's type and label triples
// on first sight. Returns the dimension entity IRI.
func (b *InstanceBuilder) dimension(t *DimensionTable, value string) rdf.IRI {
	id, created := t.Intern(value)
	entity := iri(mh.EntityIRI(t.Segment(), strconv.Itoa(id)))
	if created {
		b.emit(entity, mh.RDFType, iri(t.class))
		b.emit(entity, mh.SKOSPrefLabel, stringLit(value))
	}
	return entity
}

// countryEntity is the country dimension with the extra Wikidata
// cross-reference on first sight.
func (b *InstanceBuilder) countryEntity(value string) rdf.IRI {
	_, known := b.country.ID(value)
	entity := b.dimension(b.country, value)
	if !known {
		if wd, ok := mh.WikidataCountry(value); ok {
			b.emit(entity, mh.OWLSameAs, iri(wd))
		}
	}
	return entity
}
