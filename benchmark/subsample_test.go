package benchmark

import (
	"strconv"
	"strings"
	"testing"

	"github.com/knakk/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindcube/mindcube/dataset"
	"github.com/mindcube/mindcube/graph"
	"github.com/mindcube/mindcube/vocabulary/mh"
)

func surveyRecord(userID int, country, severity, stress, gender string, sleep float64, work, age int) dataset.Record {
	return dataset.Record{
		UserID:                userID,
		Age:                   age,
		Gender:                gender,
		Occupation:            "IT",
		Country:               country,
		Condition:             "Yes",
		Severity:              severity,
		Consultation:          "No",
		StressLevel:           stress,
		Medication:            "No",
		DietQuality:           "Average",
		SmokingHabit:          "Non-Smoker",
		AlcoholConsumption:    "Non-Drinker",
		SleepHours:            sleep,
		WorkHours:             work,
		PhysicalActivityHours: 3,
		SocialMediaUsage:      2.0,
	}
}

func subjects(triples []rdf.Triple) map[string]bool {
	out := make(map[string]bool)
	for _, t := range triples {
		out[t.Subj.String()] = true
	}
	return out
}

func TestSubsample_UserThreshold(t *testing.T) {
	b := graph.NewInstanceBuilder()
	b.AddAll([]dataset.Record{
		surveyRecord(1, "Australia", "Medium", "Low", "Female", 7.0, 40, 30),
		surveyRecord(2, "Australia", "Low", "High", "Male", 8.0, 50, 25),
		surveyRecord(3, "USA", "Low", "Low", "Female", 6.0, 30, 35),
	})

	sub := Subsample(b.Triples(), 2)
	subj := subjects(sub)

	assert.True(t, subj[mh.EntityIRI(mh.SegmentUser, "1")])
	assert.True(t, subj[mh.EntityIRI(mh.SegmentUser, "2")])
	assert.False(t, subj[mh.EntityIRI(mh.SegmentUser, "3")])
}

func TestSubsample_KeepsAllDimensionEntities(t *testing.T) {
	b := graph.NewInstanceBuilder()
	b.AddAll([]dataset.Record{
		surveyRecord(1, "Australia", "Medium", "Low", "Female", 7.0, 40, 30),
		surveyRecord(50, "USA", "High", "High", "Male", 6.0, 45, 40),
	})

	// The cutoff excludes user 50, but USA stays: dimension entities are
	// shared reference data.
	sub := Subsample(b.Triples(), 1)
	subj := subjects(sub)

	usaID, ok := b.Countries().ID("USA")
	require.True(t, ok)
	assert.True(t, subj[mh.EntityIRI(mh.SegmentCountry, "1")])
	assert.True(t, subj[mh.EntityIRI(mh.SegmentCountry, strconv.Itoa(usaID))])
	assert.True(t, subj[mh.EntityIRI(mh.SegmentGender, "1")])
	assert.True(t, subj[mh.EntityIRI(mh.SegmentSeverity, "1")])
}

func TestSubsample_DropsPerRowFacts(t *testing.T) {
	b := graph.NewInstanceBuilder()
	b.Add(surveyRecord(1, "Canada", "Low", "Low", "Female", 7.0, 40, 30))

	sub := Subsample(b.Triples(), 10)
	for subj := range subjects(sub) {
		for _, seg := range []string{mh.SegmentMeasurement, mh.SegmentMentalHealth, mh.SegmentLifestyle} {
			assert.False(t, strings.HasPrefix(subj, mh.Namespace+seg+"/"),
				"per-row fact subject %s survived the subsample", subj)
		}
	}
}

func TestSubsample_IgnoresSchemaTriples(t *testing.T) {
	sub := Subsample(graph.Schema(), 1000)
	assert.Empty(t, sub)
}
