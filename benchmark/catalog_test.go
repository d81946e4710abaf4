package benchmark

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindcube/mindcube/dataset"
	"github.com/mindcube/mindcube/graph"
	"github.com/mindcube/mindcube/vocabulary/mh"
)

// scenarioGraph loads three survey rows covering every query in the catalog:
// two Australians (one with high stress, one with medium severity) and one
// American.
func scenarioGraph(t *testing.T) *Graph {
	t.Helper()

	b := graph.NewInstanceBuilder()
	b.AddAll([]dataset.Record{
		surveyRecord(1, "Australia", "Medium", "Low", "Female", 7.0, 40, 30),
		surveyRecord(2, "Australia", "Low", "High", "Male", 8.0, 50, 25),
		surveyRecord(3, "USA", "Low", "Low", "Female", 6.0, 30, 35),
	})

	g, err := NewGraph(b.Triples())
	require.NoError(t, err)
	return g
}

func evalQuery(t *testing.T, g *Graph, name string) []Row {
	t.Helper()

	for _, q := range Catalog() {
		if q.Name == name {
			rows, err := q.Eval(context.Background(), g.Store)
			require.NoError(t, err)
			return rows
		}
	}
	t.Fatalf("query %s not in catalog", name)
	return nil
}

func TestCatalog_Names(t *testing.T) {
	queries := Catalog()
	require.Len(t, queries, 4)

	names := make([]string, 0, len(queries))
	for _, q := range queries {
		names = append(names, q.Name)
	}
	assert.Equal(t, []string{
		"roll_up_sleep_by_country",
		"drill_down_work_by_country_gender",
		"slice_high_stress",
		"dice_medium_severity_australia",
	}, names)
}

func TestRollUpSleepByCountry(t *testing.T) {
	g := scenarioGraph(t)

	rows := evalQuery(t, g, "roll_up_sleep_by_country")
	assert.Equal(t, []Row{
		{"Australia", "7.50"},
		{"USA", "6.00"},
	}, rows)
}

func TestDrillDownWorkByCountryGender(t *testing.T) {
	g := scenarioGraph(t)

	rows := evalQuery(t, g, "drill_down_work_by_country_gender")
	assert.Equal(t, []Row{
		{"Australia", "Female", "40.00"},
		{"Australia", "Male", "50.00"},
		{"USA", "Female", "30.00"},
	}, rows)
}

func TestSliceHighStress(t *testing.T) {
	g := scenarioGraph(t)

	rows := evalQuery(t, g, "slice_high_stress")
	require.Len(t, rows, 1)
	assert.Equal(t, Row{mh.EntityIRI(mh.SegmentUser, "2"), "Australia", "8"}, rows[0])
}

func TestDiceMediumSeverityAustralia(t *testing.T) {
	g := scenarioGraph(t)

	rows := evalQuery(t, g, "dice_medium_severity_australia")
	require.Len(t, rows, 1)
	assert.Equal(t, Row{mh.EntityIRI(mh.SegmentUser, "1"), "30", "40"}, rows[0])
}

func TestCatalog_EmptyGraph(t *testing.T) {
	g, err := NewGraph(nil)
	require.NoError(t, err)

	for _, name := range []string{
		"roll_up_sleep_by_country",
		"drill_down_work_by_country_gender",
		"slice_high_stress",
		"dice_medium_severity_australia",
	} {
		assert.Empty(t, evalQuery(t, g, name), name)
	}
}
