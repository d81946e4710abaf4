package benchmark

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindcube/mindcube/dataset"
	"github.com/mindcube/mindcube/graph"
)

func TestRunner_FullAndScaled(t *testing.T) {
	b := graph.NewInstanceBuilder()
	b.AddAll([]dataset.Record{
		surveyRecord(1, "Australia", "Medium", "Low", "Female", 7.0, 40, 30),
		surveyRecord(2, "USA", "Low", "High", "Male", 8.0, 50, 25),
	})
	g, err := NewGraph(b.Triples())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	runner := NewRunner([]int{1}, logger)

	report, err := runner.Run(context.Background(), g)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	require.Len(t, report.Full, 4)
	for _, res := range report.Full {
		assert.NoError(t, res.Err, res.Query)
	}

	require.Len(t, report.Scaled, 1)
	assert.Equal(t, 1, report.Scaled[0].Size)
	require.Len(t, report.Scaled[0].Results, 4)
	for _, res := range report.Scaled[0].Results {
		assert.NoError(t, res.Err, res.Query)
	}
}

func TestReport_Write(t *testing.T) {
	report := &Report{
		RunID: "test-run",
		Full: []Result{
			{Query: "roll_up_sleep_by_country", Duration: 1234567, Rows: 2},
		},
		Scaled: []SizedResults{
			{Size: 10, Results: []Result{
				{Query: "roll_up_sleep_by_country", Duration: 7654, Rows: 1},
			}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf))

	out := buf.String()
	assert.Contains(t, out, "Benchmarks for full dataset (run test-run):")
	assert.Contains(t, out, "roll_up_sleep_by_country: 0.0012 seconds, 2 rows")
	assert.Contains(t, out, "Dataset size: 10 records")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir() + "/missing.ttl")
	assert.Error(t, err)
}

func TestLoad_RoundTripFiles(t *testing.T) {
	dir := t.TempDir()
	tbox := dir + "/tbox.ttl"
	abox := dir + "/abox.ttl"

	b := graph.NewInstanceBuilder()
	b.Add(surveyRecord(1, "India", "Low", "Low", "Male", 6.5, 42, 28))

	require.NoError(t, graph.WriteTurtleFile(tbox, graph.Schema()))
	require.NoError(t, graph.WriteTurtleFile(abox, b.Triples()))

	g, err := Load(tbox, abox)
	require.NoError(t, err)
	assert.Equal(t, len(graph.Schema())+len(b.Triples()), len(g.Triples))
}
