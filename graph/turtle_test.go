package graph

import (
	"bytes"
	"sort"
	"testing"

	"github.com/knakk/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindcube/mindcube/dataset"
)

func serialized(triples []rdf.Triple) []string {
	out := make([]string, 0, len(triples))
	for _, t := range triples {
		out = append(out, t.Serialize(rdf.NTriples))
	}
	sort.Strings(out)
	return out
}

func TestTurtleRoundTrip_InstanceGraph(t *testing.T) {
	b := NewInstanceBuilder()
	b.AddAll([]dataset.Record{
		testRecord(1, "Australia"),
		testRecord(2, "USA"),
		testRecord(3, "Other"),
	})
	original := b.Triples()

	var buf bytes.Buffer
	require.NoError(t, WriteTurtle(&buf, original))

	parsed, err := ReadTurtle(&buf)
	require.NoError(t, err)

	// The instance graph has no blank nodes, so the round trip must
	// reproduce the exact triple set.
	assert.Equal(t, serialized(original), serialized(parsed))
}

func TestTurtleRoundTrip_SchemaGraph(t *testing.T) {
	original := Schema()

	var buf bytes.Buffer
	require.NoError(t, WriteTurtle(&buf, original))

	parsed, err := ReadTurtle(&buf)
	require.NoError(t, err)

	assert.Equal(t, serialized(original), serialized(parsed))
}

func TestWriteTurtleFile_AndReadBack(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/abox.ttl"

	b := NewInstanceBuilder()
	b.Add(testRecord(1, "India"))

	require.NoError(t, WriteTurtleFile(path, b.Triples()))

	parsed, err := ReadTurtleFile(path)
	require.NoError(t, err)
	assert.Equal(t, serialized(b.Triples()), serialized(parsed))
}

func TestReadTurtleFile_Missing(t *testing.T) {
	_, err := ReadTurtleFile(t.TempDir() + "/nope.ttl")
	assert.Error(t, err)
}
