package graph

import (
	"fmt"
	"io"
	"os"

	"github.com/knakk/rdf"
)

// WriteTurtle serializes triples as Turtle.
func WriteTurtle(w io.Writer, triples []rdf.Triple) error {
	enc := rdf.NewTripleEncoder(w, rdf.Turtle)
	for _, t := range triples {
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encode triple: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}
	return nil
}

// WriteTurtleFile serializes triples as Turtle to a file.
func WriteTurtleFile(path string, triples []rdf.Triple) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteTurtle(f, triples); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// ReadTurtle decodes every triple from Turtle content.
func ReadTurtle(r io.Reader) ([]rdf.Triple, error) {
	dec := rdf.NewTripleDecoder(r, rdf.Turtle)
	var triples []rdf.Triple
	for {
		t, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode triple: %w", err)
		}
		triples = append(triples, t)
	}
	return triples, nil
}

// ReadTurtleFile decodes every triple from a Turtle file.
func ReadTurtleFile(path string) ([]rdf.Triple, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	triples, err := ReadTurtle(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return triples, nil
}
