// Package benchmark loads the generated Turtle files into an in-memory quad
// store and times a fixed catalog of OLAP-style queries against the full
// graph and size-limited subsamples. Each measurement is a single timed
// execution; there are no warm-ups, retries or averages.
package benchmark
