// Package dataset loads the mental health survey CSV into typed records.
// Numeric columns are coerced at read time; any malformed cell or missing
// column aborts the whole load so no partial graph is ever generated from
// bad input.
package dataset
