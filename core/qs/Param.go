package qs

// Param represents a single key=value occurrence within a query string.
// A key may appear multiple times; each appearance is a distinct Param
// holding its own slot in the parsed sequence.
//
// Example:
//   Query:  name=john&age=30&name=smith
//   Result: []Param{{"name", "john"}, {"age", "30"}, {"name", "smith"}}
//
// Design notes:
// - Simple struct avoids allocation overhead compared to map[string][]string
// - Ordered slice preserves the exact sequence from the source string, which
//   url.Values cannot do
type Param struct {
	Key   string
	Value string
}
