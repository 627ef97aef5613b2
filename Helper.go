// Package querystr derives new URL query strings from a current one while
// preserving original key order and duplicate-key multiplicity. It exists for
// template call sites that build pagination and column-sort links from the
// incoming request's query string without re-implementing parsing, ordering,
// or escaping.
package querystr

import (
	"github.com/rohanthewiz/querystr/core/qs"
	"github.com/rohanthewiz/serr"
)

// Helper is the operation API over raw query strings. Every operation
// parses its input fresh, applies edits to the in-memory model, and
// serializes the result through the configured Escaper -- no state is held
// between calls, so a single Helper is safe for concurrent use.
type Helper struct {
	escaper qs.Escaper
}

// Options holds optional Helper configuration.
type Options struct {
	// Escaper percent-encodes each value during serialization.
	// Defaults to qs.QueryEscaper.
	Escaper qs.Escaper
}

// New creates a Helper. Options may be omitted for defaults.
func New(options ...Options) *Helper {
	h := &Helper{escaper: qs.QueryEscaper{}}
	if len(options) > 0 && options[0].Escaper != nil {
		h.escaper = options[0].Escaper
	}
	return h
}

// transform runs one parse-edit-serialize cycle.
func (h *Helper) transform(queryString string, edit func(qs.QueryString) qs.QueryString) (string, error) {
	model, err := qs.Parse(queryString)
	if err != nil {
		return "", serr.Wrap(err, "failed to parse query string")
	}
	return edit(model).Serialize(h.escaper), nil
}

// FirstValue returns the value of the first occurrence of key.
// ok is false when the key is not present.
func (h *Helper) FirstValue(queryString, key string) (value string, ok bool, err error) {
	model, err := qs.Parse(queryString)
	if err != nil {
		return "", false, serr.Wrap(err, "failed to parse query string")
	}
	value, ok = model.FirstValue(key)
	return value, ok, nil
}

// AllValues returns the values of every occurrence of key in original order.
func (h *Helper) AllValues(queryString, key string) ([]string, error) {
	model, err := qs.Parse(queryString)
	if err != nil {
		return nil, serr.Wrap(err, "failed to parse query string")
	}
	return model.AllValues(key), nil
}

// IsKeyPresent reports whether key occurs at least once.
func (h *Helper) IsKeyPresent(queryString, key string) (bool, error) {
	model, err := qs.Parse(queryString)
	if err != nil {
		return false, serr.Wrap(err, "failed to parse query string")
	}
	return model.HasKey(key), nil
}

// ReplaceFirst rewrites the value of the first occurrence of key.
//
//	"suburb=west&region=AU", "region", "Australia" -> "suburb=west&region=Australia"
func (h *Helper) ReplaceFirst(queryString, key, value string) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		return m.ReplaceFirst(key, value)
	})
}

// ReplaceNth rewrites individual occurrences by relative index.
// The instructions map each key to a map of relative index to new value:
//
//	"region=AU&suburb=west&region=Australia", {"region": {1: "Auckland"}}
//	-> "region=AU&suburb=west&region=Auckland"
func (h *Helper) ReplaceNth(queryString string, instructions map[string]map[int]string) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		return m.ReplaceNth(instructions)
	})
}

// ReplaceN rewrites the first len(values) occurrences of key with the
// corresponding values, leaving any further occurrences alone.
func (h *Helper) ReplaceN(queryString, key string, values []string) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		return m.ReplaceN(key, values)
	})
}

// RemoveFirst deletes the first occurrence of key.
func (h *Helper) RemoveFirst(queryString, key string) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		return m.RemoveFirst(key)
	})
}

// RemoveAll deletes every occurrence of every listed key.
//
//	"region=AU&suburb=west&postcode=494849", ["region", "postcode"] -> "suburb=west"
func (h *Helper) RemoveAll(queryString string, keys []string) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		return m.RemoveAll(keys)
	})
}

// RemoveN deletes the first n occurrences of key.
func (h *Helper) RemoveN(queryString, key string, n int) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		return m.RemoveN(key, n)
	})
}

// RemoveNth deletes the occurrence of key at the given relative index.
func (h *Helper) RemoveNth(queryString, key string, relativeIndex int) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		return m.RemoveNth(key, relativeIndex)
	})
}

// RemoveManyNth deletes the occurrences of key at the given relative indexes.
func (h *Helper) RemoveManyNth(queryString, key string, relativeIndexes []int) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		return m.RemoveManyNth(key, relativeIndexes)
	})
}

// RemoveKeyMatchingValue deletes every occurrence of key whose value is
// exactly valueMatch (case sensitive).
func (h *Helper) RemoveKeyMatchingValue(queryString, key, valueMatch string) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		return m.RemoveKeyMatchingValue(key, valueMatch)
	})
}

// RemoveAnyKeyMatchingValue deletes every occurrence, regardless of key,
// whose value is exactly valueMatch (case sensitive).
func (h *Helper) RemoveAnyKeyMatchingValue(queryString, valueMatch string) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		return m.RemoveAnyKeyMatchingValue(valueMatch)
	})
}

// Add appends key=value at the end unless that exact pair already exists.
// An empty queryString yields just the new pair.
func (h *Helper) Add(queryString, key, value string) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		return m.Add(key, value)
	})
}

// AddAll appends each pair in order, applying the same exact-duplicate
// suppression as Add against the query string as it grows.
func (h *Helper) AddAll(queryString string, pairs []qs.Param) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		return m.AddAll(pairs)
	})
}

// RemoveAllAndAdd removes every occurrence of the listed keys, then appends
// the new pairs. Useful when the exact shape of the query string is unknown
// and a replace would be fiddly:
//
//	"sort=country,asc&sort=city,desc&location=AU", ["sort"], [{"sort", "city,desc"}]
//	-> "location=AU&sort=city,desc"
func (h *Helper) RemoveAllAndAdd(queryString string, removeKeys []string, addPairs []qs.Param) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		return m.RemoveAll(removeKeys).AddAll(addPairs)
	})
}

// RemoveNthAndAdd applies RemoveManyNth for every key in removeInstructions,
// then appends the new pairs. All removals compose against one in-memory
// model, so earlier removals never disturb the relative indexes consumed by
// later keys. An empty queryString returns "".
func (h *Helper) RemoveNthAndAdd(queryString string, removeInstructions map[string][]int, addPairs []qs.Param) (string, error) {
	if queryString == "" {
		return "", nil
	}
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		for key, indexes := range removeInstructions {
			m = m.RemoveManyNth(key, indexes)
		}
		return m.AddAll(addPairs)
	})
}

// AdjustNumericValueBy adds delta to the values of key at the given relative
// indexes. Only occurrences whose value parses as an integer are changed.
//
//	"policy=10&policy=20&policy=30", [1, 2], 5 -> "policy=10&policy=25&policy=35"
func (h *Helper) AdjustNumericValueBy(queryString, key string, relativeIndexes []int, delta int) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		return m.AdjustNumericValueBy(key, relativeIndexes, delta, nil)
	})
}

// AdjustFirstNumericValueBy adds delta to the value of the first occurrence
// of key, provided it is numeric.
func (h *Helper) AdjustFirstNumericValueBy(queryString, key string, delta int) (string, error) {
	return h.AdjustNumericValueBy(queryString, key, []int{0}, delta)
}
