package qs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rohanthewiz/querystr/consts"
)

// ErrMalformed indicates a non-empty query string that violates the
// key=value grammar. It is only ever returned by Parse; edits on a
// successfully parsed QueryString cannot fail.
var ErrMalformed = errors.New("malformed query string")

// QueryString is an ordered, duplicate-key-aware view of a parsed query
// string. The zero value is the empty query string.
//
// Every edit returns a new QueryString built from a fresh param slice, so a
// value can be shared or retained freely -- no operation mutates the receiver.
//
// Occurrences of a repeated key are addressed by relative index: the 0-based
// position of an occurrence counted among occurrences of that key alone,
// left to right. Given "name=john&age=30&name=smith", name has relative
// indexes 0 ("john") and 1 ("smith") regardless of where the pairs sit in
// the overall sequence. Relative indexes are recomputed on every operation
// since edits change which occurrences exist.
//
// Edits targeting a key or relative index that does not exist are no-ops
// returning the receiver unchanged. This lets callers chain edits without
// existence checks; only Parse can fail.
type QueryString struct {
	params []Param
}

// Of builds a QueryString directly from params, taking its own copy.
func Of(params []Param) QueryString {
	cp := make([]Param, len(params))
	copy(cp, params)
	return QueryString{params: cp}
}

// Parse splits raw into ordered key=value pairs. An empty string parses to
// the empty QueryString. Each non-empty segment must contain "=" with a
// non-empty key and value, otherwise ErrMalformed is returned -- there is no
// partial recovery. Values are kept as-is; no percent-decoding happens here.
func Parse(raw string) (QueryString, error) {
	if raw == "" {
		return QueryString{}, nil
	}

	segments := strings.Split(raw, consts.PairSeparator)
	params := make([]Param, 0, len(segments))

	for _, segment := range segments {
		key, value, found := strings.Cut(segment, consts.KeyValueSeparator)
		if !found {
			return QueryString{}, fmt.Errorf("%w: segment %q has no %q", ErrMalformed, segment, consts.KeyValueSeparator)
		}
		if key == "" || value == "" {
			return QueryString{}, fmt.Errorf("%w: segment %q has an empty key or value", ErrMalformed, segment)
		}
		params = append(params, Param{Key: key, Value: value})
	}

	return QueryString{params: params}, nil
}

// Len returns the number of key=value occurrences.
func (q QueryString) Len() int {
	return len(q.params)
}

// IsEmpty reports whether the query string has no pairs.
func (q QueryString) IsEmpty() bool {
	return len(q.params) == 0
}

// Params returns a copy of the ordered pairs.
func (q QueryString) Params() []Param {
	cp := make([]Param, len(q.params))
	copy(cp, q.params)
	return cp
}

// FirstValue returns the value of the first occurrence of key.
// The bool is false when the key is not present.
func (q QueryString) FirstValue(key string) (string, bool) {
	for _, p := range q.params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// AllValues returns the values of every occurrence of key in original order.
// A missing key yields an empty slice.
func (q QueryString) AllValues(key string) []string {
	var values []string
	for _, p := range q.params {
		if p.Key == key {
			values = append(values, p.Value)
		}
	}
	return values
}

// HasKey reports whether at least one occurrence of key exists.
func (q QueryString) HasKey(key string) bool {
	_, ok := q.FirstValue(key)
	return ok
}

// ReplaceFirst rewrites the value of the first occurrence of key.
func (q QueryString) ReplaceFirst(key, value string) QueryString {
	return q.ReplaceNth(map[string]map[int]string{key: {0: value}})
}

// ReplaceNth rewrites individual occurrences by relative index. The
// instructions map each key to a map of relative index to replacement value,
// e.g. {"region": {1: "Auckland", 2: "AUKL"}} rewrites the second and third
// region occurrences. Keys not present, or indexes with no occurrence, are
// silently skipped.
func (q QueryString) ReplaceNth(instructions map[string]map[int]string) QueryString {
	params := q.Params()
	seen := map[string]int{}

	for i, p := range params {
		relIdx := seen[p.Key]
		seen[p.Key] = relIdx + 1

		byIndex, ok := instructions[p.Key]
		if !ok {
			continue
		}
		if value, ok := byIndex[relIdx]; ok {
			params[i].Value = value
		}
	}
	return QueryString{params: params}
}

// ReplaceN rewrites the occurrences of key at relative indexes
// 0..len(values)-1 with the corresponding entries. Excess replacement values
// are ignored; excess occurrences keep their current value.
func (q QueryString) ReplaceN(key string, values []string) QueryString {
	byIndex := make(map[int]string, len(values))
	for i, v := range values {
		byIndex[i] = v
	}
	return q.ReplaceNth(map[string]map[int]string{key: byIndex})
}

// RemoveFirst deletes the first occurrence of key.
func (q QueryString) RemoveFirst(key string) QueryString {
	return q.RemoveNth(key, 0)
}

// RemoveAll deletes every occurrence of every listed key.
func (q QueryString) RemoveAll(keys []string) QueryString {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[k] = true
	}

	params := make([]Param, 0, len(q.params))
	for _, p := range q.params {
		if !drop[p.Key] {
			params = append(params, p)
		}
	}
	return QueryString{params: params}
}

// RemoveN deletes the first n occurrences of key, same as dropN in
// functional languages. n <= 0 is a no-op; n beyond the occurrence count
// deletes every occurrence of the key.
func (q QueryString) RemoveN(key string, n int) QueryString {
	if n <= 0 {
		return q
	}
	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}
	return q.RemoveManyNth(key, indexes)
}

// RemoveNth deletes the occurrence of key at the given relative index.
func (q QueryString) RemoveNth(key string, relativeIndex int) QueryString {
	return q.RemoveManyNth(key, []int{relativeIndex})
}

// RemoveManyNth deletes every occurrence of key whose relative index appears
// in relativeIndexes. Indexes with no occurrence are ignored.
func (q QueryString) RemoveManyNth(key string, relativeIndexes []int) QueryString {
	drop := make(map[int]bool, len(relativeIndexes))
	for _, idx := range relativeIndexes {
		drop[idx] = true
	}

	params := make([]Param, 0, len(q.params))
	relIdx := 0
	for _, p := range q.params {
		if p.Key == key {
			dropThis := drop[relIdx]
			relIdx++
			if dropThis {
				continue
			}
		}
		params = append(params, p)
	}
	return QueryString{params: params}
}

// RemoveKeyMatchingValue deletes every occurrence of key whose value is
// exactly valueMatch. The comparison is case sensitive.
func (q QueryString) RemoveKeyMatchingValue(key, valueMatch string) QueryString {
	return q.removeMatching(func(p Param) bool {
		return p.Key == key && p.Value == valueMatch
	})
}

// RemoveAnyKeyMatchingValue deletes every occurrence, regardless of key,
// whose value is exactly valueMatch. The comparison is case sensitive.
func (q QueryString) RemoveAnyKeyMatchingValue(valueMatch string) QueryString {
	return q.removeMatching(func(p Param) bool {
		return p.Value == valueMatch
	})
}

func (q QueryString) removeMatching(match func(Param) bool) QueryString {
	params := make([]Param, 0, len(q.params))
	for _, p := range q.params {
		if !match(p) {
			params = append(params, p)
		}
	}
	return QueryString{params: params}
}

// Add appends key=value at the end unless that exact key and value pair
// already exists anywhere in the sequence, in which case the query string is
// returned unchanged.
func (q QueryString) Add(key, value string) QueryString {
	for _, p := range q.params {
		if p.Key == key && p.Value == value {
			return q
		}
	}
	params := q.Params()
	params = append(params, Param{Key: key, Value: value})
	return QueryString{params: params}
}

// AddAll applies Add for each pair in order. Duplicate suppression is
// evaluated against the model as it stands after earlier pairs in the same
// call, so repeated pairs within the input also collapse to one.
func (q QueryString) AddAll(pairs []Param) QueryString {
	next := q
	for _, p := range pairs {
		next = next.Add(p.Key, p.Value)
	}
	return next
}

// AdjustNumericValueBy adds delta to the occurrences of key at the given
// relative indexes. An occurrence is only updated when its current value
// parses as an integer and predicate (when non-nil) accepts that integer.
// Non-numeric or rejected occurrences are left untouched.
func (q QueryString) AdjustNumericValueBy(key string, relativeIndexes []int, delta int, predicate func(current int) bool) QueryString {
	adjust := make(map[int]bool, len(relativeIndexes))
	for _, idx := range relativeIndexes {
		adjust[idx] = true
	}

	params := q.Params()
	relIdx := 0
	for i, p := range params {
		if p.Key != key {
			continue
		}
		target := adjust[relIdx]
		relIdx++
		if !target {
			continue
		}

		current, err := strconv.Atoi(p.Value)
		if err != nil {
			continue
		}
		if predicate != nil && !predicate(current) {
			continue
		}
		params[i].Value = strconv.Itoa(current + delta)
	}
	return QueryString{params: params}
}

// Serialize joins all pairs as key=value with "&", passing each value
// through the escaper. The empty query string serializes to "".
func (q QueryString) Serialize(escaper Escaper) string {
	if len(q.params) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, p := range q.params {
		if i > 0 {
			sb.WriteString(consts.PairSeparator)
		}
		sb.WriteString(p.Key)
		sb.WriteString(consts.KeyValueSeparator)
		sb.WriteString(escaper.Escape(p.Value))
	}
	return sb.String()
}
