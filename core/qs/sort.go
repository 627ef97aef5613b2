package qs

import (
	"errors"
	"strings"

	"github.com/rohanthewiz/querystr/consts"
)

// ErrNoDirection is returned when a caller tries to set a sort direction
// using the DirNone sentinel. Only Asc and Desc may be set explicitly.
var ErrNoDirection = errors.New("sort direction must be asc or desc")

// Direction is a sort direction as encoded in a sort key's value,
// e.g. "sort=country,asc".
type Direction string

const (
	// Asc sorts ascending
	Asc Direction = consts.DirAsc

	// Desc sorts descending
	Desc Direction = consts.DirDesc

	// DirNone marks the absence of a direction: either a sort value with no
	// ",direction" suffix (an implicit direction, resolved against a default
	// supplied by the caller) or a sort field that was not found at all
	DirNone Direction = ""
)

// Opposite returns the toggled direction. DirNone has no opposite and is
// returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case Asc:
		return Desc
	case Desc:
		return Asc
	}
	return d
}

// SplitSortValue decodes a sort key's value of form "field" or
// "field,direction". A value with no comma yields DirNone (an implicit
// direction). A direction outside asc/desc is preserved as an opaque
// Direction that matches neither Asc nor Desc -- never an error.
func SplitSortValue(value string) (field string, dir Direction) {
	field, rest, found := strings.Cut(value, consts.SortValueSeparator)
	if !found {
		return field, DirNone
	}
	return field, Direction(rest)
}

// JoinSortValue encodes field and direction back into sort-value form.
func JoinSortValue(field string, dir Direction) string {
	return field + consts.SortValueSeparator + string(dir)
}

// CurrentSortDirection scans the sort occurrences for the first whose
// decoded field matches, returning its direction. An implicit direction on
// the matching occurrence resolves to def. DirNone is returned when no sort
// occurrence names the field.
func (q QueryString) CurrentSortDirection(field string, def Direction) Direction {
	for _, value := range q.AllValues(consts.KeySort) {
		f, dir := SplitSortValue(value)
		if f != field {
			continue
		}
		if dir == DirNone {
			return def
		}
		return dir
	}
	return DirNone
}

// IsFieldSorted reports whether some sort occurrence decodes to field.
func (q QueryString) IsFieldSorted(field string) bool {
	for _, value := range q.AllValues(consts.KeySort) {
		if f, _ := SplitSortValue(value); f == field {
			return true
		}
	}
	return false
}

// SetSortDirection rewrites the first sort occurrence whose decoded field
// matches to "field,dir". No-op if the field is not sorted. Returns
// ErrNoDirection if dir is the DirNone sentinel.
func (q QueryString) SetSortDirection(field string, dir Direction) (QueryString, error) {
	if dir == DirNone {
		return q, ErrNoDirection
	}

	relIdx := 0
	for _, value := range q.AllValues(consts.KeySort) {
		if f, _ := SplitSortValue(value); f == field {
			instr := map[string]map[int]string{
				consts.KeySort: {relIdx: JoinSortValue(field, dir)},
			}
			return q.ReplaceNth(instr), nil
		}
		relIdx++
	}
	return q, nil
}

// ToggleSortDirection resolves the current direction of field (an implicit
// direction resolves to def) and rewrites the occurrence to the opposite.
// No-op if the field is not sorted.
func (q QueryString) ToggleSortDirection(field string, def Direction) QueryString {
	current := q.CurrentSortDirection(field, def)
	if current == DirNone {
		return q
	}
	next, _ := q.SetSortDirection(field, current.Opposite())
	return next
}

// KeepSortField deletes every sort occurrence whose decoded field is not
// field. When no occurrence matches, all sort occurrences are removed.
func (q QueryString) KeepSortField(field string) QueryString {
	return q.removeMatching(func(p Param) bool {
		if p.Key != consts.KeySort {
			return false
		}
		f, _ := SplitSortValue(p.Value)
		return f != field
	})
}
