package querystr

import (
	"github.com/rohanthewiz/querystr/consts"
	"github.com/rohanthewiz/querystr/core/qs"
	"github.com/rohanthewiz/serr"
)

// Sort operations follow the "sort" key convention: each sort occurrence
// carries a value of form "field" or "field,direction" with direction asc or
// desc. A value with no direction is implicit -- its effective direction is
// whatever default the repository applies, so operations that need to
// resolve it take the default from the method name (Asc/Desc variants).

// SetSortDirection rewrites the first sort occurrence for field to
// "field,direction". No-op when the field is not sorted. Passing qs.DirNone
// is a contract violation and returns an error.
func (h *Helper) SetSortDirection(queryString, field string, direction qs.Direction) (string, error) {
	model, err := qs.Parse(queryString)
	if err != nil {
		return "", serr.Wrap(err, "failed to parse query string")
	}
	next, err := model.SetSortDirection(field, direction)
	if err != nil {
		return "", serr.Wrap(err, "failed to set sort direction")
	}
	return next.Serialize(h.escaper), nil
}

// SetSortDirectionAsc sets the sort direction for field to asc.
//
//	"city=dallas&sort=country&page=1", "country" -> "city=dallas&sort=country,asc&page=1"
func (h *Helper) SetSortDirectionAsc(queryString, field string) (string, error) {
	return h.SetSortDirection(queryString, field, qs.Asc)
}

// SetSortDirectionDesc sets the sort direction for field to desc.
func (h *Helper) SetSortDirectionDesc(queryString, field string) (string, error) {
	return h.SetSortDirection(queryString, field, qs.Desc)
}

// ToggleSortDefaultAsc flips the sort direction for field, treating an
// implicit direction as asc. So "sort=country" toggles to "sort=country,desc"
// while "sort=country,desc" toggles to "sort=country,asc".
func (h *Helper) ToggleSortDefaultAsc(queryString, field string) (string, error) {
	return h.toggleSortDefault(queryString, field, qs.Asc)
}

// ToggleSortDefaultDesc flips the sort direction for field, treating an
// implicit direction as desc.
func (h *Helper) ToggleSortDefaultDesc(queryString, field string) (string, error) {
	return h.toggleSortDefault(queryString, field, qs.Desc)
}

func (h *Helper) toggleSortDefault(queryString, field string, def qs.Direction) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		return m.ToggleSortDirection(field, def)
	})
}

// CurrentSortDirectionAsc returns the sort direction of field, resolving an
// implicit direction to asc. qs.DirNone means the field is not sorted.
func (h *Helper) CurrentSortDirectionAsc(queryString, field string) (qs.Direction, error) {
	return h.currentSortDirection(queryString, field, qs.Asc)
}

// CurrentSortDirectionDesc returns the sort direction of field, resolving an
// implicit direction to desc. qs.DirNone means the field is not sorted.
func (h *Helper) CurrentSortDirectionDesc(queryString, field string) (qs.Direction, error) {
	return h.currentSortDirection(queryString, field, qs.Desc)
}

func (h *Helper) currentSortDirection(queryString, field string, def qs.Direction) (qs.Direction, error) {
	model, err := qs.Parse(queryString)
	if err != nil {
		return qs.DirNone, serr.Wrap(err, "failed to parse query string")
	}
	return model.CurrentSortDirection(field, def), nil
}

// IsFieldSorted reports whether field appears under a sort key.
func (h *Helper) IsFieldSorted(queryString, field string) (bool, error) {
	model, err := qs.Parse(queryString)
	if err != nil {
		return false, serr.Wrap(err, "failed to parse query string")
	}
	return model.IsFieldSorted(field), nil
}

// KeepSortField removes every sort occurrence except those for field. When
// field is not sorted at all, every sort occurrence is removed.
//
//	"city=melbourne&sort=country,asc&sort=city,desc", "city" -> "city=melbourne&sort=city,desc"
func (h *Helper) KeepSortField(queryString, field string) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		return m.KeepSortField(field)
	})
}

// FieldSorterAsc produces the query string for a column-header sort link
// with a default direction of asc. Aimed at sortable table columns:
// clicking an unsorted column sorts it by the default direction, clicking a
// sorted column toggles it, and any other sorted field is dropped.
//
//	""                                     -> "sort=country,asc" (field "country")
//	"city=melbourne&sort=country,asc"      -> "city=melbourne&sort=country,desc"
//	"city=melbourne&sort=country,asc&sort=city" (field "location")
//	                                       -> "city=melbourne&sort=location,asc"
func (h *Helper) FieldSorterAsc(queryString, field string) (string, error) {
	return h.fieldSorter(queryString, field, qs.Asc)
}

// FieldSorterDesc behaves like FieldSorterAsc with a default direction of desc.
func (h *Helper) FieldSorterDesc(queryString, field string) (string, error) {
	return h.fieldSorter(queryString, field, qs.Desc)
}

func (h *Helper) fieldSorter(queryString, field string, def qs.Direction) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		newSort := qs.Param{Key: consts.KeySort, Value: qs.JoinSortValue(field, def)}
		if m.IsEmpty() {
			return m.Add(newSort.Key, newSort.Value)
		}

		m = m.KeepSortField(field)
		if m.IsFieldSorted(field) {
			return m.ToggleSortDirection(field, def)
		}
		// field was never sorted: drop whatever sorting is left and start fresh
		return m.RemoveAll([]string{consts.KeySort}).AddAll([]qs.Param{newSort})
	})
}

// ValueWhenMatchesSortAsc returns one of three values depending on the sort
// state of field: missing when the field is not sorted, matching when its
// direction resolves to asc (implicit directions resolve to asc here), and
// nonMatching otherwise. Useful for conditional css classes or tooltips on
// sortable column headers.
func (h *Helper) ValueWhenMatchesSortAsc(queryString, missing, matching, nonMatching, field string) (string, error) {
	return h.valueWhenMatchesSort(queryString, missing, matching, nonMatching, field, qs.Asc)
}

// ValueWhenMatchesSortDesc behaves like ValueWhenMatchesSortAsc with the
// match (and implicit-direction resolution) against desc.
func (h *Helper) ValueWhenMatchesSortDesc(queryString, missing, matching, nonMatching, field string) (string, error) {
	return h.valueWhenMatchesSort(queryString, missing, matching, nonMatching, field, qs.Desc)
}

func (h *Helper) valueWhenMatchesSort(queryString, missing, matching, nonMatching, field string, direction qs.Direction) (string, error) {
	current, err := h.currentSortDirection(queryString, field, direction)
	if err != nil {
		return "", err
	}
	switch current {
	case qs.DirNone:
		return missing, nil
	case direction:
		return matching, nil
	}
	return nonMatching, nil
}

// CreateNewSort removes all existing sort occurrences and appends one
// sort=fieldAndDirection pair per entry, e.g. ["city,desc", "suburb"].
func (h *Helper) CreateNewSort(queryString string, fieldAndDirections []string) (string, error) {
	pairs := make([]qs.Param, 0, len(fieldAndDirections))
	for _, fd := range fieldAndDirections {
		pairs = append(pairs, qs.Param{Key: consts.KeySort, Value: fd})
	}
	return h.RemoveAllAndAdd(queryString, []string{consts.KeySort}, pairs)
}
