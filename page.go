package querystr

import (
	"github.com/rohanthewiz/querystr/consts"
	"github.com/rohanthewiz/querystr/core/qs"
)

// Page operations follow the "page" key convention used by paging
// repositories (e.g. Spring's PagingAndSortingRepository): page numbers are
// 0 based and a missing page key implies page 0.

// PageNumber returns the current page value, the first value of the "page"
// key. ok is false when no page key exists.
func (h *Helper) PageNumber(queryString string) (value string, ok bool, err error) {
	return h.FirstValue(queryString, consts.KeyPage)
}

// IncrementPage adds 1 to the current page value. When no page key exists,
// page=1 is appended since a missing key implies a current page of 0. An
// empty queryString yields "page=1".
func (h *Helper) IncrementPage(queryString string) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		if !m.HasKey(consts.KeyPage) {
			return m.Add(consts.KeyPage, "1")
		}
		return m.AdjustNumericValueBy(consts.KeyPage, []int{0}, 1, nil)
	})
}

// IncrementPageMax behaves like IncrementPage but never advances the page
// to or past maxBound, which saves the template from doing its own upper
// bounds check against the total page count.
func (h *Helper) IncrementPageMax(queryString string, maxBound int) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		if !m.HasKey(consts.KeyPage) {
			if 0 < maxBound {
				return m.Add(consts.KeyPage, "1")
			}
			return m
		}
		belowMax := func(current int) bool { return current < maxBound }
		return m.AdjustNumericValueBy(consts.KeyPage, []int{0}, 1, belowMax)
	})
}

// DecrementPage subtracts 1 from the current page value, never going below
// 0. When no page key exists, page=0 is appended.
func (h *Helper) DecrementPage(queryString string) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		if !m.HasKey(consts.KeyPage) {
			return m.Add(consts.KeyPage, "0")
		}
		aboveZero := func(current int) bool { return current > 0 }
		return m.AdjustNumericValueBy(consts.KeyPage, []int{0}, -1, aboveZero)
	})
}

// ResetPageNumber sets the page back to 0, appending page=0 when no page
// key exists. The typical use is a "first page" link.
func (h *Helper) ResetPageNumber(queryString string) (string, error) {
	return h.SetPageNumber(queryString, "0")
}

// SetPageNumber sets the page to the given value, appending the pair when
// no page key exists. The typical use is a "last page" link.
func (h *Helper) SetPageNumber(queryString, number string) (string, error) {
	return h.transform(queryString, func(m qs.QueryString) qs.QueryString {
		if !m.HasKey(consts.KeyPage) {
			return m.Add(consts.KeyPage, number)
		}
		return m.ReplaceFirst(consts.KeyPage, number)
	})
}
