package consts

// Query string grammar delimiters.
const (
	PairSeparator      = "&"
	KeyValueSeparator  = "="
	SortValueSeparator = ","
	QueryIndicator     = "?"
)

// Conventional keys used by paging and sorting repositories.
// Spring's PagingAndSortingRepository established these names and most
// server-side table implementations follow them.
const (
	KeyPage = "page"
	KeySort = "sort"
)

// Sort direction values as they appear in a sort key's value,
// e.g. "sort=country,asc".
const (
	DirAsc  = "asc"
	DirDesc = "desc"
)
