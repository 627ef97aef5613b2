package querystr

import (
	"errors"

	"github.com/rohanthewiz/querystr/consts"
)

// ErrEmptyPath is returned when URL assembly is attempted without a path.
var ErrEmptyPath = errors.New("path cannot be empty")

// URL joins a request path with a query string:
// "/hotels" + "page=1" -> "/hotels?page=1". An empty queryString returns the
// path unchanged; an empty path is a contract violation.
func (h *Helper) URL(path, queryString string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	if queryString == "" {
		return path, nil
	}
	return path + consts.QueryIndicator + queryString, nil
}

// URLBuilder curries URL over a fixed path, handy when one template builds
// many links off the same request path.
func (h *Helper) URLBuilder(path string) func(queryString string) (string, error) {
	return func(queryString string) (string, error) {
		return h.URL(path, queryString)
	}
}
