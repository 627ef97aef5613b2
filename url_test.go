package querystr_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/querystr"
)

func TestURL(t *testing.T) {
	h := querystr.New()

	out, err := h.URL("/hotels", "page=1&sort=name,asc")
	assert.Nil(t, err)
	assert.Equal(t, out, "/hotels?page=1&sort=name,asc")

	out, err = h.URL("/hotels", "")
	assert.Nil(t, err)
	assert.Equal(t, out, "/hotels")

	_, err = h.URL("", "page=1")
	assert.True(t, errors.Is(err, querystr.ErrEmptyPath))
}

func TestURLBuilder(t *testing.T) {
	h := querystr.New()
	build := h.URLBuilder("/hotels")

	out, err := build("page=1")
	assert.Nil(t, err)
	assert.Equal(t, out, "/hotels?page=1")

	out, err = build("")
	assert.Nil(t, err)
	assert.Equal(t, out, "/hotels")
}
