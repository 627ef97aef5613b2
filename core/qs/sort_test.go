package qs_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/querystr/core/qs"
)

func TestSplitSortValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		field string
		dir   qs.Direction
	}{
		{"field only is implicit", "country", "country", qs.DirNone},
		{"explicit asc", "country,asc", "country", qs.Asc},
		{"explicit desc", "city,desc", "city", qs.Desc},
		{"nested property path", "address.suburb,desc", "address.suburb", qs.Desc},
		{"unknown direction kept opaque", "city,weird", "city", qs.Direction("weird")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, dir := qs.SplitSortValue(tt.value)
			assert.Equal(t, field, tt.field)
			assert.Equal(t, dir, tt.dir)
		})
	}
}

func TestJoinSortValue(t *testing.T) {
	assert.Equal(t, qs.JoinSortValue("country", qs.Asc), "country,asc")
	assert.Equal(t, qs.JoinSortValue("city", qs.Desc), "city,desc")
}

func TestDirectionOpposite(t *testing.T) {
	assert.Equal(t, qs.Asc.Opposite(), qs.Desc)
	assert.Equal(t, qs.Desc.Opposite(), qs.Asc)
	assert.Equal(t, qs.DirNone.Opposite(), qs.DirNone)
}

func TestCurrentSortDirection(t *testing.T) {
	model, _ := qs.Parse("city=melbourne&postcode=3000&sort=suburb")

	// implicit direction resolves to the supplied default
	assert.Equal(t, model.CurrentSortDirection("suburb", qs.Asc), qs.Asc)
	assert.Equal(t, model.CurrentSortDirection("suburb", qs.Desc), qs.Desc)

	// missing field yields DirNone
	assert.Equal(t, model.CurrentSortDirection("country", qs.Asc), qs.DirNone)

	explicit, _ := qs.Parse("city=melbourne&sort=suburb,desc")
	assert.Equal(t, explicit.CurrentSortDirection("suburb", qs.Asc), qs.Desc)
}

func TestCurrentSortDirectionFirstMatchWins(t *testing.T) {
	model, _ := qs.Parse("sort=city,desc&sort=city,asc")
	assert.Equal(t, model.CurrentSortDirection("city", qs.Asc), qs.Desc)
}

func TestIsFieldSorted(t *testing.T) {
	model, _ := qs.Parse("city=melbourne&sort=country,asc&sort=city")

	assert.True(t, model.IsFieldSorted("country"))
	assert.True(t, model.IsFieldSorted("city"))
	assert.False(t, model.IsFieldSorted("state"))

	empty, _ := qs.Parse("")
	assert.False(t, empty.IsFieldSorted("city"))
}

func TestSetSortDirection(t *testing.T) {
	model, _ := qs.Parse("city=dallas&country=US&sort=country&page=1")

	next, err := model.SetSortDirection("country", qs.Asc)
	assert.Nil(t, err)
	assert.Equal(t, next.Serialize(plain), "city=dallas&country=US&sort=country,asc&page=1")

	// field not sorted: unchanged
	next, err = model.SetSortDirection("city", qs.Desc)
	assert.Nil(t, err)
	assert.Equal(t, next.Serialize(plain), model.Serialize(plain))
}

func TestSetSortDirectionRejectsNone(t *testing.T) {
	model, _ := qs.Parse("sort=country,asc")
	_, err := model.SetSortDirection("country", qs.DirNone)
	assert.True(t, errors.Is(err, qs.ErrNoDirection))
}

func TestSetSortDirectionTargetsSecondSortOccurrence(t *testing.T) {
	model, _ := qs.Parse("sort=country,asc&sort=city,desc")
	next, err := model.SetSortDirection("city", qs.Asc)
	assert.Nil(t, err)
	assert.Equal(t, next.Serialize(plain), "sort=country,asc&sort=city,asc")
}

func TestToggleSortDirection(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		field    string
		def      qs.Direction
		expected string
	}{
		{"implicit toggles off the default", "city=dallas&sort=country&page=1", "country", qs.Asc,
			"city=dallas&sort=country,desc&page=1"},
		{"explicit desc toggles to asc", "city=dallas&sort=country,desc&page=1", "country", qs.Asc,
			"city=dallas&sort=country,asc&page=1"},
		{"implicit with desc default toggles to asc", "city=dallas&sort=country&page=1", "country", qs.Desc,
			"city=dallas&sort=country,asc&page=1"},
		{"missing field is a no-op", "city=dallas&sort=country&page=1", "city", qs.Asc,
			"city=dallas&sort=country&page=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := qs.Parse(tt.raw)
			assert.Nil(t, err)
			assert.Equal(t, model.ToggleSortDirection(tt.field, tt.def).Serialize(plain), tt.expected)
		})
	}
}

func TestKeepSortField(t *testing.T) {
	model, _ := qs.Parse("city=melbourne&country=aus&state=victoria&sort=country,asc&sort=city,desc&sort=postcode")

	// matching field: other sorts removed
	next := model.KeepSortField("city")
	assert.Equal(t, next.Serialize(plain), "city=melbourne&country=aus&state=victoria&sort=city,desc")

	// no matching field: all sorts removed
	next = model.KeepSortField("state")
	assert.Equal(t, next.Serialize(plain), "city=melbourne&country=aus&state=victoria")
}
