package qs_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/querystr/core/qs"
)

func TestQueryEscaper(t *testing.T) {
	esc := qs.QueryEscaper{}

	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"plain value untouched", "melbourne", "melbourne"},
		{"space becomes %20", "san francisco", "san%20francisco"},
		{"comma survives for sort values", "country,asc", "country,asc"},
		{"unreserved marks survive", "address.suburb_x-1~", "address.suburb_x-1~"},
		{"ampersand escaped", "fish&chips", "fish%26chips"},
		{"equals escaped", "a=b", "a%3Db"},
		{"plus escaped", "1+1", "1%2B1"},
		{"hash escaped", "top#1", "top%231"},
		{"percent escaped", "50%", "50%25"},
		{"slash and colon survive", "http://x/y", "http://x/y"},
		{"empty value", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, esc.Escape(tt.value), tt.expected)
		})
	}
}

func TestEscaperFunc(t *testing.T) {
	shout := qs.EscaperFunc(func(value string) string { return value + "!" })
	assert.Equal(t, shout.Escape("hey"), "hey!")
}
