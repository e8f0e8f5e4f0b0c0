package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldFetchNextPage(t *testing.T) {
	tests := []struct {
		name string
		m    ScrollMetrics
		want bool
	}{
		{"empty list", ScrollMetrics{Cursor: 0, ItemCount: 0, Threshold: 5}, false},
		{"cursor at top", ScrollMetrics{Cursor: 0, ItemCount: 40, Threshold: 5}, false},
		{"cursor above threshold", ScrollMetrics{Cursor: 34, ItemCount: 40, Threshold: 5}, false},
		{"cursor at threshold", ScrollMetrics{Cursor: 35, ItemCount: 40, Threshold: 5}, true},
		{"cursor at end", ScrollMetrics{Cursor: 39, ItemCount: 40, Threshold: 5}, true},
		{"short list inside threshold", ScrollMetrics{Cursor: 0, ItemCount: 3, Threshold: 5}, true},
		{"zero threshold clamps to one", ScrollMetrics{Cursor: 39, ItemCount: 40, Threshold: 0}, true},
		{"zero threshold above trigger", ScrollMetrics{Cursor: 38, ItemCount: 40, Threshold: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldFetchNextPage(tt.m))
		})
	}
}
