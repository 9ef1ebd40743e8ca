package meta

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.Len(t, id, 36)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestFormatISO(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	in := time.Date(2025, 3, 14, 9, 26, 53, 0, loc)
	require.Equal(t, "2025-03-14T02:26:53Z", FormatISO(in))
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"blank", "   \n\t  ", 0},
		{"three words", "one two three", 1},
		{"exactly 200 words", strings.Repeat("word ", 200), 1},
		{"201 words", strings.Repeat("word ", 201), 2},
		{"multiple whitespace runs", "one\n\ntwo\t three", 1},
		{"450 words", strings.Repeat("word ", 450), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ReadingTime(tt.content))
		})
	}
}
