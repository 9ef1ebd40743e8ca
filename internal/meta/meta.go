// Package meta provides derived-metadata helpers shared by the content
// authoring and registration flows: unique IDs, canonical timestamps, and
// reading-time estimation. All functions are pure and safe for concurrent use.
package meta

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// wordsPerMinute is the reading speed used for reading-time estimates.
const wordsPerMinute = 200

// NewID returns a globally unique identifier (random 128-bit UUID).
func NewID() string {
	return uuid.NewString()
}

// FormatISO returns the canonical ISO-8601 (RFC 3339) representation of t in UTC.
func FormatISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ReadingTime estimates how many minutes it takes to read content, assuming
// 200 words per minute and rounding up. Blank content yields 0.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
