package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetPlainLabel tests verdict thresholds on the 0-10 score scale.
func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{name: "strong at boundary", score: 8.0, want: StrongValue},
		{name: "strong above", score: 9.9, want: StrongValue},
		{name: "promising at boundary", score: 6.0, want: PromisingValue},
		{name: "promising below strong", score: 7.99, want: PromisingValue},
		{name: "watch at boundary", score: 4.0, want: WatchValue},
		{name: "pass below watch", score: 3.99, want: PassValue},
		{name: "pass at zero", score: 0, want: PassValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPlainLabel(tt.score))
		})
	}
}

// TestGetColorLabel verifies the colored label carries the plain text.
func TestGetColorLabel(t *testing.T) {
	assert.Contains(t, GetColorLabel(9.0), StrongValue)
	assert.Contains(t, GetColorLabel(6.5), PromisingValue)
	assert.Contains(t, GetColorLabel(5.0), WatchValue)
	assert.Contains(t, GetColorLabel(1.0), PassValue)
}

// TestTruncateName tests tail-keeping truncation of repository names.
func TestTruncateName(t *testing.T) {
	t.Run("short names pass through", func(t *testing.T) {
		assert.Equal(t, "acme/widget", TruncateName("acme/widget", 30))
	})

	t.Run("long names keep the tail", func(t *testing.T) {
		got := TruncateName("some-long-organization/deeply-nested-repo", 20)
		assert.Len(t, got, 20)
		assert.Equal(t, "...", got[:3])
		assert.Contains(t, got, "nested-repo")
	})

	t.Run("tiny max length", func(t *testing.T) {
		assert.Equal(t, "epo", TruncateName("acme/repo", 3))
	})

	t.Run("zero max length is a passthrough", func(t *testing.T) {
		assert.Equal(t, "acme/repo", TruncateName("acme/repo", 0))
	})
}

// TestGetCacheDBFilePath verifies the cache file lands in the home directory.
func TestGetCacheDBFilePath(t *testing.T) {
	path := GetCacheDBFilePath()
	assert.Contains(t, path, ".dealflow_cache.db")
}
