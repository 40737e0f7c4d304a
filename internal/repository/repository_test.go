package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserID(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"42", 42, true},
		{"", 0, false},
		{"0", 0, false},
		{"-3", 0, false},
		{"64f1c2a9e13b5a0012345678", 0, false},
		{"12abc", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseUserID(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestMalformedIDsAreAbsent(t *testing.T) {
	// no database needed: malformed ids never reach a query
	r := NewRepository(nil)

	profile, err := r.FindProfile(context.Background(), "not-a-number")
	assert.NoError(t, err)
	assert.Nil(t, profile)

	logs, err := r.FindRecentLogs(context.Background(), "", 7)
	assert.NoError(t, err)
	assert.Empty(t, logs)
}
