package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestNewRange(t *testing.T) {
	_, err := NewRange(at(9, 0), at(11, 0))
	require.NoError(t, err)

	_, err = NewRange(at(11, 0), at(9, 0))
	assert.ErrorIs(t, err, ErrInvalidRange, "inverted bounds should be rejected")

	_, err = NewRange(at(9, 0), at(9, 0))
	assert.ErrorIs(t, err, ErrInvalidRange, "empty range should be rejected")
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Range
		b    Range
		want bool
	}{
		{
			name: "identical ranges overlap",
			a:    Range{at(9, 0), at(11, 0)},
			b:    Range{at(9, 0), at(11, 0)},
			want: true,
		},
		{
			name: "touching boundaries do not overlap",
			a:    Range{at(9, 0), at(11, 0)},
			b:    Range{at(11, 0), at(13, 0)},
			want: false,
		},
		{
			name: "one minute of intersection overlaps",
			a:    Range{at(9, 0), at(11, 0)},
			b:    Range{at(10, 59), at(13, 0)},
			want: true,
		},
		{
			name: "full containment overlaps",
			a:    Range{at(9, 0), at(12, 0)},
			b:    Range{at(10, 0), at(11, 0)},
			want: true,
		},
		{
			name: "disjoint ranges do not overlap",
			a:    Range{at(9, 0), at(10, 0)},
			b:    Range{at(14, 0), at(15, 0)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestConflictsWithAny(t *testing.T) {
	existing := []Range{
		{at(9, 0), at(10, 0)},
		{at(12, 0), at(13, 0)},
	}

	assert.False(t, ConflictsWithAny(Range{at(10, 0), at(12, 0)}, existing))
	assert.True(t, ConflictsWithAny(Range{at(9, 30), at(9, 45)}, existing))
	assert.False(t, ConflictsWithAny(Range{at(8, 0), at(9, 0)}, nil))
}
