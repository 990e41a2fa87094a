package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots_GridBoundsAndSpacing(t *testing.T) {
	slots := GenerateSlots("08:15", "12:00", 45*time.Minute, nil)
	require.NotEmpty(t, slots)

	start, _ := time.Parse("15:04", "08:15")
	end, _ := time.Parse("15:04", "12:00")

	var prev time.Time
	for i, label := range slots {
		cur, err := time.Parse("15:04", label)
		require.NoError(t, err, "label %q must be HH:MM", label)

		assert.False(t, cur.Before(start), "%s before window start", label)
		assert.True(t, cur.Before(end), "%s not before window end", label)

		if i > 0 {
			assert.Equal(t, 45*time.Minute, cur.Sub(prev))
		}
		prev = cur
	}
}

func TestGenerateSlots_TwoHourWindow(t *testing.T) {
	slots := GenerateSlots("09:00", "11:00", 30*time.Minute, nil)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestGenerateSlots_ExcludesOccupied(t *testing.T) {
	occupied := map[string]struct{}{
		"09:30": {},
		"10:30": {},
	}

	slots := GenerateSlots("09:00", "11:00", 30*time.Minute, occupied)
	assert.Equal(t, []string{"09:00", "10:00"}, slots)
}

// Shrinking the occupied set can only grow the output.
func TestGenerateSlots_OccupiedMonotonicity(t *testing.T) {
	larger := map[string]struct{}{
		"09:00": {},
		"09:30": {},
		"10:00": {},
	}
	smaller := map[string]struct{}{
		"09:30": {},
	}

	withLarger := GenerateSlots("09:00", "11:00", 30*time.Minute, larger)
	withSmaller := GenerateSlots("09:00", "11:00", 30*time.Minute, smaller)

	seen := make(map[string]struct{}, len(withSmaller))
	for _, s := range withSmaller {
		seen[s] = struct{}{}
	}
	for _, s := range withLarger {
		_, ok := seen[s]
		assert.True(t, ok, "slot %s appeared only under the larger occupied set", s)
	}
}

func TestGenerateSlots_EmptyWhenStartNotBeforeEnd(t *testing.T) {
	assert.Empty(t, GenerateSlots("17:00", "09:00", 30*time.Minute, nil))
	assert.Empty(t, GenerateSlots("09:00", "09:00", 30*time.Minute, nil))
}

func TestGenerateSlots_DefaultsWhenUnconfigured(t *testing.T) {
	slots := GenerateSlots("", "", 0, nil)

	// 09:00 through 16:30 at 30 minutes.
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "16:30", slots[len(slots)-1])
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	occupied := map[string]struct{}{"10:00": {}}

	first := GenerateSlots("09:00", "12:00", 30*time.Minute, occupied)
	second := GenerateSlots("09:00", "12:00", 30*time.Minute, occupied)

	assert.Equal(t, first, second)
}
