package programs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Lookup(t *testing.T) {
	p, ok := ByID(IDNutri)
	require.True(t, ok)
	assert.Equal(t, "NutriLIFE Feeding Program", p.Title)

	_, ok = ByID("no-such-program")
	assert.False(t, ok)
}

func TestCatalog_AllIsCopy(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	all[0].Title = "mutated"

	fresh, _ := ByID(all[0].ID)
	assert.NotEqual(t, "mutated", fresh.Title)
}

func TestProgram_StatusDerivation(t *testing.T) {
	p, _ := ByID(IDWellness)

	tests := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"Before start", p.Start.Add(-24 * time.Hour), StatusUpcoming},
		{"During", p.Start.Add(time.Hour), StatusOngoing},
		{"After end", p.End.Add(time.Hour), StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Status(tt.now))
		})
	}
}

func TestProgram_ReminderKey(t *testing.T) {
	p, _ := ByID(IDWellness)
	assert.Equal(t, "program-wellness-2025-09-06", p.ReminderKey())
}

func TestProgram_ShareText(t *testing.T) {
	p, _ := ByID(IDWellness)
	text := p.ShareText()

	assert.Contains(t, text, "Barangay Wellness Check Program")
	assert.Contains(t, text, "September 6, 2025")
	assert.Contains(t, text, "Mahayahay, Iligan City")
}

func TestBuildCalendar_Events(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	data, err := BuildCalendar(now, All())
	require.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "NutriLIFE Feeding Program")
	assert.Contains(t, ics, "wellness-2025@konekkalusugan")
	assert.Contains(t, ics, "END:VCALENDAR")
}

func TestBuildCalendar_EmptyStub(t *testing.T) {
	data, err := BuildCalendar(time.Now(), nil)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR", "Empty catalog must still yield a valid feed")
}
