package notify

import (
	"testing"
	"time"

	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// manualTimer is a timer the test fires by hand.
type manualTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// ManualTimers captures scheduled callbacks instead of arming real timers.
type ManualTimers struct {
	Timers []*manualTimer
}

func (f *ManualTimers) AfterFunc(d time.Duration, fn func()) Timer {
	t := &manualTimer{delay: d, fn: fn}
	f.Timers = append(f.Timers, t)
	return t
}

// FireAll runs every pending callback that has not been stopped.
func (f *ManualTimers) FireAll() {
	for _, t := range f.Timers {
		if !t.stopped && !t.fired {
			t.fired = true
			t.fn()
		}
	}
}

func newTestStore() (*Store, *ManualTimers, MockClock) {
	clock := MockClock{CurrentTime: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)}
	timers := &ManualTimers{}
	return NewStore(clock, timers), timers, clock
}

// -----------------------------------------------------------------------------
// List Behavior
// -----------------------------------------------------------------------------

func TestStore_AddOrdering(t *testing.T) {
	store, _, _ := newTestStore()

	store.Add(Item{Title: "a"})
	store.Add(Item{Title: "b"})

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].Title, "Newest item must be first")
	assert.Equal(t, "a", items[1].Title)
}

func TestStore_AddFillsDefaults(t *testing.T) {
	store, _, clock := newTestStore()

	id := store.Add(Item{Title: "a", Body: "b"})

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].ID)
	assert.NotEmpty(t, items[0].ID, "ID must be generated when absent")
	assert.Equal(t, clock.CurrentTime, items[0].CreatedAt)
	assert.False(t, items[0].Read)
}

func TestStore_AddKeepsSuppliedID(t *testing.T) {
	store, _, _ := newTestStore()

	id := store.Add(Item{ID: "fixed-id", Title: "a"})

	assert.Equal(t, "fixed-id", id)
	assert.Equal(t, "fixed-id", store.Items()[0].ID)
}

func TestStore_ToggleRead(t *testing.T) {
	store, _, _ := newTestStore()
	id := store.Add(Item{Title: "a"})

	store.ToggleRead(id)
	assert.True(t, store.Items()[0].Read)

	store.ToggleRead(id)
	assert.False(t, store.Items()[0].Read, "Toggling twice must restore the unread state")

	store.ToggleRead("no-such-id")
	assert.False(t, store.Items()[0].Read, "Unknown id must leave the list unchanged")
}

func TestStore_MarkAllReadAndUnreadCount(t *testing.T) {
	store, _, _ := newTestStore()
	store.Add(Item{Title: "a"})
	store.Add(Item{Title: "b"})
	store.Add(Item{Title: "c", Read: true})

	assert.Equal(t, 2, store.UnreadCount())

	store.MarkAllRead()
	assert.Equal(t, 0, store.UnreadCount())
	for _, it := range store.Items() {
		assert.True(t, it.Read)
	}
}

func TestStore_Clear(t *testing.T) {
	store, _, _ := newTestStore()
	store.Add(Item{Title: "a"})
	store.Add(Item{Title: "b"})

	store.Clear()
	assert.Empty(t, store.Items())
}

// -----------------------------------------------------------------------------
// Subscription Semantics
// -----------------------------------------------------------------------------

func TestStore_SubscribeReplaysSnapshot(t *testing.T) {
	store, _, _ := newTestStore()
	store.Add(Item{Title: "existing"})

	var got []Item
	unsubscribe := store.Subscribe(func(items []Item) { got = items })
	defer unsubscribe()

	require.Len(t, got, 1, "Subscriber must receive the current snapshot immediately")
	assert.Equal(t, "existing", got[0].Title)
}

func TestStore_SubscribeReceivesEmissions(t *testing.T) {
	store, _, _ := newTestStore()

	emissions := 0
	var last []Item
	unsubscribe := store.Subscribe(func(items []Item) {
		emissions++
		last = items
	})

	store.Add(Item{Title: "a"})
	store.MarkAllRead()
	store.Clear()

	// 1 replay + 3 mutations.
	assert.Equal(t, 4, emissions)
	assert.Empty(t, last)

	unsubscribe()
	store.Add(Item{Title: "b"})
	assert.Equal(t, 4, emissions, "No emissions may arrive after unsubscribe")
}

func TestStore_MultipleSubscribers(t *testing.T) {
	store, _, _ := newTestStore()

	countA, countB := 0, 0
	defer store.Subscribe(func([]Item) { countA++ })()
	defer store.Subscribe(func([]Item) { countB++ })()

	store.Add(Item{Title: "a"})

	assert.Equal(t, 2, countA)
	assert.Equal(t, 2, countB)
}

// -----------------------------------------------------------------------------
// Reminder Scheduling
// -----------------------------------------------------------------------------

func TestSchedule_AtMostOnePerKey(t *testing.T) {
	store, timers, clock := newTestStore()
	event := clock.CurrentTime.Add(72 * time.Hour)

	store.ScheduleReminder("program-wellness-2025-09-04", event, "Wellness Check")
	store.ScheduleReminder("program-wellness-2025-09-04", event, "Wellness Check")

	assert.Len(t, timers.Timers, 1, "Duplicate key must not arm a second timer")

	timers.FireAll()
	assert.Len(t, store.Items(), 1, "Exactly one notification may result from double scheduling")
}

func TestSchedule_LeadTime(t *testing.T) {
	store, timers, clock := newTestStore()
	event := clock.CurrentTime.Add(72 * time.Hour)

	store.ScheduleReminder("k", event, "Feeding Program")

	require.Len(t, timers.Timers, 1)
	assert.Equal(t, 48*time.Hour, timers.Timers[0].delay, "Reminder must fire one day before the event")
}

func TestSchedule_MinDelayForPastEvents(t *testing.T) {
	store, timers, clock := newTestStore()
	past := clock.CurrentTime.Add(-time.Hour)

	store.ScheduleReminder("k", past, "Seminar")

	require.Len(t, timers.Timers, 1)
	assert.Equal(t, config.ReminderMinDelay, timers.Timers[0].delay,
		"Past events must still fire after the minimum delay")
}

func TestSchedule_FiringProducesNotification(t *testing.T) {
	store, timers, clock := newTestStore()
	event := clock.CurrentTime.Add(48 * time.Hour)

	store.ScheduleReminder("k", event, "NutriLIFE Feeding Program")
	assert.True(t, store.IsReminderScheduled("k"))

	timers.FireAll()

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, config.NotifTitleReminder, items[0].Title)
	assert.Contains(t, items[0].Body, "NutriLIFE Feeding Program")
	assert.Contains(t, items[0].Body, "tomorrow")
	assert.False(t, store.IsReminderScheduled("k"), "Firing must clear the table entry")
}

func TestCancel_SuppressesFiring(t *testing.T) {
	store, timers, clock := newTestStore()
	event := clock.CurrentTime.Add(48 * time.Hour)

	store.ScheduleReminder("k", event, "Wellness Check")
	store.CancelReminder("k")

	timers.FireAll()

	assert.Empty(t, store.Items(), "A cancelled reminder must never produce a notification")
	assert.False(t, store.IsReminderScheduled("k"))
}

func TestCancel_Idempotent(t *testing.T) {
	store, _, _ := newTestStore()

	assert.NotPanics(t, func() {
		store.CancelReminder("never-scheduled")
		store.CancelReminder("never-scheduled")
	})
	assert.False(t, store.IsReminderScheduled("never-scheduled"))
}

func TestCancel_ThenRescheduleArmsAgain(t *testing.T) {
	store, timers, clock := newTestStore()
	event := clock.CurrentTime.Add(48 * time.Hour)

	store.ScheduleReminder("k", event, "Wellness Check")
	store.CancelReminder("k")
	store.ScheduleReminder("k", event, "Wellness Check")

	assert.True(t, store.IsReminderScheduled("k"))
	assert.Len(t, timers.Timers, 2, "Cancellation must free the key for rescheduling")
}

// -----------------------------------------------------------------------------
// Relative Time Formatting
// -----------------------------------------------------------------------------

func TestFormatRelativeTime_Buckets(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"Under ten seconds", 5 * time.Second, "Just now"},
		{"Seconds", 45 * time.Second, "45s ago"},
		{"Minutes", 90 * time.Second, "1m ago"},
		{"Late minutes", 59 * time.Minute, "59m ago"},
		{"Hours", 5 * time.Hour, "5h ago"},
		{"Exactly one day", 25 * time.Hour, "Yesterday"},
		{"Days", 72 * time.Hour, "3d ago"},
		{"Future timestamp clamps to now", -time.Minute, "Just now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRelativeTime(now, now.Add(-tt.age)))
		})
	}
}
