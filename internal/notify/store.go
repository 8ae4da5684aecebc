// Package notify implements the in-app notification center: an observable,
// newest-first list of notification items plus a keyed table of delayed
// reminders.
//
// The store is an explicit service object constructed once at application
// start and passed by reference to its consumers. Listeners receive the
// current snapshot immediately on subscribe and a fresh snapshot after every
// mutation, synchronously with respect to the mutating call.
package notify

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
)

// Item is one entry in the notification center.
type Item struct {
	// ID is unique across the list. Generated when the caller leaves it empty.
	ID string

	Title string
	Body  string
	Read  bool

	// Icon is an opaque asset name resolved by the presentation layer.
	Icon string

	// CreatedAt anchors the relative age shown by the notification center.
	// Filled from the store clock when the caller leaves it zero.
	CreatedAt time.Time
}

// Listener receives list snapshots. The slice is a copy; listeners may retain
// or mutate it freely.
type Listener func(items []Item)

type scheduledReminder struct {
	timer     Timer
	eventDate time.Time
	title     string
	body      string
}

// Store owns the notification list and the reminder scheduling table.
type Store struct {
	mut sync.Mutex

	clock  Clock
	timers TimerFactory

	items     []Item
	listeners map[int]Listener
	nextSub   int
	scheduled map[string]*scheduledReminder
}

// NewStore constructs an empty store driven by the given clock and timer
// factory. Pass RealClock and RealTimers in production.
func NewStore(clock Clock, timers TimerFactory) *Store {
	return &Store{
		clock:     clock,
		timers:    timers,
		listeners: make(map[int]Listener),
		scheduled: make(map[string]*scheduledReminder),
	}
}

// Subscribe registers a listener, immediately delivers the current snapshot,
// and returns a de-registration handle. Every emission after the call reaches
// the listener until the handle is invoked.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mut.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = l
	snapshot := s.snapshotLocked()
	s.mut.Unlock()

	l(snapshot)

	return func() {
		s.mut.Lock()
		delete(s.listeners, id)
		s.mut.Unlock()
	}
}

// Items returns a copy of the list, newest first.
func (s *Store) Items() []Item {
	s.mut.Lock()
	defer s.mut.Unlock()
	return s.snapshotLocked()
}

// UnreadCount reports how many items have not been marked read.
func (s *Store) UnreadCount() int {
	s.mut.Lock()
	defer s.mut.Unlock()
	n := 0
	for _, it := range s.items {
		if !it.Read {
			n++
		}
	}
	return n
}

// Add inserts an item at the head of the list and notifies all subscribers.
// Missing ID and CreatedAt fields are filled in, and the generated or
// supplied id is returned.
func (s *Store) Add(entry Item) string {
	s.mut.Lock()
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.clock.Now()
	}
	s.items = append([]Item{entry}, s.items...)
	snapshot, listeners := s.emissionLocked()
	s.mut.Unlock()

	slog.Debug(config.MsgNotifAdded,
		config.LogKeyComponent, config.CompNotify,
		config.LogKeyID, entry.ID,
		config.LogKeyTitle, entry.Title,
	)

	dispatch(listeners, snapshot)
	return entry.ID
}

// ToggleRead flips the read flag of the item with the given id. Unknown ids
// leave the list unchanged; subscribers are notified either way.
func (s *Store) ToggleRead(id string) {
	s.mut.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Read = !s.items[i].Read
			break
		}
	}
	snapshot, listeners := s.emissionLocked()
	s.mut.Unlock()

	dispatch(listeners, snapshot)
}

// MarkAllRead sets the read flag on every item.
func (s *Store) MarkAllRead() {
	s.mut.Lock()
	for i := range s.items {
		s.items[i].Read = true
	}
	snapshot, listeners := s.emissionLocked()
	s.mut.Unlock()

	dispatch(listeners, snapshot)
}

// Clear removes all items.
func (s *Store) Clear() {
	s.mut.Lock()
	s.items = nil
	snapshot, listeners := s.emissionLocked()
	s.mut.Unlock()

	dispatch(listeners, snapshot)
}

// ScheduleReminder arms a reminder that fires config.ReminderLeadTime before
// eventDate and then adds a templated notification. At most one reminder can
// be outstanding per key; scheduling an already-scheduled key is a no-op.
// Events that are today or past still fire after config.ReminderMinDelay so
// the reminder visibly appears rather than silently never firing.
func (s *Store) ScheduleReminder(key string, eventDate time.Time, programTitle string) {
	s.mut.Lock()
	if _, exists := s.scheduled[key]; exists {
		s.mut.Unlock()
		slog.Debug(config.MsgReminderDupe,
			config.LogKeyComponent, config.CompNotify,
			config.LogKeyKey, key,
		)
		return
	}

	delay := eventDate.Add(-config.ReminderLeadTime).Sub(s.clock.Now())
	if delay <= 0 {
		delay = config.ReminderMinDelay
	}

	body := fmt.Sprintf(config.NotifBodyReminderFormat, programTitle)
	rec := &scheduledReminder{
		eventDate: eventDate,
		title:     config.NotifTitleReminder,
		body:      body,
	}
	rec.timer = s.timers.AfterFunc(delay, func() {
		s.fireReminder(key)
	})
	s.scheduled[key] = rec
	s.mut.Unlock()

	slog.Info(config.MsgReminderArmed,
		config.LogKeyComponent, config.CompNotify,
		config.LogKeyKey, key,
		config.LogKeyProgram, programTitle,
		config.LogKeyDelay, delay.String(),
	)
}

// fireReminder consumes the table entry and publishes the notification.
// A cancelled key is a no-op: cancellation removes the entry before the
// timer callback can observe it.
func (s *Store) fireReminder(key string) {
	s.mut.Lock()
	rec, ok := s.scheduled[key]
	if !ok {
		s.mut.Unlock()
		return
	}
	delete(s.scheduled, key)
	title, body := rec.title, rec.body
	s.mut.Unlock()

	slog.Info(config.MsgReminderFired,
		config.LogKeyComponent, config.CompNotify,
		config.LogKeyKey, key,
	)

	s.Add(Item{Title: title, Body: body, Icon: IconReminder})
}

// CancelReminder stops the pending timer and clears the table entry without
// firing. Cancelling an unknown or already-cancelled key is a safe no-op.
func (s *Store) CancelReminder(key string) {
	s.mut.Lock()
	rec, ok := s.scheduled[key]
	if ok {
		delete(s.scheduled, key)
	}
	s.mut.Unlock()

	if !ok {
		return
	}
	rec.timer.Stop()

	slog.Info(config.MsgReminderOff,
		config.LogKeyComponent, config.CompNotify,
		config.LogKeyKey, key,
	)
}

// IsReminderScheduled reports whether a reminder is outstanding for the key.
// Screens use it to render the reminder-toggle button state.
func (s *Store) IsReminderScheduled(key string) bool {
	s.mut.Lock()
	defer s.mut.Unlock()
	_, ok := s.scheduled[key]
	return ok
}

func (s *Store) snapshotLocked() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// emissionLocked captures the snapshot and listener set for delivery outside
// the lock, preserving emit-after-mutation ordering.
func (s *Store) emissionLocked() ([]Item, []Listener) {
	snapshot := s.snapshotLocked()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	return snapshot, listeners
}

func dispatch(listeners []Listener, snapshot []Item) {
	for _, l := range listeners {
		l(snapshot)
	}
}
