package services

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rpupo63/sleeklegal-backend/content"
)

// LogNotifier writes provider notifications to a zerolog logger
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With().Str("component", "notifications").Logger()}
}

func (n *LogNotifier) Notify(note content.Notification) {
	var event *zerolog.Event
	switch note.Level {
	case content.LevelError:
		event = n.logger.Error()
	case content.LevelSuccess, content.LevelInfo:
		event = n.logger.Info()
	default:
		event = n.logger.Debug()
	}
	event.
		Str("collection", note.Collection).
		Str("operation", note.Operation).
		Str("kind", string(note.Level)).
		Bool("local", note.Local).
		Msg(note.Message)
}

// FanOut delivers each notification to every sink in order
type FanOut []content.Notifier

func (f FanOut) Notify(note content.Notification) {
	for _, sink := range f {
		if sink != nil {
			sink.Notify(note)
		}
	}
}

// FeedEntry is a notification with the time it was received
type FeedEntry struct {
	content.Notification
	At time.Time `json:"at"`
}

// Feed keeps the most recent notifications for the admin dashboard
type Feed struct {
	mu      sync.Mutex
	size    int
	entries []FeedEntry
	now     func() time.Time
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = 50
	}
	return &Feed{size: size, now: time.Now}
}

func (f *Feed) Notify(note content.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, FeedEntry{Notification: note, At: f.now().UTC()})
	if over := len(f.entries) - f.size; over > 0 {
		f.entries = append([]FeedEntry(nil), f.entries[over:]...)
	}
}

// Recent returns the kept notifications, newest first
func (f *Feed) Recent() []FeedEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]FeedEntry, 0, len(f.entries))
	for i := len(f.entries) - 1; i >= 0; i-- {
		out = append(out, f.entries[i])
	}
	return out
}
