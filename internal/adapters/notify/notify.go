// Package notify carries one-way operator notices (low stock warnings,
// clearance summaries) off the command path. Publishing never blocks: if
// nobody is draining the bus, the oldest notice is dropped.
package notify

import (
	"time"

	"tilltalk/internal/platform/logger"
)

// Level grades a notice
type Level string

// Notice levels
const (
	LevelInfo Level = "info"
	LevelWarn Level = "warn"
)

// Notice is one operator-facing message
type Notice struct {
	Level Level     `json:"level"`
	Text  string    `json:"text"`
	At    time.Time `json:"at"`
}

// Publisher is the send-only surface handed to services
type Publisher interface {
	Publish(level Level, text string)
}

// Bus is a bounded in-process notice queue
type Bus struct {
	ch  chan Notice
	log logger.Logger
	now func() time.Time
}

// NewBus returns a Bus holding at most size notices
func NewBus(size int) *Bus {
	if size <= 0 {
		size = 64
	}
	return &Bus{ch: make(chan Notice, size), log: *logger.Named("notify"), now: time.Now}
}

// Publish enqueues a notice, evicting the oldest when full
func (b *Bus) Publish(level Level, text string) {
	n := Notice{Level: level, Text: text, At: b.now()}
	for {
		select {
		case b.ch <- n:
			b.log.Debug().Str("level", string(level)).Str("text", text).Msg("notice published")
			return
		default:
			select {
			case <-b.ch: // drop oldest
			default:
			}
		}
	}
}

// C exposes the receive side for a drain loop or SSE relay
func (b *Bus) C() <-chan Notice { return b.ch }

// Drain returns everything currently queued without blocking
func (b *Bus) Drain() []Notice {
	var out []Notice
	for {
		select {
		case n := <-b.ch:
			out = append(out, n)
		default:
			return out
		}
	}
}

// Discard is a Publisher that drops every notice
type Discard struct{}

// Publish implements Publisher
func (Discard) Publish(Level, string) {}
