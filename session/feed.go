package session

import (
	"sync"
	"time"

	"github.com/Senethlakshan/wanderlust-tales/common"
	"github.com/Senethlakshan/wanderlust-tales/models"
)

type EventType string

const (
	EventLogin       EventType = "login"
	EventLogout      EventType = "logout"
	EventInvalidated EventType = "invalidated"
)

type Event struct {
	Type EventType    `json:"type"`
	User *models.User `json:"user,omitempty"`
	At   time.Time    `json:"at"`
}

const subscriberBuffer = 16

type feed struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Event
}

func newFeed() *feed {
	return &feed{subs: make(map[int]chan Event)}
}

func (f *feed) subscribe() (<-chan Event, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.next
	f.next++
	ch := make(chan Event, subscriberBuffer)
	f.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// publish never blocks; a subscriber whose buffer is full misses the event.
func (f *feed) publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, ch := range f.subs {
		select {
		case ch <- e:
		default:
			common.WarningLogger.Printf("session feed subscriber %d is behind, dropping %s event", id, e.Type)
		}
	}
}
