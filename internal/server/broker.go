package server

import (
	"encoding/json"
	"sync"
)

// The broker fans evaluation-activity events out to connected UI clients.
// Publishing never blocks a computation: a subscriber that falls behind
// its buffer simply misses events.

const subscriberBuffer = 64

type event struct {
	Name string
	Data string
}

type broker struct {
	mu   sync.Mutex
	subs map[chan event]struct{}
}

func newBroker() *broker {
	return &broker{subs: make(map[chan event]struct{})}
}

func (b *broker) subscribe() chan event {
	ch := make(chan event, subscriberBuffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *broker) unsubscribe(ch chan event) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
	close(ch)
}

func (b *broker) publish(ev event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// emit serializes the payload once and broadcasts it; with no listeners
// the marshal is skipped entirely.
func (s *Server) emit(name string, payload any) {
	s.broker.mu.Lock()
	empty := len(s.broker.subs) == 0
	s.broker.mu.Unlock()
	if empty {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.log.Warn("drop event", "event", name, "err", err)
		return
	}
	s.broker.publish(event{Name: name, Data: string(data)})
}
