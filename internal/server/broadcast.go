package server

import (
	"encoding/json"
	"log"
)

// subscriber is one connected observer of a room's event stream. Its
// channel is bounded; when the consumer cannot keep up the oldest pending
// event is dropped so the mutating path never blocks.
type subscriber struct {
	ch chan []byte
}

// Subscribe attaches a new observer channel to the room. Must run inside
// the registry's exclusive-access window, like every other room mutation.
func (r *Room) Subscribe(buffer int) *subscriber {
	if buffer < 1 {
		buffer = 1
	}
	sub := &subscriber{ch: make(chan []byte, buffer)}
	r.subs = append(r.subs, sub)
	return sub
}

// Unsubscribe detaches an observer and closes its channel.
func (r *Room) Unsubscribe(sub *subscriber) {
	for i, s := range r.subs {
		if s == sub {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			close(sub.ch)
			return
		}
	}
}

func (r *Room) SubscriberCount() int {
	return len(r.subs)
}

func (r *Room) closeSubscribers() {
	for _, sub := range r.subs {
		close(sub.ch)
	}
	r.subs = nil
}

// publish offers an event to every subscriber without ever blocking.
// A full channel loses its oldest event to make room for the newest, so
// a stalled consumer only degrades its own stream.
func (r *Room) publish(event map[string]any) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("event marshal failed room_id=%s error=%v", r.ID, err)
		return
	}
	for _, sub := range r.subs {
		select {
		case sub.ch <- data:
		default:
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- data:
			default:
			}
		}
	}
}

// PublishState pushes a fresh full snapshot to every subscriber. Events
// are self-contained, so a late joiner renders current state from the
// very next event.
func (r *Room) PublishState() {
	r.publish(map[string]any{
		"type": "state",
		"room": snapshot(r),
	})
}

// PublishChat relays a chat line through the same stream.
func (r *Room) PublishChat(playerName, message string) {
	r.publish(map[string]any{
		"type":    "chat",
		"player":  playerName,
		"message": message,
	})
}
