package api

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/showdown-games/showdown/pkg/events"
	"github.com/showdown-games/showdown/pkg/log"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	// subscriberBufferSize is the number of events buffered per
	// subscriber before events are dropped for that subscriber.
	subscriberBufferSize = 64
)

// eventSubscribers tracks websocket subscribers to the event stream.
type eventSubscribers struct {
	lock sync.Mutex
	subs map[string]chan events.Event
}

func newEventSubscribers() *eventSubscribers {
	return &eventSubscribers{
		subs: make(map[string]chan events.Event),
	}
}

func (s *eventSubscribers) subscribe() (string, <-chan events.Event) {
	s.lock.Lock()
	defer s.lock.Unlock()
	id := uuid.NewString()
	ch := make(chan events.Event, subscriberBufferSize)
	s.subs[id] = ch
	return id, ch
}

func (s *eventSubscribers) unsubscribe(id string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.subs, id)
}

// broadcast delivers an event to every subscriber. Slow subscribers
// lose events rather than blocking delivery to the rest.
func (s *eventSubscribers) broadcast(event events.Event) {
	s.lock.Lock()
	defer s.lock.Unlock()
	for id, ch := range s.subs {
		select {
		case ch <- event:
		default:
			log.Warn("Subscriber %s event buffer is full, dropping event %s", id, event.ID)
		}
	}
}

func handleEvents(subscribers *eventSubscribers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			log.Error("Failed to accept websocket connection: %v", err)
			return
		}
		defer conn.CloseNow()

		id, ch := subscribers.subscribe()
		defer subscribers.unsubscribe(id)
		log.Debug("Event subscriber %s connected", id)

		// CloseRead cancels the context when the client goes away.
		ctx := conn.CloseRead(r.Context())
		for {
			select {
			case <-ctx.Done():
				log.Debug("Event subscriber %s disconnected", id)
				return
			case event := <-ch:
				if err := wsjson.Write(ctx, conn, event); err != nil {
					log.Debug("Failed to write event to subscriber %s: %v", id, err)
					return
				}
			}
		}
	}
}
