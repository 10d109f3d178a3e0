// Package status broadcasts scene snapshots to subscribers. Producers call
// Publish from the tick goroutine; every subscriber gets its own buffered
// queue and misses frames when it falls behind.
package status

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/mogaika/scene3d/scene"
)

const (
	writeWait    = 10 * time.Second
	pingPeriod   = 30 * time.Second
	clientBuffer = 8
)

type Subscription struct {
	C <-chan []byte

	send    chan []byte
	pub     *Publisher
	dropped uint64
}

// Dropped is the number of frames skipped because the queue was full
func (s *Subscription) Dropped() uint64 {
	s.pub.lock.Lock()
	defer s.pub.lock.Unlock()
	return s.dropped
}

// Close unsubscribes, C is closed after the call
func (s *Subscription) Close() {
	s.pub.unsubscribe(s)
}

type Publisher struct {
	lock       sync.Mutex
	latest     scene.Snapshot
	latestData []byte
	subs       map[*Subscription]struct{}
	closed     bool
}

func NewPublisher() *Publisher {
	return &Publisher{subs: make(map[*Subscription]struct{})}
}

// Publish stores s as the latest snapshot and queues it to all subscribers
func (p *Publisher) Publish(s scene.Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrapf(err, "Failed to marshal snapshot %d", s.Tick)
	}

	p.lock.Lock()
	defer p.lock.Unlock()
	if p.closed {
		return errors.New("publisher is closed")
	}
	p.latest = s
	p.latestData = data
	for sub := range p.subs {
		select {
		case sub.send <- data:
		default:
			sub.dropped++
		}
	}
	return nil
}

// Latest returns the last published snapshot
func (p *Publisher) Latest() (scene.Snapshot, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.latest, p.latestData != nil
}

// LatestJSON returns the encoded last snapshot or nil
func (p *Publisher) LatestJSON() []byte {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.latestData
}

// Subscribe registers a new queue of encoded snapshots. The latest
// snapshot, if any, is queued right away.
func (p *Publisher) Subscribe(buffer int) *Subscription {
	if buffer < 1 {
		buffer = 1
	}
	send := make(chan []byte, buffer)
	sub := &Subscription{C: send, send: send, pub: p}

	p.lock.Lock()
	defer p.lock.Unlock()
	if p.closed {
		close(send)
		return sub
	}
	p.subs[sub] = struct{}{}
	if p.latestData != nil {
		sub.send <- p.latestData
	}
	return sub
}

func (p *Publisher) unsubscribe(sub *Subscription) {
	p.lock.Lock()
	defer p.lock.Unlock()
	if _, ok := p.subs[sub]; ok {
		delete(p.subs, sub)
		close(sub.send)
	}
}

func (p *Publisher) Subscribers() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return len(p.subs)
}

// Close drops all subscribers, websocket clients get a close message
func (p *Publisher) Close() {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.closed = true
	for sub := range p.subs {
		delete(p.subs, sub)
		close(sub.send)
	}
}

// ServeConn streams snapshots to a websocket connection until the
// connection breaks or the publisher is closed. Incoming messages are
// discarded.
func (p *Publisher) ServeConn(conn *websocket.Conn) {
	sub := p.Subscribe(clientBuffer)

	go func() {
		defer sub.Close()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	writePump(conn, sub)
}

func writePump(conn *websocket.Conn, sub *Subscription) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		sub.Close()
		conn.Close()
	}()
	for {
		select {
		case msg, ok := <-sub.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Printf("[status] ws write msg error: %v", err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[status] ws write ping error: %v", err)
				return
			}
		}
	}
}
