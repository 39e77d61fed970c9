package websocket

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBroadcastReachesEveryClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	a := NewClient(hub)
	b := NewClient(hub)
	hub.Register(a)
	hub.Register(b)

	if got := hub.ClientCount(); got != 2 {
		t.Fatalf("client count = %d, want 2", got)
	}

	hub.Broadcast([]byte("hello"))

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.Send():
			if string(msg) != "hello" {
				t.Fatalf("got %q", msg)
			}
		case <-time.After(time.Second):
			t.Fatal("broadcast did not arrive")
		}
	}
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c := NewClient(hub)
	hub.Register(c)
	hub.Unregister(c)

	select {
	case _, ok := <-c.Send():
		if ok {
			t.Fatal("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}

	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("client count = %d, want 0", got)
	}
}

func TestBroadcasterMessages(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c := NewClient(hub)
	hub.Register(c)

	NewBroadcaster(hub).EventsChanged(3)

	select {
	case raw := <-c.Send():
		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatal(err)
		}
		if msg.Type != TypeEventsChanged {
			t.Fatalf("type = %q", msg.Type)
		}
		payload, ok := msg.Payload.(map[string]any)
		if !ok || payload["count"] != float64(3) {
			t.Fatalf("payload = %#v", msg.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("notification did not arrive")
	}
}
