package livefeed

import (
	"encoding/json"
	"testing"
	"time"

	"campushub/rdx"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "hack-the-night",
	}
	hub.Register(client)

	notice := rdx.SignupNotice{Kind: "registration", Slug: "hack-the-night", Name: "Ada", TS: 1}
	data, _ := json.Marshal(notice)
	hub.Broadcast("hack-the-night", data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for notice")
	}

	hub.Unregister(client)
}

// A client whose buffer fills is dropped by the broadcast loop; the
// disconnect path still unregisters it afterwards, and the hub must
// survive both and keep serving.
func TestUnregisterAfterSlowClientDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	slow := &Client{
		Send: make(chan []byte),
		Room: "spring-fair-2025",
	}
	hub.Register(slow)
	hub.Broadcast("spring-fair-2025", []byte(`{"kind":"registration"}`))
	hub.Unregister(slow)

	fresh := &Client{
		Send: make(chan []byte, 10),
		Room: "spring-fair-2025",
	}
	hub.Register(fresh)
	hub.Broadcast("spring-fair-2025", []byte(`{"kind":"volunteer"}`))

	select {
	case got := <-fresh.Send:
		if string(got) != `{"kind":"volunteer"}` {
			t.Fatalf("got %s", got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("hub stopped serving after dropped client unregistered")
	}
}

func TestBroadcastAfterStopReturns(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Stop()

	returned := make(chan struct{})
	go func() {
		hub.Broadcast("film-fest", []byte(`{"kind":"registration"}`))
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(1 * time.Second):
		t.Fatal("broadcast blocked after hub stopped")
	}
}

func TestAllRoomSeesEveryNotice(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	admin := &Client{
		Send: make(chan []byte, 10),
		Room: AllRoom,
	}
	hub.Register(admin)

	hub.Broadcast("film-fest", []byte(`{"kind":"volunteer"}`))

	select {
	case got := <-admin.Send:
		if string(got) != `{"kind":"volunteer"}` {
			t.Fatalf("got %s", got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for fan-out to all room")
	}
}
