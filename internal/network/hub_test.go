package network

import (
	"testing"

	"github.com/reddwarf405/TommysAdventure/pkg/api"
)

func TestBroadcaster_SendTo(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("s1")

	if !b.SendTo("s1", api.ServerResponse{Type: api.ResponseUpdate, Tick: 7}) {
		t.Fatal("SendTo should deliver to a registered session")
	}
	if b.SendTo("nobody", api.ServerResponse{}) {
		t.Error("SendTo to unknown session should report false")
	}

	msg := <-ch
	if msg.Tick != 7 {
		t.Errorf("Got tick %d, want 7", msg.Tick)
	}
}

func TestBroadcaster_RegisterReplacesChannel(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("s1")
	b.Register("s1")

	if _, ok := <-old; ok {
		t.Error("Old channel should be closed on re-register")
	}
	if b.SubscriberCount() != 1 {
		t.Errorf("Got %d subscribers, want 1", b.SubscriberCount())
	}

	b.Unregister("s1")
	if b.HasSubscriber("s1") {
		t.Error("Unregister should remove the subscriber")
	}
}
