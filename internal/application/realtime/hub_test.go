package realtime

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_DebouncesBurstIntoOneMessage(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	hub.debounce = 20 * time.Millisecond

	got := make(chan RefreshMessage, 2)
	hub.flushed = func(msg RefreshMessage) { got <- msg }

	hub.Publish("donations")
	hub.Publish("contact_messages")
	hub.Publish("donations")

	select {
	case msg := <-got:
		assert.Equal(t, "dashboard_refresh", msg.Type)
		assert.Equal(t, []string{"contact_messages", "donations"}, msg.Tables)
	case <-time.After(time.Second):
		t.Fatal("expected a refresh message")
	}

	select {
	case msg := <-got:
		t.Fatalf("unexpected second flush: %+v", msg)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestPublish_SeparateWindowsFlushSeparately(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	hub.debounce = 10 * time.Millisecond

	got := make(chan RefreshMessage, 2)
	hub.flushed = func(msg RefreshMessage) { got <- msg }

	hub.Publish("donations")

	var first RefreshMessage
	select {
	case first = <-got:
	case <-time.After(time.Second):
		t.Fatal("expected first refresh")
	}
	require.Equal(t, []string{"donations"}, first.Tables)

	hub.Publish("volunteer_applications")

	select {
	case second := <-got:
		assert.Equal(t, []string{"volunteer_applications"}, second.Tables)
	case <-time.After(time.Second):
		t.Fatal("expected second refresh")
	}
}
