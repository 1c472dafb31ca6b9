package marketcache

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubDeliversToEverySubscriber(t *testing.T) {
	h := NewHub()
	a, cancelA := h.Subscribe(4)
	defer cancelA()
	b, cancelB := h.Subscribe(4)
	defer cancelB()
	require.Equal(t, 2, h.Count())

	h.Publish(Event{Store: "snapshot", Key: "AAPL", Kind: EventFetchStarted})

	assert.Equal(t, "AAPL", (<-a).Key)
	assert.Equal(t, "AAPL", (<-b).Key)
}

func TestHubDropsWhenSubscriberIsFull(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(1)
	defer cancel()

	before := testutil.ToFloat64(eventsDropped)
	h.Publish(Event{Key: "first"})
	h.Publish(Event{Key: "second"})

	assert.Equal(t, before+1, testutil.ToFloat64(eventsDropped))
	assert.Equal(t, "first", (<-ch).Key)
	assert.Len(t, ch, 0)
}

func TestHubUnsubscribe(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(1)

	cancel()
	cancel()
	assert.Equal(t, 0, h.Count())

	_, open := <-ch
	assert.False(t, open)

	h.Publish(Event{Key: "ignored"})
}

func TestHubClose(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(1)
	h.Close()

	_, open := <-ch
	assert.False(t, open)
	cancel()

	late, _ := h.Subscribe(1)
	_, open = <-late
	assert.False(t, open, "subscribing after close yields a closed channel")

	h.Publish(Event{Key: "ignored"})
}
