package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishReachesSubscriber(t *testing.T) {
	bus := NewBus()

	var got []Event
	bus.Subscribe(ForceLogout, func(e Event) { got = append(got, e) })

	bus.Publish(Event{Name: ForceLogout, Payload: "401"})

	assert.Len(t, got, 1)
	assert.Equal(t, ForceLogout, got[0].Name)
	assert.Equal(t, "401", got[0].Payload)
}

func TestPublishIgnoresOtherNames(t *testing.T) {
	bus := NewBus()

	calls := 0
	bus.Subscribe(ForceLogout, func(Event) { calls++ })

	bus.Publish(Event{Name: Name("something.else")})
	assert.Equal(t, 0, calls)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()

	calls := 0
	unsubscribe := bus.Subscribe(ForceLogout, func(Event) { calls++ })

	bus.Publish(Event{Name: ForceLogout})
	unsubscribe()
	bus.Publish(Event{Name: ForceLogout})

	assert.Equal(t, 1, calls)
}

func TestMultipleSubscribers(t *testing.T) {
	bus := NewBus()

	first, second := 0, 0
	bus.Subscribe(ForceLogout, func(Event) { first++ })
	bus.Subscribe(ForceLogout, func(Event) { second++ })

	bus.Publish(Event{Name: ForceLogout})

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
