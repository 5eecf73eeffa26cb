package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishInRegistrationOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.Subscribe(func(status string, progress float64) {
		order = append(order, "first:"+status)
	})
	bus.Subscribe(func(status string, progress float64) {
		order = append(order, "second:"+status)
	})

	bus.Publish("hello", NoProgress)

	assert.Equal(t, []string{"first:hello", "second:hello"}, order)
}

func TestPublishCarriesProgress(t *testing.T) {
	bus := NewBus()

	var gotStatus string
	var gotProgress float64
	bus.Subscribe(func(status string, progress float64) {
		gotStatus = status
		gotProgress = progress
	})

	bus.Publish("synced 1 of 2", 0.5)

	assert.Equal(t, "synced 1 of 2", gotStatus)
	assert.Equal(t, 0.5, gotProgress)
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()

	calls := 0
	id := bus.Subscribe(func(status string, progress float64) {
		calls++
	})

	bus.Publish("one", NoProgress)
	bus.Unsubscribe(id)
	bus.Publish("two", NoProgress)

	assert.Equal(t, 1, calls)
}

func TestUnsubscribeDuringPublish(t *testing.T) {
	bus := NewBus()

	var firstID int
	firstCalls := 0
	secondCalls := 0

	firstID = bus.Subscribe(func(status string, progress float64) {
		firstCalls++
		// Removing a handler mid-publish must not disturb delivery
		bus.Unsubscribe(firstID)
	})
	bus.Subscribe(func(status string, progress float64) {
		secondCalls++
	})

	bus.Publish("one", NoProgress)
	bus.Publish("two", NoProgress)

	assert.Equal(t, 1, firstCalls)
	assert.Equal(t, 2, secondCalls)
}
