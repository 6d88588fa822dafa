package hub

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishToKey(t *testing.T) {
	h := New[string](4)

	a, cancelA := h.Subscribe("order-1")
	defer cancelA()
	b, cancelB := h.Subscribe("order-1")
	defer cancelB()
	other, cancelOther := h.Subscribe("order-2")
	defer cancelOther()

	assert.Equal(t, 2, h.Publish("order-1", "pending"))

	assert.Equal(t, "pending", <-a)
	assert.Equal(t, "pending", <-b)
	assert.Empty(t, other)
}

func TestHub_DropsWhenFull(t *testing.T) {
	h := New[int](1)
	ch, cancel := h.Subscribe("k")
	defer cancel()

	assert.Equal(t, 1, h.Publish("k", 1))
	assert.Equal(t, 0, h.Publish("k", 2))
	assert.Equal(t, 1, <-ch)
}

func TestHub_CancelClosesChannel(t *testing.T) {
	h := New[int](1)
	ch, cancel := h.Subscribe("k")
	require.Equal(t, 1, h.Subscribers("k"))

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, h.Subscribers("k"))
	assert.Equal(t, 0, h.Publish("k", 1))
}

func TestHub_ConcurrentUse(t *testing.T) {
	h := New[int](8)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, cancel := h.Subscribe("k")
			h.Publish("k", 1)
			cancel()
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, h.Subscribers("k"))
}
