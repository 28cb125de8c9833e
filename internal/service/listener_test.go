package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

func TestChannelListener_DropsOldestWhenFull(t *testing.T) {
	ch := make(chan models.SearchState, 2)
	listen := ChannelListener(ch)

	for gen := uint64(1); gen <= 5; gen++ {
		listen(models.SearchState{Generation: gen})
	}

	require.Len(t, ch, 2)
	assert.EqualValues(t, 4, (<-ch).Generation)
	assert.EqualValues(t, 5, (<-ch).Generation)
}

func TestChannelListener_NeverBlocksClient(t *testing.T) {
	// буфер на одно состояние, читатель не читает
	ch := make(chan models.SearchState, 1)

	c := newTestClient(t, nil, nil)
	unsubscribe := c.Subscribe(ChannelListener(ch))
	defer unsubscribe()

	c.Submit(context.Background(), models.SearchQuery{FromID: "LOND", ToID: "LOND", DepartDate: "2026-11-01"})

	require.Len(t, ch, 1)
	last := <-ch
	assert.Equal(t, models.SearchStatusError, last.Status)
	assert.ErrorIs(t, last.Err, ErrSameOriginDestination)
}
