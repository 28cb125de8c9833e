package service

import "github.com/owenmerry/skyscanner-flight-search-sub002/models"

// ChannelListener returns a [SearchClient] listener that queues every state
// on ch without blocking the publisher. When the consumer falls behind, the
// oldest queued state is dropped, so ch always ends with the latest state.
// Listeners run one at a time, so ch has a single sender.
func ChannelListener(ch chan models.SearchState) func(models.SearchState) {
	return func(state models.SearchState) {
		offerLatest(ch, state)
	}
}

func offerLatest(ch chan models.SearchState, state models.SearchState) {
	for {
		select {
		case ch <- state:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
