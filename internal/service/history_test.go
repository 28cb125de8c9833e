package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/mock"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/store"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

func TestHistory_SaveCompleted_DuplicateIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSearchResultRepository(ctrl)
	svc := NewHistoryService(repo, logger.Nop())

	repo.EXPECT().SaveCompleted(gomock.Any(), gomock.Any()).Return(store.ErrResultAlreadySaved)

	assert.NoError(t, svc.SaveCompleted(context.Background(), models.SearchRecord{SessionToken: "tok"}))
}

func TestHistory_SaveCompleted_PropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSearchResultRepository(ctrl)
	svc := NewHistoryService(repo, logger.Nop())

	repo.EXPECT().SaveCompleted(gomock.Any(), gomock.Any()).Return(store.ErrExecutingStatement)

	err := svc.SaveCompleted(context.Background(), models.SearchRecord{SessionToken: "tok"})
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestHistory_Recent_Limits(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "default", in: 0, want: defaultHistoryLimit},
		{name: "negative", in: -3, want: defaultHistoryLimit},
		{name: "as is", in: 5, want: 5},
		{name: "capped", in: 1000, want: maxHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockSearchResultRepository(ctrl)
			svc := NewHistoryService(repo, logger.Nop())

			records := []models.SearchRecord{{SessionToken: "a"}}
			repo.EXPECT().ListRecent(gomock.Any(), tt.want).Return(records, nil)

			got, err := svc.Recent(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, records, got)
		})
	}
}

func TestHistory_Recent_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSearchResultRepository(ctrl)
	svc := NewHistoryService(repo, logger.Nop())

	repo.EXPECT().ListRecent(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.Recent(context.Background(), 10)
	assert.Error(t, err)
}
