package service

import (
	"context"
	"testing"
	"time"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/repository"
	"rewards_miniapp/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTaskService_CompleteTask(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		kind           model.TaskKind
		mockSetup      func(*mocks.MockTaskRepository, *model.Account, *[]model.QuestEvent)
		expectedError  error
		expectedPoints int64
	}{
		{
			name:           "Unknown kind",
			kind:           "video",
			mockSetup:      func(*mocks.MockTaskRepository, *model.Account, *[]model.QuestEvent) {},
			expectedError:  ErrInvalidInput,
			expectedPoints: 100,
		},
		{
			name: "Already completed",
			kind: model.TaskKindApp,
			mockSetup: func(repo *mocks.MockTaskRepository, _ *model.Account, _ *[]model.QuestEvent) {
				repo.On("CompleteTask", mock.Anything, int64(21), model.TaskKindApp, int64(4), now, mock.Anything).
					Return(nil, repository.ErrAlreadyExists)
			},
			expectedError:  ErrAlreadyCompleted,
			expectedPoints: 100,
		},
		{
			name: "Inactive or unknown task",
			kind: model.TaskKindLink,
			mockSetup: func(repo *mocks.MockTaskRepository, _ *model.Account, _ *[]model.QuestEvent) {
				repo.On("CompleteTask", mock.Anything, int64(21), model.TaskKindLink, int64(4), now, mock.Anything).
					Return(nil, repository.ErrNotFound)
			},
			expectedError:  ErrNotFound,
			expectedPoints: 100,
		},
		{
			name: "Credits the reward once",
			kind: model.TaskKindLink,
			mockSetup: func(repo *mocks.MockTaskRepository, acc *model.Account, events *[]model.QuestEvent) {
				repo.On("CompleteTask", mock.Anything, int64(21), model.TaskKindLink, int64(4), now, mock.Anything).
					Return(func(_ context.Context, _ int64, _ model.TaskKind, _ int64, _ time.Time, credit func(*model.Account, int64) ([]model.QuestEvent, error)) (*model.Account, error) {
						produced, err := credit(acc, 750)
						*events = produced
						return acc, err
					})
			},
			expectedPoints: 850,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &model.Account{TelegramID: 21, Points: 100}
			var events []model.QuestEvent
			repo := mocks.NewMockTaskRepository(t)
			tt.mockSetup(repo, acc, &events)

			svc := NewTaskService(repo, fixedPolicy(now), nil)
			got, err := svc.CompleteTask(context.Background(), 21, tt.kind, 4)

			assert.Equal(t, tt.expectedPoints, acc.Points)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, acc, got)
			assert.Equal(t, []model.QuestEvent{{Type: model.QuestCompleteTasks, Delta: 1, At: now}}, events)
		})
	}
}

func TestTaskService_Listing(t *testing.T) {
	repo := mocks.NewMockTaskRepository(t)
	repo.On("ListAppTasks", mock.Anything, int64(21), true).Return([]*model.AppTask{{ID: 1, Completed: true}}, nil)
	repo.On("ListAppTasks", mock.Anything, int64(0), false).Return([]*model.AppTask{{ID: 1}, {ID: 2}}, nil)
	repo.On("ListLinkTasks", mock.Anything, int64(21), true).Return([]*model.LinkTask{}, nil)
	repo.On("ListLinkTasks", mock.Anything, int64(0), false).Return([]*model.LinkTask{{ID: 3}}, nil)

	svc := NewTaskService(repo, DefaultRewardPolicy(), nil)
	ctx := context.Background()

	app, err := svc.ListAppTasks(ctx, 21)
	require.NoError(t, err)
	assert.True(t, app[0].Completed)

	allApp, err := svc.ListAllAppTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, allApp, 2)

	links, err := svc.ListLinkTasks(ctx, 21)
	require.NoError(t, err)
	assert.Empty(t, links)

	allLinks, err := svc.ListAllLinkTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, allLinks, 1)
}

func TestTaskService_Validation(t *testing.T) {
	repo := mocks.NewMockTaskRepository(t)
	repo.On("CreateLinkTask", mock.Anything, mock.MatchedBy(func(task *model.LinkTask) bool {
		return task.Title == "BTC News"
	})).Return(nil)
	repo.On("DeleteTask", mock.Anything, model.TaskKindApp, int64(9)).Return(repository.ErrNotFound)

	svc := NewTaskService(repo, DefaultRewardPolicy(), nil)
	ctx := context.Background()

	assert.ErrorIs(t, svc.CreateAppTask(ctx, &model.AppTask{Title: " "}), ErrInvalidInput)
	assert.ErrorIs(t, svc.CreateAppTask(ctx, &model.AppTask{Title: "x", Points: -1}), ErrInvalidInput)
	assert.ErrorIs(t, svc.CreateLinkTask(ctx, &model.LinkTask{Title: "x"}), ErrInvalidInput)
	assert.ErrorIs(t, svc.UpdateLinkTask(ctx, &model.LinkTask{Title: "x", URL: "  "}), ErrInvalidInput)
	assert.NoError(t, svc.CreateLinkTask(ctx, &model.LinkTask{Title: " BTC News ", URL: "https://t.me/btcnews", Points: 750}))

	assert.ErrorIs(t, svc.DeleteTask(ctx, "video", 9), ErrInvalidInput)
	assert.ErrorIs(t, svc.DeleteTask(ctx, model.TaskKindApp, 9), ErrNotFound)
}
