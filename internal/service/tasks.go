package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rewards_miniapp/internal/model"
)

type TaskService struct {
	repo     TaskRepository
	policy   RewardPolicy
	notifier AccountNotifier
}

func NewTaskService(repo TaskRepository, policy RewardPolicy, notifier AccountNotifier) *TaskService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &TaskService{
		repo:     repo,
		policy:   policy,
		notifier: notifier,
	}
}

func (s *TaskService) ListAppTasks(ctx context.Context, telegramID int64) ([]*model.AppTask, error) {
	tasks, err := s.repo.ListAppTasks(ctx, telegramID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list app tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) ListLinkTasks(ctx context.Context, telegramID int64) ([]*model.LinkTask, error) {
	tasks, err := s.repo.ListLinkTasks(ctx, telegramID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list link tasks: %w", err)
	}
	return tasks, nil
}

// CompleteTask credits the task reward once per account and advances the
// complete_tasks quests.
func (s *TaskService) CompleteTask(ctx context.Context, telegramID int64, kind model.TaskKind, taskID int64) (*model.Account, error) {
	if kind != model.TaskKindApp && kind != model.TaskKindLink {
		return nil, fmt.Errorf("%w: unknown task kind %q", ErrInvalidInput, kind)
	}

	now := s.policy.now()
	acc, err := s.repo.CompleteTask(ctx, telegramID, kind, taskID, now, func(a *model.Account, reward int64) ([]model.QuestEvent, error) {
		a.Points += reward
		return []model.QuestEvent{{Type: model.QuestCompleteTasks, Delta: 1, At: now}}, nil
	})
	if err != nil {
		err = mapRepoError(err)
		if errors.Is(err, ErrConflict) {
			return nil, ErrAlreadyCompleted
		}
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	s.notifier.NotifyAccount(acc)
	return acc, nil
}

func (s *TaskService) ListAllAppTasks(ctx context.Context) ([]*model.AppTask, error) {
	tasks, err := s.repo.ListAppTasks(ctx, 0, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list app tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) ListAllLinkTasks(ctx context.Context) ([]*model.LinkTask, error) {
	tasks, err := s.repo.ListLinkTasks(ctx, 0, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list link tasks: %w", err)
	}
	return tasks, nil
}

func validateTask(title *string, points int64) error {
	*title = strings.TrimSpace(*title)
	if *title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if points < 0 {
		return fmt.Errorf("%w: points must not be negative", ErrInvalidInput)
	}
	return nil
}

func (s *TaskService) CreateAppTask(ctx context.Context, t *model.AppTask) error {
	if err := validateTask(&t.Title, t.Points); err != nil {
		return err
	}
	if err := s.repo.CreateAppTask(ctx, t); err != nil {
		return fmt.Errorf("failed to create app task: %w", mapRepoError(err))
	}
	return nil
}

func (s *TaskService) UpdateAppTask(ctx context.Context, t *model.AppTask) error {
	if err := validateTask(&t.Title, t.Points); err != nil {
		return err
	}
	if err := s.repo.UpdateAppTask(ctx, t); err != nil {
		return fmt.Errorf("failed to update app task: %w", mapRepoError(err))
	}
	return nil
}

func (s *TaskService) CreateLinkTask(ctx context.Context, t *model.LinkTask) error {
	if err := validateTask(&t.Title, t.Points); err != nil {
		return err
	}
	if strings.TrimSpace(t.URL) == "" {
		return fmt.Errorf("%w: url is required", ErrInvalidInput)
	}
	if err := s.repo.CreateLinkTask(ctx, t); err != nil {
		return fmt.Errorf("failed to create link task: %w", mapRepoError(err))
	}
	return nil
}

func (s *TaskService) UpdateLinkTask(ctx context.Context, t *model.LinkTask) error {
	if err := validateTask(&t.Title, t.Points); err != nil {
		return err
	}
	if strings.TrimSpace(t.URL) == "" {
		return fmt.Errorf("%w: url is required", ErrInvalidInput)
	}
	if err := s.repo.UpdateLinkTask(ctx, t); err != nil {
		return fmt.Errorf("failed to update link task: %w", mapRepoError(err))
	}
	return nil
}

func (s *TaskService) DeleteTask(ctx context.Context, kind model.TaskKind, taskID int64) error {
	if kind != model.TaskKindApp && kind != model.TaskKindLink {
		return fmt.Errorf("%w: unknown task kind %q", ErrInvalidInput, kind)
	}
	if err := s.repo.DeleteTask(ctx, kind, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", mapRepoError(err))
	}
	return nil
}
