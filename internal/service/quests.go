package service

import (
	"context"
	"fmt"
	"strings"

	"rewards_miniapp/internal/model"
)

type QuestService struct {
	repo     QuestRepository
	policy   RewardPolicy
	notifier AccountNotifier
}

func NewQuestService(repo QuestRepository, policy RewardPolicy, notifier AccountNotifier) *QuestService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &QuestService{
		repo:     repo,
		policy:   policy,
		notifier: notifier,
	}
}

func (s *QuestService) GetQuestsForAccount(ctx context.Context, telegramID int64) ([]*model.AccountQuest, error) {
	quests, err := s.repo.ListQuestsForAccount(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quests: %w", mapRepoError(err))
	}
	return quests, nil
}

// AdvanceQuestProgress records delta units of progress on every active quest
// of questType without touching the balance.
func (s *QuestService) AdvanceQuestProgress(ctx context.Context, telegramID int64, questType model.QuestType, delta int) error {
	if !questType.Valid() {
		return fmt.Errorf("%w: unknown quest type %q", ErrInvalidInput, questType)
	}
	if delta <= 0 {
		return fmt.Errorf("%w: delta must be positive", ErrInvalidInput)
	}

	now := s.policy.now()
	_, err := s.repo.MutateAccount(ctx, telegramID, func(*model.Account) ([]model.QuestEvent, error) {
		return []model.QuestEvent{{Type: questType, Delta: delta, At: now}}, nil
	})
	if err != nil {
		return fmt.Errorf("failed to advance quest progress: %w", mapRepoError(err))
	}
	return nil
}

func (s *QuestService) ClaimQuestReward(ctx context.Context, telegramID, questID int64) (*model.Account, error) {
	acc, _, err := s.repo.ClaimQuestReward(ctx, telegramID, questID, s.policy.now())
	if err != nil {
		return nil, fmt.Errorf("failed to claim quest reward: %w", mapRepoError(err))
	}

	s.notifier.NotifyAccount(acc)
	return acc, nil
}

func (s *QuestService) ListQuests(ctx context.Context) ([]*model.Quest, error) {
	quests, err := s.repo.ListQuests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	return quests, nil
}

func validateQuest(q *model.Quest) error {
	q.Title = strings.TrimSpace(q.Title)
	switch {
	case q.Title == "":
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	case !q.Type.Valid():
		return fmt.Errorf("%w: unknown quest type %q", ErrInvalidInput, q.Type)
	case q.Points < 0:
		return fmt.Errorf("%w: points must not be negative", ErrInvalidInput)
	case q.TotalProgress <= 0:
		return fmt.Errorf("%w: total progress must be positive", ErrInvalidInput)
	}
	if q.ColorScheme == "" {
		q.ColorScheme = "purple"
	}
	return nil
}

func (s *QuestService) CreateQuest(ctx context.Context, q *model.Quest) error {
	if err := validateQuest(q); err != nil {
		return err
	}
	if err := s.repo.CreateQuest(ctx, q); err != nil {
		return fmt.Errorf("failed to create quest: %w", mapRepoError(err))
	}
	return nil
}

func (s *QuestService) UpdateQuest(ctx context.Context, q *model.Quest) error {
	if err := validateQuest(q); err != nil {
		return err
	}
	if err := s.repo.UpdateQuest(ctx, q); err != nil {
		return fmt.Errorf("failed to update quest: %w", mapRepoError(err))
	}
	return nil
}

func (s *QuestService) DeleteQuest(ctx context.Context, questID int64) error {
	if err := s.repo.DeleteQuest(ctx, questID); err != nil {
		return fmt.Errorf("failed to delete quest: %w", mapRepoError(err))
	}
	return nil
}
