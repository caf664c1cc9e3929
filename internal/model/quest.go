package model

import "time"

type QuestType string

const (
	QuestWatchAds      QuestType = "watch_ads"
	QuestInviteFriends QuestType = "invite_friends"
	QuestCompleteTasks QuestType = "complete_tasks"
	QuestDailyBonus    QuestType = "daily_bonus"
)

func (t QuestType) Valid() bool {
	switch t {
	case QuestWatchAds, QuestInviteFriends, QuestCompleteTasks, QuestDailyBonus:
		return true
	}
	return false
}

type Quest struct {
	ID            int64
	Title         string
	Type          QuestType
	Points        int64
	TotalProgress int
	ColorScheme   string
	IsActive      bool
	CreatedAt     time.Time
}

type QuestProgress struct {
	TelegramID      int64
	QuestID         int64
	CurrentProgress int
	Completed       bool
	CompletedAt     *time.Time
	ClaimedAt       *time.Time
}

// Advance moves progress forward by delta, capped at target. It reports whether
// anything changed. Completed flips to true at most once.
func (p *QuestProgress) Advance(target, delta int, at time.Time) bool {
	if p.Completed || delta <= 0 {
		return false
	}

	p.CurrentProgress += delta
	if p.CurrentProgress >= target {
		p.CurrentProgress = target
		p.Completed = true
		completedAt := at
		p.CompletedAt = &completedAt
	}

	return true
}

type AccountQuest struct {
	Quest    Quest
	Progress QuestProgress
}

// QuestEvent is emitted by ledger operations and consumed by the quest tracker
// inside the same transaction.
type QuestEvent struct {
	Type  QuestType
	Delta int
	At    time.Time
}
