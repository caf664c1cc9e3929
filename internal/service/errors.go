package service

import (
	"errors"

	"rewards_miniapp/internal/repository"
)

// mapRepoError converts repository sentinels into the service taxonomy.
// Errors that already belong to the taxonomy pass through unchanged.
func mapRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrAlreadyReferred):
		return ErrAlreadyReferred
	case errors.Is(err, repository.ErrInsufficientBalance):
		return ErrInsufficientBalance
	case errors.Is(err, repository.ErrAlreadyExists), errors.Is(err, repository.ErrInUse):
		return ErrConflict
	case errors.Is(err, repository.ErrQuestNotCompleted):
		return ErrQuestNotCompleted
	case errors.Is(err, repository.ErrQuestAlreadyClaimed):
		return ErrQuestAlreadyClaimed
	}
	return err
}
