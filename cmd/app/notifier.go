package main

import (
	"context"
	"sync/atomic"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/service"
)

// withdrawalNotifier forwards to the bot once it is running. Until then
// resolutions are not announced.
type withdrawalNotifier struct {
	target atomic.Pointer[service.WithdrawalNotifier]
}

func newWithdrawalNotifier() *withdrawalNotifier {
	return &withdrawalNotifier{}
}

func (n *withdrawalNotifier) set(target service.WithdrawalNotifier) {
	n.target.Store(&target)
}

func (n *withdrawalNotifier) NotifyWithdrawal(ctx context.Context, w *model.Withdrawal) {
	if target := n.target.Load(); target != nil {
		(*target).NotifyWithdrawal(ctx, w)
	}
}
