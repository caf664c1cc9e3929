package model

import "time"

type Referral struct {
	ID               int64
	ReferrerID       int64
	ReferredID       int64
	ReferredUsername string
	PointsEarned     int64
	CreatedAt        time.Time
	JoinedLabel      string
}

type ReferralSummary struct {
	Referrals   []*Referral
	Count       int
	TotalEarned int64
}
