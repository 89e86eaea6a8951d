package models

import "time"

// Subscription tiers accepted by the activation endpoint. "free" exists
// only as the lazily-created default and cannot be requested.
const (
	TierFree     = "free"
	TierPremium  = "premium"
	TierLifetime = "lifetime"
)

// UserSubscription defines the model for the 'user_subscriptions' table.
// A UNIQUE KEY on user_id guarantees at most one row per user; status
// checks bootstrap a free row on first sight of a user.
type UserSubscription struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"userId" db:"user_id"`
	Tier      string     `json:"tier" db:"tier"`
	IsActive  bool       `json:"isActive" db:"is_active"`
	StartedAt *time.Time `json:"startedAt,omitempty" db:"started_at"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty" db:"expires_at"` // nil = lifetime / never
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}
