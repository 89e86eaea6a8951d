package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-app/halcyon-api/internal/models"
	"go.uber.org/zap"
)

//
// --- Subscription Handlers ---
//
// Every authenticated user has exactly one subscription row, guaranteed
// by the UNIQUE KEY on user_id. The status check bootstraps a free row
// the first time it sees a user, and expiry is evaluated lazily on read;
// there is no background sweep.
//

const subscriptionColumns = "id, user_id, tier, is_active, started_at, expires_at, created_at, updated_at"

func (h *Handlers) fetchSubscription(userID int64) (*models.UserSubscription, error) {
	var sub models.UserSubscription
	err := h.DB.QueryRow(
		"SELECT "+subscriptionColumns+" FROM user_subscriptions WHERE user_id = ?", userID).
		Scan(&sub.ID, &sub.UserID, &sub.Tier, &sub.IsActive,
			&sub.StartedAt, &sub.ExpiresAt, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetSubscriptionStatus is the handler for GET /api/subscription/status
func (h *Handlers) GetSubscriptionStatus(c *gin.Context) {
	userID_raw, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	userID := userID_raw.(int64)

	// Lazy bootstrap: a no-op on conflict, an inactive free row otherwise.
	now := time.Now()
	_, err := h.DB.Exec(`
		INSERT INTO user_subscriptions (user_id, tier, is_active, created_at, updated_at)
		VALUES (?, ?, 0, ?, ?)
		ON DUPLICATE KEY UPDATE id = id`,
		userID, models.TierFree, now, now)
	if err != nil {
		h.Log.Error("subscription bootstrap failed", zap.Error(err), zap.Int64("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return
	}

	sub, err := h.fetchSubscription(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	// Lazy expiry: reading status can flip the row inactive.
	if sub.IsActive && sub.ExpiresAt != nil && sub.ExpiresAt.Before(h.now()) {
		_, err := h.DB.Exec(
			"UPDATE user_subscriptions SET is_active = 0, updated_at = ? WHERE id = ?",
			time.Now(), sub.ID)
		if err != nil {
			h.Log.Error("subscription expiry update failed", zap.Error(err), zap.Int64("userID", userID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscription"})
			return
		}
		sub.IsActive = false
		h.Log.Info("subscription expired", zap.Int64("userID", userID), zap.String("tier", sub.Tier))
	}

	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

// ActivateSubscriptionInput defines the JSON input for activation
type ActivateSubscriptionInput struct {
	Tier string `json:"tier" binding:"required"`
}

// ActivateSubscription is the handler for POST /api/subscription/activate
// Premium runs 30 days from now; lifetime never expires. The write is an
// upsert keyed on user_id, so activation works whether or not the status
// check ever bootstrapped a row.
func (h *Handlers) ActivateSubscription(c *gin.Context) {
	userID_raw, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	userID := userID_raw.(int64)

	var input ActivateSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Tier != models.TierPremium && input.Tier != models.TierLifetime {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tier must be premium or lifetime"})
		return
	}

	now := h.now()
	var expiresAt *time.Time
	if input.Tier == models.TierPremium {
		e := now.AddDate(0, 0, 30)
		expiresAt = &e
	}

	_, err := h.DB.Exec(`
		INSERT INTO user_subscriptions
		(user_id, tier, is_active, started_at, expires_at, created_at, updated_at)
		VALUES (?, ?, 1, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			tier = VALUES(tier),
			is_active = 1,
			started_at = VALUES(started_at),
			expires_at = VALUES(expires_at),
			updated_at = VALUES(updated_at)`,
		userID, input.Tier, now, expiresAt, now, now)
	if err != nil {
		h.Log.Error("subscription activation failed", zap.Error(err), zap.Int64("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate subscription"})
		return
	}

	sub, err := h.fetchSubscription(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	h.Log.Info("subscription activated", zap.Int64("userID", userID), zap.String("tier", input.Tier))
	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}
