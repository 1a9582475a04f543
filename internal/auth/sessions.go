package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/germanygsg/medrec/internal/config"
	"github.com/germanygsg/medrec/internal/models"
)

// Sessions creates, validates and refreshes session rows per the
// configured session policy.
type Sessions struct {
	db     *gorm.DB
	policy config.SessionPolicy
	now    func() time.Time
}

func NewSessions(db *gorm.DB, policy config.SessionPolicy) *Sessions {
	return &Sessions{db: db, policy: policy, now: time.Now}
}

func (s *Sessions) Create(ctx context.Context, userID, ip, userAgent string) (*models.Session, error) {
	now := s.now()

	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Token:     uuid.NewString(),
		ExpiresAt: now.Add(s.policy.Lifetime),
		IPAddress: ip,
		UserAgent: userAgent,
	}

	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// Validate loads the session and rejects expired or missing rows. A
// session untouched for longer than the refresh age gets its expiry
// pushed out (sliding refresh); the write is best effort.
func (s *Sessions) Validate(ctx context.Context, sessionID string) (*models.Session, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).
		Where("id = ?", sessionID).
		First(&session).Error; err != nil {
		return nil, ErrInvalidToken
	}

	now := s.now()
	if now.After(session.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	if now.Sub(session.UpdatedAt) > s.policy.RefreshAge {
		session.ExpiresAt = now.Add(s.policy.Lifetime)
		s.db.WithContext(ctx).
			Model(&models.Session{}).
			Where("id = ?", session.ID).
			Updates(map[string]any{"expires_at": session.ExpiresAt, "updated_at": now})
	}

	return &session, nil
}

func (s *Sessions) Revoke(ctx context.Context, sessionID string) error {
	return s.db.WithContext(ctx).
		Where("id = ?", sessionID).
		Delete(&models.Session{}).Error
}
