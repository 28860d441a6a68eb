package activity

import (
	"time"

	activityRepo "github.com/awalle000/Fadila-sales-system/database/repository/activity"
	"github.com/awalle000/Fadila-sales-system/models"
	"github.com/awalle000/Fadila-sales-system/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ActivityService is the audit sink. Record and RecordLogin are
// best-effort: a failed audit write is logged but never propagated, so
// it cannot roll back or fail the operation being audited.
type ActivityService interface {
	Record(actor models.Actor, action, details, ip string)
	RecordLogin(user *models.User, ip, userAgent string)
	Activities(limit int64) ([]models.ActivityLog, error)
	Logins(limit int64) ([]models.LoginLog, error)
}

// DefaultActivityService implements ActivityService.
type DefaultActivityService struct {
	Repo activityRepo.ActivityRepository
}

// Record writes one audit entry for a mutation.
func (s *DefaultActivityService) Record(actor models.Actor, action, details, ip string) {
	entry := &models.ActivityLog{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		UserName:  actor.Name,
		Action:    action,
		Details:   details,
		IPAddress: ip,
	}
	if err := s.Repo.CreateActivity(entry); err != nil {
		utils.GetLogger().Warn("Failed to write activity log",
			zap.String("action", action), zap.Error(err))
	}
}

// RecordLogin writes one sign-in entry.
func (s *DefaultActivityService) RecordLogin(user *models.User, ip, userAgent string) {
	entry := &models.LoginLog{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserName:  user.Name,
		LoginTime: time.Now(),
		IPAddress: ip,
		UserAgent: userAgent,
	}
	if err := s.Repo.CreateLogin(entry); err != nil {
		utils.GetLogger().Warn("Failed to write login log",
			zap.String("userId", user.ID), zap.Error(err))
	}
}

// Activities returns the most recent audit entries.
func (s *DefaultActivityService) Activities(limit int64) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.Repo.GetActivities(limit)
}

// Logins returns the most recent sign-in entries.
func (s *DefaultActivityService) Logins(limit int64) ([]models.LoginLog, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.Repo.GetLogins(limit)
}
