package app

import (
	"context"
	"errors"

	"weighin/internal/domain"
)

// AdminService exposes the user-management operations behind the admin view.
type AdminService struct {
	users    domain.UserRepository
	activity domain.ActivityRepository
}

// NewAdminService creates an AdminService backed by the given repositories.
func NewAdminService(users domain.UserRepository, activity domain.ActivityRepository) *AdminService {
	return &AdminService{users: users, activity: activity}
}

// ListUsers returns all users with their entry counts.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	return s.users.List(ctx)
}

// DeleteUser removes a user and everything they own. Admins cannot delete
// themselves.
func (s *AdminService) DeleteUser(ctx context.Context, adminID, userID int64) error {
	if adminID == userID {
		return errors.New("cannot delete your own account")
	}
	return s.users.Delete(ctx, userID)
}

// RecentActivity returns the newest activity log entries up to limit.
func (s *AdminService) RecentActivity(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	return s.activity.ListRecentActivity(ctx, limit)
}
