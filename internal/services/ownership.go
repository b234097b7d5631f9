package services

import "meetingplanner/internal/domain"

// requireOwner is the single ownership check used by every mutating operation.
func requireOwner(ownerID, userID string) error {
	if ownerID != userID {
		return domain.ErrForbidden
	}
	return nil
}
