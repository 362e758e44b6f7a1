// Package approval holds the decision rules shared by timesheets and leave
// requests: the pending -> approved | rejected state machine and who may
// decide for whom.
package approval

import (
	"github.com/google/uuid"

	"go-workforce/internal/shared/apperror"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleHR       = "hr"
)

var (
	ErrNotAuthorized    = apperror.Forbidden("Not authorized to decide this request")
	ErrAlreadyDecided   = apperror.Conflict("Request has already been decided")
	ErrApproverNotFound = apperror.NotFound("Approver not found")
	ErrSubjectNotFound  = apperror.NotFound("Employee not found")
)

// Party is the slice of an employee record the rules look at.
type Party struct {
	ID        uuid.UUID
	Role      string
	ManagerID *uuid.UUID
}

// Authorize: hr decides for everyone, a manager only for direct reports,
// anyone else for no one.
func Authorize(approver, subject Party) error {
	switch approver.Role {
	case RoleHR:
		return nil
	case RoleManager:
		if subject.ManagerID != nil && *subject.ManagerID == approver.ID {
			return nil
		}
	}
	return ErrNotAuthorized
}

// Next returns the status after a decision. Only pending records can be
// decided; approved and rejected are terminal.
func Next(current string, approved bool) (string, error) {
	if current != StatusPending {
		return "", ErrAlreadyDecided
	}
	if approved {
		return StatusApproved, nil
	}
	return StatusRejected, nil
}

// Decide combines Authorize and Next in the order callers need: an
// unauthorized approver learns nothing about the record's state.
func Decide(approver, subject Party, current string, approved bool) (string, error) {
	if err := Authorize(approver, subject); err != nil {
		return "", err
	}
	return Next(current, approved)
}

func IsValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleManager, RoleHR:
		return true
	}
	return false
}
