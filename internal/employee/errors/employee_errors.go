package employeeerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"Email is already in use",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role must be one of employee, manager, hr",
		http.StatusBadRequest,
	)
	ErrInvalidWage = apperror.New(
		apperror.CodeInvalidInput,
		"Hourly wage must not be negative",
		http.StatusBadRequest,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Manager not found",
		http.StatusNotFound,
	)
	ErrNotAManager = apperror.New(
		apperror.CodeInvalidInput,
		"Assigned manager must have the manager role",
		http.StatusBadRequest,
	)
	ErrOnlyEmployeesInTeam = apperror.New(
		apperror.CodeInvalidInput,
		"Only employees can be added to a team",
		http.StatusBadRequest,
	)
	ErrAssignedToOtherTeam = apperror.New(
		apperror.CodeConflict,
		"Employee is already assigned to another manager",
		http.StatusConflict,
	)
	ErrNotInTeam = apperror.New(
		apperror.CodeForbidden,
		"Employee is not in your team",
		http.StatusForbidden,
	)
	ErrRoleNotAllowed = apperror.New(
		apperror.CodeForbidden,
		"Managers cannot create hr accounts",
		http.StatusForbidden,
	)
)
