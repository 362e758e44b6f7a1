package timesheeterrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"Already clocked in",
		http.StatusConflict,
	)
	ErrNoActiveClockIn = apperror.New(
		apperror.CodeNotFound,
		"No active clock-in found",
		http.StatusNotFound,
	)
	ErrTimeEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Timesheet not found",
		http.StatusNotFound,
	)
	ErrInvalidTimeEntryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid timesheet ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
