package timesheet

import (
	"errors"

	timesheeterrors "go-workforce/internal/timesheet/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return timesheeterrors.ErrTimeEntryNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_time_entries_open_session" {
		return timesheeterrors.ErrAlreadyClockedIn
	}

	return err
}
