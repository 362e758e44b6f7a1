package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-workforce/internal/leave"
	"go-workforce/internal/payroll"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/period"
	"go-workforce/internal/timesheet"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const StatsCacheKey = "dashboard:stats"

type PendingLeaves interface {
	Pending(ctx context.Context) ([]leave.LeaveResponse, error)
}

type PendingTimesheets interface {
	Pending(ctx context.Context) ([]timesheet.TimeEntryResponse, error)
}

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	GetStats(ctx context.Context) (StatsResponse, error)
	InvalidateStats(ctx context.Context) error
	PendingRequests(ctx context.Context) (PendingRequestsResponse, error)
}

type service struct {
	repo       Repository
	leaves     PendingLeaves
	timesheets PendingTimesheets
	rdb        *redis.Client
	ttl        time.Duration
	sf         *singleflight.Group
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(
	repo Repository,
	leaves PendingLeaves,
	timesheets PendingTimesheets,
	rdb *redis.Client,
	ttl time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		repo:       repo,
		leaves:     leaves,
		timesheets: timesheets,
		rdb:        rdb,
		ttl:        ttl,
		sf:         &singleflight.Group{},
		now:        func() time.Time { return time.Now().UTC() },
		logger:     l,
	}
}

func (s *service) GetStats(ctx context.Context) (StatsResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, StatsCacheKey).Bytes()
		if err == nil {
			var resp StatsResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				log.Debug("dashboard stats cache hit")
				return resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warn("dashboard stats cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(StatsCacheKey, func() (interface{}, error) {
		resp, err := s.computeStats(ctx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, StatsCacheKey, data, s.ttl).Err(); err != nil {
					log.Warn("dashboard stats cache write failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		log.Error("compute dashboard stats failed", zap.Error(err))
		return StatsResponse{}, err
	}

	return v.(StatsResponse), nil
}

func (s *service) computeStats(ctx context.Context) (StatsResponse, error) {
	current := period.Of(s.now())

	employees, err := s.repo.CountEmployees(ctx)
	if err != nil {
		return StatsResponse{}, err
	}
	pendingLeaves, err := s.repo.CountPendingLeaves(ctx)
	if err != nil {
		return StatsResponse{}, err
	}
	pendingTimesheets, err := s.repo.CountPendingTimesheets(ctx)
	if err != nil {
		return StatsResponse{}, err
	}

	total, err := s.repo.SumPayroll(ctx, current.String())
	if err != nil {
		return StatsResponse{}, err
	}
	estimated := false
	if total.IsZero() {
		total, err = s.estimatePayroll(ctx, current)
		if err != nil {
			return StatsResponse{}, err
		}
		estimated = true
	}

	return StatsResponse{
		TotalEmployees:  employees,
		PendingRequests: pendingLeaves + pendingTimesheets,
		TotalPayroll:    total.StringFixed(2),
		ActiveReports:   0,
		Period:          current.String(),
		Estimated:       estimated,
	}, nil
}

// estimatePayroll prices approved hours of the period as if payroll ran
// today. Salaried employees (wage 0) contribute nothing. Only the final sum
// is rounded.
func (s *service) estimatePayroll(ctx context.Context, p period.Period) (decimal.Decimal, error) {
	rows, err := s.repo.ApprovedHoursByEmployee(ctx, p.Start(), p.LastDay())
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, row := range rows {
		if !row.HourlyWage.IsPositive() {
			continue
		}
		total = total.Add(payroll.GrossPay(row.RegularHours, row.OvertimeHours, row.HourlyWage))
	}
	return total.Round(2), nil
}

func (s *service) InvalidateStats(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, StatsCacheKey).Err()
}

func (s *service) PendingRequests(ctx context.Context) (PendingRequestsResponse, error) {
	leaves, err := s.leaves.Pending(ctx)
	if err != nil {
		return PendingRequestsResponse{}, err
	}
	timesheets, err := s.timesheets.Pending(ctx)
	if err != nil {
		return PendingRequestsResponse{}, err
	}
	return PendingRequestsResponse{Leaves: leaves, Timesheets: timesheets}, nil
}
