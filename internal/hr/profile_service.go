package hr

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/verahq/vera-backend/pkg/logger"
)

const (
	// FallbackLeaveBalance is served when no relational store is configured
	// or the profile is unknown.
	FallbackLeaveBalance = 12

	leaveBalanceKeyFormat = "leave_balance:%s"
	leaveBalanceTTL       = 5 * time.Minute
)

// Data sources reported alongside profile responses.
const (
	SourceMySQL    = "mysql"
	SourceCache    = "cache"
	SourceFallback = "fallback"
)

// ProfileService answers the self-service lookups the chat assistant routes:
// leave balance, address updates, and promotion review requests. Both
// repositories and the cache are optional; missing backends degrade to
// static fallback responses rather than errors.
type ProfileService struct {
	profiles   ProfileRepo
	promotions PromotionRepo
	cache      *redis.Client
	log        *logger.Logger
}

// NewProfileService creates the profile service. profiles, promotions, and
// cache may each be nil.
func NewProfileService(profiles ProfileRepo, promotions PromotionRepo, cache *redis.Client, log *logger.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, promotions: promotions, cache: cache, log: log}
}

// LeaveBalance returns the remaining leave days for an employee along with
// the source the value came from. Lookup failures degrade to the fallback
// balance; they are logged, never surfaced.
func (s *ProfileService) LeaveBalance(ctx context.Context, email string) (int, string) {
	key := fmt.Sprintf(leaveBalanceKeyFormat, email)
	if s.cache != nil {
		if balance, err := s.cache.Get(ctx, key).Int(); err == nil {
			return balance, SourceCache
		} else if !errors.Is(err, redis.Nil) {
			s.log.WithError(err).Warn("leave balance cache read failed")
		}
	}

	if s.profiles == nil {
		return FallbackLeaveBalance, SourceFallback
	}

	balance, err := s.profiles.LeaveBalance(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return FallbackLeaveBalance, SourceFallback
	}
	if err != nil {
		s.log.WithError(err).Warn("leave balance lookup failed")
		return FallbackLeaveBalance, SourceFallback
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, balance, leaveBalanceTTL).Err(); err != nil {
			s.log.WithError(err).Warn("leave balance cache write failed")
		}
	}
	return balance, SourceMySQL
}

// UpdateAddress persists a new address for the profile. Without a relational
// store the update is acknowledged but not stored, mirroring the degraded
// mode of the rest of the profile flows.
func (s *ProfileService) UpdateAddress(ctx context.Context, email string, address Address) (string, string, error) {
	if s.profiles == nil {
		return "ok", SourceFallback, nil
	}

	err := s.profiles.UpdateAddress(ctx, email, address)
	if errors.Is(err, ErrNotFound) {
		// No profile row yet; the update is a no-op, not a failure.
		return "updated", SourceMySQL, nil
	}
	if err != nil {
		return "", "", fmt.Errorf("address update failed: %w", err)
	}
	return "updated", SourceMySQL, nil
}

// RequestPromotionReview records a pending review request for the employee.
func (s *ProfileService) RequestPromotionReview(ctx context.Context, email string) (string, string, error) {
	if s.promotions == nil {
		return "pending_review", SourceFallback, nil
	}

	status, err := s.promotions.Upsert(ctx, email)
	if err != nil {
		return "", "", fmt.Errorf("promotion request failed: %w", err)
	}
	return status, SourceMySQL, nil
}
