package stats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	domain "github.com/divinasnails/salon-manager/internal/domain/appointment"
	"github.com/divinasnails/salon-manager/internal/dto"
	"github.com/divinasnails/salon-manager/internal/models"
)

const (
	cacheKey = "salon:stats"
	cacheTTL = 60 * time.Second
)

// Service computes the dashboard counters. The Redis client is
// optional; without it every call hits the database. The cache never
// sits in front of the CRUD endpoints, only this read-only summary.
type Service struct {
	db  *gorm.DB
	rdb *redis.Client
	loc *time.Location
}

func New(db *gorm.DB, rdb *redis.Client, loc *time.Location) *Service {
	return &Service{db: db, rdb: rdb, loc: loc}
}

func (s *Service) Get(ctx context.Context) (dto.StatsDTO, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached dto.StatsDTO
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	out, err := s.compute(ctx)
	if err != nil {
		return dto.StatsDTO{}, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(out); err == nil {
			s.rdb.Set(ctx, cacheKey, raw, cacheTTL)
		}
	}

	return out, nil
}

func (s *Service) compute(ctx context.Context) (dto.StatsDTO, error) {
	var out dto.StatsDTO

	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Customer{}).Count(&out.TotalCustomers).Error; err != nil {
		return out, err
	}
	if err := db.Model(&models.Employee{}).Count(&out.TotalEmployees).Error; err != nil {
		return out, err
	}
	if err := db.Model(&models.Service{}).
		Where("is_active = ?", true).
		Count(&out.ActiveServices).Error; err != nil {
		return out, err
	}

	now := time.Now().In(s.loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	today := db.Model(&models.Appointment{}).
		Where("date >= ? AND date < ?", dayStart, dayEnd)

	if err := today.Count(&out.AppointmentsToday).Error; err != nil {
		return out, err
	}

	byStatus := func(status domain.Status, dst *int64) error {
		return db.Model(&models.Appointment{}).
			Where("date >= ? AND date < ? AND status = ?", dayStart, dayEnd, string(status)).
			Count(dst).Error
	}

	if err := byStatus(domain.StatusScheduled, &out.ScheduledToday); err != nil {
		return out, err
	}
	if err := byStatus(domain.StatusCompleted, &out.CompletedToday); err != nil {
		return out, err
	}
	if err := byStatus(domain.StatusCancelled, &out.CancelledToday); err != nil {
		return out, err
	}
	if err := byStatus(domain.StatusNoShow, &out.NoShowToday); err != nil {
		return out, err
	}

	if err := db.Model(&models.Appointment{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("date >= ? AND date < ? AND status = ?",
			dayStart, dayEnd, string(domain.StatusCompleted)).
		Scan(&out.RevenueToday).Error; err != nil {
		return out, err
	}

	return out, nil
}
