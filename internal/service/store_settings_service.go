package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/dto"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/model"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/repository"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/schedule"

	"gorm.io/datatypes"
)

// StoreSettingsService owns the store configuration aggregate, including
// the weekly operating schedule, and answers the public open/closed query.
type StoreSettingsService interface {
	Get(ctx context.Context) (*dto.StoreSettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateStoreSettingsRequest) (*dto.StoreSettingsResponse, error)
	// Status evaluates the schedule at the given moment, in the store's
	// configured timezone.
	Status(ctx context.Context, at time.Time) (*schedule.Status, error)
}

type storeSettingsService struct {
	repo repository.StoreSettingsRepository
}

func NewStoreSettingsService(repo repository.StoreSettingsRepository) StoreSettingsService {
	return &storeSettingsService{repo: repo}
}

func (s *storeSettingsService) Get(ctx context.Context) (*dto.StoreSettingsResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return settingsToResponse(settings)
}

// Update validates the schedule and replaces the aggregate wholesale; no
// prior version is kept.
func (s *storeSettingsService) Update(ctx context.Context, req dto.UpdateStoreSettingsRequest) (*dto.StoreSettingsResponse, error) {
	if err := req.OperatingHours.Validate(); err != nil {
		return nil, newValidation("jadwal tidak valid: %v", err)
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	hours, err := json.Marshal(req.OperatingHours)
	if err != nil {
		return nil, err
	}
	mission, err := json.Marshal(req.Mission)
	if err != nil {
		return nil, err
	}

	settings.StoreName = req.StoreName
	settings.Description = req.Description
	settings.Vision = req.Vision
	settings.Mission = datatypes.JSON(mission)
	settings.OperatingHours = datatypes.JSON(hours)
	settings.Address = req.Address
	settings.Phone = req.Phone
	settings.Email = req.Email
	settings.WhatsApp = req.WhatsApp
	settings.Instagram = req.Instagram
	settings.Facebook = req.Facebook
	settings.TikTok = req.TikTok
	settings.YouTube = req.YouTube
	settings.AutoSchedule = req.AutoSchedule
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return nil, newValidation("timezone %q tidak dikenal", req.Timezone)
		}
		settings.Timezone = req.Timezone
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settingsToResponse(settings)
}

func (s *storeSettingsService) Status(ctx context.Context, at time.Time) (*schedule.Status, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	// AutoSchedule off means the badge is pinned closed regardless of hours.
	if !settings.AutoSchedule {
		return &schedule.Status{}, nil
	}

	var weekly schedule.Weekly
	if err := json.Unmarshal(settings.OperatingHours, &weekly); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		loc = time.UTC
	}
	status := weekly.Evaluate(at.In(loc))
	return &status, nil
}

// DefaultSettings is the singleton row created on first access, mirroring
// a newly opened store.
func DefaultSettings() *model.StoreSettings {
	hours, _ := json.Marshal(schedule.Default())
	mission, _ := json.Marshal([]string{
		"Menyediakan perhiasan emas berkualitas tinggi dengan harga yang kompetitif",
		"Memberikan pelayanan prima dengan konsultasi produk yang profesional",
		"Membangun kepercayaan pelanggan melalui transparansi dan integritas",
	})
	return &model.StoreSettings{
		StoreName:      "Toko Emasku",
		Description:    "Perhiasan emas berkualitas untuk momen spesial Anda",
		Mission:        datatypes.JSON(mission),
		OperatingHours: datatypes.JSON(hours),
		AutoSchedule:   true,
		Currency:       "IDR",
		Timezone:       "Asia/Jakarta",
	}
}

func settingsToResponse(m *model.StoreSettings) (*dto.StoreSettingsResponse, error) {
	var weekly schedule.Weekly
	if len(m.OperatingHours) > 0 {
		if err := json.Unmarshal(m.OperatingHours, &weekly); err != nil {
			return nil, err
		}
	}
	var mission []string
	if len(m.Mission) > 0 {
		if err := json.Unmarshal(m.Mission, &mission); err != nil {
			return nil, err
		}
	}
	return &dto.StoreSettingsResponse{
		StoreName:      m.StoreName,
		Description:    m.Description,
		Vision:         m.Vision,
		Mission:        mission,
		OperatingHours: weekly,
		Address:        m.Address,
		Phone:          m.Phone,
		Email:          m.Email,
		WhatsApp:       m.WhatsApp,
		Instagram:      m.Instagram,
		Facebook:       m.Facebook,
		TikTok:         m.TikTok,
		YouTube:        m.YouTube,
		AutoSchedule:   m.AutoSchedule,
		Currency:       m.Currency,
		Timezone:       m.Timezone,
		UpdatedAt:      m.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}
