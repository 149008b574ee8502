package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/dto"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/model"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/repository"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/schedule"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSettingsRepo struct {
	settings *model.StoreSettings
}

func (r *stubSettingsRepo) Get(_ context.Context) (*model.StoreSettings, error) {
	if r.settings == nil {
		r.settings = service.DefaultSettings()
	}
	return r.settings, nil
}

func (r *stubSettingsRepo) Save(_ context.Context, s *model.StoreSettings) error {
	r.settings = s
	return nil
}

var _ repository.StoreSettingsRepository = (*stubSettingsRepo)(nil)

func validUpdateRequest() dto.UpdateStoreSettingsRequest {
	return dto.UpdateStoreSettingsRequest{
		StoreName:      "Toko Emas Sidomulyo",
		OperatingHours: schedule.Default(),
		AutoSchedule:   true,
		Timezone:       "Asia/Jakarta",
	}
}

// jakartaTime builds a WIB timestamp on the given June 2025 day.
// 2025-06-02 is a Monday.
func jakartaTime(t *testing.T, day, hour, min int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return time.Date(2025, 6, day, hour, min, 0, 0, loc)
}

func TestStatusOpenDuringMorningSession(t *testing.T) {
	svc := service.NewStoreSettingsService(&stubSettingsRepo{})

	status, err := svc.Status(context.Background(), jakartaTime(t, 2, 9, 30))
	require.NoError(t, err)
	assert.True(t, status.IsOpen)
	require.NotNil(t, status.ActiveSession)
	assert.Equal(t, "08:00", status.ActiveSession.Open)
}

func TestStatusClosedBetweenSessions(t *testing.T) {
	svc := service.NewStoreSettingsService(&stubSettingsRepo{})

	// Monday 13:00 falls in the midday break of the default split schedule.
	status, err := svc.Status(context.Background(), jakartaTime(t, 2, 13, 0))
	require.NoError(t, err)
	assert.False(t, status.IsOpen)
	require.NotNil(t, status.NextOpen)
	assert.Equal(t, time.Monday, status.NextOpen.Day)
	assert.Equal(t, "16:00", status.NextOpen.Session.Open)
}

func TestStatusSundayRollsToMonday(t *testing.T) {
	svc := service.NewStoreSettingsService(&stubSettingsRepo{})

	// 2025-06-01 is a Sunday; default schedule closes Sundays entirely.
	status, err := svc.Status(context.Background(), jakartaTime(t, 1, 10, 0))
	require.NoError(t, err)
	assert.False(t, status.IsOpen)
	require.NotNil(t, status.NextOpen)
	assert.Equal(t, time.Monday, status.NextOpen.Day)
	assert.Equal(t, "08:00", status.NextOpen.Session.Open)
}

func TestStatusAutoScheduleOffPinsClosed(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := service.NewStoreSettingsService(repo)

	req := validUpdateRequest()
	req.AutoSchedule = false
	_, err := svc.Update(context.Background(), req)
	require.NoError(t, err)

	status, err := svc.Status(context.Background(), jakartaTime(t, 2, 9, 30))
	require.NoError(t, err)
	assert.False(t, status.IsOpen)
	assert.Nil(t, status.ActiveSession)
	assert.Nil(t, status.NextOpen)
}

func TestStatusEvaluatesInStoreTimezone(t *testing.T) {
	svc := service.NewStoreSettingsService(&stubSettingsRepo{})

	// Monday 02:30 UTC = Monday 09:30 WIB — open in Jakarta even though
	// the raw clock reads deep night.
	at := time.Date(2025, 6, 2, 2, 30, 0, 0, time.UTC)
	status, err := svc.Status(context.Background(), at)
	require.NoError(t, err)
	assert.True(t, status.IsOpen)
}

func TestUpdateRejectsInvalidSchedule(t *testing.T) {
	svc := service.NewStoreSettingsService(&stubSettingsRepo{})

	req := validUpdateRequest()
	req.OperatingHours.Monday = []schedule.Session{{Open: "17:00", Close: "09:00"}}
	_, err := svc.Update(context.Background(), req)

	var vErr *service.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestUpdateRejectsUnknownTimezone(t *testing.T) {
	svc := service.NewStoreSettingsService(&stubSettingsRepo{})

	req := validUpdateRequest()
	req.Timezone = "Mars/Olympus"
	_, err := svc.Update(context.Background(), req)

	var vErr *service.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestUpdateReplacesAggregateWholesale(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := service.NewStoreSettingsService(repo)

	req := validUpdateRequest()
	req.Description = "Perhiasan emas sejak 1998"
	req.Mission = []string{"Melayani dengan jujur"}
	resp, err := svc.Update(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Toko Emas Sidomulyo", resp.StoreName)
	assert.Equal(t, []string{"Melayani dengan jujur"}, resp.Mission)

	// A second read reflects the replacement, not the defaults.
	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Perhiasan emas sejak 1998", got.Description)
}
