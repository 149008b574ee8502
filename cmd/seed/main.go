package main

// Seeds the minimum data a fresh deployment needs: the admin account, the
// three gold price codes, and the store settings singleton. Safe to run
// repeatedly — existing rows are left untouched.

import (
	"context"
	"os"
	"time"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/config"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/infra"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/model"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/repository"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seedAdmin(ctx, db)
	seedGoldPrices(ctx, db)
	seedStoreSettings(ctx, db)

	log.Info().Msg("seed selesai")
}

func seedAdmin(ctx context.Context, db *gorm.DB) {
	username := envOr("ADMIN_USERNAME", "AdminSM")
	password := envOr("ADMIN_PASSWORD", "")
	if password == "" {
		log.Warn().Msg("ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	userRepo := repository.NewUserRepository(db)
	if _, err := userRepo.FindByUsername(ctx, username); err == nil {
		log.Info().Str("username", username).Msg("admin already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash admin password")
	}

	admin := &model.User{
		Username:     username,
		Nama:         "Administrator",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		Active:       true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("failed to create admin")
	}
	log.Info().Str("username", username).Msg("admin created; ganti password setelah login pertama")
}

func seedGoldPrices(ctx context.Context, db *gorm.DB) {
	priceRepo := repository.NewGoldPriceRepository(db)

	prices := []model.GoldPrice{
		{Code: "XX", BuyPrice: decimal.NewFromInt(920000), SellPrice: decimal.NewFromInt(850000), Order: 1},
		{Code: "X", BuyPrice: decimal.NewFromInt(880000), SellPrice: decimal.NewFromInt(820000), Order: 2},
		{Code: "+6", BuyPrice: decimal.NewFromInt(845000), SellPrice: decimal.NewFromInt(795000), Order: 3},
	}

	for i := range prices {
		if _, err := priceRepo.FindByCode(ctx, prices[i].Code); err == nil {
			log.Info().Str("code", prices[i].Code).Msg("gold price already exists")
			continue
		}
		if err := priceRepo.Create(ctx, &prices[i]); err != nil {
			log.Fatal().Err(err).Str("code", prices[i].Code).Msg("failed to seed gold price")
		}
		log.Info().
			Str("code", prices[i].Code).
			Str("buy", prices[i].BuyPrice.String()).
			Str("sell", prices[i].SellPrice.String()).
			Msg("gold price seeded")
	}
}

func seedStoreSettings(ctx context.Context, db *gorm.DB) {
	settingsRepo := repository.NewStoreSettingsRepository(db, service.DefaultSettings)
	// Get creates the defaults row on first access.
	if _, err := settingsRepo.Get(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed store settings")
	}
	log.Info().Msg("store settings ready")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
