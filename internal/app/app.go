package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pilgrimlabs/pilgrim/internal/cache"
	"github.com/pilgrimlabs/pilgrim/internal/config"
	"github.com/pilgrimlabs/pilgrim/internal/db"
	"github.com/pilgrimlabs/pilgrim/internal/repository"
	"github.com/pilgrimlabs/pilgrim/internal/service"
)

type App struct {
	Cfg                *config.Config
	DB                 *sqlx.DB
	ProfileCache       *cache.ProfileCache
	AuthService        *service.AuthService
	UserService        *service.UserService
	ProgressionService *service.ProgressionService
	CheckInService     *service.CheckInService
	GoalService        *service.GoalService
	CharacterService   *service.CharacterService
	ChestService       *service.ChestService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	checkInRepository := repository.NewCheckInRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	characterRepository := repository.NewCharacterRepository(database)
	chestClaimRepository := repository.NewChestClaimRepository(database)

	// Warm-start profile cache (optional)
	profileCache := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// Services
	authService := service.NewAuthService(userRepository, cfg.EnergyDefault, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepository)
	progressionService := service.NewProgressionService(userRepository, cfg.EnergyDefault)
	checkInService := service.NewCheckInService(checkInRepository)
	goalService := service.NewGoalService(goalRepository)
	characterService := service.NewCharacterService(characterRepository)
	chestService := service.NewChestService(chestClaimRepository)

	return &App{
		Cfg:                cfg,
		DB:                 database,
		ProfileCache:       profileCache,
		AuthService:        authService,
		UserService:        userService,
		ProgressionService: progressionService,
		CheckInService:     checkInService,
		GoalService:        goalService,
		CharacterService:   characterService,
		ChestService:       chestService,
	}, nil
}

func (a *App) Close() error {
	if a.ProfileCache != nil {
		_ = a.ProfileCache.Close()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
