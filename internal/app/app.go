package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/medtrack/medtrack/internal/config"
	"github.com/medtrack/medtrack/internal/db"
	"github.com/medtrack/medtrack/internal/repository"
	"github.com/medtrack/medtrack/internal/service"
	"github.com/medtrack/medtrack/internal/storage"
)

type App struct {
	Cfg                *config.Config
	DB                 *sqlx.DB
	AuthService        *service.AuthService
	ProfileService     *service.ProfileService
	AppointmentService *service.AppointmentService
	EmailService       *service.EmailService
	FileService        *service.FileService
	LegalService       *service.LegalService
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
	profileRepository := repository.NewProfileRepository(database)
	tokenRepository := repository.NewTokenRepository(database)
	appointmentRepository := repository.NewAppointmentRepository(database)
	fileRepository := repository.NewFileRepository(database)

	// Storage
	fileStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	emailService := service.NewEmailService(cfg)
	fileService := service.NewFileService(fileRepository, fileStorage)
	authService := service.NewAuthService(cfg, userRepository, profileRepository, tokenRepository, emailService)
	profileService := service.NewProfileService(profileRepository)
	appointmentService := service.NewAppointmentService(appointmentRepository, userRepository, profileRepository, emailService)
	legalService := service.NewLegalService(cfg)

	return &App{
		Cfg:                cfg,
		DB:                 database,
		AuthService:        authService,
		ProfileService:     profileService,
		AppointmentService: appointmentService,
		EmailService:       emailService,
		FileService:        fileService,
		LegalService:       legalService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
