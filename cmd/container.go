package main

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/shaheed425/jobsy/pkg/config"
	"github.com/shaheed425/jobsy/pkg/iam/auth"
	"github.com/shaheed425/jobsy/pkg/logx"
	"github.com/shaheed425/jobsy/placement/application/applicationapi"
	"github.com/shaheed425/jobsy/placement/application/applicationinfra"
	"github.com/shaheed425/jobsy/placement/application/applicationsrv"
	"github.com/shaheed425/jobsy/placement/employer/employerapi"
	"github.com/shaheed425/jobsy/placement/employer/employerinfra"
	"github.com/shaheed425/jobsy/placement/employer/employersrv"
	"github.com/shaheed425/jobsy/placement/job/jobapi"
	"github.com/shaheed425/jobsy/placement/job/jobinfra"
	"github.com/shaheed425/jobsy/placement/job/jobsrv"
	"github.com/shaheed425/jobsy/placement/matching/matchingapi"
	"github.com/shaheed425/jobsy/placement/matching/matchingsrv"
	"github.com/shaheed425/jobsy/placement/notification/notificationapi"
	"github.com/shaheed425/jobsy/placement/notification/notificationinfra"
	"github.com/shaheed425/jobsy/placement/notification/notificationsrv"
	"github.com/shaheed425/jobsy/placement/stats/statsapi"
	"github.com/shaheed425/jobsy/placement/stats/statsinfra"
	"github.com/shaheed425/jobsy/placement/stats/statssrv"
	"github.com/shaheed425/jobsy/placement/student/studentapi"
	"github.com/shaheed425/jobsy/placement/student/studentinfra"
	"github.com/shaheed425/jobsy/placement/student/studentsrv"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// Auth
	TokenService *auth.TokenService
	AuthHandlers *auth.Handlers

	// Domain Services
	StudentService      *studentsrv.StudentService
	EmployerService     *employersrv.EmployerService
	JobService          *jobsrv.JobService
	MatchingService     *matchingsrv.MatchingService
	ApplicationService  *applicationsrv.ApplicationService
	NotificationService *notificationsrv.NotificationService
	StatsService        *statssrv.StatsService

	// API Handlers
	StudentHandlers      *studentapi.Handlers
	EmployerHandlers     *employerapi.Handlers
	JobHandlers          *jobapi.Handlers
	MatchingHandlers     *matchingapi.Handlers
	ApplicationHandlers  *applicationapi.Handlers
	NotificationHandlers *notificationapi.Handlers
	StatsHandlers        *statsapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	db, err := sqlx.Connect("postgres", c.Config.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.RedisAddr,
		Password: c.Config.RedisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. Auth
	secret := c.Config.JWTSecret
	if secret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		secret = "super-secret-key-please-change-me-in-production"
	}
	c.TokenService = auth.NewTokenService(secret)
	c.AuthHandlers = auth.NewHandlers(c.TokenService, auth.AdminCredentials{
		Username:     c.Config.AdminUsername,
		PasswordHash: c.Config.AdminPasswordHash,
	})
}

func (c *Container) initServices() {
	// --- Repositories ---
	studentRepo := studentinfra.NewPostgresStudentRepository(c.DB)
	employerRepo := employerinfra.NewPostgresEmployerRepository(c.DB)
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)
	notificationRepo := notificationinfra.NewPostgresNotificationRepository(c.DB)

	statsCache := statsinfra.NewRedisCache(c.Redis)

	// --- Domain Services ---
	c.StudentService = studentsrv.NewStudentService(studentRepo, applicationRepo, notificationRepo)
	c.EmployerService = employersrv.NewEmployerService(employerRepo, jobRepo, applicationRepo, notificationRepo)
	c.JobService = jobsrv.NewJobService(jobRepo, studentRepo, applicationRepo)
	c.MatchingService = matchingsrv.NewMatchingService(studentRepo, jobRepo)
	c.ApplicationService = applicationsrv.NewApplicationService(applicationRepo, studentRepo, jobRepo, notificationRepo)
	c.NotificationService = notificationsrv.NewNotificationService(notificationRepo)
	c.StatsService = statssrv.NewStatsService(applicationRepo, jobRepo, notificationRepo, statsCache)

	// --- Handlers ---
	c.StudentHandlers = studentapi.NewHandlers(c.StudentService)
	c.EmployerHandlers = employerapi.NewHandlers(c.EmployerService)
	c.JobHandlers = jobapi.NewHandlers(c.JobService, c.MatchingService)
	c.MatchingHandlers = matchingapi.NewHandlers(c.MatchingService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.NotificationHandlers = notificationapi.NewHandlers(c.NotificationService)
	c.StatsHandlers = statsapi.NewHandlers(c.StatsService)
}
