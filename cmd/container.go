package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Abraxas-365/stint/marketplace/application/applicationapi"
	"github.com/Abraxas-365/stint/marketplace/application/applicationinfra"
	"github.com/Abraxas-365/stint/marketplace/application/applicationsrv"
	"github.com/Abraxas-365/stint/marketplace/chat/chatinfra"
	"github.com/Abraxas-365/stint/marketplace/chat/chatsrv"
	"github.com/Abraxas-365/stint/marketplace/company/companyapi"
	"github.com/Abraxas-365/stint/marketplace/company/companyinfra"
	"github.com/Abraxas-365/stint/marketplace/company/companysrv"
	"github.com/Abraxas-365/stint/marketplace/interview/interviewapi"
	"github.com/Abraxas-365/stint/marketplace/interview/interviewinfra"
	"github.com/Abraxas-365/stint/marketplace/interview/interviewsrv"
	"github.com/Abraxas-365/stint/marketplace/job/jobapi"
	"github.com/Abraxas-365/stint/marketplace/job/jobinfra"
	"github.com/Abraxas-365/stint/marketplace/job/jobsrv"
	"github.com/Abraxas-365/stint/marketplace/notification/notificationinfra"
	"github.com/Abraxas-365/stint/marketplace/notification/worker"
	"github.com/Abraxas-365/stint/marketplace/seeker/seekerapi"
	"github.com/Abraxas-365/stint/marketplace/seeker/seekerinfra"
	"github.com/Abraxas-365/stint/marketplace/seeker/seekersrv"
	"github.com/Abraxas-365/stint/pkg/fsx"
	"github.com/Abraxas-365/stint/pkg/fsx/fsxs3"
	"github.com/Abraxas-365/stint/pkg/iam/account/accountinfra"
	"github.com/Abraxas-365/stint/pkg/iam/auth"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/Abraxas-365/stint/pkg/logx"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Auth
	TokenService   auth.TokenService
	AuthHandlers   *auth.AuthHandlers
	AuthMiddleware *auth.AuthMiddleware

	// Domain Services
	SeekerService      *seekersrv.SeekerService
	CompanyService     *companysrv.CompanyService
	JobService         *jobsrv.JobService
	ChatService        *chatsrv.ChatService
	InterviewService   *interviewsrv.InterviewService
	ApplicationService *applicationsrv.ApplicationService

	// API Handlers
	SeekerHandlers      *seekerapi.Handlers
	CompanyHandlers     *companyapi.Handlers
	JobHandlers         *jobapi.Handlers
	InterviewHandlers   *interviewapi.Handlers
	ApplicationHandlers *applicationapi.Handlers

	// Background workers
	NotificationWorker *worker.DispatchWorker
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration (CV storage)
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "uploads")

	// 4. Token Service
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		jwtSecret = "super-secret-key-please-change-me-in-production"
	}
	c.TokenService = auth.NewJWTService(jwtSecret, 24*time.Hour, "stint-api")
}

func (c *Container) initServices() {
	// --- Repositories ---
	accountRepo := accountinfra.NewPostgresAccountRepository(c.DB)
	seekerRepo := seekerinfra.NewPostgresSeekerRepository(c.DB)
	companyRepo := companyinfra.NewPostgresCompanyRepository(c.DB)
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	chatRepo := chatinfra.NewPostgresChatRepository(c.DB)
	interviewRepo := interviewinfra.NewPostgresInterviewRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)

	// --- Notification outbox ---
	queue := notificationinfra.NewRedisQueue(c.Redis, "notifications")
	publisher := notificationinfra.NewQueuePublisher(queue)
	notifier := notificationinfra.NewLogNotifier()

	workers := 4
	if n, err := strconv.Atoi(os.Getenv("NOTIFICATION_WORKERS")); err == nil && n > 0 {
		workers = n
	}
	c.NotificationWorker = worker.NewDispatchWorker(queue, notifier, workers)

	// --- Domain Services ---
	c.SeekerService = seekersrv.NewSeekerService(seekerRepo, c.FileSystem)
	c.CompanyService = companysrv.NewCompanyService(companyRepo)
	c.JobService = jobsrv.NewJobService(jobRepo, c.CompanyService, c.CompanyService)
	c.ChatService = chatsrv.NewChatService(chatRepo)
	c.InterviewService = interviewsrv.NewInterviewService(interviewRepo)
	c.ApplicationService = applicationsrv.NewApplicationService(
		applicationRepo,
		jobRepo,
		seekerRepo,
		companyRepo,
		c.CompanyService,
		c.ChatService,
		c.InterviewService,
		publisher,
	)

	// --- Auth ---
	passwordSvc := auth.NewBcryptPasswordService()
	c.AuthHandlers = auth.NewAuthHandlers(accountRepo, passwordSvc, c.TokenService, &profileProvisioner{
		seekers:   c.SeekerService,
		companies: c.CompanyService,
	})
	c.AuthMiddleware = auth.NewAuthMiddleware(c.TokenService)

	// --- Handlers ---
	c.SeekerHandlers = seekerapi.NewHandlers(c.SeekerService)
	c.CompanyHandlers = companyapi.NewHandlers(c.CompanyService)
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.InterviewHandlers = interviewapi.NewHandlers(c.InterviewService, c.CompanyService, c.SeekerService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
}

// profileProvisioner adapts the seeker and company services to the
// registration flow
type profileProvisioner struct {
	seekers   *seekersrv.SeekerService
	companies *companysrv.CompanyService
}

func (p *profileProvisioner) ProvisionSeeker(ctx context.Context, accountID kernel.AccountID, name string, email kernel.Email) error {
	_, err := p.seekers.CreateProfile(ctx, accountID, name, email)
	return err
}

func (p *profileProvisioner) ProvisionCompany(ctx context.Context, accountID kernel.AccountID, name kernel.CompanyName, email kernel.Email) error {
	_, err := p.companies.CreateProfile(ctx, accountID, name, email)
	return err
}
