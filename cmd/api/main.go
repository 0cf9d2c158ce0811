package main

import (
	"context"
	"os"

	"compliancedesk/cmd/internal/domain/sqlite"
	"compliancedesk/cmd/internal/domain/sqlite/repository"
	handler2 "compliancedesk/cmd/internal/http/handler"
	authmw "compliancedesk/cmd/internal/http/middleware"
	cognitoclient "compliancedesk/cmd/internal/infrastructure/aws/cognito"
	"compliancedesk/cmd/internal/infrastructure/aws/storage"
	"compliancedesk/cmd/internal/infrastructure/mca"
	"compliancedesk/cmd/internal/service"
	"compliancedesk/cmd/internal/service/jobs"
	"compliancedesk/cmd/internal/utils"
	"compliancedesk/cmd/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/compliancedesk/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Init Cognito JWKS for token validation
	if err := utils.InitJWKS(os.Getenv("AWS_COGNITO_REGION"), os.Getenv("COGNITO_USER_POOL_ID")); err != nil {
		panic(err)
	}

	// Init cognito client
	if err := cognitoclient.InitCognitoClient(os.Getenv("COGNITO_APP_CLIENT_ID")); err != nil {
		panic(err)
	}

	// Init S3 client
	s3Client, err := storage.NewStorageClient()
	if err != nil {
		panic(err)
	}

	mcaClient := mca.NewClient()

	// Getting repos
	profileRepo := repository.NewProfileRepository(db)
	pendingRepo := repository.NewPendingDirectorRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	llpRepo := repository.NewLLPRepository(db)
	associationRepo := repository.NewAssociationRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	requestRepo := repository.NewServiceRequestRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	templateRepo := repository.NewAssetTemplateRepository(db)

	// Getting services
	notifier := service.NewNotificationService(notificationRepo)
	profileService := service.NewProfileService(profileRepo, pendingRepo, associationRepo, taskRepo, s3Client, validate)
	authService := service.NewAuthService(profileRepo, profileService, cognitoclient.Client, validate)
	entityService := service.NewEntityService(companyRepo, llpRepo, associationRepo, assignmentRepo, mcaClient, validate)
	taskService := service.NewTaskService(taskRepo, notifier, validate)
	requestService := service.NewServiceRequestService(requestRepo, associationRepo, assignmentRepo, notifier, validate)
	documentService := service.NewDocumentService(documentRepo, associationRepo, assignmentRepo, s3Client, validate)
	formService := service.NewFormService(documentRepo, s3Client)
	appointmentService := service.NewAppointmentService(
		taskRepo, profileRepo, pendingRepo, associationRepo, assignmentRepo,
		requestRepo, formService, notifier, validate,
	)
	templateService := service.NewAssetTemplateService(templateRepo, s3Client, validate)

	// Getting handlers
	authRoutes := handler2.NewAuthRoute(authService)
	profileRoutes := handler2.NewProfileRoute(profileService)
	entityRoutes := handler2.NewEntityRoute(entityService)
	taskRoutes := handler2.NewTaskRoute(taskService)
	requestRoutes := handler2.NewServiceRequestRoute(requestService)
	documentRoutes := handler2.NewDocumentRoute(documentService)
	notificationRoutes := handler2.NewNotificationRoute(notifier)
	templateRoutes := handler2.NewAssetTemplateRoute(templateService)
	operationRoutes := handler2.NewOperationRoute(appointmentService, taskService, requestService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("15M"))

	// Auth (public)
	e.POST("/api/auth/signup", authRoutes.Signup)
	e.POST("/api/auth/login", authRoutes.Login)
	e.POST("/api/auth/confirms", authRoutes.ConfirmSignup)
	e.POST("/api/auth/confirms/resend", authRoutes.ResendConfirmation)

	auth := authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{Profiles: profileService})
	api := e.Group("/api", auth)

	api.POST("/auth/logout", authRoutes.Logout)

	// Profiles
	api.GET("/profiles/me", profileRoutes.GetMe)
	api.PATCH("/profiles/me", profileRoutes.UpdateMe)
	api.POST("/profiles/me/claim-din", profileRoutes.ClaimDIN)
	api.POST("/profiles/me/pan-document", profileRoutes.UploadPANDocument)
	api.POST("/profiles/me/esign", profileRoutes.UploadESignature)
	api.GET("/profiles/din/:din", profileRoutes.GetByDIN)
	api.GET("/profiles/professionals", profileRoutes.ListProfessionals)
	api.POST("/profiles", profileRoutes.CreateProfile)

	// Companies and LLPs
	api.GET("/companies", entityRoutes.GetCompanies)
	api.GET("/companies/:id", entityRoutes.GetCompany)
	api.GET("/companies/lookup/:cin", entityRoutes.LookupCompany)
	api.POST("/companies", entityRoutes.CreateCompany)
	api.PATCH("/companies/:id", entityRoutes.UpdateCompany)
	api.GET("/llps", entityRoutes.GetLLPs)
	api.GET("/llps/:id", entityRoutes.GetLLP)
	api.POST("/llps", entityRoutes.CreateLLP)

	// Associations and assignments
	api.GET("/associations", entityRoutes.GetMyAssociations)
	api.POST("/associations", entityRoutes.CreateAssociation)
	api.GET("/assignments", entityRoutes.GetMyAssignments)
	api.POST("/assignments", entityRoutes.AssignProfessional)

	// Service requests
	api.GET("/requests", requestRoutes.GetRequests)
	api.GET("/requests/assigned", requestRoutes.GetAssignedRequests)
	api.GET("/requests/:id", requestRoutes.GetRequest)
	api.POST("/requests", requestRoutes.CreateRequest)
	api.POST("/requests/:id/process", requestRoutes.ProcessRequest)
	api.DELETE("/requests/:id", requestRoutes.DeleteRequest)

	// Tasks
	api.GET("/tasks", taskRoutes.GetTasks)
	api.GET("/tasks/:id", taskRoutes.GetTask)
	api.POST("/tasks", taskRoutes.CreateTask)
	api.PATCH("/tasks/:id/status", taskRoutes.UpdateTaskStatus)
	api.DELETE("/tasks/:id", taskRoutes.DeleteTask)

	// Documents
	api.GET("/documents", documentRoutes.GetDocuments)
	api.GET("/documents/:id", documentRoutes.GetDocument)
	api.POST("/documents", documentRoutes.UploadDocument)
	api.DELETE("/documents/:id", documentRoutes.DeleteDocument)

	// Notifications
	api.GET("/notifications", notificationRoutes.GetNotifications)
	api.GET("/notifications/unread", notificationRoutes.GetUnreadCount)
	api.POST("/notifications/:id/read", notificationRoutes.MarkRead)

	// Asset templates
	api.GET("/templates", templateRoutes.GetTemplates)
	api.POST("/templates", templateRoutes.CreateTemplate)
	api.PATCH("/templates/:id", templateRoutes.UpdateTemplate)
	api.DELETE("/templates/:id", templateRoutes.DeleteTemplate)

	// Operation envelopes
	api.POST("/operations", operationRoutes.HandleOperation)
	api.POST("/operations/heavy", operationRoutes.HandleHeavyOperation)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	// Deadline reminder cron
	reminder := jobs.NewDeadlineReminder(taskService, profileService, notifier)
	go reminder.Start(context.Background())

	if err := e.Start(":7070"); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("din", validators.DIN)
	_ = validate.RegisterValidation("pan", validators.PAN)
	_ = validate.RegisterValidation("cin", validators.CIN)
	_ = validate.RegisterValidation("llpin", validators.LLPIN)
	_ = validate.RegisterValidation("nodupes", validators.NoDupes)
	_ = validate.RegisterValidation("nospaces", validators.NoWhiteSpaces)
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("ap-south-1"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
