package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/akarpov87/todo-sheets-api/internal/gsheets"
	"github.com/akarpov87/todo-sheets-api/internal/handlers"
	"github.com/akarpov87/todo-sheets-api/internal/jwt"
	"github.com/akarpov87/todo-sheets-api/internal/logger"
	"github.com/akarpov87/todo-sheets-api/internal/media"
	"github.com/akarpov87/todo-sheets-api/internal/middlewares"
	"github.com/akarpov87/todo-sheets-api/internal/models"
	"github.com/akarpov87/todo-sheets-api/internal/repositories"
	"github.com/akarpov87/todo-sheets-api/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title todo-sheets-api
// @version 1.0.0
// @description REST backend persisting todos and users in a Google Sheets spreadsheet and images in a Google Drive folder
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		credentialsFile, spreadsheetID, driveFolderID,
		jwtSecretKey, jwtExpSecond, adminPassword,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		credentialsFile, spreadsheetID, driveFolderID,
		jwtSecretKey, jwtExpSecond, adminPassword,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, Google API, JWT and seeding configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	credentialsFile, spreadsheetID, driveFolderID string,
	jwtSecretKey string, jwtExpSecond int,
	adminPassword string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Google API config
	credentialsFile = getEnv("GOOGLE_APPLICATION_CREDENTIALS", "credentials.json")
	spreadsheetID = getEnv("SPREADSHEET_ID", "")
	driveFolderID = getEnv("DRIVE_FOLDER_ID", "")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Admin bootstrap config
	adminPassword = getEnv("ADMIN_PASSWORD", "admin123")

	return
}

// run initializes the logger, the Google Sheets and Drive clients, seeds the
// admin account and starts the HTTP server with graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	credentialsFile, spreadsheetID, driveFolderID string,
	jwtSecretKey string, jwtExpSecond int,
	adminPassword string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Initialize Google API clients. Startup aborts if either fails.
	creds := option.WithCredentialsFile(credentialsFile)

	sheetsSvc, err := sheets.NewService(ctx, creds, option.WithScopes(sheets.SpreadsheetsScope, drive.DriveScope))
	if err != nil {
		logger.Log.Errorw("Sheets client initialization failed", "err", err)
		return err
	}

	driveSvc, err := drive.NewService(ctx, creds)
	if err != nil {
		logger.Log.Errorw("Drive client initialization failed", "err", err)
		return err
	}
	logger.Log.Info("Google API clients initialized")

	sheetClient := gsheets.NewClient(sheetsSvc, spreadsheetID)
	storage := media.NewDriveStorage(driveSvc, driveFolderID)

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(sheetClient)
	userWriteRepo := repositories.NewUserWriteRepository(sheetClient)
	todoReadRepo := repositories.NewTodoReadRepository(sheetClient)
	todoWriteRepo := repositories.NewTodoWriteRepository(sheetClient)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	todoService := services.NewTodoService(todoReadRepo, todoWriteRepo, storage)

	// Seed the bootstrap admin account. Failure is logged but not fatal.
	if err := authService.SeedAdmin(ctx, adminPassword); err != nil {
		logger.Log.Errorw("admin seeding failed", "err", err)
	}

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	listTodosHandler := handlers.NewListTodosHandler(todoService)
	listUserTodosHandler := handlers.NewListUserTodosHandler(todoService)
	getTodoHandler := handlers.NewGetTodoHandler(todoService)
	createTodoHandler := handlers.NewCreateTodoHandler(todoService)
	updateTodoHandler := handlers.NewUpdateTodoHandler(todoService)
	deleteTodoHandler := handlers.NewDeleteTodoHandler(todoService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", registerHandler)
		r.Post("/auth/login", loginHandler)

		// Protected routes with JWT middleware
		r.Route("/todos", func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))

			r.With(middlewares.RequireRoles(models.RoleAdmin)).Get("/", listTodosHandler)
			r.Get("/user", listUserTodosHandler)
			r.Post("/", createTodoHandler)
			r.Get("/{id}", getTodoHandler)
			r.Put("/{id}", updateTodoHandler)
			r.Delete("/{id}", deleteTodoHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
