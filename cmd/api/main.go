package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/timewatch/timewatch-backend-go/internal/config"
	"github.com/timewatch/timewatch-backend-go/internal/fixtures"
	appHTTP "github.com/timewatch/timewatch-backend-go/internal/handler/http"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/cron"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/database"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/jwt"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/oauth"
	"github.com/timewatch/timewatch-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/timewatch/timewatch-backend-go/internal/service/auth"
	serviceCompany "github.com/timewatch/timewatch-backend-go/internal/service/company"
	serviceReport "github.com/timewatch/timewatch-backend-go/internal/service/report"
	serviceTimeStamp "github.com/timewatch/timewatch-backend-go/internal/service/timestamp"
	serviceUser "github.com/timewatch/timewatch-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Failed to migrate database schema: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	timeStampRepo := postgresql.NewTimeStampRepository(db)

	if cfg.App.SeedOnStartup {
		if err := fixtures.Seed(ctx, userRepo, companyRepo); err != nil {
			log.Fatal("Failed to seed fixtures: ", err)
		}
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	userService := serviceUser.NewUserService(db, userRepo, companyRepo)
	companyService := serviceCompany.NewCompanyService(db, companyRepo, userRepo)
	timeStampService := serviceTimeStamp.NewTimeStampService(timeStampRepo, userRepo)
	reportService := serviceReport.NewReportService(userRepo, companyRepo, timeStampRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL)
	userHandler := appHTTP.NewUserHandler(userService)
	companyHandler := appHTTP.NewCompanyHandler(companyService)
	timeStampHandler := appHTTP.NewTimeStampHandler(timeStampService)
	reportHandler := appHTTP.NewReportHandler(reportService)

	scheduler := cron.NewScheduler()
	cron.NewTimeStampJobs(timeStampRepo, userRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		userHandler,
		companyHandler,
		timeStampHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
