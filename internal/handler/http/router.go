package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/timewatch/timewatch-backend-go/internal/handler/http/middleware"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	companyHandler CompanyHandler,
	timeStampHandler TimeStampHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timewatch"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Get("/{email}", userHandler.Get)
				r.Put("/{email}/password", userHandler.ChangePassword)

				// Net admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.NetAdminOnly)
					r.Post("/", userHandler.Create)
					r.Put("/{email}", userHandler.Update)
					r.Delete("/{email}", userHandler.Delete)
					r.Post("/{email}/reactivate", userHandler.Reactivate)
				})
			})

			r.Route("/companies", func(r chi.Router) {
				r.Get("/{id}", companyHandler.Get)
				r.Get("/{id}/name", companyHandler.GetName)
				r.Get("/{id}/users", companyHandler.GetUsers)
				r.Get("/{id}/admins", companyHandler.GetAdmins)

				// Net admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.NetAdminOnly)
					r.Get("/", companyHandler.List)
					r.Post("/", companyHandler.Create)
					r.Put("/{id}", companyHandler.Update)
					r.Delete("/{id}", companyHandler.Delete)
				})
			})

			r.Route("/timestamps", func(r chi.Router) {
				r.Get("/", timeStampHandler.GetRange)
				r.Post("/", timeStampHandler.Create)
				r.Post("/punch-out", timeStampHandler.PunchOut)
				r.Get("/status", timeStampHandler.PunchInStatus)
				r.Put("/{uuid}", timeStampHandler.Update)
				r.Delete("/{uuid}", timeStampHandler.Delete)

				// Net admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.NetAdminOnly)
					r.Get("/all", timeStampHandler.GetAll)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/user", reportHandler.GetUserReport)
				r.Get("/company", reportHandler.GetCompanyReport)

				// Net admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.NetAdminOnly)
					r.Get("/overview", reportHandler.GetCompanyOverview)
				})
			})
		})
	})
	return r
}
