package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hayatfoods/hrfleet-backend-go/internal/config"
	"github.com/hayatfoods/hrfleet-backend-go/internal/handler/http/middleware"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	TempEmployee TempEmployeeHandler
	Branch       BranchHandler
	Vehicle      VehicleHandler
	Vacation     VacationHandler
	Expenditure  ExpenditureHandler
	Report       ReportHandler
	Dashboard    DashboardHandler
}

func NewRouter(cfg *config.Config, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrfleet-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

	// Uploaded documents are served straight off disk when local storage
	// is configured.
	if cfg.Storage.Type == "local" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/dashboard", h.Dashboard.GetDashboard)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Post("/", h.Employee.CreateEmployee)
				r.Get("/{id}", h.Employee.GetEmployee)
				r.Put("/{id}", h.Employee.UpdateEmployee)
				r.Post("/{id}/documents", h.Employee.UploadDocument)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/temp-employees", func(r chi.Router) {
				r.Get("/", h.TempEmployee.ListTempEmployees)
				r.Post("/", h.TempEmployee.CreateTempEmployee)
				r.Get("/{id}", h.TempEmployee.GetTempEmployee)
				r.Put("/{id}", h.TempEmployee.UpdateTempEmployee)
				r.Post("/{id}/documents", h.TempEmployee.UploadDocument)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.TempEmployee.DeleteTempEmployee)
				})
			})

			r.Route("/branches", func(r chi.Router) {
				r.Get("/", h.Branch.ListBranches)
				r.Post("/", h.Branch.CreateBranch)
				r.Get("/{id}", h.Branch.GetBranch)
				r.Put("/{id}", h.Branch.UpdateBranch)
				r.Post("/{id}/documents", h.Branch.UploadDocument)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.Branch.DeleteBranch)
				})
			})

			r.Route("/vehicles", func(r chi.Router) {
				r.Get("/", h.Vehicle.ListVehicles)
				r.Post("/", h.Vehicle.CreateVehicle)
				r.Get("/{id}", h.Vehicle.GetVehicle)
				r.Put("/{id}", h.Vehicle.UpdateVehicle)
				r.Post("/{id}/transfer", h.Vehicle.TransferVehicle)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.Vehicle.DeleteVehicle)
				})
			})

			r.Route("/vacations", func(r chi.Router) {
				r.Get("/", h.Vacation.ListVacations)
				r.Post("/", h.Vacation.CreateVacation)
				r.Get("/{id}", h.Vacation.GetVacation)
				r.Put("/{id}", h.Vacation.UpdateVacation)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.Vacation.DeleteVacation)
				})
			})

			r.Route("/expenditures", func(r chi.Router) {
				r.Get("/", h.Expenditure.ListExpenditures)
				r.Post("/", h.Expenditure.CreateExpenditure)
				r.Get("/{id}", h.Expenditure.GetExpenditure)
				r.Put("/{id}", h.Expenditure.UpdateExpenditure)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.Expenditure.DeleteExpenditure)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/documents", h.Report.DocumentReport)
				r.Get("/documents/export", h.Report.ExportDocumentReport)
			})
		})
	})
	return r
}
