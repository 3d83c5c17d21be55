package main

import (
	"fmt"
	"net/http"

	"github.com/hayatfoods/hrfleet-backend-go/internal/config"
	appHTTP "github.com/hayatfoods/hrfleet-backend-go/internal/handler/http"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/database"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/jwt"
	"github.com/hayatfoods/hrfleet-backend-go/internal/pkg/storage"
	"github.com/hayatfoods/hrfleet-backend-go/internal/repository/postgresql"
	authService "github.com/hayatfoods/hrfleet-backend-go/internal/service/auth"
	branchService "github.com/hayatfoods/hrfleet-backend-go/internal/service/branch"
	dashboardService "github.com/hayatfoods/hrfleet-backend-go/internal/service/dashboard"
	employeeService "github.com/hayatfoods/hrfleet-backend-go/internal/service/employee"
	expenditureService "github.com/hayatfoods/hrfleet-backend-go/internal/service/expenditure"
	"github.com/hayatfoods/hrfleet-backend-go/internal/service/file"
	reportService "github.com/hayatfoods/hrfleet-backend-go/internal/service/report"
	tempEmployeeService "github.com/hayatfoods/hrfleet-backend-go/internal/service/tempemployee"
	vacationService "github.com/hayatfoods/hrfleet-backend-go/internal/service/vacation"
	vehicleService "github.com/hayatfoods/hrfleet-backend-go/internal/service/vehicle"
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

	localStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		fmt.Println("Error initializing storage:", err)
		return
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	tempEmployeeRepo := postgresql.NewTempEmployeeRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	vehicleRepo := postgresql.NewVehicleRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)
	expenditureRepo := postgresql.NewExpenditureRepository(db)

	fileService := file.NewFileService(localStorage)
	authSvc := authService.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileService)
	tempEmployeeSvc := tempEmployeeService.NewTempEmployeeService(tempEmployeeRepo, fileService)
	branchSvc := branchService.NewBranchService(branchRepo, fileService)
	vehicleSvc := vehicleService.NewVehicleService(db, vehicleRepo, branchRepo)
	vacationSvc := vacationService.NewVacationService(vacationRepo, employeeRepo)
	expenditureSvc := expenditureService.NewExpenditureService(expenditureRepo, branchRepo)
	reportSvc := reportService.NewReportService(employeeRepo, tempEmployeeRepo, branchRepo)
	dashboardSvc := dashboardService.NewDashboardService(
		employeeRepo,
		tempEmployeeRepo,
		branchRepo,
		vehicleRepo,
		vacationRepo,
		expenditureRepo,
	)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(JWTService, authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		TempEmployee: appHTTP.NewTempEmployeeHandler(tempEmployeeSvc),
		Branch:       appHTTP.NewBranchHandler(branchSvc),
		Vehicle:      appHTTP.NewVehicleHandler(vehicleSvc),
		Vacation:     appHTTP.NewVacationHandler(vacationSvc),
		Expenditure:  appHTTP.NewExpenditureHandler(expenditureSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(cfg, JWTService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
