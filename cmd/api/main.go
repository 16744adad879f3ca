package main

import (
	"fmt"
	"net/http"

	"github.com/chafiq1992/attendance-app/internal/config"
	appHTTP "github.com/chafiq1992/attendance-app/internal/handler/http"
	"github.com/chafiq1992/attendance-app/internal/pkg/cron"
	"github.com/chafiq1992/attendance-app/internal/pkg/database"
	"github.com/chafiq1992/attendance-app/internal/pkg/jwt"
	"github.com/chafiq1992/attendance-app/internal/repository/postgresql"
	adminService "github.com/chafiq1992/attendance-app/internal/service/admin"
	attendanceService "github.com/chafiq1992/attendance-app/internal/service/attendance"
	ledgerService "github.com/chafiq1992/attendance-app/internal/service/ledger"
	settingsService "github.com/chafiq1992/attendance-app/internal/service/settings"
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

	eventRepo := postgresql.NewEventRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	adminUserRepo := postgresql.NewAdminUserRepository(db)
	adminLogRepo := postgresql.NewAdminLogRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	settingsSvc := settingsService.NewSettingsService(settingsRepo, adminLogRepo)
	attendanceSvc := attendanceService.NewAttendanceService(eventRepo, ledgerRepo, settingsSvc, adminLogRepo, cfg.App.Wages)
	ledgerSvc := ledgerService.NewLedgerService(ledgerRepo, adminLogRepo)
	adminSvc := adminService.NewAdminService(adminUserRepo, adminLogRepo, JWTService)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	eventHandler := appHTTP.NewEventHandler(attendanceSvc)
	ledgerHandler := appHTTP.NewLedgerHandler(ledgerSvc)
	adminHandler := appHTTP.NewAdminHandler(adminSvc, settingsSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		eventHandler,
		ledgerHandler,
		adminHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	scheduler := cron.NewScheduler()
	cron.NewMaintenanceJobs(adminLogRepo, cfg.App.LogRetentionDays).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
