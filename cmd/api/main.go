package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "approvalhub/internal/adapter/http"
	"approvalhub/internal/adapter/middleware"
	"approvalhub/internal/adapter/repository/mysql"
	"approvalhub/internal/adapter/xlsx"
	"approvalhub/internal/config"
	custdomain "approvalhub/internal/domain/customer"
	loandomain "approvalhub/internal/domain/loan"
	"approvalhub/internal/infrastructure/cache"
	"approvalhub/internal/infrastructure/db"
	custuc "approvalhub/internal/usecase/customer"
	"approvalhub/internal/usecase/ingest"
	loanuc "approvalhub/internal/usecase/loan"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&custdomain.Customer{}, &loandomain.Loan{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	custRepo := mysql.NewCustomerRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	customerUC := custuc.NewUsecase(custRepo)
	loanUC := loanuc.NewUsecase(custRepo, loanRepo, uow)
	ingestUC := ingest.NewUsecase(&xlsx.Source{}, uow, cfg.CustomerDataPath, cfg.LoanDataPath)

	h := httpadp.NewHandler()
	customerH := httpadp.NewCustomerHandler(customerUC)
	loanH := httpadp.NewLoanHandler(loanUC)
	ingestH := httpadp.NewIngestHandler(ingestUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)
	e.POST("/register", customerH.Register, idemp)
	e.POST("/check-eligibility", loanH.CheckEligibility)
	e.POST("/create-loan", loanH.CreateLoan, idemp)
	e.GET("/view-loan/:loan_id", loanH.GetLoan)
	e.GET("/view-loans/:customer_id", loanH.ListLoans)
	e.POST("/import-data", ingestH.ImportData)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
