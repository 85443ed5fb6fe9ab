package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nairacalc/nta-engine/config"
	"github.com/nairacalc/nta-engine/database"
	"github.com/nairacalc/nta-engine/handler"
	"github.com/nairacalc/nta-engine/logger"
	"github.com/nairacalc/nta-engine/metrics"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.AppName, cfg.LogLevel)
	if err != nil {
		log.Fatal("Cannot initialize logger: ", err)
	}
	defer zl.Sync()

	if len(strings.TrimSpace(cfg.DatabaseURL)) == 0 {
		zl.Fatal("Missing an env variable `DATABASE_URL`")
	}

	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		zl.Fatal("Cannot connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db.GetSQLDB()); err != nil {
		zl.Fatal("Cannot run database migrations", zap.Error(err))
	}

	rules, err := config.NewRulesHolder(cfg.RulesFile)
	if err != nil {
		zl.Fatal("Cannot load tax rules", zap.Error(err))
	}

	vl := validator.New()
	m := metrics.Engine()

	taxHandler := handler.NewTaxHandler(vl, rules, db, m)
	adminHandler := handler.NewAdminHandler(vl, rules, m)

	e := echo.New()

	e.GET("/", handler.Healthcheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/tax/rules", taxHandler.GetRules)
	e.GET("/tax/assessments", taxHandler.ListAssessments)

	e.POST("/tax/personal/calculations", taxHandler.CalculatePersonal)
	e.POST("/tax/personal/calculations/csv", taxHandler.CalculatePersonalWithCSV)
	e.POST("/tax/company/calculations", taxHandler.CalculateCompany)
	e.POST("/tax/exemptions/share-transfer", taxHandler.CalculateShareTransfer)
	e.POST("/tax/exemptions/compensation", taxHandler.CalculateCompensation)
	e.POST("/tax/recommendations", taxHandler.Recommend)

	e.POST("/admin/rules/rent-relief-cap", adminHandler.UpdateRentReliefCap)
	e.POST("/admin/rules/share-gain-cap", adminHandler.UpdateShareGainCap)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)
	<-shutdown

	zl.Info("shutting down the server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
