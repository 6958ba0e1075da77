package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agromon/config"
	"agromon/database"
	"agromon/router"

	// Field
	fieldCtrlImp "agromon/pkg/field/controllerImp"
	fieldRepo "agromon/pkg/field/repository"
	fieldRepoImp "agromon/pkg/field/repositoryImp"
	fieldSvcImp "agromon/pkg/field/serviceImp"
	"agromon/pkg/field/store"

	// Rules/price
	"agromon/pkg/market"
	"agromon/pkg/stress"

	// Report
	reportCtrlImp "agromon/pkg/report/controllerImp"

	// Health
	healthCtrlImp "agromon/pkg/health/controllerImp"

	"agromon/pkg/menu"
	"agromon/pkg/monitorlog"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Loss rules: missing file falls back to defaults, a broken one
	// stops the program before the menu starts
	rules, err := stress.Load(cfg.RulesPath)
	if err != nil {
		log.Fatalf("loss rules: %v", err)
	}

	// 3) Price for this run, fixed at startup
	price := market.Resolve(cfg.PriceURL, cfg.PriceSelector, rules.AveragePriceTon)

	// 4) Relational sink (sqlite). Degraded mode on failure: records
	// are only logged locally, registration keeps working.
	var repo fieldRepo.RecordRepository
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Printf("[db] %v - records will only be logged locally", err)
	} else {
		repo = fieldRepoImp.New(db)
	}

	// 5) Store + service wiring
	st := store.New()
	mlog := monitorlog.New(cfg.LogPath)
	svc := fieldSvcImp.NewFieldService(rules, price, st, repo, mlog)

	// 6) Optional HTTP surface
	if cfg.Port != "" {
		e := echo.New()
		e.HideBanner = true
		e.Use(echoMiddleware.Recover())

		fCtrl := fieldCtrlImp.New(svc)
		rCtrl := reportCtrlImp.New(svc)
		hCtrl := healthCtrlImp.NewHealthCtrl(db)
		r := router.New(e, fCtrl, rCtrl, hCtrl)

		go func() {
			if err := r.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
				log.Printf("[http] %v", err)
			}
		}()
		log.Printf("listening on :%s", cfg.Port)
	}

	// 7) Interactive loop until the operator exits
	menu.New(os.Stdin, os.Stdout, svc, rules, cfg.XLSXPath).Run()

	// 8) Orderly shutdown: close the sink if it was opened
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
