package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"farmhub/config"
	"farmhub/database"
	"farmhub/router"

	// Auth
	authCtrlImp "farmhub/pkg/auth/controllerImp"
	authRepoImp "farmhub/pkg/auth/repositoryImp"
	"farmhub/pkg/auth/token"

	// Owned resources
	cropCtrlImp "farmhub/pkg/crop/controllerImp"
	cropRepoImp "farmhub/pkg/crop/repositoryImp"
	equipCtrlImp "farmhub/pkg/equipment/controllerImp"
	equipRepoImp "farmhub/pkg/equipment/repositoryImp"
	fieldCtrlImp "farmhub/pkg/field/controllerImp"
	fieldRepoImp "farmhub/pkg/field/repositoryImp"
	invCtrlImp "farmhub/pkg/inventory/controllerImp"
	invRepoImp "farmhub/pkg/inventory/repositoryImp"
	taskCtrlImp "farmhub/pkg/task/controllerImp"
	taskRepoImp "farmhub/pkg/task/repositoryImp"

	// Finance
	finCtrlImp "farmhub/pkg/finance/controllerImp"
	finRepoImp "farmhub/pkg/finance/repositoryImp"
	finSvcImp "farmhub/pkg/finance/serviceImp"

	// Health
	healthCtrlImp "farmhub/pkg/health/controllerImp"

	"farmhub/pkg/httputil"
	"farmhub/pkg/middleware"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Token service — refuses to start without a signing secret
	tokens, err := token.New(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("token service: %v (set JWT_SECRET)", err)
	}

	// 4) Echo
	e := echo.New()
	e.Debug = cfg.Development()
	e.HideBanner = true
	e.Validator = httputil.NewValidator()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	// 5) Repos/Controllers
	userRepo := authRepoImp.New(db)
	authCtrl := authCtrlImp.New(userRepo, tokens)

	cropCtrl := cropCtrlImp.New(cropRepoImp.New(db))
	fieldCtrl := fieldCtrlImp.New(fieldRepoImp.New(db))
	taskCtrl := taskCtrlImp.New(taskRepoImp.New(db))
	invCtrl := invCtrlImp.New(invRepoImp.New(db))
	equipCtrl := equipCtrlImp.New(equipRepoImp.New(db))

	finRepo := finRepoImp.New(db)
	finCtrl := finCtrlImp.New(finRepo, finSvcImp.New(finRepo))

	hCtrl := healthCtrlImp.NewHealthCtrl(db, cfg.WeatherAPIKey != "")

	// 6) Router
	guard := middleware.RequireAuth(tokens, userRepo)
	r := router.New(e, guard, authCtrl, cropCtrl, fieldCtrl, taskCtrl, invCtrl, equipCtrl, finCtrl, hCtrl)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
