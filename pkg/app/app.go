// Package app wires the store, services and HTTP controllers together.
package app

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"milkman/config"
	"milkman/database"
	"milkman/router"

	custCtrlImp "milkman/pkg/customer/controllerImp"
	custRepoImp "milkman/pkg/customer/repositoryImp"
	custSvc "milkman/pkg/customer/service"
	custSvcImp "milkman/pkg/customer/serviceImp"

	delCtrlImp "milkman/pkg/delivery/controllerImp"
	delRepoImp "milkman/pkg/delivery/repositoryImp"
	delSvc "milkman/pkg/delivery/service"
	delSvcImp "milkman/pkg/delivery/serviceImp"

	sumCtrlImp "milkman/pkg/summary/controllerImp"
	sumRepoImp "milkman/pkg/summary/repositoryImp"
	sumSvc "milkman/pkg/summary/service"
	sumSvcImp "milkman/pkg/summary/serviceImp"

	expCtrlImp "milkman/pkg/export/controllerImp"
	expSvc "milkman/pkg/export/service"
	expSvcImp "milkman/pkg/export/serviceImp"

	healthCtrlImp "milkman/pkg/health/controllerImp"
)

type App struct {
	Config config.AppConfig
	Log    *slog.Logger
	DB     *gorm.DB

	Customers  custSvc.Service
	Deliveries delSvc.Service
	Summary    sumSvc.Service
	Export     expSvc.Service
}

// New opens the database at cfg.DBPath and builds every service on top of
// the single handle.
func New(cfg config.AppConfig, log *slog.Logger) (*App, error) {
	db, err := database.OpenSQLite(cfg.DBPath, log)
	if err != nil {
		return nil, err
	}

	summary := sumSvcImp.New(sumRepoImp.New(db))
	return &App{
		Config:     cfg,
		Log:        log,
		DB:         db,
		Customers:  custSvcImp.New(custRepoImp.New(db)),
		Deliveries: delSvcImp.New(delRepoImp.New(db)),
		Summary:    summary,
		Export:     expSvcImp.New(summary, cfg.PDFCompress, log),
	}, nil
}

// Echo builds the HTTP handler for the API.
func (a *App) Echo() *echo.Echo {
	return router.New(
		echo.New(),
		a.Log,
		a.Config.StaticDir,
		healthCtrlImp.NewHealthCtrl(a.DB),
		custCtrlImp.New(a.Customers),
		delCtrlImp.New(a.Deliveries),
		sumCtrlImp.New(a.Summary),
		expCtrlImp.New(a.Export),
	)
}

func (a *App) Close() error {
	return database.Close(a.DB)
}
