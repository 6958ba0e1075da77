package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	fieldCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	reportCtrl interface {
		Report(echo.Context) error
		Xlsx(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/fields", fieldCtrl.Create)
	e.GET("/fields", fieldCtrl.List)

	e.GET("/report", reportCtrl.Report)
	e.GET("/report.xlsx", reportCtrl.Xlsx)
	return e
}
