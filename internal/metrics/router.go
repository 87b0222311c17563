package metrics

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
)

func ConfigureRouter(handler *echo.Echo) {
	handler.Use(echoprometheus.NewMiddleware("newsreport"))
	handler.GET("/metrics", echoprometheus.NewHandler())
}
