package httpv1

import (
	"github.com/Egor213/NewsReport/internal/service"
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(handler *echo.Echo, services *service.Services, defaults ReportDefaults) {
	c := NewReportController(services.Report, defaults)

	reports := handler.Group("/api/v1/reports")
	reports.GET("", c.Generate)
	reports.GET("/articles", c.TopArticles)
	reports.GET("/authors", c.TopAuthors)
	reports.GET("/error-days", c.ErrorDays)
}
