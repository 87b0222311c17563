package httpv1

import (
	"net/http"

	logginghelper "github.com/Egor213/NewsReport/internal/controller/common/logging"
	"github.com/Egor213/NewsReport/internal/controller/validators"
	"github.com/Egor213/NewsReport/internal/domain"
	"github.com/Egor213/NewsReport/internal/service"
	"github.com/labstack/echo/v4"
)

type ReportDefaults struct {
	ArticlesLimit  int
	ErrorThreshold float64
}

type ReportController struct {
	reportService service.Report
	defaults      ReportDefaults
}

func NewReportController(rs service.Report, defaults ReportDefaults) *ReportController {
	if defaults.ArticlesLimit <= 0 {
		defaults.ArticlesLimit = domain.DefaultArticlesLimit
	}
	return &ReportController{
		reportService: rs,
		defaults:      defaults,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type articlesResponse struct {
	Articles []domain.ArticleViews `json:"articles"`
}

type authorsResponse struct {
	Authors []domain.AuthorViews `json:"authors"`
}

type errorDaysResponse struct {
	Threshold float64           `json:"threshold"`
	ErrorDays []domain.ErrorDay `json:"error_days"`
}

func (rc *ReportController) badRequest(c echo.Context, report string, err error) error {
	logginghelper.LogRequestRejected(c, report, err)
	return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (rc *ReportController) internalError(c echo.Context, report string, err error) error {
	logginghelper.LogRequestFailed(c, report, err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "report is unavailable"})
}

func (rc *ReportController) TopArticles(c echo.Context) error {
	limit, err := validators.ParseLimit(c.QueryParam("limit"), rc.defaults.ArticlesLimit)
	if err != nil {
		return rc.badRequest(c, service.ReportTopArticles, err)
	}

	articles, err := rc.reportService.TopArticles(c.Request().Context(), limit)
	if err != nil {
		return rc.internalError(c, service.ReportTopArticles, err)
	}

	return c.JSON(http.StatusOK, articlesResponse{Articles: articles})
}

func (rc *ReportController) TopAuthors(c echo.Context) error {
	authors, err := rc.reportService.TopAuthors(c.Request().Context())
	if err != nil {
		return rc.internalError(c, service.ReportTopAuthors, err)
	}

	return c.JSON(http.StatusOK, authorsResponse{Authors: authors})
}

func (rc *ReportController) ErrorDays(c echo.Context) error {
	threshold, err := validators.ParseThreshold(c.QueryParam("threshold"), rc.defaults.ErrorThreshold)
	if err != nil {
		return rc.badRequest(c, service.ReportErrorDays, err)
	}

	days, err := rc.reportService.ErrorDays(c.Request().Context(), threshold)
	if err != nil {
		return rc.internalError(c, service.ReportErrorDays, err)
	}

	return c.JSON(http.StatusOK, errorDaysResponse{Threshold: threshold, ErrorDays: days})
}

func (rc *ReportController) Generate(c echo.Context) error {
	limit, err := validators.ParseLimit(c.QueryParam("limit"), rc.defaults.ArticlesLimit)
	if err != nil {
		return rc.badRequest(c, "all", err)
	}
	threshold, err := validators.ParseThreshold(c.QueryParam("threshold"), rc.defaults.ErrorThreshold)
	if err != nil {
		return rc.badRequest(c, "all", err)
	}

	report, err := rc.reportService.Generate(c.Request().Context(), domain.ReportOptions{
		ArticlesLimit:  limit,
		ErrorThreshold: threshold,
	})
	if err != nil {
		return rc.internalError(c, "all", err)
	}

	return c.JSON(http.StatusOK, report)
}
