package logginghelper

import (
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

func LogRequestFailed(c echo.Context, report string, err error) {
	log.WithFields(log.Fields{
		"report": report,
		"path":   c.Request().URL.Path,
		"query":  c.QueryString(),
		"error":  err,
	}).Error("Failed to serve report")
}

func LogRequestRejected(c echo.Context, report string, err error) {
	log.WithFields(log.Fields{
		"report": report,
		"query":  c.QueryString(),
		"reason": err,
	}).Warn("Rejected report request")
}
