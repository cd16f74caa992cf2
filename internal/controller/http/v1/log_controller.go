package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/logwise-app/logwise/internal/repo/repotypes"
	"github.com/logwise-app/logwise/internal/service"
)

type LogController struct {
	analysisService service.Analysis
}

func NewLogController(as service.Analysis) *LogController {
	return &LogController{analysisService: as}
}

func (ctr *LogController) GetLogs(c echo.Context) error {
	filter := buildFilter(c, false)

	logs, err := ctr.analysisService.GetLogs(c.Request().Context(), filter)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, toLogResponses(logs))
}

func (ctr *LogController) GetAnomalies(c echo.Context) error {
	filter := buildFilter(c, true)

	logs, err := ctr.analysisService.GetLogs(c.Request().Context(), filter)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, toLogResponses(logs))
}

func (ctr *LogController) GetStats(c echo.Context) error {
	stats, err := ctr.analysisService.GetStats(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, toStatsResponse(stats))
}

func buildFilter(c echo.Context, onlyAnomalies bool) repotypes.LogFilter {
	filter := repotypes.LogFilter{
		SessionID:     c.Param("id"),
		Level:         c.QueryParam("level"),
		OnlyAnomalies: onlyAnomalies,
	}

	if from, err := time.Parse(time.RFC3339, c.QueryParam("from")); err == nil {
		filter.From = from
	}
	if to, err := time.Parse(time.RFC3339, c.QueryParam("to")); err == nil {
		filter.To = to
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		filter.Limit = limit
	}

	return filter
}
