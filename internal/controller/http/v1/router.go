package v1

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/logwise-app/logwise/internal/metrics"
	"github.com/logwise-app/logwise/internal/service"
)

func ConfigureRouter(handler *echo.Echo, services *service.Services, counters *metrics.Counters, maxUploadSize int64) {
	handler.Use(countRequests(counters))

	api := handler.Group("/api/v1")

	sc := NewSessionController(services.Analysis, services.Session, maxUploadSize)
	api.POST("/sessions", sc.Upload)
	api.GET("/sessions", sc.List)
	api.PATCH("/sessions/:id", sc.Rename)
	api.DELETE("/sessions/:id", sc.Delete)

	lc := NewLogController(services.Analysis)
	api.GET("/sessions/:id/logs", lc.GetLogs)
	api.GET("/sessions/:id/anomalies", lc.GetAnomalies)
	api.GET("/sessions/:id/stats", lc.GetStats)

	cc := NewChatController(services.Chat)
	api.GET("/sessions/:id/chat", cc.GetHistory)
	api.POST("/sessions/:id/chat", cc.StoreMessage)
	api.PATCH("/sessions/:id/chat/:msgID", cc.UpdateMessage)
	api.DELETE("/sessions/:id/chat/:msgID", cc.DeleteMessage)
}

func countRequests(counters *metrics.Counters) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			counters.HttpRequests.Inc(c.Request().Method, strconv.Itoa(c.Response().Status))
			return err
		}
	}
}
