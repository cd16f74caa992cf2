package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/logwise-app/logwise/internal/controller/http/validators"
	"github.com/logwise-app/logwise/internal/ingest"
	"github.com/logwise-app/logwise/internal/repo/repoerrs"
	"github.com/logwise-app/logwise/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ingest.ErrBadFormat), errors.Is(err, ingest.ErrUnknownFormat), errors.Is(err, validators.ErrValidation):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNoRecords):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, repoerrs.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: repoerrs.ErrNotFound.Error()})
	default:
		log.Debug(err.Error())
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
