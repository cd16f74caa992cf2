package v1

import (
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	logginghelper "github.com/logwise-app/logwise/internal/controller/common/logging"
	"github.com/logwise-app/logwise/internal/controller/http/validators"
	"github.com/logwise-app/logwise/internal/ingest"
	"github.com/logwise-app/logwise/internal/service"
)

type SessionController struct {
	analysisService service.Analysis
	sessionService  service.Session
	maxUploadSize   int64
}

func NewSessionController(as service.Analysis, ss service.Session, maxUploadSize int64) *SessionController {
	return &SessionController{
		analysisService: as,
		sessionService:  ss,
		maxUploadSize:   maxUploadSize,
	}
}

// Upload ingests one log file and runs it through the scoring pipeline.
func (ctr *SessionController) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "file is required"})
	}

	title := c.FormValue("title")
	format := ingest.Format(c.FormValue("format"))

	if err := validators.ValidateUpload(fileHeader.Size, ctr.maxUploadSize, title, format); err != nil {
		return handleError(c, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return handleError(c, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return handleError(c, err)
	}

	logginghelper.LogUploadReceived(fileHeader.Filename, string(format), len(content))

	session, err := ctr.analysisService.Analyze(c.Request().Context(), service.AnalyzeInput{
		Title:    title,
		Filename: fileHeader.Filename,
		Content:  content,
		Format:   format,
	})
	if err != nil {
		logginghelper.LogUploadFailed(fileHeader.Filename, err)
		return handleError(c, err)
	}

	logginghelper.LogSessionCreated(session)

	return c.JSON(http.StatusCreated, toSessionResponse(session, time.Now()))
}

func (ctr *SessionController) List(c echo.Context) error {
	sessions, err := ctr.sessionService.ListSessions(c.Request().Context())
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, toSessionResponses(sessions, time.Now()))
}

type renameRequest struct {
	Title string `json:"title"`
}

func (ctr *SessionController) Rename(c echo.Context) error {
	var req renameRequest
	if err := c.Bind(&req); err != nil || req.Title == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "title is required"})
	}

	if err := ctr.sessionService.RenameSession(c.Request().Context(), c.Param("id"), req.Title); err != nil {
		return handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (ctr *SessionController) Delete(c echo.Context) error {
	if err := ctr.sessionService.DeleteSession(c.Request().Context(), c.Param("id")); err != nil {
		return handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
