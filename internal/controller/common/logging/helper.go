package logginghelper

import (
	"github.com/logwise-app/logwise/internal/domain"
	log "github.com/sirupsen/logrus"
)

func LogUploadReceived(filename, format string, size int) {
	log.WithFields(log.Fields{
		"filename": filename,
		"format":   format,
		"size":     size,
	}).Info("Received log upload")
}

func LogSessionCreated(session domain.Session) {
	log.WithFields(log.Fields{
		"session_id": session.ID,
		"total_logs": session.TotalLogs,
		"anomalies":  session.Anomalies,
	}).Info("Session analyzed and saved")
}

func LogUploadFailed(filename string, err error) {
	log.WithFields(log.Fields{
		"filename": filename,
		"error":    err,
	}).Error("Failed to analyze upload")
}
