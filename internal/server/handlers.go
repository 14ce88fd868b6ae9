package server

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cleared-dev/ledgerview/internal/export"
	"github.com/cleared-dev/ledgerview/internal/logger"
	"github.com/cleared-dev/ledgerview/internal/normalize"
	"github.com/cleared-dev/ledgerview/internal/report"
	"github.com/cleared-dev/ledgerview/internal/store"
)

// HandleHealth reports liveness and the running version.
func (s *Server) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "version": s.version})
}

// HandleWebhook stores a raw payload under its report key.
func (s *Server) HandleWebhook(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxPayloadBytes))
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"ok": false, "error": err.Error()})
		return
	}

	rec, err := store.NewRecord(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if err := s.store.Put(c.Request.Context(), rec); err != nil {
		log.Error().Err(err).Str("report_key", rec.Key).Msg("storing payload")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	log.Info().Str("report_key", rec.Key).Int("bytes", len(body)).Msg("payload stored")
	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"report_key": rec.Key,
		"view_url":   ViewURL(rec.Key),
	})
}

// HandleReport rebuilds and exports the report stored under :key.
func (s *Server) HandleReport(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())

	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		c.String(http.StatusBadRequest, "report_key required")
		return
	}
	if _, _, _, err := store.ParseKey(key); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	if !export.Renders(format) {
		c.String(http.StatusNotImplemented, "format %s is rendered by an external service", format)
		return
	}

	rec, err := s.store.Get(c.Request.Context(), key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.String(http.StatusNotFound, "report not found: generate it first, then reopen this URL")
		return
	case errors.Is(err, store.ErrInvalidKey):
		c.String(http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Error().Err(err).Str("report_key", key).Msg("loading payload")
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	res := report.Build(normalize.Parse(rec.Payload, s.opts))
	if failed := res.Validate(); len(failed) > 0 {
		log.Warn().Str("report_key", key).Int("failed_checks", len(failed)).Msg("report has failed validations")
	}

	var doc any = export.Wrap(res)
	if format == export.FormatCSV {
		doc = res
	}
	c.Header("Content-Type", format.ContentType())
	c.Status(http.StatusOK)
	if err := export.Write(c.Writer, format, doc); err != nil {
		log.Error().Err(err).Str("report_key", key).Msg("writing report")
	}
}

// ViewURL is the lookup path of a report key.
func ViewURL(key string) string {
	return "/api/report/" + url.PathEscape(key)
}
