package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bodhi-os/bodhi/internal/export"
	"github.com/bodhi-os/bodhi/internal/utils"
)

// handleExportCSV streams one entity collection as a CSV download.
func (s *Server) handleExportCSV(c *gin.Context) {
	entity := c.Query("entity")
	if entity == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entity query parameter is required"})
		return
	}

	rows, err := export.Fetch(s.store, entity, s.queryUserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		respondError(c, err)
		return
	}

	filename := export.Filename(entity, utils.Today())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// handleExportBackup streams the full JSON backup bundle.
func (s *Server) handleExportBackup(c *gin.Context) {
	var buf bytes.Buffer
	if err := export.WriteBackup(&buf, s.store, s.queryUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	filename := export.BackupFilename(utils.Today())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", buf.Bytes())
}
