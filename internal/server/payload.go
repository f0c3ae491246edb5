package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bodhi-os/bodhi/internal/storage"
)

// idPayload extracts the row id from a mutation body.
type idPayload struct {
	ID string `json:"id"`
}

// readBody buffers the request body so it can be unmarshalled twice:
// once for the id, once over the loaded row. Updates are partial, so
// fields absent from the body keep their stored values.
func readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return nil, false
	}
	return body, true
}

// bodyID pulls the id field out of a buffered body.
func bodyID(c *gin.Context, body []byte) (string, bool) {
	var p idPayload
	if err := json.Unmarshal(body, &p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return "", false
	}
	if p.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return "", false
	}
	return p.ID, true
}

// deleteID resolves the row id for a delete, from the query string or
// the body.
func deleteID(c *gin.Context) (string, bool) {
	if id := c.Query("id"); id != "" {
		return id, true
	}
	body, err := io.ReadAll(c.Request.Body)
	if err == nil && len(body) > 0 {
		var p idPayload
		if json.Unmarshal(body, &p) == nil && p.ID != "" {
			return p.ID, true
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
	return "", false
}

// dateRange reads the date filters shared by tracker and weekly plan
// listings.
func dateRange(c *gin.Context) storage.DateRange {
	return storage.DateRange{
		Date:      c.Query("date"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
}
