package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bodhi-os/bodhi/internal/auth"
	"github.com/bodhi-os/bodhi/internal/constants"
	"github.com/bodhi-os/bodhi/internal/logger"
	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/storage"
	"github.com/bodhi-os/bodhi/internal/validation"
)

const sessionKey = "session"

// requireSession authenticates the request from the session cookie or an
// Authorization bearer token and stores the verified session in the
// request context.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constants.SessionCookie)
		if err != nil || token == "" {
			header := c.GetHeader("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				token = strings.TrimPrefix(header, "Bearer ")
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		session, err := s.sessions.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

func (s *Server) session(c *gin.Context) auth.Session {
	v, _ := c.Get(sessionKey)
	session, _ := v.(auth.Session)
	return session
}

// queryUserID resolves the userId query parameter, defaulting to the
// session user.
func (s *Server) queryUserID(c *gin.Context) string {
	if id := c.Query("userId"); id != "" {
		return id
	}
	return s.session(c).UserID
}

// ownsRow reports whether the session user may mutate a row keyed by
// user id. ME may mutate everything; WIFE only her own rows.
func (s *Server) ownsRow(c *gin.Context, rowUserID string) bool {
	session := s.session(c)
	return session.Role == models.RoleMe || session.UserID == rowUserID
}

// respondError maps storage and validation failures onto the API error
// shape.
func respondError(c *gin.Context, err error) {
	var nf *storage.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
		return
	}
	logger.Error("Request failed", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func respondValidation(c *gin.Context, r validation.Result) {
	c.JSON(http.StatusBadRequest, gin.H{"error": r.Error(), "details": r.Errors})
}

func respondForbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"error": message})
}
