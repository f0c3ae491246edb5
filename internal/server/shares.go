package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/permissions"
	"github.com/bodhi-os/bodhi/internal/utils"
	"github.com/bodhi-os/bodhi/internal/validation"
)

func (s *Server) handleListShares(c *gin.Context) {
	shares, err := s.store.ListShares(s.queryUserID(c), c.Query("shareType"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shares)
}

func (s *Server) handleCreateShare(c *gin.Context) {
	var share models.AccountabilityShare
	if err := c.ShouldBindJSON(&share); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	// Shares are always sent as the session user.
	share.FromUserID = s.session(c).UserID
	share.Reaction = ""

	if r := validation.Share(share); !r.Valid() {
		respondValidation(c, r)
		return
	}

	now := utils.NowStamp()
	share.ID = uuid.NewString()
	share.CreatedAt = now
	share.UpdatedAt = now

	if err := s.store.AddShare(share); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, share)
}

// handleUpdateShare updates a share. The sender may edit the message;
// the recipient may set or clear the reaction.
func (s *Server) handleUpdateShare(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	id, ok := bodyID(c, body)
	if !ok {
		return
	}

	existing, err := s.store.GetShare(id)
	if err != nil {
		respondError(c, err)
		return
	}

	session := s.session(c)
	if session.UserID != existing.FromUserID && session.UserID != existing.ToUserID {
		respondForbidden(c, permissions.Message("edit", "share"))
		return
	}

	updated := existing
	if err := json.Unmarshal(body, &updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	updated.ID = existing.ID
	updated.FromUserID = existing.FromUserID
	updated.ToUserID = existing.ToUserID
	updated.ShareType = existing.ShareType
	updated.ItemID = existing.ItemID
	updated.CreatedAt = existing.CreatedAt

	// Each side may only touch its own half of the share.
	if session.UserID == existing.FromUserID {
		updated.Reaction = existing.Reaction
	} else {
		updated.Message = existing.Message
	}

	if r := validation.Share(updated); !r.Valid() {
		respondValidation(c, r)
		return
	}
	updated.UpdatedAt = utils.NowStamp()

	if err := s.store.UpdateShare(updated); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteShare(c *gin.Context) {
	id, ok := deleteID(c)
	if !ok {
		return
	}

	existing, err := s.store.GetShare(id)
	if err != nil {
		respondError(c, err)
		return
	}

	session := s.session(c)
	if session.Role != models.RoleMe && session.UserID != existing.FromUserID {
		respondForbidden(c, permissions.Message("delete", "share"))
		return
	}

	if err := s.store.DeleteShare(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "share deleted"})
}
