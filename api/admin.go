package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/service/admin"
)

type AdminHandler struct {
	service admin.AdminUseCase
}

type stageRoleChangeRequest struct {
	TargetUserID int64  `json:"target_user_id"`
	RoleID       int64  `json:"role_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
}

func NewAdminHandler(service admin.AdminUseCase) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.POST("/role-change", h.stage)
	router.POST("/role-change/confirm", h.confirm)
	router.POST("/role-change/discard", h.discard)
}

func (h *AdminHandler) stage(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req stageRoleChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nonce, err := h.service.StageRoleChange(c.Request.Context(), actor, admin.StageRoleChangeInput{
		TargetUserID: req.TargetUserID,
		RoleID:       req.RoleID,
		FullName:     req.FullName,
		Email:        req.Email,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"staged": nonce})
}

func (h *AdminHandler) confirm(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	user, err := h.service.ConfirmRoleChange(c.Request.Context(), actor)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"applied": gin.H{
			"user_id": user.ID,
			"role_id": user.RoleID,
		},
	})
}

func (h *AdminHandler) discard(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.service.DiscardRoleChange(c.Request.Context(), actor); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"discarded": true})
}
