package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jdjewellers/storefront-backend/services"
	"go.uber.org/zap"
)

// SessionHeader carries the browser's shopping session identifier.
const SessionHeader = "X-Session-ID"

type SessionController struct {
	sessions *services.SessionService
}

func NewSessionController(sessions *services.SessionService) *SessionController {
	return &SessionController{sessions: sessions}
}

// GetOrCreate echoes a known session id back or issues a fresh one. The
// browser persists the returned value and presents it on cart requests.
func (sc *SessionController) GetOrCreate(c *gin.Context) {
	presented := c.GetHeader(SessionHeader)

	sessionID, err := sc.sessions.GetOrCreate(c.Request.Context(), presented)
	if err != nil {
		zap.L().Error("failed to issue session id", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": sessionID})
}
