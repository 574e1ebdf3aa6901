package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/repository"
	"github.com/yeremiapane/restaurant-ordering/schema"
	"github.com/yeremiapane/restaurant-ordering/utils"
	"gorm.io/gorm"
)

type SessionController struct {
	Sessions *repository.SessionRepository
	TTL      time.Duration
	Now      func() time.Time
}

func NewSessionController(db *gorm.DB, ttl time.Duration) *SessionController {
	return &SessionController{
		Sessions: repository.NewSessionRepository(db),
		TTL:      ttl,
		Now:      time.Now,
	}
}

// CreateSession opens a session at a table, expiring TTL from now.
func (sc *SessionController) CreateSession(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		respondFailure(c, err)
		return
	}
	in, err := schema.DecodeSession(body)
	if err != nil {
		respondFailure(c, err)
		return
	}

	session := in.Model()
	expires := sc.Now().UTC().Add(sc.TTL)
	session.ExpiresAt = &expires
	if err := sc.Sessions.Create(c.Request.Context(), &session); err != nil {
		respondFailure(c, err)
		return
	}
	created, err := sc.Sessions.FindByID(c.Request.Context(), session.ID)
	if err != nil {
		respondFailure(c, err)
		return
	}

	utils.InfoLogger.Printf("Session opened: %d (table=%d, expires=%s)", created.ID, created.TableID, expires.Format(time.RFC3339))
	utils.RespondJSON(c, http.StatusCreated, "Session created successfully", created)
}

func (sc *SessionController) GetSession(c *gin.Context) {
	id, err := paramID(c, "session_id")
	if err != nil {
		respondFailure(c, err)
		return
	}
	session, err := sc.Sessions.FindByID(c.Request.Context(), id)
	if err != nil {
		respondFailure(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Session detail", session)
}

// GetTableSessions lists the table's sessions that are active and unexpired.
func (sc *SessionController) GetTableSessions(c *gin.Context) {
	id, err := paramID(c, "table_id")
	if err != nil {
		respondFailure(c, err)
		return
	}
	sessions, err := sc.Sessions.ListActiveByTable(c.Request.Context(), id, sc.Now().UTC())
	if err != nil {
		respondFailure(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of active sessions", sessions)
}
