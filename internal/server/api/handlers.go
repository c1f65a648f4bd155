package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"questfs/internal/server/challenge"
	"questfs/internal/server/session"
)

// Handler contains the HTTP handlers for the questfs API.
type Handler struct {
	sessions   *session.Manager
	challenges *challenge.Registry
}

// NewHandler creates a new handler with its dependencies.
func NewHandler(sessions *session.Manager, challenges *challenge.Registry) *Handler {
	return &Handler{sessions: sessions, challenges: challenges}
}

type challengeInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type createSessionRequest struct {
	ChallengeID string `json:"challenge_id"`
}

type execRequest struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

type execResponse struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

type solveRequest struct {
	Secret string `json:"secret"`
}

// HandleHealth handles GET /health.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":          "healthy",
		"active_sessions": h.sessions.Count(),
		"challenges":      h.challenges.Len(),
	})
}

// HandleListChallenges handles GET /api/challenges.
func (h *Handler) HandleListChallenges(c echo.Context) error {
	list := h.challenges.List()
	out := make([]challengeInfo, 0, len(list))
	for _, ch := range list {
		out = append(out, challengeInfo{ID: ch.ID, Name: ch.Name, Description: ch.Description})
	}
	return c.JSON(http.StatusOK, out)
}

// HandleCreateSession handles POST /api/sessions.
// The body may name a challenge; the default challenge is used otherwise.
func (h *Handler) HandleCreateSession(c echo.Context) error {
	var req createSessionRequest
	// an empty body is fine, it just means the default challenge
	_ = c.Bind(&req)

	ch := h.challenges.Default()
	if req.ChallengeID != "" {
		var ok bool
		ch, ok = h.challenges.Get(req.ChallengeID)
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": fmt.Sprintf("unknown challenge %q", req.ChallengeID),
			})
		}
	}
	if ch == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error": "no challenges are configured",
		})
	}

	sess, err := h.sessions.Create(ch)
	if err != nil {
		if errors.Is(err, session.ErrTooManySessions) {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{
				"error": "session limit reached, try again later",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "failed to create session",
		})
	}

	state := sess.State()
	return c.JSON(http.StatusCreated, echo.Map{
		"session_id": sess.ID,
		"challenge": echo.Map{
			"id":          ch.ID,
			"name":        ch.Name,
			"description": ch.Description,
			"hint":        ch.Hint,
		},
		"pwd": state.WorkingDirectory,
	})
}

// HandleGetSession handles GET /api/sessions/:id.
func (h *Handler) HandleGetSession(c echo.Context) error {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return sessionNotFound(c)
	}
	return c.JSON(http.StatusOK, sess.State())
}

// HandleExec handles POST /api/sessions/:id/exec.
// Command failures are part of the game, so they come back as a 200 with
// the error string the terminal UI prints verbatim.
func (h *Handler) HandleExec(c echo.Context) error {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return sessionNotFound(c)
	}

	var req execRequest
	if err := c.Bind(&req); err != nil || req.Command == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "command is required",
		})
	}

	out, execErr := sess.Exec(req.Command, req.Args)
	resp := execResponse{Output: out}
	if execErr != nil {
		resp.Error = execErr.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

// HandleSolve handles POST /api/sessions/:id/solve.
func (h *Handler) HandleSolve(c echo.Context) error {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return sessionNotFound(c)
	}

	var req solveRequest
	if err := c.Bind(&req); err != nil || req.Secret == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "secret is required",
		})
	}

	completed := sess.Solve(req.Secret)
	return c.JSON(http.StatusOK, echo.Map{
		"completed": completed,
	})
}

// HandleArchive handles GET /api/sessions/:id/archive.
// Serves the session's tree as a zip attachment.
func (h *Handler) HandleArchive(c echo.Context) error {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return sessionNotFound(c)
	}

	data, err := sess.Archive()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "failed to build archive",
		})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s.zip", sess.ID))
	return c.Blob(http.StatusOK, "application/zip", data)
}

// HandleDeleteSession handles DELETE /api/sessions/:id.
func (h *Handler) HandleDeleteSession(c echo.Context) error {
	if err := h.sessions.Delete(c.Param("id")); err != nil {
		return sessionNotFound(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "session deleted",
	})
}

func sessionNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{
		"error": "session not found or expired",
	})
}
