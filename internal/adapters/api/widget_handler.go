package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherwidget.app/internal/adapters/view"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// SearchRequest is the body of POST /api/search. A blank place is accepted and ignored.
type SearchRequest struct {
	Place string `json:"place" form:"place" binding:"place"`
}

// WidgetResponse represents the HTTP response for a widget's current view
type WidgetResponse struct {
	State      weather.State   `json:"state"`
	Generation uint64          `json:"generation"`
	View       view.WidgetView `json:"view"`
}

type pageData struct {
	State        string
	DefaultPlace string
	View         view.WidgetView
}

// getPage handles GET / and queries the default place for a new session
func (s *HTTPServerAdapter) getPage(c *gin.Context) {
	session, created, err := s.session(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	if created && s.config.DefaultPlace != "" {
		result := session.Pipeline.Submit(context.WithoutCancel(c.Request.Context()), s.config.DefaultPlace)
		s.logger.Debug("Default place queried for new session",
			ports.F("session_id", session.ID),
			ports.F("place", s.config.DefaultPlace),
			ports.F("outcome", result.Outcome.String()))
	}

	c.HTML(http.StatusOK, "index.html.tmpl", pageData{
		State:        session.Pipeline.State().String(),
		DefaultPlace: s.config.DefaultPlace,
		View:         session.View.Snapshot(),
	})
}

// search handles POST /api/search requests
func (s *HTTPServerAdapter) search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		s.logger.Debug("Rejected search request", ports.F("error", err.Error()))
		s.handleError(c, errors.NewValidationError("place must be at most 100 characters with no control characters"))
		return
	}

	session, _, err := s.session(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	// The query finishes even if the client goes away so the session view stays consistent.
	result := session.Pipeline.Submit(context.WithoutCancel(c.Request.Context()), req.Place)

	fields := []ports.Field{
		ports.F("session_id", session.ID),
		ports.F("place", result.Place),
		ports.F("generation", result.Generation),
		ports.F("outcome", result.Outcome.String()),
	}
	if result.Failure != weather.FailureNone {
		fields = append(fields, ports.F("failure", result.Failure.String()))
	}
	s.logger.Debug("Search handled", fields...)

	s.respond(c, session)
}

// dismiss handles POST /api/dismiss requests
func (s *HTTPServerAdapter) dismiss(c *gin.Context) {
	session, _, err := s.session(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	session.Pipeline.Dismiss()
	s.respond(c, session)
}

// getView handles GET /api/view requests
func (s *HTTPServerAdapter) getView(c *gin.Context) {
	session, _, err := s.session(c)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newWidgetResponse(session))
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	status := http.StatusOK
	for _, result := range results {
		if result.Status != "healthy" {
			status = http.StatusServiceUnavailable
			break
		}
	}
	c.JSON(status, results)
}

// respond redirects browser form posts back to the page and returns JSON otherwise
func (s *HTTPServerAdapter) respond(c *gin.Context, session *WidgetSession) {
	if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.JSON(http.StatusOK, newWidgetResponse(session))
}

// session returns the caller's widget session, creating one when needed. The cookie is
// re-issued on every hit so its expiry slides with the store's idle TTL.
func (s *HTTPServerAdapter) session(c *gin.Context) (*WidgetSession, bool, error) {
	if id, err := c.Cookie(sessionCookieName); err == nil {
		if session, ok := s.sessions.Get(id); ok {
			s.setSessionCookie(c, session.ID)
			return session, false, nil
		}
	}

	session, err := s.sessions.Create()
	if err != nil {
		return nil, false, err
	}

	s.setSessionCookie(c, session.ID)
	return session, true, nil
}

func (s *HTTPServerAdapter) setSessionCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, id, s.config.SessionTTL, "/", "", false, true)
}

func newWidgetResponse(session *WidgetSession) WidgetResponse {
	return WidgetResponse{
		State:      session.Pipeline.State(),
		Generation: session.Pipeline.Generation(),
		View:       session.View.Snapshot(),
	}
}
