package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"alfredoptarigan/interview-assistant/internal/config"
	apperrors "alfredoptarigan/interview-assistant/internal/errors"
	"alfredoptarigan/interview-assistant/internal/models"
	"alfredoptarigan/interview-assistant/internal/services"
)

const (
	sessionKeyResumeText     = "resume_text"
	sessionKeyResumeFilename = "resume_filename"
	sessionKeyJob            = "job"
)

// NewSessionStore returns the in-memory store holding each client's resume
// and target role, keyed by the session cookie.
func NewSessionStore(cfg config.SessionConfig) *session.Store {
	store := session.New(session.Config{
		Expiration:     cfg.Expiration,
		KeyLookup:      "cookie:" + cfg.CookieName,
		CookieSecure:   cfg.CookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		KeyGenerator:   uuid.NewString,
	})
	store.RegisterType(models.JobDescription{})

	return store
}

func getSession(store *session.Store, c *fiber.Ctx) (*session.Session, error) {
	sess, err := store.Get(c)
	if err != nil {
		return nil, apperrors.NewServerError(apperrors.ErrCodeSessionFailed, apperrors.MsgServerFailure, err)
	}
	return sess, nil
}

func saveSession(sess *session.Session) error {
	if err := sess.Save(); err != nil {
		return apperrors.NewServerError(apperrors.ErrCodeSessionFailed, apperrors.MsgServerFailure, err)
	}
	return nil
}

func sessionContext(sess *session.Session) services.SessionContext {
	sc := services.SessionContext{ID: sess.ID()}

	if text, ok := sess.Get(sessionKeyResumeText).(string); ok {
		sc.ResumeText = text
	}
	if job, ok := sess.Get(sessionKeyJob).(models.JobDescription); ok {
		sc.Job = &job
	}

	return sc
}
