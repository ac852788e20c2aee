package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "alfredoptarigan/interview-assistant/internal/errors"
	"alfredoptarigan/interview-assistant/internal/repositories"
)

type ResumeHandler struct {
	resumeRepo repositories.ResumeRepository
	sessions   *session.Store
}

// NewResumeHandler serves upload records. resumeRepo is nil when the
// database is disabled, and every lookup then reports not found.
func NewResumeHandler(resumeRepo repositories.ResumeRepository, sessions *session.Store) *ResumeHandler {
	return &ResumeHandler{
		resumeRepo: resumeRepo,
		sessions:   sessions,
	}
}

func (h *ResumeHandler) HandleGetResume(c *fiber.Ctx) error {
	// Parse ID from params
	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	if h.resumeRepo == nil {
		return fiber.NewError(fiber.StatusNotFound, "Resume not found")
	}

	sess, err := getSession(h.sessions, c)
	if err != nil {
		return respondError(c, err)
	}

	record, err := h.resumeRepo.FindByID(c.UserContext(), resumeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Resume not found")
	}
	if err != nil {
		return respondError(c, apperrors.NewServerError(apperrors.ErrCodeStorageFailed, apperrors.MsgServerFailure, err))
	}

	// Records are only visible to the session that uploaded them.
	if record.SessionID != sess.ID() {
		return fiber.NewError(fiber.StatusNotFound, "Resume not found")
	}

	return c.JSON(record)
}
