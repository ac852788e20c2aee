package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	apperrors "alfredoptarigan/interview-assistant/internal/errors"
	"alfredoptarigan/interview-assistant/internal/models"
	"alfredoptarigan/interview-assistant/internal/services"
)

type JobHandler struct {
	sessions *session.Store
}

func NewJobHandler(sessions *session.Store) *JobHandler {
	return &JobHandler{sessions: sessions}
}

func (h *JobHandler) HandleSetJob(c *fiber.Ctx) error {
	var req models.SetJobRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidationError(apperrors.ErrCodeInvalidRequest, apperrors.MsgInvalidPayload))
	}

	job, err := services.ValidateJob(req)
	if err != nil {
		return respondError(c, err)
	}

	sess, err := getSession(h.sessions, c)
	if err != nil {
		return respondError(c, err)
	}

	sess.Set(sessionKeyJob, job)
	if err := saveSession(sess); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SetJobResponse{
		Status: "ok",
		Job:    job,
	})
}
