package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	apperrors "alfredoptarigan/interview-assistant/internal/errors"
	"alfredoptarigan/interview-assistant/internal/models"
	"alfredoptarigan/interview-assistant/internal/services"
)

type ChatHandler struct {
	interview services.InterviewService
	sessions  *session.Store
}

func NewChatHandler(interview services.InterviewService, sessions *session.Store) *ChatHandler {
	return &ChatHandler{
		interview: interview,
		sessions:  sessions,
	}
}

func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidationError(apperrors.ErrCodeInvalidRequest, apperrors.MsgInvalidPayload))
	}

	sess, err := getSession(h.sessions, c)
	if err != nil {
		return respondError(c, err)
	}

	reply, err := h.interview.Chat(c.UserContext(), sessionContext(sess), services.ParseHistory(req.History), req.Message)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.ChatResponse{Reply: reply})
}
