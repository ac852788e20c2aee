package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	apperrors "alfredoptarigan/interview-assistant/internal/errors"
	"alfredoptarigan/interview-assistant/internal/models"
	"alfredoptarigan/interview-assistant/internal/services"
)

type QuestionHandler struct {
	interview services.InterviewService
	sessions  *session.Store
}

func NewQuestionHandler(interview services.InterviewService, sessions *session.Store) *QuestionHandler {
	return &QuestionHandler{
		interview: interview,
		sessions:  sessions,
	}
}

func (h *QuestionHandler) HandleGenerateQuestion(c *fiber.Ctx) error {
	var req models.GenerateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidationError(apperrors.ErrCodeInvalidRequest, apperrors.MsgInvalidPayload))
	}

	sess, err := getSession(h.sessions, c)
	if err != nil {
		return respondError(c, err)
	}

	question, err := h.interview.GenerateQuestion(c.UserContext(), sess.ID(), req.ResumeText, req.JobRole)
	if err != nil {
		return respondError(c, err)
	}

	// Persist the session so the cookie sticks and /questions can find this one.
	if err := saveSession(sess); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.GenerateQuestionResponse{Question: question})
}

func (h *QuestionHandler) HandleListQuestions(c *fiber.Ctx) error {
	sess, err := getSession(h.sessions, c)
	if err != nil {
		return respondError(c, err)
	}

	questions, err := h.interview.ListQuestions(c.UserContext(), sess.ID())
	if err != nil {
		return respondError(c, err)
	}
	if questions == nil {
		questions = []models.QuestionRecord{}
	}

	return c.JSON(models.QuestionHistoryResponse{Questions: questions})
}
