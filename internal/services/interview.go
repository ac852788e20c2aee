package services

import (
	"context"
	"log"
	"strings"
	"time"

	apperrors "alfredoptarigan/interview-assistant/internal/errors"
	"alfredoptarigan/interview-assistant/internal/models"
	"alfredoptarigan/interview-assistant/internal/repositories"
)

const (
	msgQuestionInputRequired = "resume_text and job_role are required."
	questionHistoryLimit     = 50
)

// SessionContext is the per-session state a chat turn is answered from.
type SessionContext struct {
	ID         string
	ResumeText string
	Job        *models.JobDescription
}

type InterviewService interface {
	Chat(ctx context.Context, sess SessionContext, history []models.ChatMessage, message string) (string, error)
	GenerateQuestion(ctx context.Context, sessionID, resumeText, jobRole string) (string, error)
	ListQuestions(ctx context.Context, sessionID string) ([]models.QuestionRecord, error)
}

type InterviewOptions struct {
	Temperature          float32
	Timeout              time.Duration
	RequireResumeForChat bool
}

type interviewService struct {
	llm           LLMService
	questionRepo  repositories.QuestionRepository
	promptBuilder *PromptBuilder
	opts          InterviewOptions
}

// NewInterviewService wires the chat and question flows. questionRepo may be
// nil, in which case generated questions are not recorded.
func NewInterviewService(llm LLMService, questionRepo repositories.QuestionRepository, opts InterviewOptions) InterviewService {
	return &interviewService{
		llm:           llm,
		questionRepo:  questionRepo,
		promptBuilder: NewPromptBuilder(),
		opts:          opts,
	}
}

func (s *interviewService) Chat(ctx context.Context, sess SessionContext, history []models.ChatMessage, message string) (string, error) {
	if s.opts.RequireResumeForChat && sess.ResumeText == "" {
		return "", apperrors.NewValidationError(apperrors.ErrCodeResumeRequired, apperrors.MsgResumeRequired)
	}

	systemPrompt := s.promptBuilder.BuildChatSystemPrompt(sess.ResumeText, sess.Job)
	messages := BuildMessages(systemPrompt, history, message)

	reply, err := s.complete(ctx, messages)
	if err != nil {
		log.Printf("❌ Chat completion failed for session %s: %v", sess.ID, err)
		return "", apperrors.NewServerError(apperrors.ErrCodeAIServiceFailed, apperrors.MsgServerFailure, err)
	}

	return reply, nil
}

func (s *interviewService) GenerateQuestion(ctx context.Context, sessionID, resumeText, jobRole string) (string, error) {
	resumeText = strings.TrimSpace(resumeText)
	jobRole = strings.TrimSpace(jobRole)
	if resumeText == "" || jobRole == "" {
		return "", apperrors.NewValidationError(apperrors.ErrCodeInvalidRequest, msgQuestionInputRequired)
	}

	reply, err := s.complete(ctx, s.promptBuilder.BuildQuestionMessages(resumeText, jobRole))
	if err != nil {
		log.Printf("❌ Question generation failed for session %s: %v", sessionID, err)
		return "", apperrors.NewServerError(apperrors.ErrCodeAIServiceFailed, apperrors.MsgServerFailure, err)
	}

	question := strings.TrimSpace(reply)

	if s.questionRepo != nil {
		record := &models.QuestionRecord{
			SessionID: sessionID,
			JobRole:   jobRole,
			Question:  question,
			Model:     s.llm.Model(),
		}
		if err := s.questionRepo.Create(ctx, record); err != nil {
			log.Printf("⚠️  Warning: Failed to record question: %v", err)
		}
	}

	return question, nil
}

func (s *interviewService) ListQuestions(ctx context.Context, sessionID string) ([]models.QuestionRecord, error) {
	if s.questionRepo == nil {
		return []models.QuestionRecord{}, nil
	}

	records, err := s.questionRepo.ListBySession(ctx, sessionID, questionHistoryLimit)
	if err != nil {
		return nil, apperrors.NewServerError(apperrors.ErrCodeStorageFailed, apperrors.MsgServerFailure, err)
	}
	return records, nil
}

func (s *interviewService) complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	return s.llm.Complete(ctx, messages, s.opts.Temperature)
}
