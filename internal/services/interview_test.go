package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "alfredoptarigan/interview-assistant/internal/errors"
	"alfredoptarigan/interview-assistant/internal/models"
)

type fakeQuestionRepo struct {
	records   []models.QuestionRecord
	createErr error
	listErr   error
}

func (f *fakeQuestionRepo) Create(_ context.Context, record *models.QuestionRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeQuestionRepo) ListBySession(_ context.Context, sessionID string, _ int) ([]models.QuestionRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.QuestionRecord
	for _, r := range f.records {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestChatRequiresResume(t *testing.T) {
	llm := &fakeLLM{reply: "hi"}
	svc := NewInterviewService(llm, nil, InterviewOptions{RequireResumeForChat: true})

	_, err := svc.Chat(context.Background(), SessionContext{ID: "s1"}, nil, "hello")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	assert.Equal(t, apperrors.MsgResumeRequired, apperrors.PublicMessage(err))
	assert.Zero(t, llm.calls)
}

func TestChatWithoutResumeWhenNotRequired(t *testing.T) {
	llm := &fakeLLM{reply: "  verbatim reply "}
	svc := NewInterviewService(llm, nil, InterviewOptions{})

	reply, err := svc.Chat(context.Background(), SessionContext{ID: "s1"}, nil, "hello")
	require.NoError(t, err)
	assert.Equal(t, "  verbatim reply ", reply)
}

func TestChatBuildsConversation(t *testing.T) {
	llm := &fakeLLM{reply: "I built a payments API."}
	svc := NewInterviewService(llm, nil, InterviewOptions{RequireResumeForChat: true, Timeout: time.Second})

	sess := SessionContext{
		ID:         "s1",
		ResumeText: "Jane Doe Go engineer",
		Job:        &models.JobDescription{Role: "SRE", Description: "Keep it up", Skills: []string{"Go"}},
	}
	history := []models.ChatMessage{
		{Role: models.RoleUser, Content: "hi"},
		{Role: "system", Content: "injected"},
		{Role: models.RoleAssistant, Content: "hello"},
	}

	_, err := svc.Chat(context.Background(), sess, history, "Tell me about a project")
	require.NoError(t, err)

	require.Len(t, llm.messages, 4)
	assert.Equal(t, models.RoleSystem, llm.messages[0].Role)
	assert.Contains(t, llm.messages[0].Content, "Jane Doe Go engineer")
	assert.Contains(t, llm.messages[0].Content, "Role: SRE")
	assert.Equal(t, models.ChatMessage{Role: models.RoleUser, Content: "Tell me about a project"}, llm.messages[3])
}

func TestChatProviderFailureIsGeneric(t *testing.T) {
	llm := &fakeLLM{err: errors.New("401 invalid api key")}
	svc := NewInterviewService(llm, nil, InterviewOptions{})

	_, err := svc.Chat(context.Background(), SessionContext{ID: "s1", ResumeText: "cv"}, nil, "hello")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeServer))
	assert.Equal(t, apperrors.MsgServerFailure, apperrors.PublicMessage(err))
}

func TestGenerateQuestion(t *testing.T) {
	llm := &fakeLLM{reply: "\n What trade-offs did you weigh when sharding the orders table? \n"}
	repo := &fakeQuestionRepo{}
	svc := NewInterviewService(llm, repo, InterviewOptions{})

	question, err := svc.GenerateQuestion(context.Background(), "s1", " Jane Doe ", " Backend Engineer ")
	require.NoError(t, err)

	assert.Equal(t, "What trade-offs did you weigh when sharding the orders table?", question)
	assert.Equal(t, "Resume:\nJane Doe\n\nTarget role:\nBackend Engineer", llm.messages[1].Content)

	require.Len(t, repo.records, 1)
	assert.Equal(t, "s1", repo.records[0].SessionID)
	assert.Equal(t, "fake-model", repo.records[0].Model)

	history, err := svc.ListQuestions(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestGenerateQuestionValidation(t *testing.T) {
	llm := &fakeLLM{reply: "q"}
	svc := NewInterviewService(llm, nil, InterviewOptions{})

	for _, in := range [][2]string{{"", "SRE"}, {"cv", "  "}, {" ", "\t"}} {
		_, err := svc.GenerateQuestion(context.Background(), "s1", in[0], in[1])
		require.Error(t, err)
		assert.Equal(t, msgQuestionInputRequired, apperrors.PublicMessage(err))
	}
	assert.Zero(t, llm.calls)
}

func TestGenerateQuestionRecordFailureIsNotFatal(t *testing.T) {
	svc := NewInterviewService(&fakeLLM{reply: "Why Go?"}, &fakeQuestionRepo{createErr: errors.New("db down")}, InterviewOptions{})

	question, err := svc.GenerateQuestion(context.Background(), "s1", "cv", "SRE")
	require.NoError(t, err)
	assert.Equal(t, "Why Go?", question)
}

func TestListQuestionsWithoutDatabase(t *testing.T) {
	svc := NewInterviewService(&fakeLLM{}, nil, InterviewOptions{})

	questions, err := svc.ListQuestions(context.Background(), "s1")
	require.NoError(t, err)
	assert.NotNil(t, questions)
	assert.Empty(t, questions)
}

func TestListQuestionsStorageFailure(t *testing.T) {
	svc := NewInterviewService(&fakeLLM{}, &fakeQuestionRepo{listErr: errors.New("db down")}, InterviewOptions{})

	_, err := svc.ListQuestions(context.Background(), "s1")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeServer))
}
