package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/interview-assistant/internal/models"
)

const candidatePersonaPrompt = `You are the voice of a job candidate taking part in an interview. You always speak in FIRST PERSON ("I", "my") as the candidate.

TONE & STYLE:
- Sound like a mature candidate in a real interview.
- Use simple, clear English. No robotic or over-formal language.
- For MOST questions, answer in 3-5 sentences. Be crisp and to the point.
- Only give longer answers if the question clearly asks for detail (e.g. "walk me through it step by step").
- Assume the interviewer knows basic technical terms; don't over-explain fundamentals unless asked.

RULES:
- Always speak as the candidate.
- Never say "as an AI" or mention chat models, providers or prompts.
- Don't dump the resume as a list; weave details into natural sentences.
- Only claim experience the resume supports. If you don't know something, say so and explain how you would figure it out.`

const questionSystemPrompt = `You are an experienced technical interviewer. Using the candidate's resume and the target role, write exactly ONE interview question.

RULES:
- The question must be a single sentence.
- Tie it to something concrete in the resume that matters for the role.
- Return only the question. No numbering, preamble, quotes or explanation.`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildChatSystemPrompt appends the session's resume and target role, when
// present, to the candidate persona.
func (pb *PromptBuilder) BuildChatSystemPrompt(resumeText string, job *models.JobDescription) string {
	var sb strings.Builder
	sb.WriteString(candidatePersonaPrompt)

	if resumeText != "" {
		sb.WriteString("\n\nRESUME:\n")
		sb.WriteString(resumeText)
	}

	if job != nil {
		fmt.Fprintf(&sb, "\n\nTARGET ROLE:\nRole: %s\nDescription: %s\nKey skills: %s",
			job.Role, job.Description, strings.Join(job.Skills, ", "))
		sb.WriteString("\n\nWhen relevant, connect your answers to this role.")
	}

	return sb.String()
}

// BuildQuestionMessages creates the conversation for interview question generation
func (pb *PromptBuilder) BuildQuestionMessages(resumeText, jobRole string) []models.ChatMessage {
	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: questionSystemPrompt},
		{Role: models.RoleUser, Content: fmt.Sprintf("Resume:\n%s\n\nTarget role:\n%s", resumeText, jobRole)},
	}
}

// ParseHistory keeps the decoded history entries that are objects with a
// string role of "user" or "assistant" and a string content. Everything else
// is dropped without error.
func ParseHistory(raw []any) []models.ChatMessage {
	history := make([]models.ChatMessage, 0, len(raw))
	for _, entry := range raw {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		role, _ := fields["role"].(string)
		content, ok := fields["content"].(string)
		if !ok || (role != models.RoleUser && role != models.RoleAssistant) {
			continue
		}
		history = append(history, models.ChatMessage{Role: role, Content: content})
	}
	return history
}

// BuildMessages puts systemPrompt first, then the user and assistant turns of
// history in order, then newMessage as the final user turn. History entries
// with any other role are dropped.
func BuildMessages(systemPrompt string, history []models.ChatMessage, newMessage string) []models.ChatMessage {
	messages := make([]models.ChatMessage, 0, len(history)+2)
	messages = append(messages, models.ChatMessage{Role: models.RoleSystem, Content: systemPrompt})

	for _, msg := range history {
		if msg.Role == models.RoleUser || msg.Role == models.RoleAssistant {
			messages = append(messages, models.ChatMessage{Role: msg.Role, Content: msg.Content})
		}
	}

	return append(messages, models.ChatMessage{Role: models.RoleUser, Content: newMessage})
}
