package models

// ChatRequest leaves history entries untyped; malformed turns are filtered
// out rather than failing the whole request.
type ChatRequest struct {
	Message string `json:"message"`
	History []any  `json:"history"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type UploadResumeResponse struct {
	ID       string `json:"id,omitempty"`
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// SetJobRequest keeps every field untyped so that type mismatches surface as
// validation errors instead of JSON decode failures.
type SetJobRequest struct {
	Role        any `json:"role"`
	Description any `json:"description"`
	Skills      any `json:"skills"`
}

type SetJobResponse struct {
	Status string         `json:"status"`
	Job    JobDescription `json:"job"`
}

type GenerateQuestionRequest struct {
	ResumeText string `json:"resume_text"`
	JobRole    string `json:"job_role"`
}

type GenerateQuestionResponse struct {
	Question string `json:"question"`
}

type QuestionHistoryResponse struct {
	Questions []QuestionRecord `json:"questions"`
}
