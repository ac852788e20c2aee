package services

import (
	"strings"

	apperrors "alfredoptarigan/interview-assistant/internal/errors"
	"alfredoptarigan/interview-assistant/internal/models"
)

const (
	msgRoleRequired        = "role is required and must be a non-empty string."
	msgDescriptionRequired = "description is required and must be a non-empty string."
	msgSkillsRequired      = "skills is required and must be a non-empty list of strings."
	msgSkillsInvalid       = "skills must contain only non-empty strings."
)

// ValidateJob checks a decoded /set-job payload field by field and returns the
// first failure. On success every field is trimmed.
func ValidateJob(req models.SetJobRequest) (models.JobDescription, error) {
	role, ok := nonBlankString(req.Role)
	if !ok {
		return models.JobDescription{}, apperrors.NewValidationError(apperrors.ErrCodeInvalidRequest, msgRoleRequired)
	}

	description, ok := nonBlankString(req.Description)
	if !ok {
		return models.JobDescription{}, apperrors.NewValidationError(apperrors.ErrCodeInvalidRequest, msgDescriptionRequired)
	}

	rawSkills, ok := req.Skills.([]any)
	if !ok || len(rawSkills) == 0 {
		return models.JobDescription{}, apperrors.NewValidationError(apperrors.ErrCodeInvalidRequest, msgSkillsRequired)
	}

	skills := make([]string, 0, len(rawSkills))
	for _, raw := range rawSkills {
		skill, ok := nonBlankString(raw)
		if !ok {
			return models.JobDescription{}, apperrors.NewValidationError(apperrors.ErrCodeInvalidRequest, msgSkillsInvalid)
		}
		skills = append(skills, skill)
	}

	return models.JobDescription{
		Role:        role,
		Description: description,
		Skills:      skills,
	}, nil
}

func nonBlankString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}
