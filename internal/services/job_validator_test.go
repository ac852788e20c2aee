package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "alfredoptarigan/interview-assistant/internal/errors"
	"alfredoptarigan/interview-assistant/internal/models"
)

func TestValidateJob(t *testing.T) {
	valid := func() models.SetJobRequest {
		return models.SetJobRequest{
			Role:        "Backend Engineer",
			Description: "Build APIs",
			Skills:      []any{"Go", "SQL"},
		}
	}

	tests := []struct {
		name     string
		mutate   func(r *models.SetJobRequest)
		errorMsg string
	}{
		{"missing role", func(r *models.SetJobRequest) { r.Role = nil }, msgRoleRequired},
		{"blank role", func(r *models.SetJobRequest) { r.Role = "   " }, msgRoleRequired},
		{"numeric role", func(r *models.SetJobRequest) { r.Role = 42.0 }, msgRoleRequired},
		{"missing description", func(r *models.SetJobRequest) { r.Description = nil }, msgDescriptionRequired},
		{"blank description", func(r *models.SetJobRequest) { r.Description = "\t\n" }, msgDescriptionRequired},
		{"missing skills", func(r *models.SetJobRequest) { r.Skills = nil }, msgSkillsRequired},
		{"empty skills", func(r *models.SetJobRequest) { r.Skills = []any{} }, msgSkillsRequired},
		{"skills as string", func(r *models.SetJobRequest) { r.Skills = "Go, SQL" }, msgSkillsRequired},
		{"blank skill", func(r *models.SetJobRequest) { r.Skills = []any{"Go", " "} }, msgSkillsInvalid},
		{"non-string skill", func(r *models.SetJobRequest) { r.Skills = []any{"Go", 3.0} }, msgSkillsInvalid},
		{"role checked first", func(r *models.SetJobRequest) { r.Role = ""; r.Skills = []any{} }, msgRoleRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			_, err := ValidateJob(req)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
			assert.Equal(t, tt.errorMsg, apperrors.PublicMessage(err))
		})
	}
}

func TestValidateJobTrims(t *testing.T) {
	job, err := ValidateJob(models.SetJobRequest{
		Role:        "  Backend Engineer ",
		Description: " Build APIs\n",
		Skills:      []any{" Go", "PostgreSQL "},
	})
	require.NoError(t, err)

	assert.Equal(t, models.JobDescription{
		Role:        "Backend Engineer",
		Description: "Build APIs",
		Skills:      []string{"Go", "PostgreSQL"},
	}, job)
}
