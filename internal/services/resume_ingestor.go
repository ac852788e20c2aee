package services

import (
	"context"
	"log"

	apperrors "alfredoptarigan/interview-assistant/internal/errors"
	"alfredoptarigan/interview-assistant/internal/models"
	"alfredoptarigan/interview-assistant/internal/repositories"
)

type ResumeIngestor interface {
	Ingest(ctx context.Context, sessionID, filename string, data []byte) (*models.UploadResumeResponse, error)
}

type resumeIngestor struct {
	parser     DocumentParserService
	storage    StorageService
	resumeRepo repositories.ResumeRepository
}

// NewResumeIngestor validates, stores and parses uploaded resumes. A nil
// storage skips persisting the raw bytes and a nil resumeRepo skips recording
// the upload.
func NewResumeIngestor(parser DocumentParserService, storage StorageService, resumeRepo repositories.ResumeRepository) ResumeIngestor {
	return &resumeIngestor{
		parser:     parser,
		storage:    storage,
		resumeRepo: resumeRepo,
	}
}

func (i *resumeIngestor) Ingest(ctx context.Context, sessionID, filename string, data []byte) (*models.UploadResumeResponse, error) {
	if filename == "" {
		return nil, apperrors.NewValidationError(apperrors.ErrCodeNoFilename, apperrors.MsgNoFilename)
	}
	if _, ok := SupportedFormat(filename); !ok {
		return nil, apperrors.NewUnsupportedFormatError(apperrors.ErrCodeUnsupportedFormat, apperrors.MsgUnsupportedFormat)
	}
	if len(data) == 0 {
		return nil, apperrors.NewValidationError(apperrors.ErrCodeEmptyFile, apperrors.MsgEmptyFile)
	}

	safeName := SanitizeFilename(filename)
	if _, ok := SupportedFormat(safeName); !ok {
		return nil, apperrors.NewValidationError(apperrors.ErrCodeInvalidFilename, apperrors.MsgInvalidFilename)
	}

	var location string
	if i.storage != nil {
		var err error
		location, err = i.storage.SaveFile(ctx, safeName, data)
		if err != nil {
			log.Printf("❌ Failed to store %s: %v", safeName, err)
			return nil, apperrors.NewServerError(apperrors.ErrCodeStorageFailed, apperrors.MsgServerFailure, err)
		}
	}

	log.Printf("📄 Parsing resume %s (%d bytes)...", safeName, len(data))
	content, err := i.parser.ExtractTextWithMetaData(safeName, data)
	if err != nil {
		log.Printf("❌ Resume parsing error for %s: %v", safeName, err)
		return nil, err
	}

	resp := &models.UploadResumeResponse{
		Filename: safeName,
		Text:     content.Text,
	}

	if i.resumeRepo != nil {
		record := &models.ResumeRecord{
			SessionID:        sessionID,
			OriginalFilename: filename,
			Filename:         safeName,
			StorageLocation:  location,
			TextLength:       len(content.Text),
		}
		if err := i.resumeRepo.Create(ctx, record); err != nil {
			log.Printf("⚠️  Warning: Failed to record resume upload: %v", err)
		} else {
			resp.ID = record.ID.String()
		}
	}

	log.Printf("✅ Resume %s parsed (%d sections, %d chars)", safeName, content.Sections, len(content.Text))

	return resp, nil
}
