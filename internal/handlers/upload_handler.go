package handlers

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	apperrors "alfredoptarigan/interview-assistant/internal/errors"
	"alfredoptarigan/interview-assistant/internal/services"
)

type UploadHandler struct {
	ingestor services.ResumeIngestor
	sessions *session.Store
}

func NewUploadHandler(ingestor services.ResumeIngestor, sessions *session.Store) *UploadHandler {
	return &UploadHandler{
		ingestor: ingestor,
		sessions: sessions,
	}
}

func (h *UploadHandler) HandleUploadResume(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, apperrors.NewValidationError(apperrors.ErrCodeNoFile, apperrors.MsgNoFile))
	}

	data, err := readFormFile(fileHeader)
	if err != nil {
		return respondError(c, apperrors.NewServerError(apperrors.ErrCodeStorageFailed, apperrors.MsgServerFailure, err))
	}

	sess, err := getSession(h.sessions, c)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.ingestor.Ingest(c.UserContext(), sess.ID(), fileHeader.Filename, data)
	if err != nil {
		return respondError(c, err)
	}

	sess.Set(sessionKeyResumeText, resp.Text)
	sess.Set(sessionKeyResumeFilename, resp.Filename)
	if err := saveSession(sess); err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

func readFormFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return data, nil
}
