package handler

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v3"

	"resume-screen/internal/delivery/http/middleware"
	"resume-screen/internal/pkg/response"
	"resume-screen/internal/usecase"
)

const uploadFieldName = "resumes"

type ScreeningHandler struct {
	uc          usecase.ScreeningUsecase
	maxUploadMB int
}

func NewScreeningHandler(uc usecase.ScreeningUsecase, maxUploadMB int) *ScreeningHandler {
	return &ScreeningHandler{uc: uc, maxUploadMB: maxUploadMB}
}

func (h *ScreeningHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:id/resumes", h.Upload)
}

// Upload screens a multipart batch of resume files against the job in
// the path. Files are read fully into memory; the body limit configured
// on the app bounds the whole request.
func (h *ScreeningHandler) Upload(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Expected multipart form data", nil, err)
	}

	headers := form.File[uploadFieldName]
	if len(headers) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "No files uploaded", nil, nil)
	}

	maxBytes := int64(h.maxUploadMB) << 20
	files := make([]usecase.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		if maxBytes > 0 && fh.Size > maxBytes {
			msg := fmt.Sprintf("File %s exceeds the %d MB limit", fh.Filename, h.maxUploadMB)
			return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, msg, nil, nil)
		}

		f, err := fh.Open()
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Could not read uploaded file", nil, err)
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Could not read uploaded file", nil, err)
		}

		files = append(files, usecase.UploadedFile{Filename: fh.Filename, Data: data})
	}

	summary, err := h.uc.ScreenResumes(c.Context(), userID, jobID, files)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, summary)
}
