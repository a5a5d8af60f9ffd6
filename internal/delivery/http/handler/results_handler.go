package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"resume-screen/internal/delivery/http/middleware"
	"resume-screen/internal/pkg/response"
	"resume-screen/internal/usecase"
)

type ResultsHandler struct {
	uc usecase.ResultsUsecase
}

func NewResultsHandler(uc usecase.ResultsUsecase) *ResultsHandler {
	return &ResultsHandler{uc: uc}
}

// RegisterJobRoutes mounts the per-job result views on the jobs group.
func (h *ResultsHandler) RegisterJobRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:id/results", h.JobResults)
	r.Get("/:id/export", h.ExportCSV)
	r.Get("/:id/chart", h.SkillChart)
}

// RegisterResumeRoutes mounts the single-resume views on the resumes
// group.
func (h *ResultsHandler) RegisterResumeRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:id", h.ResumeDetails)
}

func (h *ResultsHandler) JobResults(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	rows, err := h.uc.JobResults(c.Context(), userID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, rows)
}

func (h *ResultsHandler) ResumeDetails(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	resumeID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.uc.ResumeDetails(c.Context(), userID, resumeID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, detail)
}

// ExportCSV streams the job's results as a CSV attachment rather than
// the JSON envelope the other endpoints use.
func (h *ResultsHandler) ExportCSV(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	out, err := h.uc.ExportCSV(c.Context(), userID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", out.Filename))
	return c.Send(out.Content)
}

func (h *ResultsHandler) SkillChart(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	data, err := h.uc.SkillChart(c.Context(), userID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
