package handler

import (
	"github.com/labstack/echo/v4"

	"fetan/internal/usecase"
	"fetan/pkg/response"
)

type JobHandler struct {
	jobUseCase *usecase.JobUseCase
}

func NewJobHandler(jobUseCase *usecase.JobUseCase) *JobHandler {
	return &JobHandler{jobUseCase: jobUseCase}
}

type createJobRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	CustomerName  string  `json:"customer_name" validate:"required"`
	PaymentStatus string  `json:"payment_status" validate:"omitempty,oneof=PENDING PAID FAILED"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,oneof=telebirr chapa cbe"`
	TransactionID string  `json:"transaction_id"`
}

func (h *JobHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	job, err := h.jobUseCase.CreateJob(c.Request().Context(), usecase.CreateJobInput{
		Title:         req.Title,
		Description:   req.Description,
		Amount:        req.Amount,
		CustomerID:    uid,
		CustomerName:  req.CustomerName,
		PaymentStatus: req.PaymentStatus,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, job)
}

// List returns the caller's jobs with optional dashboard filtering and
// sorting.
func (h *JobHandler) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	role := c.Get("role").(string)

	jobs, err := h.jobUseCase.GetJobsForUser(c.Request().Context(), uid, role)
	if err != nil {
		return response.Error(c, err)
	}

	filtered := usecase.FilterJobs(jobs, usecase.JobFilter{
		Status:   c.QueryParam("status"),
		FromDate: c.QueryParam("from"),
		ToDate:   c.QueryParam("to"),
		SortBy:   c.QueryParam("sort_by"),
		SortDesc: c.QueryParam("sort_dir") == "desc",
	})

	return response.Success(c, filtered)
}

func (h *JobHandler) Available(c echo.Context) error {
	jobs, err := h.jobUseCase.GetAvailableJobs(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, jobs)
}

func (h *JobHandler) Accept(c echo.Context) error {
	uid := c.Get("uid").(string)
	jobID := c.Param("id")

	var req struct {
		ProviderName string `json:"provider_name" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.jobUseCase.AcceptJob(c.Request().Context(), jobID, uid, req.ProviderName); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "accepted"})
}

func (h *JobHandler) Complete(c echo.Context) error {
	jobID := c.Param("id")

	if err := h.jobUseCase.CompleteJob(c.Request().Context(), jobID); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "completed"})
}
