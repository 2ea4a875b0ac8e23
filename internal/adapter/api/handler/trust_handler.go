package handler

import (
	"github.com/labstack/echo/v4"

	"fetan/internal/usecase"
	"fetan/pkg/response"
)

type TrustHandler struct {
	trustUseCase *usecase.TrustUseCase
}

func NewTrustHandler(trustUseCase *usecase.TrustUseCase) *TrustHandler {
	return &TrustHandler{trustUseCase: trustUseCase}
}

func (h *TrustHandler) SubmitReport(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		ReportedID  string `json:"reported_id" validate:"required"`
		Reason      string `json:"reason" validate:"required"`
		Description string `json:"description" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	err := h.trustUseCase.SubmitReport(c.Request().Context(), usecase.SubmitReportInput{
		ReporterID:  uid,
		ReportedID:  req.ReportedID,
		Reason:      req.Reason,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, map[string]string{"status": "submitted"})
}

func (h *TrustHandler) RequestVerification(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		DocumentType string `json:"document_type" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.trustUseCase.RequestVerification(c.Request().Context(), uid, req.DocumentType); err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, map[string]string{"status": "requested"})
}

func (h *TrustHandler) VerificationStatus(c echo.Context) error {
	uid := c.Get("uid").(string)

	status := h.trustUseCase.GetVerificationStatus(c.Request().Context(), uid)
	return response.Success(c, map[string]string{"status": status})
}
