package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reimbazz/GF-Innovation-service/internal/contracts"
	appErrors "github.com/reimbazz/GF-Innovation-service/internal/errors"
)

func (h *Handler) ListInvestments(c *gin.Context) {
	ctx := c.Request.Context()
	investments, err := h.InvestmentService.ListInvestments(ctx)
	if err != nil {
		h.respondErrors(c, err)
		return
	}

	records := make([]contracts.InvestmentResponse, 0, len(investments))
	for _, inv := range investments {
		records = append(records, contracts.ResponseFromInvestment(inv))
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) CreateInvestment(c *gin.Context) {
	var body contracts.InvestmentPayload
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondErrors(c, appErrors.ParseValidationErrors(err))
		return
	}

	form, err := body.FormData()
	if err != nil {
		h.respondErrors(c, appErrors.ErrValidation.WithMessage("data deve ser uma data válida").WithError(err))
		return
	}

	ctx := c.Request.Context()
	created, err := h.InvestmentService.CreateInvestment(ctx, form)
	if err != nil {
		h.respondErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ResponseFromInvestment(created))
}

func (h *Handler) UpdateInvestment(c *gin.Context) {
	var body contracts.InvestmentPayload
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondErrors(c, appErrors.ParseValidationErrors(err))
		return
	}

	form, err := body.FormData()
	if err != nil {
		h.respondErrors(c, appErrors.ErrValidation.WithMessage("data deve ser uma data válida").WithError(err))
		return
	}

	ctx := c.Request.Context()
	updated, err := h.InvestmentService.UpdateInvestment(ctx, c.Param("id"), form)
	if err != nil {
		h.respondErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ResponseFromInvestment(updated))
}

func (h *Handler) DeleteInvestment(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.InvestmentService.DeleteInvestment(ctx, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
