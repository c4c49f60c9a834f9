package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/reimbazz/GF-Innovation-service/internal/contracts"
	"github.com/reimbazz/GF-Innovation-service/internal/domain/investment"
	appErrors "github.com/reimbazz/GF-Innovation-service/internal/errors"
	"github.com/reimbazz/GF-Innovation-service/internal/logger"
)

type Handler struct {
	InvestmentService *investment.Service
}

func NewHandler(investmentSvc *investment.Service) *Handler {
	return &Handler{InvestmentService: investmentSvc}
}

// respondErrors responde falhas de criação/atualização no envelope
// {errors: [...]} esperado pelo frontend.
func (h *Handler) respondErrors(c *gin.Context, err error) {
	appErr := h.logError(c, err)
	c.JSON(appErr.StatusCode, contracts.ErrorsResponse{Errors: appErrors.Messages(err)})
}

// respondError responde falhas de exclusão no envelope {error: "..."}.
func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := h.logError(c, err)
	c.JSON(appErr.StatusCode, contracts.ErrorResponse{Error: appErr.Message})
}

func (h *Handler) logError(c *gin.Context, err error) *appErrors.AppError {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	return appErr
}
