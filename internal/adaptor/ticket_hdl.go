package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// PurchaseTickets handles POST /api/purchases
func (h *TicketHandler) PurchaseTickets(w http.ResponseWriter, r *http.Request) {
	var req request.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	tickets, err := req.ToTicketRequests()
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	summary, err := h.service.PurchaseTickets(r.Context(), req.AccountID, tickets...)
	if err != nil {
		h.handleServiceError(w, err, "purchase tickets")
		return
	}

	utils.ResponseCreated(w, "success", response.PurchaseToResponse(summary))
}

// ListTicketTypes handles GET /api/ticket-types
func (h *TicketHandler) ListTicketTypes(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.ListTicketTypes(r.Context()))
}

func (h *TicketHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var invalid *usecase.InvalidPurchaseError

	switch {
	case errors.As(err, &invalid):
		h.log.Warn(operation+" rejected",
			zap.String("reason", invalid.Reason),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, invalid.Reason, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, "Payment or seat reservation failed")
	}
}
