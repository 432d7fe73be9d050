package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contracts"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port/usecases_port"
)

const inquiryRejectedMessage = "Please correct the highlighted fields and try again."

type InquiryHandler struct {
	submitUC usecases_port.SubmitInquiryUseCase
}

func NewInquiryHandler(submitUC usecases_port.SubmitInquiryUseCase) *InquiryHandler {
	return &InquiryHandler{submitUC: submitUC}
}

// SubmitInquiry обрабатывает POST /api/v1/inquiries
func (h *InquiryHandler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SubmitInquiry"})

	body, err := readBody(w, r)
	if err != nil {
		RespondWithJSON(w, http.StatusBadRequest, InquiryResponse{Success: false, Message: "Invalid request body"})
		return
	}
	if err := contracts.ValidateRequest(contracts.InquiryV1, body); err != nil {
		writeInquiryError(w, err, logger)
		return
	}

	var req InquiryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		RespondWithJSON(w, http.StatusBadRequest, InquiryResponse{Success: false, Message: "Invalid request body"})
		return
	}

	receipt, err := h.submitUC.Execute(r.Context(), req.toDomain())
	if err != nil {
		writeInquiryError(w, err, logger)
		return
	}
	RespondWithJSON(w, http.StatusOK, InquiryResponse{Success: receipt.Success, Message: receipt.Message})
}

func writeInquiryError(w http.ResponseWriter, err error, logger port.LoggerPort) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		RespondWithJSON(w, http.StatusBadRequest, InquiryResponse{
			Success: false,
			Message: inquiryRejectedMessage,
			Fields:  verr.Fields,
		})
		return
	}
	logger.Error("Inquiry submission failed", err, nil)
	RespondWithJSON(w, http.StatusInternalServerError, InquiryResponse{
		Success: false,
		Message: "We could not send your message. Please try again later.",
	})
}
