package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contracts"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port/usecases_port"
	"github.com/go-chi/chi/v5"
)

type PropertyHandler struct {
	listUC   usecases_port.ListPropertiesUseCase
	getUC    usecases_port.GetPropertyUseCase
	createUC usecases_port.CreatePropertyUseCase
	updateUC usecases_port.UpdatePropertyUseCase
	deleteUC usecases_port.DeletePropertyUseCase
}

func NewPropertyHandler(
	listUC usecases_port.ListPropertiesUseCase,
	getUC usecases_port.GetPropertyUseCase,
	createUC usecases_port.CreatePropertyUseCase,
	updateUC usecases_port.UpdatePropertyUseCase,
	deleteUC usecases_port.DeletePropertyUseCase,
) *PropertyHandler {
	return &PropertyHandler{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ListProperties обрабатывает GET /api/v1/properties
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListProperties"})

	published, err := parseBoolParam(r, "published")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	featured, err := parseBoolParam(r, "featured")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := GetLimitOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := GetOffset(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	query := domain.PropertyQuery{
		Published: published,
		Featured:  featured,
		Type:      strings.TrimSpace(r.URL.Query().Get("type")),
		Near:      strings.TrimSpace(r.URL.Query().Get("near")),
		Limit:     limit,
		Offset:    offset,
	}

	props, err := h.listUC.Execute(r.Context(), query)
	if err != nil {
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve properties")
		return
	}

	response := make([]PropertyResponse, len(props))
	for i, p := range props {
		response[i] = toPropertyResponse(p)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetProperty обрабатывает GET /api/v1/properties/{propertyID}
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "propertyID")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "GetProperty",
		"property_id": id,
	})

	prop, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve property")
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*prop))
}

// CreateProperty обрабатывает POST /api/v1/properties
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	body, err := readBody(w, r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := contracts.ValidateRequest(contracts.PropertyCreateV1, body); err != nil {
		writeValidationError(w, err, logger)
		return
	}

	var req PropertyCreateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.createUC.Execute(r.Context(), req.toDomain())
	if errors.Is(err, domain.ErrPropertyExists) {
		WriteJSONError(w, http.StatusConflict, "Property with this id already exists")
		return
	}
	if err != nil {
		writeValidationError(w, err, logger)
		return
	}
	RespondWithJSON(w, http.StatusCreated, CreatedResponse{ID: created.ID})
}

// UpdateProperty обрабатывает PUT /api/v1/properties/{propertyID}
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "propertyID")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "UpdateProperty",
		"property_id": id,
	})

	body, err := readBody(w, r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := contracts.ValidateRequest(contracts.PropertyUpdateV1, body); err != nil {
		writeValidationError(w, err, logger)
		return
	}

	var req PropertyUpdateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), id, req.toPatch())
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		writeValidationError(w, err, logger)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*updated))
}

// DeleteProperty обрабатывает DELETE /api/v1/properties/{propertyID}
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "propertyID")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "DeleteProperty",
		"property_id": id,
	})

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to delete property")
		return
	}
	RespondWithJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// writeValidationError: ValidationError -> 400 с полями, остальное -> 500
func writeValidationError(w http.ResponseWriter, err error, logger port.LoggerPort) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		RespondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: verr.Fields,
		})
		return
	}
	logger.Error("Request failed", err, nil)
	WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
}
