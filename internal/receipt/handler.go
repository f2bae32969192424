package receipt

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tabbit-app/tabbit-backend/pkg/response"
)

// Handler handles HTTP requests for receipt operations
type Handler struct {
	service *Service
}

// NewHandler creates a new receipt handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for receipt endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)

	// Split operations
	r.Post("/{id}/split", h.FinalizeSplit)
	r.Post("/{id}/split/validate", h.ValidateSplit)
	r.Get("/{id}/summary", h.Summary)

	return r
}

// Create handles POST /receipts
// @Summary      Store a receipt
// @Description  Store a scanned receipt with its line items and totals
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        request body CreateReceiptRequest true "Receipt creation request"
// @Success      201 {object} response.APIResponse{data=ReceiptResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /receipts [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if req.Merchant == "" {
		response.BadRequest(w, "Merchant is required")
		return
	}
	if len(req.Items) == 0 {
		response.BadRequest(w, "At least one item is required")
		return
	}

	receipt, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.InternalError(w, "Failed to store receipt")
		return
	}

	response.JSON(w, http.StatusCreated, receipt.ToResponse())
}

// GetByID handles GET /receipts/{id}
// @Summary      Get receipt by ID
// @Description  Get a receipt with its items and any finalized split
// @Tags         receipts
// @Produce      json
// @Param        id path string true "Receipt ID"
// @Success      200 {object} response.APIResponse{data=ReceiptResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /receipts/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	receipt, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrReceiptNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get receipt")
		return
	}

	response.JSON(w, http.StatusOK, receipt.ToResponse())
}

// List handles GET /receipts
// @Summary      List receipts
// @Description  Get a paginated list of stored receipts, newest first
// @Tags         receipts
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]ReceiptResponse}
// @Router       /receipts [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	receipts, total, err := h.service.List(r.Context(), page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list receipts")
		return
	}

	receiptResponses := make([]*ReceiptResponse, len(receipts))
	for i, receipt := range receipts {
		receiptResponses[i] = receipt.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, receiptResponses, meta)
}

// Delete handles DELETE /receipts/{id}
// @Summary      Delete a receipt
// @Description  Delete a receipt and its items
// @Tags         receipts
// @Produce      json
// @Param        id path string true "Receipt ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /receipts/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrReceiptNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete receipt")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Receipt deleted successfully"})
}

// FinalizeSplit handles POST /receipts/{id}/split
// @Summary      Finalize a split
// @Description  Validate and calculate a split using EQUAL, ITEMIZED, PERCENTAGE, or CUSTOM strategy, then persist it on the receipt
// @Tags         splits
// @Accept       json
// @Produce      json
// @Param        id path string true "Receipt ID"
// @Param        request body SplitRequest true "Split request"
// @Success      200 {object} response.APIResponse{data=split.Result}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse{data=split.Validation}
// @Router       /receipts/{id}/split [post]
func (h *Handler) FinalizeSplit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, validation, err := h.service.FinalizeSplit(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrReceiptNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrInvalidSplit) {
			// Validation failures are expected user-facing conditions; the
			// message list goes back for display.
			response.JSON(w, http.StatusUnprocessableEntity, validation)
			return
		}
		response.BadRequest(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// ValidateSplit handles POST /receipts/{id}/split/validate
// @Summary      Validate a split
// @Description  Check a proposed split for completeness without persisting anything
// @Tags         splits
// @Accept       json
// @Produce      json
// @Param        id path string true "Receipt ID"
// @Param        request body SplitRequest true "Split request"
// @Success      200 {object} response.APIResponse{data=split.Validation}
// @Failure      404 {object} response.APIResponse
// @Router       /receipts/{id}/split/validate [post]
func (h *Handler) ValidateSplit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	validation, err := h.service.ValidateSplit(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrReceiptNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to validate split")
		return
	}

	response.JSON(w, http.StatusOK, validation)
}

// Summary handles GET /receipts/{id}/summary
// @Summary      Get split summary
// @Description  Get the per-person breakdown of a finalized split
// @Tags         splits
// @Produce      json
// @Param        id path string true "Receipt ID"
// @Success      200 {object} response.APIResponse{data=SummaryResponse}
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /receipts/{id}/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	summary, err := h.service.Summary(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrReceiptNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrSplitNotFinalized) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to build summary")
		return
	}

	response.JSON(w, http.StatusOK, summary)
}

// Share handles GET /share/{code} (mounted at the API root, not under
// /receipts, because share links are public)
// @Summary      Public share page data
// @Description  Get the per-person breakdown for a shared receipt by its share code
// @Tags         share
// @Produce      json
// @Param        code path string true "Share code"
// @Success      200 {object} response.APIResponse{data=SummaryResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /share/{code} [get]
func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	summary, err := h.service.SummaryByShareCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, ErrReceiptNotFound) || errors.Is(err, ErrSplitNotFinalized) {
			// A share link for an unfinished split behaves like a dead link.
			response.NotFound(w, "share not found")
			return
		}
		response.InternalError(w, "Failed to build summary")
		return
	}

	response.JSON(w, http.StatusOK, summary)
}
