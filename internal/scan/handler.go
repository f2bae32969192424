package scan

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tabbit-app/tabbit-backend/pkg/response"
)

// maxImageBytes caps uploads; phone camera receipt shots stay well under this.
const maxImageBytes = 10 << 20

// Handler handles HTTP requests for receipt scanning
type Handler struct {
	scanner Scanner
}

// NewHandler creates a new scan handler with the scanner dependency injected
func NewHandler(scanner Scanner) *Handler {
	return &Handler{scanner: scanner}
}

// Routes returns the router for scan endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Scan)

	return r
}

// Scan handles POST /scan
// @Summary      Scan a receipt image
// @Description  Send a receipt photo to the scanning service and get back the structured receipt for review
// @Tags         scan
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "Receipt image"
// @Success      200 {object} response.APIResponse{data=ParsedReceipt}
// @Failure      400 {object} response.APIResponse
// @Failure      502 {object} response.APIResponse
// @Router       /scan [post]
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "Image file is required")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		response.BadRequest(w, "Failed to read image")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	parsed, err := h.scanner.Scan(r.Context(), image, contentType)
	if err != nil {
		response.BadGateway(w, "Receipt scanning service is unavailable")
		return
	}

	response.JSON(w, http.StatusOK, parsed)
}
