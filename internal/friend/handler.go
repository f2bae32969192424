package friend

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tabbit-app/tabbit-backend/pkg/response"
)

// Handler handles HTTP requests for friend operations
type Handler struct {
	service *Service
}

// NewHandler creates a new friend handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for friend endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /friends
// @Summary      Add a friend
// @Description  Add a friend to the friends list
// @Tags         friends
// @Accept       json
// @Produce      json
// @Param        request body CreateFriendRequest true "Friend creation request"
// @Success      201 {object} response.APIResponse{data=FriendResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /friends [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if req.Name == "" {
		response.BadRequest(w, "Name is required")
		return
	}

	friend, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.InternalError(w, "Failed to add friend")
		return
	}

	response.JSON(w, http.StatusCreated, friend.ToResponse())
}

// GetByID handles GET /friends/{id}
// @Summary      Get friend by ID
// @Description  Get a single friend by their ID
// @Tags         friends
// @Produce      json
// @Param        id path string true "Friend ID"
// @Success      200 {object} response.APIResponse{data=FriendResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /friends/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	friend, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrFriendNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get friend")
		return
	}

	response.JSON(w, http.StatusOK, friend.ToResponse())
}

// List handles GET /friends
// @Summary      List friends
// @Description  Get the full friends list, ordered by name
// @Tags         friends
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]FriendResponse}
// @Router       /friends [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	friends, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list friends")
		return
	}

	friendResponses := make([]*FriendResponse, len(friends))
	for i, friend := range friends {
		friendResponses[i] = friend.ToResponse()
	}

	response.JSON(w, http.StatusOK, friendResponses)
}

// Update handles PUT /friends/{id}
// @Summary      Update a friend
// @Description  Update a friend's name or contact details
// @Tags         friends
// @Accept       json
// @Produce      json
// @Param        id path string true "Friend ID"
// @Param        request body UpdateFriendRequest true "Friend update request"
// @Success      200 {object} response.APIResponse{data=FriendResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /friends/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	friend, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrFriendNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update friend")
		return
	}

	response.JSON(w, http.StatusOK, friend.ToResponse())
}

// Delete handles DELETE /friends/{id}
// @Summary      Remove a friend
// @Description  Remove a friend from the friends list
// @Tags         friends
// @Produce      json
// @Param        id path string true "Friend ID"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Router       /friends/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		response.InternalError(w, "Failed to remove friend")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Friend removed successfully"})
}
