package api

import (
	"net/http"

	"github.com/phrazzld/storefront-api/internal/api/shared"
	"github.com/phrazzld/storefront-api/internal/service"
	"github.com/phrazzld/storefront-api/internal/store"
)

// ItemHandler handles catalog requests
type ItemHandler struct {
	itemService service.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// ListItems handles GET /api/item
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemService.ListItems(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list items")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, itemsToResponse(items))
}

// GetItem handles GET /api/item/{id}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := getPathUUID(r, "id", store.ErrItemNotFound)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	item, err := h.itemService.GetItem(r.Context(), itemID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get item")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(*item))
}

// FindItemsByName handles GET /api/item/name/{name}
func (h *ItemHandler) FindItemsByName(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemService.FindItemsByName(r.Context(), getPathString(r, "name"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to find items")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, itemsToResponse(items))
}
