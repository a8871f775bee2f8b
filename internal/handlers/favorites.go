package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      One page of a user's favorites
// @Tags         favorites
// @Produce      json
// @Success      200  {object}  service.FavoritesPage
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/favorites/{userId}/{page} [get]
// @Security     BearerAuth
func (h *Handler) favoritesPage(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}
	page, ok := pathInt(c, "page")
	if !ok {
		return
	}

	result, err := h.services.Favorites.Page(c.Request.Context(), userID, page)
	if err != nil {
		h.respondError(c, err, "favorites_page_failed", "user_id", userID, "page", page)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary      Bare liked art IDs
// @Tags         favorites
// @Produce      json
// @Success      200  {array}   int
// @Router       /api/favorites/{userId} [get]
// @Security     BearerAuth
func (h *Handler) listFavoriteIDs(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}

	ids, err := h.services.Favorites.ListIDs(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "favorites_list_ids_failed", "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, ids)
}

// @Summary      Like an artwork
// @Tags         favorites
// @Produce      json
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/favorites/add/{userId}/{artId} [post]
// @Security     BearerAuth
func (h *Handler) addFavorite(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}
	artID, ok := pathInt(c, "artId")
	if !ok {
		return
	}

	if err := h.services.Favorites.Add(c.Request.Context(), userID, artID); err != nil {
		h.respondError(c, err, "favorite_add_failed", "user_id", userID, "art_id", artID)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Un-like an artwork
// @Tags         favorites
// @Produce      json
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/favorites/delete/{userId}/{artId} [delete]
// @Security     BearerAuth
func (h *Handler) removeFavorite(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}
	artID, ok := pathInt(c, "artId")
	if !ok {
		return
	}

	if err := h.services.Favorites.Remove(c.Request.Context(), userID, artID); err != nil {
		h.respondError(c, err, "favorite_remove_failed", "user_id", userID, "art_id", artID)
		return
	}
	c.Status(http.StatusNoContent)
}
