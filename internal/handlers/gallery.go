package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// galleryRequest matches the client's form field name.
type galleryRequest struct {
	Text string `json:"gallery-text" binding:"required"`
}

// @Summary      Curate a favorite into the Gallery
// @Description  Sets the curator description. Rejected with gallery_full once five entries exist.
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Param        body  body      galleryRequest  true  "Description payload"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/gallery/{userId}/{artId} [post]
// @Security     BearerAuth
func (h *Handler) submitToGallery(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}
	artID, ok := pathInt(c, "artId")
	if !ok {
		return
	}
	var req galleryRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.SubmitToGallery(c.Request.Context(), userID, artID, req.Text); err != nil {
		h.respondError(c, err, "gallery_submit_failed", "user_id", userID, "art_id", artID)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Remove a piece from the Gallery
// @Description  Clears the description; the favorite itself is kept.
// @Tags         gallery
// @Produce      json
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/gallery/{userId}/{artId} [delete]
// @Security     BearerAuth
func (h *Handler) removeFromGallery(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}
	artID, ok := pathInt(c, "artId")
	if !ok {
		return
	}

	if err := h.services.RemoveFromGallery(c.Request.Context(), userID, artID); err != nil {
		h.respondError(c, err, "gallery_remove_failed", "user_id", userID, "art_id", artID)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      List a user's Gallery
// @Tags         gallery
// @Produce      json
// @Success      200  {array}   models.Favorite
// @Router       /api/gallery/{userId} [get]
// @Security     BearerAuth
func (h *Handler) listGallery(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}

	entries, err := h.services.ListGallery(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "gallery_list_failed", "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, entries)
}
