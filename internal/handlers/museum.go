package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Random splash-page artworks
// @Description  Six distinct artworks with images from the curated department.
// @Tags         museum
// @Produce      json
// @Success      200  {array}   service.RandomArtwork
// @Failure      502  {object}  map[string]string
// @Router       /api/museum/random [get]
func (h *Handler) randomArtworks(c *gin.Context) {
	sample, err := h.services.RandomSample(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "museum_random_failed")
		return
	}
	c.JSON(http.StatusOK, sample)
}

// @Summary      Browse a department page
// @Tags         museum
// @Produce      json
// @Success      200  {object}  service.ArtworkPage
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/museum/department/{departmentId}/{page} [get]
// @Security     BearerAuth
func (h *Handler) departmentPage(c *gin.Context) {
	departmentID, ok := pathInt(c, "departmentId")
	if !ok {
		return
	}
	page, ok := pathInt(c, "page")
	if !ok {
		return
	}

	result, err := h.services.DepartmentPage(c.Request.Context(), departmentID, page)
	if err != nil {
		h.respondError(c, err, "museum_department_failed", "department_id", departmentID, "page", page)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary      Fetch one artwork
// @Tags         museum
// @Produce      json
// @Success      200  {object}  museum.Artwork
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/museum/object/{objectId} [get]
// @Security     BearerAuth
func (h *Handler) getObject(c *gin.Context) {
	objectID, ok := pathInt(c, "objectId")
	if !ok {
		return
	}

	art, err := h.services.Object(c.Request.Context(), objectID)
	if err != nil {
		h.respondError(c, err, "museum_object_failed", "object_id", objectID)
		return
	}
	c.JSON(http.StatusOK, art)
}
