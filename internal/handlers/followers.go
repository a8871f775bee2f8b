package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Users this user follows
// @Tags         followers
// @Produce      json
// @Success      200  {array}   models.PublicUser
// @Router       /api/followers/{userId} [get]
// @Security     BearerAuth
func (h *Handler) listFollowing(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}

	following, err := h.services.ListFollowing(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "followers_list_failed", "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, following)
}

// @Summary      Follow a user
// @Tags         followers
// @Produce      json
// @Success      201
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/followers/add/{userId}/{targetId} [post]
// @Security     BearerAuth
func (h *Handler) follow(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}
	targetID, ok := pathInt(c, "targetId")
	if !ok {
		return
	}

	if err := h.services.Follow(c.Request.Context(), userID, targetID); err != nil {
		h.respondError(c, err, "follow_failed", "user_id", userID, "target_id", targetID)
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary      Unfollow a user
// @Tags         followers
// @Produce      json
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/followers/delete/{userId}/{targetId} [delete]
// @Security     BearerAuth
func (h *Handler) unfollow(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}
	targetID, ok := pathInt(c, "targetId")
	if !ok {
		return
	}

	if err := h.services.Unfollow(c.Request.Context(), userID, targetID); err != nil {
		h.respondError(c, err, "unfollow_failed", "user_id", userID, "target_id", targetID)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Search users by username substring
// @Description  Query must be a single word of at least three characters.
// @Tags         followers
// @Produce      json
// @Success      200  {array}   models.PublicUser
// @Failure      400  {object}  map[string]string
// @Router       /api/user/search/{userId}/{query} [get]
// @Security     BearerAuth
func (h *Handler) searchUsers(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}
	query := c.Param("query")

	users, err := h.services.SearchUsers(c.Request.Context(), userID, query)
	if err != nil {
		h.respondError(c, err, "user_search_failed", "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, users)
}
