package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for both sign-up and sign-in.
type authCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, errorBody(codeBadRequest, err.Error()))
		return false
	}
	return true
}

// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      201   {object}  models.PublicUser
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/auth/sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.SignUp(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondError(c, err, "sign_up_failed", "username", input.Username)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      200   {object}  map[string]interface{}  "token, user"
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, user, err := h.services.SignIn(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("sign_in_failed", "username", input.Username)
		}
		// Same body for unknown user and wrong password.
		c.JSON(http.StatusUnauthorized, errorBody(codeUnauthorized, "invalid login"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// @Summary      Delete an account (development only)
// @Tags         auth
// @Produce      json
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/auth/{userId} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}
	if err := h.services.DeleteUser(c.Request.Context(), userID); err != nil {
		h.respondError(c, err, "delete_user_failed", "user_id", userID)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Resolve a user id to its username
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/db/{userId} [get]
func (h *Handler) getUsername(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}
	username, err := h.services.GetUsername(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "get_username_failed", "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": username})
}
