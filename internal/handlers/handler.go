package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"artcurator/internal/logger"
	"artcurator/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services  *service.Service
	log       *logger.Logger
	staticDir string
}

// NewHandler constructs a new HTTP handler. staticDir holds the built SPA;
// it may be empty in tests.
func NewHandler(services *service.Service, log *logger.Logger, staticDir string) *Handler {
	return &Handler{services: services, log: log, staticDir: staticDir}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		h.registerAuthRoutes(api)
		h.registerPublicRoutes(api)
		h.registerProtectedRoutes(api)
	}

	// Anything that is not an API route falls through to the SPA entry
	// document so client-side routing survives refreshes.
	router.NoRoute(h.spaFallback)

	return router
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
		// Development cleanup only; not reachable from the client.
		auth.DELETE("/:userId", h.deleteUser)
	}
}

// registerPublicRoutes mounts the endpoints the original app serves without
// a token: the splash-page sample and the id-to-username lookup.
func (h *Handler) registerPublicRoutes(api *gin.RouterGroup) {
	api.GET("/museum/random", h.randomArtworks)
	api.GET("/db/:userId", h.getUsername)
}

func (h *Handler) registerProtectedRoutes(api *gin.RouterGroup) {
	protected := api.Group("", h.identityMiddleware)
	{
		museum := protected.Group("/museum")
		{
			museum.GET("/department/:departmentId/:page", h.departmentPage)
			museum.GET("/object/:objectId", h.getObject)
		}

		favorites := protected.Group("/favorites")
		{
			favorites.GET("/:userId", h.listFavoriteIDs)
			favorites.GET("/:userId/:page", h.favoritesPage)
			favorites.POST("/add/:userId/:artId", h.addFavorite)
			favorites.DELETE("/delete/:userId/:artId", h.removeFavorite)
		}

		gallery := protected.Group("/gallery")
		{
			gallery.GET("/:userId", h.listGallery)
			gallery.POST("/:userId/:artId", h.submitToGallery)
			gallery.DELETE("/:userId/:artId", h.removeFromGallery)
		}

		followers := protected.Group("/followers")
		{
			followers.GET("/:userId", h.listFollowing)
			followers.POST("/add/:userId/:targetId", h.follow)
			followers.DELETE("/delete/:userId/:targetId", h.unfollow)
		}

		protected.GET("/user/search/:userId/:query", h.searchUsers)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) spaFallback(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, errorBody(codeNotFound, "no such endpoint"))
		return
	}
	if h.staticDir == "" {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(filepath.Join(h.staticDir, "index.html"))
}
