package gateway

import (
	"net/http"

	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/service"
	"github.com/gin-gonic/gin"
)

type messageResponse struct {
	Message string `json:"message"`
}

// createArtwork godoc
// @Summary      Add an artwork to the catalog
// @Description  Rating defaults to 5, stock to 1 and availability to true.
// @Tags         artworks
// @Accept       json
// @Produce      json
// @Param        artwork  body      models.Artwork  true  "Artwork"
// @Success      201      {object}  models.Artwork
// @Failure      400      {object}  errorResponse
// @Router       /artworks [post]
func (g *Gateway) createArtwork(c *gin.Context) {
	var artwork models.Artwork
	if err := c.ShouldBindJSON(&artwork); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := g.services.Artworks.CreateArtwork(c.Request.Context(), &artwork)
	if err != nil {
		g.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary  List the catalog
// @Tags     artworks
// @Produce  json
// @Success  200  {array}  models.Artwork
// @Router   /artworks [get]
func (g *Gateway) getAllArtworks(c *gin.Context) {
	g.respondArtworks(c, func() ([]models.Artwork, error) {
		return g.services.Artworks.GetAllArtworks(c.Request.Context())
	})
}

// @Summary  List artworks marked available
// @Tags     artworks
// @Produce  json
// @Success  200  {array}  models.Artwork
// @Router   /artworks/available [get]
func (g *Gateway) getAvailableArtworks(c *gin.Context) {
	g.respondArtworks(c, func() ([]models.Artwork, error) {
		return g.services.Artworks.GetAvailableArtworks(c.Request.Context())
	})
}

// @Summary  List artworks in a category
// @Tags     artworks
// @Produce  json
// @Param    category  path     string  true  "Category, any letter case"
// @Success  200       {array}  models.Artwork
// @Router   /artworks/category/{category} [get]
func (g *Gateway) getArtworksByCategory(c *gin.Context) {
	g.respondArtworks(c, func() ([]models.Artwork, error) {
		return g.services.Artworks.GetArtworksByCategory(c.Request.Context(), c.Param("category"))
	})
}

// @Summary  Get an artwork by id
// @Tags     artworks
// @Produce  json
// @Param    id   path      string  true  "Artwork id"
// @Success  200  {object}  models.Artwork
// @Failure  404  {object}  errorResponse
// @Router   /artworks/{id} [get]
func (g *Gateway) getArtwork(c *gin.Context) {
	artwork, err := g.services.Artworks.GetArtworkByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		g.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, artwork)
}

// updateArtwork godoc
// @Summary  Change some fields of an artwork
// @Tags     artworks
// @Accept   json
// @Produce  json
// @Param    id      path      string                 true  "Artwork id"
// @Param    update  body      service.ArtworkUpdate  true  "Fields to change"
// @Success  200     {object}  models.Artwork
// @Failure  400     {object}  errorResponse
// @Failure  404     {object}  errorResponse
// @Router   /artworks/{id} [put]
func (g *Gateway) updateArtwork(c *gin.Context) {
	var upd service.ArtworkUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artwork, err := g.services.Artworks.UpdateArtwork(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		g.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, artwork)
}

// @Summary  Remove an artwork from the catalog
// @Tags     artworks
// @Produce  json
// @Param    id   path      string  true  "Artwork id"
// @Success  200  {object}  messageResponse
// @Failure  404  {object}  errorResponse
// @Router   /artworks/{id} [delete]
func (g *Gateway) deleteArtwork(c *gin.Context) {
	if err := g.services.Artworks.DeleteArtwork(c.Request.Context(), c.Param("id")); err != nil {
		g.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Artwork deleted successfully"})
}

func (g *Gateway) respondArtworks(c *gin.Context, fetch func() ([]models.Artwork, error)) {
	list, err := fetch()
	if err != nil {
		g.abortWithError(c, err)
		return
	}
	if list == nil {
		list = []models.Artwork{}
	}
	c.JSON(http.StatusOK, list)
}
