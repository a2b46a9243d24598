package gateway

import (
	"context"
	"net/http"

	"github.com/example/artshop/pkg/models"
	"github.com/gin-gonic/gin"
)

// submitTestimonial godoc
// @Summary      Submit a testimonial
// @Description  The testimonial stays hidden until an admin approves it.
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        testimonial  body      models.Testimonial  true  "Testimonial"
// @Success      201          {object}  models.Testimonial
// @Failure      400          {object}  errorResponse
// @Router       /testimonials [post]
func (g *Gateway) submitTestimonial(c *gin.Context) {
	var t models.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := g.services.Testimonials.Submit(c.Request.Context(), &t)
	if err != nil {
		g.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// @Summary  List approved testimonials
// @Tags     testimonials
// @Produce  json
// @Success  200  {array}  models.Testimonial
// @Router   /testimonials [get]
func (g *Gateway) getApprovedTestimonials(c *gin.Context) {
	g.respondTestimonials(c, g.services.Testimonials.ListApproved)
}

// @Summary  List every testimonial
// @Tags     admin
// @Produce  json
// @Success  200  {array}  models.Testimonial
// @Router   /admin/testimonials [get]
func (g *Gateway) getAllTestimonials(c *gin.Context) {
	g.respondTestimonials(c, g.services.Testimonials.ListAll)
}

// @Summary  List testimonials waiting for approval
// @Tags     admin
// @Produce  json
// @Success  200  {array}  models.Testimonial
// @Router   /admin/testimonials/pending [get]
func (g *Gateway) getPendingTestimonials(c *gin.Context) {
	g.respondTestimonials(c, g.services.Testimonials.ListPending)
}

// @Summary  Approve a testimonial
// @Tags     admin
// @Produce  json
// @Param    id   path      string  true  "Testimonial id"
// @Success  200  {object}  models.Testimonial
// @Failure  404  {object}  errorResponse
// @Router   /admin/testimonials/{id}/approve [put]
func (g *Gateway) approveTestimonial(c *gin.Context) {
	t, err := g.services.Testimonials.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		g.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary  Delete a testimonial
// @Tags     admin
// @Param    id  path  string  true  "Testimonial id"
// @Success  204
// @Failure  404  {object}  errorResponse
// @Router   /admin/testimonials/{id} [delete]
func (g *Gateway) deleteTestimonial(c *gin.Context) {
	if err := g.services.Testimonials.Delete(c.Request.Context(), c.Param("id")); err != nil {
		g.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (g *Gateway) respondTestimonials(c *gin.Context, fetch func(context.Context) ([]models.Testimonial, error)) {
	list, err := fetch(c.Request.Context())
	if err != nil {
		g.abortWithError(c, err)
		return
	}
	if list == nil {
		list = []models.Testimonial{}
	}
	c.JSON(http.StatusOK, list)
}
