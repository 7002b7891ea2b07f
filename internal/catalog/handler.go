package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dkazarev/techstore-service/pkg/apperror"
)

type catalogHandler struct {
	log            *logrus.Entry
	catalogService CatalogService
}

func NewHandler(catalogService CatalogService, log *logrus.Entry) *catalogHandler {
	return &catalogHandler{
		log:            log,
		catalogService: catalogService,
	}
}

// Register wires the catalog routes. Review mutations go through the
// session middleware supplied by the account domain.
func (h *catalogHandler) Register(router *gin.Engine, auth gin.HandlerFunc) {
	router.GET("/categories/", h.listCategories)
	router.GET("/categories/:slug/", h.listProductsByCategory)
	router.GET("/products/", h.listProducts)
	router.GET("/products/filter/", h.filterProducts)
	router.GET("/products/:id/", h.getProduct)

	router.GET("/products/:id/reviews/", h.listReviews)
	router.POST("/products/:id/reviews/", auth, h.addReview)
	router.DELETE("/products/:id/reviews/:review_id/", auth, h.deleteReview)
}

type reviewInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (h *catalogHandler) listCategories(c *gin.Context) {
	categories, err := h.catalogService.GetCategories()
	if err != nil {
		h.log.Errorf("listCategories: %v", err)
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *catalogHandler) listProducts(c *gin.Context) {
	products, err := h.catalogService.GetProducts(c.Query("search"))
	if err != nil {
		h.log.Errorf("listProducts: %v", err)
		apperror.Respond(c, err)
		return
	}
	if products == nil {
		products = []Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *catalogHandler) getProduct(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.catalogService.GetProductByID(productID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *catalogHandler) listProductsByCategory(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	products, err := h.catalogService.GetProductsByCategory(c.Param("slug"), filter)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *catalogHandler) filterProducts(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	products, err := h.catalogService.FilterProducts(filter)
	if err != nil {
		h.log.Errorf("filterProducts: %v", err)
		apperror.Respond(c, err)
		return
	}
	if products == nil {
		products = []Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *catalogHandler) listReviews(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.catalogService.GetProductReviews(productID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *catalogHandler) addReview(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	profileID := c.GetUint("profile_id")
	review, err := h.catalogService.AddReview(productID, profileID, input.Rating, input.Comment)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *catalogHandler) deleteReview(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	reviewID, ok := parseID(c, "review_id")
	if !ok {
		return
	}

	profileID := c.GetUint("profile_id")
	if err := h.catalogService.DeleteReview(reviewID, productID, profileID); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func parseFilter(c *gin.Context) (ProductFilter, bool) {
	var filter ProductFilter
	fields := map[string]string{}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fields["min_price"] = "must be a number"
		} else {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fields["max_price"] = "must be a number"
		} else {
			filter.MaxPrice = &v
		}
	}
	if raw := c.Query("min_year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			fields["min_year"] = "must be an integer"
		} else {
			filter.MinYear = &v
		}
	}
	if raw := c.Query("max_year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			fields["max_year"] = "must be an integer"
		} else {
			filter.MaxYear = &v
		}
	}
	filter.Manufacturers = c.QueryArray("manufacturers")

	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return filter, false
	}
	return filter, true
}
