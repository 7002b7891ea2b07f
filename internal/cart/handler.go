package cart

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dkazarev/techstore-service/pkg/apperror"
)

type cartHandler struct {
	log         *logrus.Entry
	cartService CartService
}

func NewHandler(cartService CartService, log *logrus.Entry) *cartHandler {
	return &cartHandler{
		log:         log,
		cartService: cartService,
	}
}

func (h *cartHandler) Register(router *gin.Engine, auth gin.HandlerFunc) {
	group := router.Group("/cart", auth)
	{
		group.GET("/", h.getCart)
		group.POST("/", h.addItem)
		group.DELETE("/", h.clear)
		group.DELETE("/items/:id/", h.removeItem)
	}
}

type cartItemInput struct {
	ProductID uint `json:"product" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

func (h *cartHandler) getCart(c *gin.Context) {
	profileID := c.GetUint("profile_id")

	view, err := h.cartService.GetCart(profileID)
	if err != nil {
		h.log.Errorf("getCart: profile %d - %v", profileID, err)
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *cartHandler) addItem(c *gin.Context) {
	profileID := c.GetUint("profile_id")

	var input cartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	item, err := h.cartService.AddItem(profileID, input.ProductID, input.Quantity)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *cartHandler) removeItem(c *gin.Context) {
	profileID := c.GetUint("profile_id")

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return
	}

	if err := h.cartService.RemoveItem(profileID, uint(itemID)); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *cartHandler) clear(c *gin.Context) {
	profileID := c.GetUint("profile_id")

	if err := h.cartService.Clear(profileID); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
