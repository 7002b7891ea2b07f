package order

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dkazarev/techstore-service/pkg/apperror"
)

type orderHandler struct {
	log          *logrus.Entry
	orderService OrderService
}

func NewHandler(orderService OrderService, log *logrus.Entry) *orderHandler {
	return &orderHandler{
		log:          log,
		orderService: orderService,
	}
}

func (h *orderHandler) Register(router *gin.Engine, auth gin.HandlerFunc) {
	group := router.Group("/orders", auth)
	{
		group.GET("/", h.listOrders)
		group.POST("/", h.createOrder)
		group.GET("/:id/", h.getOrder)
	}
}

type orderInput struct {
	AddressID uint `json:"address" binding:"required"`
	PaymentID uint `json:"payment" binding:"required"`
}

func (h *orderHandler) listOrders(c *gin.Context) {
	profileID := c.GetUint("profile_id")

	orders, err := h.orderService.GetOrders(profileID)
	if err != nil {
		h.log.Errorf("listOrders: profile %d - %v", profileID, err)
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *orderHandler) createOrder(c *gin.Context) {
	profileID := c.GetUint("profile_id")

	var input orderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	order, err := h.orderService.CreateOrder(profileID, input.AddressID, input.PaymentID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *orderHandler) getOrder(c *gin.Context) {
	profileID := c.GetUint("profile_id")

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return
	}

	order, err := h.orderService.GetOrder(uint(orderID), profileID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
