package address

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dkazarev/techstore-service/pkg/apperror"
)

type addressHandler struct {
	log            *logrus.Entry
	addressService AddressService
}

func NewHandler(addressService AddressService, log *logrus.Entry) *addressHandler {
	return &addressHandler{
		log:            log,
		addressService: addressService,
	}
}

func (h *addressHandler) Register(router *gin.Engine) {
	router.GET("/cities/", h.listCities)
	router.GET("/addresses/", h.listAddresses)
	router.GET("/cities/:slug/addresses/", h.listAddressesByCity)
}

func (h *addressHandler) listCities(c *gin.Context) {
	cities, err := h.addressService.GetCities()
	if err != nil {
		h.log.Errorf("listCities: %v", err)
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

func (h *addressHandler) listAddresses(c *gin.Context) {
	addresses, err := h.addressService.GetAddresses()
	if err != nil {
		h.log.Errorf("listAddresses: %v", err)
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (h *addressHandler) listAddressesByCity(c *gin.Context) {
	addresses, err := h.addressService.GetAddressesByCitySlug(c.Param("slug"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}
