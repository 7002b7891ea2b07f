package account

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dkazarev/techstore-service/pkg/apperror"
)

type accountHandler struct {
	log            *logrus.Entry
	accountService AccountService
	cookieName     string
	sessionTTL     time.Duration
}

func NewHandler(accountService AccountService, log *logrus.Entry, cookieName string, sessionTTL time.Duration) *accountHandler {
	return &accountHandler{
		log:            log,
		accountService: accountService,
		cookieName:     cookieName,
		sessionTTL:     sessionTTL,
	}
}

func (h *accountHandler) Register(router *gin.Engine) {
	auth := h.RequireSession()

	group := router.Group("/users")
	{
		group.POST("/register/", h.register)
		group.POST("/login/", h.login)
		group.POST("/logout/", auth, h.logout)
		group.GET("/", auth, h.profile)

		group.GET("/favorites/", auth, h.listFavorites)
		group.POST("/favorites/:product_id/", auth, h.addFavorite)
		group.DELETE("/favorites/:product_id/", auth, h.removeFavorite)

		group.GET("/payments/", auth, h.listPayments)
		group.POST("/payments/", auth, h.addPayment)
		group.GET("/payments/:id/", auth, h.getPayment)
		group.DELETE("/payments/:id/", auth, h.deletePayment)
	}
}

// RequireSession resolves the session cookie to a profile and stores the
// identifiers in the request context. Other domains receive this middleware
// from the composition root.
func (h *accountHandler) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(h.cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "authentication required"})
			return
		}

		session, err := h.accountService.Authenticate(token)
		if err != nil {
			apperror.Respond(c, err)
			c.Abort()
			return
		}

		c.Set("user_id", session.UserID)
		c.Set("profile_id", session.ProfileID)
		c.Next()
	}
}

type registerInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type paymentInput struct {
	PaymentType string `json:"payment_type"`
	CardNumber  string `json:"card_number"`
	ExpiryDate  string `json:"expiry_date"`
}

func (h *accountHandler) register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	profile, err := h.accountService.Register(input.Username, input.Email, input.Password)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (h *accountHandler) login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	session, err := h.accountService.Login(input.Username, input.Password)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.SetCookie(h.cookieName, session.Token, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"detail": "logged in"})
}

func (h *accountHandler) logout(c *gin.Context) {
	token, err := c.Cookie(h.cookieName)
	if err == nil && token != "" {
		if err := h.accountService.Logout(token); err != nil {
			h.log.Errorf("logout: %v", err)
		}
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"detail": "logged out"})
}

func (h *accountHandler) profile(c *gin.Context) {
	profileID := c.GetUint("profile_id")

	profile, err := h.accountService.GetProfile(profileID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *accountHandler) listFavorites(c *gin.Context) {
	profileID := c.GetUint("profile_id")

	favorites, err := h.accountService.GetFavorites(profileID)
	if err != nil {
		h.log.Errorf("listFavorites: profile %d - %v", profileID, err)
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (h *accountHandler) addFavorite(c *gin.Context) {
	profileID := c.GetUint("profile_id")

	productID, ok := h.parseID(c, "product_id")
	if !ok {
		return
	}

	if err := h.accountService.AddFavorite(profileID, productID); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"detail": "product added to favorites"})
}

func (h *accountHandler) removeFavorite(c *gin.Context) {
	profileID := c.GetUint("profile_id")

	productID, ok := h.parseID(c, "product_id")
	if !ok {
		return
	}

	if err := h.accountService.RemoveFavorite(profileID, productID); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *accountHandler) listPayments(c *gin.Context) {
	profileID := c.GetUint("profile_id")

	payments, err := h.accountService.GetPayments(profileID)
	if err != nil {
		h.log.Errorf("listPayments: profile %d - %v", profileID, err)
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *accountHandler) addPayment(c *gin.Context) {
	profileID := c.GetUint("profile_id")

	var input paymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	payment, err := h.accountService.AddPayment(profileID, input.PaymentType, input.CardNumber, input.ExpiryDate)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *accountHandler) getPayment(c *gin.Context) {
	profileID := c.GetUint("profile_id")

	paymentID, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	payment, err := h.accountService.GetPayment(paymentID, profileID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *accountHandler) deletePayment(c *gin.Context) {
	profileID := c.GetUint("profile_id")

	paymentID, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.accountService.DeletePayment(paymentID, profileID); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *accountHandler) parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
