package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acadhub/campus-resource-backend/internal/auth"
	"github.com/acadhub/campus-resource-backend/internal/notification"
	"github.com/acadhub/campus-resource-backend/internal/pkg/response"
)

type Handler struct {
	service notification.Service
}

func NewHandler(service notification.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	recipientID := auth.GetUserID(c)
	if recipientID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	notifications, total, err := h.service.ListForRecipient(c.Request.Context(), recipientID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}

	items := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		items[i] = NewNotificationResponse(n)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *Handler) CreateAnnouncement(c *gin.Context) {
	var body CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	report, err := h.service.NotifyAnnouncement(c.Request.Context(), body.Message)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Per-recipient failures do not fail the announcement as a whole.
	for _, f := range report.Failures {
		log.Printf("announcement delivery failed for recipient %s: %v", f.RecipientID, f.Err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Important announcement created successfully",
		"delivered": report.Delivered,
	})
}
