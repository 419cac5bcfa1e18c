package http

import (
	"time"

	"github.com/acadhub/campus-resource-backend/internal/notification"
)

type CreateAnnouncementRequest struct {
	Message string `json:"message" binding:"required"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Type:      string(n.Type),
		CreatedAt: n.CreatedAt,
	}
}
