package dto

import (
	"sitepro/internal/domains/notification/model"
	"time"
)

type NotificationResponse struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Type      model.Type     `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Priority  model.Priority `json:"priority"`
	Data      model.Data     `json:"data"`
	IsRead    bool           `json:"isRead"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (r *NotificationResponse) FromModel(m model.Notification) {
	r.ID = m.ID
	r.UserID = m.UserID
	r.Type = m.Type
	r.Title = m.Title
	r.Message = m.Message
	r.Priority = m.Priority
	r.Data = m.Payload()
	r.IsRead = m.IsRead
	r.CreatedAt = m.CreatedAt
}
