package contract

type NotificationResponse struct {
	ID                string `json:"id"`
	RecipientID       string `json:"recipient_id"`
	NotificationType  string `json:"notification_type"`
	Title             string `json:"title"`
	Message           string `json:"message,omitempty"`
	RelatedEntityID   string `json:"related_entity_id,omitempty"`
	RelatedEntityType string `json:"related_entity_type,omitempty"`
	Priority          string `json:"priority"`
	Status            string `json:"status"`
	ReadAt            string `json:"read_at,omitempty"`
	CreatedAt         string `json:"created_at"`
}
