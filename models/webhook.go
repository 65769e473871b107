package models

// WebhookPayload is the subset of the LINE webhook body this service reads.
type WebhookPayload struct {
	Destination string         `json:"destination"`
	Events      []WebhookEvent `json:"events"`
}

type WebhookEvent struct {
	Type      string        `json:"type"`
	Timestamp int64         `json:"timestamp"`
	Source    WebhookSource `json:"source"`
}

type WebhookSource struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}
