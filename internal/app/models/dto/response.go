package dto

// MessageResponse represents a success response carrying only a message
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse creates a message-only success response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
