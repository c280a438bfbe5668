package domain

import "errors"

// Conversation errors
var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotConversationOwner = errors.New("user is not the conversation owner")
	ErrInvalidMessage       = errors.New("message must have a valid sender and non-empty content")
	ErrNoMessages           = errors.New("at least one message is required")
)

// Classification errors
var (
	ErrInvalidClassification = errors.New("prediction and image URL are required")
)
