package models

import "time"

// Message is an append-only chat entry between two identities.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	ReceiverID  string    `json:"receiverId"`
	Text        string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	IsAIMessage bool      `json:"isAIMessage,omitempty"`
}

// Conversation summarizes a user's exchange with one other participant.
// The participant is stable for the conversation's lifetime.
type Conversation struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"ownerId"`
	Participant Participant `json:"participant"`
	LastMessage string      `json:"lastMessage"`
	Timestamp   time.Time   `json:"timestamp"`
	UnreadCount int         `json:"unreadCount"`
}
