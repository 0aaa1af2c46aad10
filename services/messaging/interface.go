package messaging

import (
	"context"
	"time"

	messageRepo "prolink/database/repository/message"
	providerRepo "prolink/database/repository/provider"
	"prolink/models"
)

// MessagingService owns conversation and message retrieval/append,
// including the scripted assistant participant.
type MessagingService interface {
	// ListConversations returns the user's conversations, newest first.
	ListConversations(ctx context.Context, userID string) ([]models.Conversation, error)
	// ListMessages returns the messages exchanged between the two ids in
	// chronological order, whichever direction each was sent.
	ListMessages(ctx context.Context, userID, otherID string) ([]models.Message, error)
	// Send appends the message and refreshes the paired conversation
	// summary. The stored message is echoed back with server-assigned
	// fields filled in.
	Send(ctx context.Context, msg models.Message) (*models.Message, error)
	// Participant resolves the tagged variant for the other side of the
	// user's conversation with otherID; assistant dispatch keys off the
	// returned kind.
	Participant(ctx context.Context, userID, otherID string) (models.Participant, error)
	// AssistantReply maps the user's text through the scripted rules and
	// materializes the reply as an assistant message. Nothing is written
	// to the store.
	AssistantReply(ctx context.Context, userID, text string) (*models.Message, error)
}

// DefaultMessagingService is the production implementation.
type DefaultMessagingService struct {
	Repo       messageRepo.MessageRepository
	Providers  providerRepo.ProviderRepository
	ReplyDelay time.Duration // simulated assistant latency
}
