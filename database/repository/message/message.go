package messageRepo

import (
	"context"
	"sort"
	"time"

	"prolink/database"
	"prolink/models"
)

// MessageRepository defines methods for message and conversation access.
// Messages are append-only; conversations are upserted as traffic arrives.
type MessageRepository interface {
	// GetBetween retrieves the messages exchanged between the two ids,
	// regardless of direction, in chronological order.
	GetBetween(ctx context.Context, a, b string) ([]models.Message, error)
	// Append stores a message, stamping id assignment order inside the
	// collection's writer lock.
	Append(ctx context.Context, m models.Message) (models.Message, error)
	// GetConversations retrieves the conversations owned by the user.
	GetConversations(ctx context.Context, ownerID string) ([]models.Conversation, error)
	// FindParticipant resolves the participant variant for the given id
	// from the owner's conversations, or nil when no conversation exists.
	FindParticipant(ctx context.Context, ownerID, participantID string) (*models.Participant, error)
	// TouchConversation updates the conversation summary for a pairing.
	TouchConversation(ctx context.Context, ownerID, participantID, lastMessage string, at time.Time, incrementUnread bool) error
	// CreateConversation registers a new pairing for the owner.
	CreateConversation(ctx context.Context, c models.Conversation) error
}

// MemoryMessageRepo is the entity-store-backed implementation.
type MemoryMessageRepo struct {
	messages      *database.Collection
	conversations *database.Collection
}

func NewMemoryMessageRepo(store *database.Store) (*MemoryMessageRepo, error) {
	msgs, err := store.Resolve(database.EntityMessages)
	if err != nil {
		return nil, err
	}
	convos, err := store.Resolve(database.EntityConversations)
	if err != nil {
		return nil, err
	}
	return &MemoryMessageRepo{messages: msgs, conversations: convos}, nil
}

func (r *MemoryMessageRepo) GetBetween(ctx context.Context, a, b string) ([]models.Message, error) {
	docs, err := r.messages.FindAll(ctx, func(d any) bool {
		m, ok := d.(models.Message)
		if !ok {
			return false
		}
		return (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a)
	})
	if err != nil {
		return nil, err
	}
	out := make([]models.Message, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.(models.Message))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (r *MemoryMessageRepo) Append(ctx context.Context, m models.Message) (models.Message, error) {
	doc, err := r.messages.AppendLocked(ctx, func() any {
		if m.Timestamp.IsZero() {
			m.Timestamp = time.Now()
		}
		return m
	})
	if err != nil {
		return models.Message{}, err
	}
	return doc.(models.Message), nil
}

func (r *MemoryMessageRepo) GetConversations(ctx context.Context, ownerID string) ([]models.Conversation, error) {
	docs, err := r.conversations.FindAll(ctx, func(d any) bool {
		c, ok := d.(models.Conversation)
		return ok && c.OwnerID == ownerID
	})
	if err != nil {
		return nil, err
	}
	out := make([]models.Conversation, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.(models.Conversation))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (r *MemoryMessageRepo) FindParticipant(ctx context.Context, ownerID, participantID string) (*models.Participant, error) {
	doc, err := r.conversations.FindOne(ctx, func(d any) bool {
		c, ok := d.(models.Conversation)
		return ok && c.OwnerID == ownerID && c.Participant.ID == participantID
	})
	if err != nil || doc == nil {
		return nil, err
	}
	p := doc.(models.Conversation).Participant
	return &p, nil
}

func (r *MemoryMessageRepo) TouchConversation(ctx context.Context, ownerID, participantID, lastMessage string, at time.Time, incrementUnread bool) error {
	_, err := r.conversations.Update(ctx,
		func(d any) bool {
			c, ok := d.(models.Conversation)
			return ok && c.OwnerID == ownerID && c.Participant.ID == participantID
		},
		func(d any) any {
			c := d.(models.Conversation)
			c.LastMessage = lastMessage
			c.Timestamp = at
			if incrementUnread {
				c.UnreadCount++
			} else {
				c.UnreadCount = 0
			}
			return c
		},
	)
	return err
}

// CreateConversation registers a new pairing for the owner.
func (r *MemoryMessageRepo) CreateConversation(ctx context.Context, c models.Conversation) error {
	return r.conversations.Append(ctx, c)
}
