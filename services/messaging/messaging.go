package messaging

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prolink/models"
	"prolink/utils"
)

func (s *DefaultMessagingService) ListConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	convos, err := s.Repo.GetConversations(ctx, userID)
	if err != nil {
		utils.GetLogger().Error("ListConversations: failed to fetch conversations", zap.Error(err))
		return nil, err
	}
	return convos, nil
}

func (s *DefaultMessagingService) ListMessages(ctx context.Context, userID, otherID string) ([]models.Message, error) {
	msgs, err := s.Repo.GetBetween(ctx, userID, otherID)
	if err != nil {
		utils.GetLogger().Error("ListMessages: failed to fetch messages", zap.Error(err))
		return nil, err
	}
	return msgs, nil
}

func (s *DefaultMessagingService) Send(ctx context.Context, msg models.Message) (*models.Message, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	stored, err := s.Repo.Append(ctx, msg)
	if err != nil {
		utils.GetLogger().Error("Send: failed to append message", zap.Error(err))
		return nil, err
	}

	// Refresh the conversation summary on whichever side owns the
	// pairing. The receiver's copy gains an unread; the sender's resets.
	// A first message to a professional creates the sender's pairing.
	existing, err := s.Repo.FindParticipant(ctx, stored.SenderID, stored.ReceiverID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		pro, err := s.Providers.GetByID(ctx, stored.ReceiverID)
		if err != nil {
			return nil, err
		}
		if pro != nil {
			convo := models.Conversation{
				ID:          uuid.NewString(),
				OwnerID:     stored.SenderID,
				Participant: pro.AsParticipant(),
				LastMessage: stored.Text,
				Timestamp:   stored.Timestamp,
			}
			if err := s.Repo.CreateConversation(ctx, convo); err != nil {
				return nil, err
			}
		}
	} else if err := s.Repo.TouchConversation(ctx, stored.SenderID, stored.ReceiverID, stored.Text, stored.Timestamp, false); err != nil {
		return nil, err
	}
	if err := s.Repo.TouchConversation(ctx, stored.ReceiverID, stored.SenderID, stored.Text, stored.Timestamp, true); err != nil {
		return nil, err
	}
	return &stored, nil
}

// Participant resolves the conversation participant for otherID: a known
// pairing keeps its stored variant (which is how the assistant is
// recognized), otherwise the professional directory decides.
func (s *DefaultMessagingService) Participant(ctx context.Context, userID, otherID string) (models.Participant, error) {
	p, err := s.Repo.FindParticipant(ctx, userID, otherID)
	if err != nil {
		return models.Participant{}, err
	}
	if p != nil {
		return *p, nil
	}
	pro, err := s.Providers.GetByID(ctx, otherID)
	if err != nil {
		return models.Participant{}, err
	}
	if pro == nil {
		return models.Participant{}, utils.NotFoundError("no such conversation participant")
	}
	return pro.AsParticipant(), nil
}

// AssistantReply runs the scripted rules after the simulated remote-call
// delay and materializes the result as an assistant-origin message. The
// exchange never touches the message collection.
func (s *DefaultMessagingService) AssistantReply(ctx context.Context, userID, text string) (*models.Message, error) {
	if s.ReplyDelay > 0 {
		select {
		case <-time.After(s.ReplyDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	reply := ScriptedReply(text)
	return &models.Message{
		ID:          uuid.NewString(),
		SenderID:    models.AssistantID,
		ReceiverID:  userID,
		Text:        reply,
		Timestamp:   time.Now(),
		IsAIMessage: true,
	}, nil
}
