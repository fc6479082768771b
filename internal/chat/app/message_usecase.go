package app

import (
	"context"
	"strings"
	"time"

	"workzup_backend/internal/chat/domain"
	"workzup_backend/internal/chat/repository"
	errprocess "workzup_backend/pkg/err"
)

// minimum search query length
const minSearchQueryLen = 2

// MessageUseCase definition message level application services
type MessageUseCase interface {
	GetMessages(ctx context.Context, callerID, conversationID string) ([]domain.Message, error)
	SendMessage(ctx context.Context, callerID, conversationID, content, replyToID string) (*domain.Message, error)
	EditMessage(ctx context.Context, callerID, conversationID, messageID, content string) (*domain.Message, error)
	DeleteMessage(ctx context.Context, callerID, conversationID, messageID string) error
	MarkMessageAsRead(ctx context.Context, callerID, conversationID, messageID string) error
	MarkAllMessagesAsRead(ctx context.Context, callerID, conversationID string) error
	SetTypingStatus(ctx context.Context, callerID, conversationID string, isTyping bool) ([]string, error)
	GetTypingUsers(ctx context.Context, callerID, conversationID string) ([]string, error)
	SearchMessages(ctx context.Context, callerID, query, conversationID string) ([]domain.Message, error)
}

type messageUseCase struct {
	store  repository.ConversationStore
	events repository.EventPublisher
}

// NewMessageUseCase create a new MessageUseCase
func NewMessageUseCase(store repository.ConversationStore, events repository.EventPublisher) MessageUseCase {
	return &messageUseCase{
		store:  store,
		events: events,
	}
}

// requireParticipant authorization belongs here, not inside the store
func (uc *messageUseCase) requireParticipant(ctx context.Context, callerID, conversationID string) error {
	conv, err := uc.store.GetConversation(ctx, conversationID)
	if err != nil {
		return err
	}
	if !conv.HasParticipant(callerID) {
		return errprocess.Forbidden("not a participant of conversation %s", conversationID)
	}
	return nil
}

// GetMessages fetching through this path marks everything from other senders
// as read and resets the caller's unread counter
func (uc *messageUseCase) GetMessages(ctx context.Context, callerID, conversationID string) ([]domain.Message, error) {
	if err := uc.requireParticipant(ctx, callerID, conversationID); err != nil {
		return nil, err
	}
	return uc.store.GetMessages(ctx, conversationID, callerID)
}

func (uc *messageUseCase) SendMessage(ctx context.Context, callerID, conversationID, content, replyToID string) (*domain.Message, error) {
	if err := uc.requireParticipant(ctx, callerID, conversationID); err != nil {
		return nil, err
	}

	msg, err := uc.store.CreateMessage(ctx, conversationID, callerID, content, replyToID)
	if err != nil {
		return nil, err
	}

	if uc.events != nil {
		// best effort, the message is already stored
		_ = uc.events.Publish(ctx, domain.ChatEvent{
			Kind:           domain.EventMessageCreated,
			ConversationID: conversationID,
			MessageID:      msg.ID,
			ActorID:        callerID,
			OccurredAt:     time.Now(),
		})
	}
	return msg, nil
}

func (uc *messageUseCase) EditMessage(ctx context.Context, callerID, conversationID, messageID, content string) (*domain.Message, error) {
	if err := uc.requireParticipant(ctx, callerID, conversationID); err != nil {
		return nil, err
	}
	return uc.store.UpdateMessage(ctx, conversationID, messageID, callerID, content)
}

func (uc *messageUseCase) DeleteMessage(ctx context.Context, callerID, conversationID, messageID string) error {
	if err := uc.requireParticipant(ctx, callerID, conversationID); err != nil {
		return err
	}
	return uc.store.DeleteMessage(ctx, conversationID, messageID, callerID)
}

func (uc *messageUseCase) MarkMessageAsRead(ctx context.Context, callerID, conversationID, messageID string) error {
	if err := uc.requireParticipant(ctx, callerID, conversationID); err != nil {
		return err
	}
	return uc.store.MarkMessageAsRead(ctx, conversationID, messageID, callerID)
}

func (uc *messageUseCase) MarkAllMessagesAsRead(ctx context.Context, callerID, conversationID string) error {
	if err := uc.requireParticipant(ctx, callerID, conversationID); err != nil {
		return err
	}
	return uc.store.MarkAllMessagesAsRead(ctx, conversationID, callerID)
}

// SetTypingStatus update the caller's typing ping and return who is typing now
func (uc *messageUseCase) SetTypingStatus(ctx context.Context, callerID, conversationID string, isTyping bool) ([]string, error) {
	if err := uc.requireParticipant(ctx, callerID, conversationID); err != nil {
		return nil, err
	}
	if err := uc.store.SetTypingStatus(ctx, conversationID, callerID, isTyping); err != nil {
		return nil, err
	}
	return uc.store.GetTypingUsers(ctx, conversationID)
}

func (uc *messageUseCase) GetTypingUsers(ctx context.Context, callerID, conversationID string) ([]string, error) {
	if err := uc.requireParticipant(ctx, callerID, conversationID); err != nil {
		return nil, err
	}
	return uc.store.GetTypingUsers(ctx, conversationID)
}

// SearchMessages the store searches everything, membership filtering happens
// here before anything leaves the policy layer
func (uc *messageUseCase) SearchMessages(ctx context.Context, callerID, query, conversationID string) ([]domain.Message, error) {
	if len(strings.TrimSpace(query)) < minSearchQueryLen {
		return nil, errprocess.Validation("search query needs at least %d characters", minSearchQueryLen)
	}

	if conversationID != "" {
		if err := uc.requireParticipant(ctx, callerID, conversationID); err != nil {
			return nil, err
		}
		return uc.store.SearchMessages(ctx, query, conversationID)
	}

	matches, err := uc.store.SearchMessages(ctx, query, "")
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]bool)
	out := make([]domain.Message, 0, len(matches))
	for _, msg := range matches {
		ok, seen := allowed[msg.ConversationID]
		if !seen {
			conv, err := uc.store.GetConversation(ctx, msg.ConversationID)
			if err == nil {
				ok = conv.HasParticipant(callerID)
			}
			allowed[msg.ConversationID] = ok
		}
		if ok {
			out = append(out, msg)
		}
	}
	return out, nil
}
