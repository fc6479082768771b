package app

import (
	"context"
	"time"

	"workzup_backend/internal/chat/domain"
	"workzup_backend/internal/chat/repository"
	errprocess "workzup_backend/pkg/err"
	"workzup_backend/pkg/logger"

	"go.uber.org/zap"
)

// MemberResolver definition lookup into the identity collaborator, a
// participant id must resolve to a known member
type MemberResolver interface {
	ResolveParticipant(ctx context.Context, memberID string) (*domain.Participant, error)
}

// ConversationUseCase definition conversation level application services
type ConversationUseCase interface {
	ListConversations(ctx context.Context, callerID string) ([]domain.ConversationView, error)
	GetConversation(ctx context.Context, callerID, conversationID string) (*domain.Conversation, error)
	CreateConversation(ctx context.Context, callerID string, participantIDs []string, convType domain.ConversationType, jobID string) (*domain.Conversation, error)
	ArchiveConversation(ctx context.Context, callerID, conversationID string) error
	PinConversation(ctx context.Context, callerID, conversationID string, pinned bool) error
}

type conversationUseCase struct {
	store    repository.ConversationStore
	resolver MemberResolver
	events   repository.EventPublisher
}

// NewConversationUseCase create a new ConversationUseCase
func NewConversationUseCase(store repository.ConversationStore,
	resolver MemberResolver,
	events repository.EventPublisher,
) ConversationUseCase {
	return &conversationUseCase{
		store:    store,
		resolver: resolver,
		events:   events,
	}
}

// ListConversations all active conversations of the caller, annotated with
// the other participant for 1:1 display
func (uc *conversationUseCase) ListConversations(ctx context.Context, callerID string) ([]domain.ConversationView, error) {
	views, err := uc.store.ListConversations(ctx, callerID)
	if err != nil {
		return nil, err
	}

	for i := range views {
		if views[i].OtherParticipantID == "" {
			continue
		}
		participant, err := uc.resolver.ResolveParticipant(ctx, views[i].OtherParticipantID)
		if err != nil {
			logger.Log.Warn("resolve participant failed",
				zap.String("member_id", views[i].OtherParticipantID),
				zap.Error(err),
			)
			continue
		}
		views[i].OtherParticipant = participant
	}
	return views, nil
}

func (uc *conversationUseCase) GetConversation(ctx context.Context, callerID, conversationID string) (*domain.Conversation, error) {
	conv, err := uc.store.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(callerID) {
		return nil, errprocess.Forbidden("not a participant of conversation %s", conversationID)
	}
	return conv, nil
}

// CreateConversation the caller is always a participant, every other id must
// resolve with the identity collaborator
func (uc *conversationUseCase) CreateConversation(ctx context.Context, callerID string, participantIDs []string, convType domain.ConversationType, jobID string) (*domain.Conversation, error) {
	ids := participantIDs
	found := false
	for _, id := range ids {
		if id == callerID {
			found = true
			break
		}
	}
	if !found {
		ids = append([]string{callerID}, ids...)
	}

	for _, id := range ids {
		if _, err := uc.resolver.ResolveParticipant(ctx, id); err != nil {
			return nil, errprocess.Validation("unknown participant %s", id)
		}
	}

	conv, err := uc.store.CreateConversation(ctx, ids, convType, jobID)
	if err != nil {
		return nil, err
	}

	if uc.events != nil {
		// event delivery is best effort, the conversation is already created
		_ = uc.events.Publish(ctx, domain.ChatEvent{
			Kind:           domain.EventConversationCreated,
			ConversationID: conv.ID,
			ActorID:        callerID,
			OccurredAt:     time.Now(),
		})
	}
	return conv, nil
}

func (uc *conversationUseCase) ArchiveConversation(ctx context.Context, callerID, conversationID string) error {
	if _, err := uc.GetConversation(ctx, callerID, conversationID); err != nil {
		return err
	}
	return uc.store.ArchiveConversation(ctx, conversationID)
}

func (uc *conversationUseCase) PinConversation(ctx context.Context, callerID, conversationID string, pinned bool) error {
	if _, err := uc.GetConversation(ctx, callerID, conversationID); err != nil {
		return err
	}
	return uc.store.PinConversation(ctx, conversationID, pinned)
}
