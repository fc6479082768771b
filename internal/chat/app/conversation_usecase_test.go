package app

import (
	"context"
	"testing"

	"workzup_backend/internal/chat/domain"
	errprocess "workzup_backend/pkg/err"
	"workzup_backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.SetNewNop()
	m.Run()
}

func TestConversationUseCase_ListConversations(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New().String()
	otherID := uuid.New().String()

	mockStore := new(MockConversationStore)
	mockResolver := new(MockMemberResolver)
	mockEvents := new(MockEventPublisher)

	views := []domain.ConversationView{
		{
			Conversation:       domain.Conversation{ID: uuid.New().String(), ParticipantIDs: []string{callerID, otherID}},
			OtherParticipantID: otherID,
		},
	}
	participant := &domain.Participant{MemberID: otherID, DisplayName: "Other"}

	mockStore.On("ListConversations", ctx, callerID).Return(views, nil)
	mockResolver.On("ResolveParticipant", ctx, otherID).Return(participant, nil)

	uc := NewConversationUseCase(mockStore, mockResolver, mockEvents)
	got, err := uc.ListConversations(ctx, callerID)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Other", got[0].OtherParticipant.DisplayName)

	mockStore.AssertExpectations(t)
	mockResolver.AssertExpectations(t)
}

func TestConversationUseCase_GetConversation_NotParticipant(t *testing.T) {
	ctx := context.Background()
	conversationID := uuid.New().String()

	mockStore := new(MockConversationStore)
	mockResolver := new(MockMemberResolver)
	mockEvents := new(MockEventPublisher)

	conv := &domain.Conversation{
		ID:             conversationID,
		ParticipantIDs: []string{"member-a", "member-b"},
	}
	mockStore.On("GetConversation", ctx, conversationID).Return(conv, nil)

	uc := NewConversationUseCase(mockStore, mockResolver, mockEvents)
	_, err := uc.GetConversation(ctx, "outsider", conversationID)

	assert.True(t, errprocess.IsForbidden(err))
	mockStore.AssertExpectations(t)
}

func TestConversationUseCase_CreateConversation(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New().String()
	otherID := uuid.New().String()

	mockStore := new(MockConversationStore)
	mockResolver := new(MockMemberResolver)
	mockEvents := new(MockEventPublisher)

	created := &domain.Conversation{
		ID:             uuid.New().String(),
		ParticipantIDs: []string{callerID, otherID},
	}

	// the caller is prepended before ids hit the store
	mockResolver.On("ResolveParticipant", ctx, callerID).Return(&domain.Participant{MemberID: callerID}, nil)
	mockResolver.On("ResolveParticipant", ctx, otherID).Return(&domain.Participant{MemberID: otherID}, nil)
	mockStore.On("CreateConversation", ctx, []string{callerID, otherID}, domain.ConversationTypeDirect, "").Return(created, nil)
	mockEvents.On("Publish", ctx, mock.Anything).Return(nil)

	uc := NewConversationUseCase(mockStore, mockResolver, mockEvents)
	conv, err := uc.CreateConversation(ctx, callerID, []string{otherID}, domain.ConversationTypeDirect, "")

	assert.NoError(t, err)
	assert.Equal(t, created.ID, conv.ID)

	mockStore.AssertExpectations(t)
	mockResolver.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestConversationUseCase_CreateConversation_UnknownParticipant(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New().String()

	mockStore := new(MockConversationStore)
	mockResolver := new(MockMemberResolver)
	mockEvents := new(MockEventPublisher)

	mockResolver.On("ResolveParticipant", ctx, callerID).Return(&domain.Participant{MemberID: callerID}, nil)
	mockResolver.On("ResolveParticipant", ctx, "ghost").Return(nil, errprocess.NotFound("member ghost"))

	uc := NewConversationUseCase(mockStore, mockResolver, mockEvents)
	_, err := uc.CreateConversation(ctx, callerID, []string{"ghost"}, domain.ConversationTypeDirect, "")

	assert.True(t, errprocess.IsValidation(err))
	mockStore.AssertNotCalled(t, "CreateConversation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConversationUseCase_ArchiveConversation(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New().String()
	conversationID := uuid.New().String()

	mockStore := new(MockConversationStore)
	mockResolver := new(MockMemberResolver)
	mockEvents := new(MockEventPublisher)

	conv := &domain.Conversation{
		ID:             conversationID,
		ParticipantIDs: []string{callerID, "member-b"},
	}
	mockStore.On("GetConversation", ctx, conversationID).Return(conv, nil)
	mockStore.On("ArchiveConversation", ctx, conversationID).Return(nil)

	uc := NewConversationUseCase(mockStore, mockResolver, mockEvents)
	err := uc.ArchiveConversation(ctx, callerID, conversationID)

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestConversationUseCase_PinConversation_Forbidden(t *testing.T) {
	ctx := context.Background()
	conversationID := uuid.New().String()

	mockStore := new(MockConversationStore)
	mockResolver := new(MockMemberResolver)
	mockEvents := new(MockEventPublisher)

	conv := &domain.Conversation{
		ID:             conversationID,
		ParticipantIDs: []string{"member-a", "member-b"},
	}
	mockStore.On("GetConversation", ctx, conversationID).Return(conv, nil)

	uc := NewConversationUseCase(mockStore, mockResolver, mockEvents)
	err := uc.PinConversation(ctx, "outsider", conversationID, true)

	assert.True(t, errprocess.IsForbidden(err))
	mockStore.AssertNotCalled(t, "PinConversation", mock.Anything, mock.Anything, mock.Anything)
}
