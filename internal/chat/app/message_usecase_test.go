package app

import (
	"context"
	"testing"

	"workzup_backend/internal/chat/domain"
	errprocess "workzup_backend/pkg/err"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func participantConversation(conversationID string, memberIDs ...string) *domain.Conversation {
	return &domain.Conversation{
		ID:             conversationID,
		ParticipantIDs: memberIDs,
	}
}

func TestMessageUseCase_SendMessage(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New().String()
	conversationID := uuid.New().String()

	mockStore := new(MockConversationStore)
	mockEvents := new(MockEventPublisher)

	msg := &domain.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       callerID,
		Content:        "Hello",
	}

	mockStore.On("GetConversation", ctx, conversationID).Return(participantConversation(conversationID, callerID, "member-b"), nil)
	mockStore.On("CreateMessage", ctx, conversationID, callerID, "Hello", "").Return(msg, nil)
	mockEvents.On("Publish", ctx, mock.Anything).Return(nil)

	uc := NewMessageUseCase(mockStore, mockEvents)
	got, err := uc.SendMessage(ctx, callerID, conversationID, "Hello", "")

	assert.NoError(t, err)
	assert.Equal(t, msg.ID, got.ID)

	mockStore.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestMessageUseCase_SendMessage_NotParticipant(t *testing.T) {
	ctx := context.Background()
	conversationID := uuid.New().String()

	mockStore := new(MockConversationStore)
	mockEvents := new(MockEventPublisher)

	mockStore.On("GetConversation", ctx, conversationID).Return(participantConversation(conversationID, "member-a", "member-b"), nil)

	uc := NewMessageUseCase(mockStore, mockEvents)
	_, err := uc.SendMessage(ctx, "outsider", conversationID, "Hello", "")

	assert.True(t, errprocess.IsForbidden(err))
	mockStore.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockEvents.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestMessageUseCase_GetMessages(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New().String()
	conversationID := uuid.New().String()

	mockStore := new(MockConversationStore)
	mockEvents := new(MockEventPublisher)

	msgs := []domain.Message{{ID: uuid.New().String(), ConversationID: conversationID, Content: "Hello"}}

	mockStore.On("GetConversation", ctx, conversationID).Return(participantConversation(conversationID, callerID, "member-b"), nil)
	mockStore.On("GetMessages", ctx, conversationID, callerID).Return(msgs, nil)

	uc := NewMessageUseCase(mockStore, mockEvents)
	got, err := uc.GetMessages(ctx, callerID, conversationID)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	mockStore.AssertExpectations(t)
}

func TestMessageUseCase_EditMessage(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New().String()
	conversationID := uuid.New().String()
	messageID := uuid.New().String()

	mockStore := new(MockConversationStore)
	mockEvents := new(MockEventPublisher)

	edited := &domain.Message{ID: messageID, ConversationID: conversationID, SenderID: callerID, Content: "after"}

	mockStore.On("GetConversation", ctx, conversationID).Return(participantConversation(conversationID, callerID, "member-b"), nil)
	mockStore.On("UpdateMessage", ctx, conversationID, messageID, callerID, "after").Return(edited, nil)

	uc := NewMessageUseCase(mockStore, mockEvents)
	got, err := uc.EditMessage(ctx, callerID, conversationID, messageID, "after")

	assert.NoError(t, err)
	assert.Equal(t, "after", got.Content)
	mockStore.AssertExpectations(t)
}

func TestMessageUseCase_SetTypingStatus(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New().String()
	conversationID := uuid.New().String()

	mockStore := new(MockConversationStore)
	mockEvents := new(MockEventPublisher)

	mockStore.On("GetConversation", ctx, conversationID).Return(participantConversation(conversationID, callerID, "member-b"), nil)
	mockStore.On("SetTypingStatus", ctx, conversationID, callerID, true).Return(nil)
	mockStore.On("GetTypingUsers", ctx, conversationID).Return([]string{callerID}, nil)

	uc := NewMessageUseCase(mockStore, mockEvents)
	typing, err := uc.SetTypingStatus(ctx, callerID, conversationID, true)

	assert.NoError(t, err)
	assert.Equal(t, []string{callerID}, typing)
	mockStore.AssertExpectations(t)
}

func TestMessageUseCase_SearchMessages_QueryTooShort(t *testing.T) {
	ctx := context.Background()

	mockStore := new(MockConversationStore)
	mockEvents := new(MockEventPublisher)

	uc := NewMessageUseCase(mockStore, mockEvents)
	_, err := uc.SearchMessages(ctx, uuid.New().String(), "h", "")

	assert.True(t, errprocess.IsValidation(err))
	mockStore.AssertNotCalled(t, "SearchMessages", mock.Anything, mock.Anything, mock.Anything)
}

func TestMessageUseCase_SearchMessages_FiltersByMembership(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New().String()
	mineID := uuid.New().String()
	foreignID := uuid.New().String()

	mockStore := new(MockConversationStore)
	mockEvents := new(MockEventPublisher)

	matches := []domain.Message{
		{ID: uuid.New().String(), ConversationID: mineID, Content: "hello there"},
		{ID: uuid.New().String(), ConversationID: foreignID, Content: "hello stranger"},
	}

	mockStore.On("SearchMessages", ctx, "hello", "").Return(matches, nil)
	mockStore.On("GetConversation", ctx, mineID).Return(participantConversation(mineID, callerID, "member-b"), nil)
	mockStore.On("GetConversation", ctx, foreignID).Return(participantConversation(foreignID, "member-c", "member-d"), nil)

	uc := NewMessageUseCase(mockStore, mockEvents)
	got, err := uc.SearchMessages(ctx, callerID, "hello", "")

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, mineID, got[0].ConversationID)
	mockStore.AssertExpectations(t)
}

func TestMessageUseCase_SearchMessages_Scoped(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New().String()
	conversationID := uuid.New().String()

	mockStore := new(MockConversationStore)
	mockEvents := new(MockEventPublisher)

	matches := []domain.Message{{ID: uuid.New().String(), ConversationID: conversationID, Content: "hello"}}

	mockStore.On("GetConversation", ctx, conversationID).Return(participantConversation(conversationID, callerID, "member-b"), nil)
	mockStore.On("SearchMessages", ctx, "hello", conversationID).Return(matches, nil)

	uc := NewMessageUseCase(mockStore, mockEvents)
	got, err := uc.SearchMessages(ctx, callerID, "hello", conversationID)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	mockStore.AssertExpectations(t)
}
