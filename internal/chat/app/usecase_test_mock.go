package app

import (
	"context"
	"workzup_backend/internal/chat/domain"

	"github.com/stretchr/testify/mock"
)

// MockConversationStore Mock ConversationStore
type MockConversationStore struct {
	mock.Mock
}

// ListConversations moke list conversations by member id
func (m *MockConversationStore) ListConversations(ctx context.Context, memberID string) ([]domain.ConversationView, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.ConversationView), args.Error(1)
	}
	return nil, args.Error(1)
}

// GetConversation moke get conversation by id
func (m *MockConversationStore) GetConversation(ctx context.Context, conversationID string) (*domain.Conversation, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Conversation), args.Error(1)
	}
	return nil, args.Error(1)
}

// CreateConversation moke create conversation
func (m *MockConversationStore) CreateConversation(ctx context.Context, participantIDs []string, convType domain.ConversationType, jobID string) (*domain.Conversation, error) {
	args := m.Called(ctx, participantIDs, convType, jobID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Conversation), args.Error(1)
	}
	return nil, args.Error(1)
}

// GetMessages moke get messages with read receipt
func (m *MockConversationStore) GetMessages(ctx context.Context, conversationID, readerID string) ([]domain.Message, error) {
	args := m.Called(ctx, conversationID, readerID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

// CreateMessage moke create message
func (m *MockConversationStore) CreateMessage(ctx context.Context, conversationID, senderID, content, replyToID string) (*domain.Message, error) {
	args := m.Called(ctx, conversationID, senderID, content, replyToID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateMessage moke update message content
func (m *MockConversationStore) UpdateMessage(ctx context.Context, conversationID, messageID, callerID, content string) (*domain.Message, error) {
	args := m.Called(ctx, conversationID, messageID, callerID, content)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

// DeleteMessage moke delete message
func (m *MockConversationStore) DeleteMessage(ctx context.Context, conversationID, messageID, callerID string) error {
	args := m.Called(ctx, conversationID, messageID, callerID)
	return args.Error(0)
}

// MarkMessageAsRead moke mark one message read
func (m *MockConversationStore) MarkMessageAsRead(ctx context.Context, conversationID, messageID, readerID string) error {
	args := m.Called(ctx, conversationID, messageID, readerID)
	return args.Error(0)
}

// MarkAllMessagesAsRead moke mark all messages read
func (m *MockConversationStore) MarkAllMessagesAsRead(ctx context.Context, conversationID, readerID string) error {
	args := m.Called(ctx, conversationID, readerID)
	return args.Error(0)
}

// ArchiveConversation moke archive conversation
func (m *MockConversationStore) ArchiveConversation(ctx context.Context, conversationID string) error {
	args := m.Called(ctx, conversationID)
	return args.Error(0)
}

// PinConversation moke pin conversation
func (m *MockConversationStore) PinConversation(ctx context.Context, conversationID string, pinned bool) error {
	args := m.Called(ctx, conversationID, pinned)
	return args.Error(0)
}

// SetTypingStatus moke set typing ping
func (m *MockConversationStore) SetTypingStatus(ctx context.Context, conversationID, memberID string, isTyping bool) error {
	args := m.Called(ctx, conversationID, memberID, isTyping)
	return args.Error(0)
}

// GetTypingUsers moke get typing members
func (m *MockConversationStore) GetTypingUsers(ctx context.Context, conversationID string) ([]string, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) != nil {
		return args.Get(0).([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

// SearchMessages moke search messages
func (m *MockConversationStore) SearchMessages(ctx context.Context, query, conversationID string) ([]domain.Message, error) {
	args := m.Called(ctx, query, conversationID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockMemberResolver Mock MemberResolver
type MockMemberResolver struct {
	mock.Mock
}

// ResolveParticipant moke resolve member id
func (m *MockMemberResolver) ResolveParticipant(ctx context.Context, memberID string) (*domain.Participant, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Participant), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockEventPublisher Mock EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

// Publish moke publish chat event
func (m *MockEventPublisher) Publish(ctx context.Context, event domain.ChatEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
