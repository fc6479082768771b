package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"workzup_backend/internal/chat/domain"
	"workzup_backend/pkg"
	errprocess "workzup_backend/pkg/err"

	"github.com/google/uuid"
)

// ConversationStore definition the single source of truth for conversations,
// messages and transient typing presence inside this process
type ConversationStore interface {
	ListConversations(ctx context.Context, memberID string) ([]domain.ConversationView, error)
	GetConversation(ctx context.Context, conversationID string) (*domain.Conversation, error)
	CreateConversation(ctx context.Context, participantIDs []string, convType domain.ConversationType, jobID string) (*domain.Conversation, error)
	// GetMessages returns non-deleted messages oldest first. Fetching through
	// this path marks every message not sent by readerID as read and resets
	// the reader's unread counter (read receipt on view).
	GetMessages(ctx context.Context, conversationID, readerID string) ([]domain.Message, error)
	CreateMessage(ctx context.Context, conversationID, senderID, content, replyToID string) (*domain.Message, error)
	UpdateMessage(ctx context.Context, conversationID, messageID, callerID, content string) (*domain.Message, error)
	DeleteMessage(ctx context.Context, conversationID, messageID, callerID string) error
	MarkMessageAsRead(ctx context.Context, conversationID, messageID, readerID string) error
	MarkAllMessagesAsRead(ctx context.Context, conversationID, readerID string) error
	ArchiveConversation(ctx context.Context, conversationID string) error
	PinConversation(ctx context.Context, conversationID string, pinned bool) error
	SetTypingStatus(ctx context.Context, conversationID, memberID string, isTyping bool) error
	GetTypingUsers(ctx context.Context, conversationID string) ([]string, error)
	// SearchMessages does no membership filtering, the caller is responsible
	// for narrowing results to conversations it participates in.
	SearchMessages(ctx context.Context, query, conversationID string) ([]domain.Message, error)
}

// conversationState one conversation plus everything it owns. Each
// conversation carries its own lock so concurrent sends into different
// conversations never contend.
type conversationState struct {
	mu       sync.Mutex
	conv     domain.Conversation
	messages []*domain.Message
	typing   map[string]time.Time
}

type memoryConversationStore struct {
	mu            sync.RWMutex
	conversations map[string]*conversationState

	now func() time.Time
}

// NewMemoryConversationStore create the process-local conversation store
func NewMemoryConversationStore() ConversationStore {
	return &memoryConversationStore{
		conversations: make(map[string]*conversationState),
		now:           time.Now,
	}
}

func (s *memoryConversationStore) state(conversationID string) (*conversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.conversations[conversationID]
	if !ok {
		return nil, errprocess.NotFound("conversation %s", conversationID)
	}
	return st, nil
}

// ListConversations pinned first, then most recent activity first. Archived
// conversations are excluded but stay fetchable by id.
func (s *memoryConversationStore) ListConversations(_ context.Context, memberID string) ([]domain.ConversationView, error) {
	s.mu.RLock()
	states := make([]*conversationState, 0, len(s.conversations))
	for _, st := range s.conversations {
		states = append(states, st)
	}
	s.mu.RUnlock()

	views := make([]domain.ConversationView, 0, len(states))
	for _, st := range states {
		st.mu.Lock()
		if !st.conv.Archived && st.conv.HasParticipant(memberID) {
			view := domain.ConversationView{
				Conversation: cloneConversation(&st.conv),
				UnreadCount:  st.conv.UnreadCounts[memberID],
			}
			if len(st.conv.ParticipantIDs) == 2 {
				view.OtherParticipantID = st.conv.OtherParticipant(memberID)
			}
			views = append(views, view)
		}
		st.mu.Unlock()
	}

	sort.SliceStable(views, func(i, j int) bool {
		if views[i].Pinned != views[j].Pinned {
			return views[i].Pinned
		}
		return views[i].UpdatedAt.After(views[j].UpdatedAt)
	})
	return views, nil
}

func (s *memoryConversationStore) GetConversation(_ context.Context, conversationID string) (*domain.Conversation, error) {
	st, err := s.state(conversationID)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	conv := cloneConversation(&st.conv)
	return &conv, nil
}

func (s *memoryConversationStore) CreateConversation(_ context.Context, participantIDs []string, convType domain.ConversationType, jobID string) (*domain.Conversation, error) {
	unique := make([]string, 0, len(participantIDs))
	for _, id := range participantIDs {
		if id != "" && !pkg.Contains(unique, id) {
			unique = append(unique, id)
		}
	}
	if len(unique) < 2 {
		return nil, errprocess.Validation("conversation needs at least 2 participants")
	}

	now := s.now()
	conv := domain.Conversation{
		ID:             uuid.New().String(),
		Type:           convType,
		ParticipantIDs: unique,
		JobID:          jobID,
		UnreadCounts:   make(map[string]int, len(unique)),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, id := range unique {
		conv.UnreadCounts[id] = 0
	}

	st := &conversationState{
		conv:   conv,
		typing: make(map[string]time.Time),
	}

	s.mu.Lock()
	s.conversations[conv.ID] = st
	s.mu.Unlock()

	out := cloneConversation(&conv)
	return &out, nil
}

func (s *memoryConversationStore) GetMessages(_ context.Context, conversationID, readerID string) ([]domain.Message, error) {
	st, err := s.state(conversationID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	out := make([]domain.Message, 0, len(st.messages))
	for _, msg := range st.messages {
		if msg.SenderID != readerID && !pkg.Contains(msg.ReadBy, readerID) {
			msg.ReadBy = append(msg.ReadBy, readerID)
		}
		if !msg.Deleted {
			out = append(out, *msg)
		}
	}
	st.conv.UnreadCounts[readerID] = 0
	return out, nil
}

func (s *memoryConversationStore) CreateMessage(_ context.Context, conversationID, senderID, content, replyToID string) (*domain.Message, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, errprocess.Validation("message content is empty")
	}

	st, err := s.state(conversationID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if replyToID != "" && findMessage(st.messages, replyToID) == nil {
		return nil, errprocess.NotFound("reply target %s", replyToID)
	}

	now := s.now()
	msg := &domain.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        trimmed,
		ReplyToID:      replyToID,
		ReadBy:         []string{senderID},
		CreatedAt:      now,
	}
	st.messages = append(st.messages, msg)

	for _, id := range st.conv.ParticipantIDs {
		if id != senderID {
			st.conv.UnreadCounts[id]++
		}
	}
	st.conv.UpdatedAt = now

	out := *msg
	return &out, nil
}

// UpdateMessage only the original sender may edit. Other messages keep their
// order and timestamps.
func (s *memoryConversationStore) UpdateMessage(_ context.Context, conversationID, messageID, callerID, content string) (*domain.Message, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, errprocess.Validation("message content is empty")
	}

	st, err := s.state(conversationID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	msg := findMessage(st.messages, messageID)
	if msg == nil || msg.Deleted {
		return nil, errprocess.NotFound("message %s", messageID)
	}
	if msg.SenderID != callerID {
		return nil, errprocess.Forbidden("only the sender can edit a message")
	}

	now := s.now()
	msg.Content = trimmed
	msg.EditedAt = &now

	out := *msg
	return &out, nil
}

// DeleteMessage soft delete, the record stays resolvable as a reply target
func (s *memoryConversationStore) DeleteMessage(_ context.Context, conversationID, messageID, callerID string) error {
	st, err := s.state(conversationID)
	if err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	msg := findMessage(st.messages, messageID)
	if msg == nil {
		return errprocess.NotFound("message %s", messageID)
	}
	if msg.SenderID != callerID {
		return errprocess.Forbidden("only the sender can delete a message")
	}

	msg.Deleted = true
	return nil
}

func (s *memoryConversationStore) MarkMessageAsRead(_ context.Context, conversationID, messageID, readerID string) error {
	st, err := s.state(conversationID)
	if err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	msg := findMessage(st.messages, messageID)
	if msg == nil {
		return errprocess.NotFound("message %s", messageID)
	}

	// already read is a no-op
	if msg.SenderID == readerID || pkg.Contains(msg.ReadBy, readerID) {
		return nil
	}

	msg.ReadBy = append(msg.ReadBy, readerID)
	if st.conv.UnreadCounts[readerID] > 0 {
		st.conv.UnreadCounts[readerID]--
	}
	return nil
}

func (s *memoryConversationStore) MarkAllMessagesAsRead(_ context.Context, conversationID, readerID string) error {
	st, err := s.state(conversationID)
	if err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	for _, msg := range st.messages {
		if msg.SenderID != readerID && !pkg.Contains(msg.ReadBy, readerID) {
			msg.ReadBy = append(msg.ReadBy, readerID)
		}
	}
	st.conv.UnreadCounts[readerID] = 0
	return nil
}

// ArchiveConversation "delete" is modeled as archive, nothing is purged
func (s *memoryConversationStore) ArchiveConversation(_ context.Context, conversationID string) error {
	st, err := s.state(conversationID)
	if err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.conv.Archived = true
	return nil
}

func (s *memoryConversationStore) PinConversation(_ context.Context, conversationID string, pinned bool) error {
	st, err := s.state(conversationID)
	if err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.conv.Pinned = pinned
	return nil
}

func (s *memoryConversationStore) SetTypingStatus(_ context.Context, conversationID, memberID string, isTyping bool) error {
	st, err := s.state(conversationID)
	if err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if isTyping {
		st.typing[memberID] = s.now()
	} else {
		delete(st.typing, memberID)
	}
	return nil
}

// GetTypingUsers members whose last ping is older than the freshness window
// count as not typing and get dropped from the map.
func (s *memoryConversationStore) GetTypingUsers(_ context.Context, conversationID string) ([]string, error) {
	st, err := s.state(conversationID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	now := s.now()
	members := make([]string, 0, len(st.typing))
	for id, ping := range st.typing {
		if now.Sub(ping) > domain.TypingFreshness {
			delete(st.typing, id)
			continue
		}
		members = append(members, id)
	}
	sort.Strings(members)
	return members, nil
}

func (s *memoryConversationStore) SearchMessages(_ context.Context, query, conversationID string) ([]domain.Message, error) {
	needle := strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	states := make([]*conversationState, 0, len(s.conversations))
	for id, st := range s.conversations {
		if conversationID != "" && id != conversationID {
			continue
		}
		states = append(states, st)
	}
	s.mu.RUnlock()

	if conversationID != "" && len(states) == 0 {
		return nil, errprocess.NotFound("conversation %s", conversationID)
	}

	var matches []domain.Message
	for _, st := range states {
		st.mu.Lock()
		for _, msg := range st.messages {
			if msg.Deleted {
				continue
			}
			if strings.Contains(strings.ToLower(msg.Content), needle) {
				matches = append(matches, *msg)
			}
		}
		st.mu.Unlock()
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})
	return matches, nil
}

func findMessage(messages []*domain.Message, messageID string) *domain.Message {
	for _, msg := range messages {
		if msg.ID == messageID {
			return msg
		}
	}
	return nil
}

func cloneConversation(conv *domain.Conversation) domain.Conversation {
	out := *conv
	out.ParticipantIDs = append([]string(nil), conv.ParticipantIDs...)
	out.UnreadCounts = make(map[string]int, len(conv.UnreadCounts))
	for k, v := range conv.UnreadCounts {
		out.UnreadCounts[k] = v
	}
	return out
}
