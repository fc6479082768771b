package domain

import "time"

// Message definition a chat message inside a conversation
type Message struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id"`
	SenderID       string `json:"sender_id"`
	Content        string `json:"content"`
	// id of the message this one replies to, empty when not a reply
	ReplyToID string     `json:"reply_to_id,omitempty"`
	ReadBy    []string   `json:"read_by,omitempty"`
	Deleted   bool       `json:"deleted"`
	CreatedAt time.Time  `json:"created_at"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`
}

// TypingState ephemeral typing presence, keyed by (conversation, member)
type TypingState struct {
	ConversationID string    `json:"conversation_id"`
	MemberID       string    `json:"member_id"`
	LastPing       time.Time `json:"last_ping"`
}

// TypingFreshness a member with no ping inside this window counts as not typing
const TypingFreshness = 8 * time.Second

// ChatEvent definition activity event published to the event stream
type ChatEvent struct {
	Kind           string    `json:"kind"`
	ConversationID string    `json:"conversation_id"`
	MessageID      string    `json:"message_id,omitempty"`
	ActorID        string    `json:"actor_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// event kinds
const (
	EventConversationCreated = "conversation.created"
	EventMessageCreated      = "message.created"
)
