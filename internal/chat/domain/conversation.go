package domain

import "time"

// ConversationType definition conversation type
type ConversationType string

const (
	//ConversationTypeDirect definition 1 on 1 conversation
	ConversationTypeDirect ConversationType = "direct"
	//ConversationTypeJob definition conversation attached to a job posting
	ConversationTypeJob ConversationType = "job"
)

// Conversation definition a thread of messages between a fixed set of participants
type Conversation struct {
	ID             string           `json:"id"`
	Type           ConversationType `json:"type"`
	ParticipantIDs []string         `json:"participant_ids"`
	JobID          string           `json:"job_id,omitempty"`
	// unread message count per participant, keyed by member id
	UnreadCounts map[string]int `json:"unread_counts"`
	Archived     bool           `json:"archived"`
	Pinned       bool           `json:"pinned"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// HasParticipant check memberID is a participant
func (c *Conversation) HasParticipant(memberID string) bool {
	for _, id := range c.ParticipantIDs {
		if id == memberID {
			return true
		}
	}
	return false
}

// OtherParticipant return the participant that is not memberID, for 1:1 display
func (c *Conversation) OtherParticipant(memberID string) string {
	for _, id := range c.ParticipantIDs {
		if id != memberID {
			return id
		}
	}
	return ""
}

// ConversationView conversation annotated for one viewer
type ConversationView struct {
	Conversation
	// the "other participant" of a 1:1 conversation, empty for larger groups
	OtherParticipantID string       `json:"other_participant_id,omitempty"`
	OtherParticipant   *Participant `json:"other_participant,omitempty"`
	UnreadCount        int          `json:"unread_count"`
}

// Participant definition a member of a conversation, as the identity
// collaborator resolves it
type Participant struct {
	MemberID    string `json:"member_id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Role        string `json:"role"`
}
