package domain

import (
	"time"

	"workzup_backend/pkg/encrypt"
)

// MemberStatus member account state
type MemberStatus int

// status: 0=offline, 1=online, 2=ban, 3=delete
const (
	// MemberStatusOffLine member is offline
	MemberStatusOffLine MemberStatus = iota
	// MemberStatusOnLine member is online
	MemberStatusOnLine
	// MemberStatusBan member is blocked
	MemberStatusBan
	// MemberStatusDelete member is removed
	MemberStatusDelete
)

// Member a registered account. Email, DisplayName and Role are fixed
// after registration.
type Member struct {
	ID          int64
	MemberID    string
	Email       string
	Password    string
	DisplayName string
	AvatarURL   string
	Role        string
	Status      MemberStatus
}

// MemberSession redis-backed login session
type MemberSession struct {
	Token        string    `json:"Token"`
	MemberID     string    `json:"MemberID"`
	CreatedAt    time.Time `json:"CreatedAt"`
	LastActivity time.Time `json:"LastActivity"`
	ExpiredAt    time.Time `json:"ExpiredAt"`
}

// IsPasswordMatch compare the stored hash with the given password
func (m *Member) IsPasswordMatch(inputPwd string) error {
	return encrypt.CheckPassword(m.Password, inputPwd)
}

// IsExpired check whether the session is past its expiry
func (s *MemberSession) IsExpired() bool {
	return time.Now().After(s.ExpiredAt)
}

// MemberQuery join conditions are used to query members
type MemberQuery struct {
	ID       *int64  `db:"id"`
	MemberID *string `db:"member_id"`
	Email    *string `db:"email"`
}
