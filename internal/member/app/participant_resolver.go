package app

import (
	"context"

	chatdomain "workzup_backend/internal/chat/domain"
	"workzup_backend/internal/member/domain"
)

// ParticipantResolver adapt member lookups for the chat context
type ParticipantResolver struct {
	members MemberUseCase
}

// NewParticipantResolver create a ParticipantResolver
func NewParticipantResolver(members MemberUseCase) *ParticipantResolver {
	return &ParticipantResolver{members: members}
}

// ResolveParticipant member id must belong to a registered member
func (r *ParticipantResolver) ResolveParticipant(ctx context.Context, memberID string) (*chatdomain.Participant, error) {
	member, err := r.members.FindMember(ctx, &domain.MemberQuery{MemberID: &memberID})
	if err != nil {
		return nil, err
	}
	return &chatdomain.Participant{
		MemberID:    member.MemberID,
		DisplayName: member.DisplayName,
		AvatarURL:   member.AvatarURL,
		Role:        member.Role,
	}, nil
}
