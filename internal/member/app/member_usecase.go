package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"workzup_backend/internal/member/domain"
	"workzup_backend/internal/member/repository"
	"workzup_backend/pkg/config"
	"workzup_backend/pkg/database"
	"workzup_backend/pkg/encrypt"
	errprocess "workzup_backend/pkg/err"
	"workzup_backend/pkg/logger"
	token "workzup_backend/pkg/token"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// WelcomeQueue onboarding notifications land here
const WelcomeQueue = "member.welcome"

// MemberUseCase application services around accounts and sessions
type MemberUseCase interface {
	Register(ctx context.Context, email, password, displayName, role string) error
	FindMember(ctx context.Context, param *domain.MemberQuery) (*domain.Member, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	ForceLogout(ctx context.Context, memberID string) error
	CheckSessionTimeout(ctx context.Context, token string) (bool, error)
	ReconnectSession(ctx context.Context, token string) error
}

type memberUseCase struct {
	memberRepo repository.MemberRepository
	sessionTTL time.Duration
	redisRepo  database.RedisRepository[domain.MemberSession]
	notifyRepo database.RabbitRepo
}

// NewMemberUseCase create a new MemberUseCase
func NewMemberUseCase(memberRepo repository.MemberRepository,
	sessionTTL time.Duration,
	redisRepo database.RedisRepository[domain.MemberSession],
	notifyRepo database.RabbitRepo,
) MemberUseCase {
	return &memberUseCase{
		memberRepo: memberRepo,
		sessionTTL: sessionTTL,
		redisRepo:  redisRepo,
		notifyRepo: notifyRepo,
	}
}

// Register create the account and queue a welcome notification
func (m *memberUseCase) Register(ctx context.Context, email, password, displayName, role string) error {
	if role != string(token.RoleSeeker) && role != string(token.RoleRecruiter) {
		return errprocess.Validation("role must be seeker or recruiter")
	}
	if err := encrypt.ValidatePasswordStrength(password); err != nil {
		return errprocess.Validation("%s", err.Error())
	}

	if _, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{Email: &email}); err == nil {
		return errprocess.Validation("email already exists")
	}

	pw, err := encrypt.HashPassword(password)
	if err != nil {
		return errprocess.Internal(err)
	}

	member := domain.Member{
		MemberID:    uuid.New().String(),
		Email:       email,
		Password:    pw,
		DisplayName: displayName,
		Role:        role,
	}

	logger.Log.Info(fmt.Sprintf("usecase Register : %s %s", member.MemberID, member.Email))

	if err := m.memberRepo.CreateMember(ctx, &member); err != nil {
		return err
	}

	m.publishWelcome(&member)
	return nil
}

// publishWelcome best effort, registration already succeeded
func (m *memberUseCase) publishWelcome(member *domain.Member) {
	if m.notifyRepo == nil {
		return
	}
	body, err := json.Marshal(map[string]string{
		"member_id":    member.MemberID,
		"email":        member.Email,
		"display_name": member.DisplayName,
	})
	if err != nil {
		return
	}
	if err := m.notifyRepo.Publish("", WelcomeQueue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	}); err != nil {
		logger.Log.Warn("welcome publish failed",
			zap.String("member_id", member.MemberID),
			zap.Error(err),
		)
	}
}

// FindMember look up a member with query conditions
func (m *memberUseCase) FindMember(ctx context.Context, param *domain.MemberQuery) (*domain.Member, error) {
	member, err := m.memberRepo.FindByMember(ctx, param)
	if err != nil {
		return nil, errprocess.NotFound("member not found")
	}
	return member, nil
}

// Login verify credentials, issue a JWT and open a redis session
func (m *memberUseCase) Login(ctx context.Context, email, password string) (string, error) {
	member, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{Email: &email})
	if err != nil {
		logger.Log.Error("email can't find!!!")
		return "", errprocess.NotFound("member not found")
	}

	if err = member.IsPasswordMatch(password); err != nil {
		logger.Log.Error("password can't match!!!")
		return "", errprocess.Validation("password mismatch")
	}

	member.Status = domain.MemberStatusOnLine

	t, err := token.GenerateJWTFunc(member.MemberID, member.Role, config.EnvConfig.WorkzupService)
	if err != nil {
		return "", errprocess.Internal(err)
	}

	now := time.Now()
	session := domain.MemberSession{
		Token:        t,
		MemberID:     member.MemberID,
		CreatedAt:    now,
		LastActivity: now,
		ExpiredAt:    now.Add(m.sessionTTL),
	}

	if err := m.redisRepo.Set(context.Background(), member.MemberID, session, m.sessionTTL); err != nil {
		logger.Log.Error("Login save session err :", zap.String("memberID", member.MemberID), zap.Error(err))
		return "", err
	}

	if err := m.memberRepo.UpdateMemberStatus(ctx, member); err != nil {
		return "", err
	}

	return t, nil
}

// Logout drop the session and flag the member offline
func (m *memberUseCase) Logout(ctx context.Context, t string) error {
	tokenInfo, err := token.ParseJWTFunc(t)
	if err != nil {
		logger.Log.Error("Logout err :", zap.String("err", err.Error()))
		return err
	}
	logger.Log.Debug("logout", zap.String("member token info", fmt.Sprintf("%v", tokenInfo)))

	m.redisRepo.Del(context.Background(), tokenInfo.MemberID)

	if err := m.memberRepo.UpdateMemberStatus(ctx, &domain.Member{
		MemberID: tokenInfo.MemberID,
		Status:   domain.MemberStatusOffLine,
	}); err != nil {
		return err
	}
	return nil
}

// ForceLogout clear every session of the member
func (m *memberUseCase) ForceLogout(ctx context.Context, memberID string) error {
	m.redisRepo.Del(context.Background(), memberID)

	if err := m.memberRepo.UpdateMemberStatus(ctx, &domain.Member{
		MemberID: memberID,
		Status:   domain.MemberStatusOffLine,
	}); err != nil {
		return err
	}
	return nil
}

// CheckSessionTimeout true means the session is gone
func (m *memberUseCase) CheckSessionTimeout(ctx context.Context, t string) (bool, error) {
	tokenInfo, err := token.ParseJWTFunc(t)
	if err != nil {
		logger.Log.Error("CheckSessionTimeout err :", zap.String("err", err.Error()))
		return true, err
	}

	ttl, err := m.redisRepo.GetTTL(context.Background(), tokenInfo.MemberID)
	if err != nil {
		return true, err
	}

	if ttl > 0 {
		return false, nil
	}
	return true, nil
}

// ReconnectSession refresh the session TTL after a reconnect
func (m *memberUseCase) ReconnectSession(ctx context.Context, t string) error {
	tokenInfo, err := token.ParseJWTFunc(t)
	if err != nil {
		logger.Log.Error("ReconnectSession err :", zap.String("err", err.Error()))
		return err
	}

	m.redisRepo.ExtendTTL(context.Background(), tokenInfo.MemberID, m.sessionTTL)

	return nil
}
