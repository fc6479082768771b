package handlers

import (
	"workzup_backend/internal/api/comm"
	memberapp "workzup_backend/internal/member/app"
	memberdomain "workzup_backend/internal/member/domain"
	"workzup_backend/pkg/logger"
	"workzup_backend/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MemberHandler handle member HTTP requests
type MemberHandler struct {
	Members memberapp.MemberUseCase
}

// NewMemberHandler create a MemberHandler
func NewMemberHandler(members memberapp.MemberUseCase) *MemberHandler {
	return &MemberHandler{Members: members}
}

// Register register a new member
// @Summary Register a new member
// @Description Create an account with email, password, display name and role
// @Tags Members
// @Accept json
// @Produce json
// @Success 200 {object} comm.Envelope "register success"
// @Failure 400 {object} comm.Envelope "request error"
// @Router /member/register [post]
func (h *MemberHandler) Register(c *fiber.Ctx) error {
	type request struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
		Role        string `json:"role"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return comm.FailBadRequest(c, "invalid request")
	}

	logger.Log.Debug("Register request", zap.String("email", req.Email))

	if err := h.Members.Register(c.Context(), req.Email, req.Password, req.DisplayName, req.Role); err != nil {
		return comm.Fail(c, err)
	}
	return comm.RespondMessage(c, "register success")
}

// Login member login
// @Summary Member login
// @Description Login with email and password, returns a JWT
// @Tags Members
// @Accept json
// @Produce json
// @Success 200 {object} comm.Envelope "login success"
// @Failure 400 {object} comm.Envelope "request error"
// @Failure 404 {object} comm.Envelope "member not found"
// @Router /member/login [post]
func (h *MemberHandler) Login(c *fiber.Ctx) error {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return comm.FailBadRequest(c, "invalid request")
	}

	logger.Log.Debug("Login", zap.String("Email", req.Email))

	token, err := h.Members.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, fiber.Map{"token": token})
}

// Logout member logout
// @Summary Member logout
// @Description Drop the member session
// @Tags Members
// @Accept json
// @Produce json
// @Param auth query string false "token"
// @Success 200 {object} comm.Envelope "logout success"
// @Failure 500 {object} comm.Envelope "server error"
// @Router /member/logout [post]
func (h *MemberHandler) Logout(c *fiber.Ctx) error {
	tokenStr := c.Query(middlewares.QueryToken)
	if tokenStr == "" {
		auth := c.Get(fiber.HeaderAuthorization)
		if len(auth) > 7 && auth[:7] == "Bearer " {
			tokenStr = auth[7:]
		}
	}
	if tokenStr == "" {
		return comm.FailBadRequest(c, "missing token")
	}

	if err := h.Members.Logout(c.Context(), tokenStr); err != nil {
		return comm.Fail(c, err)
	}
	return comm.RespondMessage(c, "logout success")
}

// FindByEmail find member info
// @Summary Find member info
// @Description Look up a member by email
// @Tags Members
// @Accept json
// @Produce json
// @Param email query string true "member email"
// @Success 200 {object} comm.Envelope "member info"
// @Failure 400 {object} comm.Envelope "request error"
// @Failure 404 {object} comm.Envelope "member not found"
// @Router /member/find [get]
func (h *MemberHandler) FindByEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return comm.FailBadRequest(c, "email is required")
	}

	member, err := h.Members.FindMember(c.Context(), &memberdomain.MemberQuery{Email: &email})
	if err != nil {
		return comm.Fail(c, err)
	}

	return comm.Respond(c, fiber.Map{
		"member_id":    member.MemberID,
		"email":        member.Email,
		"display_name": member.DisplayName,
		"avatar_url":   member.AvatarURL,
		"role":         member.Role,
	})
}
