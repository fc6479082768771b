package handlers

import (
	"strconv"

	"workzup_backend/internal/api/comm"
	chatapp "workzup_backend/internal/chat/app"
	chatdomain "workzup_backend/internal/chat/domain"
	jobapp "workzup_backend/internal/job/app"
	jobdomain "workzup_backend/internal/job/domain"
	"workzup_backend/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler handle conversation and message HTTP requests
type ChatHandler struct {
	Conversations chatapp.ConversationUseCase
	Messages      chatapp.MessageUseCase
	Jobs          jobapp.JobUseCase
}

// NewChatHandler create a ChatHandler
func NewChatHandler(conversations chatapp.ConversationUseCase, messages chatapp.MessageUseCase, jobs jobapp.JobUseCase) *ChatHandler {
	return &ChatHandler{
		Conversations: conversations,
		Messages:      messages,
		Jobs:          jobs,
	}
}

func callerID(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals(middlewares.TokenMemberID).(string)
	return id, ok && id != ""
}

// ListConversations list the caller's conversations
// @Summary List conversations
// @Description Active conversations of the caller, pinned first then by recency
// @Tags Chat
// @Produce json
// @Success 200 {object} comm.Envelope
// @Router /conversations [get]
func (h *ChatHandler) ListConversations(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	views, err := h.Conversations.ListConversations(c.Context(), caller)
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, views)
}

// CreateConversation open a conversation
// @Summary Create a conversation
// @Description Open a direct or job conversation, the caller always joins
// @Tags Chat
// @Accept json
// @Produce json
// @Success 200 {object} comm.Envelope
// @Failure 400 {object} comm.Envelope
// @Router /conversations [post]
func (h *ChatHandler) CreateConversation(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	type request struct {
		ParticipantIDs []string `json:"participant_ids"`
		Type           string   `json:"type"`
		JobID          string   `json:"job_id"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return comm.FailBadRequest(c, "invalid request")
	}

	convType := chatdomain.ConversationTypeDirect
	if req.Type == string(chatdomain.ConversationTypeJob) {
		convType = chatdomain.ConversationTypeJob
	}

	conv, err := h.Conversations.CreateConversation(c.Context(), caller, req.ParticipantIDs, convType, req.JobID)
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, conv)
}

// GetConversation fetch one conversation
// @Summary Get a conversation
// @Tags Chat
// @Produce json
// @Param id path string true "conversation id"
// @Success 200 {object} comm.Envelope
// @Failure 403 {object} comm.Envelope
// @Failure 404 {object} comm.Envelope
// @Router /conversations/{id} [get]
func (h *ChatHandler) GetConversation(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	conv, err := h.Conversations.GetConversation(c.Context(), caller, c.Params("id"))
	if err != nil {
		return comm.Fail(c, err)
	}

	type response struct {
		Conversation *chatdomain.Conversation `json:"conversation"`
		Job          *jobdomain.JobSummary    `json:"job,omitempty"`
	}
	res := response{Conversation: conv}

	// job conversations carry the posting header, display data only
	if conv.Type == chatdomain.ConversationTypeJob && conv.JobID != "" {
		if jobID, perr := strconv.ParseUint(conv.JobID, 10, 64); perr == nil {
			if summary, serr := h.Jobs.JobSummary(c.Context(), uint(jobID)); serr == nil {
				res.Job = summary
			}
		}
	}
	return comm.Respond(c, res)
}

// ArchiveConversation archive a conversation
// @Summary Archive a conversation
// @Description The conversation leaves the list but stays fetchable by id
// @Tags Chat
// @Produce json
// @Param id path string true "conversation id"
// @Success 200 {object} comm.Envelope
// @Router /conversations/{id}/archive [post]
func (h *ChatHandler) ArchiveConversation(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	if err := h.Conversations.ArchiveConversation(c.Context(), caller, c.Params("id")); err != nil {
		return comm.Fail(c, err)
	}
	return comm.RespondMessage(c, "conversation archived")
}

// PinConversation pin or unpin a conversation
// @Summary Pin a conversation
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "conversation id"
// @Success 200 {object} comm.Envelope
// @Router /conversations/{id}/pin [post]
func (h *ChatHandler) PinConversation(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	type request struct {
		Pinned bool `json:"pinned"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return comm.FailBadRequest(c, "invalid request")
	}

	if err := h.Conversations.PinConversation(c.Context(), caller, c.Params("id"), req.Pinned); err != nil {
		return comm.Fail(c, err)
	}
	return comm.RespondMessage(c, "conversation pin updated")
}

// GetMessages list messages, marking them read for the caller
// @Summary Get conversation messages
// @Description Non-deleted messages oldest first, viewing counts as reading
// @Tags Chat
// @Produce json
// @Param id path string true "conversation id"
// @Success 200 {object} comm.Envelope
// @Failure 403 {object} comm.Envelope
// @Failure 404 {object} comm.Envelope
// @Router /conversations/{id}/messages [get]
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	msgs, err := h.Messages.GetMessages(c.Context(), caller, c.Params("id"))
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, msgs)
}

// SendMessage append a message
// @Summary Send a message
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "conversation id"
// @Success 200 {object} comm.Envelope
// @Failure 400 {object} comm.Envelope
// @Router /conversations/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	type request struct {
		Content   string `json:"content"`
		ReplyToID string `json:"reply_to_id"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return comm.FailBadRequest(c, "invalid request")
	}

	msg, err := h.Messages.SendMessage(c.Context(), caller, c.Params("id"), req.Content, req.ReplyToID)
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, msg)
}

// EditMessage edit a message, sender only
// @Summary Edit a message
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "conversation id"
// @Param messageId path string true "message id"
// @Success 200 {object} comm.Envelope
// @Failure 403 {object} comm.Envelope
// @Router /conversations/{id}/messages/{messageId} [put]
func (h *ChatHandler) EditMessage(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	type request struct {
		Content string `json:"content"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return comm.FailBadRequest(c, "invalid request")
	}

	msg, err := h.Messages.EditMessage(c.Context(), caller, c.Params("id"), c.Params("messageId"), req.Content)
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, msg)
}

// DeleteMessage soft delete a message, sender only
// @Summary Delete a message
// @Tags Chat
// @Produce json
// @Param id path string true "conversation id"
// @Param messageId path string true "message id"
// @Success 200 {object} comm.Envelope
// @Failure 403 {object} comm.Envelope
// @Router /conversations/{id}/messages/{messageId} [delete]
func (h *ChatHandler) DeleteMessage(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	if err := h.Messages.DeleteMessage(c.Context(), caller, c.Params("id"), c.Params("messageId")); err != nil {
		return comm.Fail(c, err)
	}
	return comm.RespondMessage(c, "message deleted")
}

// MarkMessageAsRead mark one message read
// @Summary Mark a message read
// @Tags Chat
// @Produce json
// @Param id path string true "conversation id"
// @Param messageId path string true "message id"
// @Success 200 {object} comm.Envelope
// @Router /conversations/{id}/messages/{messageId}/read [post]
func (h *ChatHandler) MarkMessageAsRead(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	if err := h.Messages.MarkMessageAsRead(c.Context(), caller, c.Params("id"), c.Params("messageId")); err != nil {
		return comm.Fail(c, err)
	}
	return comm.RespondMessage(c, "message read")
}

// MarkAllMessagesAsRead mark the whole conversation read
// @Summary Mark a conversation read
// @Tags Chat
// @Produce json
// @Param id path string true "conversation id"
// @Success 200 {object} comm.Envelope
// @Router /conversations/{id}/read [post]
func (h *ChatHandler) MarkAllMessagesAsRead(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	if err := h.Messages.MarkAllMessagesAsRead(c.Context(), caller, c.Params("id")); err != nil {
		return comm.Fail(c, err)
	}
	return comm.RespondMessage(c, "conversation read")
}

// SetTypingStatus update the caller's typing ping
// @Summary Set typing status
// @Description Update the typing ping and return who is typing now
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "conversation id"
// @Success 200 {object} comm.Envelope
// @Router /conversations/{id}/typing [post]
func (h *ChatHandler) SetTypingStatus(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	type request struct {
		IsTyping bool `json:"is_typing"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return comm.FailBadRequest(c, "invalid request")
	}

	typing, err := h.Messages.SetTypingStatus(c.Context(), caller, c.Params("id"), req.IsTyping)
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, fiber.Map{"typing": typing})
}

// GetTypingUsers who is typing right now
// @Summary Get typing members
// @Tags Chat
// @Produce json
// @Param id path string true "conversation id"
// @Success 200 {object} comm.Envelope
// @Router /conversations/{id}/typing [get]
func (h *ChatHandler) GetTypingUsers(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	typing, err := h.Messages.GetTypingUsers(c.Context(), caller, c.Params("id"))
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, fiber.Map{"typing": typing})
}

// SearchMessages substring search across the caller's conversations
// @Summary Search messages
// @Tags Chat
// @Produce json
// @Param q query string true "query, at least 2 characters"
// @Param conversation_id query string false "restrict to one conversation"
// @Success 200 {object} comm.Envelope
// @Failure 400 {object} comm.Envelope
// @Router /messages/search [get]
func (h *ChatHandler) SearchMessages(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	msgs, err := h.Messages.SearchMessages(c.Context(), caller, c.Query("q"), c.Query("conversation_id"))
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, msgs)
}
