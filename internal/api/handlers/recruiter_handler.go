package handlers

import (
	"workzup_backend/internal/api/comm"
	recruiterapp "workzup_backend/internal/recruiter/app"

	"github.com/gofiber/fiber/v2"
)

// RecruiterHandler handle recruiter profile and review HTTP requests
type RecruiterHandler struct {
	Recruiters recruiterapp.RecruiterUseCase
}

// NewRecruiterHandler create a RecruiterHandler
func NewRecruiterHandler(recruiters recruiterapp.RecruiterUseCase) *RecruiterHandler {
	return &RecruiterHandler{Recruiters: recruiters}
}

// GetProfile fetch a recruiter profile
// @Summary Get recruiter profile
// @Tags Recruiters
// @Produce json
// @Param id path string true "recruiter member id"
// @Success 200 {object} comm.Envelope
// @Failure 404 {object} comm.Envelope
// @Router /recruiters/{id} [get]
func (h *RecruiterHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.Recruiters.GetProfile(c.Context(), c.Params("id"))
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, profile)
}

// UpsertProfile create or update the caller's profile
// @Summary Upsert recruiter profile
// @Description Recruiters only, edits the caller's own profile
// @Tags Recruiters
// @Accept json
// @Produce json
// @Success 200 {object} comm.Envelope
// @Failure 403 {object} comm.Envelope
// @Router /recruiters/profile [put]
func (h *RecruiterHandler) UpsertProfile(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	var req recruiterapp.UpsertProfileReq
	if err := c.BodyParser(&req); err != nil {
		return comm.FailBadRequest(c, "invalid request")
	}

	profile, err := h.Recruiters.UpsertProfile(c.Context(), caller, callerRole(c), req)
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, profile)
}

// ListReviews reviews of a recruiter
// @Summary List recruiter reviews
// @Tags Recruiters
// @Produce json
// @Param id path string true "recruiter member id"
// @Success 200 {object} comm.Envelope
// @Router /recruiters/{id}/reviews [get]
func (h *RecruiterHandler) ListReviews(c *fiber.Ctx) error {
	reviews, err := h.Recruiters.ListReviews(c.Context(), c.Params("id"))
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, reviews)
}

// AddReview review a recruiter
// @Summary Review a recruiter
// @Description Seekers only, rating 1..5, one review per author
// @Tags Recruiters
// @Accept json
// @Produce json
// @Param id path string true "recruiter member id"
// @Success 200 {object} comm.Envelope
// @Failure 400 {object} comm.Envelope
// @Failure 403 {object} comm.Envelope
// @Router /recruiters/{id}/reviews [post]
func (h *RecruiterHandler) AddReview(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	var req recruiterapp.AddReviewReq
	if err := c.BodyParser(&req); err != nil {
		return comm.FailBadRequest(c, "invalid request")
	}

	review, err := h.Recruiters.AddReview(c.Context(), caller, callerRole(c), c.Params("id"), req)
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, review)
}
