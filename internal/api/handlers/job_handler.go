package handlers

import (
	"strconv"

	"workzup_backend/internal/api/comm"
	jobapp "workzup_backend/internal/job/app"
	"workzup_backend/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// JobHandler handle job posting HTTP requests
type JobHandler struct {
	Jobs jobapp.JobUseCase
}

// NewJobHandler create a JobHandler
func NewJobHandler(jobs jobapp.JobUseCase) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

func callerRole(c *fiber.Ctx) string {
	role, _ := c.Locals(middlewares.TokenRole).(string)
	return role
}

func jobIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

// ListPublicJobs public postings
// @Summary List public jobs
// @Tags Jobs
// @Produce json
// @Success 200 {object} comm.Envelope
// @Router /jobs [get]
func (h *JobHandler) ListPublicJobs(c *fiber.Ctx) error {
	jobs, err := h.Jobs.ListPublicJobs(c.Context())
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, jobs)
}

// SearchJobs keyword search over public postings
// @Summary Search jobs
// @Tags Jobs
// @Produce json
// @Param q query string true "keyword"
// @Success 200 {object} comm.Envelope
// @Failure 400 {object} comm.Envelope
// @Router /jobs/search [get]
func (h *JobHandler) SearchJobs(c *fiber.Ctx) error {
	jobs, err := h.Jobs.SearchJobs(c.Context(), c.Query("q"))
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, jobs)
}

// CreateJob create a draft posting
// @Summary Create a job
// @Description Recruiters only, the posting starts as DRAFT
// @Tags Jobs
// @Accept json
// @Produce json
// @Success 200 {object} comm.Envelope
// @Failure 403 {object} comm.Envelope
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	var req jobapp.CreateJobReq
	if err := c.BodyParser(&req); err != nil {
		return comm.FailBadRequest(c, "invalid request")
	}

	job, err := h.Jobs.CreateJob(c.Context(), caller, callerRole(c), req)
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, job)
}

// GetJob fetch one posting
// @Summary Get a job
// @Tags Jobs
// @Produce json
// @Param id path int true "job id"
// @Success 200 {object} comm.Envelope
// @Failure 404 {object} comm.Envelope
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	caller, _ := callerID(c)

	id, err := jobIDParam(c)
	if err != nil {
		return comm.FailBadRequest(c, "invalid job id")
	}

	job, err := h.Jobs.GetJob(c.Context(), caller, id)
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, job)
}

// UpdateJob edit a posting, owner only
// @Summary Update a job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path int true "job id"
// @Success 200 {object} comm.Envelope
// @Failure 403 {object} comm.Envelope
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	id, err := jobIDParam(c)
	if err != nil {
		return comm.FailBadRequest(c, "invalid job id")
	}

	var req jobapp.CreateJobReq
	if err := c.BodyParser(&req); err != nil {
		return comm.FailBadRequest(c, "invalid request")
	}

	job, err := h.Jobs.UpdateJob(c.Context(), caller, id, req)
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, job)
}

// PublishJob take a draft public
// @Summary Publish a job
// @Tags Jobs
// @Produce json
// @Param id path int true "job id"
// @Success 200 {object} comm.Envelope
// @Failure 403 {object} comm.Envelope
// @Router /jobs/{id}/publish [post]
func (h *JobHandler) PublishJob(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	id, err := jobIDParam(c)
	if err != nil {
		return comm.FailBadRequest(c, "invalid job id")
	}

	job, err := h.Jobs.PublishJob(c.Context(), caller, id)
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, job)
}
