package handlers

import (
	"net/url"

	"workzup_backend/internal/api/comm"
	uploadapp "workzup_backend/internal/upload/app"
	uploaddomain "workzup_backend/internal/upload/domain"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler handle attachment upload HTTP requests
type UploadHandler struct {
	Uploads uploadapp.UploadUseCase
}

// NewUploadHandler create an UploadHandler
func NewUploadHandler(uploads uploadapp.UploadUseCase) *UploadHandler {
	return &UploadHandler{Uploads: uploads}
}

// UploadAttachment receive a multipart file and store it
// @Summary Upload an attachment
// @Description Multipart upload, pdf/doc/docx/png/jpeg up to 5 MiB
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "attachment"
// @Success 200 {object} comm.Envelope
// @Failure 400 {object} comm.Envelope
// @Router /uploads [post]
func (h *UploadHandler) UploadAttachment(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return comm.FailBadRequest(c, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return comm.FailBadRequest(c, "cannot open uploaded file")
	}
	defer file.Close()

	res, err := h.Uploads.UploadAttachment(c.Context(), uploaddomain.UploadAttachmentReq{
		MemberID:    caller,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Size:        fileHeader.Size,
		File:        file,
	})
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, res)
}

// AttachmentURL presigned download link for an owned object
// @Summary Get attachment download URL
// @Tags Uploads
// @Produce json
// @Param objectId path string true "object name"
// @Success 200 {object} comm.Envelope
// @Failure 403 {object} comm.Envelope
// @Failure 404 {object} comm.Envelope
// @Router /uploads/{objectId}/url [get]
func (h *UploadHandler) AttachmentURL(c *fiber.Ctx) error {
	caller, ok := callerID(c)
	if !ok {
		return comm.FailBadRequest(c, "missing caller identity")
	}

	// object names contain slashes, clients send them URL-encoded
	objectName, err := url.QueryUnescape(c.Params("objectId"))
	if err != nil || objectName == "" {
		return comm.FailBadRequest(c, "invalid object id")
	}

	presigned, err := h.Uploads.AttachmentURL(c.Context(), caller, objectName)
	if err != nil {
		return comm.Fail(c, err)
	}
	return comm.Respond(c, fiber.Map{"url": presigned})
}
