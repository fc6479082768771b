package domain

import "io"

// MaxAttachmentSize uploads larger than this are rejected
const MaxAttachmentSize = 5 << 20

// allowed attachment content types
var AllowedContentTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

// UploadAttachmentReq usecase upload attachment request
type UploadAttachmentReq struct {
	MemberID    string
	FileName    string
	ContentType string
	Size        int64
	File        io.Reader
}

// UploadAttachmentRes usecase upload attachment response
type UploadAttachmentRes struct {
	ObjectName string `json:"object_name"`
	FileName   string `json:"file_name"`
	Size       int64  `json:"size"`
}
