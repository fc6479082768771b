package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"workzup_backend/internal/upload/domain"
	"workzup_backend/pkg/database"
	errprocess "workzup_backend/pkg/err"

	"github.com/google/uuid"
)

// presigned download links stay valid this long
const presignExpiry = 15 * time.Minute

// UploadUseCase application services around attachment uploads
type UploadUseCase interface {
	UploadAttachment(ctx context.Context, up domain.UploadAttachmentReq) (*domain.UploadAttachmentRes, error)
	AttachmentURL(ctx context.Context, callerID, objectName string) (string, error)
}

type uploadUseCase struct {
	minioClient database.MinIOClientRepo
}

// NewUploadUseCase create a new UploadUseCase
func NewUploadUseCase(minioClient database.MinIOClientRepo) UploadUseCase {
	return &uploadUseCase{minioClient: minioClient}
}

// wrapper function variables, tests swap these to fake the filesystem
var (
	createDir = func(path string) error {
		return os.MkdirAll(path, 0755)
	}

	createFile = func(name string) (*os.File, error) {
		return os.Create(name)
	}

	copyFile = func(dst *os.File, src io.Reader) (written int64, err error) {
		return io.Copy(dst, src)
	}

	removeFile = func(name string) error {
		return os.Remove(name)
	}
)

// UploadAttachment stage the stream on disk, then push the complete file to
// object storage under attachments/{memberID}/{uuid}/{filename}
func (s *uploadUseCase) UploadAttachment(ctx context.Context, up domain.UploadAttachmentReq) (*domain.UploadAttachmentRes, error) {
	if _, ok := domain.AllowedContentTypes[up.ContentType]; !ok {
		return nil, errprocess.Validation("content type %s is not allowed", up.ContentType)
	}
	if up.Size > domain.MaxAttachmentSize {
		return nil, errprocess.Validation("file exceeds the %d byte limit", domain.MaxAttachmentSize)
	}
	if up.FileName == "" {
		return nil, errprocess.Validation("file name is empty")
	}

	// strip any path the client sent, only the base name reaches disk
	fileName := filepath.Base(up.FileName)
	if fileName == "." || fileName == ".." || fileName == string(filepath.Separator) {
		return nil, errprocess.Validation("file name is invalid")
	}

	tmpDir := "./tmp"
	if err := createDir(tmpDir); err != nil {
		errMsg := fmt.Sprintf("fileName[%s] create temp dir failed : %v", fileName, err)
		return nil, errprocess.Set(errMsg)
	}

	tempPath := filepath.Join(tmpDir, fileName)
	tempFile, err := createFile(tempPath)
	if err != nil {
		errMsg := fmt.Sprintf("fileName[%s] create temp file failed : %v", fileName, err)
		return nil, errprocess.Set(errMsg)
	}
	defer tempFile.Close()

	written, err := copyFile(tempFile, up.File)
	if err != nil {
		removeFile(tempPath)
		errMsg := fmt.Sprintf("fileName[%s] save file failed : %v", fileName, err)
		return nil, errprocess.Set(errMsg)
	}
	if written > domain.MaxAttachmentSize {
		removeFile(tempPath)
		return nil, errprocess.Validation("file exceeds the %d byte limit", domain.MaxAttachmentSize)
	}

	objectName := fmt.Sprintf("attachments/%s/%s/%s", up.MemberID, uuid.New().String(), fileName)
	if err := s.minioClient.UploadFile(ctx, objectName, tempPath, up.ContentType); err != nil {
		removeFile(tempPath)
		errMsg := fmt.Sprintf("fileName[%s] upload to MinIO failed : %v", fileName, err)
		return nil, errprocess.Set(errMsg)
	}

	if err := removeFile(tempPath); err != nil {
		errMsg := fmt.Sprintf("fileName[%s] cleanup temp file failed: %v", fileName, err)
		return nil, errprocess.Set(errMsg)
	}

	return &domain.UploadAttachmentRes{
		ObjectName: objectName,
		FileName:   fileName,
		Size:       written,
	}, nil
}

// AttachmentURL presigned GET link, owners download their own objects only
func (s *uploadUseCase) AttachmentURL(ctx context.Context, callerID, objectName string) (string, error) {
	prefix := fmt.Sprintf("attachments/%s/", callerID)
	if len(objectName) < len(prefix) || objectName[:len(prefix)] != prefix {
		return "", errprocess.Forbidden("object belongs to another member")
	}

	if _, err := s.minioClient.StatObject(ctx, objectName); err != nil {
		return "", errprocess.NotFound("object %s", objectName)
	}

	return s.minioClient.PresignGetURL(ctx, objectName, presignExpiry)
}
