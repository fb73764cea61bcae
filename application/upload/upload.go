package upload

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/muhammadheryan/lead-crm/cmd/config"
	"github.com/muhammadheryan/lead-crm/constant"
	"github.com/muhammadheryan/lead-crm/model"
	"github.com/muhammadheryan/lead-crm/utils/errors"
	"github.com/muhammadheryan/lead-crm/utils/logger"
	"go.uber.org/zap"
)

const imagesDir = "uploads"

// Allowed content types, detected from the file bytes rather than the name.
var (
	imageTypes    = []string{"image/jpeg", "image/png", "image/gif"}
	documentTypes = []string{"image/jpeg", "image/png", "application/pdf"}
)

type UploadApp interface {
	UploadImages(ctx context.Context, files []model.FileUpload) (*model.UploadImagesResponse, error)
	// CheckDocument validates a lead document without storing it.
	CheckDocument(field string, file *model.FileUpload) error
	// StoreDocument saves a lead document under dir and returns its relative path.
	StoreDocument(ctx context.Context, dir, field string, file *model.FileUpload) (string, error)
	// RemoveDocuments deletes stored files that ended up unreferenced.
	RemoveDocuments(ctx context.Context, relPaths []string)
}

type UploadAppImpl struct {
	storage  Storage
	maxBytes int64
}

func NewUploadApp(config *config.Config, storage Storage) UploadApp {
	return &UploadAppImpl{
		storage:  storage,
		maxBytes: config.Upload.MaxFileSizeKB * 1024,
	}
}

func (s *UploadAppImpl) UploadImages(ctx context.Context, files []model.FileUpload) (*model.UploadImagesResponse, error) {
	if len(files) == 0 {
		return nil, errors.SetFieldError(constant.ErrInvalidRequest, "images", "The images field is required.")
	}

	// validate the whole batch before writing anything
	mimes := make([]*mimetype.MIME, len(files))
	for i := range files {
		field := fmt.Sprintf("images.%d", i)
		mtype, err := s.check(field, &files[i], imageTypes)
		if err != nil {
			return nil, err
		}
		mimes[i] = mtype
	}

	uploaded := make([]model.UploadedFile, 0, len(files))
	for i, f := range files {
		relPath := path.Join(imagesDir, uuid.NewString()+mimes[i].Extension())
		if err := s.storage.Save(ctx, relPath, f.Content); err != nil {
			logger.Error("[UploadImages] err storage.Save", zap.String("path", relPath), zap.String("error", err.Error()))
			stored := make([]string, 0, len(uploaded))
			for _, u := range uploaded {
				stored = append(stored, u.Path)
			}
			s.RemoveDocuments(ctx, stored)
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		uploaded = append(uploaded, model.UploadedFile{
			OriginalName: f.Filename,
			MimeType:     mimes[i].String(),
			Size:         f.Size,
			Path:         relPath,
			URL:          s.storage.URL(relPath),
		})
	}

	return &model.UploadImagesResponse{Files: uploaded}, nil
}

func (s *UploadAppImpl) StoreDocument(ctx context.Context, dir, field string, file *model.FileUpload) (string, error) {
	mtype, err := s.check(field, file, documentTypes)
	if err != nil {
		return "", err
	}

	relPath := path.Join(dir, uuid.NewString()+mtype.Extension())
	if err := s.storage.Save(ctx, relPath, file.Content); err != nil {
		logger.Error("[StoreDocument] err storage.Save", zap.String("path", relPath), zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	return relPath, nil
}

func (s *UploadAppImpl) CheckDocument(field string, file *model.FileUpload) error {
	_, err := s.check(field, file, documentTypes)
	return err
}

func (s *UploadAppImpl) RemoveDocuments(ctx context.Context, relPaths []string) {
	for _, p := range relPaths {
		if err := s.storage.Remove(ctx, p); err != nil {
			logger.Warn("[RemoveDocuments] err storage.Remove", zap.String("path", p), zap.String("error", err.Error()))
		}
	}
}

func (s *UploadAppImpl) check(field string, file *model.FileUpload, allowed []string) (*mimetype.MIME, error) {
	if file.Size > s.maxBytes || int64(len(file.Content)) > s.maxBytes {
		return nil, errors.SetFieldError(constant.ErrInvalidFile, field,
			fmt.Sprintf("The %s may not be greater than %d kilobytes.", field, s.maxBytes/1024))
	}

	mtype := mimetype.Detect(file.Content)
	for _, a := range allowed {
		if mtype.Is(a) {
			return mtype, nil
		}
	}
	return nil, errors.SetFieldError(constant.ErrInvalidFile, field,
		fmt.Sprintf("The %s must be a file of type: %s.", field, extensions(allowed)))
}

func extensions(types []string) string {
	exts := make([]string, 0, len(types))
	for _, t := range types {
		exts = append(exts, strings.TrimPrefix(mimetype.Lookup(t).Extension(), "."))
	}
	return strings.Join(exts, ", ")
}
