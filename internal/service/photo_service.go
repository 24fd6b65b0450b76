package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/rjwedding/rsvp-backend/internal/platform/objstore"
	"github.com/rjwedding/rsvp-backend/pkg/events"
	"github.com/rjwedding/rsvp-backend/pkg/logger"
)

// PhotoService streams guest photo uploads into the object store. Files are
// uploaded one at a time; a failure surfaces immediately and already-uploaded
// files stay put (no rollback).
type PhotoService interface {
	Upload(ctx context.Context, code string, files []*multipart.FileHeader) error
}

type photoService struct {
	store    objstore.Store
	eventBus events.Publisher
}

func NewPhotoService(store objstore.Store, eventBus events.Publisher) PhotoService {
	return &photoService{store: store, eventBus: eventBus}
}

func (s *photoService) Upload(ctx context.Context, code string, files []*multipart.FileHeader) error {
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", fh.Filename, err)
		}

		contentType := fh.Header.Get("Content-Type")
		err = s.store.Put(ctx, fh.Filename, f, fh.Size, contentType)
		f.Close()
		if err != nil {
			logger.ErrorContext(ctx, "Photo upload failed",
				"error", err,
				"guest_code", code,
				"filename", fh.Filename,
			)
			return err
		}

		logger.InfoContext(ctx, "Photo uploaded",
			"guest_code", code,
			"filename", fh.Filename,
			"bucket", s.store.Bucket(),
		)

		evt := events.PhotoUploadedEvent{
			Code:       code,
			Filename:   fh.Filename,
			Bucket:     s.store.Bucket(),
			UploadedAt: time.Now(),
		}
		if err := s.eventBus.Publish(ctx, events.PhotoUploaded, evt); err != nil {
			logger.ErrorContext(ctx, "Failed to publish photo uploaded event", "error", err, "filename", fh.Filename)
		}
	}
	return nil
}
