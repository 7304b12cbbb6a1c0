// Package submissions accepts public form submissions with attachments.
//
// Submit runs as a small saga: files are uploaded one at a time and the record
// is inserted last. If any step fails, files that already reached storage are
// deleted again before the error is returned.
package submissions

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Store persists accepted submissions.
type Store interface {
	InsertSubmission(ctx context.Context, s *models.Submission) error
}

// FileStorage holds uploaded attachments.
type FileStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// Notifier announces a stored submission.
type Notifier interface {
	NotifySubmission(ctx context.Context, s models.Submission) error
}

// DraftClearer forgets the saved form of a session.
type DraftClearer interface {
	Clear(ctx context.Context, key string)
}

// Result is returned for a stored submission.
type Result struct {
	Submission models.Submission `json:"submission"`
}

type Service struct {
	store    Store
	files    FileStorage
	drafts   DraftClearer
	notifier Notifier
	limits   Limits
	logger   zerolog.Logger
	now      func() time.Time
}

type Option func(*Service)

func WithDrafts(d DraftClearer) Option {
	return func(s *Service) { s.drafts = d }
}

func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithLimits(l Limits) Option {
	return func(s *Service) { s.limits = l }
}

func NewService(store Store, files FileStorage, opts ...Option) *Service {
	s := &Service{
		store:  store,
		files:  files,
		limits: DefaultLimits,
		logger: log.With().Str("component", "submissions").Logger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Limits reports the attachment limits enforced by Submit.
func (s *Service) Limits() Limits {
	return s.limits
}

// Submit validates req, uploads its files and stores the record.
func (s *Service) Submit(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(s.limits); err != nil {
		return Result{}, err
	}

	id := uuid.NewString()
	folder := req.SessionID
	if folder == "" {
		folder = id
	}

	uploaded := make([]models.UploadedFile, 0, len(req.Files))
	for _, f := range req.Files {
		key := fmt.Sprintf("submissions/%s/%s-%s", folder, uuid.NewString(), SanitizeFileName(f.Name))
		url, err := s.files.Upload(ctx, key, f.ContentType, f.Body)
		if err != nil {
			s.rollback(ctx, uploaded)
			return Result{}, errs.NewUploadFailedError(f.Name, err)
		}
		uploaded = append(uploaded, models.UploadedFile{
			Name: f.Name,
			URL:  url,
			Type: f.ContentType,
			Size: f.Size,
			Key:  key,
		})
	}

	sub := models.Submission{
		ID:                    id,
		Type:                  req.Type,
		Title:                 req.Title,
		Content:               req.Content,
		SubmittedBy:           req.SubmittedBy,
		ContactEmail:          req.ContactEmail,
		ContactPhone:          optional(req.ContactPhone),
		Location:              optional(req.Location),
		LanguagePreference:    req.LanguagePreference,
		HowFoundUs:            optional(req.HowFoundUs),
		PublicationPermission: req.PublicationPermission,
		Files:                 uploaded,
		SessionID:             req.SessionID,
		DeviceFingerprint:     req.DeviceFingerprint,
		Status:                "pending",
		CreatedAt:             s.now().UTC(),
	}
	if err := s.store.InsertSubmission(ctx, &sub); err != nil {
		s.rollback(ctx, uploaded)
		return Result{}, fmt.Errorf("insert submission: %w", err)
	}

	s.logger.Info().
		Str("submissionId", sub.ID).
		Str("type", string(sub.Type)).
		Int("files", len(uploaded)).
		Msg("stored submission")

	if s.drafts != nil && req.SessionID != "" {
		s.drafts.Clear(ctx, req.SessionID)
	}
	if s.notifier != nil {
		if err := s.notifier.NotifySubmission(ctx, sub); err != nil {
			s.logger.Warn().Err(err).Str("submissionId", sub.ID).Msg("submission notification failed")
		}
	}
	return Result{Submission: sub}, nil
}

// rollback deletes already uploaded files. Failures are logged only.
func (s *Service) rollback(ctx context.Context, uploaded []models.UploadedFile) {
	ctx = context.WithoutCancel(ctx)
	for _, f := range uploaded {
		if err := s.files.Delete(ctx, f.Key); err != nil {
			s.logger.Error().Err(err).Str("key", f.Key).Msg("failed to delete orphaned upload")
		}
	}
}
