package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/folio-labs/portfolio/internal/repository"
	"github.com/folio-labs/portfolio/pkg/logger"
)

// ContactService handles one contact form submission end to end.
type ContactService interface {
	Submit(ctx context.Context, input ContactInput) (ContactResult, error)
}

// ContactNotifier tells the operator about a submission.
type ContactNotifier interface {
	SendContactEmail(ctx context.Context, name, email, message string) error
}

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactResult records which side effects took place. Callers only see the
// joined error; the flags feed the operator log.
type ContactResult struct {
	MessageID uuid.UUID
	Stored    bool
	Notified  bool
}

type contactService struct {
	contacts repository.ContactRepository
	notifier ContactNotifier
}

func NewContactService(contacts repository.ContactRepository, notifier ContactNotifier) ContactService {
	return &contactService{contacts: contacts, notifier: notifier}
}

var _ ContactService = (*contactService)(nil)

// Submit stores the message and emails the operator. Both steps are always
// attempted and neither undoes the other; any failure fails the submission.
func (s *contactService) Submit(ctx context.Context, input ContactInput) (ContactResult, error) {
	var res ContactResult

	id, storeErr := s.contacts.Insert(ctx, input.Name, input.Email, input.Message)
	if storeErr == nil {
		res.MessageID = id
		res.Stored = true
	}

	mailErr := s.notifier.SendContactEmail(ctx, input.Name, input.Email, input.Message)
	res.Notified = mailErr == nil

	err := errors.Join(storeErr, mailErr)
	fields := []zap.Field{
		zap.Bool("stored", res.Stored),
		zap.Bool("notified", res.Notified),
	}
	if res.Stored {
		fields = append(fields, zap.String("message_id", id.String()))
	}
	switch {
	case err == nil:
		logger.L().Info("contact message received", fields...)
	case res.Stored || res.Notified:
		logger.L().Warn("contact message partially processed", append(fields, zap.Error(err))...)
	default:
		logger.L().Error("contact message failed", append(fields, zap.Error(err))...)
	}
	return res, err
}
