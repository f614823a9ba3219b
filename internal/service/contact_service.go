package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	apperrors "terracore/internal/errors"
	"terracore/internal/mail"
	"terracore/internal/model"
	"terracore/internal/repository"
)

// ContactService handles contact-form submissions and the admin inbox.
type ContactService interface {
	Create(ctx context.Context, contact *model.Contact) (uint, error)
	Get(ctx context.Context, id uint) (*model.Contact, error)
	List(ctx context.Context) ([]model.Contact, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type contactService struct {
	repo       repository.ContactRepository
	mailer     mail.Sender
	adminEmail string
}

// NewContactService creates a new contact service. The mailer notifies
// adminEmail of new submissions.
func NewContactService(repo repository.ContactRepository, mailer mail.Sender, adminEmail string) ContactService {
	return &contactService{
		repo:       repo,
		mailer:     mailer,
		adminEmail: adminEmail,
	}
}

// Create durably stores the submission, then attempts the notification
// email. The email is best effort: its failure is logged and never surfaces
// to the caller, since the row is already committed.
func (s *contactService) Create(ctx context.Context, contact *model.Contact) (uint, error) {
	if contact.Status == "" {
		contact.Status = model.ContactStatusUnread
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return 0, fmt.Errorf("create contact: %w", err)
	}

	if s.mailer != nil && s.mailer.Enabled() {
		if err := s.mailer.Send(s.adminEmail, s.notificationSubject(contact), s.notificationBody(contact)); err != nil {
			log.Printf("contact notification email failed: %v", err)
		}
	}

	return contact.ID, nil
}

func (s *contactService) notificationSubject(contact *model.Contact) string {
	subject := contact.Subject
	if subject == "" {
		subject = "No Subject"
	}
	return "New Contact Form Submission: " + subject
}

func (s *contactService) notificationBody(contact *model.Contact) string {
	phone := contact.Phone
	if phone == "" {
		phone = "Not provided"
	}
	subject := contact.Subject
	if subject == "" {
		subject = "Not provided"
	}
	return fmt.Sprintf(
		"<h2>New Contact Form Submission</h2>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Phone:</strong> %s</p>"+
			"<p><strong>Subject:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		contact.Name, contact.Email, phone, subject, contact.Message,
	)
}

func (s *contactService) Get(ctx context.Context, id uint) (*model.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContactNotFound
		}
		return fmt.Errorf("update contact status: %w", err)
	}
	return nil
}

func (s *contactService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContactNotFound
		}
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
