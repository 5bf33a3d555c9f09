package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/victormanuel-98/VMRC-PI-BACK/models"

	"gorm.io/gorm"
)

// ContactNotifier forwards a newly received message to the site admin.
// utils.Mailer implements it over SES; a nil notifier disables the
// forwarding entirely.
type ContactNotifier interface {
	NotifyContact(name, email, subject, message string) error
}

type ContactService struct {
	db       *gorm.DB
	notifier ContactNotifier
}

func NewContactService(db *gorm.DB, notifier ContactNotifier) *ContactService {
	return &ContactService{db: db, notifier: notifier}
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (s *ContactService) Submit(in ContactInput) (*models.Contact, error) {
	if in.Name == "" || in.Email == "" || in.Subject == "" || in.Message == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(in.Message) < 10 {
		return nil, fmt.Errorf("%w: message must be at least 10 characters", ErrValidation)
	}

	contact := models.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.db.Create(&contact).Error; err != nil {
		return nil, err
	}

	// the message is already stored, a failed notification only gets logged
	if s.notifier != nil {
		if err := s.notifier.NotifyContact(in.Name, in.Email, in.Subject, in.Message); err != nil {
			log.Printf("contact notification failed: %v", err)
		}
	}

	return &contact, nil
}

type ListContactsFilter struct {
	Read  *bool
	Page  int
	Limit int
}

func (s *ContactService) List(f ListContactsFilter) ([]models.Contact, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}

	q := s.db.Model(&models.Contact{})
	if f.Read != nil {
		q = q.Where("read = ?", *f.Read)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []models.Contact
	err := q.
		Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&contacts).Error
	return contacts, total, err
}

func (s *ContactService) MarkRead(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: message %d", ErrNotFound, id)
		}
		return nil, err
	}

	contact.Read = true
	if err := s.db.Save(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (s *ContactService) Delete(id uint) error {
	var contact models.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: message %d", ErrNotFound, id)
		}
		return err
	}
	return s.db.Delete(&contact).Error
}
