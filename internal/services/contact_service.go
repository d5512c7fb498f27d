package services

import (
	"context"
	"errors"
	"fmt"
	"folio/internal/models"
	"folio/internal/providers"
	"folio/internal/store"
	"folio/internal/structures"
	"net/url"
	"strings"
	"time"

	"github.com/gookit/validate"
)

var ErrNoRecipient = errors.New("no contact email is published")

type ContactForm struct {
	Name    string `json:"name" validate:"required|maxLen:200"`
	Email   string `json:"email" validate:"required|email"`
	Message string `json:"message" validate:"required|maxLen:5000"`
}

type ContactResult struct {
	MailtoURL string `json:"mailto"`
	Stored    bool   `json:"stored"`
}

type ContactServiceInterface interface {
	Submit(ctx context.Context, form ContactForm) (*ContactResult, error)
}

// ContactService turns a contact form into a mailto link for the owner and
// optionally keeps a copy in the messages inbox.
type ContactService struct {
	client        store.ClientInterface
	content       ContentServiceInterface
	logger        providers.Logger
	storeMessages bool
	now           func() time.Time
}

func NewContactService(conf *structures.Config, client store.ClientInterface, content ContentServiceInterface, logger providers.Logger) ContactServiceInterface {
	return &ContactService{
		client:        client,
		content:       content,
		logger:        logger,
		storeMessages: conf.Contact.StoreMessages,
		now:           time.Now,
	}
}

func (cs *ContactService) Submit(ctx context.Context, form ContactForm) (*ContactResult, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)

	v := validate.Struct(&form)
	if !v.Validate() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, v.Errors.One())
	}

	owner := cs.content.Snapshot().PersonalInfo.Email
	if owner == "" {
		return nil, ErrNoRecipient
	}

	result := &ContactResult{MailtoURL: ComposeMailto(owner, form)}

	if cs.storeMessages {
		now := cs.now().UTC()
		msg := models.Message{
			Name:      form.Name,
			Email:     form.Email,
			Message:   form.Message,
			Read:      false,
			CreatedAt: now.Format(time.RFC3339),
		}
		msg.Order = now.UnixMilli()
		if _, err := cs.client.AddDocument(ctx, models.CollectionMessages, msg); err != nil {
			cs.logger.Warnf(providers.TypeApp, "Contact message not stored: %s", err)
		} else {
			result.Stored = true
		}
	}

	return result, nil
}

// ComposeMailto builds the mailto URL handed to the visitor's mail client.
func ComposeMailto(to string, form ContactForm) string {
	subject := "Portfolio Contact from " + form.Name
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", form.Name, form.Email, form.Message)
	return "mailto:" + to + "?subject=" + mailtoEscape(subject) + "&body=" + mailtoEscape(body)
}

// mailtoEscape percent-encodes like encodeURIComponent; mail clients do not
// decode '+' as a space.
func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
