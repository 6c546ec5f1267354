package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/maryanafarm/storefront/internal/errors"
	"github.com/maryanafarm/storefront/internal/models"
	"github.com/maryanafarm/storefront/pkg/sendgrid"
	"github.com/microcosm-cc/bluemonday"
)

// Announcer is the user-facing confirmation surface for cart mutations.
// Announcements are fire-and-forget; a failed announcement must never affect
// the mutation it confirms.
type Announcer interface {
	Announce(ctx context.Context, message string)
}

type logAnnouncer struct{}

// NewLogAnnouncer announces through the structured log, the server-side stand-in
// for a client toast.
func NewLogAnnouncer() Announcer {
	return &logAnnouncer{}
}

func (logAnnouncer) Announce(ctx context.Context, message string) {
	slog.InfoContext(ctx, "Cart announcement", slog.String("message", message))
}

// OrderService hands a composed order off to the farm through the out-of-band
// channel (email to the order inbox). Nothing is persisted; checkout is
// message composition only.
type OrderService interface {
	SendOrder(ctx context.Context, contact *models.CheckoutRequest, summary string) error
}

type orderService struct {
	mailer    sendgrid.Mailer
	sanitizer *bluemonday.Policy
}

func NewOrderService(mailer sendgrid.Mailer) OrderService {
	return &orderService{
		mailer:    mailer,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// SendOrder implements OrderService. Contact fields come straight from the
// customer and are stripped of any markup before they reach the email body.
func (s *orderService) SendOrder(ctx context.Context, contact *models.CheckoutRequest, summary string) error {

	if summary == "" {
		return errors.InvalidArgumentError("Cart is empty")
	}

	name := strings.TrimSpace(s.sanitizer.Sanitize(contact.CustomerName))
	phone := strings.TrimSpace(s.sanitizer.Sanitize(contact.CustomerPhone))

	var b strings.Builder

	b.WriteString(summary)
	b.WriteString("\n\nІм'я: ")
	b.WriteString(name)
	b.WriteString("\nТелефон: ")
	b.WriteString(phone)

	if contact.Note != "" {
		b.WriteString("\nКоментар: ")
		b.WriteString(strings.TrimSpace(s.sanitizer.Sanitize(contact.Note)))
	}

	if err := s.mailer.Send(ctx, "Нове замовлення від "+name, b.String()); err != nil {
		return errors.ThirdPartyError("Failed to send the order").WithError(err)
	}

	return nil
}
