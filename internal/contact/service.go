package contact

import (
	"context"
	"fmt"

	"github.com/nkulisa-npc/membership-site/internal/mailer"
	"github.com/nkulisa-npc/membership-site/internal/shared/logger"
)

const messageSubject = "New Contact Message - Nkulisa Burials NPC"

type ContactService struct {
	mailer   mailer.Mailer
	operator string
}

func NewContactService(m mailer.Mailer, operator string) *ContactService {
	return &ContactService{
		mailer:   m,
		operator: operator,
	}
}

// Send relays the submitted message to the operator mailbox. Exactly one
// attempt is made; a failure is returned with the relay's reason so the
// caller can surface it to the submitter.
func (s *ContactService) Send(ctx context.Context, request *ContactRequest) error {
	log := logger.FromContext(ctx)

	body := fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s\n",
		request.Name, request.Email, request.Message)

	msg := &mailer.Message{
		To:      []string{s.operator},
		Subject: messageSubject,
		Body:    body,
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Error("Failed to send contact message",
			"error", err,
			"from", logger.MaskEmail(request.Email),
		)
		return err
	}

	log.Info("Contact message sent", "from", logger.MaskEmail(request.Email))
	return nil
}
