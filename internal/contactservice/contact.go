package contactservice

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/sushihentaime/portfolio/internal/common"
)

const (
	MaxMessageLength = 5000
	publishTimeout   = 5 * time.Second
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactService struct {
	mb common.MessageProducer
}

func NewContactService(mb common.MessageProducer) *ContactService {
	return &ContactService{mb: mb}
}

func validateContact(v *common.Validator, req *ContactRequest) {
	v.Check(common.NotBlank(req.Name), "name", "must be provided")
	v.Check(v.CheckStringLength(req.Name, 0, 100), "name", "must not be more than 100 characters long")

	v.Check(req.Email != "", "email", "must be provided")
	v.Check(common.EmailRX.MatchString(req.Email), "email", "must be a valid email address")

	v.Check(common.NotBlank(req.Subject), "subject", "must be provided")
	v.Check(v.CheckStringLength(req.Subject, 0, 200), "subject", "must not be more than 200 characters long")

	v.Check(common.NotBlank(req.Message), "message", "must be provided")
	v.Check(v.CheckStringLength(req.Message, 0, MaxMessageLength), "message", "must not be more than 5000 characters long")
}

// Submit validates the message and queues it for delivery to the site owner.
func (s *ContactService) Submit(ctx context.Context, req *ContactRequest) error {
	msg := ContactRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}

	v := common.NewValidator()
	validateContact(v, &msg)
	if !v.Valid() {
		return v.ValidationError()
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := s.mb.Publish(ctx, body, common.ContactSubmittedKey, common.ContactExchange); err != nil {
		return common.NewDependencyError("message broker", err)
	}

	return nil
}
