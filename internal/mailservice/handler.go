package mailservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/exp/rand"

	"github.com/sushihentaime/portfolio/internal/common"
)

const contactTemplate = "contact_message.tmpl"

// NewMailService creates a consumer that forwards contact messages to recipient.
func NewMailService(mb common.MessageConsumer, host, username, password, sender, recipient string, port int, logger *slog.Logger) *MailService {
	ctx, cancel := context.WithCancel(context.Background())
	return &MailService{
		mb:        mb,
		m:         NewMailer(host, port, username, password, sender, NewTemplate()),
		logger:    logger,
		recipient: recipient,
		baseDelay: defaultBaseDelay,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// SendContactMessages starts consuming contact submissions in the background until Close is called.
func (s *MailService) SendContactMessages() error {
	msgs, err := s.mb.Consume(common.ContactSubmittedKey, common.ContactExchange, common.ContactSubmittedQueue)
	if err != nil {
		return err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				s.handle(msg)

			case <-s.ctx.Done():
				s.logger.Info("stopping SendContactMessages due to context cancellation")
				return
			}
		}
	}()

	return nil
}

// handle acknowledges a message once it was sent or its retries ran out. A message whose retries
// were cut short by Close goes back to the queue.
func (s *MailService) handle(msg amqp.Delivery) {
	var data contactMessage
	if err := json.Unmarshal(msg.Body, &data); err != nil {
		s.logger.Error("could not unmarshal message", slog.String("error", err.Error()))
		s.ack(msg)
		return
	}

	if s.deliver(data) || s.ctx.Err() == nil {
		s.ack(msg)
		return
	}

	if err := msg.Nack(false, true); err != nil {
		s.logger.Error("could not requeue contact message", slog.String("error", err.Error()))
	}
}

func (s *MailService) ack(msg amqp.Delivery) {
	if err := msg.Ack(false); err != nil {
		s.logger.Error("could not acknowledge contact message", slog.String("error", err.Error()))
	}
}

// deliver sends data to the recipient, retrying with exponential backoff and jitter. It reports
// whether the mail went out.
func (s *MailService) deliver(data contactMessage) bool {
	for attempt := 0; attempt < maxRetries; attempt++ {
		err := s.m.send(s.recipient, data.Email, data, contactTemplate)
		if err == nil {
			s.logger.Info("contact message sent", slog.String("from", data.Email))
			return true
		}

		delay := time.Duration(rand.Int63n(int64(s.baseDelay) << uint(attempt)))
		s.logger.Info("delaying contact message", slog.String("from", data.Email), slog.Int("attempt", attempt), slog.Duration("delay", delay))

		select {
		case <-time.After(delay):
		case <-s.ctx.Done():
			return false
		}
	}

	s.logger.Error("could not send contact message", slog.String("from", data.Email))
	return false
}

// Close stops the consumer and waits for an in-flight message to finish.
func (s *MailService) Close() {
	s.cancel()
	s.wg.Wait()
}
