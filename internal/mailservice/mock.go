package mailservice

import (
	"bytes"
	"sync"

	"github.com/go-mail/mail/v2"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/mock"

	"github.com/sushihentaime/portfolio/internal/common"
)

type MockTemplate struct {
	mock.Mock
}

func (m *MockTemplate) ParseTemplate(name string, data any) (*bytes.Buffer, *bytes.Buffer, *bytes.Buffer, error) {
	args := m.Called(name, data)
	return args.Get(0).(*bytes.Buffer), args.Get(1).(*bytes.Buffer), args.Get(2).(*bytes.Buffer), args.Error(3)
}

type MockDialer struct {
	mock.Mock
}

func (d *MockDialer) DialAndSend(m ...*mail.Message) error {
	args := d.Called(m)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) send(recipient, replyTo string, data any, templateFile string) error {
	args := m.Called(recipient, replyTo, data, templateFile)
	return args.Error(0)
}

type MockLogger struct {
	mock.Mock
}

func (l *MockLogger) Info(msg string, args ...any) {
	l.Called(msg)
}

func (l *MockLogger) Error(msg string, args ...any) {
	l.Called(msg)
}

// MockAcknowledger records how deliveries were settled.
type MockAcknowledger struct {
	mu       sync.Mutex
	Acked    int
	Nacked   int
	Requeued int
}

func (a *MockAcknowledger) Ack(tag uint64, multiple bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.Acked++
	return nil
}

func (a *MockAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.Nacked++
	if requeue {
		a.Requeued++
	}
	return nil
}

func (a *MockAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func (a *MockAcknowledger) Counts() (acked, nacked, requeued int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.Acked, a.Nacked, a.Requeued
}

// MockMessageConsumer hands out the queued bodies as deliveries and then closes the channel.
type MockMessageConsumer struct {
	mock.Mock
	Bodies [][]byte
	Acker  *MockAcknowledger
}

func (m *MockMessageConsumer) Consume(key common.BindingKey, exchange common.Exchange, queue common.Queue) (<-chan amqp.Delivery, error) {
	args := m.Called(key, exchange, queue)
	if err := args.Error(0); err != nil {
		return nil, err
	}

	if m.Acker == nil {
		m.Acker = new(MockAcknowledger)
	}

	msgs := make(chan amqp.Delivery)
	go func() {
		defer close(msgs)
		for i, body := range m.Bodies {
			msgs <- amqp.Delivery{Acknowledger: m.Acker, DeliveryTag: uint64(i + 1), Body: body}
		}
	}()

	return msgs, nil
}
