package mailer

import (
	"context"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/exceptions"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type mailerService struct {
	Channel *amqp091.Channel
	Queue   string
	Sender  string
}

func NewMailerService(rabbitMQConnection *amqp091.Connection, queue, sender string) (contracts.MailerService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	return &mailerService{
		Channel: channel,
		Queue:   queue,
		Sender:  sender,
	}, nil
}

type bookingConfirmationPayload struct {
	From            string `json:"from"`
	To              string `json:"to"`
	Subject         string `json:"subject"`
	Treatment       string `json:"treatment"`
	AppointmentDate string `json:"appointmentDate"`
	Slot            string `json:"slot"`
}

// SendBookingConfirmation publishes the confirmation payload to the mailer
// queue. Delivery is the consumer's concern; booking creation never fails on
// a publish error.
func (s *mailerService) SendBookingConfirmation(ctx context.Context, booking *requests.CreateBooking) error {
	payload := bookingConfirmationPayload{
		From:            s.Sender,
		To:              booking.Email,
		Subject:         fmt.Sprintf("Your %s appointment is confirmed", booking.Treatment),
		Treatment:       booking.Treatment,
		AppointmentDate: booking.AppointmentDate,
		Slot:            booking.Slot,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrMailerPublish(err)
	}

	return nil
}
