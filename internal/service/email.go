package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"gameshelf-backend/internal/domain"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendRentalConfirmation(ctx context.Context, to string, rental domain.Rental) error {
	subject := fmt.Sprintf("Rental confirmed - %s", rental.Game.Title)
	body := fmt.Sprintf(
		"Your rental is booked!\n\nGame: %s\nPickup: %s\nReturn: %s\nDays: %d\nTotal paid: $%.2f (includes $%.2f refundable deposit)\nConfirmation code: %s\n\nHappy gaming,\nThe GameShelf Team",
		rental.Game.Title,
		rental.PickupDate.Format("Mon, Jan 2 2006 3:04 PM"),
		rental.ReturnDate.Format("Mon, Jan 2 2006"),
		rental.Days,
		rental.TotalPaid,
		rental.Deposit,
		rental.ConfirmationCode,
	)
	return s.send(to, subject, body)
}

func (s *emailService) SendReminder(ctx context.Context, to, title, body string) error {
	return s.send(to, title, body+"\n\nThe GameShelf Team")
}
