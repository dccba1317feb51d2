package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"suncrest-hotel-backend/internal/domain"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, res *domain.Reservation, roomTypeName string) error {
	subject := fmt.Sprintf("Booking confirmed - %s", res.Reference)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour booking is confirmed.\n\nRoom: %d × %s\nCheck-in: %s\nCheck-out: %s\nTotal paid: %.2f\nBooking reference: %s\n\nWe look forward to your stay.\nSuncrest Hotel",
		res.GuestName,
		res.Units,
		roomTypeName,
		res.CheckIn.Format("Mon, 02 Jan 2006 15:04"),
		res.CheckOut.Format("Mon, 02 Jan 2006 15:04"),
		float64(res.TotalCents)/100,
		res.Reference,
	)
	return s.send(res.GuestEmail, res.GuestName, subject, body)
}

func (s *emailService) SendDailySummary(ctx context.Context, to string, report *domain.BookingReport) error {
	subject := fmt.Sprintf("Daily booking summary - %s", report.From.Format("2006-01-02"))
	body := fmt.Sprintf(
		"Bookings confirmed: %d\nRevenue: %.2f\nPending at close: %d\nFailed payments: %d\n\nBy room type:\n",
		report.TotalBookings,
		float64(report.TotalRevenueCents)/100,
		report.PendingCount,
		report.FailedCount,
	)
	for _, s := range report.ByRoomType {
		body += fmt.Sprintf("  %-12s %3d bookings, %3d units, %.2f\n", s.RoomTypeKey, s.Bookings, s.Units, float64(s.RevenueCents)/100)
	}
	return s.send(to, "Front Desk", subject, body)
}
