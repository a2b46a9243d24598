package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/example/artshop/pkg/config"
	"github.com/example/artshop/pkg/models"
	"go.uber.org/zap"
)

type Sender interface {
	SendOrderConfirmation(ctx context.Context, order models.Order) error
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPSender struct {
	from     string
	username string
	password string
	host     string
	port     int
	sendMail sendMailFunc
	logger   *zap.Logger
}

func NewSMTPSender(cfg config.SMTPConfig, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{
		from:     cfg.From,
		username: cfg.Username,
		password: cfg.Password,
		host:     cfg.Host,
		port:     cfg.Port,
		sendMail: smtp.SendMail,
		logger:   logger,
	}
}

// NewSender returns an SMTP sender when smtp is configured and a sender that
// only logs otherwise.
func NewSender(cfg config.SMTPConfig, logger *zap.Logger) Sender {
	if cfg.Configured() {
		return NewSMTPSender(cfg, logger)
	}
	logger.Warn("SMTP is not configured, order confirmations will only be logged")
	return &LogSender{logger: logger}
}

func (s *SMTPSender) SendOrderConfirmation(ctx context.Context, order models.Order) error {
	if order.CustomerEmail == "" {
		return fmt.Errorf("order %s has no customer email", order.ID)
	}

	msg := confirmationMessage(s.from, order)
	addr := s.host + ":" + strconv.Itoa(s.port)
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	s.logger.Info("Sending order confirmation",
		zap.String("order_id", order.ID),
		zap.String("to", order.CustomerEmail))

	// net/smtp has no context support, so the send is raced against ctx.
	done := make(chan error, 1)
	go func() {
		done <- s.sendMail(addr, auth, s.from, []string{order.CustomerEmail}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send mail: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to send mail: %w", ctx.Err())
	}
}

type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendOrderConfirmation(_ context.Context, order models.Order) error {
	s.logger.Info("Order confirmation",
		zap.String("order_id", order.ID),
		zap.String("to", order.CustomerEmail),
		zap.String("total_amount", order.TotalAmount.StringFixed(2)))
	return nil
}

func confirmationMessage(from string, order models.Order) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", order.CustomerEmail)
	fmt.Fprintf(&b, "Subject: Order confirmation %s\r\n", order.ID)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")

	name := order.CustomerName
	if name == "" {
		name = "customer"
	}
	fmt.Fprintf(&b, "Hello %s,\r\n\r\n", name)
	fmt.Fprintf(&b, "Thank you for your order. Order id: %s\r\n\r\n", order.ID)
	for _, item := range order.Items {
		title := item.ArtworkTitle
		if title == "" {
			title = item.ArtworkID
		}
		qty := 0
		if item.Quantity != nil {
			qty = *item.Quantity
		}
		fmt.Fprintf(&b, "  %s x%d  %s\r\n", title, qty, item.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "\r\nTotal: %s\r\n", order.TotalAmount.StringFixed(2))
	if order.ShippingAddress != "" {
		fmt.Fprintf(&b, "Shipping to: %s\r\n", order.ShippingAddress)
	}
	return []byte(b.String())
}
