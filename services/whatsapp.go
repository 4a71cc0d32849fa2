package services

import (
	"log"
	"os"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// MessageSender delivers outbound customer messages. The production
// implementation goes through Twilio; tests use a fake.
type MessageSender interface {
	SendText(to, body string) error
}

// TwilioSender sends via WhatsApp when the destination is in E.164
// format, falling back to SMS otherwise.
type TwilioSender struct {
	client         *twilio.RestClient
	whatsappNumber string
	smsNumber      string
}

func NewTwilioSender() *TwilioSender {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		whatsappNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		smsNumber:      os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

func (s *TwilioSender) SendText(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)

	// WhatsApp needs E.164 with the whatsapp: prefix on both ends.
	if strings.HasPrefix(to, "+") {
		params.SetTo("whatsapp:" + to)
		params.SetFrom("whatsapp:" + s.whatsappNumber)
	} else {
		params.SetTo(to)
		params.SetFrom(s.smsNumber)
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send message to %s: %v", to, err)
		return err
	}
	if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", to, *resp.Sid)
	} else {
		log.Printf("Message sent to %s, but no SID returned", to)
	}
	return nil
}

// LogSender is the dev fallback when Twilio credentials are missing.
type LogSender struct{}

func (LogSender) SendText(to, body string) error {
	log.Printf("[OUTBOUND -> %s] %s", to, body)
	return nil
}
