package infrastructure

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"math/big"
	"os"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends account verification codes.
type EmailService struct {
	apiKey     string
	sender     string
	codeLength int
	CodeExpiry time.Duration
}

func NewEmailService() *EmailService {
	apiKey := os.Getenv("EMAIL_API_KEY")
	sender := os.Getenv("EMAIL_SENDER")

	maskedApiKey := ""
	if len(apiKey) > 8 {
		maskedApiKey = apiKey[:4] + "****" + apiKey[len(apiKey)-4:]
	}
	log.Printf("Email Service Config - API Key: %s, Sender: %s", maskedApiKey, sender)

	return &EmailService{
		apiKey:     apiKey,
		sender:     sender,
		codeLength: GetEnvAsInt("VERIFICATION_CODE_LENGTH", 6),
		CodeExpiry: GetEnvAsDuration("VERIFICATION_CODE_EXPIRY", 5*time.Minute),
	}
}

func (e *EmailService) SendVerificationCode(ctx context.Context, recipientEmail, code string) error {
	from := mail.NewEmail("CodeForge", e.sender)
	subject := "Your verification code"
	to := mail.NewEmail("", recipientEmail)

	plainTextContent := fmt.Sprintf("Your verification code is: %s", code)
	htmlContent := fmt.Sprintf("<strong>Your verification code is: %s</strong>", code)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	client := sendgrid.NewSendClient(e.apiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Println("Failed to send verification email:", err)
		return err
	}

	log.Printf("Email sent. Status Code: %d", response.StatusCode)
	return nil
}

func (e *EmailService) GenerateCode(ctx context.Context) string {
	code := make([]byte, e.codeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return fmt.Sprintf("%0*d", e.codeLength, time.Now().UnixNano()%1000000)
		}
		code[i] = byte(n.Int64()) + '0'
	}
	return string(code)
}

func (e *EmailService) VerifyCode(ctx context.Context, providedCode, cachedCode string) (bool, error) {
	if subtle.ConstantTimeCompare([]byte(cachedCode), []byte(providedCode)) == 1 {
		return true, nil
	}
	return false, errors.New("wrong verification code")
}
