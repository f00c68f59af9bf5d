package api

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"regexp"
	"strings"

	"github.com/vincegoalt/rydercup2027-api/internal/config"
	"github.com/vincegoalt/rydercup2027-api/internal/mailer"
	"github.com/vincegoalt/rydercup2027-api/internal/model"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// formMessages holds the user-facing strings per locale
var formMessages = map[model.Locale]map[string]string{
	model.LocaleEN: {
		"invalid_payload":    "Invalid request body.",
		"missing_fields":     "Please fill in all required fields.",
		"invalid_email":      "Please provide a valid email address.",
		"send_failed":        "Something went wrong sending your message. Please try again later.",
		"contact_success":    "Thank you for your message. We will get back to you shortly.",
		"newsletter_success": "You are subscribed. See you in Adare!",
	},
	model.LocaleES: {
		"invalid_payload":    "Cuerpo de la solicitud no válido.",
		"missing_fields":     "Por favor, complete todos los campos obligatorios.",
		"invalid_email":      "Por favor, introduzca una dirección de correo válida.",
		"send_failed":        "Se produjo un error al enviar su mensaje. Inténtelo de nuevo más tarde.",
		"contact_success":    "Gracias por su mensaje. Nos pondremos en contacto en breve.",
		"newsletter_success": "Suscripción completada. ¡Nos vemos en Adare!",
	},
}

func formMessage(lang model.Locale, key string) string {
	if !model.IsValidLocale(lang) {
		lang = model.LocaleEN
	}
	return formMessages[lang][key]
}

// FormHandler handles the contact form and newsletter signup. Each
// submission triggers at most one provider call; there is no retry or
// dedupe, failures are reported to the caller.
type FormHandler struct {
	sender mailer.Sender // nil when outbound email is not configured
	cfg    config.MailConfig
	logger *zap.Logger
}

// NewFormHandler creates the form handler; sender may be nil for
// environments without provider credentials
func NewFormHandler(sender mailer.Sender, cfg config.MailConfig, logger *zap.Logger) *FormHandler {
	return &FormHandler{sender: sender, cfg: cfg, logger: logger}
}

func writeFormJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeFormError(w http.ResponseWriter, status int, msg string) {
	writeFormJSON(w, status, map[string]string{"error": msg})
}

// Contact handles POST /api/v1/contact
func (h *FormHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFormError(w, http.StatusBadRequest, formMessage(req.Locale, "invalid_payload"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeFormError(w, http.StatusBadRequest, formMessage(req.Locale, "missing_fields"))
		return
	}
	if !emailPattern.MatchString(req.Email) {
		writeFormError(w, http.StatusBadRequest, formMessage(req.Locale, "invalid_email"))
		return
	}
	if req.Subject == "" {
		req.Subject = "Website enquiry"
	}

	msg := mailer.Message{
		From:    h.cfg.FromEmail,
		To:      []string{h.cfg.ContactTo},
		Subject: fmt.Sprintf("[Contact] %s", req.Subject),
		HTML:    contactEmailBody(req),
	}
	if err := h.send(r.Context(), msg); err != nil {
		h.logger.Error("contact email send failed", zap.Error(err), zap.String("locale", string(req.Locale)))
		writeFormError(w, http.StatusBadGateway, formMessage(req.Locale, "send_failed"))
		return
	}

	writeFormJSON(w, http.StatusOK, model.FormResponse{
		Success: true,
		Message: formMessage(req.Locale, "contact_success"),
	})
}

// Newsletter handles POST /api/v1/newsletter
func (h *FormHandler) Newsletter(w http.ResponseWriter, r *http.Request) {
	var req model.NewsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFormError(w, http.StatusBadRequest, formMessage(req.Locale, "invalid_payload"))
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !emailPattern.MatchString(req.Email) {
		writeFormError(w, http.StatusBadRequest, formMessage(req.Locale, "invalid_email"))
		return
	}

	msg := mailer.Message{
		From:    h.cfg.FromEmail,
		To:      []string{h.cfg.ContactTo},
		Subject: "[Newsletter] New signup",
		HTML:    newsletterEmailBody(req),
	}
	if err := h.send(r.Context(), msg); err != nil {
		h.logger.Error("newsletter email send failed", zap.Error(err))
		writeFormError(w, http.StatusBadGateway, formMessage(req.Locale, "send_failed"))
		return
	}

	writeFormJSON(w, http.StatusOK, model.FormResponse{
		Success: true,
		Message: formMessage(req.Locale, "newsletter_success"),
	})
}

func (h *FormHandler) send(ctx context.Context, msg mailer.Message) error {
	if h.sender == nil {
		h.logger.Info("email sending disabled, dropping message", zap.String("subject", msg.Subject))
		return nil
	}
	return h.sender.Send(ctx, msg)
}

func contactEmailBody(req model.ContactRequest) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; line-height: 1.6;">
  <h2>New contact form submission</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Locale:</strong> %s</p>
  <hr>
  <p>%s</p>
</div>`,
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(string(req.Locale)),
		html.EscapeString(req.Message))
}

func newsletterEmailBody(req model.NewsletterRequest) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; line-height: 1.6;">
  <h2>New newsletter signup</h2>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Locale:</strong> %s</p>
</div>`,
		html.EscapeString(req.Email),
		html.EscapeString(string(req.Locale)))
}
