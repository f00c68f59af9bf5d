package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vincegoalt/rydercup2027-api/internal/config"
	"github.com/vincegoalt/rydercup2027-api/internal/mailer"
	"go.uber.org/zap"
)

// MockSender implements mailer.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func formConfig() config.MailConfig {
	return config.MailConfig{
		FromEmail: "noreply@rydercupadare2027.com",
		ContactTo: "hello@rydercupadare2027.com",
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestFormHandler_Contact(t *testing.T) {
	valid := map[string]string{
		"name":    "Pat Murphy",
		"email":   "pat@example.com",
		"subject": "Tee times",
		"message": "Looking to book a foursome during tournament week.",
		"locale":  "en",
	}

	t.Run("valid submission sends email", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
			return msg.Subject == "[Contact] Tee times" &&
				msg.From == "noreply@rydercupadare2027.com" &&
				len(msg.To) == 1 && msg.To[0] == "hello@rydercupadare2027.com"
		})).Return(nil)

		h := NewFormHandler(sender, formConfig(), zap.NewNop())
		rr := postJSON(t, h.Contact, "/api/v1/contact", valid)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
		sender.AssertExpectations(t)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		sender := new(MockSender)
		h := NewFormHandler(sender, formConfig(), zap.NewNop())

		rr := postJSON(t, h.Contact, "/api/v1/contact", map[string]string{
			"name":  "Pat Murphy",
			"email": "pat@example.com",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("whitespace-only fields rejected", func(t *testing.T) {
		h := NewFormHandler(new(MockSender), formConfig(), zap.NewNop())

		rr := postJSON(t, h.Contact, "/api/v1/contact", map[string]string{
			"name":    "   ",
			"email":   "pat@example.com",
			"message": "hello",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		h := NewFormHandler(new(MockSender), formConfig(), zap.NewNop())

		payload := map[string]string{}
		for k, v := range valid {
			payload[k] = v
		}
		payload["email"] = "not-an-email"

		rr := postJSON(t, h.Contact, "/api/v1/contact", payload)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("spanish locale gets spanish error message", func(t *testing.T) {
		h := NewFormHandler(new(MockSender), formConfig(), zap.NewNop())

		rr := postJSON(t, h.Contact, "/api/v1/contact", map[string]string{
			"locale": "es",
		})

		require.Equal(t, http.StatusBadRequest, rr.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Por favor, complete todos los campos obligatorios.", resp["error"])
	})

	t.Run("empty subject falls back to default", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
			return msg.Subject == "[Contact] Website enquiry"
		})).Return(nil)

		h := NewFormHandler(sender, formConfig(), zap.NewNop())
		payload := map[string]string{}
		for k, v := range valid {
			payload[k] = v
		}
		payload["subject"] = ""

		rr := postJSON(t, h.Contact, "/api/v1/contact", payload)
		assert.Equal(t, http.StatusOK, rr.Code)
		sender.AssertExpectations(t)
	})

	t.Run("provider failure surfaces as bad gateway", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(mailer.ErrUnauthorized)

		h := NewFormHandler(sender, formConfig(), zap.NewNop())
		rr := postJSON(t, h.Contact, "/api/v1/contact", valid)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})

	t.Run("nil sender accepts without sending", func(t *testing.T) {
		h := NewFormHandler(nil, formConfig(), zap.NewNop())
		rr := postJSON(t, h.Contact, "/api/v1/contact", valid)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("message content is html-escaped", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
			return !bytes.Contains([]byte(msg.HTML), []byte("<script>"))
		})).Return(nil)

		h := NewFormHandler(sender, formConfig(), zap.NewNop())
		payload := map[string]string{}
		for k, v := range valid {
			payload[k] = v
		}
		payload["message"] = "<script>alert(1)</script>"

		rr := postJSON(t, h.Contact, "/api/v1/contact", payload)
		assert.Equal(t, http.StatusOK, rr.Code)
		sender.AssertExpectations(t)
	})
}

func TestFormHandler_Newsletter(t *testing.T) {
	t.Run("valid signup", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
			return msg.Subject == "[Newsletter] New signup"
		})).Return(nil)

		h := NewFormHandler(sender, formConfig(), zap.NewNop())
		rr := postJSON(t, h.Newsletter, "/api/v1/newsletter", map[string]string{
			"email":  "pat@example.com",
			"locale": "es",
		})

		require.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Suscripción completada. ¡Nos vemos en Adare!", resp["message"])
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		sender := new(MockSender)
		h := NewFormHandler(sender, formConfig(), zap.NewNop())

		rr := postJSON(t, h.Newsletter, "/api/v1/newsletter", map[string]string{
			"email": "nope",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("empty body rejected", func(t *testing.T) {
		h := NewFormHandler(new(MockSender), formConfig(), zap.NewNop())

		req, _ := http.NewRequest("POST", "/api/v1/newsletter", bytes.NewReader(nil))
		rr := httptest.NewRecorder()
		h.Newsletter(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
