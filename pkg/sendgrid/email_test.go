package sendgrid_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maryanafarm/storefront/pkg/sendgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sendgridV3Payload struct {
	Personalizations []struct {
		To      []map[string]string `json:"to"`
		Subject string              `json:"subject"`
	} `json:"personalizations"`
	From    map[string]string `json:"from"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

func TestNewMailer(t *testing.T) {
	// Act
	mailer := sendgrid.NewMailer("test-api-key", "shop@example.com", "Test Farm", "orders@example.com")

	// Assert
	assert.NotNil(t, mailer)
	assert.NotNil(t, mailer.GetSendGridClient())
}

func TestMailerSend(t *testing.T) {
	ctx := t.Context()
	apiKey := "SG.test-api-key"

	t.Run("Success", func(t *testing.T) {
		// Arrange
		var payload sendgridV3Payload

		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bodyBytes, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			defer r.Body.Close()

			require.NoError(t, json.Unmarshal(bodyBytes, &payload))

			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer "+apiKey, r.Header.Get("Authorization"))

			w.WriteHeader(http.StatusAccepted)
		}))
		defer mockServer.Close()

		mailer := sendgrid.NewMailer(apiKey, "shop@example.com", "Maryana Farm", "orders@example.com")
		mailer.GetSendGridClient().Request.BaseURL = mockServer.URL

		// Act
		err := mailer.Send(ctx, "Нове замовлення від Олена", "Вітаю! Хочу замовити:")

		// Assert
		require.NoError(t, err)

		require.Len(t, payload.Personalizations, 1)
		pers := payload.Personalizations[0]
		require.Len(t, pers.To, 1)
		assert.Equal(t, "orders@example.com", pers.To[0]["email"])
		assert.Equal(t, "Нове замовлення від Олена", pers.Subject)

		assert.Equal(t, "shop@example.com", payload.From["email"])
		assert.Equal(t, "Maryana Farm", payload.From["name"])

		require.Len(t, payload.Content, 1)
		assert.Equal(t, "text/plain", payload.Content[0].Type)
		assert.Equal(t, "Вітаю! Хочу замовити:", payload.Content[0].Value)
	})

	t.Run("Failure - API Error Status", func(t *testing.T) {
		// Arrange
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer mockServer.Close()

		mailer := sendgrid.NewMailer(apiKey, "shop@example.com", "Maryana Farm", "orders@example.com")
		mailer.GetSendGridClient().Request.BaseURL = mockServer.URL

		// Act
		err := mailer.Send(ctx, "subject", "content")

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}
