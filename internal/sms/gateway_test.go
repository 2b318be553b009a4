package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	entsmsmessage "kolekta.io/kolekta/ent/smsmessage"
	"kolekta.io/kolekta/internal/config"
)

func TestEngageSparkGateway_Send(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotBody engageSparkRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := NewEngageSparkGateway(config.SMSConfig{
		APIURL:         srv.URL,
		APIKey:         "test-key",
		OrganizationID: 42,
		RequestTimeout: time.Second,
	})

	err := g.Send(context.Background(), []string{"+639170000001"}, "hello")
	require.NoError(t, err)
	require.Equal(t, "Token test-key", gotAuth)
	require.Equal(t, 42, gotBody.OrganizationID)
	require.Equal(t, []string{"+639170000001"}, gotBody.Recipients)
	require.Equal(t, "hello", gotBody.MessageText)
}

func TestEngageSparkGateway_SendProviderError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid token."}`))
	}))
	defer srv.Close()

	g := NewEngageSparkGateway(config.SMSConfig{APIURL: srv.URL, APIKey: "bad"})

	err := g.Send(context.Background(), []string{"+639170000001"}, "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "401")
	require.Contains(t, err.Error(), "Invalid token.")
}

func TestEngageSparkGateway_SendNoRecipients(t *testing.T) {
	t.Parallel()

	g := NewEngageSparkGateway(config.SMSConfig{APIURL: "http://unused"})
	err := g.Send(context.Background(), nil, "hello")
	require.Error(t, err)
}

func TestTemplates(t *testing.T) {
	t.Parallel()

	require.Empty(t, Template(entsmsmessage.MessageTypeCustom))
	for _, typ := range []entsmsmessage.MessageType{
		entsmsmessage.MessageTypeCollection,
		entsmsmessage.MessageTypeDelay,
		entsmsmessage.MessageTypeEducation,
		entsmsmessage.MessageTypeEmergency,
	} {
		body := Template(typ)
		require.NotEmpty(t, body, "template for %s", typ)
		require.LessOrEqual(t, len([]rune(body)), MaxBodyLength)
	}
}
