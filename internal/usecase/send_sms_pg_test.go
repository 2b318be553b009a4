package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"kolekta.io/kolekta/ent"
	entresident "kolekta.io/kolekta/ent/resident"
	apperrors "kolekta.io/kolekta/internal/pkg/errors"
	"kolekta.io/kolekta/internal/sms"
	"kolekta.io/kolekta/internal/testutil"
)

func seedResident(t *testing.T, client *ent.Client, username, purok, phone string, enabled bool) {
	t.Helper()
	err := client.Resident.Create().
		SetID(generateID()).
		SetUsername(username).
		SetRole(entresident.RoleResident).
		SetPurok(purok).
		SetPhone(phone).
		SetEnabled(enabled).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestSendSMS_Validation(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "send_sms_validation")
	uc := NewSendSMSUseCase(client, nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		input    SendSMSInput
		wantCode string
	}{
		{
			name:     "unknown message type",
			input:    SendSMSInput{MessageType: "carrier-pigeon", Body: "hi"},
			wantCode: apperrors.CodeValidationFailed,
		},
		{
			name:     "custom type with empty body",
			input:    SendSMSInput{MessageType: "custom"},
			wantCode: apperrors.CodeValidationFailed,
		},
		{
			name:     "body over limit",
			input:    SendSMSInput{Body: strings.Repeat("x", sms.MaxBodyLength+1)},
			wantCode: apperrors.CodeSMSTooLong,
		},
		{
			name:     "no reachable recipients",
			input:    SendSMSInput{Body: "hello"},
			wantCode: apperrors.CodeSMSNoRecipients,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tc.input)
			require.Error(t, err)
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			require.Equal(t, tc.wantCode, appErr.Code)
		})
	}
}

func TestSendSMS_ResolveGroup(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "send_sms_resolve")
	uc := NewSendSMSUseCase(client, nil)
	ctx := context.Background()

	seedResident(t, client, "p1-a", "Purok 1", "+639170000001", true)
	seedResident(t, client, "p1-b", "Purok 1", "+639170000002", true)
	seedResident(t, client, "p1-dup", "Purok 1", "+639170000002", true)
	seedResident(t, client, "p1-disabled", "Purok 1", "+639170000003", false)
	seedResident(t, client, "p1-nophone", "Purok 1", "", true)
	seedResident(t, client, "p2-a", "Purok 2", "+639170000004", true)

	// Purok filter accepts both the bare number and the labeled form,
	// and duplicate phones collapse to one entry.
	for _, group := range []string{"1", "Purok 1", "purok 1"} {
		phones, err := uc.resolveGroup(ctx, group)
		require.NoError(t, err, "group %q", group)
		require.ElementsMatch(t,
			[]string{"+639170000001", "+639170000002"},
			phones, "group %q", group)
	}

	// "all" spans puroks but still excludes disabled and phoneless rows.
	phones, err := uc.resolveGroup(ctx, "all")
	require.NoError(t, err)
	require.ElementsMatch(t,
		[]string{"+639170000001", "+639170000002", "+639170000004"},
		phones)
}

func TestSendSMS_TemplateFillsEmptyBody(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "send_sms_template")
	uc := NewSendSMSUseCase(client, nil)

	// No recipients exist, so execution stops after the body is
	// resolved; reaching the recipient error proves the template was
	// accepted in place of an explicit body.
	_, err := uc.Execute(context.Background(), SendSMSInput{MessageType: "collection"})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeSMSNoRecipients, appErr.Code)
}
