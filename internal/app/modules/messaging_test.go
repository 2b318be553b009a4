package modules

import (
	"os"
	"strings"
	"testing"

	"kolekta.io/kolekta/ent"
)

func TestMessagingModule_BindRiverRequiresDependencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		module *MessagingModule
	}{
		{name: "nil module", module: nil},
		{name: "nil infra", module: &MessagingModule{}},
		{name: "missing river client", module: &MessagingModule{infra: &Infrastructure{EntClient: &ent.Client{}}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if err := tc.module.BindRiver(); err == nil {
				t.Fatalf("BindRiver(%s) expected error, got nil", tc.name)
			}
		})
	}
}

func TestMessagingModule_WiringContract(t *testing.T) {
	t.Parallel()

	src, err := os.ReadFile("messaging.go")
	if err != nil {
		t.Fatalf("read messaging.go: %v", err)
	}
	text := string(src)

	required := []string{
		"usecase.NewSendSMSUseCase(",
		"jobs.NewSMSDispatchWorker(",
		"service.NewSMSService(",
		".WithFeed(",
	}
	for _, fragment := range required {
		if !strings.Contains(text, fragment) {
			t.Fatalf("messaging module missing required wiring fragment %q", fragment)
		}
	}
}
