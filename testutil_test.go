package vbtree

import (
	"testing"

	"github.com/thrylos-labs/vbtree/kzg"
)

const testSecret = "8927347823478352432985"

func newTestEngine(t *testing.T, width int) *kzg.Engine {
	t.Helper()
	secret, err := kzg.NewSecret(testSecret)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	setup, err := kzg.NewSetup(width, secret)
	if err != nil {
		t.Fatalf("NewSetup: %v", err)
	}
	return kzg.NewEngine(setup)
}
