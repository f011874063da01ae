package store

import "testing"

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	value, err := s.Get("auth_token")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if value != "" {
		t.Errorf("expected empty value, got %s", value)
	}

	if err := s.Set("auth_token", "token-1"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	value, err = s.Get("auth_token")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if value != "token-1" {
		t.Errorf("expected token-1, got %s", value)
	}

	if err := s.Delete("auth_token"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	value, err = s.Get("auth_token")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if value != "" {
		t.Errorf("expected empty value after delete, got %s", value)
	}
}
