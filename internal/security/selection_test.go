package security

import (
	"errors"
	"testing"
	"time"
)

func TestSelectionCodec_RoundTrip(t *testing.T) {
	c, err := NewSelectionCodec([]byte(TestSelectionSecret), time.Hour)
	if err != nil {
		t.Fatalf("NewSelectionCodec: %v", err)
	}
	token, err := c.Encode("u1", "org-a")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := c.Decode(token, "u1"); got != "org-a" {
		t.Errorf("Decode = %q, want org-a", got)
	}
}

func TestSelectionCodec_RejectsForeignOrInvalid(t *testing.T) {
	c, _ := NewSelectionCodec([]byte(TestSelectionSecret), time.Hour)
	other, _ := NewSelectionCodec([]byte("another-selection-secret-abcdefgh"), time.Hour)
	expired, _ := NewSelectionCodec([]byte(TestSelectionSecret), -time.Minute)

	token, _ := c.Encode("u1", "org-a")
	foreign, _ := other.Encode("u1", "org-a")
	stale, _ := expired.Encode("u1", "org-a")

	testCases := []struct {
		name   string
		token  string
		userID string
	}{
		{"other user", token, "u2"},
		{"other secret", foreign, "u1"},
		{"expired", stale, "u1"},
		{"garbage", "not-a-token", "u1"},
		{"empty token", "", "u1"},
		{"empty user", token, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Decode(tc.token, tc.userID); got != "" {
				t.Errorf("Decode = %q, want empty", got)
			}
		})
	}
}

func TestNewSelectionCodec_WeakSecret(t *testing.T) {
	if _, err := NewSelectionCodec([]byte("short"), time.Hour); !errors.Is(err, ErrWeakSecret) {
		t.Errorf("want ErrWeakSecret, got %v", err)
	}
}

func TestSelectionCodec_NilDecodes(t *testing.T) {
	var c *SelectionCodec
	if got := c.Decode("anything", "u1"); got != "" {
		t.Errorf("nil codec Decode = %q, want empty", got)
	}
}
