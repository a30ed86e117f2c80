package validate

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// genEmail generates addresses that match the accepted shape
func genEmail() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		local := rapid.StringMatching(`[a-z0-9._+-]{1,16}`).Draw(t, "local")
		domain := rapid.StringMatching(`[a-z0-9-]{1,12}`).Draw(t, "domain")
		tld := rapid.StringMatching(`[a-z]{2,6}`).Draw(t, "tld")
		return local + "@" + domain + "." + tld
	})
}

// TestEmail_WellFormedAddressesPass tests that every generated address is accepted
func TestEmail_WellFormedAddressesPass(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		email := genEmail().Draw(t, "email")
		if key := Email(email); key != "" {
			t.Fatalf("Email(%q) = %q, want valid", email, key)
		}
	})
}

// TestEmail_NoAtSignFails tests that input without an @ is always rejected
func TestEmail_NoAtSignFails(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Filter(func(s string) bool {
			return !strings.Contains(s, "@")
		}).Draw(t, "input")

		if Email(s) == "" {
			t.Fatalf("Email(%q) should fail without an @", s)
		}
	})
}

// TestPassword_LengthBoundary tests the minimum length rule
func TestPassword_LengthBoundary(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pw := rapid.StringMatching(`[a-zA-Z0-9]{1,32}`).Draw(t, "password")

		got := Password(pw)
		if len(pw) < MinPasswordLength && got != KeyPasswordTooShort {
			t.Fatalf("Password(%q) = %q, want too short", pw, got)
		}
		if len(pw) >= MinPasswordLength && got != "" {
			t.Fatalf("Password(%q) = %q, want valid", pw, got)
		}
	})
}

// TestConfirmation_MismatchAlwaysFails tests that differing confirmations are rejected
func TestConfirmation_MismatchAlwaysFails(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pw := rapid.StringMatching(`[a-z]{8,16}`).Draw(t, "password")
		other := rapid.StringMatching(`[a-z]{1,16}`).Filter(func(s string) bool { return s != pw }).Draw(t, "confirmation")

		if Confirmation(pw, other) != KeyPasswordsDoNotMatch {
			t.Fatalf("Confirmation(%q, %q) should report a mismatch", pw, other)
		}
		if Confirmation(pw, pw) != "" {
			t.Fatalf("identical confirmation should pass")
		}
	})
}
