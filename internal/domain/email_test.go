package domain

import "testing"

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Foo@Bar.com", "foo@bar.com"},
		{"  admin@example.com  ", "admin@example.com"},
		{" MIXED@Case.ORG\t", "mixed@case.org"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Fatalf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"a@b", "admin@example.com", "first.last@sub.domain.org"}
	for _, e := range valid {
		if !ValidEmail(e) {
			t.Fatalf("expected %q valid", e)
		}
	}

	invalid := []string{"", "no-at-sign", "   "}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Fatalf("expected %q invalid", e)
		}
	}
}
