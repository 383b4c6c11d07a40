package apperror

import (
	"fmt"
	"testing"
)

func TestRedirectFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		roleHome string
		want     string
	}{
		{"not authenticated", ErrNotAuthenticated, "", "/login"},
		{"blocked", ErrAccountBlocked, "/student", "/blocked"},
		{"profile not found", ErrProfileNotFound, "/owner", "/error"},
		{"insufficient role goes home", ErrInsufficientRole, "/student", "/student"},
		{"insufficient role unknown home", ErrInsufficientRole, "", "/"},
		{"not owner goes to own hostel list", ErrNotOwner, "/owner", "/owner/hostels"},
		{"no profile goes to onboarding", ErrNoProfile, "/student", "/join-hostel"},
		{"wrapped error still resolves", fmt.Errorf("context: %w", ErrNoProfile), "", "/join-hostel"},
		{"unknown error has no redirect", ErrInvalidInput, "/student", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RedirectFor(tt.err, tt.roleHome); got != tt.want {
				t.Fatalf("RedirectFor(%v, %q) = %q, want %q", tt.err, tt.roleHome, got, tt.want)
			}
		})
	}
}

// Blocked dan insufficient-role tidak boleh menyatu ke target yang sama;
// operator perlu bisa membedakan pesannya.
func TestRedirectForBlockedDistinctFromInsufficient(t *testing.T) {
	blocked := RedirectFor(ErrAccountBlocked, "/owner")
	insufficient := RedirectFor(ErrInsufficientRole, "/owner")
	if blocked == insufficient {
		t.Fatalf("blocked and insufficient role share redirect %q", blocked)
	}
}
