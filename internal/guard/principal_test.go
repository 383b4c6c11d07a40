package guard

import (
	"context"
	"errors"
	"testing"
	"time"

	"anoa.com/kosthub/internal/model"
	"anoa.com/kosthub/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestResolveValidToken(t *testing.T) {
	userID := uuid.New()
	users := &fakeUsers{rows: map[string]*model.User{
		userID.String(): {ID: userID, Email: "ani@kost.id", Role: model.RoleOwner},
	}}
	r := NewResolver(users, testSecret)

	p, err := r.Resolve(context.Background(), signToken(t, testSecret, userID.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != userID || p.Email != "ani@kost.id" || p.Role != model.RoleOwner {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestResolveRejectsBadTokens(t *testing.T) {
	userID := uuid.New()
	users := &fakeUsers{rows: map[string]*model.User{
		userID.String(): {ID: userID, Role: model.RoleStudent},
	}}
	r := NewResolver(users, testSecret)
	ctx := context.Background()

	cases := map[string]string{
		"empty":        "",
		"garbage":      "not.a.token",
		"wrong secret": signToken(t, "other-secret", userID.String()),
		"bad subject":  signToken(t, testSecret, "bukan-uuid"),
	}
	for name, token := range cases {
		if _, err := r.Resolve(ctx, token); !errors.Is(err, apperror.ErrNotAuthenticated) {
			t.Fatalf("%s: got %v, want ErrNotAuthenticated", name, err)
		}
	}
}

func TestResolveBlockedAccount(t *testing.T) {
	userID := uuid.New()
	users := &fakeUsers{rows: map[string]*model.User{
		userID.String(): {ID: userID, Role: model.RoleOwner, IsBlocked: true},
	}}
	r := NewResolver(users, testSecret)

	_, err := r.Resolve(context.Background(), signToken(t, testSecret, userID.String()))
	if !errors.Is(err, apperror.ErrAccountBlocked) {
		t.Fatalf("got %v, want ErrAccountBlocked", err)
	}
	// blocked tidak boleh menyamar jadi InsufficientRole di guard manapun
	if errors.Is(err, apperror.ErrInsufficientRole) {
		t.Fatalf("blocked must never be reported as insufficient role")
	}
}

func TestResolveProfileDesync(t *testing.T) {
	users := &fakeUsers{rows: map[string]*model.User{}}
	r := NewResolver(users, testSecret)

	// token sah tapi baris user tidak ada: desync provisioning, bukan
	// sekadar belum login
	_, err := r.Resolve(context.Background(), signToken(t, testSecret, uuid.New().String()))
	if !errors.Is(err, apperror.ErrProfileNotFound) {
		t.Fatalf("got %v, want ErrProfileNotFound", err)
	}
}

func TestResolveUnknownRole(t *testing.T) {
	userID := uuid.New()
	users := &fakeUsers{rows: map[string]*model.User{
		userID.String(): {ID: userID, Role: model.Role("superuser")},
	}}
	r := NewResolver(users, testSecret)

	_, err := r.Resolve(context.Background(), signToken(t, testSecret, userID.String()))
	if !errors.Is(err, apperror.ErrProfileNotFound) {
		t.Fatalf("got %v, want ErrProfileNotFound", err)
	}
}

func TestResolveStorageErrorFailsClosed(t *testing.T) {
	users := &fakeUsers{err: errors.New("connection refused")}
	r := NewResolver(users, testSecret)

	_, err := r.Resolve(context.Background(), signToken(t, testSecret, uuid.New().String()))
	if !errors.Is(err, apperror.ErrNotAuthenticated) {
		t.Fatalf("got %v, want ErrNotAuthenticated", err)
	}
}
