package guard

import (
	"context"
	"errors"
	"fmt"
	"log"

	"anoa.com/kosthub/internal/model"
	"anoa.com/kosthub/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Principal adalah identitas terotentikasi dengan role otoritatif dari
// database. Token sesi hanya dipercaya untuk identitas (subject), tidak
// pernah untuk role atau status blokir.
type Principal struct {
	ID    uuid.UUID
	Email string
	Role  model.Role
}

type UserStore interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// Resolver turns an opaque session token into a Principal.
type Resolver struct {
	users  UserStore
	secret []byte
}

func NewResolver(users UserStore, secret string) *Resolver {
	return &Resolver{users: users, secret: []byte(secret)}
}

// Resolve parses the session token and performs the mandatory secondary
// lookup for role and block status. Outcomes:
//   - apperror.ErrNotAuthenticated: no/invalid token, or storage unavailable
//     (fail closed)
//   - apperror.ErrProfileNotFound: token valid but no user row, a
//     provisioning desync rather than an absent login
//   - apperror.ErrAccountBlocked: user row exists but is disabled
func (r *Resolver) Resolve(ctx context.Context, tokenString string) (*Principal, error) {
	if tokenString == "" {
		return nil, apperror.ErrNotAuthenticated
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.ErrNotAuthenticated
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, apperror.ErrNotAuthenticated
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperror.ErrNotAuthenticated
	}

	// Role dan is_blocked diambil ulang dari database pada setiap resolve.
	// Jangan di-cache lintas request dan jangan dioptimalkan ke klaim token.
	user, err := r.users.FindByID(ctx, userID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[guard] user %s authenticated but has no profile row", userID)
			return nil, apperror.ErrProfileNotFound
		}
		return nil, apperror.ErrNotAuthenticated
	}

	if user.IsBlocked {
		return nil, apperror.ErrAccountBlocked
	}
	if !user.Role.Valid() {
		log.Printf("[guard] user %s carries unknown role %q", userID, user.Role)
		return nil, apperror.ErrProfileNotFound
	}

	return &Principal{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}
