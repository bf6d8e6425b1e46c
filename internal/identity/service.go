// Package identity handles operator accounts and token-based
// authentication: registration with bcrypt password hashing, login that
// exchanges credentials for a signed JWT, and token verification for the
// HTTP middleware.
package identity

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrInvalidCredentials is returned on login when the username is
	// unknown or the password does not match. The two cases are
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordTooShort is returned on registration when the password
	// does not meet the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	// ErrInvalidToken is returned when a presented token fails
	// verification for any reason.
	ErrInvalidToken = errors.New("invalid token")
)

const (
	minPasswordLength = 8

	// TokenTTL is how long an issued token stays valid.
	TokenTTL = 8 * time.Hour
)

// Claims is the payload carried by issued tokens. DisplayName feeds the
// actor attribution stamped on orders and evidence; Role feeds the
// Manager gate.
type Claims struct {
	UserID      int    `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// RegisterInput carries the fields of a registration request. Password is
// the clear text; it is hashed here and never stored.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      string
}

// Service implements account registration, login, and token verification.
type Service struct {
	uowFactory ports.UnitOfWorkFactory
	secret     []byte
	ttl        time.Duration
}

// NewService creates an identity service signing tokens with the given
// secret.
func NewService(uowFactory ports.UnitOfWorkFactory, secret []byte) *Service {
	return &Service{
		uowFactory: uowFactory,
		secret:     secret,
		ttl:        TokenTTL,
	}
}

// Register creates an operator account. The password is bcrypt-hashed
// before it reaches the aggregate. A taken username surfaces as the
// repository's StateConflict error.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*user.User, error) {
	if input.Password == "" {
		return nil, errs.NewValueIsRequiredError("password")
	}
	if len(input.Password) < minPasswordLength {
		return nil, errs.NewValueIsInvalidErrorWithCause("password", ErrPasswordTooShort)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account, err := user.NewUser(
		input.Username, string(hash),
		input.FirstName, input.LastName,
		input.Phone, input.Role,
	)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.UserRepository().Add(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Login verifies the credentials and returns a signed token together with
// the account. A missing account and a wrong password both come back as
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, *user.User, error) {
	uow := s.uowFactory.Create()

	account, err := uow.UserRepository().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(account.PasswordHash()), []byte(password),
	); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := Claims{
		UserID:      account.ID().Int(),
		Username:    account.Username(),
		DisplayName: account.DisplayName(),
		Role:        account.Role(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.Username(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}

	return signed, account, nil
}

// VerifyToken parses and validates a presented token. Any failure, from a
// bad signature to expiry, comes back as ErrInvalidToken.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
