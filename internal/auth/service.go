package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/models"
)

var (
	// ErrEmailTaken is returned by Register when a user record already holds the email.
	ErrEmailTaken = errors.New("user already exists")
	// ErrInvalidCredentials is returned by Login for both an unknown email and a
	// wrong password, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// CredentialStore is the persistence abstraction holding user records.
// FindByEmail is an exact-match lookup (no case folding, no trimming) and
// returns sql.ErrNoRows when no record holds the email. Insert appends a
// record without enforcing uniqueness; the service checks first.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, name, email, passwordHash string) (*models.User, error)
}

// Service implements registration and login over a CredentialStore.
// It is stateless; the only persistent state is the user record set.
type Service struct {
	store  CredentialStore
	tokens *TokenIssuer
	cost   int
}

func NewService(store CredentialStore, tokens *TokenIssuer, bcryptCost int) *Service {
	return &Service{store: store, tokens: tokens, cost: bcryptCost}
}

// Register creates a user record for a previously unseen email.
// The uniqueness check runs strictly before the insert, so a failed
// registration never leaves a partial record. Two concurrent calls with
// the same unused email can still both pass the check; that race is a
// known limit of the check-then-insert sequence.
func (s *Service) Register(ctx context.Context, name, email, password string) error {
	_, err := s.store.FindByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("lookup user: %w", err)
	}

	hash, err := HashPassword(password, s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.store.Insert(ctx, name, email, hash); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Login verifies the credentials and returns a signed token carrying the
// email claim. Unknown email and wrong password fail identically.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if !CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
