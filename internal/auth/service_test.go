package auth

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/models"
)

// fakeStore is an in-memory CredentialStore for service tests.
type fakeStore struct {
	users   map[string]*models.User
	nextID  int
	findErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[string]*models.User), nextID: 1}
}

func (f *fakeStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.users[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeStore) Insert(_ context.Context, name, email, passwordHash string) (*models.User, error) {
	u := &models.User{ID: f.nextID, Name: name, Email: email, PasswordHash: passwordHash}
	f.nextID++
	f.users[email] = u
	return u, nil
}

func newTestService(store CredentialStore) *Service {
	// cost 4 keeps bcrypt fast in tests
	return NewService(store, NewTokenIssuer("test-secret", time.Hour), 4)
}

func TestService_Register(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	if err := svc.Register(context.Background(), "A", "a@x.com", "pw1"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	u := store.users["a@x.com"]
	if u == nil {
		t.Fatal("no record stored")
	}
	if u.Name != "A" {
		t.Errorf("name: got %q, want %q", u.Name, "A")
	}
	if u.PasswordHash == "pw1" || u.PasswordHash == "" {
		t.Errorf("stored hash must not equal the plaintext: %q", u.PasswordHash)
	}
	if !CheckPassword(u.PasswordHash, "pw1") {
		t.Error("stored hash does not verify against the password")
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	if err := svc.Register(context.Background(), "A", "a@x.com", "pw1"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	first := *store.users["a@x.com"]

	err := svc.Register(context.Background(), "B", "a@x.com", "pw2")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("second Register: got %v, want ErrEmailTaken", err)
	}

	// First record untouched.
	got := store.users["a@x.com"]
	if got.Name != first.Name || got.PasswordHash != first.PasswordHash {
		t.Errorf("record changed by failed register: %+v", got)
	}
}

func TestService_Register_EmailIsExactMatch(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	if err := svc.Register(context.Background(), "A", "a@x.com", "pw1"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	// Different case is a different email; no folding.
	if err := svc.Register(context.Background(), "A", "A@x.com", "pw1"); err != nil {
		t.Fatalf("Register with different case: %v", err)
	}
}

func TestService_Register_StoreFailure(t *testing.T) {
	store := newFakeStore()
	store.findErr = errors.New("connection refused")
	svc := newTestService(store)

	err := svc.Register(context.Background(), "A", "a@x.com", "pw1")
	if err == nil {
		t.Fatal("expected error on store failure")
	}
	if errors.Is(err, ErrEmailTaken) {
		t.Error("store failure must not look like a duplicate email")
	}
	if len(store.users) != 0 {
		t.Error("failed register left a record behind")
	}
}

func TestService_Login(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	if err := svc.Register(context.Background(), "A", "a@x.com", "pw1"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, err := svc.Login(context.Background(), "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	email, err := NewTokenIssuer("test-secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("Verify issued token: %v", err)
	}
	if email != "a@x.com" {
		t.Errorf("token email claim: got %q, want %q", email, "a@x.com")
	}
}

func TestService_Login_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	if err := svc.Register(context.Background(), "A", "a@x.com", "pw1"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, wrongPw := svc.Login(context.Background(), "a@x.com", "wrong")
	_, unknown := svc.Login(context.Background(), "nobody@x.com", "pw1")

	if !errors.Is(wrongPw, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", wrongPw)
	}
	if !errors.Is(unknown, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", unknown)
	}
	if wrongPw.Error() != unknown.Error() {
		t.Error("failure reasons are distinguishable")
	}
}

func TestService_Login_StoreFailure(t *testing.T) {
	store := newFakeStore()
	store.findErr = errors.New("connection refused")
	svc := newTestService(store)

	_, err := svc.Login(context.Background(), "a@x.com", "pw1")
	if err == nil {
		t.Fatal("expected error on store failure")
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Error("store failure must not look like bad credentials")
	}
}
