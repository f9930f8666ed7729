// Package auth implements the credential store and the persisted session
// marker. Accounts live as one JSON array under a single storage key;
// the current session is a signed token under its own key, so a restart
// resumes the session and a tampered or expired marker degrades to
// "not signed in" instead of failing.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/coursenotes/internal/common"
	"github.com/dmitrijs2005/coursenotes/internal/logging"
	"github.com/dmitrijs2005/coursenotes/internal/models"
	"github.com/dmitrijs2005/coursenotes/internal/storage"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Storage keys. The account list and the session marker each occupy a single
// key; values are JSON (accounts) or a signed token (session).
const (
	accountsKey      = "course_notes_users"
	sessionKey       = "course_notes_current_user"
	sessionSecretKey = "course_notes_session_secret"
)

// Service provides signup, login, logout and session resolution.
type Service struct {
	repo            storage.Repository
	log             logging.Logger
	sessionValidity time.Duration
}

// NewService constructs an auth Service over the given storage repository.
func NewService(repo storage.Repository, log logging.Logger, sessionValidity time.Duration) *Service {
	return &Service{repo: repo, log: log, sessionValidity: sessionValidity}
}

// loadAccounts returns the persisted account list. An absent or unparsable
// blob degrades to an empty list, never an error.
func (s *Service) loadAccounts(ctx context.Context) []models.Account {
	raw, err := s.repo.Get(ctx, accountsKey)
	if err != nil || len(raw) == 0 {
		return nil
	}

	var accounts []models.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		s.log.Warn(ctx, "stored account list is not parsable, treating as empty", "error", err)
		return nil
	}
	return accounts
}

func (s *Service) saveAccounts(ctx context.Context, accounts []models.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to serialize accounts: %w", err)
	}
	return s.repo.Set(ctx, accountsKey, raw)
}

// Signup registers a new account. Emails are unique case-insensitively;
// a duplicate yields common.ErrAccountExists. The password is stored as a
// bcrypt hash. Signup does not start a session.
func (s *Service) Signup(ctx context.Context, email, password string) (*models.Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	accounts := s.loadAccounts(ctx)
	for _, a := range accounts {
		if strings.EqualFold(a.Email, email) {
			return nil, common.ErrAccountExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.saveAccounts(ctx, append(accounts, account)); err != nil {
		return nil, err
	}

	return &account, nil
}

// Login authenticates by case-insensitive email and password and, on
// success, persists the session marker and returns the account. Unknown
// email and wrong password are indistinguishable to the caller: both yield
// common.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Account, error) {
	email = strings.TrimSpace(email)

	for _, a := range s.loadAccounts(ctx) {
		if !strings.EqualFold(a.Email, email) {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
			return nil, common.ErrInvalidCredentials
		}
		if err := s.startSession(ctx, a.ID); err != nil {
			return nil, err
		}
		return &a, nil
	}

	return nil, common.ErrInvalidCredentials
}

// Logout clears the persisted session marker. It is idempotent: logging out
// with no active session is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	return s.repo.Delete(ctx, sessionKey)
}

// CurrentAccount resolves the persisted session marker to an account.
// An absent, unparsable, expired or orphaned marker yields (nil, nil);
// only storage faults surface as errors.
func (s *Service) CurrentAccount(ctx context.Context) (*models.Account, error) {
	raw, err := s.repo.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	secret, err := s.sessionSecret(ctx)
	if err != nil {
		return nil, err
	}

	accountID, err := accountIDFromToken(string(raw), secret)
	if err != nil {
		s.log.Debug(ctx, "session marker is not valid, treating as signed out", "error", err)
		return nil, nil
	}

	for _, a := range s.loadAccounts(ctx) {
		if a.ID == accountID {
			return &a, nil
		}
	}
	return nil, nil
}

func (s *Service) startSession(ctx context.Context, accountID string) error {
	secret, err := s.sessionSecret(ctx)
	if err != nil {
		return err
	}

	token, err := generateSessionToken(accountID, secret, s.sessionValidity)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	return s.repo.Set(ctx, sessionKey, []byte(token))
}

// sessionSecret returns the HMAC secret used to sign session markers,
// generating and persisting a random one on first use.
func (s *Service) sessionSecret(ctx context.Context) ([]byte, error) {
	secret, err := s.repo.Get(ctx, sessionSecretKey)
	if err != nil {
		return nil, err
	}
	if len(secret) > 0 {
		return secret, nil
	}

	generated, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session secret: %w", err)
	}
	if err := s.repo.Set(ctx, sessionSecretKey, []byte(generated)); err != nil {
		return nil, err
	}
	return []byte(generated), nil
}
