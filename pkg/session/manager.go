package session

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/prismworlds/prism-auth/pkg/accounts"
	"github.com/prismworlds/prism-auth/pkg/credentials"
	"github.com/prismworlds/prism-auth/pkg/logging"
)

// State is the three-valued authentication state. Consumers must treat
// StateInitializing as distinct from anonymous: the session is not yet
// determined until Restore has run.
type State string

const (
	// StateInitializing means session restoration has not completed
	StateInitializing State = "initializing"
	// StateAuthenticated means an account is signed in
	StateAuthenticated State = "authenticated"
	// StateAnonymous means no account is signed in
	StateAnonymous State = "anonymous"
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 6

// emailShape requires a local part, exactly one @, and a dotted domain
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User-facing messages. Lookup miss and password mismatch share one
// denial message so a caller cannot tell which part failed.
const (
	msgMissingSignUpFields = "Name, email, and password are required"
	msgInvalidEmail        = "Please enter a valid email address"
	msgWeakPassword        = "Password must be at least 6 characters long"
	msgInvalidKind         = "Account type must be student or teacher"
	msgEmailTaken          = "An account with this email already exists"
	msgSignUpOK            = "Account created successfully!"
	msgSignUpFailed        = "Failed to create account. Please try again."
	msgMissingSignInFields = "Email and password are required"
	msgSignInDenied        = "Invalid email, account type, or password"
	msgSignInOK            = "Signed in successfully!"
	msgSignInFailed        = "Failed to sign in. Please try again."
	msgSignedOut           = "Signed out."
	msgSignOutFailed       = "Signed out, but the saved session could not be cleared."
	msgNotReady            = "Please wait, still loading."
	msgNoSession           = "No account is signed in."
	msgProfileUpdated      = "Profile updated."
	msgProfileFailed       = "Profile update could not be saved."
)

// RegisterInput carries the fields of a registration request
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Kind     accounts.Kind
	School   string
	State    string
	Grade    string
	Subject  string
}

// ProfileUpdate carries a partial update of an account's mutable fields.
// Nil fields are left unchanged. Id, email, password, kind and creation
// time are not mutable through this path.
type ProfileUpdate struct {
	Name    *string
	School  *string
	State   *string
	Grade   *string
	Subject *string
}

// Manager owns the account directory and the current-session state. It is
// constructed once at process start and injected into callers; there are
// no package-level globals.
type Manager struct {
	directory *accounts.Directory
	scheme    credentials.Scheme
	durable   Store
	scoped    Store

	mu      sync.RWMutex
	current *accounts.Account
	state   State
}

// NewManager creates a Manager. A nil scheme defaults to plaintext
// storage, which preserves the persisted layout of existing directories.
// The manager starts in StateInitializing; call Restore before using it.
func NewManager(directory *accounts.Directory, scheme credentials.Scheme, durable, scoped Store) (*Manager, error) {
	if directory == nil {
		return nil, fmt.Errorf("account directory is required")
	}
	if durable == nil || scoped == nil {
		return nil, fmt.Errorf("both session stores are required")
	}
	if scheme == nil {
		scheme = credentials.NewPlaintext()
	}

	return &Manager{
		directory: directory,
		scheme:    scheme,
		durable:   durable,
		scoped:    scoped,
		state:     StateInitializing,
	}, nil
}

// Restore attempts to re-establish the previous session from the durable
// store, falling back to the scoped store. A corrupt or unreadable record
// clears both stores and starts anonymous; restoration failures are never
// fatal. The restored account is not re-validated against the directory.
func (m *Manager) Restore() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, st := range []Store{m.durable, m.scoped} {
		account, err := st.Read()
		if err != nil {
			logging.App.Error("Failed to restore session, clearing both stores", "error", err)
			m.clearStoresLocked()
			m.current = nil
			m.state = StateAnonymous
			return
		}
		if account != nil {
			m.current = account
			m.state = StateAuthenticated
			logging.App.Info("Restored session", "id", account.ID, "email", account.Email, "kind", account.Kind)
			return
		}
	}

	m.current = nil
	m.state = StateAnonymous
	logging.App.Debug("No saved session found")
}

// State returns the current authentication state
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// CurrentAccount returns a copy of the signed-in account, or nil when
// anonymous or still initializing
func (m *Manager) CurrentAccount() *accounts.Account {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	a := *m.current
	return &a
}

// Register validates the input, appends a new account to the directory
// and signs it in. Validation short-circuits on the first failure. If the
// directory cannot be persisted, the session is not set and nothing is
// partially applied.
func (m *Manager) Register(ctx context.Context, input RegisterInput) Result {
	if err := ctx.Err(); err != nil {
		return failure(msgSignUpFailed, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateInitializing {
		return failure(msgNotReady, ErrNotReady)
	}

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return failure(msgMissingSignUpFields, ErrMissingFields)
	}
	if !emailShape.MatchString(input.Email) {
		return failure(msgInvalidEmail, ErrInvalidEmail)
	}
	if len(input.Password) < MinPasswordLength {
		return failure(msgWeakPassword, ErrWeakPassword)
	}
	if !input.Kind.Valid() {
		return failure(msgInvalidKind, ErrInvalidKind)
	}

	stored, err := m.scheme.Hash(input.Password)
	if err != nil {
		logging.App.Error("Failed to derive stored credential", "error", err)
		return failure(msgSignUpFailed, err)
	}

	account := accounts.Account{
		ID:        accounts.NewID(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  stored,
		Kind:      input.Kind,
		Grade:     input.Grade,
		Subject:   input.Subject,
		School:    input.School,
		State:     input.State,
		CreatedAt: time.Now(),
	}

	if err := m.directory.Append(account); err != nil {
		if errors.Is(err, accounts.ErrEmailTaken) {
			logging.App.Debug("Sign up rejected, email taken", "email", input.Email)
			return failure(msgEmailTaken, err)
		}
		logging.App.Error("Failed to persist directory on sign up", "email", input.Email, "error", err)
		return failure(msgSignUpFailed, err)
	}

	m.current = &account
	m.state = StateAuthenticated
	if err := m.persistSessionLocked(account); err != nil {
		// The account exists; only the saved session is missing. There is
		// no atomicity across the directory and the session stores.
		logging.App.Error("Failed to persist session after sign up", "id", account.ID, "error", err)
		return failure(msgSignUpFailed, err)
	}

	logging.App.Info("Sign up successful", "id", account.ID, "email", account.Email, "kind", account.Kind)
	return success(msgSignUpOK)
}

// Authenticate verifies credentials against the directory and signs the
// matching account in. It never mutates the directory. A prior session is
// overwritten, not merged.
func (m *Manager) Authenticate(ctx context.Context, email, password string, kind accounts.Kind) Result {
	if err := ctx.Err(); err != nil {
		return failure(msgSignInFailed, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateInitializing {
		return failure(msgNotReady, ErrNotReady)
	}

	if email == "" || password == "" {
		return failure(msgMissingSignInFields, ErrMissingFields)
	}

	account, err := m.directory.FindByEmailAndKind(email, kind)
	if err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			logging.App.Debug("Sign in failed, no matching account", "email", email, "kind", kind)
			return failure(msgSignInDenied, err)
		}
		logging.App.Error("Failed to read directory on sign in", "email", email, "error", err)
		return failure(msgSignInFailed, err)
	}

	if err := m.scheme.VerifyPassword(account.Password, password); err != nil {
		logging.App.Debug("Sign in failed, password mismatch", "id", account.ID, "email", account.Email)
		return failure(msgSignInDenied, err)
	}

	m.current = account
	m.state = StateAuthenticated
	if err := m.persistSessionLocked(*account); err != nil {
		logging.App.Error("Failed to persist session after sign in", "id", account.ID, "error", err)
		return failure(msgSignInFailed, err)
	}

	logging.App.Info("Sign in successful", "id", account.ID, "email", account.Email, "kind", account.Kind)
	return success(msgSignInOK)
}

// TerminateSession clears the current session from memory and from both
// storage horizons. It is idempotent: terminating with no active session
// succeeds. In-memory state becomes anonymous even if a store cannot be
// cleared.
func (m *Manager) TerminateSession() Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = nil
	m.state = StateAnonymous

	if err := m.clearStoresLocked(); err != nil {
		logging.App.Error("Failed to clear session stores on sign out", "error", err)
		return failure(msgSignOutFailed, err)
	}

	logging.App.Info("Signed out")
	return success(msgSignedOut)
}

// MutateProfile merges the given updates into the current session and the
// matching directory record. Only mutable profile fields are touched. A
// persistence failure keeps the merged value in memory (last known-good)
// and is reported in the result as well as the diagnostic log.
func (m *Manager) MutateProfile(updates ProfileUpdate) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return failure(msgNoSession, ErrNoSession)
	}

	merged := *m.current
	if updates.Name != nil {
		merged.Name = *updates.Name
	}
	if updates.School != nil {
		merged.School = *updates.School
	}
	if updates.State != nil {
		merged.State = *updates.State
	}
	if updates.Grade != nil {
		merged.Grade = *updates.Grade
	}
	if updates.Subject != nil {
		merged.Subject = *updates.Subject
	}

	m.current = &merged

	var errs []error
	if err := m.persistSessionLocked(merged); err != nil {
		errs = append(errs, err)
	}
	if err := m.directory.Update(merged); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		err := errors.Join(errs...)
		logging.App.Error("Failed to persist profile update", "id", merged.ID, "error", err)
		return failure(msgProfileFailed, err)
	}

	logging.App.Info("Profile updated", "id", merged.ID)
	return success(msgProfileUpdated)
}

// persistSessionLocked writes the session record to both horizons in
// lockstep
func (m *Manager) persistSessionLocked(account accounts.Account) error {
	if err := m.durable.Write(account); err != nil {
		return err
	}
	return m.scoped.Write(account)
}

// clearStoresLocked removes the session record from both horizons,
// attempting both even if the first fails
func (m *Manager) clearStoresLocked() error {
	return errors.Join(m.durable.Clear(), m.scoped.Clear())
}
