// Package session owns the registered-identity set and the single
// active-identity slot for the running app.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/emazahmed/edu-hotel/internal/access"
	"github.com/emazahmed/edu-hotel/internal/events"
	"github.com/emazahmed/edu-hotel/internal/metrics"
	"github.com/emazahmed/edu-hotel/internal/models"
)

// ErrTooManyAttempts is returned when login attempts for an email
// exceed the throttle. The caller asks the user to slow down; nothing
// is escalated.
var ErrTooManyAttempts = errors.New("too many login attempts, try again later")

// Options tune the store. Zero values fall back to defaults.
type Options struct {
	// LoginInterval is the steady-state spacing between allowed login
	// attempts per email once the burst is spent.
	LoginInterval time.Duration
	// LoginBurst is how many attempts an email may make back to back.
	LoginBurst int
	// BcryptCost for signup credential hashing.
	BcryptCost int
}

func (o *Options) withDefaults() {
	if o.LoginInterval <= 0 {
		o.LoginInterval = 2 * time.Second
	}
	if o.LoginBurst <= 0 {
		o.LoginBurst = 10
	}
	if o.BcryptCost <= 0 {
		o.BcryptCost = bcrypt.DefaultCost
	}
}

// Store holds registered identities and at most one active identity.
type Store struct {
	opts     Options
	users    []models.User
	byEmail  map[string]int // index into users
	active   *models.User
	limiters map[string]*rate.Limiter
	bus      *events.Bus
	logger   zerolog.Logger
	mu       sync.Mutex
}

// NewStore builds a session store seeded with the given identities.
// Seed identities carry no credential hash, so any password is
// accepted for them on login (demo behaviour).
func NewStore(seed []models.User, bus *events.Bus, opts Options, logger zerolog.Logger) *Store {
	opts.withDefaults()
	s := &Store{
		opts:     opts,
		byEmail:  make(map[string]int, len(seed)),
		limiters: make(map[string]*rate.Limiter),
		bus:      bus,
		logger:   logger.With().Str("component", "session").Logger(),
	}
	for _, u := range seed {
		key := normalizeEmail(u.Email)
		if _, dup := s.byEmail[key]; dup {
			// Email uniqueness is an invariant of the identity set;
			// later seed duplicates are dropped.
			s.logger.Warn().Str("email", u.Email).Msg("duplicate seed identity skipped")
			continue
		}
		s.byEmail[key] = len(s.users)
		s.users = append(s.users, u)
	}
	return s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login authenticates by exact email match and sets the active
// identity. Identities created through signup verify their bcrypt
// credential; seeded demo identities accept any password. A negative
// result is not an error: (false, nil) means unknown email or wrong
// password, and the active identity is unchanged.
func (s *Store) Login(email, password string) (bool, error) {
	if !s.limiter(email).Allow() {
		metrics.IncLoginAttempt("throttled")
		return false, ErrTooManyAttempts
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		metrics.IncLoginAttempt("unknown_email")
		s.logger.Info().Str("email", email).Msg("login failed: unknown email")
		return false, nil
	}

	u := s.users[idx]
	if u.CredentialHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(u.CredentialHash), []byte(password)) != nil {
			metrics.IncLoginAttempt("bad_password")
			s.logger.Info().Str("user_id", u.ID).Msg("login failed: bad password")
			return false, nil
		}
	}

	s.active = &s.users[idx]
	metrics.IncLoginAttempt("success")
	s.logger.Info().Str("user_id", u.ID).Bool("admin", u.IsAdmin).Msg("login")
	return true, nil
}

// Signup registers a new non-admin identity and sets it active.
// A duplicate email yields (false, nil) and leaves both the registered
// set and the active identity untouched.
func (s *Store) Signup(name, email, phone, password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeEmail(email)
	if _, exists := s.byEmail[key]; exists {
		s.logger.Info().Str("email", email).Msg("signup rejected: email already registered")
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.opts.BcryptCost)
	if err != nil {
		return false, err
	}

	u := models.User{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		Phone:          phone,
		CredentialHash: string(hash),
	}
	s.byEmail[key] = len(s.users)
	s.users = append(s.users, u)
	s.active = &s.users[len(s.users)-1]

	metrics.IncSignup()
	s.logger.Info().Str("user_id", u.ID).Msg("signup")
	if s.bus != nil {
		s.bus.Publish(events.TypeUserSignedUp, events.UserSignedUp{UserID: u.ID, Email: u.Email})
	}
	return true, nil
}

// Logout clears the active identity. Always succeeds.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		s.logger.Info().Str("user_id", s.active.ID).Msg("logout")
	}
	s.active = nil
}

// Current returns a copy of the active identity, if any.
func (s *Store) Current() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return models.User{}, false
	}
	return *s.active, true
}

// IsAdmin reports whether the active identity carries the admin flag.
func (s *Store) IsAdmin() bool {
	u, ok := s.Current()
	return ok && u.IsAdmin
}

// Actor returns the capability actor for the active identity.
func (s *Store) Actor() (access.Actor, bool) {
	u, ok := s.Current()
	if !ok {
		return access.Actor{}, false
	}
	return access.ActorFor(&u), true
}

// Users returns a snapshot of the registered identities in
// registration order.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) limiter(email string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := normalizeEmail(email)
	l, ok := s.limiters[key]
	if !ok {
		l = rate.NewLimiter(rate.Every(s.opts.LoginInterval), s.opts.LoginBurst)
		s.limiters[key] = l
	}
	return l
}
