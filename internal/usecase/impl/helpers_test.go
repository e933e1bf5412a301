package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:           4,
			OTPTTL:               config.DefaultOTPTTL,
			RegistrationTokenTTL: config.DefaultRegistrationTokenTTL,
			SessionTokenTTL:      config.DefaultSessionTokenTTL,
		},
	}
}

// testClock is a settable clock shared by the services under test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// memoryStore keeps accounts and codes in maps and enforces the same
// uniqueness rules as the database schema.
type memoryStore struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*entity.Account
	codes    map[uuid.UUID]*entity.OneTimeCode
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts: make(map[uuid.UUID]*entity.Account),
		codes:    make(map[uuid.UUID]*entity.OneTimeCode),
	}
}

func (s *memoryStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memoryStore) AccountRepo() repository.AccountRepository {
	return (*memoryAccountRepo)(s)
}

func (s *memoryStore) OneTimeCodeRepo() repository.OneTimeCodeRepository {
	return (*memoryCodeRepo)(s)
}

func (s *memoryStore) codeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.codes)
}

type memoryAccountRepo memoryStore

func (r *memoryAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	copied := *account

	return &copied, nil
}

func (r *memoryAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.Email == email {
			copied := *account

			return &copied, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memoryAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Email == account.Email || existing.Username == account.Username {
			return domainerrors.ErrUserAlreadyExists
		}
	}
	copied := *account
	r.accounts[account.ID] = &copied

	return nil
}

func (r *memoryAccountRepo) MarkVerified(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return repository.ErrAccountNotFound
	}
	account.IsVerified = true

	return nil
}

type memoryCodeRepo memoryStore

func (r *memoryCodeRepo) Create(_ context.Context, code *entity.OneTimeCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *code
	r.codes[code.ID] = &copied

	return nil
}

func (r *memoryCodeRepo) FindLatestByAccountID(_ context.Context, accountID uuid.UUID) (*entity.OneTimeCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var owned []*entity.OneTimeCode
	for _, code := range r.codes {
		if code.AccountID == accountID {
			owned = append(owned, code)
		}
	}
	if len(owned) == 0 {
		return nil, repository.ErrCodeNotFound
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt.After(owned[j].CreatedAt) })
	copied := *owned[0]

	return &copied, nil
}

func (r *memoryCodeRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.codes[id]; !ok {
		return repository.ErrCodeNotFound
	}
	delete(r.codes, id)

	return nil
}

func (r *memoryCodeRepo) DeleteByAccountID(_ context.Context, accountID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, code := range r.codes {
		if code.AccountID == accountID {
			delete(r.codes, id)
			removed++
		}
	}

	return removed, nil
}

func (r *memoryCodeRepo) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, code := range r.codes {
		if code.ExpiresAt.Before(before) {
			delete(r.codes, id)
			removed++
		}
	}

	return removed, nil
}

// capturingNotifier records every message instead of delivering it.
type capturingNotifier struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (n *capturingNotifier) Send(_ context.Context, to, subject, htmlBody string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, sentMail{To: to, Subject: subject, Body: htmlBody})

	return nil
}

func (n *capturingNotifier) last() sentMail {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.sent[len(n.sent)-1]
}

// plainHasher is a reversible stand-in for bcrypt that keeps tests fast.
type plainHasher struct{}

func newPlainHasher() plainHasher {
	return plainHasher{}
}

func (plainHasher) Hash(plaintext string) (string, error) {
	return "plain:" + plaintext, nil
}

func (plainHasher) Compare(plaintext, hash string) bool {
	return hash == "plain:"+plaintext
}
