package usecases

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"questhub.backend/internal/domain/entities"
	domainerrors "questhub.backend/internal/domain/errors"
)

// fakeStore backs the stub repositories for usecase tests.
type fakeStore struct {
	users    map[uuid.UUID]*entities.User
	balances map[uuid.UUID]*entities.UserBalance
	quests   map[uuid.UUID]*entities.Quest
	txs      map[uuid.UUID]*entities.Transaction

	failBalanceUpdate bool
	stalePendingRead  bool
	seq               int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[uuid.UUID]*entities.User),
		balances: make(map[uuid.UUID]*entities.UserBalance),
		quests:   make(map[uuid.UUID]*entities.Quest),
		txs:      make(map[uuid.UUID]*entities.Transaction),
	}
}

type fakeBalanceRepo struct{ s *fakeStore }

func (r *fakeBalanceRepo) Create(_ context.Context, b *entities.UserBalance) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	cp := *b
	r.s.balances[b.UserID] = &cp
	return nil
}

func (r *fakeBalanceRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.UserBalance, error) {
	b, ok := r.s.balances[userID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBalanceRepo) Update(_ context.Context, b *entities.UserBalance) error {
	if r.s.failBalanceUpdate {
		return domainerrors.ErrNotFound
	}
	if _, ok := r.s.balances[b.UserID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *b
	r.s.balances[b.UserID] = &cp
	return nil
}

func (r *fakeBalanceRepo) StampDailyReset(_ context.Context, userID uuid.UUID, at time.Time) error {
	b, ok := r.s.balances[userID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	b.LastDailyReset = at
	return nil
}

type fakeQuestRepo struct{ s *fakeStore }

func (r *fakeQuestRepo) CreateBatch(_ context.Context, quests []*entities.Quest) error {
	for _, q := range quests {
		if q.ID == uuid.Nil {
			q.ID = uuid.New()
		}
		r.s.seq++
		q.CreatedAt = time.Unix(int64(r.s.seq), 0)
		cp := *q
		r.s.quests[q.ID] = &cp
	}
	return nil
}

func (r *fakeQuestRepo) GetByUserID(_ context.Context, userID uuid.UUID) ([]*entities.Quest, error) {
	var out []*entities.Quest
	for _, q := range r.s.quests {
		if q.UserID == userID {
			cp := *q
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeQuestRepo) GetByID(_ context.Context, userID, questID uuid.UUID) (*entities.Quest, error) {
	q, ok := r.s.quests[questID]
	if !ok || q.UserID != userID {
		return nil, domainerrors.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (r *fakeQuestRepo) MarkCompleted(_ context.Context, quest *entities.Quest) error {
	q, ok := r.s.quests[quest.ID]
	if !ok || q.IsCompleted {
		return domainerrors.ErrNotFound
	}
	q.IsCompleted = true
	quest.IsCompleted = true
	return nil
}

func (r *fakeQuestRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	for id, q := range r.s.quests {
		if q.UserID == userID {
			delete(r.s.quests, id)
		}
	}
	return nil
}

type fakeTxRepo struct{ s *fakeStore }

func (r *fakeTxRepo) Create(_ context.Context, tx *entities.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	r.s.seq++
	tx.CreatedAt = time.Unix(int64(r.s.seq), 0)
	cp := *tx
	r.s.txs[tx.ID] = &cp
	return nil
}

func (r *fakeTxRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Transaction, error) {
	tx, ok := r.s.txs[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *tx
	if r.s.stalePendingRead {
		// Simulates a snapshot read racing a concurrent resolution.
		cp.Status = entities.TransactionStatusPending
	}
	return &cp, nil
}

func (r *fakeTxRepo) GetByUserID(_ context.Context, userID uuid.UUID) ([]*entities.Transaction, error) {
	var out []*entities.Transaction
	for _, tx := range r.s.txs {
		if tx.UserID == userID {
			cp := *tx
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeTxRepo) ListPending(_ context.Context) ([]*entities.PendingTransaction, error) {
	var out []*entities.PendingTransaction
	for _, tx := range r.s.txs {
		if tx.Status != entities.TransactionStatusPending {
			continue
		}
		email := ""
		if u, ok := r.s.users[tx.UserID]; ok {
			email = u.Email
		}
		out = append(out, &entities.PendingTransaction{Transaction: *tx, UserEmail: email})
	}
	return out, nil
}

func (r *fakeTxRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entities.TransactionStatus) error {
	tx, ok := r.s.txs[id]
	if !ok || tx.Status != entities.TransactionStatusPending {
		return domainerrors.ErrNotFound
	}
	tx.Status = status
	return nil
}

func (r *fakeTxRepo) HasCompletedDeposit(_ context.Context, userID uuid.UUID) (bool, error) {
	for _, tx := range r.s.txs {
		if tx.UserID == userID && tx.Type == entities.TransactionTypeDeposit && tx.Status == entities.TransactionStatusCompleted {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Create(_ context.Context, u *entities.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.s.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *entities.User) error {
	r.s.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(r.s.users, id)
	return nil
}

type passUow struct{}

func (passUow) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubRand struct{ v float64 }

func (s stubRand) Float64() float64 { return s.v }

func newLedgerFixture() (*fakeStore, *LedgerUsecase) {
	s := newFakeStore()
	ledger := NewLedgerUsecase(&fakeBalanceRepo{s}, &fakeQuestRepo{s}, &fakeTxRepo{s}, passUow{})
	return s, ledger
}

func stubTimeNow(t *testing.T, fixed time.Time) {
	orig := timeNow
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = orig })
}
