package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"questhub.backend/internal/domain/entities"
	domainerrors "questhub.backend/internal/domain/errors"
	"questhub.backend/internal/interfaces/http/middleware"
	"questhub.backend/internal/usecases"
)

// memStore backs the stub repositories with plain maps so handler tests
// exercise the real usecases end to end without a database.
type memStore struct {
	users    map[uuid.UUID]*entities.User
	balances map[uuid.UUID]*entities.UserBalance
	quests   map[uuid.UUID]*entities.Quest
	txs      map[uuid.UUID]*entities.Transaction
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[uuid.UUID]*entities.User),
		balances: make(map[uuid.UUID]*entities.UserBalance),
		quests:   make(map[uuid.UUID]*entities.Quest),
		txs:      make(map[uuid.UUID]*entities.Transaction),
	}
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(_ context.Context, u *entities.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	r.s.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *memUserRepo) Update(_ context.Context, u *entities.User) error {
	r.s.users[u.ID] = u
	return nil
}

func (r *memUserRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(r.s.users, id)
	return nil
}

type memBalanceRepo struct{ s *memStore }

func (r *memBalanceRepo) Create(_ context.Context, b *entities.UserBalance) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.s.balances[b.UserID] = b
	return nil
}

func (r *memBalanceRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.UserBalance, error) {
	b, ok := r.s.balances[userID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memBalanceRepo) Update(_ context.Context, b *entities.UserBalance) error {
	if _, ok := r.s.balances[b.UserID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *b
	r.s.balances[b.UserID] = &cp
	return nil
}

func (r *memBalanceRepo) StampDailyReset(_ context.Context, userID uuid.UUID, at time.Time) error {
	b, ok := r.s.balances[userID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	b.LastDailyReset = at
	return nil
}

type memQuestRepo struct{ s *memStore }

func (r *memQuestRepo) CreateBatch(_ context.Context, quests []*entities.Quest) error {
	for _, q := range quests {
		if q.ID == uuid.Nil {
			q.ID = uuid.New()
		}
		q.CreatedAt = time.Now()
		cp := *q
		r.s.quests[q.ID] = &cp
	}
	return nil
}

func (r *memQuestRepo) GetByUserID(_ context.Context, userID uuid.UUID) ([]*entities.Quest, error) {
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

func (r *memQuestRepo) GetByID(_ context.Context, userID, questID uuid.UUID) (*entities.Quest, error) {
	q, ok := r.s.quests[questID]
	if !ok || q.UserID != userID {
		return nil, domainerrors.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (r *memQuestRepo) MarkCompleted(_ context.Context, quest *entities.Quest) error {
	q, ok := r.s.quests[quest.ID]
	if !ok || q.IsCompleted {
		return domainerrors.ErrNotFound
	}
	q.IsCompleted = true
	quest.IsCompleted = true
	return nil
}

func (r *memQuestRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	for id, q := range r.s.quests {
		if q.UserID == userID {
			delete(r.s.quests, id)
		}
	}
	return nil
}

type memTxRepo struct{ s *memStore }

func (r *memTxRepo) Create(_ context.Context, tx *entities.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	tx.CreatedAt = time.Now()
	cp := *tx
	r.s.txs[tx.ID] = &cp
	return nil
}

func (r *memTxRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Transaction, error) {
	tx, ok := r.s.txs[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *tx
	return &cp, nil
}

func (r *memTxRepo) GetByUserID(_ context.Context, userID uuid.UUID) ([]*entities.Transaction, error) {
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

func (r *memTxRepo) ListPending(_ context.Context) ([]*entities.PendingTransaction, error) {
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

func (r *memTxRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entities.TransactionStatus) error {
	tx, ok := r.s.txs[id]
	if !ok || tx.Status != entities.TransactionStatusPending {
		return domainerrors.ErrNotFound
	}
	tx.Status = status
	tx.UpdatedAt = time.Now()
	return nil
}

func (r *memTxRepo) HasCompletedDeposit(_ context.Context, userID uuid.UUID) (bool, error) {
	for _, tx := range r.s.txs {
		if tx.UserID == userID && tx.Type == entities.TransactionTypeDeposit && tx.Status == entities.TransactionStatusCompleted {
			return true, nil
		}
	}
	return false, nil
}

type noopUow struct{}

func (noopUow) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedRand always returns the same value: 0.1 forces a win, 0.9 a loss.
type fixedRand struct{ v float64 }

func (f fixedRand) Float64() float64 { return f.v }

type testEnv struct {
	store    *memStore
	ledger   *usecases.LedgerUsecase
	quest    *usecases.QuestUsecase
	tx       *usecases.TransactionUsecase
	roulette *usecases.RouletteUsecase
}

func newTestEnv(rng usecases.RandSource) *testEnv {
	s := newMemStore()
	balanceRepo := &memBalanceRepo{s}
	questRepo := &memQuestRepo{s}
	txRepo := &memTxRepo{s}
	uow := noopUow{}

	ledger := usecases.NewLedgerUsecase(balanceRepo, questRepo, txRepo, uow)
	return &testEnv{
		store:    s,
		ledger:   ledger,
		quest:    usecases.NewQuestUsecase(ledger, questRepo, balanceRepo, uow),
		tx:       usecases.NewTransactionUsecase(txRepo, ledger, uow),
		roulette: usecases.NewRouletteUsecase(ledger, balanceRepo, rng),
	}
}

func timeNowUTC() time.Time { return time.Now().UTC() }

// asUser injects the authenticated identity the way AuthMiddleware would.
func asUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
	}
}
