package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/askelio/askelio-backend/internal/apperrors"
	"github.com/askelio/askelio-backend/internal/core/domain"
	portsrepo "github.com/askelio/askelio-backend/internal/core/ports/repositories"
	portssvc "github.com/askelio/askelio-backend/internal/core/ports/services"
	"github.com/askelio/askelio-backend/internal/core/services"
	"github.com/askelio/askelio-backend/internal/dto"
	"github.com/askelio/askelio-backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CreditRepository ---

type MockCreditRepository struct {
	mock.Mock
}

var _ portsrepo.CreditRepositoryFacade = (*MockCreditRepository)(nil)

func (m *MockCreditRepository) AppendTransaction(ctx context.Context, entry domain.CreditTransaction) (*domain.CreditTransaction, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditTransaction), args.Error(1)
}

func (m *MockCreditRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.CreditTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditTransaction), args.Error(1)
}

func (m *MockCreditRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, kind *domain.TransactionKind, limit int, offset int) ([]domain.CreditTransaction, error) {
	args := m.Called(ctx, accountID, kind, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditTransaction), args.Error(1)
}

func (m *MockCreditRepository) ListTransactionsAfterToken(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		val := args.Get(1).(string)
		token = &val
	}
	return args.Get(0).([]domain.CreditTransaction), token, args.Error(2)
}

// --- Mock AccountReader ---

type MockAccountReader struct {
	mock.Mock
}

var _ portsrepo.AccountReader = (*MockAccountReader)(nil)

func (m *MockAccountReader) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountReader) FindAccountByOwner(ctx context.Context, ownerType domain.OwnerType, ownerID string) (*domain.Account, error) {
	args := m.Called(ctx, ownerType, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountReader) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock EventPublisher ---

type MockEventPublisher struct {
	mock.Mock
}

var _ portssvc.EventPublisher = (*MockEventPublisher)(nil)

func (m *MockEventPublisher) Publish(ctx context.Context, event any) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// --- Suite ---

type CreditServiceTestSuite struct {
	suite.Suite
	mockCreditRepo  *MockCreditRepository
	mockAccountRepo *MockAccountReader
	mockPublisher   *MockEventPublisher
	service         portssvc.CreditSvcFacade
	accountID       string
	userID          string
	ctx             context.Context
}

func (suite *CreditServiceTestSuite) SetupTest() {
	suite.mockCreditRepo = new(MockCreditRepository)
	suite.mockAccountRepo = new(MockAccountReader)
	suite.mockPublisher = new(MockEventPublisher)
	suite.service = services.NewCreditService(suite.mockCreditRepo, suite.mockAccountRepo, suite.mockPublisher)
	suite.accountID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.ctx = context.Background()
}

func (suite *CreditServiceTestSuite) TestAppendTransaction_Purchase() {
	amount := decimal.RequireFromString("500.00")
	req := dto.AppendTransactionRequest{
		AccountID:   suite.accountID,
		Amount:      amount,
		Kind:        domain.KindPurchase,
		Description: "Stripe top-up",
	}

	suite.mockCreditRepo.On("AppendTransaction", suite.ctx, mock.MatchedBy(func(entry domain.CreditTransaction) bool {
		return entry.AccountID == suite.accountID &&
			entry.Amount.Equal(amount) &&
			entry.Kind == domain.KindPurchase &&
			entry.TransactionID != "" &&
			entry.CreatedBy == suite.userID
	})).Return(&domain.CreditTransaction{
		TransactionID: uuid.NewString(),
		AccountID:     suite.accountID,
		Amount:        amount,
		Kind:          domain.KindPurchase,
		BalanceBefore: decimal.Zero,
		BalanceAfter:  amount,
	}, nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, mock.Anything).Return(nil).Once()

	entry, err := suite.service.AppendTransaction(suite.ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(entry.BalanceAfter.Equal(decimal.RequireFromString("500.00")))
	suite.mockCreditRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *CreditServiceTestSuite) TestAppendTransaction_ZeroAmount() {
	req := dto.AppendTransactionRequest{
		AccountID: suite.accountID,
		Amount:    decimal.Zero,
		Kind:      domain.KindPurchase,
	}

	_, err := suite.service.AppendTransaction(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockCreditRepo.AssertNotCalled(suite.T(), "AppendTransaction", mock.Anything, mock.Anything)
}

func (suite *CreditServiceTestSuite) TestAppendTransaction_SignMismatch() {
	cases := []struct {
		kind   domain.TransactionKind
		amount string
	}{
		{domain.KindPurchase, "-10"},
		{domain.KindBonus, "-1"},
		{domain.KindUsage, "0.25"},
	}
	for _, tc := range cases {
		req := dto.AppendTransactionRequest{
			AccountID: suite.accountID,
			Amount:    decimal.RequireFromString(tc.amount),
			Kind:      tc.kind,
		}
		_, err := suite.service.AppendTransaction(suite.ctx, req, suite.userID)
		suite.ErrorIs(err, apperrors.ErrInvalidAmount, "kind %s amount %s", tc.kind, tc.amount)
	}
	suite.mockCreditRepo.AssertNotCalled(suite.T(), "AppendTransaction", mock.Anything, mock.Anything)
}

func (suite *CreditServiceTestSuite) TestAppendTransaction_UnknownKind() {
	req := dto.AppendTransactionRequest{
		AccountID: suite.accountID,
		Amount:    decimal.RequireFromString("1"),
		Kind:      domain.TransactionKind("GIFT"),
	}

	_, err := suite.service.AppendTransaction(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CreditServiceTestSuite) TestAppendTransaction_InsufficientCredits() {
	req := dto.AppendTransactionRequest{
		AccountID: suite.accountID,
		Amount:    decimal.RequireFromString("-100"),
		Kind:      domain.KindUsage,
	}

	suite.mockCreditRepo.On("AppendTransaction", suite.ctx, mock.Anything).
		Return(nil, fmt.Errorf("%w: balance 50, requested 100", apperrors.ErrInsufficientCredits)).Once()

	_, err := suite.service.AppendTransaction(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrInsufficientCredits)
	suite.mockPublisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *CreditServiceTestSuite) TestAppendTransaction_PublishFailureIsSwallowed() {
	amount := decimal.RequireFromString("5")
	req := dto.AppendTransactionRequest{
		AccountID: suite.accountID,
		Amount:    amount,
		Kind:      domain.KindBonus,
	}

	suite.mockCreditRepo.On("AppendTransaction", suite.ctx, mock.Anything).
		Return(&domain.CreditTransaction{TransactionID: uuid.NewString(), AccountID: suite.accountID, Amount: amount, Kind: domain.KindBonus}, nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, mock.Anything).
		Return(assert.AnError).Once()

	_, err := suite.service.AppendTransaction(suite.ctx, req, suite.userID)

	suite.NoError(err)
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *CreditServiceTestSuite) TestGetBalance() {
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, suite.accountID).Return(&domain.Account{
		AccountID:         suite.accountID,
		Balance:           decimal.RequireFromString("12.75"),
		LifetimePurchased: decimal.RequireFromString("20"),
		LifetimeUsed:      decimal.RequireFromString("7.25"),
	}, nil).Once()

	balance, err := suite.service.GetBalance(suite.ctx, suite.accountID)

	suite.Require().NoError(err)
	suite.True(balance.Balance.Equal(decimal.RequireFromString("12.75")))
	suite.True(balance.LifetimePurchased.Equal(decimal.RequireFromString("20")))
	suite.True(balance.LifetimeUsed.Equal(decimal.RequireFromString("7.25")))
}

func (suite *CreditServiceTestSuite) TestGetBalance_AccountNotFound() {
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, suite.accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetBalance(suite.ctx, suite.accountID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CreditServiceTestSuite) TestListTransactions_AccountNotFound() {
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, suite.accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListTransactions(suite.ctx, suite.accountID, dto.ListTransactionsParams{Limit: 20})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCreditRepo.AssertNotCalled(suite.T(), "ListTransactionsByAccountID", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CreditServiceTestSuite) TestListTransactions_EmptyLedger() {
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, suite.accountID).
		Return(&domain.Account{AccountID: suite.accountID}, nil).Once()
	suite.mockCreditRepo.On("ListTransactionsByAccountID", suite.ctx, suite.accountID, (*domain.TransactionKind)(nil), 20, 0).
		Return([]domain.CreditTransaction{}, nil).Once()

	entries, err := suite.service.ListTransactions(suite.ctx, suite.accountID, dto.ListTransactionsParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Empty(entries)
}

func TestCreditService(t *testing.T) {
	suite.Run(t, new(CreditServiceTestSuite))
}

// --- Concurrency ---

// lockingLedger is an in-memory CreditRepositoryFacade whose AppendTransaction
// honors the same contract as the SQL implementation: appends against one
// account serialize, the overdraft rule is checked under the lock and balance
// snapshots are assigned atomically.
type lockingLedger struct {
	mu      sync.Mutex
	balance decimal.Decimal
	entries []domain.CreditTransaction
}

var _ portsrepo.CreditRepositoryFacade = (*lockingLedger)(nil)

func (l *lockingLedger) AppendTransaction(ctx context.Context, entry domain.CreditTransaction) (*domain.CreditTransaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	after := l.balance.Add(entry.Amount)
	if entry.Kind == domain.KindUsage && after.IsNegative() {
		return nil, fmt.Errorf("%w: balance %s", apperrors.ErrInsufficientCredits, l.balance)
	}

	entry.BalanceBefore = l.balance
	entry.BalanceAfter = after
	l.balance = after
	l.entries = append(l.entries, entry)
	return &entry, nil
}

func (l *lockingLedger) FindTransactionByID(ctx context.Context, transactionID string) (*domain.CreditTransaction, error) {
	return nil, apperrors.ErrNotFound
}

// newestFirst returns the entries ordered the way the SQL implementation
// orders them, created_at descending with transaction_id as tie-break.
func (l *lockingLedger) newestFirst() []domain.CreditTransaction {
	out := append([]domain.CreditTransaction{}, l.entries...)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].TransactionID > out[j].TransactionID
	})
	return out
}

func (l *lockingLedger) ListTransactionsByAccountID(ctx context.Context, accountID string, kind *domain.TransactionKind, limit int, offset int) ([]domain.CreditTransaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var out []domain.CreditTransaction
	for _, e := range l.newestFirst() {
		if kind != nil && e.Kind != *kind {
			continue
		}
		out = append(out, e)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (l *lockingLedger) ListTransactionsAfterToken(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	var cursorTime time.Time
	var cursorID string
	haveCursor := false
	if nextToken != nil && *nextToken != "" {
		t, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid page token", apperrors.ErrValidation)
		}
		cursorTime, cursorID = t, id
		haveCursor = true
	}

	var page []domain.CreditTransaction
	for _, e := range l.newestFirst() {
		if haveCursor {
			before := e.CreatedAt.Before(cursorTime) ||
				(e.CreatedAt.Equal(cursorTime) && e.TransactionID < cursorID)
			if !before {
				continue
			}
		}
		page = append(page, e)
		if len(page) == fetchLimit {
			break
		}
	}

	var outToken *string
	if len(page) == fetchLimit {
		page = page[:limit]
		last := page[len(page)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		outToken = &token
	}
	return page, outToken, nil
}

func TestAppendTransaction_ConcurrentUsage(t *testing.T) {
	accountID := uuid.NewString()
	userID := uuid.NewString()
	ledger := &lockingLedger{balance: decimal.NewFromInt(30)}
	svc := services.NewCreditService(ledger, new(MockAccountReader), nil)

	const workers = 50
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.AppendTransaction(context.Background(), dto.AppendTransactionRequest{
				AccountID: accountID,
				Amount:    decimal.NewFromInt(-1),
				Kind:      domain.KindUsage,
			}, userID)
		}(i)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, apperrors.ErrInsufficientCredits)
			rejected++
		}
	}

	// 30 credits cover exactly 30 of the 50 one-credit deductions.
	assert.Equal(t, 30, succeeded)
	assert.Equal(t, 20, rejected)
	assert.True(t, ledger.balance.IsZero(), "final balance should be zero, got %s", ledger.balance)

	// Each persisted entry saw a distinct balance snapshot.
	seen := make(map[string]bool)
	for _, entry := range ledger.entries {
		key := entry.BalanceBefore.String()
		assert.False(t, seen[key], "duplicate balance_before %s", key)
		seen[key] = true
		assert.True(t, entry.BalanceAfter.Equal(entry.BalanceBefore.Add(entry.Amount)))
	}
}

func TestAppendTransaction_OverdraftByOneCent(t *testing.T) {
	accountID := uuid.NewString()
	ledger := &lockingLedger{balance: decimal.RequireFromString("1.00")}
	svc := services.NewCreditService(ledger, new(MockAccountReader), nil)

	_, err := svc.AppendTransaction(context.Background(), dto.AppendTransactionRequest{
		AccountID: accountID,
		Amount:    decimal.RequireFromString("-1.01"),
		Kind:      domain.KindUsage,
	}, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrInsufficientCredits)

	// Draining the balance to exactly zero is allowed.
	entry, err := svc.AppendTransaction(context.Background(), dto.AppendTransactionRequest{
		AccountID: accountID,
		Amount:    decimal.RequireFromString("-1.00"),
		Kind:      domain.KindUsage,
	}, uuid.NewString())
	assert.NoError(t, err)
	assert.True(t, entry.BalanceAfter.IsZero())
}

func TestAppendTransaction_PurchaseThenUsageScenario(t *testing.T) {
	accountID := uuid.NewString()
	userID := uuid.NewString()
	ledger := &lockingLedger{balance: decimal.Zero}
	svc := services.NewCreditService(ledger, new(MockAccountReader), nil)

	record := func(amount string, kind domain.TransactionKind) (*domain.CreditTransaction, error) {
		return svc.AppendTransaction(context.Background(), dto.AppendTransactionRequest{
			AccountID: accountID,
			Amount:    decimal.RequireFromString(amount),
			Kind:      kind,
		}, userID)
	}

	entry, err := record("500.00", domain.KindPurchase)
	assert.NoError(t, err)
	assert.True(t, entry.BalanceAfter.Equal(decimal.RequireFromString("500.00")))

	entry, err = record("-0.15", domain.KindUsage)
	assert.NoError(t, err)
	assert.True(t, entry.BalanceAfter.Equal(decimal.RequireFromString("499.85")))

	entry, err = record("-0.30", domain.KindUsage)
	assert.NoError(t, err)
	assert.True(t, entry.BalanceAfter.Equal(decimal.RequireFromString("499.55")))

	_, err = record("-1000.00", domain.KindUsage)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientCredits)
	assert.True(t, ledger.balance.Equal(decimal.RequireFromString("499.55")))

	// The surviving entries replay to the final balance.
	sum := decimal.Zero
	for _, e := range ledger.entries {
		sum = sum.Add(e.Amount)
	}
	assert.True(t, sum.Equal(ledger.balance))
}

// --- Pagination ---

// seedLedger appends n one-credit purchases through the service and returns
// the service, the backing fake and the set of persisted transaction IDs.
func seedLedger(t *testing.T, accountID string, n int) (portssvc.CreditSvcFacade, *lockingLedger, map[string]bool) {
	t.Helper()

	ledger := &lockingLedger{balance: decimal.Zero}
	accountReader := new(MockAccountReader)
	accountReader.On("FindAccountByID", mock.Anything, accountID).
		Return(&domain.Account{AccountID: accountID}, nil)
	svc := services.NewCreditService(ledger, accountReader, nil)

	ids := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		entry, err := svc.AppendTransaction(context.Background(), dto.AppendTransactionRequest{
			AccountID: accountID,
			Amount:    decimal.NewFromInt(1),
			Kind:      domain.KindPurchase,
		}, uuid.NewString())
		assert.NoError(t, err)
		ids[entry.TransactionID] = true
	}
	return svc, ledger, ids
}

// assertNewestFirst checks created_at descending with transaction_id as the
// tie-break, the order both list queries promise.
func assertNewestFirst(t *testing.T, entries []domain.CreditTransaction) {
	t.Helper()
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if prev.CreatedAt.Equal(cur.CreatedAt) {
			assert.Greater(t, prev.TransactionID, cur.TransactionID)
		} else {
			assert.True(t, prev.CreatedAt.After(cur.CreatedAt),
				"entry %d created after its predecessor", i)
		}
	}
}

func TestListTransactions_OffsetPagination(t *testing.T) {
	accountID := uuid.NewString()
	svc, _, seeded := seedLedger(t, accountID, 7)

	var all []domain.CreditTransaction
	for _, offset := range []int{0, 3, 6} {
		page, err := svc.ListTransactions(context.Background(), accountID, dto.ListTransactionsParams{
			Limit:  3,
			Offset: offset,
		})
		assert.NoError(t, err)
		all = append(all, page...)
	}

	// Three pages of 3+3+1 cover all seeded entries exactly once.
	assert.Len(t, all, 7)
	seen := make(map[string]bool)
	for _, e := range all {
		assert.False(t, seen[e.TransactionID], "entry %s appeared on two pages", e.TransactionID)
		seen[e.TransactionID] = true
		assert.True(t, seeded[e.TransactionID])
	}
	assertNewestFirst(t, all)

	// Paging past the end yields an empty page, not an error.
	page, err := svc.ListTransactions(context.Background(), accountID, dto.ListTransactionsParams{
		Limit:  3,
		Offset: 7,
	})
	assert.NoError(t, err)
	assert.Empty(t, page)
}

func TestGetStatement_CursorPagination(t *testing.T) {
	accountID := uuid.NewString()
	svc, _, seeded := seedLedger(t, accountID, 7)

	var all []domain.CreditTransaction
	var token *string
	pages := 0
	for {
		page, next, err := svc.GetStatement(context.Background(), accountID, 3, token)
		assert.NoError(t, err)
		all = append(all, page...)
		pages++
		if next == nil {
			assert.Len(t, page, 1, "final page holds the remainder")
			break
		}
		assert.Len(t, page, 3)
		token = next
	}

	assert.Equal(t, 3, pages)
	assert.Len(t, all, 7)
	seen := make(map[string]bool)
	for _, e := range all {
		assert.False(t, seen[e.TransactionID], "entry %s appeared on two pages", e.TransactionID)
		seen[e.TransactionID] = true
		assert.True(t, seeded[e.TransactionID])
	}
	assertNewestFirst(t, all)
}

func TestGetStatement_TokenBoundary(t *testing.T) {
	accountID := uuid.NewString()
	svc, _, _ := seedLedger(t, accountID, 3)

	// Exactly limit rows left means no further page and no token.
	page, token, err := svc.GetStatement(context.Background(), accountID, 3, nil)
	assert.NoError(t, err)
	assert.Len(t, page, 3)
	assert.Nil(t, token)

	// One row beyond the limit emits a token positioned at row limit.
	_, err = svc.AppendTransaction(context.Background(), dto.AppendTransactionRequest{
		AccountID: accountID,
		Amount:    decimal.NewFromInt(1),
		Kind:      domain.KindPurchase,
	}, uuid.NewString())
	assert.NoError(t, err)

	page, token, err = svc.GetStatement(context.Background(), accountID, 3, nil)
	assert.NoError(t, err)
	assert.Len(t, page, 3)
	assert.NotNil(t, token)

	rest, token, err := svc.GetStatement(context.Background(), accountID, 3, token)
	assert.NoError(t, err)
	assert.Len(t, rest, 1)
	assert.Nil(t, token)
	assert.True(t, rest[0].CreatedAt.Before(page[len(page)-1].CreatedAt) ||
		rest[0].CreatedAt.Equal(page[len(page)-1].CreatedAt))
}
