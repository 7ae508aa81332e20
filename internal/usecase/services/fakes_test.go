package services_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/pfm-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
)

// fakeLedger mirrors the storage-side posting contract in memory: it checks
// the touched accounts exist, enforces sufficiency against the current
// balance, and applies all deltas or none.
type fakeLedger struct {
	balances     map[string]decimal.Decimal
	transactions []domain.Transaction
	loans        []domain.Loan
	investments  []domain.Investment
	policies     []domain.InsurancePolicy
	forcedErr    error
	seq          int
}

func newFakeLedger(balances map[string]decimal.Decimal) *fakeLedger {
	if balances == nil {
		balances = map[string]decimal.Decimal{}
	}
	return &fakeLedger{balances: balances}
}

func (f *fakeLedger) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

func (f *fakeLedger) debit(accountID string, amount decimal.Decimal) error {
	balance, ok := f.balances[accountID]
	if !ok {
		return commons.ErrRecordNotFound
	}
	if balance.LessThan(amount) {
		return &commons.InsufficientFundsError{Available: balance}
	}
	f.balances[accountID] = balance.Sub(amount)
	return nil
}

func (f *fakeLedger) credit(accountID string, amount decimal.Decimal) error {
	balance, ok := f.balances[accountID]
	if !ok {
		return commons.ErrRecordNotFound
	}
	f.balances[accountID] = balance.Add(amount)
	return nil
}

func (f *fakeLedger) PostTransaction(ctx context.Context, txn domain.Transaction) (domain.Transaction, error) {
	if f.forcedErr != nil {
		return domain.Transaction{}, f.forcedErr
	}

	switch txn.Type {
	case domain.TransactionTypeDeposit:
		if err := f.credit(*txn.DestinationAccountID, txn.Amount); err != nil {
			return domain.Transaction{}, err
		}
	case domain.TransactionTypeWithdraw:
		if err := f.debit(*txn.SourceAccountID, txn.TotalWithFee()); err != nil {
			return domain.Transaction{}, err
		}
	case domain.TransactionTypeTransfer:
		if _, ok := f.balances[*txn.DestinationAccountID]; !ok {
			return domain.Transaction{}, commons.ErrRecordNotFound
		}
		if err := f.debit(*txn.SourceAccountID, txn.TotalWithFee()); err != nil {
			return domain.Transaction{}, err
		}
		_ = f.credit(*txn.DestinationAccountID, txn.Amount)
	}

	txn.ID = f.nextID("txn")
	txn.CreatedAt = time.Now().UTC()
	f.transactions = append(f.transactions, txn)
	return txn, nil
}

func (f *fakeLedger) CreateLoan(ctx context.Context, loan domain.Loan, booking domain.Transaction) (domain.Loan, domain.Transaction, error) {
	if f.forcedErr != nil {
		return domain.Loan{}, domain.Transaction{}, f.forcedErr
	}
	if err := f.credit(loan.BankAccountID, loan.Amount); err != nil {
		return domain.Loan{}, domain.Transaction{}, err
	}
	loan.ID = f.nextID("loan")
	booking.ID = f.nextID("txn")
	booking.CreatedAt = time.Now().UTC()
	f.loans = append(f.loans, loan)
	f.transactions = append(f.transactions, booking)
	return loan, booking, nil
}

func (f *fakeLedger) CreateInvestment(ctx context.Context, investment domain.Investment) (domain.Investment, error) {
	if f.forcedErr != nil {
		return domain.Investment{}, f.forcedErr
	}
	if err := f.debit(investment.BankAccountID, investment.Amount); err != nil {
		return domain.Investment{}, err
	}
	investment.ID = f.nextID("inv")
	f.investments = append(f.investments, investment)
	return investment, nil
}

func (f *fakeLedger) CreateInsurancePolicy(ctx context.Context, policy domain.InsurancePolicy, premium decimal.Decimal) (domain.InsurancePolicy, error) {
	if f.forcedErr != nil {
		return domain.InsurancePolicy{}, f.forcedErr
	}
	if err := f.debit(policy.BankAccountID, premium); err != nil {
		return domain.InsurancePolicy{}, err
	}
	policy.ID = f.nextID("pol")
	f.policies = append(f.policies, policy)
	return policy, nil
}

func transactionFixture(id, source, destination string) domain.Transaction {
	return domain.Transaction{
		ID:                   id,
		Reference:            "ref-" + id,
		Type:                 domain.TransactionTypeTransfer,
		Amount:               decimal.RequireFromString("10.00"),
		Fee:                  decimal.Zero,
		SourceAccountID:      &source,
		DestinationAccountID: &destination,
		Description:          "fixture",
		CreatedAt:            time.Now().UTC(),
	}
}

type fakeAccountRepo struct {
	accounts  map[string]domain.Account
	deleteErr error
	seq       int
}

func newFakeAccountRepo(accounts ...domain.Account) *fakeAccountRepo {
	repo := &fakeAccountRepo{accounts: map[string]domain.Account{}}
	for _, account := range accounts {
		repo.accounts[account.ID] = account
	}
	return repo
}

func (f *fakeAccountRepo) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	f.seq++
	account.ID = fmt.Sprintf("acc-%d", f.seq)
	account.CreatedAt = time.Now().UTC()
	f.accounts[account.ID] = account
	return account, nil
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id string) (domain.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return domain.Account{}, commons.ErrRecordNotFound
	}
	return account, nil
}

func (f *fakeAccountRepo) List(ctx context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(f.accounts))
	for _, account := range f.accounts {
		out = append(out, account)
	}
	return out, nil
}

func (f *fakeAccountRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.accounts[id]; !ok {
		return commons.ErrRecordNotFound
	}
	delete(f.accounts, id)
	return nil
}

type fakeTransactionRepo struct {
	transactions map[string]domain.Transaction
}

func newFakeTransactionRepo(transactions ...domain.Transaction) *fakeTransactionRepo {
	repo := &fakeTransactionRepo{transactions: map[string]domain.Transaction{}}
	for _, txn := range transactions {
		repo.transactions[txn.ID] = txn
	}
	return repo
}

func (f *fakeTransactionRepo) GetByID(ctx context.Context, id string) (domain.Transaction, error) {
	txn, ok := f.transactions[id]
	if !ok {
		return domain.Transaction{}, commons.ErrRecordNotFound
	}
	return txn, nil
}

func (f *fakeTransactionRepo) List(ctx context.Context, filter repo_interfaces.TransactionFilter) ([]domain.Transaction, error) {
	matches := func(txn domain.Transaction) bool {
		ref := func(v *string) string {
			if v == nil {
				return ""
			}
			return *v
		}
		if filter.InvolvedAccountID != "" {
			return ref(txn.SourceAccountID) == filter.InvolvedAccountID ||
				ref(txn.DestinationAccountID) == filter.InvolvedAccountID
		}
		if filter.SourceAccountID != "" && ref(txn.SourceAccountID) != filter.SourceAccountID {
			return false
		}
		if filter.DestinationAccountID != "" && ref(txn.DestinationAccountID) != filter.DestinationAccountID {
			return false
		}
		return true
	}

	out := make([]domain.Transaction, 0, len(f.transactions))
	for _, txn := range f.transactions {
		if matches(txn) {
			out = append(out, txn)
		}
	}
	return out, nil
}

type fakeLoanRepo struct {
	loans map[string]domain.Loan
}

func newFakeLoanRepo(loans ...domain.Loan) *fakeLoanRepo {
	repo := &fakeLoanRepo{loans: map[string]domain.Loan{}}
	for _, loan := range loans {
		repo.loans[loan.ID] = loan
	}
	return repo
}

func (f *fakeLoanRepo) GetByID(ctx context.Context, id string) (domain.Loan, error) {
	loan, ok := f.loans[id]
	if !ok {
		return domain.Loan{}, commons.ErrRecordNotFound
	}
	return loan, nil
}

func (f *fakeLoanRepo) List(ctx context.Context, bankAccountID string) ([]domain.Loan, error) {
	out := make([]domain.Loan, 0, len(f.loans))
	for _, loan := range f.loans {
		if bankAccountID == "" || loan.BankAccountID == bankAccountID {
			out = append(out, loan)
		}
	}
	return out, nil
}

type fakeInvestmentRepo struct {
	investments map[string]domain.Investment
}

func newFakeInvestmentRepo(investments ...domain.Investment) *fakeInvestmentRepo {
	repo := &fakeInvestmentRepo{investments: map[string]domain.Investment{}}
	for _, investment := range investments {
		repo.investments[investment.ID] = investment
	}
	return repo
}

func (f *fakeInvestmentRepo) GetByID(ctx context.Context, id string) (domain.Investment, error) {
	investment, ok := f.investments[id]
	if !ok {
		return domain.Investment{}, commons.ErrRecordNotFound
	}
	return investment, nil
}

func (f *fakeInvestmentRepo) List(ctx context.Context, bankAccountID string) ([]domain.Investment, error) {
	out := make([]domain.Investment, 0, len(f.investments))
	for _, investment := range f.investments {
		if bankAccountID == "" || investment.BankAccountID == bankAccountID {
			out = append(out, investment)
		}
	}
	return out, nil
}

func (f *fakeInvestmentRepo) UpdateStatus(ctx context.Context, id string, status domain.InvestmentStatus) error {
	investment, ok := f.investments[id]
	if !ok {
		return commons.ErrRecordNotFound
	}
	if investment.Status == status {
		return &commons.InvalidStatusTransitionError{Status: string(status)}
	}
	investment.Status = status
	f.investments[id] = investment
	return nil
}

type fakeInsurancePolicyRepo struct {
	policies map[string]domain.InsurancePolicy
}

func newFakeInsurancePolicyRepo(policies ...domain.InsurancePolicy) *fakeInsurancePolicyRepo {
	repo := &fakeInsurancePolicyRepo{policies: map[string]domain.InsurancePolicy{}}
	for _, policy := range policies {
		repo.policies[policy.ID] = policy
	}
	return repo
}

func (f *fakeInsurancePolicyRepo) GetByID(ctx context.Context, id string) (domain.InsurancePolicy, error) {
	policy, ok := f.policies[id]
	if !ok {
		return domain.InsurancePolicy{}, commons.ErrRecordNotFound
	}
	return policy, nil
}

func (f *fakeInsurancePolicyRepo) List(ctx context.Context, bankAccountID string) ([]domain.InsurancePolicy, error) {
	out := make([]domain.InsurancePolicy, 0, len(f.policies))
	for _, policy := range f.policies {
		if bankAccountID == "" || policy.BankAccountID == bankAccountID {
			out = append(out, policy)
		}
	}
	return out, nil
}

func (f *fakeInsurancePolicyRepo) UpdateStatus(ctx context.Context, id string, status domain.InsurancePolicyStatus) error {
	policy, ok := f.policies[id]
	if !ok {
		return commons.ErrRecordNotFound
	}
	if policy.Status == status {
		return &commons.InvalidStatusTransitionError{Status: string(status)}
	}
	policy.Status = status
	f.policies[id] = policy
	return nil
}

type fakeLoanProductRepo struct {
	products map[string]domain.LoanProduct
}

func newFakeLoanProductRepo(products ...domain.LoanProduct) *fakeLoanProductRepo {
	repo := &fakeLoanProductRepo{products: map[string]domain.LoanProduct{}}
	for _, product := range products {
		repo.products[product.ID] = product
	}
	return repo
}

func (f *fakeLoanProductRepo) Create(ctx context.Context, product domain.LoanProduct) (domain.LoanProduct, error) {
	product.ID = fmt.Sprintf("lp-%d", len(f.products)+1)
	f.products[product.ID] = product
	return product, nil
}

func (f *fakeLoanProductRepo) GetByID(ctx context.Context, id string) (domain.LoanProduct, error) {
	product, ok := f.products[id]
	if !ok {
		return domain.LoanProduct{}, commons.ErrRecordNotFound
	}
	return product, nil
}

func (f *fakeLoanProductRepo) List(ctx context.Context) ([]domain.LoanProduct, error) {
	out := make([]domain.LoanProduct, 0, len(f.products))
	for _, product := range f.products {
		out = append(out, product)
	}
	return out, nil
}

type fakeInvestmentProductRepo struct {
	products map[string]domain.InvestmentProduct
}

func newFakeInvestmentProductRepo(products ...domain.InvestmentProduct) *fakeInvestmentProductRepo {
	repo := &fakeInvestmentProductRepo{products: map[string]domain.InvestmentProduct{}}
	for _, product := range products {
		repo.products[product.ID] = product
	}
	return repo
}

func (f *fakeInvestmentProductRepo) Create(ctx context.Context, product domain.InvestmentProduct) (domain.InvestmentProduct, error) {
	product.ID = fmt.Sprintf("ip-%d", len(f.products)+1)
	f.products[product.ID] = product
	return product, nil
}

func (f *fakeInvestmentProductRepo) GetByID(ctx context.Context, id string) (domain.InvestmentProduct, error) {
	product, ok := f.products[id]
	if !ok {
		return domain.InvestmentProduct{}, commons.ErrRecordNotFound
	}
	return product, nil
}

func (f *fakeInvestmentProductRepo) List(ctx context.Context) ([]domain.InvestmentProduct, error) {
	out := make([]domain.InvestmentProduct, 0, len(f.products))
	for _, product := range f.products {
		out = append(out, product)
	}
	return out, nil
}

type fakeInsurancePolicyProductRepo struct {
	products map[string]domain.InsurancePolicyProduct
}

func newFakeInsurancePolicyProductRepo(products ...domain.InsurancePolicyProduct) *fakeInsurancePolicyProductRepo {
	repo := &fakeInsurancePolicyProductRepo{products: map[string]domain.InsurancePolicyProduct{}}
	for _, product := range products {
		repo.products[product.ID] = product
	}
	return repo
}

func (f *fakeInsurancePolicyProductRepo) Create(ctx context.Context, product domain.InsurancePolicyProduct) (domain.InsurancePolicyProduct, error) {
	product.ID = fmt.Sprintf("pp-%d", len(f.products)+1)
	f.products[product.ID] = product
	return product, nil
}

func (f *fakeInsurancePolicyProductRepo) GetByID(ctx context.Context, id string) (domain.InsurancePolicyProduct, error) {
	product, ok := f.products[id]
	if !ok {
		return domain.InsurancePolicyProduct{}, commons.ErrRecordNotFound
	}
	return product, nil
}

func (f *fakeInsurancePolicyProductRepo) List(ctx context.Context) ([]domain.InsurancePolicyProduct, error) {
	out := make([]domain.InsurancePolicyProduct, 0, len(f.products))
	for _, product := range f.products {
		out = append(out, product)
	}
	return out, nil
}

type fakeUserProfileRepo struct {
	profiles  map[string]domain.UserProfile
	createErr error
	seq       int
}

func newFakeUserProfileRepo(profiles ...domain.UserProfile) *fakeUserProfileRepo {
	repo := &fakeUserProfileRepo{profiles: map[string]domain.UserProfile{}}
	for _, profile := range profiles {
		repo.profiles[profile.ID] = profile
	}
	return repo
}

func (f *fakeUserProfileRepo) Create(ctx context.Context, profile domain.UserProfile) (domain.UserProfile, error) {
	if f.createErr != nil {
		return domain.UserProfile{}, f.createErr
	}
	for _, existing := range f.profiles {
		if strings.EqualFold(existing.Email, profile.Email) {
			return domain.UserProfile{}, commons.ErrDuplicateRecord
		}
	}
	f.seq++
	profile.ID = fmt.Sprintf("usr-%d", f.seq)
	profile.CreatedAt = time.Now().UTC()
	f.profiles[profile.ID] = profile
	return profile, nil
}

func (f *fakeUserProfileRepo) GetByID(ctx context.Context, id string) (domain.UserProfile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return domain.UserProfile{}, commons.ErrRecordNotFound
	}
	return profile, nil
}

type fakeBankRepo struct {
	banks map[string]domain.Bank
	seq   int
}

func newFakeBankRepo(banks ...domain.Bank) *fakeBankRepo {
	repo := &fakeBankRepo{banks: map[string]domain.Bank{}}
	for _, bank := range banks {
		repo.banks[bank.ID] = bank
	}
	return repo
}

func (f *fakeBankRepo) Create(ctx context.Context, bank domain.Bank) (domain.Bank, error) {
	f.seq++
	bank.ID = fmt.Sprintf("bank-%d", f.seq)
	f.banks[bank.ID] = bank
	return bank, nil
}

func (f *fakeBankRepo) GetByID(ctx context.Context, id string) (domain.Bank, error) {
	bank, ok := f.banks[id]
	if !ok {
		return domain.Bank{}, commons.ErrRecordNotFound
	}
	return bank, nil
}

func (f *fakeBankRepo) List(ctx context.Context) ([]domain.Bank, error) {
	out := make([]domain.Bank, 0, len(f.banks))
	for _, bank := range f.banks {
		out = append(out, bank)
	}
	return out, nil
}
