package service

import (
	"context"
	"time"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/internal/domain/repository"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/google/uuid"
)

// Function-field mocks: tests set only the methods they expect to be hit.

type mockResidentRepo struct {
	createFn        func(ctx context.Context, resident *entity.Resident) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.Resident, error)
	listFn          func(ctx context.Context, params *pagination.PaginationParams, filter repository.ResidentFilter) ([]entity.Resident, int64, error)
	updateFn        func(ctx context.Context, resident *entity.Resident) error
	deleteFn        func(ctx context.Context, id uuid.UUID) error
	countFn         func(ctx context.Context) (int64, error)
	countByStatusFn func(ctx context.Context, status enum.ResidentStatus) (int64, error)
}

func (m *mockResidentRepo) Create(ctx context.Context, resident *entity.Resident) error {
	return m.createFn(ctx, resident)
}

func (m *mockResidentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockResidentRepo) List(ctx context.Context, params *pagination.PaginationParams, filter repository.ResidentFilter) ([]entity.Resident, int64, error) {
	return m.listFn(ctx, params, filter)
}

func (m *mockResidentRepo) Update(ctx context.Context, resident *entity.Resident) error {
	return m.updateFn(ctx, resident)
}

func (m *mockResidentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockResidentRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

func (m *mockResidentRepo) CountByStatus(ctx context.Context, status enum.ResidentStatus) (int64, error) {
	return m.countByStatusFn(ctx, status)
}

type mockInvoiceRepo struct {
	createFn            func(ctx context.Context, invoice *entity.Invoice) error
	getByIDFn           func(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	listFn              func(ctx context.Context, params *pagination.PaginationParams, filter repository.InvoiceFilter) ([]entity.Invoice, int64, error)
	listByResidentFn    func(ctx context.Context, residentID uuid.UUID) ([]entity.Invoice, error)
	updateFn            func(ctx context.Context, invoice *entity.Invoice) error
	updateWithVersionFn func(ctx context.Context, invoice *entity.Invoice, expectedVersion int) error
	deleteFn            func(ctx context.Context, id uuid.UUID) error
	markOverdueFn       func(ctx context.Context, asOf time.Time) (int64, error)
}

func (m *mockInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	return m.createFn(ctx, invoice)
}

func (m *mockInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockInvoiceRepo) List(ctx context.Context, params *pagination.PaginationParams, filter repository.InvoiceFilter) ([]entity.Invoice, int64, error) {
	return m.listFn(ctx, params, filter)
}

func (m *mockInvoiceRepo) ListByResident(ctx context.Context, residentID uuid.UUID) ([]entity.Invoice, error) {
	return m.listByResidentFn(ctx, residentID)
}

func (m *mockInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	return m.updateFn(ctx, invoice)
}

func (m *mockInvoiceRepo) UpdateWithVersion(ctx context.Context, invoice *entity.Invoice, expectedVersion int) error {
	return m.updateWithVersionFn(ctx, invoice, expectedVersion)
}

func (m *mockInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockInvoiceRepo) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	if m.markOverdueFn == nil {
		return 0, nil
	}
	return m.markOverdueFn(ctx, asOf)
}

type mockTransactionRepo struct {
	createFn         func(ctx context.Context, transaction *entity.Transaction) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	listFn           func(ctx context.Context, params *pagination.PaginationParams, filter repository.TransactionFilter) ([]entity.Transaction, int64, error)
	listByInvoiceFn  func(ctx context.Context, invoiceID uuid.UUID) ([]entity.Transaction, error)
	listByResidentFn func(ctx context.Context, residentID uuid.UUID, status *enum.TransactionStatus) ([]entity.Transaction, error)
	updateFn         func(ctx context.Context, transaction *entity.Transaction) error
	countByStatusFn  func(ctx context.Context, status enum.TransactionStatus) (int64, error)
}

func (m *mockTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return m.createFn(ctx, transaction)
}

func (m *mockTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockTransactionRepo) List(ctx context.Context, params *pagination.PaginationParams, filter repository.TransactionFilter) ([]entity.Transaction, int64, error) {
	return m.listFn(ctx, params, filter)
}

func (m *mockTransactionRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.Transaction, error) {
	return m.listByInvoiceFn(ctx, invoiceID)
}

func (m *mockTransactionRepo) ListByResident(ctx context.Context, residentID uuid.UUID, status *enum.TransactionStatus) ([]entity.Transaction, error) {
	return m.listByResidentFn(ctx, residentID, status)
}

func (m *mockTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return m.updateFn(ctx, transaction)
}

func (m *mockTransactionRepo) CountByStatus(ctx context.Context, status enum.TransactionStatus) (int64, error) {
	return m.countByStatusFn(ctx, status)
}

type mockUserRepo struct {
	createFn              func(ctx context.Context, user *entity.User) error
	getByIDFn             func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	getByEmailFn          func(ctx context.Context, email string) (*entity.User, error)
	getByLinkedResidentFn func(ctx context.Context, residentID uuid.UUID) (*entity.User, error)
	updateFn              func(ctx context.Context, user *entity.User) error
	deleteFn              func(ctx context.Context, id uuid.UUID) error
	getRoleByNameFn       func(ctx context.Context, name string) (*entity.Role, error)
	assignRoleFn          func(ctx context.Context, user *entity.User, role *entity.Role) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserRepo) GetByLinkedResident(ctx context.Context, residentID uuid.UUID) (*entity.User, error) {
	return m.getByLinkedResidentFn(ctx, residentID)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	return m.updateFn(ctx, user)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockUserRepo) GetRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	return m.getRoleByNameFn(ctx, name)
}

func (m *mockUserRepo) AssignRole(ctx context.Context, user *entity.User, role *entity.Role) error {
	return m.assignRoleFn(ctx, user, role)
}

type mockAnnouncementRepo struct {
	createFn         func(ctx context.Context, announcement *entity.Announcement) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)
	listFn           func(ctx context.Context, params *pagination.PaginationParams, includeArchived bool) ([]entity.Announcement, int64, error)
	updateFn         func(ctx context.Context, announcement *entity.Announcement) error
	deleteFn         func(ctx context.Context, id uuid.UUID) error
	archiveExpiredFn func(ctx context.Context, asOf time.Time) (int64, error)
}

func (m *mockAnnouncementRepo) Create(ctx context.Context, announcement *entity.Announcement) error {
	return m.createFn(ctx, announcement)
}

func (m *mockAnnouncementRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAnnouncementRepo) List(ctx context.Context, params *pagination.PaginationParams, includeArchived bool) ([]entity.Announcement, int64, error) {
	return m.listFn(ctx, params, includeArchived)
}

func (m *mockAnnouncementRepo) Update(ctx context.Context, announcement *entity.Announcement) error {
	return m.updateFn(ctx, announcement)
}

func (m *mockAnnouncementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockAnnouncementRepo) ArchiveExpired(ctx context.Context, asOf time.Time) (int64, error) {
	return m.archiveExpiredFn(ctx, asOf)
}

type mockExpenseRepo struct {
	createFn  func(ctx context.Context, expense *entity.Expense) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	listFn    func(ctx context.Context, params *pagination.PaginationParams, filter repository.ExpenseFilter) ([]entity.Expense, int64, error)
	updateFn  func(ctx context.Context, expense *entity.Expense) error
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	return m.createFn(ctx, expense)
}

func (m *mockExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockExpenseRepo) List(ctx context.Context, params *pagination.PaginationParams, filter repository.ExpenseFilter) ([]entity.Expense, int64, error) {
	return m.listFn(ctx, params, filter)
}

func (m *mockExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	return m.updateFn(ctx, expense)
}

func (m *mockExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

type mockComplaintRepo struct {
	createFn        func(ctx context.Context, complaint *entity.Complaint) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.Complaint, error)
	listFn          func(ctx context.Context, params *pagination.PaginationParams, filter repository.ComplaintFilter) ([]entity.Complaint, int64, error)
	updateFn        func(ctx context.Context, complaint *entity.Complaint) error
	deleteFn        func(ctx context.Context, id uuid.UUID) error
	countByStatusFn func(ctx context.Context, status enum.ComplaintStatus) (int64, error)
}

func (m *mockComplaintRepo) Create(ctx context.Context, complaint *entity.Complaint) error {
	return m.createFn(ctx, complaint)
}

func (m *mockComplaintRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockComplaintRepo) List(ctx context.Context, params *pagination.PaginationParams, filter repository.ComplaintFilter) ([]entity.Complaint, int64, error) {
	return m.listFn(ctx, params, filter)
}

func (m *mockComplaintRepo) Update(ctx context.Context, complaint *entity.Complaint) error {
	return m.updateFn(ctx, complaint)
}

func (m *mockComplaintRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockComplaintRepo) CountByStatus(ctx context.Context, status enum.ComplaintStatus) (int64, error) {
	return m.countByStatusFn(ctx, status)
}

type mockReportRepo struct {
	totalBilledFn           func(ctx context.Context, from, to time.Time) (int64, error)
	totalPenaltiesFn        func(ctx context.Context, from, to time.Time) (int64, error)
	totalCollectedFn        func(ctx context.Context, from, to time.Time) (int64, error)
	totalExpensesFn         func(ctx context.Context, from, to time.Time) (int64, error)
	collectionRowsFn        func(ctx context.Context, from, to time.Time) ([]repository.CollectionRowResult, error)
	expenseRowsFn           func(ctx context.Context, from, to time.Time) ([]repository.ExpenseRowResult, error)
	monthlyCollectionsFn    func(ctx context.Context, year int) ([]repository.MonthlyCollectionResult, error)
	outstandingBalanceFn    func(ctx context.Context) (int64, error)
	countInvoicesByStatusFn func(ctx context.Context, status enum.InvoiceStatus) (int64, error)
}

func (m *mockReportRepo) GetTotalBilled(ctx context.Context, from, to time.Time) (int64, error) {
	return m.totalBilledFn(ctx, from, to)
}

func (m *mockReportRepo) GetTotalPenalties(ctx context.Context, from, to time.Time) (int64, error) {
	return m.totalPenaltiesFn(ctx, from, to)
}

func (m *mockReportRepo) GetTotalCollected(ctx context.Context, from, to time.Time) (int64, error) {
	return m.totalCollectedFn(ctx, from, to)
}

func (m *mockReportRepo) GetTotalExpenses(ctx context.Context, from, to time.Time) (int64, error) {
	return m.totalExpensesFn(ctx, from, to)
}

func (m *mockReportRepo) GetCollectionRows(ctx context.Context, from, to time.Time) ([]repository.CollectionRowResult, error) {
	return m.collectionRowsFn(ctx, from, to)
}

func (m *mockReportRepo) GetExpenseRows(ctx context.Context, from, to time.Time) ([]repository.ExpenseRowResult, error) {
	return m.expenseRowsFn(ctx, from, to)
}

func (m *mockReportRepo) GetMonthlyCollections(ctx context.Context, year int) ([]repository.MonthlyCollectionResult, error) {
	return m.monthlyCollectionsFn(ctx, year)
}

func (m *mockReportRepo) GetOutstandingBalance(ctx context.Context) (int64, error) {
	return m.outstandingBalanceFn(ctx)
}

func (m *mockReportRepo) CountInvoicesByStatus(ctx context.Context, status enum.InvoiceStatus) (int64, error) {
	return m.countInvoicesByStatusFn(ctx, status)
}

// mockTxManager runs the function directly; commit and rollback semantics
// are covered by integration against a real database.
type mockTxManager struct{}

func (m *mockTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockObjectStore struct {
	saveFn func(ctx context.Context, fileName, contentType string, data []byte) (string, error)
}

func (m *mockObjectStore) Save(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	if m.saveFn == nil {
		return "/uploads/receipts/" + fileName, nil
	}
	return m.saveFn(ctx, fileName, contentType, data)
}
