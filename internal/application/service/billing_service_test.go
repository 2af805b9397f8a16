package service

import (
	"context"
	"testing"
	"time"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBillingService(invoiceRepo *mockInvoiceRepo, transactionRepo *mockTransactionRepo, residentRepo *mockResidentRepo, store *mockObjectStore) *BillingService {
	if store == nil {
		store = &mockObjectStore{}
	}
	return NewBillingService(invoiceRepo, transactionRepo, residentRepo, &mockTxManager{}, store, 10, 3)
}

func delinquentResident(id uuid.UUID) *entity.Resident {
	return &entity.Resident{ID: id, FirstName: "Maria", LastName: "Santos", Status: enum.ResidentStatusDelinquent}
}

func goodStandingResident(id uuid.UUID) *entity.Resident {
	return &entity.Resident{ID: id, FirstName: "Jose", LastName: "Cruz", Status: enum.ResidentStatusGoodStanding}
}

func TestCreateInvoice_DelinquentGetsPenalty(t *testing.T) {
	residentID := uuid.New()
	var created *entity.Invoice

	invoiceRepo := &mockInvoiceRepo{
		createFn: func(ctx context.Context, invoice *entity.Invoice) error {
			created = invoice
			return nil
		},
	}
	residentRepo := &mockResidentRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
			return delinquentResident(residentID), nil
		},
	}
	svc := newBillingService(invoiceRepo, &mockTransactionRepo{}, residentRepo, nil)

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		ResidentID:  residentID,
		Type:        enum.InvoiceTypeMonthlyDues,
		Description: "Monthly dues",
		Amount:      100000, // 1000.00
		DueDate:     time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, int64(100000), invoice.Amount)
	assert.Equal(t, int64(10000), invoice.Penalty)
	assert.Equal(t, int64(110000), invoice.TotalAmount)
	assert.Equal(t, enum.InvoiceStatusUnpaid, invoice.Status)
	assert.Equal(t, 1, invoice.Version)
}

func TestCreateInvoice_GoodStandingNoPenalty(t *testing.T) {
	residentID := uuid.New()

	invoiceRepo := &mockInvoiceRepo{
		createFn: func(ctx context.Context, invoice *entity.Invoice) error { return nil },
	}
	residentRepo := &mockResidentRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
			return goodStandingResident(residentID), nil
		},
	}
	svc := newBillingService(invoiceRepo, &mockTransactionRepo{}, residentRepo, nil)

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		ResidentID: residentID,
		Amount:     100000,
		DueDate:    time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	assert.Zero(t, invoice.Penalty)
	assert.Equal(t, int64(100000), invoice.TotalAmount)
}

func TestCreateInvoice_PenaltyIsSnapshotOfAmount(t *testing.T) {
	// Odd amounts still yield an exact ten percent in integer cents
	residentID := uuid.New()

	invoiceRepo := &mockInvoiceRepo{
		createFn: func(ctx context.Context, invoice *entity.Invoice) error { return nil },
	}
	residentRepo := &mockResidentRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
			return delinquentResident(residentID), nil
		},
	}
	svc := newBillingService(invoiceRepo, &mockTransactionRepo{}, residentRepo, nil)

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		ResidentID: residentID,
		Amount:     12345, // 123.45
		DueDate:    time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1234), invoice.Penalty)
	assert.Equal(t, int64(13579), invoice.TotalAmount)
}

func TestCreateInvoice_ResidentNotFound(t *testing.T) {
	residentRepo := &mockResidentRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
			return nil, nil
		},
	}
	svc := newBillingService(&mockInvoiceRepo{}, &mockTransactionRepo{}, residentRepo, nil)

	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		ResidentID: uuid.New(),
		Amount:     100000,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func recordPaymentFixture(invoice *entity.Invoice) (*BillingService, *entity.Invoice, **entity.Transaction) {
	var savedTransaction *entity.Transaction

	invoiceRepo := &mockInvoiceRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
			return invoice, nil
		},
		updateWithVersionFn: func(ctx context.Context, inv *entity.Invoice, expectedVersion int) error {
			inv.Version = expectedVersion + 1
			return nil
		},
	}
	transactionRepo := &mockTransactionRepo{
		createFn: func(ctx context.Context, transaction *entity.Transaction) error {
			savedTransaction = transaction
			return nil
		},
	}
	svc := newBillingService(invoiceRepo, transactionRepo, &mockResidentRepo{}, nil)
	return svc, invoice, &savedTransaction
}

func TestRecordPayment_PartialPayment(t *testing.T) {
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ResidentID:  uuid.New(),
		Amount:      100000,
		Penalty:     10000,
		TotalAmount: 110000,
		Status:      enum.InvoiceStatusUnpaid,
		Version:     1,
	}
	svc, invoice, savedTransaction := recordPaymentFixture(invoice)

	transaction, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		InvoiceID:     invoice.ID,
		Amount:        50000,
		PaymentMethod: enum.PaymentMethodCash,
		RecordedByID:  uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, enum.TransactionStatusCompleted, transaction.Status)
	assert.Equal(t, int64(50000), invoice.AmountPaid)
	assert.Equal(t, enum.InvoiceStatusPartial, invoice.Status)
	assert.Equal(t, 2, invoice.Version)
	assert.NotEmpty(t, (*savedTransaction).ReferenceNumber)
}

func TestRecordPayment_ExactBalanceSettles(t *testing.T) {
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ResidentID:  uuid.New(),
		TotalAmount: 110000,
		AmountPaid:  50000,
		Status:      enum.InvoiceStatusPartial,
		Version:     2,
	}
	svc, invoice, _ := recordPaymentFixture(invoice)

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		InvoiceID:    invoice.ID,
		Amount:       60000,
		RecordedByID: uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(110000), invoice.AmountPaid)
	assert.Equal(t, enum.InvoiceStatusPaid, invoice.Status)
	assert.Zero(t, invoice.Balance())
}

func TestRecordPayment_OverpaymentAccepted(t *testing.T) {
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ResidentID:  uuid.New(),
		TotalAmount: 100000,
		Status:      enum.InvoiceStatusUnpaid,
		Version:     1,
	}
	svc, invoice, _ := recordPaymentFixture(invoice)

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		InvoiceID:    invoice.ID,
		Amount:       150000,
		RecordedByID: uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, enum.InvoiceStatusPaid, invoice.Status)
	assert.Equal(t, int64(-50000), invoice.Balance())
}

func TestRecordPayment_RejectsSettledAndParkedInvoices(t *testing.T) {
	tests := []struct {
		name   string
		status enum.InvoiceStatus
	}{
		{"already paid", enum.InvoiceStatusPaid},
		{"awaiting approval", enum.InvoiceStatusPendingApproval},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoice := &entity.Invoice{ID: uuid.New(), TotalAmount: 100000, Status: tt.status, Version: 1}
			svc, _, _ := recordPaymentFixture(invoice)

			_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
				InvoiceID:    invoice.ID,
				Amount:       100000,
				RecordedByID: uuid.New(),
			})
			require.Error(t, err)
			assert.Equal(t, 409, apperror.GetAppError(err).Code)
		})
	}
}

func TestRecordPayment_VersionConflictPropagates(t *testing.T) {
	invoice := &entity.Invoice{ID: uuid.New(), TotalAmount: 100000, Status: enum.InvoiceStatusUnpaid, Version: 1}

	invoiceRepo := &mockInvoiceRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
			return invoice, nil
		},
		updateWithVersionFn: func(ctx context.Context, inv *entity.Invoice, expectedVersion int) error {
			return apperror.ErrVersionConflict
		},
	}
	transactionRepo := &mockTransactionRepo{
		createFn: func(ctx context.Context, transaction *entity.Transaction) error { return nil },
	}
	svc := newBillingService(invoiceRepo, transactionRepo, &mockResidentRepo{}, nil)

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		InvoiceID:    invoice.ID,
		Amount:       50000,
		RecordedByID: uuid.New(),
	})
	assert.ErrorIs(t, err, apperror.ErrVersionConflict)
}

func TestSubmitPaymentProof_RequiresImages(t *testing.T) {
	svc := newBillingService(&mockInvoiceRepo{}, &mockTransactionRepo{}, &mockResidentRepo{}, nil)

	_, err := svc.SubmitPaymentProof(context.Background(), &SubmitPaymentProofInput{
		InvoiceID:  uuid.New(),
		ResidentID: uuid.New(),
		Amount:     50000,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestSubmitPaymentProof_LimitsImages(t *testing.T) {
	svc := newBillingService(&mockInvoiceRepo{}, &mockTransactionRepo{}, &mockResidentRepo{}, nil)

	images := make([]ReceiptImageInput, 4)
	for i := range images {
		images[i] = ReceiptImageInput{FileName: "receipt.jpg", Data: []byte("x")}
	}

	_, err := svc.SubmitPaymentProof(context.Background(), &SubmitPaymentProofInput{
		InvoiceID:  uuid.New(),
		ResidentID: uuid.New(),
		Amount:     50000,
		Images:     images,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestSubmitPaymentProof_ForeignInvoiceForbidden(t *testing.T) {
	invoice := &entity.Invoice{ID: uuid.New(), ResidentID: uuid.New(), TotalAmount: 100000, Version: 1}

	invoiceRepo := &mockInvoiceRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
			return invoice, nil
		},
	}
	svc := newBillingService(invoiceRepo, &mockTransactionRepo{}, &mockResidentRepo{}, nil)

	_, err := svc.SubmitPaymentProof(context.Background(), &SubmitPaymentProofInput{
		InvoiceID:  invoice.ID,
		ResidentID: uuid.New(), // someone else's invoice
		Amount:     50000,
		Images:     []ReceiptImageInput{{FileName: "receipt.jpg", Data: []byte("x")}},
	})
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
}

func TestSubmitPaymentProof_ParksInvoice(t *testing.T) {
	residentID := uuid.New()
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ResidentID:  residentID,
		TotalAmount: 110000,
		Status:      enum.InvoiceStatusOverdue,
		Version:     3,
	}

	var savedTransaction *entity.Transaction
	savedImages := 0

	invoiceRepo := &mockInvoiceRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
			return invoice, nil
		},
		updateWithVersionFn: func(ctx context.Context, inv *entity.Invoice, expectedVersion int) error {
			assert.Equal(t, 3, expectedVersion)
			inv.Version = expectedVersion + 1
			return nil
		},
	}
	transactionRepo := &mockTransactionRepo{
		createFn: func(ctx context.Context, transaction *entity.Transaction) error {
			savedTransaction = transaction
			return nil
		},
	}
	store := &mockObjectStore{
		saveFn: func(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
			savedImages++
			return "/uploads/receipts/" + fileName, nil
		},
	}
	svc := newBillingService(invoiceRepo, transactionRepo, &mockResidentRepo{}, store)

	transaction, err := svc.SubmitPaymentProof(context.Background(), &SubmitPaymentProofInput{
		InvoiceID:     invoice.ID,
		ResidentID:    residentID,
		Amount:        110000,
		PaymentMethod: enum.PaymentMethodGCash,
		Images: []ReceiptImageInput{
			{FileName: "front.jpg", ContentType: "image/jpeg", Data: []byte("a")},
			{FileName: "back.jpg", ContentType: "image/jpeg", Data: []byte("b")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, enum.TransactionStatusPending, transaction.Status)
	assert.Equal(t, enum.InvoiceStatusPendingApproval, invoice.Status)
	assert.Zero(t, invoice.AmountPaid) // nothing credited until approval
	assert.Equal(t, 2, savedImages)
	assert.Len(t, savedTransaction.ReceiptImages, 2)
}

func TestSubmitPaymentProof_DefaultsToRemainingBalance(t *testing.T) {
	residentID := uuid.New()
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ResidentID:  residentID,
		TotalAmount: 110000,
		AmountPaid:  40000,
		Status:      enum.InvoiceStatusPartial,
		Version:     1,
	}

	var savedTransaction *entity.Transaction
	invoiceRepo := &mockInvoiceRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
			return invoice, nil
		},
		updateWithVersionFn: func(ctx context.Context, inv *entity.Invoice, expectedVersion int) error {
			inv.Version = expectedVersion + 1
			return nil
		},
	}
	transactionRepo := &mockTransactionRepo{
		createFn: func(ctx context.Context, transaction *entity.Transaction) error {
			savedTransaction = transaction
			return nil
		},
	}
	svc := newBillingService(invoiceRepo, transactionRepo, &mockResidentRepo{}, &mockObjectStore{})

	_, err := svc.SubmitPaymentProof(context.Background(), &SubmitPaymentProofInput{
		InvoiceID:  invoice.ID,
		ResidentID: residentID,
		Images:     []ReceiptImageInput{{FileName: "receipt.jpg", Data: []byte("x")}},
	})
	require.NoError(t, err)
	require.NotNil(t, savedTransaction)

	assert.Equal(t, int64(70000), savedTransaction.AmountPaid)
}

func TestApprovePayment_CreditsInvoice(t *testing.T) {
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ResidentID:  uuid.New(),
		TotalAmount: 110000,
		Status:      enum.InvoiceStatusPendingApproval,
		Version:     2,
	}
	transaction := &entity.Transaction{
		ID:         uuid.New(),
		InvoiceID:  invoice.ID,
		ResidentID: invoice.ResidentID,
		AmountPaid: 110000,
		Status:     enum.TransactionStatusPending,
	}
	approverID := uuid.New()

	invoiceRepo := &mockInvoiceRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
			return invoice, nil
		},
		updateWithVersionFn: func(ctx context.Context, inv *entity.Invoice, expectedVersion int) error {
			assert.Equal(t, 2, expectedVersion)
			inv.Version = expectedVersion + 1
			return nil
		},
	}
	transactionRepo := &mockTransactionRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
			return transaction, nil
		},
		updateFn: func(ctx context.Context, tr *entity.Transaction) error { return nil },
	}
	svc := newBillingService(invoiceRepo, transactionRepo, &mockResidentRepo{}, nil)

	approved, err := svc.ApprovePayment(context.Background(), transaction.ID, approverID, nil)
	require.NoError(t, err)

	assert.Equal(t, enum.TransactionStatusCompleted, approved.Status)
	assert.Equal(t, &approverID, approved.RecordedByID)
	assert.Equal(t, int64(110000), invoice.AmountPaid)
	assert.Equal(t, enum.InvoiceStatusPaid, invoice.Status)
}

func TestApprovePayment_ConfirmedAmountOverridesClaim(t *testing.T) {
	invoice := &entity.Invoice{
		ID:          uuid.New(),
		ResidentID:  uuid.New(),
		TotalAmount: 110000,
		Status:      enum.InvoiceStatusPendingApproval,
		Version:     1,
	}
	transaction := &entity.Transaction{
		ID:         uuid.New(),
		InvoiceID:  invoice.ID,
		ResidentID: invoice.ResidentID,
		AmountPaid: 110000, // resident claimed full settlement
		Status:     enum.TransactionStatusPending,
	}

	invoiceRepo := &mockInvoiceRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
			return invoice, nil
		},
		updateWithVersionFn: func(ctx context.Context, inv *entity.Invoice, expectedVersion int) error {
			inv.Version = expectedVersion + 1
			return nil
		},
	}
	transactionRepo := &mockTransactionRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
			return transaction, nil
		},
		updateFn: func(ctx context.Context, tr *entity.Transaction) error { return nil },
	}
	svc := newBillingService(invoiceRepo, transactionRepo, &mockResidentRepo{}, nil)

	confirmed := int64(60000) // receipt shows less than claimed
	approved, err := svc.ApprovePayment(context.Background(), transaction.ID, uuid.New(), &confirmed)
	require.NoError(t, err)

	assert.Equal(t, confirmed, approved.AmountPaid)
	assert.Equal(t, confirmed, invoice.AmountPaid)
	assert.Equal(t, enum.InvoiceStatusPartial, invoice.Status)
}

func TestApprovePayment_NotPendingConflict(t *testing.T) {
	transaction := &entity.Transaction{ID: uuid.New(), Status: enum.TransactionStatusCompleted}

	transactionRepo := &mockTransactionRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
			return transaction, nil
		},
	}
	svc := newBillingService(&mockInvoiceRepo{}, transactionRepo, &mockResidentRepo{}, nil)

	_, err := svc.ApprovePayment(context.Background(), transaction.ID, uuid.New(), nil)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestRejectPayment_RevertsInvoiceStatus(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		amountPaid int64
		dueDate    time.Time
		want       enum.InvoiceStatus
	}{
		{"untouched before due date", 0, now.AddDate(0, 0, 10), enum.InvoiceStatusUnpaid},
		{"untouched past due date", 0, now.AddDate(0, 0, -10), enum.InvoiceStatusOverdue},
		{"partially paid", 40000, now.AddDate(0, 0, -10), enum.InvoiceStatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoice := &entity.Invoice{
				ID:          uuid.New(),
				TotalAmount: 110000,
				AmountPaid:  tt.amountPaid,
				DueDate:     tt.dueDate,
				Status:      enum.InvoiceStatusPendingApproval,
				Version:     2,
			}
			transaction := &entity.Transaction{
				ID:        uuid.New(),
				InvoiceID: invoice.ID,
				Status:    enum.TransactionStatusPending,
			}

			invoiceRepo := &mockInvoiceRepo{
				getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
					return invoice, nil
				},
				updateWithVersionFn: func(ctx context.Context, inv *entity.Invoice, expectedVersion int) error {
					inv.Version = expectedVersion + 1
					return nil
				},
			}
			transactionRepo := &mockTransactionRepo{
				getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
					return transaction, nil
				},
				updateFn: func(ctx context.Context, tr *entity.Transaction) error { return nil },
			}
			svc := newBillingService(invoiceRepo, transactionRepo, &mockResidentRepo{}, nil)
			svc.now = func() time.Time { return now }

			rejected, err := svc.RejectPayment(context.Background(), transaction.ID, uuid.New(), "blurry receipt")
			require.NoError(t, err)

			assert.Equal(t, enum.TransactionStatusRejected, rejected.Status)
			assert.Equal(t, "blurry receipt", rejected.RejectionReason)
			assert.Equal(t, tt.want, invoice.Status)
			assert.Equal(t, tt.amountPaid, invoice.AmountPaid) // rejection never touches the credit
		})
	}
}
