package service

import (
	"context"
	"time"

	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/internal/domain/repository"
)

// DashboardStats is the admin dashboard snapshot
type DashboardStats struct {
	TotalResidents      int64   `json:"total_residents"`
	DelinquentResidents int64   `json:"delinquent_residents"`
	CollectedThisMonth  float64 `json:"collected_this_month"`
	OutstandingBalance  float64 `json:"outstanding_balance"`
	OverdueInvoices     int64   `json:"overdue_invoices"`
	PendingApprovals    int64   `json:"pending_approvals"`
	OpenComplaints      int64   `json:"open_complaints"`

	MonthlyCollections []MonthlyCollection `json:"monthly_collections"`
}

// MonthlyCollection is collected revenue for one month of the current year
type MonthlyCollection struct {
	Month     int     `json:"month"`
	Collected float64 `json:"collected"`
}

// DashboardService aggregates headline numbers for the admin dashboard
type DashboardService struct {
	residentRepo    repository.ResidentRepository
	transactionRepo repository.TransactionRepository
	complaintRepo   repository.ComplaintRepository
	reportRepo      repository.ReportRepository
	now             func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	residentRepo repository.ResidentRepository,
	transactionRepo repository.TransactionRepository,
	complaintRepo repository.ComplaintRepository,
	reportRepo repository.ReportRepository,
) *DashboardService {
	return &DashboardService{
		residentRepo:    residentRepo,
		transactionRepo: transactionRepo,
		complaintRepo:   complaintRepo,
		reportRepo:      reportRepo,
		now:             time.Now,
	}
}

// GetStats builds the dashboard snapshot
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	stats := &DashboardStats{}

	var err error
	if stats.TotalResidents, err = s.residentRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.DelinquentResidents, err = s.residentRepo.CountByStatus(ctx, enum.ResidentStatusDelinquent); err != nil {
		return nil, err
	}

	collected, err := s.reportRepo.GetTotalCollected(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	stats.CollectedThisMonth = float64(collected) / 100

	outstanding, err := s.reportRepo.GetOutstandingBalance(ctx)
	if err != nil {
		return nil, err
	}
	stats.OutstandingBalance = float64(outstanding) / 100

	if stats.OverdueInvoices, err = s.reportRepo.CountInvoicesByStatus(ctx, enum.InvoiceStatusOverdue); err != nil {
		return nil, err
	}
	if stats.PendingApprovals, err = s.transactionRepo.CountByStatus(ctx, enum.TransactionStatusPending); err != nil {
		return nil, err
	}
	if stats.OpenComplaints, err = s.complaintRepo.CountByStatus(ctx, enum.ComplaintStatusPending); err != nil {
		return nil, err
	}

	monthly, err := s.reportRepo.GetMonthlyCollections(ctx, now.Year())
	if err != nil {
		return nil, err
	}

	// Always emit twelve entries so charts render empty months as zero
	stats.MonthlyCollections = make([]MonthlyCollection, 12)
	for i := range stats.MonthlyCollections {
		stats.MonthlyCollections[i].Month = i + 1
	}
	for _, row := range monthly {
		if row.Month >= 1 && row.Month <= 12 {
			stats.MonthlyCollections[row.Month-1].Collected = float64(row.Collected) / 100
		}
	}

	return stats, nil
}
