package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/westwalk/performance_report_app/internal/apperrors"
	"github.com/westwalk/performance_report_app/internal/core/domain"
	"github.com/westwalk/performance_report_app/internal/core/pipeline"
	portsrepo "github.com/westwalk/performance_report_app/internal/core/ports/repositories"
	portssvc "github.com/westwalk/performance_report_app/internal/core/ports/services"
)

const (
	defaultPageLimit = 500
	maxPageLimit     = 5000
)

type reportService struct {
	tbRepo     portsrepo.TrialBalanceRepository
	budgetRepo portsrepo.BudgetRepository
}

// NewReportService creates the reporting query service.
func NewReportService(tbRepo portsrepo.TrialBalanceRepository, budgetRepo portsrepo.BudgetRepository) portssvc.ReportSvcFacade {
	return &reportService{tbRepo: tbRepo, budgetRepo: budgetRepo}
}

// Query runs the full read path: fetch matching records, expand yearly cost
// views into twelve monthly rows, annotate each row with its budgeted amount
// and its prior-year balance, then filter by month, sort and paginate.
//
// The prior-year lookup is built before the month filter is applied, so a
// January query still sees last January's balances.
func (s *reportService) Query(ctx context.Context, q domain.ReportQuery) (*domain.ReportResult, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if q.Month < 0 || q.Month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12: %w", apperrors.ErrValidation)
	}

	stored, err := s.tbRepo.Find(ctx, q.Filter)
	if err != nil {
		return nil, fmt.Errorf("trial balance query failed: %w", err)
	}
	expanded := pipeline.ExpandCostYearly(stored)

	priorYear := map[string]decimal.Decimal{}
	for _, r := range expanded {
		priorYear[pipeline.BudgetKey(r)] = r.BalanceFirst
	}
	// A year-filtered query excludes last year's rows from the main fetch,
	// so they are read separately just for the lookup.
	if q.Filter.Year != 0 {
		prevFilter := q.Filter
		prevFilter.Year = q.Filter.Year - 1
		prevStored, err := s.tbRepo.Find(ctx, prevFilter)
		if err != nil {
			return nil, fmt.Errorf("prior year query failed: %w", err)
		}
		for _, r := range pipeline.ExpandCostYearly(prevStored) {
			priorYear[pipeline.BudgetKey(r)] = r.BalanceFirst
		}
	}

	budgets, err := s.budgetRepo.Find(ctx, budgetFilterFrom(q))
	if err != nil {
		return nil, fmt.Errorf("budget query failed: %w", err)
	}
	// Duplicate budget rows on the same key sum up rather than shadowing
	// each other.
	budgetByKey := make(map[string]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		key := pipeline.BudgetRecordKey(b)
		budgetByKey[key] = budgetByKey[key].Add(b.BalanceFirst)
	}

	rows := make([]domain.ReportRow, 0, len(expanded))
	for _, r := range expanded {
		if q.Month != 0 && r.Month != q.Month {
			continue
		}
		prev := r
		prev.Year = r.Year - 1
		rows = append(rows, domain.ReportRow{
			AccountNo:                r.AccountNo,
			AuxCode:                  r.AuxCode,
			Entity:                   r.Entity,
			Component:                r.Component,
			CC2:                      r.CC2,
			CC3:                      r.CC3,
			BalanceFirst:             r.BalanceFirst,
			Year:                     r.Year,
			Month:                    r.Month,
			Category:                 r.Category,
			TypeR:                    r.TypeR,
			BudgetedAmount:           budgetByKey[pipeline.BudgetKey(r)],
			PreviousYearMonthBalance: priorYear[pipeline.BudgetKey(prev)],
		})
	}

	sortReportRows(rows, q.SortBy, q.SortOrder)

	total := len(rows)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &domain.ReportResult{
		Total: total,
		Page:  page,
		Limit: limit,
		Rows:  rows[start:end],
	}, nil
}

func budgetFilterFrom(q domain.ReportQuery) domain.BudgetFilter {
	return domain.BudgetFilter{
		Entity:    q.Filter.Entity,
		Year:      q.Filter.Year,
		Month:     q.Month,
		Category:  q.Filter.Category,
		AccountNo: q.Filter.AccountNo,
		Component: q.Filter.Component,
		AuxCode:   q.Filter.AuxCode,
		CC2:       q.Filter.CC2,
		CC3:       q.Filter.CC3,
		TypeR:     q.Filter.TypeR,
	}
}

// sortReportRows orders rows by the requested field, or by the composite
// default (year desc, month asc, accountno asc) when no field is named.
// Unknown sort fields fall back to the default instead of erroring.
func sortReportRows(rows []domain.ReportRow, sortBy, sortOrder string) {
	desc := sortOrder == "desc"

	var less func(a, b domain.ReportRow) bool
	switch sortBy {
	case "year":
		less = func(a, b domain.ReportRow) bool { return a.Year < b.Year }
	case "month":
		less = func(a, b domain.ReportRow) bool { return a.Month < b.Month }
	case "accountno":
		less = func(a, b domain.ReportRow) bool { return a.AccountNo < b.AccountNo }
	case "balanceFirst":
		less = func(a, b domain.ReportRow) bool { return a.BalanceFirst.LessThan(b.BalanceFirst) }
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := rows[i], rows[j]
			if a.Year != b.Year {
				return a.Year > b.Year
			}
			if a.Month != b.Month {
				return a.Month < b.Month
			}
			return a.AccountNo < b.AccountNo
		})
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}
