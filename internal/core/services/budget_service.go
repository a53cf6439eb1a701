package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/westwalk/performance_report_app/internal/apperrors"
	"github.com/westwalk/performance_report_app/internal/core/domain"
	portsrepo "github.com/westwalk/performance_report_app/internal/core/ports/repositories"
	portssvc "github.com/westwalk/performance_report_app/internal/core/ports/services"
)

// componentPrefixRe strips the numeric ordering prefix finance teams put on
// component names in exported sheets ("01 - Residential" -> "Residential").
var componentPrefixRe = regexp.MustCompile(`^\d+\s*-\s*`)

type budgetService struct {
	repo portsrepo.BudgetRepository
}

// NewBudgetService creates the budgeted-amount service.
func NewBudgetService(repo portsrepo.BudgetRepository) portssvc.BudgetSvcFacade {
	return &budgetService{repo: repo}
}

// UploadCSV parses a budget sheet and replaces the (entity, year) slice of
// the budget set with its rows. Columns are matched by header name, not
// position, so column order in the sheet does not matter.
func (s *budgetService) UploadCSV(ctx context.Context, entity string, year int, csvData []byte) (int, error) {
	if strings.TrimSpace(entity) == "" {
		return 0, fmt.Errorf("entity is required: %w", apperrors.ErrValidation)
	}
	if year < domain.ReportingFloorYear {
		return 0, fmt.Errorf("year must be %d or later: %w", domain.ReportingFloorYear, apperrors.ErrValidation)
	}

	recs, err := parseBudgetCSV(entity, year, csvData)
	if err != nil {
		return 0, err
	}
	if len(recs) == 0 {
		return 0, fmt.Errorf("no data rows in uploaded file: %w", apperrors.ErrValidation)
	}

	saved, err := s.repo.ReplaceForEntityYear(ctx, entity, year, recs)
	if err != nil {
		return 0, fmt.Errorf("budget persist failed: %w", err)
	}
	return saved, nil
}

func (s *budgetService) List(ctx context.Context, f domain.BudgetFilter) ([]domain.BudgetRecord, error) {
	recs, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("budget query failed: %w", err)
	}
	return recs, nil
}

func parseBudgetCSV(entity string, year int, csvData []byte) ([]domain.BudgetRecord, error) {
	reader := csv.NewReader(bytes.NewReader(csvData))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("unreadable CSV header: %w", apperrors.ErrValidation)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"accountno", "month", "balancefirst"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing required column %q: %w", required, apperrors.ErrValidation)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var recs []domain.BudgetRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("malformed CSV at line %d: %w", line, apperrors.ErrValidation)
		}

		month, err := strconv.Atoi(field(row, "month"))
		if err != nil || month < 1 || month > 12 {
			return nil, fmt.Errorf("invalid month at line %d: %w", line, apperrors.ErrValidation)
		}
		amount, err := decimal.NewFromString(field(row, "balancefirst"))
		if err != nil {
			return nil, fmt.Errorf("invalid balanceFirst at line %d: %w", line, apperrors.ErrValidation)
		}

		// The upload targets exactly one (entity, year) slice. A sheet row
		// naming a different year or company is a mistake worth rejecting,
		// not silently remapping.
		if y := field(row, "year"); y != "" {
			rowYear, err := strconv.Atoi(y)
			if err != nil || rowYear != year {
				return nil, fmt.Errorf("year at line %d does not match upload year %d: %w", line, year, apperrors.ErrValidation)
			}
		}
		if c := field(row, "company"); c != "" && c != entity {
			return nil, fmt.Errorf("company at line %d does not match upload entity: %w", line, apperrors.ErrValidation)
		}

		typeR := field(row, "typer")
		if typeR == "" {
			typeR = domain.PostType
		}
		category := domain.Category(field(row, "accounttype"))
		if category == "" {
			category = domain.UnknownCategory
		}

		recs = append(recs, domain.BudgetRecord{
			AccountNo:    field(row, "accountno"),
			CC2:          field(row, "cc2"),
			CC3:          field(row, "cc3"),
			Month:        month,
			Year:         year,
			TypeR:        typeR,
			Category:     category,
			AuxCode:      field(row, "auxcode"),
			BalanceFirst: amount,
			Entity:       entity,
			Component:    componentPrefixRe.ReplaceAllString(field(row, "component"), ""),
		})
	}
	return recs, nil
}
