package dto

import (
	"github.com/westwalk/performance_report_app/internal/core/domain"
)

// RecordsQueryRequest binds the query parameters of the records endpoint.
// Filters are all optional; zero values mean "no filter". Page and limit are
// not range-checked here: out-of-range values are clamped by the report
// service rather than rejected. A year outside the stored range simply
// matches nothing.
type RecordsQueryRequest struct {
	Entity    string `form:"entity"`
	Year      int    `form:"year"`
	Month     int    `form:"month" binding:"omitempty,min=1,max=12"`
	Category  string `form:"category" binding:"omitempty,oneof=Revenue Cost Unknown"`
	AccountNo string `form:"accountno"`
	Component string `form:"component"`
	AuxCode   string `form:"auxcode"`
	CC2       string `form:"cc2"`
	CC3       string `form:"cc3"`
	TypeR     string `form:"typeR"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=year month accountno balanceFirst"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// ToReportQuery converts the bound request into the service query shape.
func (r RecordsQueryRequest) ToReportQuery() domain.ReportQuery {
	return domain.ReportQuery{
		Filter: domain.TrialBalanceFilter{
			Entity:    r.Entity,
			Year:      r.Year,
			Category:  domain.Category(r.Category),
			AccountNo: r.AccountNo,
			Component: r.Component,
			AuxCode:   r.AuxCode,
			CC2:       r.CC2,
			CC3:       r.CC3,
			TypeR:     r.TypeR,
		},
		Month:     r.Month,
		Page:      r.Page,
		Limit:     r.Limit,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
	}
}

// RecordsResponse is the paged records payload.
type RecordsResponse struct {
	Success bool               `json:"success"`
	Total   int                `json:"total"`
	Page    int                `json:"page"`
	Limit   int                `json:"limit"`
	Count   int                `json:"count"`
	Data    []domain.ReportRow `json:"data"`
}

// ToRecordsResponse converts a service query result into the response DTO.
func ToRecordsResponse(res *domain.ReportResult) RecordsResponse {
	return RecordsResponse{
		Success: true,
		Total:   res.Total,
		Page:    res.Page,
		Limit:   res.Limit,
		Count:   len(res.Rows),
		Data:    res.Rows,
	}
}

// SyncResponse is the sync endpoint payload.
type SyncResponse struct {
	Message string              `json:"message"`
	Count   int                 `json:"count"`
	Summary *domain.SyncSummary `json:"summary"`
}

// PreviewResponse is the preview endpoint payload: the enriched snapshot
// without persistence, echoing which upstream identity produced it.
type PreviewResponse struct {
	Username string               `json:"username"`
	CmpSeq   int                  `json:"cmpseq"`
	Count    int                  `json:"count"`
	Data     []domain.EnrichedRow `json:"data"`
}

// ErrorResponse is the uniform failure payload.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
