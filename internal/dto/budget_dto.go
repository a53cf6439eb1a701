package dto

import (
	"github.com/westwalk/performance_report_app/internal/core/domain"
)

// BudgetUploadForm binds the multipart form fields of the budget upload
// endpoint. The file part is read separately by the handler.
type BudgetUploadForm struct {
	Entity string `form:"entity" binding:"required"`
	Year   int    `form:"year" binding:"required,min=2023"`
}

// BudgetUploadResponse reports how many sheet rows were stored.
type BudgetUploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// BudgetListRequest binds the query parameters of the budget list endpoint.
// A year with no stored budgets matches nothing rather than failing binding.
type BudgetListRequest struct {
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
}

// ToBudgetFilter converts the bound request into the repository filter.
func (r BudgetListRequest) ToBudgetFilter() domain.BudgetFilter {
	return domain.BudgetFilter{
		Entity:    r.Entity,
		Year:      r.Year,
		Month:     r.Month,
		Category:  domain.Category(r.Category),
		AccountNo: r.AccountNo,
		Component: r.Component,
		AuxCode:   r.AuxCode,
		CC2:       r.CC2,
		CC3:       r.CC3,
		TypeR:     r.TypeR,
	}
}

// BudgetListResponse is the budget list payload.
type BudgetListResponse struct {
	Success bool                  `json:"success"`
	Count   int                   `json:"count"`
	Data    []domain.BudgetRecord `json:"data"`
}
