package dto

import (
	"github.com/westwalk/performance_report_app/internal/core/domain"
)

// WarehouseListRequest binds the query parameters of the warehouse records
// endpoint. A year with no stored rows matches nothing rather than failing
// binding.
type WarehouseListRequest struct {
	Entity    string `form:"entity"`
	Year      int    `form:"year"`
	Month     int    `form:"month" binding:"omitempty,min=1,max=12"`
	Category  string `form:"category"`
	AccountNo string `form:"accountno"`
	TypeR     string `form:"typeR"`
}

// ToWarehouseFilter converts the bound request into the repository filter.
func (r WarehouseListRequest) ToWarehouseFilter() domain.WarehouseFilter {
	return domain.WarehouseFilter{
		Entity:    r.Entity,
		Year:      r.Year,
		Month:     r.Month,
		Category:  domain.Category(r.Category),
		AccountNo: r.AccountNo,
		TypeR:     r.TypeR,
	}
}

// WarehouseSyncResponse reports how many warehouse rows were stored.
type WarehouseSyncResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// WarehouseListResponse is the warehouse records payload.
type WarehouseListResponse struct {
	Success bool                     `json:"success"`
	Count   int                      `json:"count"`
	Data    []domain.WarehouseRecord `json:"data"`
}
