package domain

import "github.com/shopspring/decimal"

// TrialBalanceFilter narrows stored trial-balance records. Zero values mean
// "no filter" for their field. Component matches partially and
// case-insensitively; every other field matches exactly.
//
// Month is intentionally absent: yearly-view documents carry no real month,
// so the month filter is applied after read-time expansion, not pushed down.
type TrialBalanceFilter struct {
	Entity    string
	Year      int
	Category  Category
	AccountNo string
	Component string
	AuxCode   string
	CC2       string
	CC3       string
	TypeR     string
}

// BudgetFilter narrows stored budget records. Zero values mean "no filter".
type BudgetFilter struct {
	Entity    string
	Year      int
	Month     int
	Category  Category
	AccountNo string
	Component string
	AuxCode   string
	CC2       string
	CC3       string
	TypeR     string
}

// WarehouseFilter narrows stored warehouse records.
type WarehouseFilter struct {
	Entity    string
	Year      int
	Month     int
	Category  Category
	AccountNo string
	TypeR     string
}

// ReportQuery is the full read-path request: base filters plus the
// post-expansion month filter, pagination and sorting.
type ReportQuery struct {
	Filter    TrialBalanceFilter
	Month     int
	Page      int
	Limit     int
	SortBy    string // year | month | accountno | balanceFirst; empty = composite default
	SortOrder string // asc | desc
}

// ReportRow is one output row of the reporting query: an expanded monthly
// record annotated with its budgeted amount and the balance of the same
// period one year earlier.
type ReportRow struct {
	AccountNo                string          `json:"accountno"`
	AuxCode                  string          `json:"auxcode"`
	Entity                   string          `json:"entity"`
	Component                string          `json:"component"`
	CC2                      string          `json:"cc2"`
	CC3                      string          `json:"cc3"`
	BalanceFirst             decimal.Decimal `json:"balanceFirst"`
	Year                     int             `json:"year"`
	Month                    int             `json:"month"`
	Category                 Category        `json:"category"`
	TypeR                    string          `json:"typeR"`
	BudgetedAmount           decimal.Decimal `json:"budgetedAmount"`
	PreviousYearMonthBalance decimal.Decimal `json:"previousYearMonthBalance"`
}

// ReportResult is the outcome of a reporting query before pagination is
// sliced off.
type ReportResult struct {
	Total int
	Page  int
	Limit int
	Rows  []ReportRow
}

// SyncSummary reports the per-stage counts of one completed sync run.
type SyncSummary struct {
	TotalEnriched       int `json:"totalFetched"`
	RevenueRowsInput    int `json:"revenueRowsInput"`
	RevenueRowsAfterAgg int `json:"revenueRowsAfterAgg"`
	ManPowerRowsInput   int `json:"mpRowsOriginal"`
	ManPowerRowsSplit   int `json:"mpRowsAfterClubAndSplit"`
	CostRowsInput       int `json:"costMonthlyRowsInput"`
	CostYearlyGroups    int `json:"costYearlyAggRows"`
	CostMonthlyRows     int `json:"costMonthlySaved"`
	UnclassifiedRows    int `json:"unclassifiedRows"`
	TotalSaved          int `json:"totalSaved"`
}
