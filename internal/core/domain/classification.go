package domain

import "github.com/shopspring/decimal"

// Entity names used by the classification and split tables. These are
// reporting labels, not identifiers, so the exact strings matter.
const (
	EntityRealEstate    = "West Walk Real Estate"
	EntityAssetServices = "Assets Services Company"
	EntityAdvertisement = "West Walk Advertisement"
	EntityManPower      = "Man Power / Salaries"
)

// Revenue components subject to cc2-based reclassification.
const (
	ResidentialComponent = "Residential"
	CommercialComponent  = "Commercial"
)

// ClassificationEntry maps a raw ledger account to its reporting dimensions.
type ClassificationEntry struct {
	Entity    string
	Component string
	Category  Category
}

// AccountClassification is the static account-to-reporting mapping, loaded
// once and never mutated at runtime.
var AccountClassification = map[string]ClassificationEntry{
	// Revenue
	"41112": {EntityRealEstate, "Commercial", Revenue},
	"44131": {EntityRealEstate, "Kiosks", Revenue},
	"44132": {EntityRealEstate, "Plenty-Fee", Revenue},
	"41111": {EntityRealEstate, "Residential", Revenue},
	"44133": {EntityRealEstate, "Valet", Revenue},
	"44105": {EntityRealEstate, "Turnover Rent", Revenue},

	"44130": {EntityAssetServices, "Chilled Water", Revenue},
	"44128": {EntityAssetServices, "LPG", Revenue},
	"44104": {EntityAssetServices, "Tenant Variation Request", Revenue},
	"44107": {EntityAssetServices, "Tenant Variation Request", Revenue},
	"44122": {EntityAssetServices, "Tenant Variation Request", Revenue},
	"44124": {EntityAssetServices, "Tenant Variation Request", Revenue},
	"44125": {EntityAssetServices, "Tenant Variation Request", Revenue},

	"44136": {EntityAdvertisement, "Digital Marketing", Revenue},
	"44137": {EntityAdvertisement, "Events", Revenue},
	"44140": {EntityAdvertisement, "Brand Activation", Revenue},

	// Cost
	"54109": {EntityRealEstate, "Kahramaa", Cost},
	"64115": {EntityRealEstate, "Internet / Telephones", Cost},
	"64114": {EntityRealEstate, "Office supply / Petrol", Cost},

	"64102": {EntityRealEstate, "Professional & Legal", Cost},
	"64106": {EntityRealEstate, "Professional & Legal", Cost},
	"64111": {EntityRealEstate, "Professional & Legal", Cost},
	"64112": {EntityRealEstate, "Professional & Legal", Cost},
	"64129": {EntityRealEstate, "Professional & Legal", Cost},
	"64203": {EntityRealEstate, "Professional & Legal", Cost},
	"64209": {EntityRealEstate, "Professional & Legal", Cost},

	"62202": {EntityRealEstate, "Commissions & Bounces", Cost},
	"62205": {EntityRealEstate, "Commissions & Bounces", Cost},

	"55101": {EntityAssetServices, "HouseKeeping", Cost},
	"55301": {EntityAssetServices, "Maintenance", Cost},
	"55201": {EntityAssetServices, "Security", Cost},
	"51105": {EntityAssetServices, "TVR", Cost},
	"51110": {EntityAssetServices, "LPG Woqod Consumption", Cost},

	"64117": {EntityAdvertisement, "Events", Cost},
	"62101": {EntityAdvertisement, "Online Marketing", Cost},
	"62104": {EntityAdvertisement, "Offline Marketing", Cost},
	"62106": {EntityAdvertisement, "Events", Cost},
	"62110": {EntityAdvertisement, "Events", Cost},
	"62119": {EntityAdvertisement, "Events", Cost},
	"62121": {EntityAdvertisement, "Events", Cost},
	"62207": {EntityAdvertisement, "Events", Cost},

	"61101": {EntityManPower, "Office Staff", Cost},
	"61103": {EntityManPower, "Office Staff", Cost},
	"61104": {EntityManPower, "Office Staff", Cost},
	"61105": {EntityManPower, "Office Staff", Cost},
	"61106": {EntityManPower, "Office Staff", Cost},
	"61115": {EntityManPower, "Office Staff", Cost},
	"61116": {EntityManPower, "Office Staff", Cost},

	"64101": {EntityManPower, "Office Staff", Cost},
	"64105": {EntityManPower, "Office Staff", Cost},
	"64121": {EntityManPower, "Office Staff", Cost},
}

// SalaryAccounts is the fixed set of salary/labor accounts. ManPower
// detection is by account number only, never by label.
var SalaryAccounts = map[string]bool{
	"61101": true, "61103": true, "61104": true, "61105": true, "61106": true,
	"61115": true, "61116": true, "64101": true, "64105": true, "64121": true,
}

// ManPowerSplit is the fixed entity percentage table for redistributing the
// pooled monthly salary total. The percentages sum to 1.0.
var ManPowerSplit = []struct {
	Entity  string
	Percent decimal.Decimal
}{
	{EntityRealEstate, decimal.RequireFromString("0.22")},
	{EntityAssetServices, decimal.RequireFromString("0.6851")},
	{EntityAdvertisement, decimal.RequireFromString("0.0949")},
}

// AssetServicesSubSplit further divides the Assets Services Company ManPower
// share across five sub-departments. The split name is stored as the record's
// auxcode. Percentages sum to 1.0.
var AssetServicesSubSplit = []struct {
	Name    string
	Percent decimal.Decimal
}{
	{"HouseKeeping", decimal.RequireFromString("0.435")},
	{"Maintenance", decimal.RequireFromString("0.405")},
	{"Security", decimal.RequireFromString("0.12")},
	{"Store-MP", decimal.RequireFromString("0.03")},
	{"Landscape", decimal.RequireFromString("0.01")},
}

// ReportingAccounts is the account filter applied before enrichment: raw
// rows for any other account are dropped.
var ReportingAccounts = func() map[string]bool {
	set := make(map[string]bool, len(AccountClassification))
	for acc := range AccountClassification {
		set[acc] = true
	}
	return set
}()

// Classify returns the classification entry for an account, defaulting every
// dimension to the "Unknown" sentinel when the account is unmapped.
func Classify(accountNo string) ClassificationEntry {
	if e, ok := AccountClassification[accountNo]; ok {
		return e
	}
	return ClassificationEntry{Entity: "Unknown", Component: "Unknown", Category: UnknownCategory}
}
