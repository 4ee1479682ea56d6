// Package command defines the closed set of operations the till assistant can
// execute, plus the uniform result every execution path returns.
//
// A Command is produced by the intent engine and consumed by the gateway
// dispatcher. The set is sealed: only types in this package satisfy Command,
// so a dispatcher type switch covers every case.
package command

// Kind names a command variant on the wire and in logs
type Kind string

// Command kinds
const (
	KindAddItem          Kind = "add_item"
	KindRemoveItem       Kind = "remove_item"
	KindClearCart        Kind = "clear_cart"
	KindCheckStock       Kind = "check_stock"
	KindLearnAlias       Kind = "learn_alias"
	KindReportQuery      Kind = "report_query"
	KindBillLookup       Kind = "bill_lookup"
	KindCustomerLookup   Kind = "customer_lookup"
	KindInventoryQuery   Kind = "inventory_query"
	KindSwitchTheme      Kind = "switch_theme"
	KindNavigate         Kind = "navigate"
	KindHardwareAction   Kind = "hardware_action"
	KindDataModification Kind = "data_modification"
	KindAnalyticsQuery   Kind = "analytics_query"
	KindAutoClearance    Kind = "auto_clearance"
	KindAddExpense       Kind = "add_expense"
	KindUnknown          Kind = "unknown"
)

// Command is the sealed union of assistant operations
type Command interface {
	Kind() Kind
	sealed()
}

// AddItem puts a quantity of a product into the active cart.
// Quantity nil means the speaker gave none and the executor must ask.
type AddItem struct {
	ProductName string
	Quantity    *float64
	Unit        string
}

// RemoveItem takes a product line out of the active cart
type RemoveItem struct {
	ProductName string
}

// ClearCart empties the active cart
type ClearCart struct{}

// CheckStock reports the on-hand quantity of a product
type CheckStock struct {
	ProductName string
}

// LearnAlias teaches the vocabulary a new word for an existing product
type LearnAlias struct {
	Alias  string
	Target string
}

// ReportQuery runs a sales or purchasing report.
// Format is "text" or "csv"; Period is a free-form phrase like "today" or "this month".
type ReportQuery struct {
	ReportType string
	Period     string
	Format     string
}

// BillLookup fetches a past bill by number
type BillLookup struct {
	BillNo string
}

// CustomerLookup searches customers by name or phone fragment
type CustomerLookup struct {
	Query string
}

// InventoryQuery answers stock-wide questions such as low or slow stock
type InventoryQuery struct {
	QueryType string
}

// Theme names accepted by SwitchTheme
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// SwitchTheme flips the UI between light and dark
type SwitchTheme struct {
	Theme string
}

// Navigate moves the UI to a named screen
type Navigate struct {
	Route string
	Label string
}

// HardwareOp selects a peripheral action
type HardwareOp string

// Hardware operations
const (
	HardwareOpenDrawer  HardwareOp = "open_drawer"
	HardwareTestPrinter HardwareOp = "test_printer"
	HardwareReadScale   HardwareOp = "read_scale"
)

// HardwareAction drives an attached peripheral
type HardwareAction struct {
	Op HardwareOp
}

// ModTarget selects the product field a DataModification writes
type ModTarget string

// Modification targets
const (
	ModPrice ModTarget = "price"
	ModStock ModTarget = "stock"
)

// DataModification sets the price or stock level of a product
type DataModification struct {
	Target      ModTarget
	ProductName string
	Value       float64
}

// AnalyticsKind selects an analytics subquery
type AnalyticsKind string

// Analytics subqueries
const (
	AnalyticsAlerts       AnalyticsKind = "alerts"
	AnalyticsHealth       AnalyticsKind = "health"
	AnalyticsSelfHeal     AnalyticsKind = "self_heal"
	AnalyticsPredict      AnalyticsKind = "predict_sales"
	AnalyticsTrending     AnalyticsKind = "trending_products"
	AnalyticsDeadStock    AnalyticsKind = "dead_stock"
	AnalyticsWorstSellers AnalyticsKind = "worst_sellers"
	AnalyticsCompare      AnalyticsKind = "compare_sales"
)

// AnalyticsQuery asks for operational analytics
type AnalyticsQuery struct {
	Sub    AnalyticsKind
	Period string
}

// AutoClearance discounts slow-moving stock by a whole percentage
type AutoClearance struct {
	DiscountPercent int
}

// AddExpense records a cash payout against the open session
type AddExpense struct {
	Amount float64
	Reason string
}

// Unknown carries an utterance no pattern claimed.
// The intent engine never emits it; the gateway uses it to route to the
// knowledge fallback while keeping the kind in the sealed set.
type Unknown struct {
	Text string
}

func (AddItem) Kind() Kind          { return KindAddItem }
func (RemoveItem) Kind() Kind       { return KindRemoveItem }
func (ClearCart) Kind() Kind        { return KindClearCart }
func (CheckStock) Kind() Kind       { return KindCheckStock }
func (LearnAlias) Kind() Kind       { return KindLearnAlias }
func (ReportQuery) Kind() Kind      { return KindReportQuery }
func (BillLookup) Kind() Kind       { return KindBillLookup }
func (CustomerLookup) Kind() Kind   { return KindCustomerLookup }
func (InventoryQuery) Kind() Kind   { return KindInventoryQuery }
func (SwitchTheme) Kind() Kind      { return KindSwitchTheme }
func (Navigate) Kind() Kind         { return KindNavigate }
func (HardwareAction) Kind() Kind   { return KindHardwareAction }
func (DataModification) Kind() Kind { return KindDataModification }
func (AnalyticsQuery) Kind() Kind   { return KindAnalyticsQuery }
func (AutoClearance) Kind() Kind    { return KindAutoClearance }
func (AddExpense) Kind() Kind       { return KindAddExpense }
func (Unknown) Kind() Kind          { return KindUnknown }

func (AddItem) sealed()          {}
func (RemoveItem) sealed()       {}
func (ClearCart) sealed()        {}
func (CheckStock) sealed()       {}
func (LearnAlias) sealed()       {}
func (ReportQuery) sealed()      {}
func (BillLookup) sealed()       {}
func (CustomerLookup) sealed()   {}
func (InventoryQuery) sealed()   {}
func (SwitchTheme) sealed()      {}
func (Navigate) sealed()         {}
func (HardwareAction) sealed()   {}
func (DataModification) sealed() {}
func (AnalyticsQuery) sealed()   {}
func (AutoClearance) sealed()    {}
func (AddExpense) sealed()       {}
func (Unknown) sealed()          {}
