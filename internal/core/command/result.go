package command

// Action tags recorded on successful state-changing results
const (
	ActionAddedToCart      = "ADDED_TO_CART"
	ActionRemovedFromCart  = "REMOVED_FROM_CART"
	ActionClearedCart      = "CLEARED_CART"
	ActionLearnedAlias     = "LEARNED_ALIAS"
	ActionThemeSwitched    = "THEME_SWITCHED"
	ActionNavigated        = "NAVIGATED"
	ActionDrawerOpened     = "DRAWER_OPENED"
	ActionPrinterTested    = "PRINTER_TESTED"
	ActionScaleRead        = "SCALE_READ"
	ActionPriceUpdated     = "PRICE_UPDATED"
	ActionStockUpdated     = "STOCK_UPDATED"
	ActionClearanceApplied = "CLEARANCE_APPLIED"
	ActionExpenseAdded     = "EXPENSE_ADDED"
)

// Result is the uniform outcome of handling one utterance or command.
// Message is operator-facing text; ActionTaken is set only when state changed.
type Result struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ActionTaken string `json:"action_taken,omitempty"`
}

// Ok builds a successful Result without an action tag
func Ok(msg string) Result { return Result{Success: true, Message: msg} }

// Did builds a successful Result carrying an action tag
func Did(action, msg string) Result {
	return Result{Success: true, Message: msg, ActionTaken: action}
}

// Fail builds an unsuccessful Result
func Fail(msg string) Result { return Result{Success: false, Message: msg} }
