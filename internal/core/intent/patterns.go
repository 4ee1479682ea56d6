package intent

import (
	"regexp"
	"strconv"
	"strings"

	"tilltalk/internal/core/command"
)

// pattern is one cascade rule. extract receives the submatches and the
// full normalized utterance; it must not fail, only shape a command.
type pattern struct {
	re      *regexp.Regexp
	extract func(m []string, full string) command.Command
}

var (
	reAmount     = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
	reWholeInt   = regexp.MustCompile(`(\d+)`)
	reCurrency   = regexp.MustCompile(`\b(rupees|rs|inr)\b`)
	rePrepNoise  = regexp.MustCompile(`\b(for|on)\b`)
	reFileWords  = regexp.MustCompile(`\b(pdf|csv|download)\b`)
	reGiveWords  = regexp.MustCompile(`\b(give|send|generate|get)\b`)
	reHeavyWords = regexp.MustCompile(`\b(list|details|invoice)\b`)
	reSpaces     = regexp.MustCompile(`\s+`)
)

// buildPatterns returns the cascade in priority order. The order is part
// of the contract: "add expense 250 for cleaning" also satisfies the
// add-item grammar at the bottom, and only ordering keeps it an expense.
func buildPatterns(e *Engine) []pattern {
	return []pattern{
		// expense logging outranks everything so "expense" never becomes a product
		{
			re: regexp.MustCompile(`\b(add|log|record)\s+(expense|cost|spending|payout)\b(.*)`),
			extract: func(m []string, _ string) command.Command {
				tail := strings.TrimSpace(m[3])
				var amount float64
				reason := "Miscellaneous"
				if am := reAmount.FindString(tail); am != "" {
					amount, _ = strconv.ParseFloat(am, 64)
					clean := strings.Replace(tail, am, "", 1)
					clean = reCurrency.ReplaceAllString(clean, "")
					clean = rePrepNoise.ReplaceAllString(clean, "")
					clean = strings.TrimSpace(reSpaces.ReplaceAllString(clean, " "))
					if clean != "" {
						reason = clean
					}
				} else if tail != "" {
					reason = strings.TrimSpace(rePrepNoise.ReplaceAllString(tail, " "))
					reason = reSpaces.ReplaceAllString(reason, " ")
				}
				return command.AddExpense{Amount: amount, Reason: reason}
			},
		},
		// theme switching: "turn on white mode", "dark mode please"
		{
			re: regexp.MustCompile(`\b(turn|switch|enable|set|change|activate)?.*\b(white|light|day|dark|night)\s+(mode|theme)?`),
			extract: func(_ []string, full string) command.Command {
				theme := command.ThemeLight
				if strings.Contains(full, "dark") || strings.Contains(full, "night") {
					theme = command.ThemeDark
				}
				return command.SwitchTheme{Theme: theme}
			},
		},
		// peripherals sit above navigation so "open drawer" is never a
		// navigation to nowhere
		{
			re: regexp.MustCompile(`\b(open|test|read|check)\s+(drawer|printer|scale|weight|cash box|till)`),
			extract: func(m []string, _ string) command.Command {
				target := m[2]
				op := command.HardwareOpenDrawer
				switch {
				case strings.Contains(target, "printer"):
					op = command.HardwareTestPrinter
				case strings.Contains(target, "scale"), strings.Contains(target, "weight"):
					op = command.HardwareReadScale
				}
				return command.HardwareAction{Op: op}
			},
		},
		// navigation: "go to settings", "open dashboard", "show customers"
		{
			re: regexp.MustCompile(`\b(go to|open|show|view|navigate to|launch)\s+(.+)`),
			extract: func(m []string, _ string) command.Command {
				target := m[2]
				has := func(ss ...string) bool {
					for _, s := range ss {
						if strings.Contains(target, s) {
							return true
						}
					}
					return false
				}
				switch {
				case has("dashboard", "home"):
					return command.Navigate{Route: "/", Label: "Dashboard"}
				case has("bill", "checkout", "sales"):
					return command.Navigate{Route: "/billing", Label: "Billing"}
				case has("settings", "config"):
					return command.Navigate{Route: "/settings", Label: "Settings"}
				case has("customer", "client"):
					return command.Navigate{Route: "/customers", Label: "Customers"}
				case has("stock", "inventory"):
					return command.Navigate{Route: "/stocktake", Label: "Stocktake"}
				case has("staff", "employee"):
					return command.Navigate{Route: "/staff", Label: "Staff Management"}
				}
				return command.Navigate{Route: "/", Label: "Home"}
			},
		},
		// operational alerts: "check alerts", "any warnings"
		{
			re: regexp.MustCompile(`\b(check|show|any)\s+(alerts|warnings|notifications)\b`),
			extract: func(_ []string, _ string) command.Command {
				return command.AnalyticsQuery{Sub: command.AnalyticsAlerts}
			},
		},
		// "system status", "backup check"
		{
			re: regexp.MustCompile(`\b(system|health|connection|backup)\s+(status|check)\b`),
			extract: func(_ []string, _ string) command.Command {
				return command.AnalyticsQuery{Sub: command.AnalyticsHealth}
			},
		},
		// "restart app", "fix ui"
		{
			re: regexp.MustCompile(`\b(reload|restart|refresh|reset|fix)\s+(app|system|page|ui)\b`),
			extract: func(_ []string, _ string) command.Command {
				return command.AnalyticsQuery{Sub: command.AnalyticsSelfHeal}
			},
		},
		// analytics: "compare sales", "trending items", "predict revenue"
		{
			re: regexp.MustCompile(`\b(compare|growth|vs|versus|trending|trends|best\s+sell|top\s+sell|predict|forecast|projection|target|not\s+selling|worst\s+sell|least\s+sold|slow\s+moving|dead\s+stock)\b`),
			extract: func(_ []string, full string) command.Command {
				has := func(ss ...string) bool {
					for _, s := range ss {
						if strings.Contains(full, s) {
							return true
						}
					}
					return false
				}
				switch {
				case has("predict", "forecast", "projection", "target"):
					return command.AnalyticsQuery{Sub: command.AnalyticsPredict}
				case has("trending", "trend", "best sell", "top sell", "hot", "popular"):
					return command.AnalyticsQuery{Sub: command.AnalyticsTrending}
				case has("dead"):
					return command.AnalyticsQuery{Sub: command.AnalyticsDeadStock}
				case has("not selling", "worst", "least", "slow"):
					return command.AnalyticsQuery{Sub: command.AnalyticsWorstSellers}
				}
				return command.AnalyticsQuery{Sub: command.AnalyticsCompare, Period: "today"}
			},
		},
		// numeric assignment: "set price of milk to 20", "update stock of sugar to 50"
		{
			re: regexp.MustCompile(`\b(set|change|update|make)\s+(?:the\s+)?(price|rate|cost|stock|quantity|inventory)\s+(?:of|for)?\s+(.+)\s+(?:to|as|is)\s+(\d+(?:\.\d+)?)`),
			extract: func(m []string, _ string) command.Command {
				target := command.ModPrice
				switch m[2] {
				case "stock", "quantity", "inventory":
					target = command.ModStock
				}
				v, _ := strconv.ParseFloat(m[4], 64)
				return command.DataModification{
					Target:      target,
					ProductName: e.resolveRef(m[3]),
					Value:       v,
				}
			},
		},
		// batch markdown: "clearance", "clearance 50", "clear stock"
		{
			re: regexp.MustCompile(`\b(clearance|clear\s+stock|markdown\s+dead)\b`),
			extract: func(_ []string, full string) command.Command {
				percent := 25
				if n := reWholeInt.FindString(full); n != "" {
					if v, err := strconv.Atoi(n); err == nil {
						percent = v
					}
				}
				return command.AutoClearance{DiscountPercent: percent}
			},
		},
		// reports: "sales today", "profit this month", "suppliers list"
		{
			re: regexp.MustCompile(`\b(sales|report|profit|turnover|collection|details|summary|status|supplier|suppliers|list)\s*(?:of|for)?\s*(today|todays|yesterday|this week|this month|last month|daily|weekly|monthly)?\s*(?:as|in|format)?\s*(?:a)?\s*(pdf|csv|download|list)?`),
			extract: func(m []string, full string) command.Command {
				period := "today"
				if m[2] != "" {
					period = strings.Replace(m[2], "todays", "today", 1)
				}
				format := "text"
				if reFileWords.MatchString(full) {
					format = "csv"
				} else if reGiveWords.MatchString(full) && reHeavyWords.MatchString(full) {
					// "give me the sales list" wants a file, "show sales" wants text
					format = "csv"
				}
				return command.ReportQuery{ReportType: m[1], Period: period, Format: format}
			},
		},
		// bill lookup: "show bill 123", "invoice no 456"
		{
			re: regexp.MustCompile(`\b(bill|invoice|receipt)\s*(?:no|number|#)?\s*(\d+)`),
			extract: func(m []string, _ string) command.Command {
				return command.BillLookup{BillNo: m[2]}
			},
		},
		// customer lookup: "customer john"
		{
			re: regexp.MustCompile(`\b(customer|client)\s+(.+)`),
			extract: func(m []string, _ string) command.Command {
				return command.CustomerLookup{Query: e.resolveRef(m[2])}
			},
		},
		// stock-wide questions: "low stock", "out of stock"
		{
			re: regexp.MustCompile(`\b(low stock|out of stock|dead stock|expiry|negative|alerts)`),
			extract: func(m []string, _ string) command.Command {
				return command.InventoryQuery{QueryType: m[1]}
			},
		},
		// vocabulary: "learn chaya is tea", "teach mettt to sugar"
		{
			re: regexp.MustCompile(`\b(?:learn|teach|set)\s+(.+)\s+(?:as|is|means|to)\s+(.+)`),
			extract: func(m []string, _ string) command.Command {
				return command.LearnAlias{
					Alias:  strings.TrimSpace(m[1]),
					Target: strings.TrimSpace(m[2]),
				}
			},
		},
		// "clear cart", "empty basket"
		{
			re: regexp.MustCompile(`\b(clear|empty|reset)\s+(cart|basket|bill)`),
			extract: func(_ []string, _ string) command.Command {
				return command.ClearCart{}
			},
		},
		// "stock of milk", "ethra sugar"
		{
			re: regexp.MustCompile(`\b(stock|quantity|count|ethra|evide)\s+(of\s+)?(.+)`),
			extract: func(m []string, _ string) command.Command {
				return command.CheckStock{ProductName: e.resolveRef(m[3])}
			},
		},
		// "remove milk", "delete soap"
		{
			re: regexp.MustCompile(`\b(remove|delete|cancel|clear|kalayu|maatu)\s+(.+)`),
			extract: func(m []string, _ string) command.Command {
				return command.RemoveItem{ProductName: e.resolveRef(m[2])}
			},
		},
		// "add 2 milk", "give me 5 kg sugar"
		{
			re: regexp.MustCompile(`\b(add|give|need|want|tharu|venam|edu)\s+(?:me\s+)?(\d+(?:\.\d+)?)\s*(?:(kg|g|gm|gram|grams|pcs|nos|liter|litre|l|ml)\b)?\s+(.+)`),
			extract: func(m []string, _ string) command.Command {
				var qty *float64
				if v, err := strconv.ParseFloat(m[2], 64); err == nil {
					qty = &v
				}
				return command.AddItem{
					ProductName: e.resolveRef(m[4]),
					Quantity:    qty,
					Unit:        m[3],
				}
			},
		},
		// quantityless add is the broadest grammar and must stay last;
		// unset quantity tells the dispatcher to ask, not assume 1
		{
			re: regexp.MustCompile(`\b(add|give|need|want|tharu|venam|edu)\s+(?:me\s+)?(.+)`),
			extract: func(m []string, _ string) command.Command {
				return command.AddItem{ProductName: e.resolveRef(m[2])}
			},
		},
	}
}
