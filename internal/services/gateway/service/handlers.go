package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"tilltalk/internal/adapters/hardware"
	"tilltalk/internal/adapters/notify"
	"tilltalk/internal/core/command"
	"tilltalk/internal/core/fuzzy"
	perr "tilltalk/internal/platform/errors"
	cartdom "tilltalk/internal/services/cart/domain"
	cashdom "tilltalk/internal/services/cash/domain"
	catalogdom "tilltalk/internal/services/catalog/domain"
	reportsdom "tilltalk/internal/services/reports/domain"
)

// resolveProduct fuzzy-matches query against the full catalog by name and
// code. It returns ok=false when nothing clears the default threshold.
func (s *Svc) resolveProduct(ctx context.Context, query string) (catalogdom.Product, bool, error) {
	products, err := s.col.Catalog.ListAll(ctx)
	if err != nil {
		return catalogdom.Product{}, false, err
	}
	cands := make([]fuzzy.Candidate, len(products))
	for i, p := range products {
		cands[i] = fuzzy.Candidate{Index: i, Name: p.Name, Code: p.Code}
	}
	m, ok := fuzzy.BestMatch(query, cands, fuzzy.DefaultThreshold)
	if !ok {
		return catalogdom.Product{}, false, nil
	}
	return products[m.Index], true, nil
}

// findBySubstring is the looser lookup used by remove and stock checks:
// case-insensitive substring on the catalog name
func (s *Svc) findBySubstring(ctx context.Context, query string) (catalogdom.Product, bool, error) {
	products, err := s.col.Catalog.ListAll(ctx)
	if err != nil {
		return catalogdom.Product{}, false, err
	}
	q := strings.ToLower(query)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			return p, true, nil
		}
	}
	return catalogdom.Product{}, false, nil
}

func (s *Svc) handleAddItem(ctx context.Context, c command.AddItem) (command.Result, error) {
	product, ok, err := s.resolveProduct(ctx, c.ProductName)
	if err != nil {
		return command.Result{}, err
	}
	if !ok {
		return command.Fail(fmt.Sprintf("Could not find product %q", c.ProductName)), nil
	}

	// missing quantity is a clarification, not an error; the cart stays untouched
	if c.Quantity == nil {
		return command.Fail(fmt.Sprintf("How much %s do you want?", product.Name)), nil
	}
	qty := *c.Quantity

	// warn-and-add on low stock: the sale proceeds, the operator hears about it
	if product.Stock < qty {
		s.col.Notify.Publish(notify.LevelWarn, fmt.Sprintf("Warning: Low Stock (%s)", num(product.Stock)))
	}

	s.col.Cart.Add(cartdom.Line{
		ProductID: product.ID,
		Name:      product.Name,
		Qty:       qty,
		Price:     product.Price,
		Unit:      product.Unit,
	})
	return command.Did(command.ActionAddedToCart,
		fmt.Sprintf("Added %s %s", num(qty), product.Name)), nil
}

func (s *Svc) handleRemoveItem(ctx context.Context, c command.RemoveItem) (command.Result, error) {
	product, ok, err := s.findBySubstring(ctx, c.ProductName)
	if err != nil {
		return command.Result{}, err
	}
	if !ok {
		return command.Fail(fmt.Sprintf("Product %q not found", c.ProductName)), nil
	}
	s.col.Cart.Remove(product.ID)
	return command.Did(command.ActionRemovedFromCart, "Removed "+product.Name), nil
}

func (s *Svc) handleCheckStock(ctx context.Context, c command.CheckStock) (command.Result, error) {
	product, ok, err := s.findBySubstring(ctx, c.ProductName)
	if err != nil {
		return command.Result{}, err
	}
	if !ok {
		return command.Fail(fmt.Sprintf("Product %q not found", c.ProductName)), nil
	}
	return command.Ok(fmt.Sprintf("%s Stock: %s units", product.Name, num(product.Stock))), nil
}

func (s *Svc) handleLearnAlias(ctx context.Context, c command.LearnAlias) (command.Result, error) {
	if err := s.col.Aliases.Add(ctx, c.Alias, c.Target); err != nil {
		return command.Result{}, err
	}
	return command.Did(command.ActionLearnedAlias,
		fmt.Sprintf("Got it! I've learned that %q means %q.", c.Alias, c.Target)), nil
}

// periodLabel renders a period phrase for report headings
func periodLabel(period string) string {
	switch period {
	case "", "today", "daily":
		return "Today"
	case "yesterday":
		return "Yesterday"
	case "this week", "weekly":
		return "This Week"
	case "this month", "monthly":
		return "This Month"
	case "last month":
		return "Last Month"
	default:
		return period
	}
}

func (s *Svc) handleReportQuery(ctx context.Context, c command.ReportQuery) (command.Result, error) {
	w := reportsdom.ResolvePeriod(s.now(), c.Period)
	label := periodLabel(c.Period)

	switch {
	case strings.Contains(c.ReportType, "profit"):
		return s.profitReport(ctx, w, label, c.Format)
	case containsAny(c.ReportType, "sale", "report", "summary", "details", "status"):
		return s.salesReport(ctx, w, label, c.Format)
	case strings.Contains(c.ReportType, "supplier"):
		return s.supplierReport(ctx, c.Format)
	default:
		return command.Fail(fmt.Sprintf("I don't know how to generate a %q report yet.", c.ReportType)), nil
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func (s *Svc) profitReport(ctx context.Context, w reportsdom.Window, label, format string) (command.Result, error) {
	rows, err := s.col.Reports.Profit(ctx, w)
	if err != nil {
		return command.Result{}, err
	}
	if len(rows) == 0 {
		return command.Ok("📉 **No Sales Data**\nThere are no sales records for this period, so I can't generate a report."), nil
	}

	if format == "csv" {
		if s.col.Export == nil {
			return command.Fail("⚠️ Report export is not configured on this counter."), nil
		}
		table := make([][]string, len(rows))
		for i, r := range rows {
			table[i] = []string{r.Name, num(r.Revenue), num(r.Cost), num(r.Profit)}
		}
		path, err := s.col.Export.WriteCSV("profit "+label, []string{"name", "revenue", "cost", "profit"}, table)
		if err != nil {
			return command.Result{}, err
		}
		return command.Ok(fmt.Sprintf("📄 **Report Ready!**\nProfit analysis saved as: **%s**", path)), nil
	}

	var revenue, cost float64
	for _, r := range rows {
		revenue += r.Revenue
		cost += r.Cost
	}
	expenses, err := s.col.Reports.Expenses(ctx, w)
	if err != nil {
		return command.Result{}, err
	}
	var paidOut float64
	for _, e := range expenses {
		paidOut += e.Amount
	}
	gross := revenue - cost
	net := gross - paidOut
	margin := 0.0
	if revenue > 0 {
		margin = net / revenue * 100
	}

	top := rows
	if len(top) > 3 {
		top = top[:3]
	}
	var b strings.Builder
	for _, r := range top {
		share := 0.0
		if gross > 0 {
			share = r.Profit / gross * 100
		}
		fmt.Fprintf(&b, "- **%s**: ₹%s (%.0f%%)\n", r.Name, num(r.Profit), share)
	}

	msg := fmt.Sprintf("💰 **Net Profit Analysis (%s)**\n"+
		"Net Profit: **₹%s** (Margin: %.1f%%)\n"+
		"Revenue: ₹%s | COGS: ₹%s\n"+
		"Expenses/Payouts: ₹%s\n\n"+
		"**Top Performers:**\n%s\n"+
		"*Say \"Profit CSV\" for full details.*",
		label, num(net), margin, num(revenue), num(cost), num(paidOut), b.String())
	return command.Ok(msg), nil
}

func (s *Svc) salesReport(ctx context.Context, w reportsdom.Window, label, format string) (command.Result, error) {
	sum, err := s.col.Reports.Summary(ctx, w)
	if err != nil {
		return command.Result{}, err
	}
	if sum.Bills == 0 {
		return command.Ok(fmt.Sprintf("No sales recorded for %s.", label)), nil
	}
	splits, err := s.col.Reports.PaymentSplits(ctx, w)
	if err != nil {
		return command.Result{}, err
	}

	if format == "csv" {
		if s.col.Export == nil {
			return command.Fail("⚠️ Report export is not configured on this counter."), nil
		}
		table := make([][]string, len(splits))
		for i, p := range splits {
			table[i] = []string{p.Mode, num(p.Total)}
		}
		path, err := s.col.Export.WriteCSV("sales "+label, []string{"payment_mode", "total"}, table)
		if err != nil {
			return command.Result{}, err
		}
		return command.Ok(fmt.Sprintf("📄 **Sales Report Ready!**\nSaved for %s as: **%s**", label, path)), nil
	}

	parts := make([]string, len(splits))
	for i, p := range splits {
		parts[i] = fmt.Sprintf("%s: ₹%s", p.Mode, num(p.Total))
	}
	paymentStr := strings.Join(parts, " | ")
	if paymentStr == "" {
		paymentStr = "No payment data"
	}
	msg := fmt.Sprintf("📊 **Sales Report (%s)**\n"+
		"Total Sales: **₹%s**\n"+
		"Transactions: %d\n\n"+
		"**By Payment Mode:**\n%s\n\n"+
		"*Say \"Sales CSV\" for the exported report.*",
		label, num(sum.Total), sum.Bills, paymentStr)
	return command.Ok(msg), nil
}

func (s *Svc) supplierReport(ctx context.Context, format string) (command.Result, error) {
	suppliers, err := s.col.Reports.Suppliers(ctx)
	if err != nil {
		return command.Result{}, err
	}
	if format == "csv" {
		if s.col.Export == nil {
			return command.Fail("⚠️ Report export is not configured on this counter."), nil
		}
		table := make([][]string, len(suppliers))
		for i, sup := range suppliers {
			table[i] = []string{sup.Name, sup.Phone}
		}
		path, err := s.col.Export.WriteCSV("suppliers", []string{"name", "phone"}, table)
		if err != nil {
			return command.Result{}, err
		}
		return command.Ok(fmt.Sprintf("📄 **Supplier List Ready!**\nExported: **%s**", path)), nil
	}
	return command.Ok(fmt.Sprintf("🚚 **Suppliers**\nFound %d active suppliers.", len(suppliers))), nil
}

func (s *Svc) handleBillLookup(ctx context.Context, c command.BillLookup) (command.Result, error) {
	n, err := strconv.ParseInt(c.BillNo, 10, 64)
	if err != nil {
		return command.Fail(fmt.Sprintf("🚫 Bill #%s not found.", c.BillNo)), nil
	}
	bill, err := s.col.Billing.Get(ctx, n)
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return command.Fail(fmt.Sprintf("🚫 Bill #%d not found.", n)), nil
	}
	if err != nil {
		return command.Result{}, err
	}

	var items strings.Builder
	for _, it := range bill.Items {
		fmt.Fprintf(&items, "- %s x%s (%s)\n", it.ProductName, num(it.Qty), num(it.Total))
	}
	customer := bill.CustomerName
	if customer == "" {
		customer = "Walk-in"
	}
	msg := fmt.Sprintf("🧾 **Bill #%d**\nDate: %s\nCustomer: %s\nTotal: ₹%s\n\n**Items:**\n%s",
		bill.BillNo, bill.Date.Format("2006-01-02"), customer, num(bill.Total), items.String())
	return command.Ok(msg), nil
}

func (s *Svc) handleCustomerLookup(ctx context.Context, c command.CustomerLookup) (command.Result, error) {
	customers, err := s.col.Customers.Search(ctx, c.Query)
	if err != nil {
		return command.Result{}, err
	}
	if len(customers) == 0 {
		return command.Fail(fmt.Sprintf("🚫 No customer found matching %q.", c.Query)), nil
	}
	cu := customers[0]
	msg := fmt.Sprintf("👤 **Customer Details**\nName: %s\nPhone: %s\nBalance: ₹%s\nTotal Visits: %d",
		cu.Name, cu.Phone, num(cu.Balance), cu.Visits)
	return command.Ok(msg), nil
}

func (s *Svc) handleInventoryQuery(ctx context.Context, c command.InventoryQuery) (command.Result, error) {
	if !containsAny(c.QueryType, "low", "out") {
		return command.Fail("I can only check for 'Low Stock' right now."), nil
	}
	low, err := s.col.Catalog.LowStock(ctx, s.lowStockAt)
	if err != nil {
		return command.Result{}, err
	}
	if len(low) == 0 {
		return command.Ok("✅ Inventory is healthy! No low stock items."), nil
	}
	show := low
	if len(show) > 5 {
		show = show[:5]
	}
	var b strings.Builder
	for _, p := range show {
		fmt.Fprintf(&b, "- %s: %s left\n", p.Name, num(p.Stock))
	}
	return command.Ok(fmt.Sprintf("⚠️ **Low Stock Alert**\nFound %d items running low:\n\n%s",
		len(low), b.String())), nil
}

func (s *Svc) handleSwitchTheme(c command.SwitchTheme) (command.Result, error) {
	s.col.Notify.Publish(notify.LevelInfo, "theme:"+c.Theme)
	if c.Theme == command.ThemeLight {
		return command.Did(command.ActionThemeSwitched,
			"☀️ Switched to **White Mode** (Light Theme). My eyes feel better!"), nil
	}
	return command.Did(command.ActionThemeSwitched,
		"🌙 Switched to **Dark Mode**. Stealth mode activated."), nil
}

func (s *Svc) handleNavigate(c command.Navigate) (command.Result, error) {
	s.col.Notify.Publish(notify.LevelInfo, "navigate:"+c.Route)
	return command.Did(command.ActionNavigated,
		fmt.Sprintf("🚀 **Teleporting...**\nOpening %s.", c.Label)), nil
}

func (s *Svc) handleHardwareAction(ctx context.Context, c command.HardwareAction) (command.Result, error) {
	switch c.Op {
	case command.HardwareOpenDrawer:
		if err := s.col.Hardware.OpenDrawer(ctx); err != nil {
			return hardwareFailure(err), nil
		}
		return command.Did(command.ActionDrawerOpened, "🔓 Cash Drawer Opened."), nil
	case command.HardwareTestPrinter:
		if err := s.col.Hardware.PrintTest(ctx); err != nil {
			return hardwareFailure(err), nil
		}
		return command.Did(command.ActionPrinterTested, "🖨️ Printer Test Sent."), nil
	case command.HardwareReadScale:
		kg, err := s.col.Hardware.ReadScale(ctx)
		if err != nil {
			return hardwareFailure(err), nil
		}
		return command.Did(command.ActionScaleRead,
			fmt.Sprintf("⚖️ Scale Weight: **%s kg**", num(kg))), nil
	default:
		return command.Fail("Unknown hardware action."), nil
	}
}

// hardwareFailure keeps "no peripheral" distinct from a faulting one
func hardwareFailure(err error) command.Result {
	if errors.Is(err, hardware.ErrUnavailable) {
		return command.Fail("⚠️ Hardware control is not available on this counter.")
	}
	return command.Fail("⚠️ Hardware Error: " + err.Error())
}

func (s *Svc) handleDataModification(ctx context.Context, c command.DataModification) (command.Result, error) {
	product, ok, err := s.resolveProduct(ctx, c.ProductName)
	if err != nil {
		return command.Result{}, err
	}
	if !ok {
		return command.Fail(fmt.Sprintf("Could not find product %q", c.ProductName)), nil
	}

	switch c.Target {
	case command.ModPrice:
		if err := s.col.Catalog.UpdatePrice(ctx, product.ID, c.Value); err != nil {
			return command.Result{}, err
		}
		return command.Did(command.ActionPriceUpdated,
			fmt.Sprintf("✅ Updated price of **%s** to ₹%s", product.Name, num(c.Value))), nil
	case command.ModStock:
		if err := s.col.Catalog.UpdateStock(ctx, product.ID, c.Value); err != nil {
			return command.Result{}, err
		}
		return command.Did(command.ActionStockUpdated,
			fmt.Sprintf("✅ Updated stock of **%s** to %s units", product.Name, num(c.Value))), nil
	default:
		return command.Fail("Failed to update data."), nil
	}
}

func (s *Svc) handleAutoClearance(ctx context.Context, c command.AutoClearance) (command.Result, error) {
	dead, err := s.col.Catalog.SlowMoving(ctx, s.deadStockDays)
	if err != nil {
		return command.Result{}, err
	}
	if len(dead) == 0 {
		return command.Ok("No dead stock found to clear."), nil
	}

	percent := c.DiscountPercent
	if percent <= 0 || percent >= 100 {
		percent = defaultClearancePct
	}
	factor := float64(100-percent) / 100

	// best effort: a failed reprice skips the item, everything already
	// marked down stays marked down
	count := 0
	for _, p := range dead {
		newPrice := math.Floor(p.Price * factor)
		if err := s.col.Catalog.UpdatePrice(ctx, p.ID, newPrice); err != nil {
			s.log.Warn().Err(err).Str("product", p.Name).Msg("clearance reprice skipped")
			continue
		}
		count++
	}
	return command.Did(command.ActionClearanceApplied,
		fmt.Sprintf("🏷️ **Clearance Event Started!**\n\nI have marked down **%d** dead stock items by **%d%%**.\n\n*Check the 'Dead Stock' report to see them.*",
			count, percent)), nil
}

func (s *Svc) handleAddExpense(ctx context.Context, c command.AddExpense) (command.Result, error) {
	session, err := s.col.Cash.Current(ctx)
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return command.Fail("⚠️ No open cash session. Please open the register first."), nil
	}
	if err != nil {
		return command.Result{}, err
	}
	if err := s.col.Cash.AddTransaction(ctx, session.ID, cashdom.TxPayout, c.Amount, c.Reason); err != nil {
		return command.Result{}, err
	}
	return command.Did(command.ActionExpenseAdded,
		fmt.Sprintf("💸 **Expense Recorded**\nLogged ₹%s for %q.", num(c.Amount), c.Reason)), nil
}
