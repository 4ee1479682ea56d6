package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tilltalk/internal/adapters/notify"
	"tilltalk/internal/core/command"
	reportsdom "tilltalk/internal/services/reports/domain"
)

func (s *Svc) handleAnalyticsQuery(ctx context.Context, c command.AnalyticsQuery) (command.Result, error) {
	switch c.Sub {
	case command.AnalyticsCompare:
		return s.compareSales(ctx)
	case command.AnalyticsTrending:
		return s.trendingProducts(ctx)
	case command.AnalyticsWorstSellers:
		return s.worstSellers(ctx)
	case command.AnalyticsPredict:
		return s.predictSales(ctx)
	case command.AnalyticsAlerts:
		return s.checkAlerts(ctx)
	case command.AnalyticsHealth:
		return s.systemHealth(ctx)
	case command.AnalyticsSelfHeal:
		s.col.Notify.Publish(notify.LevelInfo, "reload")
		return command.Ok("♻️ Restarting interface..."), nil
	case command.AnalyticsDeadStock:
		return s.deadStock(ctx)
	default:
		return command.Fail("Unknown analytics query."), nil
	}
}

// lastDays builds a day-aligned window ending after today
func (s *Svc) lastDays(n int) reportsdom.Window {
	now := s.now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return reportsdom.Window{Since: day.AddDate(0, 0, -n), Until: day.AddDate(0, 0, 1)}
}

func (s *Svc) compareSales(ctx context.Context) (command.Result, error) {
	w := reportsdom.ResolvePeriod(s.now(), "today")
	cmp, err := s.col.Reports.Compare(ctx, w)
	if err != nil {
		return command.Result{}, err
	}
	arrow, sign := "📈", "+"
	if cmp.PercentChange < 0 {
		arrow, sign = "📉", ""
	}
	msg := fmt.Sprintf("📊 **Sales Comparison (Today vs Yesterday)**\n\n"+
		"Today: **₹%s**\nYesterday: ₹%s\nGrowth: %s **%s%.1f%%**",
		num(cmp.Current), num(cmp.Previous), arrow, sign, cmp.PercentChange)
	return command.Ok(msg), nil
}

func (s *Svc) trendingProducts(ctx context.Context) (command.Result, error) {
	top, err := s.col.Reports.TopProducts(ctx, s.lastDays(7), 5, false)
	if err != nil {
		return command.Result{}, err
	}
	if len(top) == 0 {
		return command.Ok("No sales data found for this week."), nil
	}
	var b strings.Builder
	for i, p := range top {
		fmt.Fprintf(&b, "%d. **%s** - %s sold (₹%s)\n", i+1, p.Name, num(p.Qty), num(p.Revenue))
	}
	return command.Ok("🔥 **Trending Products (Last 7 Days)**\n\n" + b.String()), nil
}

func (s *Svc) worstSellers(ctx context.Context) (command.Result, error) {
	worst, err := s.col.Reports.TopProducts(ctx, s.lastDays(30), 5, true)
	if err != nil {
		return command.Result{}, err
	}
	if len(worst) == 0 {
		return command.Ok("Could not analyze product performance."), nil
	}

	header := "📉 **Slow Moving Products (Last 30 Days)**"
	for _, p := range worst {
		if p.Qty == 0 {
			header = "⚠️ **Zero Sales Alert (Last 30 Days)**\nThese items have not sold at all:"
			break
		}
	}
	var b strings.Builder
	for _, p := range worst {
		sold := num(p.Qty) + " sold"
		if p.Qty == 0 {
			sold = "🚫 0 Sold"
		}
		fmt.Fprintf(&b, "- **%s**: %s (₹%s)\n", p.Name, sold, num(p.Revenue))
	}
	return command.Ok(fmt.Sprintf("%s\n\n%s\n*Consider running a promotion for these items.*",
		header, b.String())), nil
}

func (s *Svc) predictSales(ctx context.Context) (command.Result, error) {
	w := reportsdom.ResolvePeriod(s.now(), "this month")
	proj, err := s.col.Reports.Project(ctx, w)
	if err != nil {
		return command.Result{}, err
	}
	msg := fmt.Sprintf("🔮 **Sales Projection (End of Month)**\n\n"+
		"Current Sales: ₹%s\nDaily Average: ₹%s\nPredicted Total: **₹%s**\n\n"+
		"*Based on performance so far this month.*",
		num(proj.MonthToDate), num(proj.DailyAverage), num(proj.Projected))
	return command.Ok(msg), nil
}

func (s *Svc) checkAlerts(ctx context.Context) (command.Result, error) {
	low, err := s.col.Catalog.LowStock(ctx, s.lowStockAt)
	if err != nil {
		return command.Result{}, err
	}
	if len(low) == 0 {
		return command.Ok("✅ **System Healthy**\nI checked for alerts and everything looks good. No low stock warnings found."), nil
	}
	var b strings.Builder
	for _, p := range low {
		fmt.Fprintf(&b, "- **%s**: Only %s left\n", p.Name, num(p.Stock))
	}
	return command.Ok(fmt.Sprintf("⚠️ **System Alerts Found**\n\nI found the following low stock warnings:\n%s\n*Time to reorder!*",
		b.String())), nil
}

func (s *Svc) systemHealth(ctx context.Context) (command.Result, error) {
	if s.col.Guard == nil {
		return command.Ok("**System Diagnostic** ⚠️\n\n🗄️ **Database**: health check not configured"), nil
	}
	if err := s.col.Guard(ctx); err != nil {
		return command.Ok(fmt.Sprintf("**System Diagnostic** ⚠️\n\n🗄️ **Database**: %s (DEGRADED)", err)), nil
	}
	return command.Ok("**System Diagnostic** ✅\n\n🗄️ **Database**: All stores reachable (ONLINE)"), nil
}

func (s *Svc) deadStock(ctx context.Context) (command.Result, error) {
	dead, err := s.col.Catalog.SlowMoving(ctx, s.deadStockDays)
	if err != nil {
		return command.Result{}, err
	}
	if len(dead) == 0 {
		return command.Ok("✅ **No Dead Stock**\nNothing has sat unsold for 180 days."), nil
	}
	show := dead
	if len(show) > 5 {
		show = show[:5]
	}
	var b strings.Builder
	for _, p := range show {
		fmt.Fprintf(&b, "- **%s**: %s units (₹%s)\n", p.Name, num(p.Stock), num(p.Price))
	}
	return command.Ok(fmt.Sprintf("🕸️ **Dead Stock Alert (6 Months)**\n\nFound %d items that haven't sold in 180 days:\n%s\n*Say \"Clearance\" to markdown these items by 25%%.*",
		len(dead), b.String())), nil
}
