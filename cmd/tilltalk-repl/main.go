// Command tilltalk-repl runs the command gateway against stdin.
// Each line is dispatched exactly as the /command endpoint would
// dispatch it, with replies and hardware notices printed to stdout.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"tilltalk/internal/adapters/export"
	"tilltalk/internal/adapters/hardware"
	"tilltalk/internal/adapters/notify"
	"tilltalk/internal/platform/config"
	"tilltalk/internal/platform/logger"
	"tilltalk/internal/platform/store"

	"tilltalk/internal/modkit"

	aliasmod "tilltalk/internal/services/alias/module"
	billingmod "tilltalk/internal/services/billing/module"
	cartmod "tilltalk/internal/services/cart/module"
	catalogmod "tilltalk/internal/services/catalog/module"
	cashmod "tilltalk/internal/services/cash/module"
	customersmod "tilltalk/internal/services/customers/module"
	gwdom "tilltalk/internal/services/gateway/domain"
	gatewaymod "tilltalk/internal/services/gateway/module"
	reportsmod "tilltalk/internal/services/reports/module"
)

func main() {
	root := config.New()
	cfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	l := logger.Get()

	st, err := store.Open(
		context.Background(),
		store.Config{
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
			CH: store.CHConfig{
				Enabled: true,
				URL:     chCfg.MustString("DBURL"),
				Role:    "tilltalk",
				Tag:     "repl",
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	deps := modkit.Deps{
		Cfg: cfg,
		PG:  st.PG,
		CH:  st.CH,
	}

	aliasM := aliasmod.New(deps)
	catalogM := catalogmod.New(deps)
	cartM := cartmod.New(deps)
	billingM := billingmod.New(deps)
	customersM := customersmod.New(deps)
	reportsM := reportsmod.New(deps)
	cashM := cashmod.New(deps)

	bridge := hardware.FromConfig(hardware.Config{
		Driver:  cfg.MayEnum("HW_DRIVER", "none", "none", "escpos"),
		Addr:    cfg.MayString("HW_ADDR", ""),
		Timeout: cfg.MayDuration("HW_TIMEOUT", 0),
	})
	bus := notify.NewBus(cfg.MayInt("NOTIFY_BUFFER", 64))

	gatewayM := gatewaymod.New(deps, modkit.WithPorts(gatewaymod.Ports{
		Collaborators: gwdom.Collaborators{
			Aliases:   aliasM.Service(),
			Catalog:   catalogM.Service(),
			Cart:      cartM.Service(),
			Billing:   billingM.Service(),
			Customers: customersM.Service(),
			Reports:   reportsM.Service(),
			Cash:      cashM.Service(),
			Hardware:  bridge,
			Export:    export.NewCSV(cfg.MayString("EXPORT_DIR", "")),
			Notify:    bus,
			Guard:     st.Guard,
		},
	}))
	gw := gatewayM.Service()

	fmt.Println("tilltalk ready. Type a command, or \"quit\" to exit.")
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			break
		}
		line := sc.Text()
		if line == "quit" || line == "exit" {
			break
		}
		if line == "" {
			continue
		}

		res := gw.Handle(context.Background(), line)
		fmt.Println(res.Message)

		// surface anything the counter UI would have been signalled with
		for _, n := range bus.Drain() {
			fmt.Printf("  [%s] %s\n", n.Level, n.Text)
		}
	}
	if err := sc.Err(); err != nil {
		l.Error().Err(err).Msg("stdin read failed")
	}
}
