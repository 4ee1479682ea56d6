// Package api assembles the HTTP API: the alias vocabulary endpoints and
// the natural-language command gateway, plus the meta/health surface.
package api

import (
	"tilltalk/internal/adapters/export"
	"tilltalk/internal/adapters/hardware"
	"tilltalk/internal/adapters/notify"
	"tilltalk/internal/platform/config"
	perr "tilltalk/internal/platform/errors"
	"tilltalk/internal/platform/logger"
	phttp "tilltalk/internal/platform/net/http"
	"tilltalk/internal/platform/store"

	"tilltalk/internal/modkit"
	"tilltalk/internal/modkit/httpkit"
	"tilltalk/internal/modkit/module"
	"tilltalk/internal/modkit/swaggerkit"

	aliasmod "tilltalk/internal/services/alias/module"
	billingmod "tilltalk/internal/services/billing/module"
	cartmod "tilltalk/internal/services/cart/module"
	catalogmod "tilltalk/internal/services/catalog/module"
	cashmod "tilltalk/internal/services/cash/module"
	customersmod "tilltalk/internal/services/customers/module"
	gwdom "tilltalk/internal/services/gateway/domain"
	gatewaymod "tilltalk/internal/services/gateway/module"
	metamod "tilltalk/internal/services/meta/module"
	reportsmod "tilltalk/internal/services/reports/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// collaborator modules first; the gateway consumes their service ports
	aliasM := aliasmod.New(deps)
	catalogM := catalogmod.New(deps)
	cartM := cartmod.New(deps)
	billingM := billingmod.New(deps)
	customersM := customersmod.New(deps)
	reportsM := reportsmod.New(deps)
	cashM := cashmod.New(deps)

	bridge := hardware.FromConfig(hardware.Config{
		Driver:  opt.Config.MayEnum("HW_DRIVER", "none", "none", "escpos"),
		Addr:    opt.Config.MayString("HW_ADDR", ""),
		Timeout: opt.Config.MayDuration("HW_TIMEOUT", 0),
	})
	exporter := export.NewCSV(opt.Config.MayString("EXPORT_DIR", ""))
	bus := notify.NewBus(opt.Config.MayInt("NOTIFY_BUFFER", 64))

	// counter devices authenticate with a shared bearer token when one is
	// configured; an empty AUTH_TOKEN leaves the endpoint open
	var gwOpts []modkit.Option
	if tok := opt.Config.MayString("AUTH_TOKEN", ""); tok != "" {
		port := httpkit.NewPortFunc(func(raw string) (string, string, error) {
			if raw != tok {
				return "", "", perr.Unauthorizedf("invalid bearer token")
			}
			return "counter", "", nil
		})
		gwOpts = append(gwOpts, modkit.WithMiddlewares(httpkit.Auth(port)))
	}

	gwOpts = append(gwOpts, modkit.WithPorts(gatewaymod.Ports{
		Collaborators: gwdom.Collaborators{
			Aliases:   aliasM.Service(),
			Catalog:   catalogM.Service(),
			Cart:      cartM.Service(),
			Billing:   billingM.Service(),
			Customers: customersM.Service(),
			Reports:   reportsM.Service(),
			Cash:      cashM.Service(),
			Hardware:  bridge,
			Export:    exporter,
			Notify:    bus,
			Guard:     opt.Store.Guard,
		},
	}))
	gatewayM := gatewaymod.New(deps, gwOpts...)

	mods := []module.Module{
		metamod.New(deps),
		aliasM,
		catalogM,
		cartM,
		billingM,
		customersM,
		reportsM,
		cashM,
		gatewayM,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
