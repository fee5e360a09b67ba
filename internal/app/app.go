package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/shopswift/storefront/config"
	"github.com/shopswift/storefront/internal/adapter/httphandler"
	"github.com/shopswift/storefront/internal/adapter/kafka"
	"github.com/shopswift/storefront/internal/adapter/storage"
	"github.com/shopswift/storefront/internal/core/catalog"
	"github.com/shopswift/storefront/internal/core/port"
	"github.com/shopswift/storefront/internal/core/service"
	"github.com/shopswift/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type serdes struct {
	ledgerEvent schema.Serde
	order       schema.Serde
}

type producers struct {
	ledgerEvents kafka.LedgerEventsProducer
	orders       kafka.OrdersProducer
}

type coreServices struct {
	browser  port.CatalogBrowser
	cart     port.CartKeeper
	wishlist port.WishlistKeeper
	checkout port.OrderPlacer
}

// App wires the storefront: the catalog and query engine behind the
// browser port, the session ledgers with their snapshot and event
// listeners, and the HTTP view layer. Dependencies are constructed once
// here and passed explicitly; there is no ambient shared state.
type App struct {
	ctx        context.Context
	cfg        config.Config
	serdes     serdes
	snapshots  storage.SnapshotStore
	producers  producers
	services   coreServices
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerdes()
	app.initSnapshotStore()
	app.initProducers()
	app.initCoreServices()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	urls := app.cfg.Broker.SchemaRegistryURLs
	ctx := app.ctx

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	ledgerEventSS := app.cfg.Broker.Topics.LedgerEvents + "-value"
	ledgerEventSerde, err := schema.NewSerdeLedgerEventV1(
		ctx,
		schema.SubjectOpt(ledgerEventSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	orderSS := app.cfg.Broker.Topics.Orders + "-value"
	orderSerde, err := schema.NewSerdeOrderV1(
		ctx,
		schema.SubjectOpt(orderSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.serdes.ledgerEvent = ledgerEventSerde
	app.serdes.order = orderSerde
}

func (app *App) initSnapshotStore() {
	const op = "App.initSnapshotStore"

	snapshots, err := storage.NewSnapshotStore(app.cfg.Store.Path)
	if err != nil {
		app.fallDown(op, err)
	}
	app.snapshots = snapshots
}

func (app *App) initProducers() {
	const op = "App.initProducers"

	ctx := app.ctx
	seedBrokers := app.cfg.Broker.SeedBrokers

	ledgerEvents, err := kafka.NewLedgerEventsProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, app.cfg.Broker.Topics.LedgerEvents),
		kafka.ProducerEncoderOpt(app.serdes.ledgerEvent),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	orders, err := kafka.NewOrdersProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, app.cfg.Broker.Topics.Orders),
		kafka.ProducerEncoderOpt(app.serdes.order),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.producers.ledgerEvents = ledgerEvents
	app.producers.orders = orders
}

func (app *App) initCoreServices() {
	browser := service.NewCatalog(catalog.New())

	cart := service.NewCart(browser, app.snapshots)
	cart.Watch(app.snapshots)
	cart.Watch(app.producers.ledgerEvents)

	wishlist := service.NewWishlist(browser, app.snapshots)
	wishlist.Watch(app.snapshots)
	wishlist.Watch(app.producers.ledgerEvents)

	app.services = coreServices{
		browser:  browser,
		cart:     cart,
		wishlist: wishlist,
		checkout: service.NewCheckout(cart, app.producers.orders),
	}
}

func (app *App) initHTTPServer() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, app.services.browser)
	httphandler.RegisterCart(mux, app.services.cart)
	httphandler.RegisterWishlist(mux, app.services.wishlist)
	httphandler.RegisterCheckout(mux, app.services.checkout)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(addr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.producers.ledgerEvents.Close()
	app.producers.orders.Close()
	app.snapshots.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
