// bluestrek is a terminal front-end over the client library: each
// subcommand logs in, drives one screen's flow and prints the result.
// Ctrl-C cancels whatever request is in flight.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bluestrek/internal/api"
	"bluestrek/internal/config"
	"bluestrek/internal/model"
	"bluestrek/internal/screen"
	"bluestrek/internal/service"
	"bluestrek/internal/validation"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := api.NewClient(cfg, log.Logger)

	if err := run(ctx, client, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: bluestrek <command> [flags]

commands:
  products         list the catalog with stock and availability
  orders           list past orders
  place-order      validate and submit an order
  purchases        list purchase lines
  add-purchase     record a new purchase line
  update-purchase  edit quantity/price of an existing line
  stats            daily order totals for one month

every command takes -login and -password for the session.`)
}

func run(ctx context.Context, client *api.Client, command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	login := fs.String("login", "admin", "account login")
	password := fs.String("password", "admin", "account password")

	var (
		query    = fs.String("q", "", "product search filter")
		clientID = fs.Int64("client", 0, "client id")
		product  = fs.String("product", "", "product reference")
		rolls    = fs.String("rolls", "", "rolls to order (roll products)")
		meters   = fs.String("meters", "", "meters to order (roll products)")
		qty      = fs.String("qty", "", "quantity (plain products, purchases)")
		price    = fs.String("price", "", "purchase price")
		id       = fs.Int64("id", 0, "purchase line id")
		month    = fs.Int("month", int(time.Now().Month()), "month 1..12")
		year     = fs.Int("year", time.Now().Year(), "year")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	auth := service.NewAuthService(client, log.Logger)
	if _, err := auth.Login(ctx, *login, *password); err != nil {
		return err
	}

	switch command {
	case "products":
		return runProducts(ctx, client, *query)
	case "orders":
		return runOrders(ctx, client)
	case "place-order":
		return runPlaceOrder(ctx, client, *clientID, *product, validation.OrderInput{
			Rolls: *rolls, Meters: *meters, Quantity: *qty,
		})
	case "purchases":
		return runPurchases(ctx, client)
	case "add-purchase":
		return runAddPurchase(ctx, client, validation.PurchaseInput{
			ProductReference: *product, Quantity: *qty, Price: *price,
		})
	case "update-purchase":
		return runUpdatePurchase(ctx, client, *id, *qty, *price)
	case "stats":
		return runStats(ctx, client, *month, *year)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func runProducts(ctx context.Context, client *api.Client, query string) error {
	svc := service.NewProductService(client)
	products, err := svc.ListProducts(ctx)
	if err != nil {
		return err
	}

	list := screen.NewProductList(products).Search(query)
	for _, row := range list.Rows() {
		marker := " "
		if row.Available {
			marker = "*"
		}
		fmt.Printf("%s %-10s %-30s %s\n", marker, row.Product.Reference, row.Product.Designation, row.StockLine)
	}
	return nil
}

func runOrders(ctx context.Context, client *api.Client) error {
	svc := service.NewOrderService(client, log.Logger)
	orders, err := svc.ListOrders(ctx)
	if err != nil {
		return err
	}
	printOrders(orders)
	return nil
}

func runPlaceOrder(ctx context.Context, apiClient *api.Client, clientID int64, productRef string, in validation.OrderInput) error {
	svc := service.NewOrderService(apiClient, log.Logger)

	clients, products, err := svc.LoadReferenceData(ctx)
	if err != nil {
		return err
	}

	form := screen.NewOrderForm().
		SelectClient(findClient(clients, clientID)).
		SelectProduct(findProduct(products, productRef)).
		TypeRolls(in.Rolls).
		TypeMeters(in.Meters).
		TypeQuantity(in.Quantity)
	if form.StockLine != "" {
		fmt.Println(form.StockLine)
	}
	if form.VirtualRolls > 0 {
		fmt.Printf("≈ %d roll(s)\n", form.VirtualRolls)
	}

	orders, err := svc.PlaceOrder(ctx, form.Client, form.Product, form.Input())
	if err != nil {
		return err
	}

	fmt.Println("order placed")
	printOrders(orders)
	return nil
}

func runPurchases(ctx context.Context, client *api.Client) error {
	svc := service.NewPurchaseService(client, log.Logger)
	purchases, err := svc.ListPurchases(ctx)
	if err != nil {
		return err
	}
	printPurchases(purchases)
	return nil
}

func runAddPurchase(ctx context.Context, client *api.Client, in validation.PurchaseInput) error {
	table := screen.PurchaseTable{NewRow: in}
	if !table.CanAddRow() {
		return &validation.Error{Kind: validation.MissingFields}
	}

	svc := service.NewPurchaseService(client, log.Logger)
	purchases, err := svc.CreatePurchase(ctx, in)
	if err != nil {
		return err
	}
	printPurchases(purchases)
	return nil
}

func runUpdatePurchase(ctx context.Context, client *api.Client, id int64, qty, price string) error {
	svc := service.NewPurchaseService(client, log.Logger)
	purchases, err := svc.UpdatePurchase(ctx, id, qty, price)
	if err != nil {
		return err
	}
	printPurchases(purchases)
	return nil
}

func runStats(ctx context.Context, client *api.Client, month, year int) error {
	svc := service.NewStatsService(client)
	rows, err := svc.DailyOrderStats(ctx, month, year)
	if err != nil {
		return err
	}

	dash := screen.Dashboard{Month: month, Year: year}.WithStats(rows)
	for _, point := range dash.Series {
		fmt.Printf("%-3s %s\n", point.Label, point.Total.String())
	}
	return nil
}

func printOrders(orders []model.Order) {
	for _, o := range orders {
		fmt.Printf("%-10s %-20s %-30s %s\n", o.OrderDate, o.ClientName, o.ProductDesignation, o.DisplayQuantity())
	}
}

func printPurchases(purchases []model.Purchase) {
	for _, p := range purchases {
		fmt.Printf("%-4d %-10s %-30s %8s x %s\n",
			p.ID, p.PurchaseDate, p.Designation, p.QuantityPurchased.String(), p.PurchasePrice.String())
	}
}

func findClient(clients []model.Client, id int64) *model.Client {
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i]
		}
	}
	return nil
}

func findProduct(products []model.Product, reference string) *model.Product {
	for i := range products {
		if products[i].Reference == reference {
			return &products[i]
		}
	}
	return nil
}
