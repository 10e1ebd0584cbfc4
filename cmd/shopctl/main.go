package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - migrate:        Apply or roll back schema migrations
// - setup-shipping: Store the shipping policy
// - set-stock:      Overwrite a product's stock quantity
// - fix-inventory:  Release stale pending orders and report reserved stock
// - test-gateway:   Send a sandbox payment request

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	shippingCmd := flag.NewFlagSet("setup-shipping", flag.ExitOnError)
	stockCmd := flag.NewFlagSet("set-stock", flag.ExitOnError)
	fixCmd := flag.NewFlagSet("fix-inventory", flag.ExitOnError)
	gatewayCmd := flag.NewFlagSet("test-gateway", flag.ExitOnError)

	flags := shopctlFlags{
		Migrate: migrateFlags{
			cmd:       migrateCmd,
			direction: migrateCmd.String("direction", "up", "Migration direction (up or down)"),
			steps:     migrateCmd.Int("steps", 1, "Number of migrations to roll back with -direction down"),
		},
		Shipping: shippingFlags{
			cmd:           shippingCmd,
			shippingCost:  shippingCmd.String("shipping-cost", "", "Flat shipping cost"),
			freeThreshold: shippingCmd.String("free-threshold", "", "Subtotal at or above which shipping is free"),
		},
		Stock: stockFlags{
			cmd:       stockCmd,
			productID: stockCmd.Int64("product", 0, "Product ID"),
			quantity:  stockCmd.Int("quantity", -1, "New stock quantity"),
		},
		Fix: fixFlags{
			cmd:       fixCmd,
			olderThan: fixCmd.Duration("older-than", 24*time.Hour, "Release pending orders created before now minus this duration"),
			dryRun:    fixCmd.Bool("dry-run", false, "Only list the orders that would be released"),
		},
		Gateway: gatewayFlags{
			cmd:    gatewayCmd,
			amount: gatewayCmd.String("amount", "1000", "Amount to request"),
		},
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type shopctlFlags struct {
	Migrate  migrateFlags
	Shipping shippingFlags
	Stock    stockFlags
	Fix      fixFlags
	Gateway  gatewayFlags
}

type migrateFlags struct {
	cmd       *flag.FlagSet
	direction *string
	steps     *int
}

type shippingFlags struct {
	cmd           *flag.FlagSet
	shippingCost  *string
	freeThreshold *string
}

type stockFlags struct {
	cmd       *flag.FlagSet
	productID *int64
	quantity  *int
}

type fixFlags struct {
	cmd       *flag.FlagSet
	olderThan *time.Duration
	dryRun    *bool
}

type gatewayFlags struct {
	cmd    *flag.FlagSet
	amount *string
}

func runSubcommand(ctx context.Context, flags *shopctlFlags) error {
	switch os.Args[1] {
	case "migrate":
		return handleMigrate(ctx, flags)
	case "setup-shipping":
		return handleSetupShipping(ctx, flags)
	case "set-stock":
		return handleSetStock(ctx, flags)
	case "fix-inventory":
		return handleFixInventory(ctx, flags)
	case "test-gateway":
		return handleTestGateway(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleMigrate(ctx context.Context, flags *shopctlFlags) error {
	if err := flags.Migrate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse migrate flags")
	}

	return withApp(ctx, func(a *app) error {
		return runMigrate(a, *flags.Migrate.direction, *flags.Migrate.steps)
	})
}

func handleSetupShipping(ctx context.Context, flags *shopctlFlags) error {
	if err := flags.Shipping.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse setup-shipping flags")
	}

	if *flags.Shipping.shippingCost == "" || *flags.Shipping.freeThreshold == "" {
		return errors.New("--shipping-cost and --free-threshold are required for setup-shipping")
	}

	return withApp(ctx, func(a *app) error {
		return a.commands().setupShipping(ctx, *flags.Shipping.shippingCost, *flags.Shipping.freeThreshold)
	})
}

func handleSetStock(ctx context.Context, flags *shopctlFlags) error {
	if err := flags.Stock.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse set-stock flags")
	}

	if *flags.Stock.productID <= 0 || *flags.Stock.quantity < 0 {
		return errors.New("--product and a non-negative --quantity are required for set-stock")
	}

	return withApp(ctx, func(a *app) error {
		return a.commands().setStock(ctx, *flags.Stock.productID, *flags.Stock.quantity)
	})
}

func handleFixInventory(ctx context.Context, flags *shopctlFlags) error {
	if err := flags.Fix.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse fix-inventory flags")
	}

	if *flags.Fix.olderThan <= 0 {
		return errors.New("--older-than must be positive")
	}

	return withApp(ctx, func(a *app) error {
		return a.commands().fixInventory(ctx, time.Now().Add(-*flags.Fix.olderThan), *flags.Fix.dryRun)
	})
}

func handleTestGateway(ctx context.Context, flags *shopctlFlags) error {
	if err := flags.Gateway.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse test-gateway flags")
	}

	return withApp(ctx, func(a *app) error {
		return a.commands().testGateway(ctx, *flags.Gateway.amount)
	})
}

func printUsage() {
	fmt.Println("Usage: shopctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  migrate         Apply (-direction up) or roll back (-direction down -steps N) migrations")
	fmt.Println("  setup-shipping  Store shipping cost and free-shipping threshold")
	fmt.Println("  set-stock       Overwrite a product's stock quantity")
	fmt.Println("  fix-inventory   Release stale pending orders and report reserved stock")
	fmt.Println("  test-gateway    Send a sandbox payment request")
	fmt.Println("")
	fmt.Println("Use 'shopctl <command> -h' for more information about a command.")
}
