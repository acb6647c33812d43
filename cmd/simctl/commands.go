package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/config"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/app"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/logger"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/money"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "simctl",
		Short:         "Maintenance tasks for the SIM store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if !verbose {
				return nil
			}
			return logger.Init("debug", true)
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "log to stderr")

	orders := &cobra.Command{
		Use:   "orders",
		Short: "Inspect and move orders",
	}
	orders.AddCommand(ordersListCmd(), ordersTransitionCmd())
	root.AddCommand(migrateCmd(), seedCmd(), orders)
	return root
}

// withApp loads configuration and runs fn against a freshly built App.
func withApp(ctx context.Context, seed bool, fn func(*app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !seed {
		cfg.Database.Seed = false
	}
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	runErr := fn(a)

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Close(closeCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the sims and orders tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), false, func(*app.App) error {
				fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
				return nil
			})
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo catalog into empty tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), false, func(a *app.App) error {
				if err := a.Seed(cmd.Context()); err != nil {
					return err
				}
				sims, err := a.SimRepo.Count(cmd.Context())
				if err != nil {
					return err
				}
				orders, err := a.OrderRepo.Count(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "sims: %d, orders: %d\n", sims, orders)
				return nil
			})
		},
	}
}

func ordersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List orders, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), true, func(a *app.App) error {
				orders, err := a.Orders.List(cmd.Context())
				if err != nil {
					return err
				}
				return printOrders(cmd.OutOrStdout(), orders)
			})
		},
	}
}

func ordersTransitionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transition <order-id> <status>",
		Short: "Move an order to processing, completed or cancelled",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := model.OrderStatus(args[1])
			if !target.Valid() {
				return fmt.Errorf("unknown status %q", args[1])
			}
			return withApp(cmd.Context(), true, func(a *app.App) error {
				order, err := a.Orders.Transition(cmd.Context(), args[0], target)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", order.ID, order.Status)
				return nil
			})
		},
	}
}

func printOrders(w io.Writer, orders []*model.Order) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNUMBER\tPRICE\tCUSTOMER\tSTATUS\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, o.PhoneNumber, money.FormatVND(o.Price), o.CustomerName, o.Status,
			time.UnixMilli(o.CreatedAt).Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}
