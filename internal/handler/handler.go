//go:generate mockgen -source ./handler.go -destination=./mocks/handler.go -package=mock_handler
package handler

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
)

type Storage interface {
	RecalculateAllStorageFees(ctx context.Context) (int, error)
	AdvanceStatus(ctx context.Context, actor, id, status string) (*storage.Package, error)
	OverrideStatus(ctx context.Context, actor, id, status, reason string) (*storage.Package, error)
	ListAllReturns(ctx context.Context, page, limit int) ([]*storage.ReturnRequest, error)
	EstimateReturnCost(weightKg decimal.Decimal, dims pricing.Dimensions, urgency string) (decimal.Decimal, error)
	ListCarriers() []carrier.Option
}

// Handler backs the operator console. Every change it makes is recorded
// in package history under actor.
type Handler struct {
	storage Storage
	actor   string
}

func New(storage Storage, actor string) *Handler {
	return &Handler{storage: storage, actor: actor}
}

func (h *Handler) Commands() []*cobra.Command {
	return []*cobra.Command{
		h.recalcFeesCmd(),
		h.advanceCmd(),
		h.overrideCmd(),
		h.listReturnsCmd(),
		h.estimateReturnCmd(),
		h.carriersCmd(),
	}
}

func (h *Handler) recalcFeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recalc-fees",
		Short: "Recompute the storage fee of every stored package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := h.storage.RecalculateAllStorageFees(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Storage fees updated: %d\n", n)
			return nil
		},
	}
}

func (h *Handler) advanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advance <packageID> <status>",
		Short: "Move a package to the next status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg, err := h.storage.AdvanceStatus(cmd.Context(), h.actor, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Package %s is now %s\n", pkg.ID, pkg.Status)
			return nil
		},
	}
}

func (h *Handler) overrideCmd() *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   "override <packageID> <status>",
		Short: "Force a package into any status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg, err := h.storage.OverrideStatus(cmd.Context(), h.actor, args[0], args[1], reason)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Package %s forced to %s\n", pkg.ID, pkg.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "Why the usual transition rules are bypassed")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func (h *Handler) listReturnsCmd() *cobra.Command {
	var page, limit int
	cmd := &cobra.Command{
		Use:   "list-returns",
		Short: "List return requests, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if page <= 0 || limit <= 0 {
				return fmt.Errorf("page and limit must be positive")
			}
			returns, err := h.storage.ListAllReturns(cmd.Context(), page, limit)
			if err != nil {
				return err
			}
			printReturns(cmd.OutOrStdout(), returns)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "Page size")
	return cmd
}

func printReturns(out io.Writer, returns []*storage.ReturnRequest) {
	if len(returns) == 0 {
		fmt.Fprintln(out, "No returns found")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REFERENCE\tPACKAGE\tTYPE\tSTATUS\tCOST\tCREATED")
	for _, r := range returns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Reference, r.PackageID, r.Type, r.Status, r.ShippingCost.StringFixed(2), r.CreatedAt.Format("2006-01-02"))
	}
	tw.Flush()
}

func (h *Handler) estimateReturnCmd() *cobra.Command {
	var (
		weight, length, width, height float64
		urgency                       string
	)
	cmd := &cobra.Command{
		Use:   "estimate-return",
		Short: "Quote the shipping cost of a return",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cost, err := h.storage.EstimateReturnCost(
				decimal.NewFromFloat(weight),
				pricing.NewDimensions(length, width, height),
				urgency,
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Shipping cost: %s\n", cost.StringFixed(2))
			return nil
		},
	}
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	cmd.Flags().Float64Var(&length, "length", 0, "Length in cm")
	cmd.Flags().Float64Var(&width, "width", 0, "Width in cm")
	cmd.Flags().Float64Var(&height, "height", 0, "Height in cm")
	cmd.Flags().StringVar(&urgency, "urgency", string(pricing.UrgencyNormal), "faible, normal, urgent or critique")
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}

func (h *Handler) carriersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "carriers",
		Short: "Show the carrier catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPRICE\tDELIVERY")
			for _, o := range h.storage.ListCarriers() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.ID, o.Name, o.Price.StringFixed(2), o.DeliveryTime)
			}
			return tw.Flush()
		},
	}
}
