package cli

import (
	"github.com/spf13/cobra"

	"github.com/vladislavdragonenkov/estore/internal/export"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.json>",
	Short: "Print a summary of a JSON store export",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	store, err := export.LoadJSON(args[0])
	if err != nil {
		return err
	}

	cmd.Printf("Store: %s\n", store.Name)
	for _, w := range store.Warehouses() {
		cmd.Printf("Warehouse %s (%d workers)\n", w.Location, len(w.Workers()))
		for _, p := range w.Products() {
			cmd.Printf("  %-20s %12.2f x %d\n", p.Name, p.Price, p.Quantity)
		}
	}
	cmd.Printf("Customers: %d\n", len(store.Customers()))
	cmd.Printf("Orders: %d\n", len(store.Orders()))
	for _, o := range store.Orders() {
		cmd.Printf("  %s: %d x %s\n", o.Customer.Name, o.Quantity, o.Product.Name)
	}
	return nil
}
