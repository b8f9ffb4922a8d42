package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/domain/model"
)

func newJSONEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc
}

func printRecipes(w io.Writer, recipes []*model.Recipe) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RECIPE\tINGREDIENTS\tCOST")
	for _, r := range recipes {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Name(), r.Len(), dto.Money(r.TotalCost()))
	}
	return tw.Flush()
}

func printShoppingList(w io.Writer, report model.ShoppingReport) error {
	if report.ItemCount == 0 {
		_, err := fmt.Fprintln(w, "Nothing planned.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, g := range report.Groups {
		fmt.Fprintf(tw, "%s\t\t\t%s\n", g.Category, dto.Money(g.Subtotal))
		for _, i := range g.Items {
			fmt.Fprintf(tw, "  %s\t%s %s\t%s\t%s\n", i.Name, dto.Quantity(i.Quantity), i.Unit, dto.Money(i.UnitPrice), dto.Money(i.TotalCost()))
		}
	}
	fmt.Fprintf(tw, "TOTAL\t\t\t%s\n", dto.Money(report.Total))
	return tw.Flush()
}
