package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophspend/internal/client/client"
)

// Dashboard prints the summary for a period (month by default).
func (a *App) Dashboard(ctx context.Context, args []string) error {
	period := client.DefaultPeriod
	if len(args) > 0 {
		period = args[0]
	}

	sum, err := a.dashboard.Summary(ctx, period)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Period: %s", sum.Period)
	if sum.StartDate != "" {
		fmt.Fprintf(a.out, " (%s .. %s)", sum.StartDate, sum.EndDate)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Total spent: %s in %d expense(s)\n", money(sum.Total), sum.Count)

	if sum.Count == 0 && len(sum.ByCategory) == 0 {
		fmt.Fprintln(a.out, "No expenses yet.")
		return nil
	}

	if sum.Largest != nil {
		fmt.Fprintf(a.out, "Largest: %s on %s (%s)\n", money(sum.Largest.Amount), sum.Largest.Date, sum.Largest.CategoryName)
	}

	fmt.Fprintln(a.out, "\nBy category:")
	tw := newTable(a.out)
	for _, c := range sum.ByCategory {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", c.Name, money(c.Amount), percent(c.Share))
	}
	_ = tw.Flush()

	if len(sum.ByDay) > 0 {
		fmt.Fprintln(a.out, "\nBy day:")
		tw = newTable(a.out)
		for _, d := range sum.ByDay {
			fmt.Fprintf(tw, "  %s\t%s\n", d.Date, money(d.Amount))
		}
		_ = tw.Flush()
	}
	return nil
}
