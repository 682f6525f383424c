package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophspend/internal/client/client"
	"github.com/dmitrijs2005/gophspend/internal/client/models"
	"github.com/dmitrijs2005/gophspend/internal/client/services"
)

var errUsageID = errors.New("please give the expense id")

// parseQuery turns command arguments into a list query: nothing means the
// default period, one argument is a period keyword, two are a date range.
func parseQuery(args []string) (client.ExpenseQuery, error) {
	switch len(args) {
	case 0:
		return client.ExpenseQuery{Period: client.DefaultPeriod}, nil
	case 1:
		return client.ExpenseQuery{Period: args[0]}, nil
	case 2:
		from, err := models.ParseDate(args[0])
		if err != nil {
			return client.ExpenseQuery{}, services.ErrInvalidDate
		}
		to, err := models.ParseDate(args[1])
		if err != nil {
			return client.ExpenseQuery{}, services.ErrInvalidDate
		}
		if to.Before(from) {
			return client.ExpenseQuery{}, errors.New("the end date is before the start date")
		}
		return client.ExpenseQuery{From: from, To: to}, nil
	}
	return client.ExpenseQuery{}, errors.New("usage: expenses [period | from to]")
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, errUsageID
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid expense id %q", args[0])
	}
	return id, nil
}

// Expenses lists expenses for a period or a date range.
func (a *App) Expenses(ctx context.Context, args []string) error {
	q, err := parseQuery(args)
	if err != nil {
		return err
	}

	resp, err := a.expenses.List(ctx, q)
	if err != nil {
		return err
	}

	if resp.StartDate != "" {
		fmt.Fprintf(a.out, "%s .. %s\n", resp.StartDate, resp.EndDate)
	}
	if len(resp.Expenses) == 0 {
		fmt.Fprintln(a.out, "No expenses found.")
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tDATE\tCATEGORY\tAMOUNT\tDESCRIPTION")
	var total float64
	for _, e := range resp.Expenses {
		total += e.Amount
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", e.ID, e.Date, e.CategoryName, money(e.Amount), e.Description)
	}
	_ = tw.Flush()
	fmt.Fprintf(a.out, "Total: %s\n", money(total))
	return nil
}

// pickCategory resolves an answer that is either a list number or a name.
func pickCategory(answer string, names []string) string {
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(names) {
		return names[n-1]
	}
	return answer
}

func (a *App) printCategoryChoices(ctx context.Context) []string {
	names, err := a.categories.List(ctx)
	if err != nil {
		a.logger.Debug(ctx, "category list unavailable for picker", "error", err)
		return nil
	}
	for i, n := range names {
		fmt.Fprintf(a.out, "  %d) %s\n", i+1, n)
	}
	return names
}

// AddExpense collects the expense form and creates the expense.
func (a *App) AddExpense(ctx context.Context) error {
	var in services.ExpenseInput
	var err error

	if in.Amount, err = getSimpleText(a.reader, "Amount", a.out); err != nil {
		return err
	}
	if in.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return err
	}
	if in.Date, err = getSimpleText(a.reader, "Date (YYYY-MM-DD, empty for today)", a.out); err != nil {
		return err
	}

	names := a.printCategoryChoices(ctx)
	answer, err := getSimpleText(a.reader, "Category (number or name)", a.out)
	if err != nil {
		return err
	}
	in.Category = pickCategory(strings.TrimSpace(answer), names)

	e, err := a.expenses.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Expense %d added: %s on %s (%s)\n", e.ID, money(e.Amount), e.Date, e.CategoryName)
	return nil
}

// EditExpense updates the fields the user fills in; blank answers keep the
// current value.
func (a *App) EditExpense(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Leave a field empty to keep its current value.")
	var in services.ExpenseEdit
	if in.Amount, err = getSimpleText(a.reader, "Amount", a.out); err != nil {
		return err
	}
	if in.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return err
	}
	if in.Date, err = getSimpleText(a.reader, "Date (YYYY-MM-DD)", a.out); err != nil {
		return err
	}
	names := a.printCategoryChoices(ctx)
	answer, err := getSimpleText(a.reader, "Category (number or name)", a.out)
	if err != nil {
		return err
	}
	if answer = strings.TrimSpace(answer); answer != "" {
		in.Category = pickCategory(answer, names)
	}

	if _, err := a.expenses.Update(ctx, id, in); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Expense %d updated.\n", id)
	return nil
}

func (a *App) DeleteExpense(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := a.expenses.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Expense %d deleted.\n", id)
	return nil
}
