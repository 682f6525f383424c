package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) Categories(ctx context.Context) error {
	names, err := a.categories.List(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(a.out, "No categories yet. Use 'seedcategories' to create the default set.")
		return nil
	}
	for i, n := range names {
		fmt.Fprintf(a.out, "%d) %s\n", i+1, n)
	}
	return nil
}

func (a *App) AddCategory(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Category name", a.out)
	if err != nil {
		return err
	}
	if err := a.categories.Create(ctx, name); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Category %q added.\n", strings.TrimSpace(name))
	return nil
}

func (a *App) RenameCategory(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Current name", a.out)
	if err != nil {
		return err
	}
	newName, err := getSimpleText(a.reader, "New name", a.out)
	if err != nil {
		return err
	}
	if err := a.categories.Rename(ctx, name, newName); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Category %q renamed to %q.\n", strings.TrimSpace(name), strings.TrimSpace(newName))
	return nil
}

// DeleteCategory takes the name from the arguments, which may contain
// spaces, or prompts for it.
func (a *App) DeleteCategory(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		var err error
		if name, err = getSimpleText(a.reader, "Category name", a.out); err != nil {
			return err
		}
	}
	if err := a.categories.Delete(ctx, name); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Category %q deleted.\n", strings.TrimSpace(name))
	return nil
}

func (a *App) SeedCategories(ctx context.Context) error {
	created, err := a.categories.SeedDefaults(ctx)
	if len(created) > 0 {
		fmt.Fprintf(a.out, "Created %d categories: %s\n", len(created), strings.Join(created, ", "))
	}
	if err != nil {
		return err
	}
	if len(created) == 0 {
		fmt.Fprintln(a.out, "You already have categories; nothing to do.")
	}
	return nil
}
