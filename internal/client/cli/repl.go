package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophspend/internal/client/client"
	"github.com/dmitrijs2005/gophspend/internal/client/guard"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	currentLocation() guard.Location
	navigate(loc guard.Location) guard.Location

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Dashboard(ctx context.Context, args []string) error
	Expenses(ctx context.Context, args []string) error
	AddExpense(ctx context.Context) error
	EditExpense(ctx context.Context, args []string) error
	DeleteExpense(ctx context.Context, args []string) error

	Categories(ctx context.Context) error
	AddCategory(ctx context.Context) error
	RenameCategory(ctx context.Context) error
	DeleteCategory(ctx context.Context, args []string) error
	SeedCategories(ctx context.Context) error

	Settings(ctx context.Context) error
}

const (
	authHelp = "Available commands: login, register, help, exit"
	mainHelp = "Available commands: home|dashboard [period], expenses [period | from to], addexpense, " +
		"editexpense <id>, deleteexpense <id>, categories, addcategory, renamecategory, " +
		"deletecategory <name>, seedcategories, settings, logout, help, exit"
)

// runREPL starts a simple read–eval–print loop for the GophSpend CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'. Which commands are accepted depends on the
// current location: the login/register area only knows how to authenticate.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by handlers are shown via client.UserMessage; the user
// retries manually.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(promptFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			if a.currentLocation().InAuthArea() {
				printlnFn(authHelp)
			} else {
				printlnFn(mainHelp)
			}
			continue
		}

		var handled bool
		if a.currentLocation().InAuthArea() {
			handled, err = dispatchAuth(ctx, a, cmd)
		} else {
			handled, err = dispatchMain(ctx, a, cmd, args)
		}
		switch {
		case !handled:
			printlnFn("Unknown command:", cmd)
		case err != nil:
			printlnFn("Error:", client.UserMessage(err))
		}
	}
}

func dispatchAuth(ctx context.Context, a execIface, cmd string) (bool, error) {
	switch cmd {
	case "login":
		a.navigate(guard.LocationLogin)
		return true, a.Login(ctx)
	case "register":
		a.navigate(guard.LocationRegister)
		return true, a.Register(ctx)
	}
	return false, nil
}

func dispatchMain(ctx context.Context, a execIface, cmd string, args []string) (bool, error) {
	switch cmd {
	case "home", "dashboard":
		a.navigate(guard.LocationHome)
		return true, a.Dashboard(ctx, args)
	case "expenses":
		a.navigate(guard.LocationExpenses)
		return true, a.Expenses(ctx, args)
	case "addexpense":
		a.navigate(guard.LocationExpenses)
		return true, a.AddExpense(ctx)
	case "editexpense":
		a.navigate(guard.LocationExpenses)
		return true, a.EditExpense(ctx, args)
	case "deleteexpense":
		a.navigate(guard.LocationExpenses)
		return true, a.DeleteExpense(ctx, args)
	case "categories":
		a.navigate(guard.LocationCategories)
		return true, a.Categories(ctx)
	case "addcategory":
		a.navigate(guard.LocationCategories)
		return true, a.AddCategory(ctx)
	case "renamecategory":
		a.navigate(guard.LocationCategories)
		return true, a.RenameCategory(ctx)
	case "deletecategory":
		a.navigate(guard.LocationCategories)
		return true, a.DeleteCategory(ctx, args)
	case "seedcategories":
		a.navigate(guard.LocationCategories)
		return true, a.SeedCategories(ctx)
	case "settings":
		a.navigate(guard.LocationSettings)
		return true, a.Settings(ctx)
	case "logout":
		return true, a.Logout(ctx)
	}
	return false, nil
}
