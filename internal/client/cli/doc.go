// Package cli provides the interactive GophSpend command-line client.
//
// It wires the session, the route guard and the finance services into a
// REPL. The guard owns the current location: while no token is present only
// the login and register screens are reachable, and a successful sign in
// moves the user to the dashboard.
//
// Key features:
//   - Login / Register / Logout
//   - Dashboard summary for a period
//   - Expenses: list by period or date range, add, edit, delete
//   - Categories: list, add, rename, delete, seed defaults
//   - Settings overview
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
