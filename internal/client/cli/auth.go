package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophspend/internal/client/guard"
	"github.com/dmitrijs2005/gophspend/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for an identity (email, username or phone) and a hidden
// password and signs in. The guard moves the user to the dashboard once the
// session holds a token.
func (a *App) Login(ctx context.Context) error {
	identity, err := getSimpleText(a.reader, "Email/Username/Phone", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	if err := a.session.SignIn(ctx, identity, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Signed in.")
	return nil
}

// Register collects the sign-up form. A password confirmation mismatch is
// reported without contacting the server. On success the user is sent back
// to the login screen.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if req.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if req.Phone, err = getSimpleText(a.reader, "WhatsApp number", a.out); err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer wipe(confirm)

	req.Password, req.ConfirmPassword = string(password), string(confirm)

	if _, err := a.session.SignUp(ctx, req); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registration successful. Please log in.")
	a.navigate(guard.LocationLogin)
	return nil
}

// Logout ends the session. The guard sends the user to the login screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
