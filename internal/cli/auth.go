package cli

import (
	"context"
	"fmt"
)

// Login prompts for the account email and password and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	session, err := a.auth.SignIn(ctx, email, string(password))
	if err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", session.User.Email)
	return nil
}

// Logout ends the current session.
func (a *App) Logout(ctx context.Context) error {
	a.auth.SignOut(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
