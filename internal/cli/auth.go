package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email, display name, and password, and attempts to
// create a new account. Signup failures (taken email or name) are reported to
// the user, never returned: only input I/O errors propagate. A successful
// signup leaves the new user logged in with both collections mirrored.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if !a.auth.Signup(ctx, email, string(password), name) {
		printlnFn("Signup failed: email or name already taken")
		return nil
	}

	a.refresh(ctx)
	printlnFn("Success!")
	return nil
}

// Login prompts for an identifier (email or display name) and password and
// tries to authenticate. Bad credentials are reported, not returned.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter email or name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if !a.auth.Login(ctx, identifier, string(password)) {
		printlnFn("Login failed: invalid credentials")
		return nil
	}

	a.refresh(ctx)
	printlnFn("Success!")
	return nil
}

// Logout drops the session pointer and empties both in-memory mirrors.
// Stored data stays untouched.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.refresh(ctx)
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the active user, if any.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.auth.CurrentUser()
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(u.Name, "<"+u.Email+">")
	return nil
}
