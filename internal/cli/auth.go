package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/coursenotes/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and creates a new account.
// Per the signup contract it does not start a session; the user logs in
// afterwards. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.auth.Signup(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrAccountExists) || errors.Is(err, common.ErrValidation) {
			fmt.Println(err.Error())
			return err
		}
		a.log.Error(ctx, "signup failed", "error", err)
		return err
	}

	fmt.Println("Account created. Use 'login' to sign in.")
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// is persisted, the account becomes current and no course is selected yet.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Println(err.Error())
			return err
		}
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	a.account = account
	a.selectedCourseID = ""
	fmt.Printf("Signed in as %s\n", account.Email)
	return nil
}

// Logout clears the persisted session marker and the in-memory session
// state. Logging out while signed out is a no-op.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.account = nil
	a.selectedCourseID = ""
	fmt.Println("Signed out.")
	return nil
}
