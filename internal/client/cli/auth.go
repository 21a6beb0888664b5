package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/lifeplan/lifeplan-cli/internal/client/auth"
	"github.com/lifeplan/lifeplan-cli/internal/client/models"
	"github.com/lifeplan/lifeplan-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// LoginForm collects credentials and requests a one-time sign-in code.
// The exchange completes when the user enters the emailed code via the
// code command. After more than 2 failed attempts a password-reset hint
// is shown.
func (a *App) LoginForm(ctx context.Context) error {
	a.flow.SwitchMode(auth.ModeLogin)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.flow.RequestCode(ctx, auth.FormData{Identifier: email, Password: string(password)})
	if errors.Is(err, auth.ErrInvalidEmail) {
		err = nil
	}

	if a.flow.FailedLoginAttempts() > 2 {
		fmt.Fprintln(a.out, "Forgot your password? Type 'reset' to set a new one")
	}
	return err
}

// RegisterForm collects the registration form and requests a one-time
// confirmation code for the new account.
func (a *App) RegisterForm(ctx context.Context) error {
	a.flow.SwitchMode(auth.ModeRegister)

	form := &models.RegistrationForm{}
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Enter username", &form.Username},
		{"Enter first name", &form.FirstName},
		{"Enter surname", &form.Surname},
		{"Enter patronymic (optional)", &form.Patronymic},
		{"Enter email", &form.Email},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	form.Password = string(password)

	err = a.flow.RequestCode(ctx, auth.FormData{Email: form.Email, Password: form.Password, Registration: form})
	if errors.Is(err, auth.ErrInvalidEmail) {
		err = nil
	}
	return err
}

// ResetForm collects the email and the replacement password and
// requests a one-time reset code.
func (a *App) ResetForm(ctx context.Context) error {
	a.flow.SwitchMode(auth.ModeReset)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter new password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.flow.RequestCode(ctx, auth.FormData{Email: email, Password: string(password)})
	if errors.Is(err, auth.ErrInvalidEmail) {
		err = nil
	}
	return err
}

// Code completes the pending email verification. The code comes from
// the command argument or an extra prompt. On a successful sign-in the
// profile is fetched to greet the user; a failed fetch is not fatal
// here.
func (a *App) Code(ctx context.Context, args []string) error {
	var code string
	if len(args) > 0 {
		code = args[0]
	} else {
		v, err := getSimpleText(a.reader, "Enter confirmation code", a.out)
		if err != nil {
			return err
		}
		code = v
	}

	err := a.flow.SubmitCode(ctx, code)
	if errors.Is(err, auth.ErrNoPendingVerification) {
		fmt.Fprintln(a.out, "No code was requested; use login, register or reset first")
		return nil
	}
	if err != nil {
		a.log.Error(ctx, "completing verification", "err", err)
		return err
	}

	if a.isLoggedIn() {
		if u, err := a.userService.Current(ctx); err == nil {
			a.userName = u.Username
			fmt.Fprintf(a.out, "Hello, %s!\n", u.Username)
		}
	}
	return nil
}

// Logout drops the stored token and returns the shell to the signed-out
// command set.
func (a *App) Logout(ctx context.Context) error {
	if err := a.flow.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// restoreSession probes a token that survived a restart. A rejected
// token is dropped right away so the prompt reflects reality.
func (a *App) restoreSession(ctx context.Context) {
	if !a.isLoggedIn() {
		return
	}
	u, err := a.userService.Current(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			a.forceLogout(ctx)
		}
		return
	}
	a.userName = u.Username
	fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Username)
}

// forceLogout drops the session after the server stopped accepting the
// stored token.
func (a *App) forceLogout(ctx context.Context) {
	if err := a.flow.Logout(ctx); err != nil {
		a.log.Error(ctx, "clearing rejected session", "err", err)
	}
	a.userName = ""
	fmt.Fprintln(a.out, "Session expired, please sign in again")
}
