package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/lifeplan/lifeplan-cli/internal/common"
)

// Profile fetches and prints the signed-in user's profile. A rejected
// token drops the session.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.userService.Current(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			a.forceLogout(ctx)
			return nil
		}
		fmt.Fprintln(a.out, "error:", err.Error())
		return err
	}

	a.userName = u.Username

	fmt.Fprintln(a.out, "Username:  ", u.Username)
	fmt.Fprintln(a.out, "First name:", u.FirstName)
	fmt.Fprintln(a.out, "Surname:   ", u.Surname)
	if u.Patronymic != "" {
		fmt.Fprintln(a.out, "Patronymic:", u.Patronymic)
	}
	fmt.Fprintln(a.out, "Email:     ", u.Email)
	return nil
}
