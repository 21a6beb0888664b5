package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifeplan/lifeplan-cli/internal/client/auth"
)

func (a *App) getStatus() string {
	s := ""
	if a.isLoggedIn() {
		s = a.userName
		if s == "" {
			s = "signed in"
		}
	} else if m := a.flow.Mode(); m != auth.ModeLogin {
		s = string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to LifePlan CLI (type 'help' for commands)")

	a.restoreSession(ctx)

	for {
		fmt.Fprintf(a.out, "lp %s> ", a.getStatus())
		line, readErr := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				break
			}
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: list [date|title|priority|passed] [asc|desc], add, edit, profile, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, register, reset, code, exit")
			}

		case "login":
			a.LoginForm(ctx)
		case "register":
			a.RegisterForm(ctx)
		case "reset":
			a.ResetForm(ctx)
		case "code":
			a.Code(ctx, args)
		case "list":
			a.List(ctx, args)
		case "add":
			a.Add(ctx)
		case "edit":
			a.Edit(ctx, args)
		case "profile":
			a.Profile(ctx)
		case "logout":
			a.Logout(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if readErr != nil {
			break
		}
	}
}
