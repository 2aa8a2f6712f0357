// Package admin implements blogadmin, the out-of-band tool for privileged
// account operations that the HTTP API deliberately does not expose.
package admin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/blog/internal/cryptox"
	"github.com/dmitrijs2005/blog/internal/server/models"
	"golang.org/x/term"
)

const (
	cmdCreateDeveloper = "create-developer"
	cmdSetRole         = "set-role"
)

var ErrUsage = errors.New("usage: blogadmin [flags] create-developer <email> <display-name> | set-role <profile-id> <User|Developer>")

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// Operations is implemented by services.AdminService.
type Operations interface {
	CreateDeveloper(ctx context.Context, email, password, displayName string) (*models.Auth, *models.User, error)
	SetRole(ctx context.Context, profileID string, role models.Role) (*models.User, error)
}

type App struct {
	ops Operations
	out io.Writer
}

func NewApp(ops Operations, out io.Writer) *App {
	return &App{ops: ops, out: out}
}

// SplitCommand finds the command among args and returns it with the
// arguments that follow it. Flags must precede the command.
func SplitCommand(args []string) (string, []string, error) {
	for i, a := range args {
		if a == cmdCreateDeveloper || a == cmdSetRole {
			return a, args[i+1:], nil
		}
	}
	return "", nil, ErrUsage
}

func (a *App) Run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case cmdCreateDeveloper:
		if len(args) != 2 {
			return ErrUsage
		}
		return a.createDeveloper(ctx, args[0], args[1])
	case cmdSetRole:
		if len(args) != 2 {
			return ErrUsage
		}
		return a.setRole(ctx, args[0], args[1])
	default:
		return ErrUsage
	}
}

func (a *App) createDeveloper(ctx context.Context, email, displayName string) error {
	password, err := a.getPassword()
	if err != nil {
		return fmt.Errorf("error reading password: %w", err)
	}

	auth, user, err := a.ops.CreateDeveloper(ctx, email, password, displayName)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "created credential %s (%s) with Developer profile %s\n", auth.ID, auth.Email, user.ID)
	return nil
}

func (a *App) setRole(ctx context.Context, profileID, role string) error {
	user, err := a.ops.SetRole(ctx, profileID, models.Role(role))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "profile %s now has role %s\n", user.ID, user.Role)
	return nil
}

// getPassword asks twice without echo.
func (a *App) getPassword() (string, error) {
	fmt.Fprint(a.out, "Enter password: ")
	first, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	defer cryptox.Wipe(first)

	fmt.Fprint(a.out, "Repeat password: ")
	second, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	defer cryptox.Wipe(second)

	if !bytes.Equal(first, second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}
