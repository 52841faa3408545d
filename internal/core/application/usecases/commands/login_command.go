package commands

import (
	"errors"

	"cakery/internal/pkg/errs"
	"cakery/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand represents a request to authenticate a staff member with a
// username and plaintext password.
//
// Example:
//
//	cmd, err := NewLoginCommand("jane", "secret")
//	if err != nil {
//	    return fmt.Errorf("invalid login request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("session token for %s issued", result.Username)
type LoginCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a login command. Both username and password are
// required.
func NewLoginCommand(username, password string) (LoginCommand, error) {
	cmd := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return LoginCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Username returns the login name to authenticate.
func (c LoginCommand) Username() string {
	return c.username
}

// Password returns the plaintext password to verify.
func (c LoginCommand) Password() string {
	return c.password
}

func (c *LoginCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *LoginCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
