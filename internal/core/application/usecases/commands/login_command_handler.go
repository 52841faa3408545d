package commands

import (
	"context"
	"errors"

	"cakery/internal/core/ports"
	"cakery/internal/pkg/errs"
	"cakery/internal/pkg/token"
)

// LoginResult is the outcome of a successful authentication: the signed
// session token and the public profile of the authenticated staff member.
type LoginResult struct {
	Token    string
	UserID   int64
	Username string
	FullName string
}

// LoginCommandHandler verifies staff credentials and issues session tokens.
// Unknown usernames and wrong passwords are indistinguishable to the caller:
// both fail with errs.ErrInvalidCredentials.
type LoginCommandHandler struct {
	staffRepository ports.StaffRepository
	tokens          TokenIssuer
}

// NewLoginCommandHandler creates a handler for staff authentication.
func NewLoginCommandHandler(staffRepository ports.StaffRepository, tokens TokenIssuer) LoginCommandHandler {
	return LoginCommandHandler{
		staffRepository: staffRepository,
		tokens:          tokens,
	}
}

// Handle authenticates the credentials in the command.
// Looks up the credential record by exact username, compares the password
// against the stored bcrypt hash, and signs a token embedding the user id
// and username.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	member, err := h.staffRepository.GetByUsername(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return LoginResult{}, errs.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err = member.VerifyPassword(cmd.Password()); err != nil {
		return LoginResult{}, err
	}

	signed, err := h.tokens.Issue(token.Identity{
		UserID:   member.ID(),
		Username: member.Username(),
	})
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Token:    signed,
		UserID:   member.ID(),
		Username: member.Username(),
		FullName: member.FullName(),
	}, nil
}
