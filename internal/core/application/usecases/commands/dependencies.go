// Package commands contains the write-side use cases of the application.
// Each use case is a command object with constructor validation and a
// handler that executes it against the injected ports.
//
// Repositories are injected directly rather than through a unit of work:
// every operation here is a single atomic statement, so there is nothing to
// coordinate transactionally.
package commands

import "cakery/internal/pkg/token"

// TokenIssuer signs session tokens for authenticated identities. Satisfied
// by token.Service; declared here so handlers stay testable without real
// signing keys.
type TokenIssuer interface {
	Issue(identity token.Identity) (string, error)
}
