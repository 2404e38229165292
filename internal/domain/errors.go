package domain

import crerr "github.com/cockroachdb/errors"

// Error kinds shared by records, repositories and use cases. Call sites wrap
// them with context; match with errors.Is.
var (
	ErrValidation     = crerr.New("validation failed")
	ErrAuthentication = crerr.New("authentication failed")
	ErrNotFound       = crerr.New("not found")
	ErrFormat         = crerr.New("malformed record")
)
