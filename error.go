package pagetree

import (
	"github.com/cockroachdb/errors"
)

//goland:noinspection GoUnusedGlobalVariable
var (
	ErrDuplicateKey = errors.New("key already exists")
	ErrKeyNotFound  = errors.New("key not found")
	ErrTreeEmpty    = errors.New("tree is empty")

	ErrInvalidRank        = errors.New("rank must be at least 2")
	ErrInvariantViolation = errors.New("page tree invariant violated")
)
