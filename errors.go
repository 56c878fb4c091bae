package vbtree

import (
	"errors"

	"github.com/thrylos-labs/vbtree/kzg"
)

// ErrNodeFull is returned when a mutation targets a node that already
// holds the maximum 2t-1 keys and cannot accept another key without being
// split first.
var ErrNodeFull = errors.New("vbtree: node is full")

// ErrSetupInvalid is returned when the requested width or secret do not
// produce a valid KZG evaluation domain. It is the same error value as
// kzg.ErrInvalidSetup, so callers can errors.Is against either.
var ErrSetupInvalid = kzg.ErrInvalidSetup

// ErrValidationFailure is returned by CheckValidTree when a node's stored
// hash or commitment does not match what is recomputed from its contents.
var ErrValidationFailure = errors.New("vbtree: validation failure")
