// SPDX-License-Identifier: EPL-2.0

package graph

import "errors"

var (
	ErrGraphConstruction = errors.New("cannot construct signal graph")
	ErrInvalidParameter  = errors.New("effect parameter out of range")
	ErrDuplicateEffect   = errors.New("effect kind already in chain")
	ErrSlotOutOfRange    = errors.New("effect slot out of range")
)
