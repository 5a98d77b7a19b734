// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"fmt"
	"slices"
)

// Slots is the number of effect slots in a chain.
const Slots = 4

// Chain holds up to four effects in processing order. A nil slot is empty.
//
// Set refuses a second effect of a kind already placed in another slot.
// Chains assembled directly may still contain duplicates; Build treats each
// occurrence on its own.
type Chain [Slots]*Effect

// NewChain fills the leading slots with effects, rejecting duplicates.
func NewChain(effects ...Effect) (Chain, error) {
	var c Chain
	if len(effects) > Slots {
		return c, fmt.Errorf("%w: %d effects, max %d", ErrSlotOutOfRange, len(effects), Slots)
	}
	for i, e := range effects {
		if err := c.Set(i, e); err != nil {
			return Chain{}, err
		}
	}
	return c, nil
}

// Set places e in slot, replacing whatever was there.
func (c *Chain) Set(slot int, e Effect) error {
	if slot < 0 || slot >= Slots {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, slot)
	}
	for i, other := range c {
		if i != slot && other != nil && other.Kind == e.Kind {
			return fmt.Errorf("%w: %s in slot %d", ErrDuplicateEffect, e.Kind, i)
		}
	}

	c[slot] = &e
	return nil
}

// Remove empties slot.
func (c *Chain) Remove(slot int) error {
	if slot < 0 || slot >= Slots {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, slot)
	}
	c[slot] = nil
	return nil
}

// Find returns the first effect of kind k.
func (c *Chain) Find(k Kind) (Effect, bool) {
	for _, e := range c {
		if e != nil && e.Kind == k {
			return *e, true
		}
	}
	return Effect{}, false
}

// Used lists the kinds present, in slot order.
func (c *Chain) Used() []Kind {
	var kinds []Kind
	for _, e := range c {
		if e != nil && !slices.Contains(kinds, e.Kind) {
			kinds = append(kinds, e.Kind)
		}
	}
	return kinds
}

// Available lists the kinds that can still be added, in menu order.
func (c *Chain) Available() []Kind {
	used := c.Used()

	var kinds []Kind
	for _, k := range Kinds() {
		if !slices.Contains(used, k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
