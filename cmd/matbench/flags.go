package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// choiceValue is a string flag restricted to a fixed set of values.
type choiceValue struct {
	value   string
	allowed []string
}

var _ pflag.Value = (*choiceValue)(nil)

func newChoice(def string, allowed ...string) *choiceValue {
	return &choiceValue{value: def, allowed: allowed}
}

func (c *choiceValue) String() string { return c.value }

func (c *choiceValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(c.allowed, s) {
		return fmt.Errorf("must be one of %s", strings.Join(c.allowed, "|"))
	}
	c.value = s
	return nil
}

func (c *choiceValue) Type() string { return strings.Join(c.allowed, "|") }

// Large-phase answers for `matbench all`.
const (
	largeAsk = "ask"
	largeYes = "yes"
	largeNo  = "no"
)
