package hopfield

import (
	"fmt"
	"strings"
)

// Rule selects the training rule.
type Rule int

const (
	// RuleHebb is the Hebbian outer-product sum.
	RuleHebb Rule = iota

	// RulePseudoinverse is the Moore-Penrose projection rule.
	RulePseudoinverse
)

// String returns the config-file name of the rule.
func (r Rule) String() string {
	switch r {
	case RuleHebb:
		return "hebb"
	case RulePseudoinverse:
		return "pseudoinverse"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// ParseRule maps "hebb" or "pseudoinverse" (also "pinv"), case-insensitive.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hebb", "hebbian":
		return RuleHebb, nil
	case "pseudoinverse", "pinv":
		return RulePseudoinverse, nil
	default:
		return 0, fmt.Errorf("%w: unknown rule %q", ErrOptionViolation, s)
	}
}

// Mode selects the recall update discipline.
type Mode int

const (
	// Synchronous updates every neuron from the previous frozen configuration.
	Synchronous Mode = iota

	// Asynchronous updates neurons 0..n-1 in place within each sweep.
	Asynchronous
)

// String returns the config-file name of the mode.
func (m Mode) String() string {
	switch m {
	case Synchronous:
		return "synchronous"
	case Asynchronous:
		return "asynchronous"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "synchronous"/"sync" or "asynchronous"/"async", case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "synchronous", "sync":
		return Synchronous, nil
	case "asynchronous", "async":
		return Asynchronous, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
	}
}
