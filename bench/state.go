// SPDX-License-Identifier: MIT

package bench

import "strconv"

// State is the runner's position in a sweep.
//
//	Idle → PreparingInputs → Invoking → Reporting → PreparingInputs (next trial)
//	     … → Releasing (after the last trial of a size) → PreparingInputs | Idle
type State int

const (
	// StateIdle: no sweep in progress.
	StateIdle State = iota

	// StatePreparingInputs: generating fresh operands for a trial.
	StatePreparingInputs

	// StateInvoking: the timed kernel call.
	StateInvoking

	// StateReporting: handing the result to the reporter.
	StateReporting

	// StateReleasing: returning a finished size's memory before the next size.
	StateReleasing
)

var stateNames = [...]string{"Idle", "PreparingInputs", "Invoking", "Reporting", "Releasing"}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// StateHook observes every state transition together with the current trial
// (zero Trial for Idle and for Releasing, where only Size is set).
type StateHook func(State, Trial)
