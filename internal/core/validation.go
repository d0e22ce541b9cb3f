package core

// validation.go checks facet selections decoded from a request before the
// filter engines run.
//
// Validation is deliberately narrow. The control surface only offers known
// values, so anything caught here came from a hand-edited URL: an unknown
// day code or an inverted time window. An empty day selection is NOT an
// error; the engine reports it as a not-ready result so the view can stay
// pending. Unknown sponsor or type selections are harmless (they simply
// match no rows or no cells) and pass through untouched.

import "fmt"

// ValidateSessionSelections rejects selections the sessions engine should
// never see: day codes outside the seven-value enumeration and time
// windows whose lower bound exceeds the upper bound.
func ValidateSessionSelections(sel SessionSelections) error {
	for _, d := range sel.Days {
		if !IsDayCode(d) {
			return fmt.Errorf("unknown day code %q", d)
		}
	}
	if sel.Lo > sel.Hi {
		return fmt.Errorf("invalid time window: %g after %g", sel.Lo, sel.Hi)
	}
	return nil
}

// ValidateTalkSelections currently always passes: topic keys are resolved
// against the fixed table (unknown keys contribute nothing) and free-text
// keywords accept any string. It exists so the talks handler mirrors the
// sessions handler's decode-validate-filter shape.
func ValidateTalkSelections(sel TalkSelections) error {
	return nil
}
