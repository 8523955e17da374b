package uniform

import "errors"

// Every error returned by this package wraps one of these sentinels, so
// callers can match the failure class with errors.Is while the message keeps
// the offending substring and the full input name.
var (
	// ErrMalformedName marks a structurally incomplete name, such as a bare
	// primary with no main prefix.
	ErrMalformedName = errors.New("malformed uniform name")

	// ErrUnrecognizedPrimary means the name does not end with any known
	// primary name.
	ErrUnrecognizedPrimary = errors.New("unrecognized primary name")

	// ErrUnrecognizedMainPrefix means no known main prefix precedes the
	// primary name.
	ErrUnrecognizedMainPrefix = errors.New("unrecognized main prefix")

	// ErrUnknownPrefix means text was left over after matching all known
	// additional prefixes.
	ErrUnknownPrefix = errors.New("unknown prefix")

	// ErrForbiddenCombination marks a pairing an explicit deny-list rules out.
	ErrForbiddenCombination = errors.New("forbidden combination")

	// ErrUnsupportedCombination marks a main prefix outside its primary's
	// allow-list.
	ErrUnsupportedCombination = errors.New("unsupported combination")
)
