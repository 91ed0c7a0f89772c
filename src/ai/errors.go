package ai

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	KindMissingCredential Kind = "missing_credential"
	KindUpstream          Kind = "upstream"
	KindDecode            Kind = "decode"
	KindTransport         Kind = "transport"
	KindExhausted         Kind = "exhausted"
)

const exhaustedMessage = "All providers failed. Check API keys and quotas."

// Error is the single error type produced by this package. Kind tells callers
// what went wrong; the remaining fields are filled where they apply.
type Error struct {
	Kind       Kind
	Provider   ProviderID
	StatusCode int
	Body       string
	Attempts   []Attempt
	Err        error
}

// Attempt records one failed provider call inside an exhausted selection.
type Attempt struct {
	Provider ProviderID
	Err      error
}

func (e *Error) Error() string {
	name := e.Provider.DisplayName()
	switch e.Kind {
	case KindMissingCredential:
		return fmt.Sprintf("%s API key missing", name)
	case KindUpstream:
		return fmt.Sprintf("%s %d: %s", name, e.StatusCode, e.Body)
	case KindDecode:
		return fmt.Sprintf("failed to parse %s json response: %v", name, e.Err)
	case KindTransport:
		return fmt.Sprintf("failed to send request to %s: %v", name, e.Err)
	case KindExhausted:
		return exhaustedMessage
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Summary lists every failed attempt, one per line, in attempt order.
func (e *Error) Summary() string {
	var sb strings.Builder
	for _, a := range e.Attempts {
		fmt.Fprintf(&sb, "%s: %v\n", a.Provider, a.Err)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
