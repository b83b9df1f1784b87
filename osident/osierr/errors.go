package osierr

import (
	"fmt"
	"strings"
)

// Kind classifies why a label could not be resolved.
type Kind int

const (
	// KindDiscriminatorMismatch means the label does not belong to the product family that was tried. This is
	// expected during dispatch and is not a defect in the input.
	KindDiscriminatorMismatch Kind = iota + 1

	// KindMalformedLabel means the family matched but the structured label has the wrong number of tokens.
	KindMalformedLabel

	// KindUnrecognizedField means a token sits at a known position but its value is not in the vocabulary.
	KindUnrecognizedField

	// KindUnresolvableField means a required field (edition or release) could not be extracted from free text.
	KindUnresolvableField

	// KindUnknownBuild means a build number was found but is absent from the correspondence table.
	KindUnknownBuild

	// KindUnrecognizedOS means no product family accepted the label.
	KindUnrecognizedOS
)

var kindNames = map[Kind]string{
	KindDiscriminatorMismatch: "discriminator mismatch",
	KindMalformedLabel:        "malformed label",
	KindUnrecognizedField:     "unrecognized field",
	KindUnresolvableField:     "unresolvable field",
	KindUnknownBuild:          "unknown build",
	KindUnrecognizedOS:        "unrecognized operating system",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

var (
	// ErrDiscriminatorMismatch matches any error of KindDiscriminatorMismatch (use with errors.Is).
	ErrDiscriminatorMismatch = &Error{Kind: KindDiscriminatorMismatch}
	// ErrMalformedLabel matches any error of KindMalformedLabel.
	ErrMalformedLabel = &Error{Kind: KindMalformedLabel}
	// ErrUnrecognizedField matches any error of KindUnrecognizedField.
	ErrUnrecognizedField = &Error{Kind: KindUnrecognizedField}
	// ErrUnresolvableField matches any error of KindUnresolvableField.
	ErrUnresolvableField = &Error{Kind: KindUnresolvableField}
	// ErrUnknownBuild matches any error of KindUnknownBuild.
	ErrUnknownBuild = &Error{Kind: KindUnknownBuild}
	// ErrUnrecognizedOS matches any error of KindUnrecognizedOS.
	ErrUnrecognizedOS = &Error{Kind: KindUnrecognizedOS}
)

// Error is the structured failure returned while resolving a label.
type Error struct {
	Kind   Kind
	Input  string
	Family string
	Field  string
	Value  string

	// cause holds the per-family failures collected for a KindUnrecognizedOS error.
	cause error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())

	var details []string
	if e.Family != "" {
		details = append(details, fmt.Sprintf("family=%q", e.Family))
	}
	if e.Field != "" {
		details = append(details, fmt.Sprintf("field=%q", e.Field))
	}
	if e.Value != "" {
		details = append(details, fmt.Sprintf("value=%q", e.Value))
	}
	if len(details) > 0 {
		sb.WriteString(" (")
		sb.WriteString(strings.Join(details, " "))
		sb.WriteString(")")
	}
	if e.Input != "" {
		sb.WriteString(fmt.Sprintf(": %q", e.Input))
	}
	return sb.String()
}

// Is reports kind equality, so the package sentinels can be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Unwrap exposes the collected per-family failures of an aggregate error.
func (e *Error) Unwrap() error {
	return e.cause
}

// DiscriminatorMismatch reports that the label does not start with the family discriminator.
func DiscriminatorMismatch(family, input string) *Error {
	return &Error{Kind: KindDiscriminatorMismatch, Family: family, Input: input}
}

// MalformedLabel reports a structured label with an unsupported number of tokens.
func MalformedLabel(family, input string, tokens int) *Error {
	return &Error{Kind: KindMalformedLabel, Family: family, Input: input, Value: fmt.Sprintf("%d tokens", tokens)}
}

// UnrecognizedField reports a token value outside of the vocabulary for its position.
func UnrecognizedField(family, input, field, value string) *Error {
	return &Error{Kind: KindUnrecognizedField, Family: family, Input: input, Field: field, Value: value}
}

// UnresolvableField reports a free-text field that could not be extracted.
func UnresolvableField(family, field, input string) *Error {
	return &Error{Kind: KindUnresolvableField, Family: family, Field: field, Input: input}
}

// UnknownBuild reports a build number that is not present in the correspondence table.
func UnknownBuild(family, input, build string) *Error {
	return &Error{Kind: KindUnknownBuild, Family: family, Input: input, Field: "release", Value: build}
}

// UnrecognizedOS reports that no family accepted the input. The given cause is reachable through errors.Is/As.
func UnrecognizedOS(input string, cause error) *Error {
	return &Error{Kind: KindUnrecognizedOS, Input: input, cause: cause}
}
