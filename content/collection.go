package content

import "time"

// Placement decides where a newly created entry lands in the list
type Placement int

const (
	Append Placement = iota
	Prepend
)

// EmptyPolicy decides what an empty backend table means
type EmptyPolicy int

const (
	// EmptyUsesSeed shows the bundled seed list when the table has no rows
	EmptyUsesSeed EmptyPolicy = iota
	// EmptyIsEmpty trusts the backend and shows nothing
	EmptyIsEmpty
)

// ParseEmptyPolicy maps the EMPTY_COLLECTION_POLICY setting. Unknown values
// fall back to EmptyUsesSeed.
func ParseEmptyPolicy(s string) EmptyPolicy {
	switch s {
	case "empty":
		return EmptyIsEmpty
	default:
		return EmptyUsesSeed
	}
}

// Collection describes one kind of content to the generic provider
type Collection[T any, P any] struct {
	// Name is the plural used in logs and notifications, e.g. "attorneys"
	Name string
	// Entity is the singular used in error messages, e.g. "attorney"
	Entity string
	// Label starts operator messages, e.g. "Attorney"
	Label string

	Seed func() []T
	ID   func(T) string

	// Stamp gives a locally created entry its identity
	Stamp func(item T, id string, at time.Time) T
	// Strip removes identity before an entry is sent to the backend
	Strip func(T) T
	// Prepare fills defaults before validation. Optional.
	Prepare func(item T, now time.Time) T

	Validate      func(T) error
	ValidatePatch func(P) error
	Apply         func(T, P) T

	Placement Placement
}

func (c Collection[T, P]) prepare(item T, now time.Time) T {
	if c.Prepare == nil {
		return item
	}
	return c.Prepare(item, now)
}

func (c Collection[T, P]) validatePatch(patch P) error {
	if c.ValidatePatch == nil {
		return nil
	}
	return c.ValidatePatch(patch)
}
