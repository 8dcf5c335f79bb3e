package types

// PositionMode selects whether a node participates in normal flow or is
// positioned out of flow against its container.
type PositionMode int

const (
	// Static participates in normal flow (default).
	Static PositionMode = iota
	// Absolute is removed from flow and positioned relative to the
	// container's content (padding) box.
	Absolute
)
