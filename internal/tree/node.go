// Package tree defines the layout tree's data model: a plain tagged tree
// of Nodes with no drawing capability — identifier, box constraints,
// container/item tags, optional intrinsic content size, and children.
package tree

import (
	"github.com/krispeckt/layoutkit/internal/core/types"
	"github.com/krispeckt/layoutkit/internal/flex"
	"github.com/krispeckt/layoutkit/internal/grid"
)

// NodeId is a dense integer identifier, unique within one layout call and
// assigned by the caller.
type NodeId int

// ContainerKind tags what kind of container a Node is, if any.
type ContainerKind int

const (
	ContainerNone ContainerKind = iota
	ContainerFlex
	ContainerGrid
)

// ItemKind tags how a Node participates in its parent's layout model.
type ItemKind int

const (
	ItemNone ItemKind = iota
	ItemFlexChild
	ItemGridChild
)

// ContentSize is a leaf's intrinsic size, normally supplied by an
// external content-measurement callback (e.g. textmetrics.Font).
type ContentSize struct {
	Width, Height types.Length
	Baseline      types.Length
	HasBaseline   bool
}

// Node is one entry in the layout tree. A Node's ContainerKind and its
// children's ItemKind need not agree — a mismatched ItemKind is treated
// as the zero value of the relevant props.
type Node struct {
	ID  NodeId
	Box types.BoxConstraints

	ContainerKind ContainerKind
	FlexContainer flex.ContainerProps
	GridContainer grid.ContainerProps

	ItemKind  ItemKind
	FlexItem  flex.ItemProps
	GridItem  grid.ItemProps

	Content *ContentSize
	ZIndex  int

	Children []*Node
}

// ComputedLayout is the solver's output for a single node: its border
// rectangle and the content rectangle inset by its own padding.
type ComputedLayout struct {
	NodeId NodeId

	BorderX, BorderY, BorderW, BorderH types.Length
	ContentX, ContentY, ContentW, ContentH types.Length
}
