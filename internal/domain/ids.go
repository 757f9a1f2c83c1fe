package domain

// Opaque product identifier. Products carry no attributes beyond identity.
type Product string

// Identifier of a distribution center (a sourcing node).
type CenterID string

// Identifier of the fixed delivery destination.
type LocationID string

// Any node of the distance table: a center or the delivery location.
type NodeID string

func (c CenterID) Node() NodeID { return NodeID(c) }

func (l LocationID) Node() NodeID { return NodeID(l) }
