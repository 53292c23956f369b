package ast

// NodeID addresses a node inside a Tree's arena. IDs are 1-based;
// NoNodeID marks "no node".
type NodeID uint32

// NoNodeID is the null node reference.
const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }
