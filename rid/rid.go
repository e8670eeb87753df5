// Package rid defines the record identifier used throughout the link and
// link-bag value kinds.
package rid

import "fmt"

// RID is a record identifier: a 16-bit non-negative cluster id paired with
// a 64-bit non-negative position within that cluster. RIDs are plain value
// types; equality is structural.
type RID struct {
	ClusterID uint16
	Position  uint64
}

// New builds a RID from its two components.
func New(clusterID uint16, position uint64) RID {
	return RID{ClusterID: clusterID, Position: position}
}

// String renders the RID in "#cluster:position" form.
func (r RID) String() string {
	return fmt.Sprintf("#%d:%d", r.ClusterID, r.Position)
}
