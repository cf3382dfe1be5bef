package models

// IPBinding is a primary IP address assignment with its optional NAT
// relationship. NATInside is set when this address is the outside of a NAT
// pair (some inside address translates to it); NATOutside is set when this
// address itself translates to an outside address.
type IPBinding struct {
	ID         int64      `json:"id"`
	Address    string     `json:"address"`
	Family     int        `json:"family"`
	URL        string     `json:"url"`
	NATInside  *ObjectRef `json:"nat_inside,omitempty"`
	NATOutside *ObjectRef `json:"nat_outside,omitempty"`
}
