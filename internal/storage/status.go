package storage

import "strings"

type Status string

const (
	StatusAnnounced Status = "ANNOUNCED"
	StatusReceived  Status = "RECEIVED"
	StatusStored    Status = "STORED"
	StatusPaid      Status = "PAID"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
)

var allStatuses = []Status{
	StatusAnnounced, StatusReceived, StatusStored, StatusPaid, StatusShipped, StatusDelivered,
}

// forward lists the transitions allowed through the guarded API. Anything
// else needs OverrideStatus.
var forward = map[Status][]Status{
	StatusAnnounced: {StatusReceived, StatusStored},
	StatusReceived:  {StatusStored},
	StatusStored:    {StatusPaid},
	StatusPaid:      {StatusShipped},
	StatusShipped:   {StatusDelivered},
}

// ParseStatus accepts any letter case; admin screens send lowercase.
func ParseStatus(s string) (Status, error) {
	candidate := Status(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range allStatuses {
		if st == candidate {
			return st, nil
		}
	}
	return "", validationf("unknown status %q", s)
}

func CanTransition(from, to Status) bool {
	for _, next := range forward[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Deletable is false once money or a carrier is involved.
func (s Status) Deletable() bool {
	switch s {
	case StatusPaid, StatusShipped, StatusDelivered:
		return false
	}
	return true
}

// Returnable reports whether a return can be requested, i.e. the parcel is
// physically at the warehouse.
func (s Status) Returnable() bool {
	return s == StatusReceived || s == StatusStored
}

func (s Status) String() string {
	return string(s)
}
