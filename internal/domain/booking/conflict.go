package booking

import (
	"time"

	"boat-scheduler/internal/domain/resource"
)

// Overlaps treats both intervals as half-open: [aStart, aEnd) and [bStart, bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// HasConflict reports whether any booking on resourceID other than exclude overlaps candidate.
// Pass NoID as exclude when nothing should be skipped.
func HasConflict(candidate TimeSlot, resourceID resource.ID, exclude ID, bookings []*Booking) bool {
	for _, b := range bookings {
		if b.ID() == exclude || b.ResourceID() != resourceID {
			continue
		}
		if candidate.Overlaps(b.Slot()) {
			return true
		}
	}
	return false
}
