package availability

import "doctorsportal/models"

// Resolve returns a copy of services where each slot list is reduced to the
// slots not taken by bookingsOnDate for that service's treatment name.
// bookingsOnDate must already be restricted to a single date. Catalog slot
// order is preserved and the inputs are left untouched.
func Resolve(services []models.Service, bookingsOnDate []models.Booking) []models.Service {
	booked := make(map[string]map[string]struct{}, len(services))
	for _, b := range bookingsOnDate {
		slots, ok := booked[b.TreatmentName]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.TreatmentName] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	out := make([]models.Service, len(services))
	for i, svc := range services {
		taken := booked[svc.Name]
		available := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, isTaken := taken[slot]; !isTaken {
				available = append(available, slot)
			}
		}
		svc.Slots = available
		out[i] = svc
	}
	return out
}
