package domain

import "sort"

// ResourceCapacity is the clinic's installed resource base: total units per
// normalized room type and per normalized equipment type. Capacity is
// independent of time; only usage varies per slot.
type ResourceCapacity struct {
	Rooms     map[string]int
	Equipment map[string]int
}

// NewResourceCapacity returns an empty capacity snapshot.
func NewResourceCapacity() ResourceCapacity {
	return ResourceCapacity{
		Rooms:     make(map[string]int),
		Equipment: make(map[string]int),
	}
}

// SlotUsage is the resource demand already committed against one slot.
// Derived and ephemeral: recomputed from appointment rows on every request.
type SlotUsage struct {
	Rooms     map[string]int
	Equipment map[string]int
}

// newSlotUsage returns an empty usage bucket.
func newSlotUsage() *SlotUsage {
	return &SlotUsage{
		Rooms:     make(map[string]int),
		Equipment: make(map[string]int),
	}
}

// add folds one requirement into the bucket. Usage is additive: two
// reasons competing for the same type stack their demands (sum, not max).
func (u *SlotUsage) add(req Requirement) {
	for rtype, units := range req.Rooms {
		key := NormalizeResourceKey(rtype)
		u.Rooms[key] += units
	}
	for etype, units := range req.Equipment {
		key := NormalizeResourceKey(etype)
		u.Equipment[key] += units
	}
}

// RequirementFits reports whether req still fits into a slot given the
// installed capacity and the usage already booked there. usage may be nil
// for a slot with no bookings. A type absent from capacity has zero
// installed units; a requirement of zero units is trivially satisfied.
func RequirementFits(req Requirement, capacity ResourceCapacity, usage *SlotUsage) bool {
	for rtype, needed := range req.Rooms {
		if needed <= 0 {
			continue
		}
		key := NormalizeResourceKey(rtype)
		used := 0
		if usage != nil {
			used = usage.Rooms[key]
		}
		if used+needed > capacity.Rooms[key] {
			return false
		}
	}
	for etype, needed := range req.Equipment {
		if needed <= 0 {
			continue
		}
		key := NormalizeResourceKey(etype)
		used := 0
		if usage != nil {
			used = usage.Equipment[key]
		}
		if used+needed > capacity.Equipment[key] {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortReasonKeys(keys []ReasonKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
}
