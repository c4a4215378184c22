package domain

// ReasonKey identifies why a visit is booked. The set is closed: the
// booking flow only accepts keys present in the requirement table.
type ReasonKey string

const (
	ReasonWellnessExam     ReasonKey = "wellness_exam"
	ReasonVaccination      ReasonKey = "vaccination"
	ReasonSickVisit        ReasonKey = "sick_visit"
	ReasonInjuryGeneral    ReasonKey = "injury_general"
	ReasonFracture         ReasonKey = "fracture"
	ReasonWoundCare        ReasonKey = "wound_care"
	ReasonSkinEarIssue     ReasonKey = "skin_ear_issue"
	ReasonGIIssue          ReasonKey = "gi_issue"
	ReasonMedicationRefill ReasonKey = "medication_refill"
	ReasonFollowUp         ReasonKey = "follow_up"
	ReasonOther            ReasonKey = "other"
)

// Room type keys in canonical normalized form.
const (
	RoomCheckup   = "checkup_room"
	RoomTreatment = "treatment_room"
	RoomImaging   = "imaging_room"
)

// Equipment type keys in canonical normalized form.
const (
	EquipVaccineFridge     = "vaccine_fridge"
	EquipLabAnalyzer       = "lab_analyzer"
	EquipXRayMachine       = "x_ray_machine"
	EquipUltrasoundScanner = "ultrasound_scanner"
	EquipSurgicalKit       = "surgical_kit"
	EquipOtoscope          = "otoscope"
)

// Requirement describes the room and equipment units one appointment of a
// given reason consumes for the duration of its slot. Keys are canonical
// resource-type keys; a missing key means zero units.
type Requirement struct {
	Rooms     map[string]int
	Equipment map[string]int
}

// IsEmpty reports whether the requirement consumes nothing.
// An empty requirement is trivially satisfiable in any slot.
func (r Requirement) IsEmpty() bool {
	return len(r.Rooms) == 0 && len(r.Equipment) == 0
}

// EquipmentKeys returns the required equipment type keys in stable sorted
// order. Used to build the persisted equipment summary of an appointment.
func (r Requirement) EquipmentKeys() []string {
	return sortedKeys(r.Equipment)
}

// reasonRequirements is the fixed reason -> resource demand table.
// It is never mutated after init; access goes through RequirementFor.
var reasonRequirements = map[ReasonKey]Requirement{
	ReasonWellnessExam: {
		Rooms: map[string]int{RoomCheckup: 1},
	},
	ReasonVaccination: {
		Rooms:     map[string]int{RoomCheckup: 1},
		Equipment: map[string]int{EquipVaccineFridge: 1},
	},
	ReasonSickVisit: {
		Rooms:     map[string]int{RoomCheckup: 1},
		Equipment: map[string]int{EquipLabAnalyzer: 1},
	},
	ReasonInjuryGeneral: {
		Rooms: map[string]int{RoomTreatment: 1},
	},
	ReasonFracture: {
		Rooms:     map[string]int{RoomImaging: 1},
		Equipment: map[string]int{EquipXRayMachine: 1},
	},
	ReasonWoundCare: {
		Rooms:     map[string]int{RoomTreatment: 1},
		Equipment: map[string]int{EquipSurgicalKit: 1},
	},
	ReasonSkinEarIssue: {
		Rooms:     map[string]int{RoomCheckup: 1},
		Equipment: map[string]int{EquipOtoscope: 1},
	},
	ReasonGIIssue: {
		Rooms:     map[string]int{RoomCheckup: 1},
		Equipment: map[string]int{EquipUltrasoundScanner: 1},
	},
	// A refill is handled at the front desk and holds no room or equipment.
	ReasonMedicationRefill: {},
	ReasonFollowUp: {
		Rooms: map[string]int{RoomCheckup: 1},
	},
	ReasonOther: {
		Rooms: map[string]int{RoomCheckup: 1},
	},
}

// RequirementFor resolves the resource requirement for a reason key.
// The key is normalized first; unknown keys return ok=false and must be
// rejected by the caller, never defaulted.
func RequirementFor(key ReasonKey) (Requirement, bool) {
	req, ok := reasonRequirements[NormalizeReasonKey(string(key))]
	return req, ok
}

// IsKnownReason reports whether key resolves in the requirement table.
func IsKnownReason(key ReasonKey) bool {
	_, ok := RequirementFor(key)
	return ok
}

// KnownReasonKeys returns the closed reason vocabulary in sorted order.
func KnownReasonKeys() []ReasonKey {
	keys := make([]ReasonKey, 0, len(reasonRequirements))
	for k := range reasonRequirements {
		keys = append(keys, k)
	}
	sortReasonKeys(keys)
	return keys
}
