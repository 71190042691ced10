package domain

// MuscleGroup classifies an exercise. Closed enumeration; the zero
// value is not valid, use MuscleGroupNone for "unclassified".
type MuscleGroup string

const (
	MuscleGroupNone       MuscleGroup = "none"
	MuscleGroupChest      MuscleGroup = "chest"
	MuscleGroupBack       MuscleGroup = "back"
	MuscleGroupShoulders  MuscleGroup = "shoulders"
	MuscleGroupTrapezius  MuscleGroup = "trapezius"
	MuscleGroupBiceps     MuscleGroup = "biceps"
	MuscleGroupTriceps    MuscleGroup = "triceps"
	MuscleGroupForearm    MuscleGroup = "forearm"
	MuscleGroupAbs        MuscleGroup = "abs"
	MuscleGroupCalf       MuscleGroup = "calf"
	MuscleGroupQuadriceps MuscleGroup = "quadriceps"
	MuscleGroupHamstring  MuscleGroup = "hamstring"
)

// MuscleGroups lists every valid group, in display order.
var MuscleGroups = []MuscleGroup{
	MuscleGroupNone,
	MuscleGroupChest,
	MuscleGroupBack,
	MuscleGroupShoulders,
	MuscleGroupTrapezius,
	MuscleGroupBiceps,
	MuscleGroupTriceps,
	MuscleGroupForearm,
	MuscleGroupAbs,
	MuscleGroupCalf,
	MuscleGroupQuadriceps,
	MuscleGroupHamstring,
}

// Valid reports whether g is a member of the closed enumeration.
func (g MuscleGroup) Valid() bool {
	for _, known := range MuscleGroups {
		if g == known {
			return true
		}
	}
	return false
}
