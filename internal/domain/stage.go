package domain

type AppStage string

const (
	StageAuth        AppStage = "AUTH"
	StageProfile     AppStage = "PROFILE"
	StageLocation    AppStage = "LOCATION"
	StageCelebration AppStage = "CELEBRATION"
	StageMain        AppStage = "MAIN"
	StageUnavailable AppStage = "UNAVAILABLE"
)

// Valid reports whether s is one of the known onboarding stages. Used when
// restoring the persisted stage record; unknown values fall back to StageAuth.
func (s AppStage) Valid() bool {
	switch s {
	case StageAuth, StageProfile, StageLocation, StageCelebration, StageMain, StageUnavailable:
		return true
	}
	return false
}

// Snapshot groups the three durable records that every stage transition and
// rental mutation persists as one logical save.
type Snapshot struct {
	Stage   AppStage    `json:"stage"`
	Profile UserProfile `json:"profile"`
	Rentals RentalState `json:"rentals"`
}
