package models

const (
	TierStarter = "starter"
	TierFull    = "full"
	TierVIP     = "vip"
	TierDemo    = "demo"
)

// Entitlement is the (unverified) association between the learner and the
// content they may enter. ChosenModule is meaningful only for the starter
// tier, which unlocks exactly one module picked at purchase time.
type Entitlement struct {
	Tier         string `json:"tier"`
	ChosenModule int    `json:"chosen_module,omitempty"`
}
