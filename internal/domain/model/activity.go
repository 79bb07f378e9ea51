package model

// Activity is an extracurricular offering. The activity name is the
// map key wherever activities travel, so it is not repeated here; the
// JSON shape matches what the frontend consumes.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a copy whose participant list is independent of the
// original, so snapshots handed to callers cannot mutate the roster.
func (a *Activity) Clone() *Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	return &Activity{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}
