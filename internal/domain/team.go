package domain

// Team is the aggregate root for a team and its participants.
type Team struct {
	id           ID
	name         TeamName
	participants TeamParticipants
}

// ParticipantInput is a participant submitted without an identity.
type ParticipantInput struct {
	Name             string
	Email            string
	EnrollmentStatus string
}

// NewTeam creates a team with a fresh id.
// Order: id, team name, participant count, each participant in input order, email uniqueness.
func NewTeam(name string, participants []ParticipantInput) (Team, error) {
	id := NewID()
	teamName, err := NewTeamName(name)
	if err != nil {
		return Team{}, err
	}
	if err := checkParticipantCount(len(participants)); err != nil {
		return Team{}, err
	}

	members := make([]Participant, 0, len(participants))
	for _, in := range participants {
		p, err := NewParticipant(in.Name, in.Email, in.EnrollmentStatus)
		if err != nil {
			return Team{}, err
		}
		members = append(members, p)
	}

	tp, err := NewTeamParticipants(members)
	if err != nil {
		return Team{}, err
	}
	return Team{id: id, name: teamName, participants: tp}, nil
}

// ReconstructTeam rehydrates a stored team. It validates in the same order as NewTeam,
// with the supplied id checked first.
func ReconstructTeam(id, name string, participants []ParticipantRecord) (Team, error) {
	teamID, err := ParseID(id)
	if err != nil {
		return Team{}, err
	}
	teamName, err := NewTeamName(name)
	if err != nil {
		return Team{}, err
	}
	if err := checkParticipantCount(len(participants)); err != nil {
		return Team{}, err
	}

	members := make([]Participant, 0, len(participants))
	for _, r := range participants {
		p, err := ReconstructParticipant(r.ID, r.Name, r.Email, r.EnrollmentStatus)
		if err != nil {
			return Team{}, err
		}
		members = append(members, p)
	}

	tp, err := ReconstructTeamParticipants(members)
	if err != nil {
		return Team{}, err
	}
	return Team{id: teamID, name: teamName, participants: tp}, nil
}

func (t Team) ID() ID                         { return t.id }
func (t Team) Name() TeamName                 { return t.name }
func (t Team) Participants() TeamParticipants { return t.participants }

// WithName returns a copy of t renamed to name.
func (t Team) WithName(name TeamName) Team {
	t.name = name
	return t
}

// WithParticipants returns a copy of t with its members replaced.
func (t Team) WithParticipants(participants TeamParticipants) Team {
	t.participants = participants
	return t
}
