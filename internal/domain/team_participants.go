package domain

import "fmt"

const (
	minTeamParticipants = 2
	maxTeamParticipants = 4
)

// TeamParticipants holds 2 to 4 participants with pairwise distinct emails.
// Add and Remove return a new collection; the receiver is never modified.
type TeamParticipants struct {
	participants []Participant
}

func NewTeamParticipants(participants []Participant) (TeamParticipants, error) {
	if err := validateTeamParticipants(participants); err != nil {
		return TeamParticipants{}, err
	}
	owned := make([]Participant, len(participants))
	copy(owned, participants)
	return TeamParticipants{participants: owned}, nil
}

// ReconstructTeamParticipants applies the same validation as NewTeamParticipants.
func ReconstructTeamParticipants(participants []Participant) (TeamParticipants, error) {
	return NewTeamParticipants(participants)
}

func validateTeamParticipants(participants []Participant) error {
	if err := checkParticipantCount(len(participants)); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		email := p.Email().String()
		if _, ok := seen[email]; ok {
			return DuplicateEmailError(email)
		}
		seen[email] = struct{}{}
	}
	return nil
}

func checkParticipantCount(n int) error {
	if n < minTeamParticipants || n > maxTeamParticipants {
		return &TeamValidationError{
			Reason: fmt.Sprintf("チームの参加者は%d人以上%d人以下でなければなりません。 現在の参加者数: %d",
				minTeamParticipants, maxTeamParticipants, n),
			kind: ErrParticipantCount,
		}
	}
	return nil
}

// Participants returns a copy of the members in insertion order.
func (tp TeamParticipants) Participants() []Participant {
	out := make([]Participant, len(tp.participants))
	copy(out, tp.participants)
	return out
}

func (tp TeamParticipants) Len() int {
	return len(tp.participants)
}

func (tp TeamParticipants) Add(p Participant) (TeamParticipants, error) {
	candidate := make([]Participant, 0, len(tp.participants)+1)
	candidate = append(candidate, tp.participants...)
	candidate = append(candidate, p)
	return NewTeamParticipants(candidate)
}

// Remove drops the participant with the given id. An unknown id is a no-op.
func (tp TeamParticipants) Remove(participantID ID) (TeamParticipants, error) {
	candidate := make([]Participant, 0, len(tp.participants))
	for _, p := range tp.participants {
		if p.ID() != participantID {
			candidate = append(candidate, p)
		}
	}
	return NewTeamParticipants(candidate)
}

func (tp TeamParticipants) Contains(participantID ID) bool {
	for _, p := range tp.participants {
		if p.ID() == participantID {
			return true
		}
	}
	return false
}

func (tp TeamParticipants) FindByEmail(email string) (Participant, bool) {
	for _, p := range tp.participants {
		if p.Email().String() == email {
			return p, true
		}
	}
	return Participant{}, false
}

// ForPersistence returns plain records for the storage layer. Each call allocates a new slice.
func (tp TeamParticipants) ForPersistence() []ParticipantRecord {
	records := make([]ParticipantRecord, len(tp.participants))
	for i, p := range tp.participants {
		records[i] = p.ToRecord()
	}
	return records
}
