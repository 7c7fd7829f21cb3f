package domain

// Participant is a member who can belong to a team and be assigned tasks.
type Participant struct {
	id               ID
	name             Name
	email            Email
	enrollmentStatus EnrollmentStatus
}

// ParticipantRecord is the unbranded form of a Participant used by storage and payloads.
type ParticipantRecord struct {
	ID               string
	Name             string
	Email            string
	EnrollmentStatus string
}

// NewParticipant creates a participant with a fresh id.
// Validation runs name, email, enrollment status in that order and stops at the first failure.
func NewParticipant(name, email, enrollmentStatus string) (Participant, error) {
	return buildParticipant(NewID(), name, email, enrollmentStatus)
}

// ReconstructParticipant rehydrates a stored participant under the same rules as NewParticipant.
func ReconstructParticipant(id, name, email, enrollmentStatus string) (Participant, error) {
	pid, err := ParseID(id)
	if err != nil {
		return Participant{}, err
	}
	return buildParticipant(pid, name, email, enrollmentStatus)
}

func buildParticipant(id ID, name, email, enrollmentStatus string) (Participant, error) {
	n, err := NewName(name)
	if err != nil {
		return Participant{}, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return Participant{}, err
	}
	s, err := NewEnrollmentStatus(enrollmentStatus)
	if err != nil {
		return Participant{}, err
	}
	return Participant{id: id, name: n, email: e, enrollmentStatus: s}, nil
}

func (p Participant) ID() ID                             { return p.id }
func (p Participant) Name() Name                         { return p.name }
func (p Participant) Email() Email                       { return p.email }
func (p Participant) EnrollmentStatus() EnrollmentStatus { return p.enrollmentStatus }

// ToRecord strips the value object types.
func (p Participant) ToRecord() ParticipantRecord {
	return ParticipantRecord{
		ID:               p.id.String(),
		Name:             p.name.String(),
		Email:            p.email.String(),
		EnrollmentStatus: p.enrollmentStatus.String(),
	}
}
