package domain

// Assignment links a task to a participant with a progress status.
// The (task, participant) pair is unique in storage, not here.
type Assignment struct {
	id             ID
	taskID         ID
	participantID  ID
	progressStatus ProgressStatus
}

func NewAssignment(taskID, participantID, progressStatus string) (Assignment, error) {
	return buildAssignment(NewID(), taskID, participantID, progressStatus)
}

func ReconstructAssignment(id, taskID, participantID, progressStatus string) (Assignment, error) {
	aid, err := ParseID(id)
	if err != nil {
		return Assignment{}, err
	}
	return buildAssignment(aid, taskID, participantID, progressStatus)
}

func buildAssignment(id ID, taskID, participantID, progressStatus string) (Assignment, error) {
	tid, err := ParseID(taskID)
	if err != nil {
		return Assignment{}, err
	}
	pid, err := ParseID(participantID)
	if err != nil {
		return Assignment{}, err
	}
	status, err := NewProgressStatus(progressStatus)
	if err != nil {
		return Assignment{}, err
	}
	return Assignment{id: id, taskID: tid, participantID: pid, progressStatus: status}, nil
}

func (a Assignment) ID() ID                         { return a.id }
func (a Assignment) TaskID() ID                     { return a.taskID }
func (a Assignment) ParticipantID() ID              { return a.participantID }
func (a Assignment) ProgressStatus() ProgressStatus { return a.progressStatus }

// WithProgressStatus returns a copy moved to the given status.
func (a Assignment) WithProgressStatus(status ProgressStatus) Assignment {
	a.progressStatus = status
	return a
}
