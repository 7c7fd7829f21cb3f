package domain

// Task is a unit of work that can be assigned to participants.
type Task struct {
	id     ID
	title  Title
	isDone IsDone
}

// NewTask creates an incomplete task with a fresh id.
func NewTask(title string) (Task, error) {
	id := NewID()
	t, err := NewTitle(title)
	if err != nil {
		return Task{}, err
	}
	return Task{id: id, title: t, isDone: NewIsDone(false)}, nil
}

func ReconstructTask(id, title string, isDone bool) (Task, error) {
	taskID, err := ParseID(id)
	if err != nil {
		return Task{}, err
	}
	t, err := NewTitle(title)
	if err != nil {
		return Task{}, err
	}
	return Task{id: taskID, title: t, isDone: NewIsDone(isDone)}, nil
}

func (t Task) ID() ID         { return t.id }
func (t Task) Title() Title   { return t.title }
func (t Task) IsDone() IsDone { return t.isDone }

// ToggleDone returns a copy with the completion flag flipped.
func (t Task) ToggleDone() Task {
	t.isDone = t.isDone.Toggle()
	return t
}

// UpdateTitle returns a retitled copy. On error the receiver is unchanged.
func (t Task) UpdateTitle(title string) (Task, error) {
	newTitle, err := NewTitle(title)
	if err != nil {
		return Task{}, err
	}
	t.title = newTitle
	return t, nil
}
