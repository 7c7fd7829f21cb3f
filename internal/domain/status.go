package domain

// EnrollmentStatus is the membership state of a participant.
type EnrollmentStatus struct {
	value string
}

var (
	EnrollmentEnrolled  = EnrollmentStatus{value: "在籍中"}
	EnrollmentOnLeave   = EnrollmentStatus{value: "休会中"}
	EnrollmentWithdrawn = EnrollmentStatus{value: "退会済"}
)

var enrollmentStatuses = []EnrollmentStatus{EnrollmentEnrolled, EnrollmentOnLeave, EnrollmentWithdrawn}

// NewEnrollmentStatus accepts only an exact match of the closed set.
func NewEnrollmentStatus(raw string) (EnrollmentStatus, error) {
	for _, s := range enrollmentStatuses {
		if s.value == raw {
			return s, nil
		}
	}
	return EnrollmentStatus{}, newValidationError("enrollmentStatus", raw, nil)
}

func (s EnrollmentStatus) String() string {
	return s.value
}

// ProgressStatus is the state of an assignment.
type ProgressStatus struct {
	value string
}

var (
	ProgressNotStarted = ProgressStatus{value: "未着手"}
	ProgressInProgress = ProgressStatus{value: "取組中"}
	ProgressInReview   = ProgressStatus{value: "レビュー待ち"}
	ProgressDone       = ProgressStatus{value: "完了"}
)

var progressStatuses = []ProgressStatus{ProgressNotStarted, ProgressInProgress, ProgressInReview, ProgressDone}

func NewProgressStatus(raw string) (ProgressStatus, error) {
	for _, s := range progressStatuses {
		if s.value == raw {
			return s, nil
		}
	}
	return ProgressStatus{}, newValidationError("progressStatus", raw, nil)
}

func (s ProgressStatus) String() string {
	return s.value
}
