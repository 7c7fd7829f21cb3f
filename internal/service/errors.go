package service

import "fmt"

// UseCaseError tags a failure with the use case it happened in.
// The message reads "<UseCase>UseCaseError: <cause>" and errors.Is/As see through to Err.
type UseCaseError struct {
	UseCase string
	Err     error
}

func (e *UseCaseError) Error() string {
	return fmt.Sprintf("%sUseCaseError: %s", e.UseCase, e.Err.Error())
}

func (e *UseCaseError) Unwrap() error {
	return e.Err
}

func useCaseError(useCase string, err error) error {
	return &UseCaseError{UseCase: useCase, Err: err}
}

// parseOptional applies parse to raw when it is set.
func parseOptional[T any](raw *string, parse func(string) (T, error)) (*T, error) {
	if raw == nil {
		return nil, nil
	}
	v, err := parse(*raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
