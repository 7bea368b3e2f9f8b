package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind - класс ошибки бизнес-логики, по которому вызывающий выбирает HTTP статус
type Kind int

const (
	Internal        Kind = iota
	InvalidArgument      // некорректный ввод или нарушение бизнес-правила
	NotFound             // сущность не найдена
	Conflict             // операция недопустима в текущем состоянии сущности
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid_argument"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	default:
		return "internal"
	}
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is позволяет сравнивать через errors.Is(err, apperr.ErrNotFound) и т.п.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Err == nil && t.Kind == e.Kind
}

var (
	ErrInvalidArgument = &Error{Kind: InvalidArgument}
	ErrNotFound        = &Error{Kind: NotFound}
	ErrConflict        = &Error{Kind: Conflict}
)

func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func Invalid(format string, args ...any) *Error {
	return New(InvalidArgument, fmt.Errorf(format, args...))
}

func NotFoundf(format string, args ...any) *Error {
	return New(NotFound, fmt.Errorf(format, args...))
}

func Conflictf(format string, args ...any) *Error {
	return New(Conflict, fmt.Errorf(format, args...))
}

// KindOf возвращает класс ошибки; неклассифицированные ошибки считаются внутренними
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case InvalidArgument:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
