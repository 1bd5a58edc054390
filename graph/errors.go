package graph

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/VitaminP8/postql/internal/post"
)

// Значения extensions.code в ответе.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeBadUserInput = "BAD_USER_INPUT"
	CodeInternal     = "INTERNAL_SERVER_ERROR"
)

const internalMessage = "internal server error"

// resolverError - ошибка, которую graphql-go кладет в список errors.
type resolverError struct {
	message string
	code    string
	status  int
	err     error
}

func (e *resolverError) Error() string {
	return e.message
}

func (e *resolverError) Unwrap() error {
	return e.err
}

func (e *resolverError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.code}
	if e.status != 0 {
		ext["status"] = e.status
	}
	return ext
}

// HTTPStatus - статус ответа, которого требует ошибка; 0 если обычная GraphQL-ошибка.
func (e *resolverError) HTTPStatus() int {
	return e.status
}

func (r *Resolver) toGraphQLError(op string, err error) error {
	switch {
	case errors.Is(err, post.ErrNotFound):
		return &resolverError{message: err.Error(), code: CodeNotFound, err: err}
	case errors.Is(err, post.ErrValidation):
		return &resolverError{message: err.Error(), code: CodeBadUserInput, err: err}
	default:
		r.log().Error("resolver failed", zap.String("operation", op), zap.Error(err))
		return &resolverError{message: internalMessage, code: CodeInternal, err: err}
	}
}

// notFoundStatus поднимает NOT_FOUND до HTTP 404.
func notFoundStatus(err error) error {
	var rErr *resolverError
	if errors.As(err, &rErr) && rErr.code == CodeNotFound {
		rErr.status = http.StatusNotFound
	}
	return err
}
