package services

import (
	"errors"

	"github.com/SundayYogurt/jobboard_service/internal/helper"
	"github.com/SundayYogurt/jobboard_service/internal/repository"
)

// repoError turns a repository failure into an AppError. AppErrors pass
// through untouched.
func repoError(err error, notFoundMsg string) error {
	var appErr *helper.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, repository.ErrNotFound):
		return helper.NotFound(notFoundMsg)
	case errors.Is(err, repository.ErrDuplicate):
		return helper.Conflict("Resource already exists")
	default:
		return helper.Internal("Internal Server Error", err)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
