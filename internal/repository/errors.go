package repository

import (
	"errors"
	"fmt"

	"github.com/SundayYogurt/jobboard_service/internal/helper"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// translate maps gorm and postgres errors onto the repository sentinels so
// callers never depend on the driver.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case helper.IsNotFound(err):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case helper.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
