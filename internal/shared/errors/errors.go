package errors

import "errors"

var (
	ErrMissingBotToken  = errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	ErrMissingAdminID   = errors.New("ADMIN_ID environment variable is required")
	ErrUnsupportedStore = errors.New("unsupported storage driver")
	ErrInvalidSchedule  = errors.New("invalid broadcast schedule")
)
