package util

import "errors"

var (
	ErrSessionNotFound       = errors.New("problem session not found")
	ErrInvalidAnswer         = errors.New("user answer must be a number")
	ErrNoJSONFound           = errors.New("no JSON found in response")
	ErrInvalidAIResponse     = errors.New("invalid problem data structure")
	ErrAIUnavailable         = errors.New("AI service unavailable")
	ErrSyllabusSourceMissing = errors.New("syllabus PDF not found")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrInvalidUpload         = errors.New("invalid upload")
)
