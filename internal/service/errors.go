package service

import "errors"

var (
	ErrSurveyNotFound     = errors.New("survey not found")
	ErrSurveyNotPublished = errors.New("survey is not published")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrNotAuthorized      = errors.New("not authorized")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
