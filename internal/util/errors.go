package util

import "errors"

var (
	ErrUnknownQuestion      = errors.New("unknown question key")
	ErrInvalidAnswerPayload = errors.New("invalid answer payload")
	ErrMissingOrg           = errors.New("missing organization context")
	ErrGuideNotFound        = errors.New("guide not found")
	ErrNoBenchmark          = errors.New("no benchmark dataset available")
	ErrSubmissionNotFound   = errors.New("survey submission not found")
)
