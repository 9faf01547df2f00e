package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrCommentEmpty  = errors.New("Comment cannot be empty.")
	ErrNameEmpty     = errors.New("Name cannot be empty.")
	ErrInvalidStatus = errors.New("Post status must be DRAFT or PUBLISHED.")
	ErrLoginRequired = errors.New("Please log in to continue.")
	UnExpectedError  = errors.New("An unexpected error occurred")
)

var ErrorMap = map[error]int{
	ErrCommentEmpty:  BadRequest,
	ErrNameEmpty:     BadRequest,
	ErrInvalidStatus: BadRequest,
	ErrLoginRequired: Unauthorized,
	UnExpectedError:  InternalServerError,
}
