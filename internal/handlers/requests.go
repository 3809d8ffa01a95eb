package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/nfrund/folio/internal/portfolio"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// AddBlockRequest is the body of POST /admin/blocks.
type AddBlockRequest struct {
	Kind string `form:"kind" json:"kind" validate:"required,oneof=social text image link map"`
}

// MoveBlockRequest is the body of POST /admin/blocks/:id/move.
type MoveBlockRequest struct {
	ID        string `param:"id" validate:"required"`
	Direction string `form:"direction" json:"direction" validate:"required,oneof=earlier later prev next"`
}

// ResizeBlockRequest is the body of POST /admin/blocks/:id/resize.
type ResizeBlockRequest struct {
	ID     string `param:"id" validate:"required"`
	Axis   string `form:"axis" json:"axis" validate:"required,oneof=width height"`
	Action string `form:"action" json:"action" validate:"required,oneof=grow shrink increase decrease"`
}

// ConfirmRequest carries the answer to a destructive-action prompt. htmx
// sends DELETE parameters in the query string.
type ConfirmRequest struct {
	Confirm string `query:"confirm" form:"confirm" json:"confirm"`
}

// Answer converts the request into a portfolio.Confirmer.
func (r ConfirmRequest) Answer() portfolio.Answer {
	return portfolio.Answer(r.Confirm == "yes")
}

// LoginRequest is the body of POST /admin/login.
type LoginRequest struct {
	Code string `form:"code" json:"code"`
}
