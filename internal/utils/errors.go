package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrQuotationNotFound  = errors.New("quotation not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrPackageNotFound    = errors.New("package not found")
	ErrInvalidClient      = errors.New("client_id is required")
	ErrInvalidCustomType  = errors.New("custom_type must be 'fixed' or 'custom'")
	ErrDocumentDisabled   = errors.New("PDF generation not implemented yet")
)
