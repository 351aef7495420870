package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information.
// The copy still matches the original through errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors carrying the same business error code.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados de entrada inválidos",
		"",
	)

	ErrMalformedCompetency = NewBaseError(
		http.StatusBadRequest,
		"MALFORMED_COMPETENCY",
		"Competência inválida. Use AAAA-MM ou MM/AAAA",
		"",
	)

	// Member-related errors
	ErrMemberNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMBER_NOT_FOUND",
		"Associado não encontrado",
		"",
	)

	ErrMemberAlreadyExists = NewBaseError(
		http.StatusConflict,
		"MEMBER_ALREADY_EXISTS",
		"Já existe um associado com este CPF ou RGP",
		"",
	)

	ErrDocumentNotFound = NewBaseError(
		http.StatusNotFound,
		"DOCUMENT_NOT_FOUND",
		"Documento não encontrado",
		"",
	)

	// Dues-related errors
	ErrDuesNotFound = NewBaseError(
		http.StatusNotFound,
		"DUES_NOT_FOUND",
		"Mensalidade não encontrada",
		"",
	)

	ErrDuesAlreadyExists = NewBaseError(
		http.StatusConflict,
		"DUES_ALREADY_EXISTS",
		"Já existe mensalidade para esta competência",
		"",
	)

	ErrDuesAlreadyPaid = NewBaseError(
		http.StatusConflict,
		"DUES_ALREADY_PAID",
		"Mensalidade já paga não pode ser alterada ou excluída",
		"",
	)

	ErrDuesNotPayable = NewBaseError(
		http.StatusConflict,
		"DUES_NOT_PAYABLE",
		"Mensalidade isenta não pode ser paga",
		"",
	)

	ErrDuesNotPaid = NewBaseError(
		http.StatusConflict,
		"DUES_NOT_PAID",
		"Recibo disponível apenas para mensalidades pagas",
		"",
	)

	ErrReceiptNotFound = NewBaseError(
		http.StatusNotFound,
		"RECEIPT_NOT_FOUND",
		"Recibo não encontrado ou código de verificação inválido",
		"",
	)

	// Ledger-related errors
	ErrLedgerEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"LEDGER_ENTRY_NOT_FOUND",
		"Lançamento não encontrado",
		"",
	)

	ErrLedgerEntryLocked = NewBaseError(
		http.StatusConflict,
		"LEDGER_ENTRY_LOCKED",
		"Lançamento gerado por pagamento de mensalidade não pode ser alterado",
		"",
	)

	// Storage-related errors
	ErrFileStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"FILE_STORAGE_FAILED",
		"Falha ao armazenar o arquivo",
		"",
	)

	ErrRenderFailed = NewBaseError(
		http.StatusInternalServerError,
		"RENDER_FAILED",
		"Falha ao gerar o documento PDF",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Usuário ou senha incorretos",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Autenticação necessária",
		"",
	)

	ErrOperatorAlreadyExists = NewBaseError(
		http.StatusConflict,
		"OPERATOR_ALREADY_EXISTS",
		"Nome de usuário já cadastrado",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Erro ao processar a senha",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acesso negado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflito de recurso",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Falha ao executar operação no banco de dados"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
