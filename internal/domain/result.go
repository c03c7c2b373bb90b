package domain

// Result status codes. They mirror HTTP semantics so handlers can surface a
// wallet result without translation.
const (
	CodeOK           = 200
	CodeCreated      = 201
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeInternal     = 500
)

// ServiceResult is the uniform outcome of a wallet operation. Expected
// business failures (insufficient funds, unknown destination) come back as
// unsuccessful results rather than errors; only the transport layer decides
// how to render them.
type ServiceResult struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SuccessResult builds a successful result with CodeOK.
func SuccessResult(message string, data any) ServiceResult {
	return ServiceResult{Success: true, Code: CodeOK, Message: message, Data: data}
}

// FailureResult builds a failed result with the given code.
func FailureResult(message string, code int) ServiceResult {
	return ServiceResult{Success: false, Code: code, Message: message}
}

// InternalResult builds a failed result for unexpected errors.
func InternalResult(message string) ServiceResult {
	return FailureResult(message, CodeInternal)
}
