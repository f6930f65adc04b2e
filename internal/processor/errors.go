package processor

// Error codes returned to API callers.
const (
	CodeUnexpectedError        = "1000"
	CodeMissingRequiredField   = "1001"
	CodeTaxProviderUnavailable = "1002"
)

// ErrorResponse is a single caller-facing error.
type ErrorResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// NewErrorResponse creates an ErrorResponse.
func NewErrorResponse(code, description string) ErrorResponse {
	return ErrorResponse{Code: code, Description: description}
}

// ErrProviderUnavailable is reported when no provider of the active type is configured.
var ErrProviderUnavailable = NewErrorResponse(CodeTaxProviderUnavailable,
	"The requested tax provider is not available.")
