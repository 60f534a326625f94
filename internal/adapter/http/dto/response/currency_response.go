package response

type FormatResponse struct {
	AmountUSD float64 `json:"amount_usd"`
	Code      string  `json:"code"`
	Converted float64 `json:"converted"`
	Formatted string  `json:"formatted"`
}

// ValidationErrorResponse lists offending fields next to the error code.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}
