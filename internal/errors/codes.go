package errors

// Error codes for the solparse toolchain
// These codes are used in error messages and documentation
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0400-E0499: Contract-specific errors
// E0900-E0999: Reserved for tooling errors

const (
	// Parser errors (E0100-E0199)

	// E0100: Token sequence does not match the grammar
	ErrorUnexpectedToken = "E0100"

	// E0101: String literal runs to the end of input
	ErrorUnterminatedString = "E0101"

	// E0102: Block comment runs to the end of input
	ErrorUnterminatedComment = "E0102"

	// E0103: Character that starts no token
	ErrorInvalidCharacter = "E0103"

	// E0104: Malformed numeric literal
	ErrorInvalidNumber = "E0104"

	// E0105: Inline assembly does not match the assembly grammar
	ErrorAssemblySyntax = "E0105"

	// Contract-specific errors (E0400-E0499)

	// E0401-E0403: Fallback function shape
	ErrorFallbackNotExternal = "E0401"
	ErrorFallbackParameters  = "E0402"
	ErrorFallbackReturns     = "E0403"

	// E0404-E0407: Receive Ether function shape
	ErrorReceiveNotExternal = "E0404"
	ErrorReceiveNotPayable  = "E0405"
	ErrorReceiveParameters  = "E0406"
	ErrorReceiveReturns     = "E0407"

	// Tooling errors (E0900-E0999)

	// E0900: Source file could not be read
	ErrorReadFailed = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedToken:
		return "Input does not match the grammar at this position"
	case ErrorUnterminatedString:
		return "String literal is missing its closing quote"
	case ErrorUnterminatedComment:
		return "Block comment is missing its closing */"
	case ErrorInvalidCharacter:
		return "Character is not valid here"
	case ErrorInvalidNumber:
		return "Numeric literal is malformed"
	case ErrorAssemblySyntax:
		return "Inline assembly block is malformed"
	case ErrorFallbackNotExternal:
		return "Fallback function is not declared external"
	case ErrorFallbackParameters:
		return "Fallback function declares parameters"
	case ErrorFallbackReturns:
		return "Fallback function declares return parameters"
	case ErrorReceiveNotExternal:
		return "Receive Ether function is not declared external"
	case ErrorReceiveNotPayable:
		return "Receive Ether function is not declared payable"
	case ErrorReceiveParameters:
		return "Receive Ether function declares parameters"
	case ErrorReceiveReturns:
		return "Receive Ether function declares return parameters"
	case ErrorReadFailed:
		return "Source file could not be read"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0400" && code < "E0500":
		return "Contract"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
