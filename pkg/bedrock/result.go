package bedrock

// FailureCategory enumerates every way the generation round trip can go
// wrong. Categories are explicit; nothing is inferred from message text.
type FailureCategory string

const (
	FailureAccessDenied   FailureCategory = "access_denied"
	FailureInvalidRequest FailureCategory = "invalid_request"
	FailureNotFound       FailureCategory = "not_found"
	FailureNotInitialized FailureCategory = "not_initialized"
	FailureUnknown        FailureCategory = "unknown"
)

// Failure is a categorized generation fault. Code carries the remote
// error code when one was available, for logging only.
type Failure struct {
	Category FailureCategory
	Code     string
}

func (f *Failure) Error() string {
	if f.Code != "" {
		return string(f.Category) + " (" + f.Code + ")"
	}
	return string(f.Category)
}

// UserMessage maps each category to its fixed human-readable message.
// Raw traces never reach the caller.
func (f *Failure) UserMessage() string {
	switch f.Category {
	case FailureAccessDenied:
		return "Access denied. Please check your AWS permissions for Bedrock Agents."
	case FailureInvalidRequest:
		return "Invalid request. Please check the agent ID and alias ID."
	case FailureNotFound:
		return "Agent not found. Please check your agent ID and alias ID."
	case FailureNotInitialized:
		return "AWS Bedrock Agent client not initialized. Please check your credentials."
	}
	return "Sorry, I couldn't process your request at the moment."
}

// Result is the typed outcome of one generation call: either Text or a
// categorized Failure, never both.
type Result struct {
	Text    string
	Failure *Failure
}

func (r Result) Failed() bool {
	return r.Failure != nil
}
