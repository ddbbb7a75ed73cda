package domain

// PromptRequest is the JSON body accepted by the enhance and generate endpoints.
type PromptRequest struct {
	Prompt string `json:"prompt"`
}

// Validate reports ErrInvalidPrompt when the prompt is missing or empty.
// Whitespace is a prompt like any other.
func (p PromptRequest) Validate() error {
	if p.Prompt == "" {
		return ErrInvalidPrompt
	}
	return nil
}

// ImageResult holds generated image bytes for the lifetime of one request.
type ImageResult struct {
	Data        []byte
	ContentType string
}
