package domain

import "errors"

// Chat-specific validation errors
var (
	// ErrAttachmentMIMETypeEmpty is returned when an attachment has no MIME type.
	ErrAttachmentMIMETypeEmpty = errors.New("attachment MIME type cannot be empty")

	// ErrAttachmentDataEmpty is returned when an attachment carries no data.
	ErrAttachmentDataEmpty = errors.New("attachment data cannot be empty")
)

// Attachment is an inline binary payload supplied by the caller for a single
// request. It is transient and never retained by the service.
type Attachment struct {
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"data"`
}

// NewAttachment creates a validated Attachment.
func NewAttachment(mimeType string, data []byte) (*Attachment, error) {
	a := &Attachment{
		MIMEType: mimeType,
		Data:     data,
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks if the Attachment has valid data.
func (a *Attachment) Validate() error {
	if a.MIMEType == "" {
		return ErrAttachmentMIMETypeEmpty
	}
	if len(a.Data) == 0 {
		return ErrAttachmentDataEmpty
	}
	return nil
}

// ChatOptions are the recognized per-request chat toggles. When both are
// set, thinking takes priority over search.
type ChatOptions struct {
	UseSearch   bool `json:"use_search"`
	UseThinking bool `json:"use_thinking"`
}

// GroundingSource is a web citation (title + URI) returned by the upstream
// service when a response was produced using the search tool.
type GroundingSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ChatReply is the result of a chat turn: the assistant's text plus any
// grounding citations. Sources is empty when no search grounding occurred.
type ChatReply struct {
	Text    string            `json:"text"`
	Sources []GroundingSource `json:"sources,omitempty"`
}
