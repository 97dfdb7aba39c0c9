package gemini

// Upstream model identifiers. Each operation selects exactly one of these
// per call; see chatModelConfig and GenerateOrEditImage for the selection
// rules.
const (
	// modelChat is the default chat model, used when neither thinking nor
	// search is requested and for all structured-output operations.
	modelChat = "gemini-2.5-flash"

	// modelFast backs search-grounded chat turns.
	modelFast = "gemini-2.5-flash-lite"

	// modelThinking backs chat turns with an internal reasoning budget.
	modelThinking = "gemini-2.5-pro"

	// modelImageEdit edits a caller-supplied source image.
	modelImageEdit = "gemini-2.5-flash-image-preview"

	// modelImageGenerate and modelImageGenerateLarge create images from a
	// prompt; the large variant serves the 2K size tier.
	modelImageGenerate      = "imagen-4.0-generate-001"
	modelImageGenerateLarge = "imagen-4.0-ultra-generate-001"
)

// thinkingBudget bounds how much internal reasoning computation the
// thinking model may spend before answering.
const thinkingBudget int32 = 32768
