package gemini

import (
	"context"

	"google.golang.org/genai"
)

// contentCaller is the narrow slice of the genai SDK the tutor uses. The
// SDK's Models service satisfies it; tests substitute a hand-rolled mock so
// no network traffic happens in unit tests.
type contentCaller interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)

	GenerateImages(
		ctx context.Context,
		model string,
		prompt string,
		config *genai.GenerateImagesConfig,
	) (*genai.GenerateImagesResponse, error)
}
