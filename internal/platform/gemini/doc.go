// Package gemini implements the tutor.Service interface using Google's
// Gemini API via the google.golang.org/genai SDK.
package gemini
