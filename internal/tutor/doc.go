// Package tutor provides the interface for interacting with the external
// generative-AI service that powers the tutoring features. It abstracts the
// details of the Gemini API integration, allowing the application to chat,
// generate quizzes and mock exam papers, and grade submissions without
// coupling to a specific external service.
package tutor
