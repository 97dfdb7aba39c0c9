// Package domain contains the core business entities and value objects of
// the tutoring service: personas and languages, chat attachments and
// replies, quiz questions, mock exam papers and their grading results, and
// image generation options. Entities are plain immutable records created
// fresh per call; ownership passes entirely to the caller.
package domain
