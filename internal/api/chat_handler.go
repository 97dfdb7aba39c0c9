package api

import (
	"net/http"

	"github.com/phrazzld/tutor-api/internal/api/shared"
	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/phrazzld/tutor-api/internal/tutor"
)

// ChatHandler handles tutoring chat turns.
type ChatHandler struct {
	tutorService tutor.Service
}

// NewChatHandler creates a new ChatHandler with the given dependencies.
func NewChatHandler(tutorService tutor.Service) *ChatHandler {
	return &ChatHandler{tutorService: tutorService}
}

// Chat handles the /api/chat endpoint. Malformed requests get a 400; once
// a request reaches the tutor service, failures collapse into the fixed
// fallback reply with a 200 status.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	attachments, err := decodeAttachments(req.Attachments)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid attachment: "+err.Error())
		return
	}

	reply, err := h.tutorService.Chat(
		r.Context(),
		req.History,
		req.Message,
		attachments,
		domain.Persona(req.Persona),
		domain.Language(req.Language),
		domain.ChatOptions{UseSearch: req.UseSearch, UseThinking: req.UseThinking},
	)
	if err != nil {
		shared.LogHandlerError(r, "chat", err)
		shared.RespondWithJSON(w, r, http.StatusOK, fallbackChatResponse())
		return
	}

	sources := make([]GroundingSourceResponse, 0, len(reply.Sources))
	for _, s := range reply.Sources {
		sources = append(sources, GroundingSourceResponse{Title: s.Title, URI: s.URI})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ChatResponse{
		Text:    reply.Text,
		Sources: sources,
	})
}
