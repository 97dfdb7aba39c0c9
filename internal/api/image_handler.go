package api

import (
	"encoding/base64"
	"net/http"

	"github.com/phrazzld/tutor-api/internal/api/shared"
	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/phrazzld/tutor-api/internal/tutor"
)

// ImageHandler handles image generation and editing requests.
type ImageHandler struct {
	tutorService tutor.Service
}

// NewImageHandler creates a new ImageHandler with the given dependencies.
func NewImageHandler(tutorService tutor.Service) *ImageHandler {
	return &ImageHandler{tutorService: tutorService}
}

// GenerateOrEdit handles the /api/images endpoint. A request with a source
// image is an edit, otherwise a fresh generation. Tutor failures respond
// 200 with a null image rather than an error status.
func (h *ImageHandler) GenerateOrEdit(w http.ResponseWriter, r *http.Request) {
	var req ImageRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	var source *domain.Attachment
	if req.Image != nil {
		attachment, err := req.Image.toAttachment()
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid source image: "+err.Error())
			return
		}
		source = attachment
	}

	opts := domain.ImageOptions{
		AspectRatio: domain.AspectRatio(req.AspectRatio),
		Size:        domain.ImageSize(req.Size),
	}

	image, err := h.tutorService.GenerateOrEditImage(
		r.Context(),
		req.Prompt,
		source,
		opts,
		domain.Language(req.Language),
	)
	if err != nil {
		shared.LogHandlerError(r, "generate_image", err)
		shared.RespondWithJSON(w, r, http.StatusOK, ImageResponse{Image: nil})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ImageResponse{
		Image: &ImagePayload{
			MIMEType: image.MIMEType,
			Data:     base64.StdEncoding.EncodeToString(image.Data),
		},
	})
}
