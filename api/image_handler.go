package api

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/sleeklegal-backend/errs"
)

const maxImageSize = 8 << 20 // 8MB

var imageFolders = map[string]bool{
	"attorneys":    true,
	"blog":         true,
	"testimonials": true,
}

// imageUploader stores an image and returns its public URL
type imageUploader interface {
	Upload(ctx context.Context, folder, contentType string, body io.Reader) (string, error)
}

type imageHandler struct {
	responder Responder
	logger    zerolog.Logger
	images    imageUploader
}

func newImageHandler(images imageUploader) imageHandler {
	logger := log.With().Str("handlerName", "imageHandler").Logger()
	return imageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		images:    images,
	}
}

// ImageResponse is the stored image location, ready for imageUrl
type ImageResponse struct {
	URL string `json:"url"`
}

// upload stores a multipart "file" in the given "folder"
// @Summary Upload image
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} ImageResponse
// @Router /admin/images [post]
func (h imageHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.images == nil {
			h.responder.WriteError(w, errs.NewConfigMissingError("image storage"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1024)
		if err := r.ParseMultipartForm(maxImageSize); err != nil {
			h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(maxImageSize))
			return
		}

		folder := r.FormValue("folder")
		if !imageFolders[folder] {
			h.responder.WriteError(w, errs.NewInvalidFieldError("folder", "must be attorneys, blog or testimonials"))
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read upload"))
			return
		}

		// trust the bytes, not the client's header
		contentType := http.DetectContentType(data)
		url, err := h.images.Upload(r.Context(), folder, contentType, bytes.NewReader(data))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("url", url).Msg("image uploaded")
		h.responder.WriteJSONStatus(w, http.StatusCreated, ImageResponse{URL: url})
	}
}
