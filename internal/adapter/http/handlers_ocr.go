package adapthttp

import (
	"errors"
	"io"
	"net/http"

	"weighin/internal/app"
)

// maxUploadSize bounds the multipart form, slightly above the image limit so
// the service layer reports the precise error.
const maxUploadSize = 12 << 20

func (s *Server) handleOCR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("missing image field"))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("failed to read image"))
		return
	}

	mediaType := header.Header.Get("Content-Type")

	result, err := s.ocr.ReadScalePhoto(r.Context(), image, mediaType)
	if err == app.ErrOCRUnavailable {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
