package api

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/submissions"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	multipartMemory = 32 << 20
	payloadOverhead = 1 << 20
)

type submissionHandler struct {
	responder   Responder
	logger      zerolog.Logger
	submissions *submissions.Service
}

func newSubmissionHandler(service *submissions.Service) submissionHandler {
	logger := log.With().Str("handlerName", "submissionHandler").Logger()

	return submissionHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		submissions: service,
	}
}

// createSubmission accepts a public form submission with attachments
// @Summary Create a submission
// @Description Multipart form with a JSON "payload" part and zero or more "files" parts
// @Tags Submissions
// @Accept multipart/form-data
// @Produce json
// @Param X-Session-ID header string false "Browsing session, cleared on success"
// @Success 201 {object} submissions.Result
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 413 {object} ErrorResponse "Upload too large"
// @Failure 415 {object} ErrorResponse "Not a multipart request"
// @Failure 502 {object} ErrorResponse "File storage failed"
// @Router /submissions [post]
func (h submissionHandler) createSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			h.responder.WriteError(w, errs.NewUnsupportedMediaTypeError(r.Header.Get("Content-Type"), []string{"multipart/form-data"}))
			return
		}

		limits := h.submissions.Limits()
		maxBody := limits.MaxFileBytes*int64(max(limits.MaxFiles, 1)) + payloadOverhead
		r.Body = http.MaxBytesReader(w, r.Body, maxBody)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(maxBody))
				return
			}
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}
		defer r.MultipartForm.RemoveAll()

		var req submissions.Request
		if err := json.Unmarshal([]byte(r.FormValue("payload")), &req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("submission", err))
			return
		}
		if req.SessionID == "" {
			req.SessionID = strings.TrimSpace(r.Header.Get(sessionHeader))
		}

		headers := r.MultipartForm.File["files"]
		files := make([]multipart.File, 0, len(headers))
		defer func() {
			for _, f := range files {
				f.Close()
			}
		}()
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				h.responder.WriteError(w, errs.NewMalformedPayloadError("file", err))
				return
			}
			files = append(files, f)
			req.Files = append(req.Files, submissions.File{
				Name:        fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Size:        fh.Size,
				Body:        f,
			})
		}

		result, err := h.submissions.Submit(r.Context(), req)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, result)
	}
}
