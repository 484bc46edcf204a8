package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/ppopeskul/telegram-dashboard/internal/api"
	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/service"
)

const errorCodeUnknownMediaKind = "UNKNOWN_MEDIA_KIND"

// sendMediaBody is the JSON form of a media send. Multipart requests carry
// the same fields plus a "file" part instead of media_url.
type sendMediaBody struct {
	To       string `json:"to"`
	MediaURL string `json:"media_url"`
	Caption  string `json:"caption,omitempty"`
}

// SendText implements api.ServerInterface.
func (h *Handler) SendText(w http.ResponseWriter, r *http.Request, id string) {
	var req models.SendTextRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	resp, err := h.service.Messages.SendText(r.Context(), id, req)
	if err != nil {
		h.sendError(w, r, "send_text", err)
		return
	}

	api.WriteJSON(w, r, http.StatusAccepted, resp)
}

// SendBulk implements api.ServerInterface.
func (h *Handler) SendBulk(w http.ResponseWriter, r *http.Request, id string) {
	var req models.SendBulkRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	resp, err := h.service.Messages.SendBulk(r.Context(), id, req)
	if err != nil {
		h.sendError(w, r, "send_bulk", err)
		return
	}
	if resp == nil {
		resp = []models.MessageResponse{}
	}

	api.WriteJSON(w, r, http.StatusAccepted, resp)
}

// SendMedia implements api.ServerInterface. A multipart body uploads the file
// first; a JSON body sends an already reachable media_url.
func (h *Handler) SendMedia(w http.ResponseWriter, r *http.Request, id string, kind string) {
	mediaKind := models.MediaKind(kind)
	if !mediaKind.Valid() {
		api.WriteError(w, r, http.StatusNotFound, errorCodeUnknownMediaKind, "Unknown media kind "+kind)
		return
	}

	var (
		resp *models.MessageResponse
		err  error
	)
	if isMultipart(r) {
		file, ok := h.readUpload(w, r, mediaKind)
		if !ok {
			return
		}
		resp, err = h.service.Messages.SendMediaFile(r.Context(), id, file)
	} else {
		var body sendMediaBody
		if !h.decode(w, r, &body, false) {
			return
		}
		resp, err = h.service.Messages.SendMedia(r.Context(), id, models.SendMediaRequest{
			Kind:     mediaKind,
			To:       body.To,
			MediaURL: body.MediaURL,
			Caption:  body.Caption,
		})
	}
	if err != nil {
		h.sendError(w, r, "send_"+kind, err)
		return
	}

	api.WriteJSON(w, r, http.StatusAccepted, resp)
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request, kind models.MediaKind) (service.MediaFile, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	fail := func(err error) (service.MediaFile, bool) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.WriteError(w, r, http.StatusRequestEntityTooLarge, apierrors.CodeValidation, "Upload exceeds the size limit")
		} else {
			h.sendError(w, r, "upload_"+string(kind), apierrors.NewValidationError("file", err.Error()))
		}
		return service.MediaFile{}, false
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		return fail(err)
	}
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		return fail(err)
	}

	return service.MediaFile{
		Kind:     kind,
		To:       r.FormValue("to"),
		Caption:  r.FormValue("caption"),
		Filename: header.Filename,
		Data:     data,
	}, true
}

// GetJobStatus implements api.ServerInterface. With wait=true it polls until
// the job finishes or the request ends.
func (h *Handler) GetJobStatus(w http.ResponseWriter, r *http.Request, jobID string, params api.GetJobStatusParams) {
	if params.Wait == nil || !*params.Wait {
		job, err := h.service.Messages.GetJobStatus(r.Context(), jobID)
		if err != nil {
			h.sendError(w, r, "job_status", err)
			return
		}
		api.WriteJSON(w, r, http.StatusOK, job)
		return
	}

	watch, err := h.service.Messages.WatchJob(r.Context(), jobID)
	if err != nil {
		h.sendError(w, r, "job_status", err)
		return
	}
	defer watch.Cancel()

	job, err := watch.Wait(r.Context())
	if err != nil {
		h.sendError(w, r, "job_status", err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, job)
}
