package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/crewcal/crewcal/internal/calendar"
	"github.com/crewcal/crewcal/internal/normalizer"
	"github.com/crewcal/crewcal/internal/schedule"
)

// previewLimit caps how many events the preview endpoint returns.
const previewLimit = 5

// maxUploadBytes bounds multipart schedule uploads.
const maxUploadBytes = 10 << 20

// Handler serves the convert and preview endpoints.
type Handler struct {
	defaultExclude []string
}

func NewHandler(defaultExclude []string) *Handler {
	return &Handler{defaultExclude: defaultExclude}
}

type errorResponse struct {
	Error string `json:"error"`
}

type eventDTO struct {
	Activity string   `json:"activity"`
	Date     string   `json:"date"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Location string   `json:"location"`
	Crew     []string `json:"crew"`
}

type previewResponse struct {
	Success    bool       `json:"success"`
	EventCount int        `json:"event_count"`
	Events     []eventDTO `json:"events"`
}

// Convert parses the submitted schedule and responds with the generated
// .ics file as an attachment download.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	text, excludeNames, err := h.readRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	events := h.parse(text, excludeNames)
	if len(events) == 0 {
		writeError(w, http.StatusBadRequest, "No valid events found in the schedule. Please check your input.")
		return
	}

	filename, doc, err := calendar.Build(events)
	if err != nil {
		log.Errorf("calendar generation failed: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error processing schedule: %v", err))
		return
	}

	w.Header().Set("Content-Type", calendar.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(doc); err != nil {
		log.Errorf("writing calendar response: %v", err)
	}
}

// Preview parses the submitted schedule and responds with a JSON summary:
// the event count and the first few events, crew split into lines.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	text, excludeNames, err := h.readRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	events := h.parse(text, excludeNames)
	if len(events) == 0 {
		writeError(w, http.StatusBadRequest, "No valid events found in the schedule")
		return
	}

	resp := previewResponse{
		Success:    true,
		EventCount: len(events),
		Events:     make([]eventDTO, 0, previewLimit),
	}
	for i, evt := range events {
		if i == previewLimit {
			break
		}
		resp.Events = append(resp.Events, eventDTO{
			Activity: evt.Activity,
			Date:     evt.Date,
			Start:    evt.StartTime,
			End:      evt.EndTime,
			Location: evt.Location,
			Crew:     evt.CrewLines(),
		})
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("encoding preview response: %v", err)
	}
}

func (h *Handler) parse(text string, excludeNames []string) []schedule.TrainingEvent {
	return schedule.Extract(normalizer.Normalize(text), excludeNames)
}

// readRequest pulls the schedule text and exclusion list from the request.
// The text comes from the schedule_text form field, or from an uploaded
// schedule_file when the request is multipart.
func (h *Handler) readRequest(r *http.Request) (string, []string, error) {
	var text string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return "", nil, fmt.Errorf("invalid upload: %v", err)
		}
		if file, _, err := r.FormFile("schedule_file"); err == nil {
			defer file.Close()
			data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
			if err != nil {
				return "", nil, fmt.Errorf("reading uploaded file: %v", err)
			}
			text = string(data)
		}
	} else if err := r.ParseForm(); err != nil {
		return "", nil, fmt.Errorf("invalid form: %v", err)
	}

	if text == "" {
		text = r.FormValue("schedule_text")
	}
	if strings.TrimSpace(text) == "" {
		return "", nil, fmt.Errorf("Please provide schedule text")
	}

	excludeNames := schedule.SplitExcludeNames(r.FormValue("exclude_names"))
	if len(excludeNames) == 0 {
		excludeNames = h.defaultExclude
	}
	return text, excludeNames, nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: message}); err != nil {
		log.Errorf("encoding error response: %v", err)
	}
}
