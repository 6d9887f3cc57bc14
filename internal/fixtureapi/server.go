// Package fixtureapi is an in-memory stand-in for the remote roster service:
// the same endpoints, envelope behavior and error shapes, backed by seeded
// fixtures. The e2e suite and the fixture-api dev command run against it.
package fixtureapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi"

	absenceDatamodel "github.com/kbelhadj/roster-management/internal/core/datamodel/absence"
	personnelDatamodel "github.com/kbelhadj/roster-management/internal/core/datamodel/personnel"
)

type Server struct {
	logger *slog.Logger
	// envelope controls whether list responses are wrapped in a results
	// object or returned as a bare array; consumers must accept both.
	envelope bool

	mu              sync.Mutex
	nextPersonnelID int64
	nextAbsenceID   int64
	personnel       map[int64]*personnelDatamodel.Record
	absences        map[int64]*absenceDatamodel.Record
}

func NewServer(envelope bool, logger *slog.Logger) *Server {
	return &Server{
		logger:          logger,
		envelope:        envelope,
		nextPersonnelID: 1,
		nextAbsenceID:   1,
		personnel:       make(map[int64]*personnelDatamodel.Record),
		absences:        make(map[int64]*absenceDatamodel.Record),
	}
}

func (s *Server) SeedPersonnel(records ...personnelDatamodel.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range records {
		record := records[i]
		if record.ID == nil {
			id := s.nextPersonnelID
			record.ID = &id
		}
		if *record.ID >= s.nextPersonnelID {
			s.nextPersonnelID = *record.ID + 1
		}
		s.personnel[*record.ID] = &record
	}
}

func (s *Server) SeedAbsences(records ...absenceDatamodel.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range records {
		record := records[i]
		if record.ID == nil {
			id := s.nextAbsenceID
			record.ID = &id
		}
		if *record.ID >= s.nextAbsenceID {
			s.nextAbsenceID = *record.ID + 1
		}
		s.absences[*record.ID] = &record
	}
}

func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Route("/personnel", func(r chi.Router) {
		r.Get("/", s.listPersonnel)
		r.Post("/", s.createPersonnel)
		r.Patch("/{id}", s.updatePersonnel)
		r.Delete("/{id}", s.deletePersonnel)
	})

	router.Route("/absences", func(r chi.Router) {
		r.Get("/", s.listAbsences)
		r.Post("/{id}/approve", s.approveAbsence)
		r.Post("/{id}/reject", s.rejectAbsence)
	})

	return router
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode fixture response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]interface{}{"message": message})
}

func (s *Server) writeList(w http.ResponseWriter, list interface{}) {
	if s.envelope {
		s.writeJSON(w, http.StatusOK, map[string]interface{}{"results": list})
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (s *Server) listPersonnel(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := make([]*personnelDatamodel.Record, 0, len(s.personnel))
	for _, record := range s.personnel {
		list = append(list, record)
	}
	s.mu.Unlock()
	s.writeList(w, list)
}

func (s *Server) createPersonnel(w http.ResponseWriter, r *http.Request) {
	var payload personnelDatamodel.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Identity.FirstName == "" || payload.Identity.LastName == "" {
		s.writeError(w, http.StatusBadRequest, "first_name and last_name are required")
		return
	}

	s.mu.Lock()
	id := s.nextPersonnelID
	s.nextPersonnelID++
	record := payloadToRecord(id, &payload)
	s.personnel[id] = record
	s.mu.Unlock()

	s.writeJSON(w, http.StatusCreated, record)
}

func (s *Server) updatePersonnel(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var payload personnelDatamodel.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.personnel[id]; !exists {
		s.writeError(w, http.StatusNotFound, "personnel record not found")
		return
	}
	// Full replacement, not a field-level patch.
	s.personnel[id] = payloadToRecord(id, &payload)
	s.writeJSON(w, http.StatusOK, s.personnel[id])
}

func (s *Server) deletePersonnel(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.personnel[id]; !exists {
		s.writeError(w, http.StatusNotFound, "personnel record not found")
		return
	}
	delete(s.personnel, id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listAbsences(w http.ResponseWriter, r *http.Request) {
	status := strings.ToUpper(r.URL.Query().Get("status"))

	s.mu.Lock()
	list := make([]*absenceDatamodel.Record, 0, len(s.absences))
	for _, record := range s.absences {
		if status != "" && record.Status != status {
			continue
		}
		list = append(list, record)
	}
	s.mu.Unlock()
	s.writeList(w, list)
}

func (s *Server) approveAbsence(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var payload absenceDatamodel.ApprovePayload
	_ = json.NewDecoder(r.Body).Decode(&payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	record, exists := s.absences[id]
	if !exists {
		s.writeError(w, http.StatusNotFound, "absence request not found")
		return
	}
	if record.Status != "PENDING" {
		s.writeError(w, http.StatusBadRequest, "absence request is not pending")
		return
	}
	record.Status = "APPROVED"
	s.writeJSON(w, http.StatusOK, record)
}

func (s *Server) rejectAbsence(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var payload absenceDatamodel.RejectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || strings.TrimSpace(payload.Reason) == "" {
		s.writeError(w, http.StatusBadRequest, "a rejection reason is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	record, exists := s.absences[id]
	if !exists {
		s.writeError(w, http.StatusNotFound, "absence request not found")
		return
	}
	if record.Status != "PENDING" {
		s.writeError(w, http.StatusBadRequest, "absence request is not pending")
		return
	}
	record.Status = "REJECTED"
	record.RejectionReason = payload.Reason
	s.writeJSON(w, http.StatusOK, record)
}

func payloadToRecord(id int64, payload *personnelDatamodel.Payload) *personnelDatamodel.Record {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	fullName := strings.TrimSpace(payload.Identity.FirstName + " " + payload.Identity.LastName)
	return &personnelDatamodel.Record{
		ID:       &id,
		FullName: fullName,
		Identity: &personnelDatamodel.Identity{
			ID:           &id,
			FirstName:    payload.Identity.FirstName,
			LastName:     payload.Identity.LastName,
			BirthDate:    deref(payload.Identity.BirthDate),
			BirthPlace:   payload.Identity.BirthPlace,
			NationalID:   payload.Identity.NationalID,
			Nationality:  payload.Identity.Nationality,
			Gender:       payload.Identity.Gender,
			FamilyStatus: payload.Identity.FamilyStatus,
			Address:      payload.Identity.Address,
			FatherName:   payload.Identity.FatherName,
		},
		Employment: &personnelDatamodel.Employment{
			Grade:           payload.Employment.Grade,
			Category:        payload.Employment.Category,
			SalaryIndex:     payload.Employment.SalaryIndex,
			SeniorityYears:  payload.Employment.SeniorityYears,
			SeniorityDate:   deref(payload.Employment.SeniorityDate),
			HireDate:        deref(payload.Employment.HireDate),
			AppointmentDate: deref(payload.Employment.AppointmentDate),
		},
	}
}
