package litters

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cattery-breeding/internal/middleware"
	"cattery-breeding/internal/platform/dates"
	"cattery-breeding/internal/platform/optional"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/litters", func(lr chi.Router) {
		lr.Post("/", createLitterHandler(svc))
		lr.Get("/", listLittersHandler(svc))

		lr.Route("/{litterID}", func(ir chi.Router) {
			ir.Get("/", getLitterHandler(svc))
			ir.Patch("/", updateLitterHandler(svc))
			ir.Delete("/", deleteLitterHandler(svc))

			ir.Post("/expected-date", calculateExpectedDateHandler(svc))

			ir.Get("/pregnancy-notes", listNotesHandler(svc))
			ir.Post("/pregnancy-notes", addNoteHandler(svc))
			ir.Delete("/pregnancy-notes/{noteID}", removeNoteHandler(svc))

			ir.Post("/mother-weights", addMotherWeightHandler(svc))
			ir.Delete("/mother-weights/{entryID}", removeMotherWeightHandler(svc))
		})
	})
}

type createLitterRequest struct {
	Name                      string   `json:"name"`
	Phase                     string   `json:"phase" enums:"planned,pending,active,completed"`
	MotherID                  *string  `json:"mother_id"`
	FatherID                  *string  `json:"father_id"`
	ExternalFatherName        *string  `json:"external_father_name"`
	ExternalFatherPedigreeURL *string  `json:"external_father_pedigree_url"`
	Reasoning                 *string  `json:"reasoning"`
	InbreedingCoefficient     *float64 `json:"inbreeding_coefficient"`
	BloodTypeNotes            *string  `json:"blood_type_notes"`
	AlternativeCombinations   *string  `json:"alternative_combinations"`
	Notes                     *string  `json:"notes"`
}

type litterResponse struct {
	ID          string `json:"id"`
	OwnerUserID string `json:"owner_user_id"`
	Name        string `json:"name"`
	Phase       Phase  `json:"phase" enums:"planned,pending,active,completed"`

	MotherID                  *string `json:"mother_id"`
	FatherID                  *string `json:"father_id"`
	ExternalFatherName        *string `json:"external_father_name"`
	ExternalFatherPedigreeURL *string `json:"external_father_pedigree_url"`

	MatingDate     *string `json:"mating_date"`
	MatingDateFrom *string `json:"mating_date_from"`
	MatingDateTo   *string `json:"mating_date_to"`
	ExpectedDate   *string `json:"expected_date"`
	BirthDate      *string `json:"birth_date"`
	CompletionDate *string `json:"completion_date"`

	KittenCount             *int     `json:"kitten_count"`
	Reasoning               *string  `json:"reasoning"`
	InbreedingCoefficient   *float64 `json:"inbreeding_coefficient"`
	BloodTypeNotes          *string  `json:"blood_type_notes"`
	AlternativeCombinations *string  `json:"alternative_combinations"`
	BirthNotes              *string  `json:"birth_notes"`
	Evaluation              *string  `json:"evaluation"`
	BuyersInfo              *string  `json:"buyers_info"`
	NRRRegistered           bool     `json:"nrr_registered"`
	Notes                   *string  `json:"notes"`
	PregnancyNotes          *string  `json:"pregnancy_notes"`

	MotherWeightLog []motherWeightResponse `json:"mother_weight_log"`

	// Guía para editores; no son restricciones.
	ActiveGroups []FieldGroup      `json:"active_groups"`
	Warnings     []warningResponse `json:"warnings"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type motherWeightResponse struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Notes  string  `json:"notes"`
}

type warningResponse struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type noteResponse struct {
	ID       string `json:"id"`
	LitterID string `json:"litter_id"`
	Date     string `json:"date"`
	Note     string `json:"note"`
}

type addNoteRequest struct {
	Date string `json:"date"`
	Note string `json:"note"`
}

type addMotherWeightRequest struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Notes  string  `json:"notes"`
}

// createLitterHandler godoc
// @Summary Crear litter
// @Description Crea un litter del usuario autenticado. phase vacío => planned. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags litters
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createLitterRequest true "Datos del litter"
// @Success 201 {object} litterResponse
// @Failure 400 {string} string "invalid json / phase inválida"
// @Failure 401 {string} string "unauthorized"
// @Router /litters [post]
func createLitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req createLitterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var phase Phase
		if strings.TrimSpace(req.Phase) != "" {
			p, ok := ParsePhase(req.Phase)
			if !ok {
				http.Error(w, "phase must be planned|pending|active|completed", http.StatusBadRequest)
				return
			}
			phase = p
		}

		l, err := svc.Create(r.Context(), userID, CreateInput{
			Name:                      req.Name,
			Phase:                     phase,
			MotherID:                  req.MotherID,
			FatherID:                  req.FatherID,
			ExternalFatherName:        req.ExternalFatherName,
			ExternalFatherPedigreeURL: req.ExternalFatherPedigreeURL,
			Reasoning:                 req.Reasoning,
			InbreedingCoefficient:     req.InbreedingCoefficient,
			BloodTypeNotes:            req.BloodTypeNotes,
			AlternativeCombinations:   req.AlternativeCombinations,
			Notes:                     req.Notes,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, toLitterResponse(l))
	}
}

// listLittersHandler godoc
// @Summary Listar litters
// @Description Lista los litters del usuario autenticado. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags litters
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} litterResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /litters [get]
func listLittersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		items, err := svc.ListByOwner(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		out := make([]litterResponse, 0, len(items))
		for _, l := range items {
			out = append(out, toLitterResponse(l))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getLitterHandler godoc
// @Summary Obtener litter
// @Description Devuelve el litter con sus grupos de campos activos y los warnings de consistencia. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags litters
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param litterID path string true "ID del litter"
// @Success 200 {object} litterResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "litter not found"
// @Router /litters/{litterID} [get]
func getLitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toLitterResponse(l))
	}
}

// updateLitterHandler godoc
// @Summary Actualizar litter (parcial)
// @Description Actualiza solo las claves enviadas; null limpia el campo. mating_date_from también escribe mating_date. expected_date NO se recalcula. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags litters
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param litterID path string true "ID del litter"
// @Param payload body object true "Claves snake_case a modificar (fechas YYYY-MM-DD o null)"
// @Success 200 {object} litterResponse
// @Failure 400 {string} string "invalid json / campo desconocido / valor inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "litter not found"
// @Router /litters/{litterID} [patch]
func updateLitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}

		// Decodificamos a map para detectar presencia de campos (null = limpiar).
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := patchFromRaw(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		updated, err := svc.UpdateFields(r.Context(), l.ID, p)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toLitterResponse(updated))
	}
}

// deleteLitterHandler godoc
// @Summary Borrar litter
// @Description Borra el litter junto con su roster, notas y pesos. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags litters
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param litterID path string true "ID del litter"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "litter not found"
// @Router /litters/{litterID} [delete]
func deleteLitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), l.ID); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// calculateExpectedDateHandler godoc
// @Summary Calcular fecha de parto
// @Description Escribe expected_date = mating_date_from + 65 días. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags litters
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param litterID path string true "ID del litter"
// @Success 200 {object} litterResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "litter not found"
// @Failure 409 {string} string "mating date not set"
// @Router /litters/{litterID}/expected-date [post]
func calculateExpectedDateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}
		updated, err := svc.CalculateExpectedDate(r.Context(), l.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toLitterResponse(updated))
	}
}

// listNotesHandler godoc
// @Summary Listar notas de preñez
// @Description Notas ordenadas por fecha descendente. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags pregnancy-notes
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param litterID path string true "ID del litter"
// @Success 200 {array} noteResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "litter not found"
// @Router /litters/{litterID}/pregnancy-notes [get]
func listNotesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}
		items, err := svc.ListPregnancyNotes(r.Context(), l.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toNoteResponses(items))
	}
}

// addNoteHandler godoc
// @Summary Agregar nota de preñez
// @Description Agrega la nota y devuelve la colección completa ordenada. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags pregnancy-notes
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param litterID path string true "ID del litter"
// @Param payload body addNoteRequest true "Fecha YYYY-MM-DD y texto"
// @Success 201 {array} noteResponse
// @Failure 400 {string} string "invalid json / fecha inválida / nota vacía"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "litter not found"
// @Router /litters/{litterID}/pregnancy-notes [post]
func addNoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}

		var req addNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		d, err := dates.Parse(req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		items, err := svc.AddPregnancyNote(r.Context(), l.ID, NoteInput{Date: d, Note: req.Note})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toNoteResponses(items))
	}
}

// removeNoteHandler godoc
// @Summary Quitar nota de preñez
// @Description Quita la nota; si no existe devuelve la colección sin cambios. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags pregnancy-notes
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param litterID path string true "ID del litter"
// @Param noteID path string true "ID de la nota"
// @Success 200 {array} noteResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "litter not found"
// @Router /litters/{litterID}/pregnancy-notes/{noteID} [delete]
func removeNoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}
		items, err := svc.RemovePregnancyNote(r.Context(), l.ID, chi.URLParam(r, "noteID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toNoteResponses(items))
	}
}

// addMotherWeightHandler godoc
// @Summary Agregar peso de la madre
// @Description Agrega una entrada al log de pesos de la madre (orden descendente por fecha). Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags mother-weights
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param litterID path string true "ID del litter"
// @Param payload body addMotherWeightRequest true "Fecha YYYY-MM-DD, peso y notas"
// @Success 201 {object} litterResponse
// @Failure 400 {string} string "invalid json / fecha inválida / peso inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "litter not found"
// @Router /litters/{litterID}/mother-weights [post]
func addMotherWeightHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}

		var req addMotherWeightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		d, err := dates.Parse(req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		updated, err := svc.AddMotherWeight(r.Context(), l.ID, MotherWeightEntry{
			Date:   d,
			Weight: req.Weight,
			Notes:  req.Notes,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toLitterResponse(updated))
	}
}

// removeMotherWeightHandler godoc
// @Summary Quitar peso de la madre
// @Description Quita la entrada; si no existe el litter vuelve sin cambios. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags mother-weights
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param litterID path string true "ID del litter"
// @Param entryID path string true "ID de la entrada"
// @Success 200 {object} litterResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "litter not found"
// @Router /litters/{litterID}/mother-weights/{entryID} [delete]
func removeMotherWeightHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}
		updated, err := svc.RemoveMotherWeight(r.Context(), l.ID, chi.URLParam(r, "entryID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toLitterResponse(updated))
	}
}

// loadOwned carga el litter de la URL y exige que sea del usuario autenticado.
func loadOwned(w http.ResponseWriter, r *http.Request, svc *Service) (Litter, bool) {
	userID, ok := requireUser(w, r)
	if !ok {
		return Litter{}, false
	}

	l, err := svc.GetByID(r.Context(), chi.URLParam(r, "litterID"))
	if err != nil {
		writeError(w, r, err)
		return Litter{}, false
	}
	if l.OwnerUserID != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return Litter{}, false
	}
	return l, true
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return claims.UserID, true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "litter not found", http.StatusNotFound)
	case errors.Is(err, ErrNoMatingDate):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		middleware.LoggerFrom(r.Context()).Error("litters: store failure", map[string]any{"error": err.Error()})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// patchFromRaw traduce el body de un PATCH (claves snake_case) a Patch.
// Claves desconocidas => error.
func patchFromRaw(raw map[string]json.RawMessage) (Patch, error) {
	var p Patch
	for key, val := range raw {
		var err error
		switch key {
		case "name":
			p.Name, err = optional.Required[string](val, key)
		case "phase":
			var s *string
			if s, err = optional.Required[string](val, key); err == nil {
				ph, ok := ParsePhase(*s)
				if !ok {
					return Patch{}, fmt.Errorf("phase must be planned|pending|active|completed")
				}
				p.Phase = &ph
			}
		case "nrr_registered":
			p.NRRRegistered, err = optional.Required[bool](val, key)
		case "mother_id":
			p.MotherID, err = optional.FromJSON[string](val, key)
		case "father_id":
			p.FatherID, err = optional.FromJSON[string](val, key)
		case "external_father_name":
			p.ExternalFatherName, err = optional.FromJSON[string](val, key)
		case "external_father_pedigree_url":
			p.ExternalFatherPedigreeURL, err = optional.FromJSON[string](val, key)
		case "mating_date_from":
			p.MatingDateFrom, err = rawDate(val, key)
		case "mating_date_to":
			p.MatingDateTo, err = rawDate(val, key)
		case "expected_date":
			p.ExpectedDate, err = rawDate(val, key)
		case "birth_date":
			p.BirthDate, err = rawDate(val, key)
		case "completion_date":
			p.CompletionDate, err = rawDate(val, key)
		case "kitten_count":
			p.KittenCount, err = optional.FromJSON[int](val, key)
		case "inbreeding_coefficient":
			p.InbreedingCoefficient, err = optional.FromJSON[float64](val, key)
		case "reasoning":
			p.Reasoning, err = optional.FromJSON[string](val, key)
		case "blood_type_notes":
			p.BloodTypeNotes, err = optional.FromJSON[string](val, key)
		case "alternative_combinations":
			p.AlternativeCombinations, err = optional.FromJSON[string](val, key)
		case "birth_notes":
			p.BirthNotes, err = optional.FromJSON[string](val, key)
		case "evaluation":
			p.Evaluation, err = optional.FromJSON[string](val, key)
		case "buyers_info":
			p.BuyersInfo, err = optional.FromJSON[string](val, key)
		case "notes":
			p.Notes, err = optional.FromJSON[string](val, key)
		case "pregnancy_notes":
			p.PregnancyNotes, err = optional.FromJSON[string](val, key)
		default:
			return Patch{}, fmt.Errorf("unknown field %q", key)
		}
		if err != nil {
			return Patch{}, err
		}
	}
	return p, nil
}

func rawDate(v json.RawMessage, key string) (optional.Set[time.Time], error) {
	s, err := optional.FromJSON[string](v, key)
	if err != nil || s.Value == nil {
		return optional.Set[time.Time]{Present: s.Present}, err
	}
	t, err := dates.Parse(*s.Value)
	if err != nil {
		return optional.Set[time.Time]{}, fmt.Errorf("%s must be YYYY-MM-DD or null", key)
	}
	return optional.Value(t), nil
}

func toLitterResponse(l Litter) litterResponse {
	weights := make([]motherWeightResponse, 0, len(l.MotherWeightLog))
	for _, e := range l.MotherWeightLog {
		weights = append(weights, motherWeightResponse{
			ID:     e.ID,
			Date:   dates.Format(e.Date),
			Weight: e.Weight,
			Notes:  e.Notes,
		})
	}

	warnings := make([]warningResponse, 0)
	for _, wr := range CheckConsistency(l) {
		warnings = append(warnings, warningResponse{Code: wr.Code, Field: wr.Field, Message: wr.Message})
	}

	return litterResponse{
		ID:                        l.ID,
		OwnerUserID:               l.OwnerUserID,
		Name:                      l.Name,
		Phase:                     l.Phase,
		MotherID:                  l.MotherID,
		FatherID:                  l.FatherID,
		ExternalFatherName:        l.ExternalFatherName,
		ExternalFatherPedigreeURL: l.ExternalFatherPedigreeURL,
		MatingDate:                dates.FormatPtr(l.MatingDate),
		MatingDateFrom:            dates.FormatPtr(l.MatingDateFrom),
		MatingDateTo:              dates.FormatPtr(l.MatingDateTo),
		ExpectedDate:              dates.FormatPtr(l.ExpectedDate),
		BirthDate:                 dates.FormatPtr(l.BirthDate),
		CompletionDate:            dates.FormatPtr(l.CompletionDate),
		KittenCount:               l.KittenCount,
		Reasoning:                 l.Reasoning,
		InbreedingCoefficient:     l.InbreedingCoefficient,
		BloodTypeNotes:            l.BloodTypeNotes,
		AlternativeCombinations:   l.AlternativeCombinations,
		BirthNotes:                l.BirthNotes,
		Evaluation:                l.Evaluation,
		BuyersInfo:                l.BuyersInfo,
		NRRRegistered:             l.NRRRegistered,
		Notes:                     l.Notes,
		PregnancyNotes:            l.PregnancyNotes,
		MotherWeightLog:           weights,
		ActiveGroups:              ActiveGroups(l.Phase),
		Warnings:                  warnings,
		CreatedAt:                 l.CreatedAt,
		UpdatedAt:                 l.UpdatedAt,
	}
}

func toNoteResponses(items []PregnancyNoteEntry) []noteResponse {
	out := make([]noteResponse, 0, len(items))
	for _, n := range items {
		out = append(out, noteResponse{
			ID:       n.ID,
			LitterID: n.LitterID,
			Date:     dates.Format(n.Date),
			Note:     n.Note,
		})
	}
	return out
}

// writeJSON: mismo helper en cada módulo de dominio.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
