package kittens

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cattery-breeding/internal/domain/litters"
	"cattery-breeding/internal/middleware"
	"cattery-breeding/internal/platform/dates"
	"cattery-breeding/internal/platform/optional"
	"cattery-breeding/internal/weightchart"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, litterSvc *litters.Service) {
	r.Route("/litters/{litterID}/kittens", func(kr chi.Router) {
		kr.Get("/", listRosterHandler(svc, litterSvc))
		kr.Put("/", replaceRosterHandler(svc, litterSvc))
		kr.Put("/birth-weights", setBirthWeightsHandler(svc, litterSvc))
	})

	r.Get("/litters/{litterID}/weight-chart.pdf", weightChartHandler(svc, litterSvc))

	r.Route("/kittens/{kittenID}", func(kr chi.Router) {
		kr.Get("/", getKittenHandler(svc, litterSvc))
		kr.Patch("/", updateKittenHandler(svc, litterSvc))

		kr.Get("/weights", listWeightsHandler(svc, litterSvc))
		kr.Post("/weights", addWeightHandler(svc, litterSvc))
		kr.Delete("/weights/{entryID}", removeWeightHandler(svc, litterSvc))
	})
}

type kittenRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Gender      *string `json:"gender" enums:"male,female"`
	Color       *string `json:"color"`
	EMSCode     *string `json:"ems_code"`
	Status      string  `json:"status" enums:"available,reserved,sold,keeping"`
	ReservedBy  *string `json:"reserved_by"`
	Notes       *string `json:"notes"`
	BirthWeight *int    `json:"birth_weight"`
}

type kittenResponse struct {
	ID          string    `json:"id"`
	LitterID    string    `json:"litter_id"`
	Name        string    `json:"name"`
	Gender      *Gender   `json:"gender" enums:"male,female"`
	Color       *string   `json:"color"`
	EMSCode     *string   `json:"ems_code"`
	Status      Status    `json:"status" enums:"available,reserved,sold,keeping"`
	ReservedBy  *string   `json:"reserved_by"`
	Notes       *string   `json:"notes"`
	BirthWeight *int      `json:"birth_weight"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type rosterResponse struct {
	Kittens []kittenResponse `json:"kittens"`
	Created []string         `json:"created"`
	Updated []string         `json:"updated"`
	Deleted []string         `json:"deleted"`
}

type birthWeightRequest struct {
	ID          string `json:"id"`
	BirthWeight int    `json:"birth_weight"`
}

type weightRequest struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type weightResponse struct {
	ID       string  `json:"id"`
	KittenID string  `json:"kitten_id"`
	Date     string  `json:"date"`
	Weight   float64 `json:"weight"`
}

// listRosterHandler godoc
// @Summary Listar roster
// @Description Gatitos del litter en el orden en que se guardaron. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags kittens
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param litterID path string true "ID del litter"
// @Success 200 {array} kittenResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "litter not found"
// @Router /litters/{litterID}/kittens [get]
func listRosterHandler(svc *Service, litterSvc *litters.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := loadOwnedLitter(w, r, litterSvc)
		if !ok {
			return
		}
		items, err := svc.ListByLitter(r.Context(), l.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toKittenResponses(items))
	}
}

// replaceRosterHandler godoc
// @Summary Reemplazar roster completo
// @Description Guarda el roster COMPLETO. Entradas sin id se crean (name obligatorio); con id se reemplazan enteras; los ids omitidos se borran. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags kittens
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param litterID path string true "ID del litter"
// @Param payload body []kittenRequest true "Roster completo"
// @Success 200 {object} rosterResponse
// @Failure 400 {string} string "invalid json / id duplicado o ajeno / valor inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "litter not found"
// @Router /litters/{litterID}/kittens [put]
func replaceRosterHandler(svc *Service, litterSvc *litters.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := loadOwnedLitter(w, r, litterSvc)
		if !ok {
			return
		}

		var req []kittenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json: expected an array of kittens", http.StatusBadRequest)
			return
		}

		target := make([]Kitten, 0, len(req))
		for _, kr := range req {
			k, err := kr.toKitten()
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			target = append(target, k)
		}

		saved, plan, err := svc.ReplaceRoster(r.Context(), l.ID, target)
		if err != nil {
			writeError(w, r, err)
			return
		}

		middleware.LoggerFrom(r.Context()).Info("kittens: roster replaced", map[string]any{
			"litter_id": l.ID,
			"created":   len(plan.Created),
			"updated":   len(plan.Updated),
			"deleted":   len(plan.Deleted),
		})

		writeJSON(w, http.StatusOK, rosterResponse{
			Kittens: toKittenResponses(saved),
			Created: plan.Created,
			Updated: plan.Updated,
			Deleted: plan.Deleted,
		})
	}
}

// setBirthWeightsHandler godoc
// @Summary Cargar pesos al nacer
// @Description Cambia solo birth_weight (gramos) de los gatitos indicados; el resto del roster queda como está persistido. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags kittens
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param litterID path string true "ID del litter"
// @Param payload body []birthWeightRequest true "Pares id / birth_weight"
// @Success 200 {array} kittenResponse
// @Failure 400 {string} string "invalid json / gatito ajeno / peso inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "litter not found"
// @Router /litters/{litterID}/kittens/birth-weights [put]
func setBirthWeightsHandler(svc *Service, litterSvc *litters.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := loadOwnedLitter(w, r, litterSvc)
		if !ok {
			return
		}

		var req []birthWeightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		grams := make(map[string]int, len(req))
		for _, bw := range req {
			grams[strings.TrimSpace(bw.ID)] = bw.BirthWeight
		}

		items, err := svc.SetBirthWeights(r.Context(), l.ID, grams)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toKittenResponses(items))
	}
}

// weightChartHandler godoc
// @Summary Planilla de pesos (PDF)
// @Description PDF apaisado A4 con días 0-28 desde birth_date y cuatro tomas por gatito. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags kittens
// @Produce application/pdf
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param litterID path string true "ID del litter"
// @Success 200 {file} file
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "litter not found"
// @Failure 409 {string} string "birth date not set"
// @Router /litters/{litterID}/weight-chart.pdf [get]
func weightChartHandler(svc *Service, litterSvc *litters.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := loadOwnedLitter(w, r, litterSvc)
		if !ok {
			return
		}
		if l.BirthDate == nil {
			writeError(w, r, ErrNoBirthDate)
			return
		}

		roster, err := svc.ListByLitter(r.Context(), l.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		names := make([]string, 0, len(roster))
		for _, k := range roster {
			names = append(names, k.Name)
		}

		doc, err := weightchart.RenderPDF(weightchart.Build(*l.BirthDate, names), l.Name)
		if err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", "weight-chart-"+l.ID+".pdf"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(doc)
	}
}

// getKittenHandler godoc
// @Summary Obtener gatito
// @Tags kittens
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param kittenID path string true "ID del gatito"
// @Success 200 {object} kittenResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "kitten not found"
// @Router /kittens/{kittenID} [get]
func getKittenHandler(svc *Service, litterSvc *litters.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		k, ok := loadOwnedKitten(w, r, svc, litterSvc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toKittenResponse(k))
	}
}

// updateKittenHandler godoc
// @Summary Actualizar gatito (parcial)
// @Description Actualiza solo las claves enviadas, sin tocar el resto del roster. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags kittens
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param kittenID path string true "ID del gatito"
// @Param payload body object true "Claves snake_case a modificar"
// @Success 200 {object} kittenResponse
// @Failure 400 {string} string "invalid json / campo desconocido / valor inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "kitten not found"
// @Router /kittens/{kittenID} [patch]
func updateKittenHandler(svc *Service, litterSvc *litters.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		k, ok := loadOwnedKitten(w, r, svc, litterSvc)
		if !ok {
			return
		}

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

		updated, err := svc.UpdateFields(r.Context(), k.ID, p)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toKittenResponse(updated))
	}
}

// listWeightsHandler godoc
// @Summary Listar pesos del gatito
// @Description Log de pesos ordenado por fecha descendente. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags kitten-weights
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param kittenID path string true "ID del gatito"
// @Success 200 {array} weightResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "kitten not found"
// @Router /kittens/{kittenID}/weights [get]
func listWeightsHandler(svc *Service, litterSvc *litters.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		k, ok := loadOwnedKitten(w, r, svc, litterSvc)
		if !ok {
			return
		}
		items, err := svc.ListWeights(r.Context(), k.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toWeightResponses(items))
	}
}

// addWeightHandler godoc
// @Summary Agregar peso del gatito
// @Description Agrega la entrada y devuelve el log completo ordenado. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags kitten-weights
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param kittenID path string true "ID del gatito"
// @Param payload body weightRequest true "Fecha YYYY-MM-DD y peso"
// @Success 201 {array} weightResponse
// @Failure 400 {string} string "invalid json / fecha inválida / peso inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "kitten not found"
// @Router /kittens/{kittenID}/weights [post]
func addWeightHandler(svc *Service, litterSvc *litters.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		k, ok := loadOwnedKitten(w, r, svc, litterSvc)
		if !ok {
			return
		}

		var req weightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		d, err := dates.Parse(req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		items, err := svc.AddWeight(r.Context(), k.ID, WeightInput{Date: d, Weight: req.Weight})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toWeightResponses(items))
	}
}

// removeWeightHandler godoc
// @Summary Quitar peso del gatito
// @Description Si la entrada no existe devuelve el log sin cambios. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags kitten-weights
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param kittenID path string true "ID del gatito"
// @Param entryID path string true "ID de la entrada"
// @Success 200 {array} weightResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "kitten not found"
// @Router /kittens/{kittenID}/weights/{entryID} [delete]
func removeWeightHandler(svc *Service, litterSvc *litters.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		k, ok := loadOwnedKitten(w, r, svc, litterSvc)
		if !ok {
			return
		}
		items, err := svc.RemoveWeight(r.Context(), k.ID, chi.URLParam(r, "entryID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toWeightResponses(items))
	}
}

func loadOwnedLitter(w http.ResponseWriter, r *http.Request, litterSvc *litters.Service) (litters.Litter, bool) {
	return ownedLitter(w, r, litterSvc, chi.URLParam(r, "litterID"))
}

// loadOwnedKitten resuelve el gatito y valida el dueño a través de su litter.
func loadOwnedKitten(w http.ResponseWriter, r *http.Request, svc *Service, litterSvc *litters.Service) (Kitten, bool) {
	k, err := svc.GetByID(r.Context(), chi.URLParam(r, "kittenID"))
	if err != nil {
		writeError(w, r, err)
		return Kitten{}, false
	}
	if _, ok := ownedLitter(w, r, litterSvc, k.LitterID); !ok {
		return Kitten{}, false
	}
	return k, true
}

func ownedLitter(w http.ResponseWriter, r *http.Request, litterSvc *litters.Service, litterID string) (litters.Litter, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return litters.Litter{}, false
	}

	l, err := litterSvc.GetByID(r.Context(), litterID)
	if err != nil {
		writeError(w, r, err)
		return litters.Litter{}, false
	}
	if l.OwnerUserID != claims.UserID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return litters.Litter{}, false
	}
	return l, true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, litters.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "kitten not found", http.StatusNotFound)
	case errors.Is(err, litters.ErrNotFound):
		http.Error(w, "litter not found", http.StatusNotFound)
	case errors.Is(err, ErrNoBirthDate):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		middleware.LoggerFrom(r.Context()).Error("kittens: request failed", map[string]any{"error": err.Error()})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (kr kittenRequest) toKitten() (Kitten, error) {
	k := Kitten{
		ID:          kr.ID,
		Name:        kr.Name,
		Color:       kr.Color,
		EMSCode:     kr.EMSCode,
		Status:      Status(strings.ToLower(strings.TrimSpace(kr.Status))),
		ReservedBy:  kr.ReservedBy,
		Notes:       kr.Notes,
		BirthWeight: kr.BirthWeight,
	}
	if kr.Gender != nil {
		g, err := parseGender(*kr.Gender)
		if err != nil {
			return Kitten{}, err
		}
		k.Gender = g
	}
	return k, nil
}

// parseGender: "" => sin determinar.
func parseGender(s string) (*Gender, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}
	g := Gender(s)
	if !g.Valid() {
		return nil, fmt.Errorf("gender must be male|female|null")
	}
	return &g, nil
}

func patchFromRaw(raw map[string]json.RawMessage) (Patch, error) {
	var p Patch
	for key, val := range raw {
		var err error
		switch key {
		case "name":
			p.Name, err = optional.Required[string](val, key)
		case "status":
			var s *string
			if s, err = optional.Required[string](val, key); err == nil {
				st := Status(strings.ToLower(strings.TrimSpace(*s)))
				if !st.Valid() {
					return Patch{}, fmt.Errorf("status must be available|reserved|sold|keeping")
				}
				p.Status = &st
			}
		case "gender":
			var s optional.Set[string]
			if s, err = optional.FromJSON[string](val, key); err == nil {
				p.Gender = optional.Set[Gender]{Present: true}
				if s.Value != nil {
					p.Gender.Value, err = parseGender(*s.Value)
				}
			}
		case "color":
			p.Color, err = optional.FromJSON[string](val, key)
		case "ems_code":
			p.EMSCode, err = optional.FromJSON[string](val, key)
		case "reserved_by":
			p.ReservedBy, err = optional.FromJSON[string](val, key)
		case "notes":
			p.Notes, err = optional.FromJSON[string](val, key)
		case "birth_weight":
			p.BirthWeight, err = optional.FromJSON[int](val, key)
		default:
			return Patch{}, fmt.Errorf("unknown field %q", key)
		}
		if err != nil {
			return Patch{}, err
		}
	}
	return p, nil
}

func toKittenResponse(k Kitten) kittenResponse {
	return kittenResponse{
		ID:          k.ID,
		LitterID:    k.LitterID,
		Name:        k.Name,
		Gender:      k.Gender,
		Color:       k.Color,
		EMSCode:     k.EMSCode,
		Status:      k.Status,
		ReservedBy:  k.ReservedBy,
		Notes:       k.Notes,
		BirthWeight: k.BirthWeight,
		CreatedAt:   k.CreatedAt,
		UpdatedAt:   k.UpdatedAt,
	}
}

func toKittenResponses(items []Kitten) []kittenResponse {
	out := make([]kittenResponse, 0, len(items))
	for _, k := range items {
		out = append(out, toKittenResponse(k))
	}
	return out
}

func toWeightResponses(items []WeightEntry) []weightResponse {
	out := make([]weightResponse, 0, len(items))
	for _, e := range items {
		out = append(out, weightResponse{
			ID:       e.ID,
			KittenID: e.KittenID,
			Date:     dates.Format(e.Date),
			Weight:   e.Weight,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
