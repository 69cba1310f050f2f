package cats

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
	r.Route("/cats", func(cr chi.Router) {
		cr.Post("/", createCatHandler(svc))
		cr.Get("/", listCatsHandler(svc))

		cr.Get("/{catID}", getCatHandler(svc))
		cr.Patch("/{catID}", updateCatHandler(svc))
	})
}

type createCatRequest struct {
	Name               string `json:"name"`
	Sex                string `json:"sex" enums:"male,female"`
	Breed              string `json:"breed"`
	EMSCode            string `json:"ems_code"`
	Color              string `json:"color"`
	BirthDate          string `json:"birth_date"` // YYYY-MM-DD opcional
	RegistrationNumber string `json:"registration_number"`
	Notes              string `json:"notes"`
}

type updateCatRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name               *string `json:"name"`
	Sex                *string `json:"sex" enums:"male,female"`
	Breed              *string `json:"breed"`
	EMSCode            *string `json:"ems_code"`
	Color              *string `json:"color"`
	RegistrationNumber *string `json:"registration_number"`
	Notes              *string `json:"notes"`
}

type catResponse struct {
	ID                 string    `json:"id"`
	OwnerUserID        string    `json:"owner_user_id"`
	Name               string    `json:"name"`
	Sex                Sex       `json:"sex" enums:"male,female"`
	Breed              string    `json:"breed"`
	EMSCode            string    `json:"ems_code"`
	Color              string    `json:"color"`
	BirthDate          *string   `json:"birth_date"`
	RegistrationNumber string    `json:"registration_number"`
	Notes              string    `json:"notes"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// createCatHandler godoc
// @Summary Crear gato
// @Description Alta de un gato reproductor del usuario autenticado. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags cats
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createCatRequest true "Datos del gato; birth_date YYYY-MM-DD opcional"
// @Success 201 {object} catResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Router /cats [post]
func createCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createCatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bd, err := dates.ParsePtr(req.BirthDate)
		if err != nil {
			http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:               req.Name,
			Sex:                req.Sex,
			Breed:              req.Breed,
			EMSCode:            req.EMSCode,
			Color:              req.Color,
			BirthDate:          bd,
			RegistrationNumber: req.RegistrationNumber,
			Notes:              req.Notes,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, toCatResponse(c))
	}
}

// listCatsHandler godoc
// @Summary Listar gatos
// @Tags cats
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} catResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /cats [get]
func listCatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		out := make([]catResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCatResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getCatHandler godoc
// @Summary Obtener gato
// @Tags cats
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param catID path string true "ID del gato"
// @Success 200 {object} catResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID} [get]
func getCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "catID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		if c.OwnerUserID != claims.UserID {
			writeError(w, r, ErrForbidden)
			return
		}

		writeJSON(w, http.StatusOK, toCatResponse(c))
	}
}

// updateCatHandler godoc
// @Summary Actualizar perfil del gato
// @Description Actualiza solo las claves enviadas. Claves desconocidas => 400. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags cats
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param catID path string true "ID del gato"
// @Param payload body updateCatRequest true "Campos a modificar"
// @Success 200 {object} catResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID} [patch]
func updateCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// map primero para detectar presencia de birth_date (null = limpiar)
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bd optional.Set[time.Time]
		if v, exists := raw["birth_date"]; exists {
			delete(raw, "birth_date")
			s, err := optional.FromJSON[string](v, "birth_date")
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD or null", http.StatusBadRequest)
				return
			}
			bd = optional.Null[time.Time]()
			if s.Value != nil {
				t, err := dates.Parse(*s.Value)
				if err != nil {
					http.Error(w, "birth_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				bd = optional.Value(t)
			}
		}

		req, err := decodeUpdate(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		updated, err := svc.UpdateProfile(r.Context(), chi.URLParam(r, "catID"), claims.UserID, UpdateProfileInput{
			Name:               req.Name,
			Sex:                req.Sex,
			Breed:              req.Breed,
			EMSCode:            req.EMSCode,
			Color:              req.Color,
			BirthDate:          bd,
			RegistrationNumber: req.RegistrationNumber,
			Notes:              req.Notes,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, toCatResponse(updated))
	}
}

// decodeUpdate re-serializa el resto del map al struct para reutilizar tags.
func decodeUpdate(raw map[string]json.RawMessage) (updateCatRequest, error) {
	var req updateCatRequest
	b, _ := json.Marshal(raw)
	dec := json.NewDecoder(strings.NewReader(string(b)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return updateCatRequest{}, fmt.Errorf("invalid json: %v", err)
	}
	return req, nil
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "cat not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		middleware.LoggerFrom(r.Context()).Error("cats: store failure", map[string]any{"error": err.Error()})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toCatResponse(c Cat) catResponse {
	return catResponse{
		ID:                 c.ID,
		OwnerUserID:        c.OwnerUserID,
		Name:               c.Name,
		Sex:                c.Sex,
		Breed:              c.Breed,
		EMSCode:            c.EMSCode,
		Color:              c.Color,
		BirthDate:          dates.FormatPtr(c.BirthDate),
		RegistrationNumber: c.RegistrationNumber,
		Notes:              c.Notes,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
