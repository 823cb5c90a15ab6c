package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/parishdesk/parishdesk/modules/bulletin/domain/entities/announcement"
	"github.com/parishdesk/parishdesk/modules/bulletin/services"
	"github.com/parishdesk/parishdesk/pkg/application"
	"github.com/parishdesk/parishdesk/pkg/httpapi"
	"github.com/parishdesk/parishdesk/pkg/middleware"
)

type BulletinAPIController struct {
	app           application.Application
	announcements *services.AnnouncementService
	basePath      string
}

func NewBulletinAPIController(app application.Application) application.Controller {
	return &BulletinAPIController{
		app:           app,
		announcements: app.Service(services.AnnouncementService{}).(*services.AnnouncementService),
		basePath:      "/api",
	}
}

func (c *BulletinAPIController) Key() string {
	return c.basePath + "/bulletin"
}

func (c *BulletinAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(
		middleware.Authenticate(),
	)
	router.HandleFunc("/announcements", c.List).Methods(http.MethodGet)

	adminRouter := r.PathPrefix(c.basePath + "/admin").Subrouter()
	adminRouter.Use(
		middleware.Authenticate(),
		middleware.RequireAdmin(),
		middleware.WithTransaction(),
	)
	adminRouter.HandleFunc("/announcements", c.Create).Methods(http.MethodPost)
	adminRouter.HandleFunc("/announcements/{id:[0-9]+}", c.Update).Methods(http.MethodPut)
	adminRouter.HandleFunc("/announcements/{id:[0-9]+}", c.Delete).Methods(http.MethodDelete)
}

func (c *BulletinAPIController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.announcements.ListActive(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "BULLETIN_INTERNAL", err.Error(), nil)
		return
	}

	out := make([]map[string]any, 0, len(items))
	for _, a := range items {
		out = append(out, announcementToItem(a))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{"items": out})
}

func (c *BulletinAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto announcement.UpsertDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BULLETIN_INVALID_JSON", "invalid json", nil)
		return
	}
	if errs, ok := dto.Ok(); !ok {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "BULLETIN_VALIDATION_FAILED", "validation failed", errs)
		return
	}

	created, err := c.announcements.Create(r.Context(), &dto)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "BULLETIN_INTERNAL", err.Error(), nil)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, announcementToItem(created))
}

func (c *BulletinAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BULLETIN_INVALID_ID", "invalid id", nil)
		return
	}

	var dto announcement.UpsertDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BULLETIN_INVALID_JSON", "invalid json", nil)
		return
	}
	if errs, ok := dto.Ok(); !ok {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "BULLETIN_VALIDATION_FAILED", "validation failed", errs)
		return
	}

	updated, err := c.announcements.Update(r.Context(), id, &dto)
	if err != nil {
		if errors.Is(err, announcement.ErrNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "BULLETIN_NOT_FOUND", "announcement not found", nil)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "BULLETIN_INTERNAL", err.Error(), nil)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, announcementToItem(updated))
}

func (c *BulletinAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "BULLETIN_INVALID_ID", "invalid id", nil)
		return
	}

	if err := c.announcements.Delete(r.Context(), id); err != nil {
		if errors.Is(err, announcement.ErrNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "BULLETIN_NOT_FOUND", "announcement not found", nil)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "BULLETIN_INTERNAL", err.Error(), nil)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

func announcementToItem(a announcement.Announcement) map[string]any {
	var starts, expires any
	if t := a.StartsOn(); t != nil {
		starts = t.Format("2006-01-02")
	}
	if t := a.ExpiresOn(); t != nil {
		expires = t.Format("2006-01-02")
	}
	return map[string]any{
		"id":         a.ID(),
		"title":      a.Title(),
		"body":       a.Body(),
		"published":  a.Published(),
		"starts_on":  starts,
		"expires_on": expires,
		"created_at": a.CreatedAt(),
		"updated_at": a.UpdatedAt(),
	}
}
