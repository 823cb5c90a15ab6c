package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"github.com/parishdesk/parishdesk/modules/dataimport/importer"
	"github.com/parishdesk/parishdesk/modules/dataimport/services"
	"github.com/parishdesk/parishdesk/pkg/application"
	"github.com/parishdesk/parishdesk/pkg/composables"
	"github.com/parishdesk/parishdesk/pkg/configuration"
	"github.com/parishdesk/parishdesk/pkg/httpapi"
	"github.com/parishdesk/parishdesk/pkg/middleware"
)

type UploadAPIController struct {
	app      application.Application
	imports  *services.ImportService
	basePath string
}

func NewUploadAPIController(app application.Application) application.Controller {
	return &UploadAPIController{
		app:      app,
		imports:  app.Service(services.ImportService{}).(*services.ImportService),
		basePath: "/api/admin/upload",
	}
}

func (c *UploadAPIController) Key() string {
	return c.basePath
}

// Uploads intentionally run without a wrapping transaction: a failed row
// must not poison the rest of the batch, so each statement commits on its
// own per the pool's autocommit behavior.
func (c *UploadAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(
		middleware.Authenticate(),
		middleware.RequireAdmin(),
	)
	router.HandleFunc("/members", c.UploadMembers).Methods(http.MethodPost)
	router.HandleFunc("/households", c.UploadHouseholds).Methods(http.MethodPost)
	router.HandleFunc("/donations", c.UploadDonations).Methods(http.MethodPost)
}

// openUpload validates the multipart payload preconditions shared by all
// three endpoints and returns the spreadsheet stream.
func (c *UploadAPIController) openUpload(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	conf := configuration.Use()
	r.Body = http.MaxBytesReader(w, r.Body, conf.MaxUploadSize)

	if err := r.ParseMultipartForm(conf.MaxUploadSize); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "UPLOAD_INVALID_BODY", "could not parse multipart body", nil)
		return nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "UPLOAD_MISSING_FILE", "missing file field", nil)
		return nil, false
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		_ = file.Close()
		_ = httpapi.WriteError(w, http.StatusBadRequest, "UPLOAD_UNSUPPORTED_TYPE", "only .xlsx and .xls files are supported", nil)
		return nil, false
	}
	if header.Size == 0 {
		_ = file.Close()
		_ = httpapi.WriteError(w, http.StatusBadRequest, "UPLOAD_EMPTY_FILE", "uploaded file is empty", nil)
		return nil, false
	}

	return file, true
}

func (c *UploadAPIController) writeImportError(w http.ResponseWriter, r *http.Request, err error) {
	var batchErr *importer.BatchError
	if errors.As(err, &batchErr) {
		_ = httpapi.WriteError(w, http.StatusBadRequest, batchErr.Code, batchErr.Message, nil)
		return
	}
	composables.UseLogger(r.Context()).WithError(err).Error("upload failed")
	_ = httpapi.WriteError(w, http.StatusInternalServerError, "UPLOAD_INTERNAL", err.Error(), nil)
}

func (c *UploadAPIController) UploadMembers(w http.ResponseWriter, r *http.Request) {
	file, ok := c.openUpload(w, r)
	if !ok {
		return
	}
	defer func() { _ = file.Close() }()

	report, err := c.imports.ImportMembers(r.Context(), file)
	if err != nil {
		c.writeImportError(w, r, err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"format":   report.Format,
		"inserted": report.Inserted,
		"updated":  report.Updated,
		"errors":   report.Errors,
		"total":    report.Total,
	})
}

func (c *UploadAPIController) UploadHouseholds(w http.ResponseWriter, r *http.Request) {
	file, ok := c.openUpload(w, r)
	if !ok {
		return
	}
	defer func() { _ = file.Close() }()

	report, err := c.imports.ImportHouseholds(r.Context(), file)
	if err != nil {
		c.writeImportError(w, r, err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"inserted": report.Inserted,
		"updated":  report.Updated,
		"total":    report.Total,
		"format":   report.Format,
	})
}

func (c *UploadAPIController) UploadDonations(w http.ResponseWriter, r *http.Request) {
	file, ok := c.openUpload(w, r)
	if !ok {
		return
	}
	defer func() { _ = file.Close() }()

	report, err := c.imports.ImportDonations(r.Context(), file)
	if err != nil {
		c.writeImportError(w, r, err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"inserted": report.Inserted,
		"skipped":  report.Skipped,
		"total":    report.Total,
		"format":   report.Format,
	})
}
