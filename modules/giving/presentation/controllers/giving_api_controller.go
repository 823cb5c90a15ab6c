package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parishdesk/parishdesk/modules/giving/domain/aggregates/donation"
	"github.com/parishdesk/parishdesk/modules/giving/services"
	"github.com/parishdesk/parishdesk/pkg/application"
	"github.com/parishdesk/parishdesk/pkg/httpapi"
	"github.com/parishdesk/parishdesk/pkg/middleware"
)

type GivingAPIController struct {
	app       application.Application
	donations *services.DonationService
	basePath  string
}

func NewGivingAPIController(app application.Application) application.Controller {
	return &GivingAPIController{
		app:       app,
		donations: app.Service(services.DonationService{}).(*services.DonationService),
		basePath:  "/api",
	}
}

func (c *GivingAPIController) Key() string {
	return c.basePath + "/giving"
}

func (c *GivingAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(
		middleware.Authenticate(),
	)
	router.HandleFunc("/households/{householdID}/donations", c.ListHouseholdDonations).Methods(http.MethodGet)
}

func (c *GivingAPIController) ListHouseholdDonations(w http.ResponseWriter, r *http.Request) {
	householdID := mux.Vars(r)["householdID"]

	limit, offset := httpapi.Pagination(r)

	items, total, err := c.donations.GetPaginated(r.Context(), &donation.FindParams{
		HouseholdID: householdID,
		Fund:        r.URL.Query().Get("fund"),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "GIVING_INTERNAL", err.Error(), nil)
		return
	}

	out := make([]map[string]any, 0, len(items))
	for _, d := range items {
		out = append(out, map[string]any{
			"household_id": d.HouseholdID(),
			"donor_number": d.DonorNumber(),
			"fund":         d.Fund(),
			"amount":       d.Amount().StringFixed(2),
			"donated_on":   d.DonatedOn().Format("2006-01-02"),
		})
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"items": out,
		"total": total,
	})
}
