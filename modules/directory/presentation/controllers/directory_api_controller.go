package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/parishdesk/parishdesk/modules/directory/domain/aggregates/household"
	"github.com/parishdesk/parishdesk/modules/directory/domain/aggregates/member"
	"github.com/parishdesk/parishdesk/modules/directory/services"
	"github.com/parishdesk/parishdesk/pkg/application"
	"github.com/parishdesk/parishdesk/pkg/composables"
	"github.com/parishdesk/parishdesk/pkg/httpapi"
	"github.com/parishdesk/parishdesk/pkg/middleware"
)

type DirectoryAPIController struct {
	app        application.Application
	households *services.HouseholdService
	members    *services.MemberService
	basePath   string
}

func NewDirectoryAPIController(app application.Application) application.Controller {
	return &DirectoryAPIController{
		app:        app,
		households: app.Service(services.HouseholdService{}).(*services.HouseholdService),
		members:    app.Service(services.MemberService{}).(*services.MemberService),
		basePath:   "/api",
	}
}

func (c *DirectoryAPIController) Key() string {
	return c.basePath + "/directory"
}

func (c *DirectoryAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(
		middleware.Authenticate(),
	)
	router.HandleFunc("/households", c.ListHouseholds).Methods(http.MethodGet)
	router.HandleFunc("/households/{householdID}", c.GetHousehold).Methods(http.MethodGet)
	router.HandleFunc("/households/{householdID}/members", c.ListHouseholdMembers).Methods(http.MethodGet)
	router.HandleFunc("/members/{memberID}", c.GetMember).Methods(http.MethodGet)
}

func (c *DirectoryAPIController) ListHouseholds(w http.ResponseWriter, r *http.Request) {
	limit, offset := httpapi.Pagination(r)
	q := strings.TrimSpace(r.URL.Query().Get("q"))

	items, total, err := c.households.GetPaginated(r.Context(), &household.FindParams{Q: q, Limit: limit, Offset: offset})
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "DIRECTORY_INTERNAL", err.Error())
		return
	}

	out := make([]map[string]any, 0, len(items))
	for _, h := range items {
		out = append(out, householdToListItem(h))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": out,
		"total": total,
	})
}

func (c *DirectoryAPIController) GetHousehold(w http.ResponseWriter, r *http.Request) {
	householdID := mux.Vars(r)["householdID"]

	h, err := c.households.GetByHouseholdID(r.Context(), householdID)
	if err != nil {
		if errors.Is(err, household.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "DIRECTORY_HOUSEHOLD_NOT_FOUND", "household not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "DIRECTORY_INTERNAL", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, householdToDetail(h))
}

func (c *DirectoryAPIController) ListHouseholdMembers(w http.ResponseWriter, r *http.Request) {
	householdID := mux.Vars(r)["householdID"]

	user, _ := composables.UseUser(r.Context())
	items, err := c.households.Members(r.Context(), householdID, user.IsAdmin())
	if err != nil {
		if errors.Is(err, household.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "DIRECTORY_HOUSEHOLD_NOT_FOUND", "household not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "DIRECTORY_INTERNAL", err.Error())
		return
	}

	out := make([]map[string]any, 0, len(items))
	for _, m := range items {
		out = append(out, memberToListItem(m))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

func (c *DirectoryAPIController) GetMember(w http.ResponseWriter, r *http.Request) {
	memberID := mux.Vars(r)["memberID"]

	m, err := c.members.GetByMemberID(r.Context(), memberID)
	if err != nil {
		if errors.Is(err, member.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "DIRECTORY_MEMBER_NOT_FOUND", "member not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "DIRECTORY_INTERNAL", err.Error())
		return
	}

	user, _ := composables.UseUser(r.Context())
	if !m.Visible() && !user.IsAdmin() {
		writeAPIError(w, r, http.StatusNotFound, "DIRECTORY_MEMBER_NOT_FOUND", "member not found")
		return
	}
	writeJSON(w, http.StatusOK, memberToDetail(m))
}

func householdToListItem(h household.Household) map[string]any {
	return map[string]any{
		"household_id": h.HouseholdID(),
		"mail_to":      h.MailTo(),
		"address":      h.Address(),
		"phone":        h.Phone(),
	}
}

func householdToDetail(h household.Household) map[string]any {
	return map[string]any{
		"household_id": h.HouseholdID(),
		"mail_to":      h.MailTo(),
		"address":      h.Address(),
		"phone":        h.Phone(),
		"email":        h.Email(),
		"donor_number": h.DonorNumber(),
		"prayer_group": h.PrayerGroup(),
		"created_at":   h.CreatedAt(),
		"updated_at":   h.UpdatedAt(),
	}
}

func memberToListItem(m member.Member) map[string]any {
	return map[string]any{
		"member_id":    m.MemberID(),
		"first_name":   m.FirstName(),
		"last_name":    m.LastName(),
		"relationship": m.Relationship(),
	}
}

func memberToDetail(m member.Member) map[string]any {
	return map[string]any{
		"member_id":    m.MemberID(),
		"first_name":   m.FirstName(),
		"last_name":    m.LastName(),
		"relationship": m.Relationship(),
		"birth_date":   dateString(m.BirthDate()),
		"wedding_date": dateString(m.WeddingDate()),
		"phone":        m.Phone(),
		"email":        m.Email(),
		"visible":      m.Visible(),
	}
}
