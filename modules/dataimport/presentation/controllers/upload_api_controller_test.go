package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/parishdesk/parishdesk/modules/dataimport/services"
	"github.com/parishdesk/parishdesk/modules/directory/domain/aggregates/household"
	"github.com/parishdesk/parishdesk/modules/directory/domain/aggregates/member"
	"github.com/parishdesk/parishdesk/modules/giving/domain/aggregates/donation"
	"github.com/parishdesk/parishdesk/pkg/application"
	"github.com/parishdesk/parishdesk/pkg/configuration"
	"github.com/parishdesk/parishdesk/pkg/eventbus"
)

type memHouseholdRepo struct {
	byKey map[string]household.Household
}

func (r *memHouseholdRepo) GetPaginated(ctx context.Context, params *household.FindParams) ([]household.Household, int64, error) {
	return nil, 0, nil
}

func (r *memHouseholdRepo) GetByID(ctx context.Context, id int64) (household.Household, error) {
	return household.Household{}, household.ErrNotFound
}

func (r *memHouseholdRepo) GetByHouseholdID(ctx context.Context, householdID string) (household.Household, error) {
	h, ok := r.byKey[householdID]
	if !ok {
		return household.Household{}, household.ErrNotFound
	}
	return h, nil
}

func (r *memHouseholdRepo) Upsert(ctx context.Context, h household.Household) (household.Household, bool, error) {
	_, existed := r.byKey[h.HouseholdID()]
	r.byKey[h.HouseholdID()] = h
	return h, !existed, nil
}

func (r *memHouseholdRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.byKey)), nil
}

type memMemberRepo struct {
	byKey map[string]member.Member
}

func (r *memMemberRepo) GetPaginated(ctx context.Context, params *member.FindParams) ([]member.Member, int64, error) {
	return nil, 0, nil
}

func (r *memMemberRepo) GetByMemberID(ctx context.Context, memberID string) (member.Member, error) {
	m, ok := r.byKey[memberID]
	if !ok {
		return member.Member{}, member.ErrNotFound
	}
	return m, nil
}

func (r *memMemberRepo) ListByHousehold(ctx context.Context, householdRef int64, visibleOnly bool) ([]member.Member, error) {
	return nil, nil
}

func (r *memMemberRepo) Upsert(ctx context.Context, m member.Member) (member.Member, bool, error) {
	_, existed := r.byKey[m.MemberID()]
	r.byKey[m.MemberID()] = m
	return m, !existed, nil
}

func (r *memMemberRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.byKey)), nil
}

type memDonationRepo struct {
	created []donation.Donation
}

func (r *memDonationRepo) GetPaginated(ctx context.Context, params *donation.FindParams) ([]donation.Donation, int64, error) {
	return r.created, int64(len(r.created)), nil
}

func (r *memDonationRepo) Create(ctx context.Context, d donation.Donation) (donation.Donation, error) {
	r.created = append(r.created, d)
	return d, nil
}

func (r *memDonationRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.created)), nil
}

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	app.RegisterServices(services.NewImportService(
		&memHouseholdRepo{byKey: map[string]household.Household{}},
		&memMemberRepo{byKey: map[string]member.Member{}},
		&memDonationRepo{},
		app.EventPublisher(),
		logger,
		configuration.Use().Import.MaxRows,
	))

	r := mux.NewRouter()
	NewUploadAPIController(app).Register(r)
	return r
}

func adminToken(t *testing.T) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-1",
		"email": "admin@example.com",
		"role":  "admin",
	}).SignedString([]byte(configuration.Use().Auth.JWTSecret))
	require.NoError(t, err)
	return token
}

func memberToken(t *testing.T) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-2",
		"email": "member@example.com",
		"role":  "member",
	}).SignedString([]byte(configuration.Use().Auth.JWTSecret))
	require.NoError(t, err)
	return token
}

func xlsxBytes(t *testing.T, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStr(sheet, cell, v))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func multipartUpload(t *testing.T, filename string, content []byte) (io.Reader, string) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func doUpload(t *testing.T, router *mux.Router, path, token, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartUpload(t, filename, content)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestUpload_RequiresAuth(t *testing.T) {
	router := newTestRouter(t)
	content := xlsxBytes(t, [][]string{{"member_id", "first_name", "last_name"}, {"M1", "Ann", "Smith"}})

	rr := doUpload(t, router, "/api/admin/upload/members", "", "members.xlsx", content)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doUpload(t, router, "/api/admin/upload/members", memberToken(t), "members.xlsx", content)
	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestUpload_RejectsUnsupportedExtension(t *testing.T) {
	router := newTestRouter(t)

	rr := doUpload(t, router, "/api/admin/upload/members", adminToken(t), "members.csv", []byte("a,b,c"))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "UPLOAD_UNSUPPORTED_TYPE", resp["code"])
}

func TestUpload_RejectsNonWorkbookPayload(t *testing.T) {
	router := newTestRouter(t)

	rr := doUpload(t, router, "/api/admin/upload/members", adminToken(t), "members.xlsx", []byte("not a workbook"))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "IMPORT_UNREADABLE_FILE", resp["code"])
}

func TestUploadMembers_ReportShape(t *testing.T) {
	router := newTestRouter(t)
	content := xlsxBytes(t, [][]string{
		{"member_id", "first_name", "last_name"},
		{"M1", "Ann", "Smith"},
		{"M2", "Bob", ""},
		{"M3", "Cor", "Jones"},
	})

	rr := doUpload(t, router, "/api/admin/upload/members", adminToken(t), "members.xlsx", content)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success  bool   `json:"success"`
		Format   string `json:"format"`
		Inserted int    `json:"inserted"`
		Updated  int    `json:"updated"`
		Errors   int    `json:"errors"`
		Total    int    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "standard", resp.Format)
	require.Equal(t, 2, resp.Inserted)
	require.Equal(t, 0, resp.Updated)
	require.Equal(t, 1, resp.Errors)
	require.Equal(t, 3, resp.Total)
}

func TestUploadHouseholds_ReportShape(t *testing.T) {
	router := newTestRouter(t)
	content := xlsxBytes(t, [][]string{
		{"household_id", "mail_to"},
		{"H100", "The Smith Family"},
	})

	rr := doUpload(t, router, "/api/admin/upload/households", adminToken(t), "households.xlsx", content)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success  bool   `json:"success"`
		Inserted int    `json:"inserted"`
		Updated  int    `json:"updated"`
		Total    int    `json:"total"`
		Format   string `json:"format"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, 1, resp.Inserted)
	require.Equal(t, 1, resp.Total)
}

func TestUploadDonations_ReportShape(t *testing.T) {
	router := newTestRouter(t)
	content := xlsxBytes(t, [][]string{
		{"household_id", "donor_number", "fund", "amount"},
		{"H100", "D42", "General", "125.50"},
		{"H100", "D42", "General", "abc"},
	})

	rr := doUpload(t, router, "/api/admin/upload/donations", adminToken(t), "donations.xlsx", content)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success  bool   `json:"success"`
		Inserted int    `json:"inserted"`
		Skipped  int    `json:"skipped"`
		Total    int    `json:"total"`
		Format   string `json:"format"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, 1, resp.Inserted)
	require.Equal(t, 1, resp.Skipped)
	require.Equal(t, 2, resp.Total)
}

func TestUpload_EmptySheetRejected(t *testing.T) {
	router := newTestRouter(t)
	content := xlsxBytes(t, [][]string{{"household_id", "mail_to"}})

	rr := doUpload(t, router, "/api/admin/upload/households", adminToken(t), "households.xlsx", content)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "IMPORT_NO_DATA", resp["code"])
}
