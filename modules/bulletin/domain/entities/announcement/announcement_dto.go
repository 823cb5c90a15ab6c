package announcement

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/parishdesk/parishdesk/pkg/constants"
)

type UpsertDTO struct {
	Title     string `json:"title" validate:"required,max=200"`
	Body      string `json:"body" validate:"required"`
	Published bool   `json:"published"`
	StartsOn  string `json:"starts_on" validate:"omitempty,datetime=2006-01-02"`
	ExpiresOn string `json:"expires_on" validate:"omitempty,datetime=2006-01-02"`
}

func (d *UpsertDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Body = strings.TrimSpace(d.Body)
	d.StartsOn = strings.TrimSpace(d.StartsOn)
	d.ExpiresOn = strings.TrimSpace(d.ExpiresOn)
}

func (d *UpsertDTO) Ok() (map[string]string, bool) {
	d.Normalize()

	errs := constants.Validate.Struct(d)
	if errs == nil {
		return map[string]string{}, true
	}

	out := map[string]string{}
	for _, err := range errs.(validator.ValidationErrors) {
		out[err.Field()] = err.Tag()
	}
	return out, false
}

func (d *UpsertDTO) ToEntity() Announcement {
	return New(d.Title, d.Body, d.Published, parseDate(d.StartsOn), parseDate(d.ExpiresOn))
}

func parseDate(v string) *time.Time {
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}
