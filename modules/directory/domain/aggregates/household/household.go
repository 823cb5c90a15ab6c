package household

import (
	"strings"
	"time"
)

// Household is keyed by its external HouseholdID business key; ID is the
// internal row identifier members reference.
type Household struct {
	id          int64
	householdID string
	mailTo      string
	address     string
	phone       string
	email       string
	donorNumber string
	prayerGroup string
	createdAt   time.Time
	updatedAt   time.Time
}

func New(householdID, mailTo string) Household {
	return Household{
		householdID: strings.TrimSpace(householdID),
		mailTo:      strings.TrimSpace(mailTo),
	}
}

func Hydrate(
	id int64,
	householdID string,
	mailTo string,
	address string,
	phone string,
	email string,
	donorNumber string,
	prayerGroup string,
	createdAt time.Time,
	updatedAt time.Time,
) Household {
	return Household{
		id:          id,
		householdID: strings.TrimSpace(householdID),
		mailTo:      strings.TrimSpace(mailTo),
		address:     address,
		phone:       phone,
		email:       email,
		donorNumber: donorNumber,
		prayerGroup: prayerGroup,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (h Household) ID() int64            { return h.id }
func (h Household) HouseholdID() string  { return h.householdID }
func (h Household) MailTo() string       { return h.mailTo }
func (h Household) Address() string      { return h.address }
func (h Household) Phone() string        { return h.phone }
func (h Household) Email() string        { return h.email }
func (h Household) DonorNumber() string  { return h.donorNumber }
func (h Household) PrayerGroup() string  { return h.prayerGroup }
func (h Household) CreatedAt() time.Time { return h.createdAt }
func (h Household) UpdatedAt() time.Time { return h.updatedAt }
func (h Household) IsZero() bool         { return h.id == 0 && h.householdID == "" }

func (h Household) WithContact(address, phone, email string) Household {
	h.address = address
	h.phone = phone
	h.email = email
	return h
}

func (h Household) WithGiving(donorNumber, prayerGroup string) Household {
	h.donorNumber = donorNumber
	h.prayerGroup = prayerGroup
	return h
}
