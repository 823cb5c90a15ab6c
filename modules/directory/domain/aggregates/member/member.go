package member

import (
	"strings"
	"time"
)

// Member is keyed by its external MemberID business key. HouseholdRef holds
// the internal identifier of the member's household and stays nil when the
// referenced household is unknown.
type Member struct {
	id           int64
	memberID     string
	firstName    string
	lastName     string
	relationship string
	birthDate    *time.Time
	weddingDate  *time.Time
	phone        string
	email        string
	householdRef *int64
	visible      bool
	createdAt    time.Time
	updatedAt    time.Time
}

func New(memberID, firstName, lastName string) Member {
	return Member{
		memberID:  strings.TrimSpace(memberID),
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		visible:   true,
	}
}

func Hydrate(
	id int64,
	memberID string,
	firstName string,
	lastName string,
	relationship string,
	birthDate *time.Time,
	weddingDate *time.Time,
	phone string,
	email string,
	householdRef *int64,
	visible bool,
	createdAt time.Time,
	updatedAt time.Time,
) Member {
	return Member{
		id:           id,
		memberID:     strings.TrimSpace(memberID),
		firstName:    strings.TrimSpace(firstName),
		lastName:     strings.TrimSpace(lastName),
		relationship: relationship,
		birthDate:    birthDate,
		weddingDate:  weddingDate,
		phone:        phone,
		email:        email,
		householdRef: householdRef,
		visible:      visible,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (m Member) ID() int64               { return m.id }
func (m Member) MemberID() string        { return m.memberID }
func (m Member) FirstName() string       { return m.firstName }
func (m Member) LastName() string        { return m.lastName }
func (m Member) Relationship() string    { return m.relationship }
func (m Member) BirthDate() *time.Time   { return m.birthDate }
func (m Member) WeddingDate() *time.Time { return m.weddingDate }
func (m Member) Phone() string           { return m.phone }
func (m Member) Email() string           { return m.email }
func (m Member) HouseholdRef() *int64    { return m.householdRef }
func (m Member) Visible() bool           { return m.visible }
func (m Member) CreatedAt() time.Time    { return m.createdAt }
func (m Member) UpdatedAt() time.Time    { return m.updatedAt }
func (m Member) IsZero() bool            { return m.id == 0 && m.memberID == "" }

func (m Member) WithRelationship(relationship string) Member {
	m.relationship = relationship
	return m
}

func (m Member) WithDates(birthDate, weddingDate *time.Time) Member {
	m.birthDate = birthDate
	m.weddingDate = weddingDate
	return m
}

func (m Member) WithContact(phone, email string) Member {
	m.phone = phone
	m.email = email
	return m
}

func (m Member) WithHouseholdRef(ref *int64) Member {
	m.householdRef = ref
	return m
}

func (m Member) WithVisible(visible bool) Member {
	m.visible = visible
	return m
}
