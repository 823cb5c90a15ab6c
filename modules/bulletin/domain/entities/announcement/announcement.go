package announcement

import (
	"strings"
	"time"
)

type Announcement struct {
	id        int64
	title     string
	body      string
	published bool
	startsOn  *time.Time
	expiresOn *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func New(title, body string, published bool, startsOn, expiresOn *time.Time) Announcement {
	return Announcement{
		title:     strings.TrimSpace(title),
		body:      strings.TrimSpace(body),
		published: published,
		startsOn:  startsOn,
		expiresOn: expiresOn,
	}
}

func Hydrate(
	id int64,
	title string,
	body string,
	published bool,
	startsOn *time.Time,
	expiresOn *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) Announcement {
	return Announcement{
		id:        id,
		title:     strings.TrimSpace(title),
		body:      body,
		published: published,
		startsOn:  startsOn,
		expiresOn: expiresOn,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a Announcement) ID() int64             { return a.id }
func (a Announcement) Title() string         { return a.title }
func (a Announcement) Body() string          { return a.body }
func (a Announcement) Published() bool       { return a.published }
func (a Announcement) StartsOn() *time.Time  { return a.startsOn }
func (a Announcement) ExpiresOn() *time.Time { return a.expiresOn }
func (a Announcement) CreatedAt() time.Time  { return a.createdAt }
func (a Announcement) UpdatedAt() time.Time  { return a.updatedAt }

// ActiveAt reports whether the announcement should be shown at the given
// time: published, started, and not yet expired.
func (a Announcement) ActiveAt(now time.Time) bool {
	if !a.published {
		return false
	}
	if a.startsOn != nil && now.Before(*a.startsOn) {
		return false
	}
	if a.expiresOn != nil && now.After(*a.expiresOn) {
		return false
	}
	return true
}
