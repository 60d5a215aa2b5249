package domain

import (
	"fmt"
	"strings"
)

// ResourceType discriminates the Resource union.
type ResourceType string

const (
	ResourceExpert ResourceType = "expert"
	ResourceRoom   ResourceType = "room"
	ResourceTable  ResourceType = "table"
	ResourceTour   ResourceType = "tour"
)

// Resource is the tagged union a tenant's "manage resources" screen edits.
// Exactly the variant named by Type is non-nil; which variant a tenant uses
// is dictated by its industry's resource axis, never by the caller.
type Resource struct {
	ID     string       `json:"id,omitempty"`
	Type   ResourceType `json:"type"`
	Expert *Expert      `json:"expert,omitempty"`
	Room   *Room        `json:"room,omitempty"`
	Table  *Table       `json:"table,omitempty"`
	Tour   *Tour        `json:"tour,omitempty"`
}

type Expert struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`     // female|male
	Experience int    `json:"experience"` // years
}

type Room struct {
	RoomNumber string   `json:"roomNumber"`
	Capacity   int      `json:"capacity"`
	Floor      int      `json:"floor"`
	RoomType   string   `json:"roomType"`
	Amenities  []string `json:"amenities,omitempty"`
	Price      float64  `json:"price"`
}

type Table struct {
	TableNumber string `json:"tableNumber"`
	Capacity    int    `json:"capacity"`
	Location    string `json:"location"` // indoor|outdoor|window
	Status      string `json:"status"`   // available|occupied|reserved
}

type Tour struct {
	TourName      string  `json:"tourName"`
	Destination   string  `json:"destination"`
	Duration      int     `json:"duration"` // days
	Capacity      int     `json:"capacity"`
	Price         float64 `json:"price"`
	Status        string  `json:"status"`                  // available|full|cancelled
	DepartureDate string  `json:"departureDate,omitempty"` // YYYY-MM-DD, optional
}

// FieldErrors maps a field name to a human-readable violation. Validation
// reports every violated field at once; an empty map means valid.
type FieldErrors map[string]string

func (e FieldErrors) Valid() bool { return len(e) == 0 }

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for k, v := range e {
		parts = append(parts, k+": "+v)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// Validate checks the variant payload against its field rules and returns
// every violation keyed by field name. Missing payload for the declared
// type is itself a violation.
func (r Resource) Validate() FieldErrors {
	errs := FieldErrors{}
	switch r.Type {
	case ResourceExpert:
		if r.Expert == nil {
			errs["expert"] = "expert payload is required"
			return errs
		}
		r.Expert.validate(errs)
	case ResourceRoom:
		if r.Room == nil {
			errs["room"] = "room payload is required"
			return errs
		}
		r.Room.validate(errs)
	case ResourceTable:
		if r.Table == nil {
			errs["table"] = "table payload is required"
			return errs
		}
		r.Table.validate(errs)
	case ResourceTour:
		if r.Tour == nil {
			errs["tour"] = "tour payload is required"
			return errs
		}
		r.Tour.validate(errs)
	default:
		errs["type"] = fmt.Sprintf("unknown resource type %q", r.Type)
	}
	return errs
}

func (e *Expert) validate(errs FieldErrors) {
	if strings.TrimSpace(e.Name) == "" {
		errs["name"] = "name is required"
	}
	if strings.TrimSpace(e.Surname) == "" {
		errs["surname"] = "surname is required"
	}
	if e.Age < 18 || e.Age > 100 {
		errs["age"] = "age must be between 18 and 100"
	}
	if !oneOf(e.Gender, "female", "male") {
		errs["gender"] = "gender must be female or male"
	}
	if e.Experience < 0 || e.Experience > 50 {
		errs["experience"] = "experience must be between 0 and 50 years"
	}
}

func (r *Room) validate(errs FieldErrors) {
	if strings.TrimSpace(r.RoomNumber) == "" {
		errs["roomNumber"] = "room number is required"
	}
	if r.Capacity < 1 {
		errs["capacity"] = "capacity must be at least 1"
	}
	if r.Floor < 0 {
		errs["floor"] = "floor cannot be negative"
	}
	if strings.TrimSpace(r.RoomType) == "" {
		errs["roomType"] = "room type is required"
	}
	if r.Price < 0 {
		errs["price"] = "price cannot be negative"
	}
}

func (t *Table) validate(errs FieldErrors) {
	if strings.TrimSpace(t.TableNumber) == "" {
		errs["tableNumber"] = "table number is required"
	}
	if t.Capacity < 1 {
		errs["capacity"] = "capacity must be at least 1"
	}
	if !oneOf(t.Location, "indoor", "outdoor", "window") {
		errs["location"] = "location must be indoor, outdoor or window"
	}
	if !oneOf(t.Status, "available", "occupied", "reserved") {
		errs["status"] = "status must be available, occupied or reserved"
	}
}

func (t *Tour) validate(errs FieldErrors) {
	if strings.TrimSpace(t.TourName) == "" {
		errs["tourName"] = "tour name is required"
	}
	if strings.TrimSpace(t.Destination) == "" {
		errs["destination"] = "destination is required"
	}
	if t.Duration < 1 || t.Duration > 30 {
		errs["duration"] = "duration must be between 1 and 30 days"
	}
	if t.Capacity < 1 || t.Capacity > 100 {
		errs["capacity"] = "capacity must be between 1 and 100"
	}
	if t.Price <= 0 {
		errs["price"] = "price must be greater than zero"
	}
	if !oneOf(t.Status, "available", "full", "cancelled") {
		errs["status"] = "status must be available, full or cancelled"
	}
}
