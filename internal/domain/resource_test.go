package domain_test

import (
	"testing"

	"backoffice_console/internal/domain"
)

func TestValidateRoom_AllViolationsReportedTogether(t *testing.T) {
	r := domain.Resource{
		Type: domain.ResourceRoom,
		Room: &domain.Room{
			RoomNumber: "101",
			Capacity:   0,
			Floor:      -1,
			RoomType:   "",
			Price:      -5,
		},
	}
	errs := r.Validate()
	if errs.Valid() {
		t.Fatalf("expected violations")
	}
	for _, key := range []string{"capacity", "floor", "roomType", "price"} {
		if _, ok := errs[key]; !ok {
			t.Fatalf("missing error key %q in %v", key, errs)
		}
	}
	if len(errs) != 4 {
		t.Fatalf("want exactly 4 errors, got %v", errs)
	}
}

func TestValidateRoom_Valid(t *testing.T) {
	r := domain.Resource{
		Type: domain.ResourceRoom,
		Room: &domain.Room{
			RoomNumber: "12A",
			Capacity:   2,
			Floor:      0,
			RoomType:   "double",
			Amenities:  []string{"wifi", "minibar"},
			Price:      0, // free rooms are legal, price just can't be negative
		},
	}
	if errs := r.Validate(); !errs.Valid() {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateExpert(t *testing.T) {
	cases := []struct {
		name    string
		in      domain.Expert
		badKeys []string
	}{
		{"valid", domain.Expert{Name: "Maya", Surname: "Kim", Age: 30, Gender: "female", Experience: 7}, nil},
		{"underage", domain.Expert{Name: "A", Surname: "B", Age: 17, Gender: "male", Experience: 1}, []string{"age"}},
		{"everything wrong", domain.Expert{Age: 101, Gender: "other", Experience: 51},
			[]string{"name", "surname", "age", "gender", "experience"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			errs := domain.Resource{Type: domain.ResourceExpert, Expert: &c.in}.Validate()
			if len(errs) != len(c.badKeys) {
				t.Fatalf("got %v want keys %v", errs, c.badKeys)
			}
			for _, k := range c.badKeys {
				if _, ok := errs[k]; !ok {
					t.Fatalf("missing key %q in %v", k, errs)
				}
			}
		})
	}
}

func TestValidateTable(t *testing.T) {
	bad := domain.Resource{Type: domain.ResourceTable, Table: &domain.Table{
		TableNumber: "T1", Capacity: 4, Location: "patio", Status: "broken",
	}}
	errs := bad.Validate()
	if _, ok := errs["location"]; !ok {
		t.Fatalf("expected location error: %v", errs)
	}
	if _, ok := errs["status"]; !ok {
		t.Fatalf("expected status error: %v", errs)
	}

	good := domain.Resource{Type: domain.ResourceTable, Table: &domain.Table{
		TableNumber: "T1", Capacity: 4, Location: "window", Status: "reserved",
	}}
	if errs := good.Validate(); !errs.Valid() {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateTour(t *testing.T) {
	bad := domain.Resource{Type: domain.ResourceTour, Tour: &domain.Tour{
		TourName: "Fjords", Destination: "Norway", Duration: 31, Capacity: 0, Price: 0, Status: "open",
	}}
	errs := bad.Validate()
	for _, key := range []string{"duration", "capacity", "price", "status"} {
		if _, ok := errs[key]; !ok {
			t.Fatalf("missing %q in %v", key, errs)
		}
	}

	good := domain.Resource{Type: domain.ResourceTour, Tour: &domain.Tour{
		TourName: "Fjords", Destination: "Norway", Duration: 7, Capacity: 20,
		Price: 1200, Status: "available", DepartureDate: "2025-06-01",
	}}
	if errs := good.Validate(); !errs.Valid() {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidate_MissingPayloadAndUnknownType(t *testing.T) {
	errs := domain.Resource{Type: domain.ResourceRoom}.Validate()
	if _, ok := errs["room"]; !ok {
		t.Fatalf("expected room payload error: %v", errs)
	}
	errs = domain.Resource{Type: "vehicle"}.Validate()
	if _, ok := errs["type"]; !ok {
		t.Fatalf("expected type error: %v", errs)
	}
}
