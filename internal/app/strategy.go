package app

import (
	"fmt"

	"backoffice_console/internal/domain"
)

// FieldDescriptor tells the form renderer what to draw for one input.
// Label is a translation key, not display text.
type FieldDescriptor struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Kind    string   `json:"kind"` // text|number|select|tags|date
	Options []string `json:"options,omitempty"`
}

// ColumnDescriptor is one column of the resource table view.
type ColumnDescriptor struct {
	Field string `json:"field"`
	Label string `json:"label"`
}

// ResourceStrategy is selected once per session from the industry's
// resource axis and passed down; call sites never branch on industry
// strings themselves.
type ResourceStrategy interface {
	VariantTag() domain.ResourceType
	Validate(r domain.Resource) domain.FieldErrors
	FieldDescriptors() []FieldDescriptor
	TableColumns() []ColumnDescriptor
}

// StrategyForIndustry picks the strategy matching the config's resource
// axis. Because ResolveIndustry never fails, neither does this.
func StrategyForIndustry(cfg domain.IndustryConfig) ResourceStrategy {
	switch cfg.ResourceAxis() {
	case domain.ResourceRoom:
		return roomStrategy{}
	case domain.ResourceTable:
		return tableStrategy{}
	case domain.ResourceTour:
		return tourStrategy{}
	default:
		return expertStrategy{}
	}
}

// validateTagged rejects a resource whose variant does not match the axis,
// then defers to the variant's own field rules.
func validateTagged(tag domain.ResourceType, r domain.Resource) domain.FieldErrors {
	if r.Type != tag {
		return domain.FieldErrors{
			"type": fmt.Sprintf("this workspace manages %s resources, got %q", tag, r.Type),
		}
	}
	return r.Validate()
}

type expertStrategy struct{}

func (expertStrategy) VariantTag() domain.ResourceType { return domain.ResourceExpert }

func (expertStrategy) Validate(r domain.Resource) domain.FieldErrors {
	return validateTagged(domain.ResourceExpert, r)
}

func (expertStrategy) FieldDescriptors() []FieldDescriptor {
	return []FieldDescriptor{
		{Name: "name", Label: "fields.expert.name", Kind: "text"},
		{Name: "surname", Label: "fields.expert.surname", Kind: "text"},
		{Name: "age", Label: "fields.expert.age", Kind: "number"},
		{Name: "gender", Label: "fields.expert.gender", Kind: "select", Options: []string{"female", "male"}},
		{Name: "experience", Label: "fields.expert.experience", Kind: "number"},
	}
}

func (expertStrategy) TableColumns() []ColumnDescriptor {
	return []ColumnDescriptor{
		{Field: "name", Label: "fields.expert.name"},
		{Field: "surname", Label: "fields.expert.surname"},
		{Field: "age", Label: "fields.expert.age"},
		{Field: "experience", Label: "fields.expert.experience"},
	}
}

type roomStrategy struct{}

func (roomStrategy) VariantTag() domain.ResourceType { return domain.ResourceRoom }

func (roomStrategy) Validate(r domain.Resource) domain.FieldErrors {
	return validateTagged(domain.ResourceRoom, r)
}

func (roomStrategy) FieldDescriptors() []FieldDescriptor {
	return []FieldDescriptor{
		{Name: "roomNumber", Label: "fields.room.number", Kind: "text"},
		{Name: "capacity", Label: "fields.room.capacity", Kind: "number"},
		{Name: "floor", Label: "fields.room.floor", Kind: "number"},
		{Name: "roomType", Label: "fields.room.type", Kind: "text"},
		{Name: "amenities", Label: "fields.room.amenities", Kind: "tags"},
		{Name: "price", Label: "fields.room.price", Kind: "number"},
	}
}

func (roomStrategy) TableColumns() []ColumnDescriptor {
	return []ColumnDescriptor{
		{Field: "roomNumber", Label: "fields.room.number"},
		{Field: "roomType", Label: "fields.room.type"},
		{Field: "capacity", Label: "fields.room.capacity"},
		{Field: "floor", Label: "fields.room.floor"},
		{Field: "price", Label: "fields.room.price"},
	}
}

type tableStrategy struct{}

func (tableStrategy) VariantTag() domain.ResourceType { return domain.ResourceTable }

func (tableStrategy) Validate(r domain.Resource) domain.FieldErrors {
	return validateTagged(domain.ResourceTable, r)
}

func (tableStrategy) FieldDescriptors() []FieldDescriptor {
	return []FieldDescriptor{
		{Name: "tableNumber", Label: "fields.table.number", Kind: "text"},
		{Name: "capacity", Label: "fields.table.capacity", Kind: "number"},
		{Name: "location", Label: "fields.table.location", Kind: "select", Options: []string{"indoor", "outdoor", "window"}},
		{Name: "status", Label: "fields.table.status", Kind: "select", Options: []string{"available", "occupied", "reserved"}},
	}
}

func (tableStrategy) TableColumns() []ColumnDescriptor {
	return []ColumnDescriptor{
		{Field: "tableNumber", Label: "fields.table.number"},
		{Field: "capacity", Label: "fields.table.capacity"},
		{Field: "location", Label: "fields.table.location"},
		{Field: "status", Label: "fields.table.status"},
	}
}

type tourStrategy struct{}

func (tourStrategy) VariantTag() domain.ResourceType { return domain.ResourceTour }

func (tourStrategy) Validate(r domain.Resource) domain.FieldErrors {
	return validateTagged(domain.ResourceTour, r)
}

func (tourStrategy) FieldDescriptors() []FieldDescriptor {
	return []FieldDescriptor{
		{Name: "tourName", Label: "fields.tour.name", Kind: "text"},
		{Name: "destination", Label: "fields.tour.destination", Kind: "text"},
		{Name: "duration", Label: "fields.tour.duration", Kind: "number"},
		{Name: "capacity", Label: "fields.tour.capacity", Kind: "number"},
		{Name: "price", Label: "fields.tour.price", Kind: "number"},
		{Name: "status", Label: "fields.tour.status", Kind: "select", Options: []string{"available", "full", "cancelled"}},
		{Name: "departureDate", Label: "fields.tour.departure", Kind: "date"},
	}
}

func (tourStrategy) TableColumns() []ColumnDescriptor {
	return []ColumnDescriptor{
		{Field: "tourName", Label: "fields.tour.name"},
		{Field: "destination", Label: "fields.tour.destination"},
		{Field: "duration", Label: "fields.tour.duration"},
		{Field: "capacity", Label: "fields.tour.capacity"},
		{Field: "price", Label: "fields.tour.price"},
		{Field: "status", Label: "fields.tour.status"},
	}
}
