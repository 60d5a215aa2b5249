package domain

// IndustryType identifies the vertical a company operates in. The set is
// closed; anything else falls back to DefaultIndustry at resolve time.
type IndustryType string

const (
	IndustryBeautySalon  IndustryType = "beauty_salon"
	IndustryHotel        IndustryType = "hotel"
	IndustryCafe         IndustryType = "cafe"
	IndustryRestaurant   IndustryType = "restaurant"
	IndustrySpa          IndustryType = "spa"
	IndustryFitness      IndustryType = "fitness"
	IndustryClinic       IndustryType = "clinic"
	IndustryTravelAgency IndustryType = "travel_agency"
)

// DefaultIndustry is applied whenever a company carries a missing or
// unrecognized industry. Unknown industries never error.
const DefaultIndustry = IndustryBeautySalon

// Feature names accepted by IsFeatureEnabled.
const (
	FeatureExperts      = "experts"
	FeatureRooms        = "rooms"
	FeatureTables       = "tables"
	FeatureTours        = "tours"
	FeatureAppointments = "appointments"
	FeatureCustomers    = "customers"
	FeatureServices     = "services"
	FeatureStaff        = "staff"
)

// FeatureSet is the per-industry capability matrix. Exactly one of the
// resource-axis flags (Experts, Rooms, Tables, Tours) is true per industry;
// the rest are orthogonal.
type FeatureSet struct {
	Experts      bool `json:"experts"`
	Rooms        bool `json:"rooms"`
	Tables       bool `json:"tables"`
	Tours        bool `json:"tours"`
	Appointments bool `json:"appointments"`
	Customers    bool `json:"customers"`
	Services     bool `json:"services"`
	Staff        bool `json:"staff"`
}

// MenuItem is one navigation entry. Feature, when non-empty, names the flag
// that must be enabled for the entry to be visible.
type MenuItem struct {
	Key     string `json:"key"`
	Path    string `json:"path"`
	Icon    string `json:"icon"`
	Feature string `json:"feature,omitempty"`
}

// FieldMappings holds the four terminology slots. Each value is a lookup key
// for the Translator; the resolved string is what the UI shows.
type FieldMappings struct {
	Expert      string `json:"expert"`
	Customer    string `json:"customer"`
	Appointment string `json:"appointment"`
	Service     string `json:"service"`
}

// Terminology slot names accepted by FieldMappings.Key.
const (
	SlotExpert      = "expert"
	SlotCustomer    = "customer"
	SlotAppointment = "appointment"
	SlotService     = "service"
)

// Key returns the translation key for a slot, or "" for an unknown slot.
func (m FieldMappings) Key(slot string) string {
	switch slot {
	case SlotExpert:
		return m.Expert
	case SlotCustomer:
		return m.Customer
	case SlotAppointment:
		return m.Appointment
	case SlotService:
		return m.Service
	}
	return ""
}

// IndustryConfig bundles everything industry-dependent: feature flags, the
// navigation menu, and terminology keys. Values are built once at package
// init and never mutated; callers must treat them as read-only.
type IndustryConfig struct {
	Type          IndustryType  `json:"type"`
	Features      FeatureSet    `json:"features"`
	MenuItems     []MenuItem    `json:"menuItems"`
	FieldMappings FieldMappings `json:"fieldMappings"`
}

// ResourceAxis returns the variant this industry manages.
func (c IndustryConfig) ResourceAxis() ResourceType {
	switch {
	case c.Features.Rooms:
		return ResourceRoom
	case c.Features.Tables:
		return ResourceTable
	case c.Features.Tours:
		return ResourceTour
	default:
		return ResourceExpert
	}
}

// menu assembles the shared navigation skeleton around the industry's
// resource entry. Order matters: it is the order the sidebar renders.
func menu(resourceKey, resourceIcon, resourceFeature string) []MenuItem {
	return []MenuItem{
		{Key: "menu.dashboard", Path: "/dashboard", Icon: "dashboard"},
		{Key: "menu.calendar", Path: "/calendar", Icon: "calendar"},
		{Key: "menu.appointments", Path: "/appointments", Icon: "clipboard", Feature: FeatureAppointments},
		{Key: resourceKey, Path: "/resources", Icon: resourceIcon, Feature: resourceFeature},
		{Key: "menu.customers", Path: "/customers", Icon: "people", Feature: FeatureCustomers},
		{Key: "menu.services", Path: "/services", Icon: "tag", Feature: FeatureServices},
		{Key: "menu.staff", Path: "/staff", Icon: "badge", Feature: FeatureStaff},
		{Key: "menu.calls", Path: "/calls", Icon: "phone"},
		{Key: "menu.settings", Path: "/settings", Icon: "gear"},
	}
}

var industryConfigs = map[IndustryType]IndustryConfig{
	IndustryBeautySalon: {
		Type:      IndustryBeautySalon,
		Features:  FeatureSet{Experts: true, Appointments: true, Customers: true, Services: true},
		MenuItems: menu("menu.experts", "scissors", FeatureExperts),
		FieldMappings: FieldMappings{
			Expert:      "terms.beauty_salon.expert",
			Customer:    "terms.common.customer",
			Appointment: "terms.common.appointment",
			Service:     "terms.common.service",
		},
	},
	IndustryHotel: {
		Type:      IndustryHotel,
		Features:  FeatureSet{Rooms: true, Appointments: true, Customers: true, Staff: true},
		MenuItems: menu("menu.rooms", "bed", FeatureRooms),
		FieldMappings: FieldMappings{
			Expert:      "terms.common.expert",
			Customer:    "terms.hotel.customer",
			Appointment: "terms.hotel.appointment",
			Service:     "terms.common.service",
		},
	},
	IndustryCafe: {
		Type:      IndustryCafe,
		Features:  FeatureSet{Tables: true, Appointments: true, Customers: true, Staff: true},
		MenuItems: menu("menu.tables", "table", FeatureTables),
		FieldMappings: FieldMappings{
			Expert:      "terms.common.expert",
			Customer:    "terms.common.customer",
			Appointment: "terms.cafe.appointment",
			Service:     "terms.common.service",
		},
	},
	IndustryRestaurant: {
		Type:      IndustryRestaurant,
		Features:  FeatureSet{Tables: true, Appointments: true, Customers: true, Staff: true},
		MenuItems: menu("menu.tables", "table", FeatureTables),
		FieldMappings: FieldMappings{
			Expert:      "terms.common.expert",
			Customer:    "terms.common.customer",
			Appointment: "terms.restaurant.appointment",
			Service:     "terms.common.service",
		},
	},
	IndustrySpa: {
		Type:      IndustrySpa,
		Features:  FeatureSet{Experts: true, Appointments: true, Customers: true, Services: true},
		MenuItems: menu("menu.experts", "lotus", FeatureExperts),
		FieldMappings: FieldMappings{
			Expert:      "terms.spa.expert",
			Customer:    "terms.common.customer",
			Appointment: "terms.common.appointment",
			Service:     "terms.common.service",
		},
	},
	IndustryFitness: {
		Type:      IndustryFitness,
		Features:  FeatureSet{Experts: true, Appointments: true, Customers: true, Services: true},
		MenuItems: menu("menu.experts", "dumbbell", FeatureExperts),
		FieldMappings: FieldMappings{
			Expert:      "terms.fitness.expert",
			Customer:    "terms.fitness.customer",
			Appointment: "terms.fitness.appointment",
			Service:     "terms.common.service",
		},
	},
	IndustryClinic: {
		Type:      IndustryClinic,
		Features:  FeatureSet{Experts: true, Appointments: true, Customers: true, Services: true, Staff: true},
		MenuItems: menu("menu.experts", "stethoscope", FeatureExperts),
		FieldMappings: FieldMappings{
			Expert:      "terms.clinic.expert",
			Customer:    "terms.clinic.customer",
			Appointment: "terms.clinic.appointment",
			Service:     "terms.clinic.service",
		},
	},
	IndustryTravelAgency: {
		Type:      IndustryTravelAgency,
		Features:  FeatureSet{Tours: true, Appointments: true, Customers: true, Staff: true},
		MenuItems: menu("menu.tours", "globe", FeatureTours),
		FieldMappings: FieldMappings{
			Expert:      "terms.travel_agency.expert",
			Customer:    "terms.common.customer",
			Appointment: "terms.travel_agency.appointment",
			Service:     "terms.common.service",
		},
	},
}

// ResolveIndustry maps a raw industry value to its config. Unknown or empty
// input degrades to the DefaultIndustry config; it never fails. Every lookup
// in the codebase must go through here so the fallback is applied in one
// place.
func ResolveIndustry(v string) IndustryConfig {
	if cfg, ok := industryConfigs[IndustryType(v)]; ok {
		return cfg
	}
	return industryConfigs[DefaultIndustry]
}

// IsFeatureEnabled reports whether a named feature is on for an industry.
func IsFeatureEnabled(industry, feature string) bool {
	f := ResolveIndustry(industry).Features
	switch feature {
	case FeatureExperts:
		return f.Experts
	case FeatureRooms:
		return f.Rooms
	case FeatureTables:
		return f.Tables
	case FeatureTours:
		return f.Tours
	case FeatureAppointments:
		return f.Appointments
	case FeatureCustomers:
		return f.Customers
	case FeatureServices:
		return f.Services
	case FeatureStaff:
		return f.Staff
	}
	return false
}

// VisibleMenu returns the menu entries whose feature gate passes, in the
// configured order.
func VisibleMenu(cfg IndustryConfig) []MenuItem {
	out := make([]MenuItem, 0, len(cfg.MenuItems))
	for _, it := range cfg.MenuItems {
		if it.Feature == "" || IsFeatureEnabled(string(cfg.Type), it.Feature) {
			out = append(out, it)
		}
	}
	return out
}

// menuIconAssets maps an icon name to the asset path served to clients.
// Explicit lookup table instead of conditionals scattered over handlers.
var menuIconAssets = map[string]string{
	"dashboard":   "/assets/icons/dashboard.svg",
	"calendar":    "/assets/icons/calendar.svg",
	"clipboard":   "/assets/icons/clipboard.svg",
	"people":      "/assets/icons/people.svg",
	"tag":         "/assets/icons/tag.svg",
	"badge":       "/assets/icons/badge.svg",
	"phone":       "/assets/icons/phone.svg",
	"gear":        "/assets/icons/gear.svg",
	"scissors":    "/assets/icons/scissors.svg",
	"bed":         "/assets/icons/bed.svg",
	"table":       "/assets/icons/table.svg",
	"lotus":       "/assets/icons/lotus.svg",
	"dumbbell":    "/assets/icons/dumbbell.svg",
	"stethoscope": "/assets/icons/stethoscope.svg",
	"globe":       "/assets/icons/globe.svg",
}

// MenuIconAsset resolves an icon name to its asset path, falling back to a
// generic dot for names the table does not know.
func MenuIconAsset(name string) string {
	if p, ok := menuIconAssets[name]; ok {
		return p
	}
	return "/assets/icons/dot.svg"
}
