package i18n

import "strings"

// Catalog is the in-memory terminology collaborator. It resolves
// translation keys per locale with an English fallback; keys nobody knows
// are echoed back unchanged so labels never blank out.
type Catalog struct {
	locale string
	tables map[string]map[string]string
}

// New returns a catalog bound to a locale. Unknown locales behave like
// "en".
func New(locale string) *Catalog {
	l := strings.ToLower(locale)
	if _, ok := tables[l]; !ok {
		l = "en"
	}
	return &Catalog{locale: l, tables: tables}
}

func (c *Catalog) Translate(key string) string {
	if v, ok := c.tables[c.locale][key]; ok {
		return v
	}
	if v, ok := c.tables["en"][key]; ok {
		return v
	}
	return key
}

var tables = map[string]map[string]string{
	"en": {
		"terms.common.expert":      "Expert",
		"terms.common.customer":    "Customer",
		"terms.common.appointment": "Appointment",
		"terms.common.service":     "Service",

		"terms.beauty_salon.expert":       "Specialist",
		"terms.hotel.customer":            "Guest",
		"terms.hotel.appointment":         "Reservation",
		"terms.cafe.appointment":          "Reservation",
		"terms.restaurant.appointment":    "Reservation",
		"terms.spa.expert":                "Therapist",
		"terms.fitness.expert":            "Trainer",
		"terms.fitness.customer":          "Member",
		"terms.fitness.appointment":       "Session",
		"terms.clinic.expert":             "Doctor",
		"terms.clinic.customer":           "Patient",
		"terms.clinic.appointment":        "Visit",
		"terms.clinic.service":            "Treatment",
		"terms.travel_agency.expert":      "Guide",
		"terms.travel_agency.appointment": "Booking",

		"menu.dashboard":    "Dashboard",
		"menu.calendar":     "Calendar",
		"menu.appointments": "Appointments",
		"menu.experts":      "Experts",
		"menu.rooms":        "Rooms",
		"menu.tables":       "Tables",
		"menu.tours":        "Tours",
		"menu.customers":    "Customers",
		"menu.services":     "Services",
		"menu.staff":        "Staff",
		"menu.calls":        "Calls",
		"menu.settings":     "Settings",
	},
	"ru": {
		"terms.common.expert":      "Специалист",
		"terms.common.customer":    "Клиент",
		"terms.common.appointment": "Запись",
		"terms.common.service":     "Услуга",

		"terms.hotel.customer":    "Гость",
		"terms.hotel.appointment": "Бронирование",
		"terms.clinic.expert":     "Врач",
		"terms.clinic.customer":   "Пациент",

		"menu.dashboard":    "Панель",
		"menu.calendar":     "Календарь",
		"menu.appointments": "Записи",
		"menu.customers":    "Клиенты",
		"menu.settings":     "Настройки",
	},
}
