package domain

// DateLayout is the calendar date format used everywhere in this core.
// Dates are compared as strings; no time-zone conversion is ever applied.
const DateLayout = "2006-01-02"

// Appointment statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// CalendarAppointment is a scheduled visit as the scheduling collaborator
// reports it. This core only reads and aggregates these; it never owns or
// mutates them.
type CalendarAppointment struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"` // YYYY-MM-DD
	Time          string  `json:"time"` // HH:MM
	CustomerID    string  `json:"customerId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone,omitempty"`
	Service       string  `json:"service"`
	Duration      int     `json:"duration"` // minutes
	StaffID       string  `json:"staffId"`
	StaffName     string  `json:"staffName"`
	Price         float64 `json:"price"`
	Status        string  `json:"status"`
}

// CallLog is a recorded inbound or outbound phone call.
type CallLog struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Caller    string `json:"caller"`
	Phone     string `json:"phone"`
	Direction string `json:"direction"` // inbound|outbound
	Duration  int    `json:"duration"`  // seconds
	Outcome   string `json:"outcome,omitempty"`
}

// Customer is a flat contact record.
type Customer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	VisitCount int    `json:"visitCount"`
	LastVisit  string `json:"lastVisit,omitempty"`
}

// Notification is a one-line message for the bell icon.
type Notification struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}

// Company is the tenant. Industry drives everything industry-dependent;
// resolve it through ResolveIndustry, never by hand.
type Company struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Locale   string `json:"locale,omitempty"`
}

// AppointmentFilter is the set of independently optional predicates the
// filter engine ANDs together. Zero value filters nothing.
type AppointmentFilter struct {
	Status string `json:"status,omitempty"` // "" or "all" disables
	Date   string `json:"date,omitempty"`   // exact match
	Month  *int   `json:"month,omitempty"`  // 0-11; only active with Year
	Year   *int   `json:"year,omitempty"`   // only active with Month
	From   string `json:"from,omitempty"`   // inclusive lower date bound
	To     string `json:"to,omitempty"`     // inclusive upper date bound
}

// IsZero reports whether no predicate is active.
func (f AppointmentFilter) IsZero() bool {
	return (f.Status == "" || f.Status == "all") &&
		f.Date == "" && f.Month == nil && f.Year == nil &&
		f.From == "" && f.To == ""
}
