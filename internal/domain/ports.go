package domain

import "context"

// ResourceRepository is the CRUD collaborator behind the manage-resources
// screen. Implementations own id generation and persistence; callers submit
// already-validated values.
type ResourceRepository interface {
	ListResources(ctx context.Context, industry IndustryType) ([]Resource, error)
	CreateResource(ctx context.Context, industry IndustryType, r Resource) (Resource, error)
	UpdateResource(ctx context.Context, industry IndustryType, r Resource) (Resource, error)
	DeleteResource(ctx context.Context, industry IndustryType, id string) error
}

// ScheduleDirectory is the read-only collaborator owning appointments,
// calls and customers.
type ScheduleDirectory interface {
	ListAppointments(ctx context.Context, f AppointmentFilter) ([]CalendarAppointment, error)
	ListCalls(ctx context.Context, f AppointmentFilter) ([]CallLog, error)
	ListCustomers(ctx context.Context, search string) ([]Customer, error)
}

// CompanyDirectory resolves the calling tenant.
type CompanyDirectory interface {
	GetCompany(ctx context.Context) (Company, error)
}

// Translator turns a terminology key into a display string. Unresolved keys
// come back unchanged; it never errors and never returns "".
type Translator interface {
	Translate(key string) string
}

// Cache is a JSON value cache with second-granularity TTLs.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
