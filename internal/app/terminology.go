package app

import "backoffice_console/internal/domain"

// FieldMappingResolver turns an industry config's terminology slots into
// display terms via the translation collaborator. The translator echoes
// unresolved keys back, so this can never blank out a label.
type FieldMappingResolver struct {
	tr domain.Translator
}

func NewFieldMappingResolver(tr domain.Translator) *FieldMappingResolver {
	return &FieldMappingResolver{tr: tr}
}

// Resolve returns the display term for one slot ("expert", "customer",
// "appointment", "service"). Unknown slots fall back to the slot name
// itself, mirroring the translator's echo contract.
func (r *FieldMappingResolver) Resolve(cfg domain.IndustryConfig, slot string) string {
	key := cfg.FieldMappings.Key(slot)
	if key == "" {
		return slot
	}
	return r.tr.Translate(key)
}

// Translate passes a raw key through to the collaborator (menu labels and
// other non-slot keys).
func (r *FieldMappingResolver) Translate(key string) string {
	return r.tr.Translate(key)
}

// Terms resolves all four slots at once for the config payload handed to
// clients.
func (r *FieldMappingResolver) Terms(cfg domain.IndustryConfig) map[string]string {
	return map[string]string{
		domain.SlotExpert:      r.Resolve(cfg, domain.SlotExpert),
		domain.SlotCustomer:    r.Resolve(cfg, domain.SlotCustomer),
		domain.SlotAppointment: r.Resolve(cfg, domain.SlotAppointment),
		domain.SlotService:     r.Resolve(cfg, domain.SlotService),
	}
}
