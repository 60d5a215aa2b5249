package app_test

import (
	"testing"

	"backoffice_console/internal/adapters/i18n"
	"backoffice_console/internal/app"
	"backoffice_console/internal/domain"
)

type mapTranslator map[string]string

func (m mapTranslator) Translate(key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return key
}

func TestResolve_UsesMappingKey(t *testing.T) {
	tr := mapTranslator{"terms.hotel.customer": "Guest"}
	res := app.NewFieldMappingResolver(tr)
	cfg := domain.ResolveIndustry("hotel")

	if got := res.Resolve(cfg, domain.SlotCustomer); got != "Guest" {
		t.Fatalf("hotel customer term: %s", got)
	}
}

func TestResolve_UnresolvedKeyEchoes(t *testing.T) {
	res := app.NewFieldMappingResolver(mapTranslator{})
	cfg := domain.ResolveIndustry("hotel")

	// translator knows nothing: the raw key comes back, never ""
	if got := res.Resolve(cfg, domain.SlotAppointment); got != "terms.hotel.appointment" {
		t.Fatalf("unresolved key: %s", got)
	}
	if got := res.Resolve(cfg, "no-such-slot"); got != "no-such-slot" {
		t.Fatalf("unknown slot: %s", got)
	}
}

func TestTerms_AllFourSlots(t *testing.T) {
	res := app.NewFieldMappingResolver(i18n.New("en"))
	terms := res.Terms(domain.ResolveIndustry("clinic"))

	want := map[string]string{
		"expert":      "Doctor",
		"customer":    "Patient",
		"appointment": "Visit",
		"service":     "Treatment",
	}
	for slot, v := range want {
		if terms[slot] != v {
			t.Fatalf("clinic %s = %q, want %q", slot, terms[slot], v)
		}
	}
}

// End-to-end industry scenario: a cafe manages tables, but its customers
// keep the generic term.
func TestCafeScenario(t *testing.T) {
	cfg := domain.ResolveIndustry("cafe")
	if !cfg.Features.Tables || cfg.Features.Experts || cfg.Features.Rooms || cfg.Features.Tours {
		t.Fatalf("cafe resource flags wrong: %+v", cfg.Features)
	}
	if st := app.StrategyForIndustry(cfg); st.VariantTag() != domain.ResourceTable {
		t.Fatalf("cafe strategy variant: %s", st.VariantTag())
	}

	res := app.NewFieldMappingResolver(i18n.New("en"))
	if got := res.Resolve(cfg, domain.SlotCustomer); got != "Customer" {
		t.Fatalf("cafe customer must stay generic, got %q", got)
	}
}
