package domain

// Session is the immutable per-tenant context handed to the pure services:
// who is signed in, which company, which locale, and the industry config
// resolved once at construction. Updates produce a new value; nothing here
// is mutated after NewSession returns.
type Session struct {
	Identity string
	Locale   string
	Company  Company
	Config   IndustryConfig
}

// NewSession resolves the company's industry once and freezes the result.
func NewSession(identity, locale string, c Company) Session {
	if locale == "" {
		locale = c.Locale
	}
	if locale == "" {
		locale = "en"
	}
	return Session{
		Identity: identity,
		Locale:   locale,
		Company:  c,
		Config:   ResolveIndustry(c.Industry),
	}
}

// WithCompany returns a copy bound to another company, re-resolving the
// industry config.
func (s Session) WithCompany(c Company) Session {
	s.Company = c
	s.Config = ResolveIndustry(c.Industry)
	return s
}

// WithLocale returns a copy with a different locale.
func (s Session) WithLocale(locale string) Session {
	s.Locale = locale
	return s
}

// Anonymous reports whether the session carries no identity (e.g. after an
// unauthorized reset).
func (s Session) Anonymous() bool { return s.Identity == "" }
