package query

// PharmacometricsTerms returns the ordered domain vocabulary used to enrich
// user queries. Order matters: fraction-based policies keep a prefix of
// this list, so the most broadly useful terms come first.
func PharmacometricsTerms() []string {
	return []string{
		"PK model",
		"bicompartimental",
		"monocompartimental",
		"pharmacokinetics",
		"pharmacodynamics",
		"estimated parameters",
		"clearance",
		"absorption",
		"distribution volume",
		"central compartment",
		"Monolix",
		"NONMEM",
		"Mrgsolve",
		"Lixoft",
		"population modeling",
		"parameter variability",
		"elimination rate",
		"half-life",
		"bioavailability",
		"rate of absorption",
		"compartment volume",
	}
}
