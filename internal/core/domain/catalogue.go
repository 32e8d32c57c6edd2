package domain

import "strings"

// CodeEntry describes one topical code: a named partition of the corpus
// corresponding to a legal subject area.
type CodeEntry struct {
	// ID is the code identifier used for routing and corpus membership.
	ID string

	// Description is the human-readable summary used as grounding
	// vocabulary in routing and rewrite prompts.
	Description string
}

// CodeCatalogue is the fixed list of topical codes the corpus is
// partitioned into.
type CodeCatalogue []CodeEntry

// Contains returns true if the catalogue includes the given code ID.
func (c CodeCatalogue) Contains(id string) bool {
	for _, entry := range c {
		if entry.ID == id {
			return true
		}
	}
	return false
}

// IDs returns all code identifiers in catalogue order.
func (c CodeCatalogue) IDs() []string {
	ids := make([]string, len(c))
	for i, entry := range c {
		ids[i] = entry.ID
	}
	return ids
}

// Describe renders the catalogue as a bulleted list for oracle prompts.
func (c CodeCatalogue) Describe() string {
	var b strings.Builder
	for _, entry := range c {
		b.WriteString("- ")
		b.WriteString(entry.ID)
		b.WriteString(": ")
		b.WriteString(entry.Description)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// DefaultCatalogue returns the Tunisian legal code catalogue.
func DefaultCatalogue() CodeCatalogue {
	return CodeCatalogue{
		{ID: "code-aeronautique-civile", Description: "Governs regulations related to civil aviation, including air travel, aviation safety, and airspace management."},
		{ID: "code-amenagement-territoire-urbanisme", Description: "Covers rules related to urban planning and land management, ensuring sustainable and organized territorial development."},
		{ID: "code-arbitrage", Description: "Regulates arbitration processes for resolving disputes outside of court."},
		{ID: "code-assurances", Description: "Governs insurance policies, companies, and obligations in Tunisia."},
		{ID: "code-changes-commerce-exterieur", Description: "Deals with foreign trade policies and currency exchange regulations."},
		{ID: "code-collectivites-locales", Description: "Outlines laws related to local government administration and responsibilities."},
		{ID: "code-commerce-maritime", Description: "Regulates maritime trade, shipping operations, and associated commercial activities."},
		{ID: "code-compatibilite-publique", Description: "Governs public accounting and management of state funds."},
		{ID: "code-conduite-deontologie-agent-public", Description: "Sets ethical rules and professional conduct standards for public servants."},
		{ID: "code-decorations", Description: "Outlines laws regarding state decorations, medals, and honors."},
		{ID: "code-deontologie-medecin-veterinaire", Description: "Defines professional standards and ethics for veterinary medicine practitioners."},
		{ID: "code-deontologie-medicale", Description: "Regulates ethical conduct and responsibilities of medical professionals."},
		{ID: "code-devoirs-architectes", Description: "Details professional obligations and ethical standards for architects."},
		{ID: "code-disciplinaire-penal-maritime", Description: "Covers disciplinary and penal matters related to maritime operations."},
		{ID: "code-douanes", Description: "Governs customs duties, import/export regulations, and border control."},
		{ID: "code-droit-international-prive", Description: "Regulates private international law matters, such as conflicts of law and cross-border disputes."},
		{ID: "code-droits-enregistrement-timbre", Description: "Governs the registration and stamp duties in financial and legal transactions."},
		{ID: "code-droits-procedures-fiscaux", Description: "Covers tax procedures and fiscal obligations."},
		{ID: "code-droits-reels", Description: "Governs real property rights, including ownership, mortgages, and easements."},
		{ID: "code-eaux", Description: "Manages water resources, usage, and conservation laws."},
		{ID: "code-fiscalite-locale", Description: "Covers taxation and fiscal management at the local government level."},
		{ID: "code-forestier", Description: "Protects and regulates forest areas, logging activities, and wildlife preservation."},
		{ID: "code-hydrocarbures", Description: "Governs exploration, production, and management of hydrocarbons in Tunisia."},
		{ID: "code-impot-sur-revenu-personnes-physiques-impot-sur-les-societes", Description: "Covers personal and corporate income tax regulations."},
		{ID: "code-incitation-aux-investissements", Description: "Provides rules to encourage domestic and foreign investments in Tunisia."},
		{ID: "code-industrie-cinematographique", Description: "Regulates the cinematic industry, including production, distribution, and exhibition of films."},
		{ID: "code-justice-militaire", Description: "Covers legal matters and regulations within the military justice system."},
		{ID: "code-minier", Description: "Regulates mining operations, mineral rights, and related activities."},
		{ID: "code-nationalite", Description: "Defines laws related to Tunisian nationality, acquisition, and loss of citizenship."},
		{ID: "code-obligations-contrats", Description: "Governs contracts, obligations, and related civil matters."},
		{ID: "code-organismes-placement-collectif", Description: "Regulates collective investment schemes and funds management."},
		{ID: "code-patrimoine-archeologique-historique-arts-traditionnels", Description: "Protects archaeological and historical heritage sites in Tunisia."},
		{ID: "code-pecheur", Description: "Covers fishing regulations, rights, and resource management for fisheries."},
		{ID: "code-penal", Description: "Governs criminal law and procedures, defining offenses and their penalties."},
		{ID: "code-police-administrative-navigation-maritime", Description: "Manages administrative police duties related to maritime navigation."},
		{ID: "code-ports-maritimes", Description: "Regulates the operation and management of maritime ports."},
		{ID: "code-poste", Description: "Governs postal services, including mail delivery and related activities."},
		{ID: "code-presse", Description: "Covers press freedom, media laws, and publication regulations."},
		{ID: "code-prestation-services-financiers-aux-non-residents", Description: "Regulates financial services provided to non-residents."},
		{ID: "code-procedure-civile-commerciale", Description: "Governs civil and commercial legal procedures in courts."},
		{ID: "code-procedure-penale", Description: "Covers criminal procedure and the administration of justice."},
		{ID: "code-protection-enfant", Description: "Protects children's rights and welfare in Tunisia."},
		{ID: "code-route", Description: "Contains rules and regulations for road traffic, vehicle operations, and driving safety."},
		{ID: "code-societes-commerciales", Description: "Regulates the formation, operation, and dissolution of commercial companies."},
		{ID: "code-statut-personnel", Description: "Governs family law, including marriage, divorce, and inheritance."},
		{ID: "code-taxe-sur-valeur-ajoutee", Description: "Regulates the application and administration of value-added tax (VAT)."},
		{ID: "code-telecommunications", Description: "Covers telecommunications operations, infrastructure, and related services."},
		{ID: "code-travail", Description: "Governs labor laws, including employment contracts, workers' rights, and workplace regulations."},
		{ID: "code-travail-maritime", Description: "Regulates working conditions, rights, and obligations of maritime workers."},
		{ID: "tunisian_constitution_articles", Description: "Refers to the articles of the Tunisian Constitution, including fundamental rights, governance, and legal structure and general info about tunisia's values and info."},
	}
}
