package refdata

import "github.com/greenlens/greenlens/internal/model"

// defaultSet returns the built-in reference tables. Deployments override
// these with a YAML file; the built-ins keep the tool useful out of the box.
func defaultSet() *Set {
	return &Set{
		Taxonomy:        defaultTaxonomy(),
		Registry:        defaultRegistry(),
		Recommendations: defaultRecommendations(),
		SDGTargets:      defaultSDGTargets(),
		Guidance:        defaultGuidance(),
	}
}

func defaultTaxonomy() []TaxonomyGroup {
	return []TaxonomyGroup{
		{
			Type: model.ClaimTypeAbsolute,
			Phrases: []string{
				"100% eco-friendly",
				"100% sustainable",
				"100% natural",
				"100% recyclable",
				"completely biodegradable",
				"fully compostable",
				"zero emissions",
				"zero waste",
				"carbon neutral",
				"carbon negative",
				"plastic-free",
				"chemical-free",
				"toxin-free",
			},
		},
		{
			Type: model.ClaimTypeMisleading,
			Phrases: []string{
				"eco-friendly",
				"environmentally friendly",
				"earth-friendly",
				"climate positive",
				"sustainably sourced",
				"ethically sourced",
				"responsibly harvested",
				"green product",
				"natural ingredients",
				"ocean safe",
				"forest friendly",
				"biodegradable",
			},
		},
		{
			Type: model.ClaimTypeVague,
			Phrases: []string{
				"sustainable",
				"eco",
				"green",
				"natural",
				"organic",
				"conscious",
				"responsible",
				"clean",
				"pure",
				"kind to the planet",
			},
		},
	}
}

func defaultRegistry() []model.CertificateRecord {
	return []model.CertificateRecord{
		{
			Company:              "GreenWood Ltd",
			CertType:             "FSC",
			Expiry:               "2028-03-15",
			ApplicableCategories: []string{"timber", "furniture", "paper"},
			CertificateNumber:    "FSC-C104872",
			IssuingBody:          "FSC India",
		},
		{
			Company:              "GreenWood Ltd",
			CertType:             "ISO 14001",
			Expiry:               "2024-11-30",
			ApplicableCategories: []string{"timber", "furniture"},
			CertificateNumber:    "IN-EMS-55231",
			IssuingBody:          "Bureau Veritas",
		},
		{
			Company:              "EcoThread Textiles",
			CertType:             "PEFC",
			Expiry:               "2027-08-01",
			ApplicableCategories: []string{"textiles"},
			CertificateNumber:    "PEFC/09-31-118",
			IssuingBody:          "PEFC Council",
		},
		{
			Company:              "TerraHarvest Foods",
			CertType:             "Rainforest Alliance",
			Expiry:               "2026-12-20",
			ApplicableCategories: []string{"food", "agriculture"},
			CertificateNumber:    "RA-2023-08811",
			IssuingBody:          "Rainforest Alliance",
		},
		{
			Company:              "Wildcraft Artisans",
			CertType:             "CITES",
			Expiry:               "2027-05-10",
			ApplicableCategories: []string{"wildlife products", "exotic materials", "leather"},
			CertificateNumber:    "CITES-IN-44950",
			IssuingBody:          "CITES Management Authority of India",
		},
		{
			Company:              "Carbonshift Packaging",
			CertType:             "Carbon Trust",
			Expiry:               "2026-10-05",
			ApplicableCategories: []string{"packaging"},
			CertificateNumber:    "CT-STD-77120",
			IssuingBody:          "Carbon Trust",
		},
	}
}

func defaultRecommendations() []Recommendation {
	return []Recommendation{
		{Category: "timber", Certs: []string{"FSC", "PEFC", "Carbon Trust"}},
		{Category: "paper", Certs: []string{"FSC", "PEFC"}},
		{Category: "furniture", Certs: []string{"FSC", "ISO 14001"}},
		{Category: "textiles", Certs: []string{"PEFC", "ISO 14001"}},
		{Category: "food", Certs: []string{"Rainforest Alliance"}},
		{Category: "agriculture", Certs: []string{"Rainforest Alliance", "ISO 14001"}},
		{Category: "cosmetics", Certs: []string{"ISO 14001"}},
		{Category: "personal care", Certs: []string{"ISO 14001"}},
		{Category: "packaging", Certs: []string{"FSC", "Carbon Trust"}},
		{Category: "wildlife products", Certs: []string{"CITES"}},
		{Category: "exotic materials", Certs: []string{"CITES"}},
		{Category: "leather", Certs: []string{"CITES", "ISO 14001"}},
	}
}

func defaultSDGTargets() []SDGEntry {
	return []SDGEntry{
		{
			Target:   "15.2",
			Label:    "Sustainable forest management and halting deforestation",
			Severity: 1.4,
			Keywords: []string{"sustainably sourced", "forest friendly", "deforestation", "timber", "wood"},
		},
		{
			Target:   "15.5",
			Label:    "Protection of biodiversity and natural habitats",
			Severity: 1.5,
			Keywords: []string{"biodiversity", "wildlife", "habitat", "species", "kind to the planet"},
		},
		{
			Target:   "15.1",
			Label:    "Conservation of terrestrial and freshwater ecosystems",
			Severity: 1.3,
			Keywords: []string{"ecosystem", "wetland", "freshwater", "conservation", "ocean safe"},
		},
		{
			Target:   "15.3",
			Label:    "Combating desertification and restoring degraded land",
			Severity: 1.2,
			Keywords: []string{"soil", "regenerative", "land restoration", "organic"},
		},
	}
}

func defaultGuidance() map[string]model.CertGuidance {
	return map[string]model.CertGuidance{
		"FSC": {
			FullName:    "Forest Stewardship Council",
			URL:         "https://fsc.org/en/for-business/certification",
			Timeline:    "3-6 months",
			CostTier:    "Low-Medium",
			Description: "Required for timber, paper, wood-based, and packaging products",
			Steps: []string{
				"Contact an FSC-accredited certification body in your region",
				"Undergo a forest management or chain-of-custody audit",
				"Implement required changes and corrective actions",
				"Receive FSC certificate valid for 5 years with annual audits",
			},
		},
		"PEFC": {
			FullName:    "Programme for the Endorsement of Forest Certification",
			URL:         "https://pefc.org/find-certified/certified-businesses",
			Timeline:    "2-4 months",
			CostTier:    "Low",
			Description: "Alternative to FSC for forest and paper product certification",
			Steps: []string{
				"Apply through a PEFC-endorsed national scheme",
				"Complete chain-of-custody certification process",
				"Annual surveillance audits required",
			},
		},
		"Rainforest Alliance": {
			FullName:    "Rainforest Alliance Certification",
			URL:         "https://www.rainforest-alliance.org/business/certification",
			Timeline:    "4-8 months",
			CostTier:    "Medium",
			Description: "For agricultural commodities, food, and beverage products",
			Steps: []string{
				"Register on the Rainforest Alliance certification portal",
				"Complete a self-assessment against the Sustainable Agriculture Standard",
				"Schedule a third-party audit",
				"Implement required sustainability practices",
			},
		},
		"ISO 14001": {
			FullName:    "ISO 14001 Environmental Management System",
			URL:         "https://www.iso.org/iso-14001-environmental-management.html",
			Timeline:    "6-12 months",
			CostTier:    "Medium-High",
			Description: "Environmental management system standard applicable to any industry",
			Steps: []string{
				"Conduct a gap analysis against ISO 14001:2015 requirements",
				"Develop and implement an environmental management system",
				"Complete internal audits and management review",
				"Apply for third-party certification audit",
			},
		},
		"CITES": {
			FullName:    "Convention on International Trade in Endangered Species",
			URL:         "https://cites.org/eng/resources/permits.php",
			Timeline:    "3-5 months",
			CostTier:    "Low",
			Description: "Required for products derived from or containing wildlife materials",
			Steps: []string{
				"Determine if your product contains CITES-listed species",
				"Apply for CITES permits through your national management authority",
				"Ensure legal acquisition documentation for all wildlife-derived materials",
			},
		},
		"TNFD": {
			FullName:    "Taskforce on Nature-related Financial Disclosures",
			URL:         "https://tnfd.global/engage/adopt-and-report",
			Timeline:    "Ongoing reporting framework",
			CostTier:    "Variable",
			Description: "Nature-related risk disclosure framework for financial reporting",
			Steps: []string{
				"Register as a TNFD adopter",
				"Conduct a LEAP (Locate, Evaluate, Assess, Prepare) nature assessment",
				"Integrate nature-related disclosures into annual reporting",
			},
		},
		"Carbon Trust": {
			FullName:    "Carbon Trust Standard",
			URL:         "https://www.carbontrust.com/our-work/certifications-and-standards",
			Timeline:    "3-6 months",
			CostTier:    "Medium",
			Description: "Carbon footprint measurement and reduction certification",
			Steps: []string{
				"Measure your product or organisational carbon footprint",
				"Set and demonstrate year-on-year reduction targets",
				"Submit to independent verification by Carbon Trust",
			},
		},
	}
}
