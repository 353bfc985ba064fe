package catalog

// Default returns the built-in subject catalog, in processing order. NYS
// subjects come first, then the England curriculum documents (which carry no
// native codes and get surrogate ones).
func Default() []Subject {
	return []Subject{
		// NYS
		{Key: "dance", Source: "dance_standards.pdf"},
		{Key: "media_arts", Source: "media_arts_standards.pdf"},
		{Key: "music", Source: "music_standards.pdf"},
		{Key: "theatre", Source: "theatre_standards.pdf"},
		{Key: "visual_arts", Source: "visual_arts_standards.pdf"},
		{Key: "cdos", Source: "cdos_standards.pdf"},
		{Key: "mathematics", Source: "mathematics_standards.pdf"},
		{Key: "ela", Source: "ela_standards.pdf"},
		{Key: "science", Source: "science_standards.pdf"},
		{Key: "social_studies_k8", Source: "social_studies_k8_standards.pdf"},
		{Key: "social_studies_hs", Source: "social_studies_hs_standards.pdf"},
		{Key: "computer_science", Source: "computer_science_standards.pdf"},
		{Key: "world_languages", Source: "world_languages_standards.pdf"},
		{Key: "health_pe_fcs", Source: "health_pe_fcs_standards.pdf"},
		{Key: "physical_education", Source: "physical_education_standards.pdf"},
		{Key: "technology", Source: "technology_standards.pdf"},

		// England - English
		{Key: "eng_english_primary", Source: "eng_english_primary.pdf"},
		{Key: "eng_english_secondary", Source: "eng_english_secondary.pdf"},
		{Key: "eng_english_ks4", Source: "eng_english_ks4.pdf"},
		{Key: "eng_reading_framework", Source: "reading_framework.pdf"},
		{Key: "eng_letters_sounds", Source: "letters_and_sounds.pdf"},
		{Key: "eng_gcse_english_aqa", Source: "aqa_gcse_eng_lang_spec.pdf"},

		// England - Maths
		{Key: "eng_mathematics_primary", Source: "eng_mathematics_primary.pdf"},
		{Key: "eng_mathematics_secondary", Source: "eng_mathematics_secondary.pdf"},
		{Key: "eng_mathematics_ks4", Source: "eng_mathematics_ks4.pdf"},
		{Key: "eng_mathematics_appendix1", Source: "eng_mathematics_appendix1.pdf"},

		// England - Science
		{Key: "eng_science_primary", Source: "eng_science_primary.pdf"},
		{Key: "eng_science_secondary", Source: "eng_science_secondary.pdf"},
		{Key: "eng_science_ks4", Source: "eng_science_ks4.pdf"},

		// England - Humanities and Arts
		{Key: "eng_geography_primary", Source: "eng_geography_primary.pdf"},
		{Key: "eng_geography_secondary", Source: "eng_geography_secondary.pdf"},
		{Key: "eng_history_primary", Source: "eng_history_primary.pdf"},
		{Key: "eng_history_secondary", Source: "eng_history_secondary.pdf"},
		{Key: "eng_art_design_primary", Source: "eng_art_design_primary.pdf"},
		{Key: "eng_art_design_secondary", Source: "eng_art_design_secondary.pdf"},
		{Key: "eng_music_primary", Source: "eng_music_primary.pdf"},
		{Key: "eng_music_secondary", Source: "eng_music_secondary.pdf"},

		// England - PE / DT / Computing / MFL / Citizenship
		{Key: "eng_pe_primary", Source: "eng_pe_primary.pdf"},
		{Key: "eng_pe_secondary", Source: "eng_pe_secondary.pdf"},
		{Key: "eng_design_technology_primary", Source: "eng_design_technology_primary.pdf"},
		{Key: "eng_design_technology_secondary", Source: "eng_design_technology_secondary.pdf"},
		{Key: "eng_computing_primary", Source: "eng_computing_primary.pdf"},
		{Key: "eng_computing_secondary", Source: "eng_computing_secondary.pdf"},
		{Key: "eng_mfl_primary", Source: "eng_mfl_primary.pdf"},
		{Key: "eng_mfl_secondary", Source: "eng_mfl_secondary.pdf"},
		{Key: "eng_citizenship", Source: "eng_citizenship_secondary.pdf"},
	}
}
