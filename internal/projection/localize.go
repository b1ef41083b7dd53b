package projection

// Best-effort Arabic fallbacks for the public card header. Explicit
// localized values on the record always win; anything missing from these
// tables falls back to the source string unchanged.

var countryAr = map[string]string{
	"Egypt":        "مصر",
	"France":       "فرنسا",
	"Kuwait":       "الكويت",
	"Saudi Arabia": "السعودية",
	"Morocco":      "المغرب",
	"Algeria":      "الجزائر",
	"Tunisia":      "تونس",
	"Qatar":        "قطر",
	"Brazil":       "البرازيل",
	"Argentina":    "الأرجنتين",
	"Spain":        "إسبانيا",
	"England":      "إنجلترا",
	"Germany":      "ألمانيا",
	"Portugal":     "البرتغال",
	"Senegal":      "السنغال",
}

var clubAr = map[string]string{
	"Liverpool FC":       "ليفربول",
	"Real Madrid":        "ريال مدريد",
	"Al Ittihad":         "الاتحاد",
	"Al Ahly":            "الأهلي",
	"Al Hilal":           "الهلال",
	"Kuwait SC":          "نادي الكويت",
	"Al Arabi":           "العربي",
	"Paris Saint-Germain": "باريس سان جيرمان",
}

func localizeCountry(name, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if ar, ok := countryAr[name]; ok {
		return ar
	}
	return name
}

func localizeClub(name, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if ar, ok := clubAr[name]; ok {
		return ar
	}
	return name
}
