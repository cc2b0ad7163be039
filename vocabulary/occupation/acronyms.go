package occupation

// Acronyms is the fixed acronym vocabulary for identifier generation.
// A word whose uppercase form is a member keeps its uppercase spelling
// in generated identifiers; everything else is capitalized normally.
var Acronyms = map[string]bool{
	"API":  true,
	"ATM":  true,
	"CAD":  true,
	"CAM":  true,
	"CEO":  true,
	"CFO":  true,
	"CIO":  true,
	"CNC":  true,
	"COO":  true,
	"CPA":  true,
	"CPR":  true,
	"CT":   true,
	"CTO":  true,
	"DJ":   true,
	"DNA":  true,
	"ECG":  true,
	"EEG":  true,
	"EKG":  true,
	"EMS":  true,
	"EMT":  true,
	"EPA":  true,
	"ER":   true,
	"FBI":  true,
	"FDA":  true,
	"GED":  true,
	"GIS":  true,
	"GPS":  true,
	"HR":   true,
	"HVAC": true,
	"ICU":  true,
	"IRS":  true,
	"IT":   true,
	"LAN":  true,
	"LPN":  true,
	"MRI":  true,
	"NASA": true,
	"OSHA": true,
	"PC":   true,
	"QA":   true,
	"QC":   true,
	"RN":   true,
	"RV":   true,
	"SQL":  true,
	"TV":   true,
	"UAV":  true,
	"USDA": true,
}

// IsAcronym reports whether the uppercase form of word is in the
// acronym vocabulary.
func IsAcronym(word string) bool {
	return Acronyms[word]
}
