package occupation

// Roles is the fixed list of known occupational role nouns, singular
// form. Suffix matching walks this slice in declaration order and the
// first entry whose plural or singular form matches wins, so the order
// is load-bearing: do not sort, deduplicate, or regroup.
//
// Plurals are derived mechanically (trailing "y" becomes "ies",
// otherwise append "s"), so entries must pluralize correctly under that
// rule.
var Roles = []string{
	"Manager",
	"Supervisor",
	"Director",
	"Administrator",
	"Executive",
	"Officer",
	"Specialist",
	"Analyst",
	"Engineer",
	"Technologist",
	"Technician",
	"Scientist",
	"Teacher",
	"Instructor",
	"Professor",
	"Trainer",
	"Worker",
	"Laborer",
	"Operator",
	"Assistant",
	"Aide",
	"Clerk",
	"Agent",
	"Representative",
	"Inspector",
	"Examiner",
	"Investigator",
	"Counselor",
	"Advisor",
	"Consultant",
	"Therapist",
	"Practitioner",
	"Nurse",
	"Physician",
	"Surgeon",
	"Dentist",
	"Pharmacist",
	"Psychologist",
	"Psychiatrist",
	"Pathologist",
	"Audiologist",
	"Veterinarian",
	"Paramedic",
	"Hygienist",
	"Dietitian",
	"Nutritionist",
	"Secretary",
	"Receptionist",
	"Interviewer",
	"Recruiter",
	"Planner",
	"Estimator",
	"Programmer",
	"Developer",
	"Tester",
	"Designer",
	"Architect",
	"Drafter",
	"Surveyor",
	"Curator",
	"Archivist",
	"Librarian",
	"Historian",
	"Economist",
	"Statistician",
	"Mathematician",
	"Actuary",
	"Accountant",
	"Auditor",
	"Treasurer",
	"Controller",
	"Appraiser",
	"Assessor",
	"Underwriter",
	"Adjuster",
	"Collector",
	"Teller",
	"Cashier",
	"Buyer",
	"Bartender",
	"Firefighter",
	"Lawyer",
	"Judge",
	"Paralegal",
	"Pilot",
	"Driver",
	"Courier",
	"Messenger",
	"Dispatcher",
	"Installer",
	"Repairer",
	"Mechanic",
	"Machinist",
	"Welder",
	"Assembler",
	"Fabricator",
	"Painter",
	"Plumber",
	"Electrician",
	"Carpenter",
	"Attendant",
	"Guard",
	"Editor",
	"Writer",
	"Author",
	"Reporter",
	"Photographer",
	"Musician",
	"Singer",
	"Composer",
	"Producer",
	"Announcer",
	"Dancer",
	"Choreographer",
	"Interpreter",
	"Translator",
	"Chemist",
	"Physicist",
	"Geologist",
	"Biologist",
	"Geographer",
	"Sociologist",
}

// Plural returns the mechanical plural of a role noun.
func Plural(role string) string {
	if len(role) > 0 && role[len(role)-1] == 'y' {
		return role[:len(role)-1] + "ies"
	}
	return role + "s"
}
