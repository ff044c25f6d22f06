package domain

// Job categories.
const (
	CategoryWebDevelopment    = "web-development"
	CategoryMobileDevelopment = "mobile-development"
	CategoryDesign            = "design"
	CategoryWriting           = "writing"
	CategoryMarketing         = "marketing"
	CategoryOther             = "other"
)

// Experience levels.
const (
	ExperienceEntry        = "entry"
	ExperienceIntermediate = "intermediate"
	ExperienceExpert       = "expert"
)

// Application statuses. Pending is assigned at creation only; accepted and
// rejected are terminal.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Minimum lengths applied after trimming whitespace.
const (
	MinTitleLen       = 3
	MinDescriptionLen = 10
	MinCoverLetterLen = 10
)

// ValidCategory reports whether s is a recognized job category.
func ValidCategory(s string) bool {
	switch s {
	case CategoryWebDevelopment, CategoryMobileDevelopment, CategoryDesign,
		CategoryWriting, CategoryMarketing, CategoryOther:
		return true
	}
	return false
}

// ValidExperienceLevel reports whether s is a recognized experience level.
func ValidExperienceLevel(s string) bool {
	switch s {
	case ExperienceEntry, ExperienceIntermediate, ExperienceExpert:
		return true
	}
	return false
}

// ValidDecision reports whether s is a status a client may set on an
// application. Pending is excluded: applications only start there.
func ValidDecision(s string) bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}
