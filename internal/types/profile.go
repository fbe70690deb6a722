// Package types provides type definitions for structured data used throughout the application-verifier system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile is the structured candidate profile every document is verified against.
// It is loaded once per verification session and treated as immutable.
type Profile struct {
	Experience      []ExperienceEntry `json:"experience,omitempty"`
	Education       []EducationEntry  `json:"education,omitempty"`
	Publications    []Publication     `json:"publications,omitempty"`
	Presentations   []Presentation    `json:"presentations,omitempty"`
	Skills          SkillSet          `json:"skills,omitempty"`
	ApprovedAnswers []ApprovedAnswer  `json:"approved_answers,omitempty"`
}

// ExperienceEntry is a single position in the candidate's work history.
type ExperienceEntry struct {
	ID               string   `json:"id"`
	Title            string   `json:"title,omitempty"`
	Organization     string   `json:"organization,omitempty"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Accomplishments  []string `json:"accomplishments,omitempty"`
	ToolsUsed        []string `json:"tools_used,omitempty"`
	Keywords         []string `json:"keywords,omitempty"`
}

// EducationEntry is a degree or certification.
type EducationEntry struct {
	ID            string `json:"id"`
	Degree        string `json:"degree,omitempty"`
	Field         string `json:"field,omitempty"`
	Institution   string `json:"institution,omitempty"`
	YearCompleted int    `json:"year_completed,omitempty"`
}

// Publication is a published work attributed to the candidate.
type Publication struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Venue string `json:"venue,omitempty"`
	Year  int    `json:"year,omitempty"`
}

// Presentation is a talk or poster given by the candidate.
type Presentation struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Venue string `json:"venue,omitempty"`
	Date  string `json:"date,omitempty"`
}

// SkillSet groups the candidate's skills. Programming skills are tiered by
// proficiency level (expert/proficient/familiar → skill names); the remaining
// categories are flat lists with no declared level.
type SkillSet struct {
	Programming        map[string][]string `json:"programming,omitempty"`
	StatisticalMethods []string            `json:"statistical_methods,omitempty"`
	DomainExpertise    []string            `json:"domain_expertise,omitempty"`
	ToolsAndPlatforms  []string            `json:"tools_and_platforms,omitempty"`
	SoftSkills         []string            `json:"soft_skills,omitempty"`
}

// ApprovedAnswer is a pre-approved application-question answer.
type ApprovedAnswer struct {
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
}
