package types

// Answer sources recognized by the application-question pipeline.
const (
	AnswerSourceProfileDerived = "profile_derived"
	AnswerSourceApproved       = "approved"
)

// AppAnswer is one drafted application-question answer handed over for
// verification. Source records where the drafting agent claims the content
// came from; only profile_derived answers are grounded against the profile.
type AppAnswer struct {
	QuestionText string `json:"question_text"`
	Answer       string `json:"answer"`
	Source       string `json:"source,omitempty"`
}

// CompanyFact is a company-specific assertion the drafting agent placed in a
// cover letter, with the source text it says supports it. Facts sourced from
// the job posting are verified literally against the posting text.
type CompanyFact struct {
	Claim      string `json:"claim"`
	Source     string `json:"source,omitempty"`
	SourceText string `json:"source_text,omitempty"`
}

// FactSourceJobPosting marks a company fact as drawn from the job posting.
const FactSourceJobPosting = "job_posting"
