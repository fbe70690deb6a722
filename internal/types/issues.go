package types

// Severity ranks how damaging a finding is. Any HIGH issue fails the document.
type Severity string

// Issue severities.
const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// IssueType is the closed set of finding kinds the engine can emit.
type IssueType string

// Issue types.
const (
	IssueUngroundedClaim       IssueType = "UNGROUNDED_CLAIM"
	IssueUnverifiedMetric      IssueType = "UNVERIFIED_METRIC"
	IssueAIPhrase              IssueType = "AI_PHRASE"
	IssueAIVocabulary          IssueType = "AI_VOCABULARY"
	IssueParallelBullets       IssueType = "PARALLEL_BULLETS"
	IssueTricolonExcess        IssueType = "TRICOLON_EXCESS"
	IssueConnectorExcess       IssueType = "CONNECTOR_EXCESS"
	IssueParagraphBalance      IssueType = "PARAGRAPH_BALANCE"
	IssueSentenceUniformity    IssueType = "SENTENCE_UNIFORMITY"
	IssueSkillLevelOverclaim   IssueType = "SKILL_LEVEL_OVERCLAIM"
	IssueUnverifiedCompanyFact IssueType = "UNVERIFIED_COMPANY_CLAIM"
	IssueUngroundedAppAnswer   IssueType = "UNGROUNDED_APP_ANSWER"
)

// Issue is a single verification finding. Issues are findings, not errors:
// the engine never fails on malformed input, it reports what it saw.
// Kind-specific fields are optional; Type and Severity are always set.
type Issue struct {
	Type     IssueType `json:"type"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`

	// Set for UNVERIFIED_METRIC
	Number string `json:"number,omitempty"`
	// Set for AI_PHRASE and AI_VOCABULARY
	Text string `json:"text,omitempty"`
	// Set for SKILL_LEVEL_OVERCLAIM
	Skill        string `json:"skill,omitempty"`
	ClaimedLevel string `json:"claimed_level,omitempty"`
	ProfileLevel string `json:"profile_level,omitempty"`
	// Surrounding text or question annotation, where applicable
	Context string `json:"context,omitempty"`
}

// VerdictStatus is the overall pass/fail outcome for a document.
type VerdictStatus string

// Verdict statuses.
const (
	StatusPass VerdictStatus = "PASS"
	StatusFail VerdictStatus = "FAIL"
)

// VerificationResult aggregates every finding for one document. Issues keep
// pipeline declaration order so downstream consumers can report the first
// issue deterministically. SourceMap is populated for resumes and cover
// letters only.
type VerificationResult struct {
	ReportID     string        `json:"report_id"`
	Status       VerdictStatus `json:"status"`
	Issues       []Issue       `json:"issues"`
	SourceMap    []MappedClaim `json:"source_map,omitempty"`
	QualityScore int           `json:"quality_score"`
	HighCount    int           `json:"high_count"`
	MediumCount  int           `json:"medium_count"`
	LowCount     int           `json:"low_count"`
}
