package types

// ClaimType classifies an extracted claim unit.
type ClaimType string

// Claim unit types produced by the extractor.
const (
	ClaimBullet     ClaimType = "bullet"
	ClaimStructural ClaimType = "structural"
	ClaimContent    ClaimType = "content"
	ClaimSentence   ClaimType = "sentence"
)

// Claim is an atomic, independently verifiable fragment of generated text.
// Resume claims carry LineNumber and Section; cover-letter claims carry
// SentenceIndex. Claims are never mutated after extraction.
type Claim struct {
	Text          string    `json:"text"`
	Type          ClaimType `json:"type"`
	LineNumber    int       `json:"line_number,omitempty"`
	Section       string    `json:"section,omitempty"`
	SentenceIndex int       `json:"sentence_index,omitempty"`
}

// Match records the best-matching profile entry found for a claim.
// Score is a normalized similarity in [0,1]; 1.0 means identical after
// normalization. EntryID is empty when nothing in the profile scored above zero.
type Match struct {
	EntryID      string  `json:"entry_id,omitempty"`
	Score        float64 `json:"score"`
	MatchedField string  `json:"matched_field,omitempty"`
	MatchedText  string  `json:"matched_text,omitempty"`
}

// MatchStatus is the outcome of mapping one claim against the profile.
type MatchStatus string

// Match statuses assigned by the source mapper.
const (
	StatusMatched             MatchStatus = "matched"
	StatusUnmatched           MatchStatus = "unmatched"
	StatusStructural          MatchStatus = "structural"
	StatusCompanyClaimSkipped MatchStatus = "company_claim_skipped"
)

// MappedClaim is one entry in the source map: the claim, its best match (nil
// for skipped company claims), its status, and the issue raised when unmatched.
type MappedClaim struct {
	Claim  Claim       `json:"claim"`
	Match  *Match      `json:"match,omitempty"`
	Status MatchStatus `json:"status"`
	Issue  *Issue      `json:"issue,omitempty"`
}
