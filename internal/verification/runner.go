package verification

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/application-verifier/internal/config"
	"github.com/jonathan/application-verifier/internal/nlp"
	"github.com/jonathan/application-verifier/internal/profile"
	"github.com/jonathan/application-verifier/internal/similarity"
	"github.com/jonathan/application-verifier/internal/types"
)

// Severity weights for the quality score: 100 − 15·HIGH − 5·MEDIUM − 1·LOW,
// floored at zero.
const (
	highPenalty   = 15
	mediumPenalty = 5
	lowPenalty    = 1
)

// Runner orchestrates the checkers into per-document-type pipelines. Every
// pipeline is linear and synchronous; issue order always follows pipeline
// declaration order.
type Runner struct {
	index      *profile.Index
	extractor  *ClaimExtractor
	mapper     *SourceMapper
	numbers    *NumberChecker
	blacklist  *BlacklistScanner
	structural *StructuralDetector
	skills     *SkillLevelChecker
}

// NewRunner wires the pipeline over a session index. The scorer and tagger
// are injected so callers control the similarity algorithm and POS model.
func NewRunner(index *profile.Index, cfg config.Config, bl *config.Blacklist, scorer similarity.Scorer, tagger nlp.Tagger) *Runner {
	return &Runner{
		index:      index,
		extractor:  NewClaimExtractor(),
		mapper:     NewSourceMapper(index, scorer, cfg.ResumeMatchThreshold, cfg.CoverLetterMatchThreshold),
		numbers:    NewNumberChecker(index),
		blacklist:  NewBlacklistScanner(bl),
		structural: NewStructuralDetector(cfg, tagger),
		skills:     NewSkillLevelChecker(index),
	}
}

// VerifyResume runs the full resume pipeline: claim mapping, number
// verification, blacklist scan, structural detection (including parallel
// bullets), and skill-level checking.
func (r *Runner) VerifyResume(content string, claimedIDs []string) *types.VerificationResult {
	var issues []types.Issue

	claims := r.extractor.ExtractFromResume(content)
	sourceMap := r.mapper.MapClaims(claims, claimedIDs, ContentResume)
	issues = append(issues, unmatchedIssues(sourceMap)...)

	issues = append(issues, r.numbers.Check(content)...)
	issues = append(issues, r.blacklist.Check(content)...)
	issues = append(issues, r.structural.Check(content, ContentResume)...)
	issues = append(issues, r.skills.Check(content)...)

	return aggregate(issues, sourceMap)
}

// VerifyCoverLetter runs the cover-letter pipeline. Company facts sourced
// from the job posting must appear literally in jobText or they are flagged.
// The structural check runs in cover-letter mode (no parallel bullets).
func (r *Runner) VerifyCoverLetter(content string, claimedIDs []string, companyFacts []types.CompanyFact, jobText string) *types.VerificationResult {
	var issues []types.Issue

	claims := r.extractor.ExtractFromCoverLetter(content)
	sourceMap := r.mapper.MapClaims(claims, claimedIDs, ContentCoverLetter)
	issues = append(issues, unmatchedIssues(sourceMap)...)

	jobLower := strings.ToLower(jobText)
	for _, fact := range companyFacts {
		if fact.Source != types.FactSourceJobPosting || fact.SourceText == "" {
			continue
		}
		if !strings.Contains(jobLower, strings.ToLower(fact.SourceText)) {
			issues = append(issues, types.Issue{
				Type:     types.IssueUnverifiedCompanyFact,
				Severity: types.SeverityHigh,
				Message:  fmt.Sprintf("Company claim not in posting: '%s'", truncate(fact.Claim, 80)),
			})
		}
	}

	issues = append(issues, r.numbers.Check(content)...)
	issues = append(issues, r.blacklist.Check(content)...)
	issues = append(issues, r.structural.Check(content, ContentCoverLetter)...)
	issues = append(issues, r.skills.Check(content)...)

	return aggregate(issues, sourceMap)
}

// VerifyAppQuestions runs the simplified pipeline for application-question
// answers: blacklist scan per answer (annotated with its question), and
// grounding for profile-derived answers at MEDIUM severity. No number or
// structural checks apply to this document type.
func (r *Runner) VerifyAppQuestions(answers []types.AppAnswer) *types.VerificationResult {
	var issues []types.Issue

	for _, answer := range answers {
		question := answer.QuestionText
		if question == "" {
			question = "?"
		}

		for _, issue := range r.blacklist.Check(answer.Answer) {
			issue.Context = fmt.Sprintf("Question: %s", question)
			issues = append(issues, issue)
		}

		if answer.Source != types.AnswerSourceProfileDerived {
			continue
		}
		claims := r.extractor.ExtractFromCoverLetter(answer.Answer)
		if len(claims) == 0 {
			continue
		}
		for _, mapped := range r.mapper.MapClaims(claims, nil, ContentCoverLetter) {
			if mapped.Status != types.StatusUnmatched {
				continue
			}
			issues = append(issues, types.Issue{
				Type:     types.IssueUngroundedAppAnswer,
				Severity: types.SeverityMedium,
				Message: fmt.Sprintf("Answer to '%s' claims profile-derived but unmatched: '%s'",
					question, truncate(mapped.Claim.Text, 60)),
			})
		}
	}

	return aggregate(issues, nil)
}

// unmatchedIssues collects the UNGROUNDED_CLAIM issues from a source map in
// claim order.
func unmatchedIssues(sourceMap []types.MappedClaim) []types.Issue {
	var issues []types.Issue
	for _, mapped := range sourceMap {
		if mapped.Status == types.StatusUnmatched && mapped.Issue != nil {
			issues = append(issues, *mapped.Issue)
		}
	}
	return issues
}

// aggregate computes the verdict, counts, and quality score. FAIL iff any
// issue is HIGH.
func aggregate(issues []types.Issue, sourceMap []types.MappedClaim) *types.VerificationResult {
	result := &types.VerificationResult{
		ReportID:  uuid.NewString(),
		Status:    types.StatusPass,
		Issues:    issues,
		SourceMap: sourceMap,
	}

	for _, issue := range issues {
		switch issue.Severity {
		case types.SeverityHigh:
			result.HighCount++
		case types.SeverityMedium:
			result.MediumCount++
		case types.SeverityLow:
			result.LowCount++
		}
	}

	if result.HighCount > 0 {
		result.Status = types.StatusFail
	}

	score := 100 - highPenalty*result.HighCount - mediumPenalty*result.MediumCount - lowPenalty*result.LowCount
	if score < 0 {
		score = 0
	}
	result.QualityScore = score

	return result
}
