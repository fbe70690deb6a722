package verification

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/application-verifier/internal/config"
	"github.com/jonathan/application-verifier/internal/nlp"
	"github.com/jonathan/application-verifier/internal/types"
)

// posPatternTokens is how many leading tokens form a bullet's part-of-speech
// pattern.
const posPatternTokens = 4

var (
	bulletLinePattern = regexp.MustCompile(`^[-*•]\s+(.+)$`)
	tricolonPattern   = regexp.MustCompile(`([^,]+),\s+([^,]+),\s+and\s+([^,.]+)`)
)

// StructuralDetector finds statistical and structural fingerprints of
// unedited model output: parallel bullet runs, tricolon overuse, connector
// overuse, and abnormally uniform paragraph/sentence lengths.
type StructuralDetector struct {
	tagger        nlp.Tagger
	maxParallel   int
	maxTricolons  int
	maxConnectors int
	connectors    []string
	paragraphCV   float64
	sentenceCV    float64
	minSentences  int
}

// NewStructuralDetector builds a detector from configuration. The tagger is
// an explicit dependency so tests can supply a deterministic one.
func NewStructuralDetector(cfg config.Config, tagger nlp.Tagger) *StructuralDetector {
	connectors := make([]string, 0, len(cfg.ConnectorWords))
	for _, w := range cfg.ConnectorWords {
		connectors = append(connectors, strings.ToLower(w))
	}
	return &StructuralDetector{
		tagger:        tagger,
		maxParallel:   cfg.MaxConsecutiveParallelBullets,
		maxTricolons:  cfg.MaxTricolonLists,
		maxConnectors: cfg.MaxConnectorWords,
		connectors:    connectors,
		paragraphCV:   cfg.ParagraphBalanceCVThreshold,
		sentenceCV:    cfg.SentenceUniformityCVThreshold,
		minSentences:  cfg.MinSentencesForUniformity,
	}
}

// Check runs every structural check. The parallel-bullet check applies to
// resumes only.
func (d *StructuralDetector) Check(content string, contentType ContentType) []types.Issue {
	var issues []types.Issue
	if contentType == ContentResume {
		issues = append(issues, d.parallelBullets(content)...)
	}
	issues = append(issues, d.tricolons(content)...)
	issues = append(issues, d.connectorExcess(content)...)
	issues = append(issues, d.paragraphBalance(content)...)
	issues = append(issues, d.sentenceUniformity(content)...)
	return issues
}

// parallelBullets flags runs of consecutive bullets opening with an identical
// part-of-speech pattern. Bullets are partitioned into per-section runs
// first: a header line or any non-bullet line resets the run, so a clean run
// in one section can never combine with another.
func (d *StructuralDetector) parallelBullets(content string) []types.Issue {
	var issues []types.Issue

	var sections [][]string
	var current []string
	flush := func() {
		if len(current) > 0 {
			sections = append(sections, current)
		}
		current = nil
	}

	for _, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "#") {
			flush()
			continue
		}
		if m := bulletLinePattern.FindStringSubmatch(stripped); m != nil {
			current = append(current, m[1])
			continue
		}
		if stripped != "" {
			flush()
		}
	}
	flush()

	for _, bullets := range sections {
		if len(bullets) < 2 {
			continue
		}

		patterns := make([]string, len(bullets))
		for i, b := range bullets {
			patterns[i] = d.posPattern(b)
		}

		run := 1
		for i := 1; i < len(patterns); i++ {
			if patterns[i] != "" && patterns[i] == patterns[i-1] {
				run++
				if run > d.maxParallel {
					issues = append(issues, types.Issue{
						Type:     types.IssueParallelBullets,
						Severity: types.SeverityMedium,
						Message:  fmt.Sprintf("%d consecutive bullets with pattern %s", run, patterns[i]),
					})
				}
			} else {
				run = 1
			}
		}
	}

	return issues
}

// posPattern reduces a bullet's first tokens to a space-joined tag sequence.
// Tagging failures produce an empty pattern, which never extends a run.
func (d *StructuralDetector) posPattern(text string) string {
	tags, err := d.tagger.Tags(text)
	if err != nil || len(tags) == 0 {
		return ""
	}
	if len(tags) > posPatternTokens {
		tags = tags[:posPatternTokens]
	}
	return strings.Join(tags, " ")
}

// tricolons counts "phrase, phrase, and phrase" shapes across the document.
func (d *StructuralDetector) tricolons(content string) []types.Issue {
	count := len(tricolonPattern.FindAllString(content, -1))
	if count <= d.maxTricolons {
		return nil
	}
	return []types.Issue{{
		Type:     types.IssueTricolonExcess,
		Severity: types.SeverityLow,
		Message:  fmt.Sprintf("%d tricolon patterns (max %d)", count, d.maxTricolons),
	}}
}

// connectorExcess counts configured connector words across the document and
// flags when the total exceeds the maximum, listing every matched token.
func (d *StructuralDetector) connectorExcess(content string) []types.Issue {
	var found []string
	for _, w := range d.connectors {
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
		for range pattern.FindAllString(content, -1) {
			found = append(found, w)
		}
	}
	if len(found) <= d.maxConnectors {
		return nil
	}
	return []types.Issue{{
		Type:     types.IssueConnectorExcess,
		Severity: types.SeverityMedium,
		Message: fmt.Sprintf("%d connectors (max %d): %s",
			len(found), d.maxConnectors, strings.Join(found, ", ")),
	}}
}

// paragraphBalance flags suspiciously uniform paragraph word counts.
func (d *StructuralDetector) paragraphBalance(content string) []types.Issue {
	var lengths []int
	for _, para := range strings.Split(content, "\n\n") {
		trimmed := strings.TrimSpace(para)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lengths = append(lengths, len(strings.Fields(para)))
	}
	if len(lengths) < 3 {
		return nil
	}

	cv, ok := coefficientOfVariation(lengths)
	if !ok || cv >= d.paragraphCV {
		return nil
	}
	return []types.Issue{{
		Type:     types.IssueParagraphBalance,
		Severity: types.SeverityLow,
		Message:  fmt.Sprintf("Paragraph lengths uniform (CV=%.2f): %v", cv, lengths),
	}}
}

// sentenceUniformity flags suspiciously uniform sentence token counts.
func (d *StructuralDetector) sentenceUniformity(content string) []types.Issue {
	sentences := splitSentences(content)
	if len(sentences) < d.minSentences {
		return nil
	}

	lengths := make([]int, len(sentences))
	for i, s := range sentences {
		lengths[i] = len(strings.Fields(s))
	}

	cv, ok := coefficientOfVariation(lengths)
	if !ok || cv >= d.sentenceCV {
		return nil
	}
	return []types.Issue{{
		Type:     types.IssueSentenceUniformity,
		Severity: types.SeverityLow,
		Message:  fmt.Sprintf("Sentence lengths uniform (CV=%.2f)", cv),
	}}
}

// coefficientOfVariation returns population-stddev/mean. A zero mean reports
// ok=false so callers treat it as "no issue" rather than dividing by zero.
// Population (not sample) variance keeps results reproducible across runs.
func coefficientOfVariation(lengths []int) (float64, bool) {
	mean := 0.0
	for _, l := range lengths {
		mean += float64(l)
	}
	mean /= float64(len(lengths))
	if mean == 0 {
		return 0, false
	}

	variance := 0.0
	for _, l := range lengths {
		diff := float64(l) - mean
		variance += diff * diff
	}
	variance /= float64(len(lengths))

	return math.Sqrt(variance) / mean, true
}
