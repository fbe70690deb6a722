package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/application-verifier/internal/schemas"
)

var schemaFiles = []string{
	"profile.schema.json",
	"verification_result.schema.json",
}

func TestSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasType && hasSchema, "schema should declare $schema and type")
		})
	}
}

func TestProfileSchema_AcceptsFullProfile(t *testing.T) {
	doc := `{
		"experience": [{
			"id": "exp1",
			"title": "Senior Data Scientist",
			"organization": "Acme Analytics",
			"start_date": "2019-03",
			"end_date": "2023-06",
			"responsibilities": ["Built forecasting models"],
			"accomplishments": ["Reduced forecast error by 23%"],
			"tools_used": ["Python"]
		}],
		"education": [{"id": "edu1", "degree": "PhD", "field": "Statistics", "year_completed": 2016}],
		"publications": [{"id": "pub1", "title": "Hierarchical Forecasting at Scale", "year": 2021}],
		"presentations": [{"id": "pres1", "title": "Forecasting in Production", "date": "2022-05-10"}],
		"skills": {
			"programming": {"expert": ["Python"], "familiar": ["Julia", "R"]},
			"statistical_methods": ["Bayesian inference"]
		},
		"approved_answers": [{"question": "Why us?", "answer": "Because."}]
	}`

	assert.NoError(t, schemas.ValidateJSON("profile.schema.json", writeTempJSON(t, doc)))
}

func TestProfileSchema_RejectsEntryWithoutID(t *testing.T) {
	doc := `{"experience": [{"title": "Senior Data Scientist"}]}`

	err := schemas.ValidateJSON("profile.schema.json", writeTempJSON(t, doc))
	require.Error(t, err)

	validationErr, ok := err.(*schemas.ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestVerificationResultSchema_AcceptsResult(t *testing.T) {
	doc := `{
		"report_id": "8b2c5e47-0000-0000-0000-000000000000",
		"status": "FAIL",
		"quality_score": 85,
		"high_count": 1,
		"medium_count": 0,
		"low_count": 0,
		"issues": [{
			"type": "UNGROUNDED_CLAIM",
			"severity": "HIGH",
			"message": "Line 7: unmatched claim"
		}],
		"source_map": [{
			"claim": {"text": "Reduced forecast error", "type": "bullet", "line_number": 3},
			"match": {"entry_id": "exp1", "score": 0.97, "matched_field": "accomplishments[0]"},
			"status": "matched"
		}]
	}`

	assert.NoError(t, schemas.ValidateJSON("verification_result.schema.json", writeTempJSON(t, doc)))
}

func TestVerificationResultSchema_RejectsUnknownIssueType(t *testing.T) {
	doc := `{
		"report_id": "r1",
		"status": "PASS",
		"quality_score": 100,
		"issues": [{"type": "MADE_UP_TYPE", "severity": "HIGH", "message": "x"}]
	}`

	err := schemas.ValidateJSON("verification_result.schema.json", writeTempJSON(t, doc))
	require.Error(t, err)
}

func TestVerificationResultSchema_RejectsOutOfRangeScore(t *testing.T) {
	doc := `{"report_id": "r1", "status": "PASS", "quality_score": 140}`

	err := schemas.ValidateJSON("verification_result.schema.json", writeTempJSON(t, doc))
	require.Error(t, err)
}

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "doc-*.json")
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}
