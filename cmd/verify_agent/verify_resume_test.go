package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProfileJSON = `{
	"experience": [{
		"id": "exp1",
		"title": "Senior Data Scientist",
		"organization": "Acme Analytics",
		"accomplishments": ["Reduced forecast error by 23% across 4 regions"]
	}],
	"skills": {"programming": {"expert": ["Python"], "familiar": ["Julia"]}}
}`

func writeTestProfile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(testProfileJSON), 0644))
	return path
}

func TestVerifyResumeCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing --profile flag",
			args:        []string{"verify-resume", "--in", "/tmp/resume.txt"},
			errorString: "required",
		},
		{
			name:        "Missing --in flag",
			args:        []string{"verify-resume", "--profile", "/tmp/profile.json"},
			errorString: "required",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestVerifyResumeCommand_CleanResume(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	profilePath := writeTestProfile(t, tmpDir)
	resumePath := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte(
		"# Experience\nAcme Analytics | Senior Data Scientist\n- Reduced forecast error by 23% across 4 regions\n"), 0644))
	outPath := filepath.Join(tmpDir, "result.json")

	cmd := exec.Command(binaryPath, "verify-resume",
		"--profile", profilePath, "--in", resumePath, "--out", outPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "PASS", result["status"])
	assert.Equal(t, float64(100), result["quality_score"])
}

func TestVerifyResumeCommand_FailingResumeExitsNonZero(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	profilePath := writeTestProfile(t, tmpDir)
	resumePath := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte(
		"# Experience\n- Single-handedly terraformed Mars for 900 colonists\n"), 0644))
	outPath := filepath.Join(tmpDir, "result.json")

	cmd := exec.Command(binaryPath, "verify-resume",
		"--profile", profilePath, "--in", resumePath, "--out", outPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "verification failed")

	data, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "FAIL", result["status"])
}

func TestVerifyResumeCommand_BatchOutDir(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	profilePath := writeTestProfile(t, tmpDir)
	first := filepath.Join(tmpDir, "a.txt")
	second := filepath.Join(tmpDir, "b.txt")
	content := "# Experience\n- Reduced forecast error by 23% across 4 regions\n"
	require.NoError(t, os.WriteFile(first, []byte(content), 0644))
	require.NoError(t, os.WriteFile(second, []byte(content), 0644))

	cmd := exec.Command(binaryPath, "verify-resume",
		"--profile", profilePath, "--in", first, "--in", second, "--out-dir", tmpDir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	assert.FileExists(t, filepath.Join(tmpDir, "a.result.json"))
	assert.FileExists(t, filepath.Join(tmpDir, "b.result.json"))
}

func TestResultPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "resume.result.json"), resultPath("out", "/inputs/resume.txt"))
	assert.Equal(t, filepath.Join("out", "draft.result.json"), resultPath("out", "draft.md"))
}
