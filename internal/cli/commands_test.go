package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentdesk/recruitsync/internal/config"
	"github.com/talentdesk/recruitsync/pkg/recruit"
)

func TestSyncCmd_ArgsValidation_TooMany(t *testing.T) {
	err := syncCmd.Args(syncCmd, []string{"a.csv", "b.csv"})
	require.Error(t, err)
	assert.Equal(t, recruit.ExitUsageError, recruit.ExitCodeForError(err))
}

func TestSyncCmd_ArgsValidation_Optional(t *testing.T) {
	assert.NoError(t, syncCmd.Args(syncCmd, nil))
	assert.NoError(t, syncCmd.Args(syncCmd, []string{"a.csv"}))
}

func TestReportCmd_RejectsArgs(t *testing.T) {
	err := reportCmd.Args(reportCmd, []string{"extra"})
	require.Error(t, err)
	assert.Equal(t, recruit.ExitUsageError, recruit.ExitCodeForError(err))
}

func TestResolveCandidatesPath(t *testing.T) {
	withFile := &config.ProjectConfig{CandidatesFile: "exports/today.csv"}

	tests := []struct {
		name       string
		args       []string
		projectCfg *config.ProjectConfig
		want       string
	}{
		{"argument wins", []string{"given.csv"}, withFile, "given.csv"},
		{"yaml when no argument", nil, withFile, "exports/today.csv"},
		{"default without yaml", nil, nil, recruit.DefaultCandidatesFile},
		{"default when yaml leaves it empty", nil, &config.ProjectConfig{}, recruit.DefaultCandidatesFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveCandidatesPath(tt.args, tt.projectCfg))
		})
	}
}

func TestWriteNormalized(t *testing.T) {
	phone := "(555) 123-4567"
	email := "  John@Example.COM "

	var buf bytes.Buffer
	require.NoError(t, writeNormalized(&buf, &phone, &email))
	assert.Equal(t, "5551234567\njohn@example.com\n", buf.String())

	buf.Reset()
	require.NoError(t, writeNormalized(&buf, nil, &email))
	assert.Equal(t, "john@example.com\n", buf.String())
}

func TestWriteNormalized_NothingGiven(t *testing.T) {
	err := writeNormalized(&bytes.Buffer{}, nil, nil)
	require.Error(t, err)
	assert.Equal(t, recruit.ExitUsageError, recruit.ExitCodeForError(err))
}

func TestIsStyledOutput_Buffer(t *testing.T) {
	assert.False(t, isStyledOutput(&bytes.Buffer{}))
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"sync", "report", "normalize", "version"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}
