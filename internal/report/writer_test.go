package report

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentdesk/recruitsync/pkg/recruit"
)

func TestWrite_Plain(t *testing.T) {
	counts := []recruit.JobApplicationCount{
		{JobID: "1", Title: "Engineer", Applications: 0},
		{JobID: "2", Title: "Designer", Applications: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, counts, false))

	assert.Equal(t, "Engineer: 0 applications\nDesigner: 2 applications\n", buf.String())
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, false))
	assert.Empty(t, buf.String())
}

func TestWrite_StyledKeepsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []recruit.JobApplicationCount{{JobID: "1", Title: "Engineer", Applications: 3}}, true))

	assert.Contains(t, buf.String(), "Engineer")
	assert.Contains(t, buf.String(), "3 applications")
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	err := Write(failingWriter{}, []recruit.JobApplicationCount{{Title: "Engineer"}}, false)
	assert.ErrorContains(t, err, "broken pipe")
}

func TestStyleEnabled_EnvOverrides(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"plain override", "RECRUITSYNC_PLAIN", "1"},
		{"CI", "CI", "true"},
		{"NO_COLOR", "NO_COLOR", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			assert.False(t, StyleEnabled(os.Stdout))
		})
	}
}

func TestStyleEnabled_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "report")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, StyleEnabled(f))
}
