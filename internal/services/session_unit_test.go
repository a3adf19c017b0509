package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/talentdesk/recruitsync/pkg/recruit"
)

func TestNewSessionManager_NilDeps(t *testing.T) {
	connFactory := func(_ *recruit.ConnectionConfig) (recruit.Connector, error) {
		return &mockConnector{}, nil
	}

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil connectorFactory", func() { NewSessionManager(nil, &mockLogger{}) }},
		{"nil logger", func() { NewSessionManager(connFactory, nil) }},
		{"nil sessions for synchronizer", func() { NewCandidateSynchronizer(nil, &mockLogger{}) }},
		{"nil logger for synchronizer", func() {
			NewCandidateSynchronizer(NewSessionManager(connFactory, &mockLogger{}), nil)
		}},
		{"nil sessions for report", func() { NewReportService(nil, &mockLogger{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestOpen_ConnectorFactoryFails(t *testing.T) {
	connFactory := func(_ *recruit.ConnectionConfig) (recruit.Connector, error) {
		return nil, fmt.Errorf("bad config: %w", recruit.ErrInvalidConfig)
	}
	sm := NewSessionManager(connFactory, &mockLogger{})

	_, err := sm.Open(context.Background(), &recruit.ConnectionConfig{}, uuid.New())
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "failed to create connector") {
		t.Errorf("Expected 'failed to create connector' in error, got: %v", err)
	}
	if recruit.ExitCodeForError(err) != recruit.ExitConfigError {
		t.Errorf("Expected config exit code, got %d", recruit.ExitCodeForError(err))
	}
}

func TestOpen_ConnectFails(t *testing.T) {
	connFactory := func(_ *recruit.ConnectionConfig) (recruit.Connector, error) {
		return &mockConnector{err: fmt.Errorf("refused: %w", recruit.ErrConnectionFailed)}, nil
	}
	sm := NewSessionManager(connFactory, &mockLogger{})

	_, err := sm.Open(context.Background(), &recruit.ConnectionConfig{Database: "recruitment"}, uuid.New())
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), `"recruitment"`) {
		t.Errorf("Expected database name in error, got: %v", err)
	}
	if recruit.ExitCodeForError(err) != recruit.ExitConnectionError {
		t.Errorf("Expected connection exit code, got %d", recruit.ExitCodeForError(err))
	}
}

func TestSync_MissingFileFailsBeforeConnecting(t *testing.T) {
	called := false
	connFactory := func(_ *recruit.ConnectionConfig) (recruit.Connector, error) {
		called = true
		return &mockConnector{}, nil
	}
	sync := NewCandidateSynchronizer(NewSessionManager(connFactory, &mockLogger{}), &mockLogger{})

	_, err := sync.Sync(context.Background(), &recruit.ConnectionConfig{}, "/does/not/exist.csv", recruit.SyncOptions{})
	if err == nil {
		t.Fatal("Expected error")
	}
	if recruit.ExitCodeForError(err) != recruit.ExitInputError {
		t.Errorf("Expected input exit code, got %d: %v", recruit.ExitCodeForError(err), err)
	}
	if called {
		t.Error("connector factory must not be called for a missing file")
	}
}
