package logging

import "testing"

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	if err := InitializeFromEnv(); err != nil {
		t.Fatal(err)
	}
	if GetLogger().Core().Enabled(-1) {
		t.Error("logger should be silent when the level is unset")
	}
}

func TestInitializeLevels(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"INFO", false},
		{"warn", false},
		{"warning", false},
		{"error", false},
		{"verbose", true},
	}
	for _, tt := range tests {
		err := Initialize(tt.level)
		if (err != nil) != tt.wantErr {
			t.Errorf("Initialize(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
		}
	}
}

func TestInitializeFromEnvDebug(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "debug")
	if err := InitializeFromEnv(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { logger = nil })

	if !GetLogger().Core().Enabled(-1) {
		t.Error("debug level should be enabled")
	}
}
