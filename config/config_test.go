package config_test

import (
	"testing"
	"time"

	"tracker/config"
)

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		config       map[string]string
		key          string
		defaultValue string
		want         string
	}{
		{
			name:         "key present",
			config:       map[string]string{"PORT": "9090"},
			key:          "PORT",
			defaultValue: "8080",
			want:         "9090",
		},
		{
			name:         "key absent",
			config:       map[string]string{},
			key:          "PORT",
			defaultValue: "8080",
			want:         "8080",
		},
		{
			name:         "nil config",
			config:       nil,
			key:          "PORT",
			defaultValue: "8080",
			want:         "8080",
		},
		{
			name:         "empty value wins over default",
			config:       map[string]string{"PORT": ""},
			key:          "PORT",
			defaultValue: "8080",
			want:         "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.GetString(tt.config, tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("GetString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		config       map[string]string
		key          string
		defaultValue int
		want         int
	}{
		{
			name:         "valid integer",
			config:       map[string]string{"TIMEOUT": "30"},
			key:          "TIMEOUT",
			defaultValue: 180,
			want:         30,
		},
		{
			name:         "not an integer",
			config:       map[string]string{"TIMEOUT": "soon"},
			key:          "TIMEOUT",
			defaultValue: 180,
			want:         180,
		},
		{
			name:         "key absent",
			config:       map[string]string{},
			key:          "TIMEOUT",
			defaultValue: 180,
			want:         180,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.GetInt(tt.config, tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("GetInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetDuration(t *testing.T) {
	tests := []struct {
		name         string
		config       map[string]string
		key          string
		defaultValue time.Duration
		want         time.Duration
	}{
		{
			name:         "seconds value",
			config:       map[string]string{"TTL_SECONDS": "90"},
			key:          "TTL_SECONDS",
			defaultValue: time.Hour,
			want:         90 * time.Second,
		},
		{
			name:         "zero is a valid duration",
			config:       map[string]string{"TTL_SECONDS": "0"},
			key:          "TTL_SECONDS",
			defaultValue: time.Hour,
			want:         0,
		},
		{
			name:         "key absent",
			config:       map[string]string{},
			key:          "TTL_SECONDS",
			defaultValue: time.Hour,
			want:         time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.GetDuration(tt.config, tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("GetDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetBool(t *testing.T) {
	if got := config.GetBool(map[string]string{"DEBUG": "true"}, "DEBUG", false); !got {
		t.Error("GetBool() = false, want true")
	}
	if got := config.GetBool(map[string]string{"DEBUG": "nope"}, "DEBUG", true); !got {
		t.Error("GetBool() with invalid value should fall back to default")
	}
	if got := config.GetBool(nil, "DEBUG", false); got {
		t.Error("GetBool() with nil config should fall back to default")
	}
}
