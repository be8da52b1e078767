package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func configPath(t *testing.T) string {
	t.Helper()

	// Get the project root by going up from internal/config
	projectRoot, err := filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(configPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	// Test basic config fields
	if cfg.Title == "" {
		t.Error("Config.Title should not be empty")
	}

	if cfg.Webserver.Port == 0 {
		t.Error("Webserver.Port should not be 0")
	}

	if cfg.Webserver.URL == "" {
		t.Error("Webserver.URL should not be empty")
	}

	// Test DB config
	if cfg.DB.Host == "" {
		t.Error("DB.Host should not be empty")
	}

	if cfg.DB.GormEngine != EngineMySQL {
		t.Errorf("DB.GormEngine = %v, want %v", cfg.DB.GormEngine, EngineMySQL)
	}

	if cfg.I18n.Locale != "en" {
		t.Errorf("I18n.Locale = %v, want en", cfg.I18n.Locale)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	if _, err := ReadConfig(t.TempDir() + string(filepath.Separator)); err == nil {
		t.Error("ReadConfig() expected an error for a missing main.toml")
	}
}

func TestConfigValidation(t *testing.T) {
	validDB := DB{GormEngine: EngineSQLite, Name: "test.db"}

	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name: "valid config",
			config: Config{
				DB: validDB,
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			},
		},
		{
			name: "missing port",
			config: Config{
				DB: validDB,
				Webserver: Webserver{
					Port: 0,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: ErrWebServerPortCanNotBeZero,
		},
		{
			name: "missing URL",
			config: Config{
				DB: validDB,
				Webserver: Webserver{
					Port: 8080,
					URL:  "",
				},
			},
			wantErr: ErrEmptyURL,
		},
		{
			name: "unknown engine",
			config: Config{
				DB: DB{GormEngine: "oracle", Name: "x"},
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: ErrUnsupportedGormEngine,
		},
		{
			name: "missing db name",
			config: Config{
				DB: DB{GormEngine: EnginePostgres},
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: ErrEmptyDBName,
		},
		{
			name: "unsupported locale",
			config: Config{
				DB:   validDB,
				I18n: I18n{Locale: "de"},
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: ErrUnsupportedLocale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if tt.wantErr == nil && err != nil {
				t.Errorf("validate() unexpected error = %v", err)
			}

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		DB: DB{Name: "mycontacts"},
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	if err := validate(&cfg); err != nil {
		t.Fatalf("validate() error = %v", err)
	}

	if cfg.Webserver.ShutDownTime != defaultShutDownTime {
		t.Errorf("ShutDownTime = %v, want %v", cfg.Webserver.ShutDownTime, defaultShutDownTime)
	}

	if cfg.DB.GormEngine != EngineMySQL {
		t.Errorf("GormEngine = %v, want %v", cfg.DB.GormEngine, EngineMySQL)
	}

	if cfg.I18n.Locale != "en" {
		t.Errorf("Locale = %v, want en", cfg.I18n.Locale)
	}
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	// Set JSON override environment variable
	jsonOverride := `{"Title":"Test Override","Webserver":{"Port":9090},"I18n":{"Locale":"pl"}}`
	t.Setenv(EnvConfigJSON, jsonOverride)

	cfg, err := ReadConfig(configPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title != "Test Override" {
		t.Errorf("Title = %v, want %v", cfg.Title, "Test Override")
	}

	if cfg.Webserver.Port != 9090 {
		t.Errorf("Webserver.Port = %v, want %v", cfg.Webserver.Port, 9090)
	}

	if cfg.Webserver.URL == "" {
		t.Error("Webserver.URL from the toml file should survive the override")
	}

	if cfg.I18n.Locale != "pl" {
		t.Errorf("I18n.Locale = %v, want pl", cfg.I18n.Locale)
	}
}

func TestReadConfigWithBrokenJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":`)

	if _, err := ReadConfig(configPath(t)); err == nil {
		t.Error("ReadConfig() expected an error for invalid JSON")
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		DB:      DB{GormEngine: EngineSQLite, Name: "contacts.db"},
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	tomlStr, err := DumpConfig(&cfg)
	if err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}

	if tomlStr == "" {
		t.Error("DumpConfig() returned empty string")
	}

	// Check if output contains expected values
	if !strings.Contains(tomlStr, "Test") {
		t.Error("DumpConfig() output should contain Title")
	}

	if !strings.Contains(tomlStr, "contacts.db") {
		t.Error("DumpConfig() output should contain DB.Name")
	}
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	jsonStr, err := DumpConfigJSON(&cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	if jsonStr == "" {
		t.Error("DumpConfigJSON() returned empty string")
	}

	// Check if output is valid JSON by checking for expected fields
	if !strings.Contains(jsonStr, "Test") {
		t.Error("DumpConfigJSON() output should contain Title")
	}
}
