package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/wricardo/ludo-race-game/game/engine"
)

func createValidConfig() *engine.GameConfig {
	config := &engine.GameConfig{
		Name:           "Test Config",
		Description:    "Test configuration",
		AutoMoveSingle: true,
		SafeCellOffset: 8,
	}
	config.Messages.Welcome = "Welcome! %s rolls first."
	return config
}

func writeConfigFile(t *testing.T, dir, name string, config *engine.GameConfig) {
	t.Helper()
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".json"), data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

// count returns the number of cached configs.
func (m *Manager) count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.configs)
}

func TestNewManager(t *testing.T) {
	t.Run("prefers classic", func(t *testing.T) {
		dir := t.TempDir()
		other := createValidConfig()
		other.Name = "Another"
		writeConfigFile(t, dir, "another", other)
		classic := createValidConfig()
		classic.Name = "Classic"
		writeConfigFile(t, dir, "classic", classic)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager.GetDefault().Name != "Classic" {
			t.Errorf("Expected classic default, got %s", manager.GetDefault().Name)
		}
	})

	t.Run("falls back to first config", func(t *testing.T) {
		dir := t.TempDir()
		other := createValidConfig()
		other.Name = "Another"
		writeConfigFile(t, dir, "another", other)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager.GetDefault().Name != "Another" {
			t.Errorf("Expected Another, got %s", manager.GetDefault().Name)
		}
	})

	t.Run("non-existent directory", func(t *testing.T) {
		if _, err := NewManager("/non/existent/path"); err == nil {
			t.Error("Expected error for non-existent directory")
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		manager, err := NewManager(t.TempDir())
		if err != nil {
			t.Fatalf("NewManager should succeed without config files, got error: %v", err)
		}
		def := manager.GetDefault()
		if def == nil || def.Name != "classic" {
			t.Errorf("Expected built-in classic default, got %+v", def)
		}
	})
}

func TestManager_LoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "classic", createValidConfig())
	os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{nope"), 0644)
	invalid := createValidConfig()
	invalid.SafeCellOffset = 30
	writeConfigFile(t, dir, "invalid", invalid)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	tests := []struct {
		name    string
		config  string
		wantErr error
	}{
		{"by name", "classic", nil},
		{"with extension", "classic.json", nil},
		{"missing", "nothing", ErrConfigNotFound},
		{"path traversal", "../classic", ErrConfigNotFound},
		{"empty", "", ErrConfigNotFound},
		{"unparseable", "broken", ErrInvalidConfig},
		{"fails validation", "invalid", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := manager.LoadConfig(tt.config)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig returned error: %v", err)
			}
			if config.Messages.Rolled != engine.DefaultRolledMessage {
				t.Errorf("Expected message defaults applied, got %q", config.Messages.Rolled)
			}
		})
	}
}

func TestManager_ListConfigs(t *testing.T) {
	dir := t.TempDir()
	entry := createValidConfig()
	entry.Name = "Entry Safe"
	entry.SafeCellOffset = 0
	writeConfigFile(t, dir, "entry_safe", entry)
	writeConfigFile(t, dir, "classic", createValidConfig())
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644)
	os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644)
	os.Mkdir(filepath.Join(dir, "nested.json"), 0755)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("ListConfigs returned error: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("Expected 2 configs, got %d", len(configs))
	}
	if configs[0].ConfigID != "classic" || configs[1].ConfigID != "entry_safe" {
		t.Errorf("Expected sorted IDs, got %s, %s", configs[0].ConfigID, configs[1].ConfigID)
	}

	info := configs[1]
	if info.Filename != "entry_safe.json" || info.Name != "Entry Safe" || info.SafeCellOffset != 0 {
		t.Errorf("Unexpected info %+v", info)
	}
	if len(info.SafeCells) != 4 || info.SafeCells[0] != "r1" {
		t.Errorf("Expected entry cells safe, got %v", info.SafeCells)
	}
}

func TestManager_SaveConfig(t *testing.T) {
	dir := t.TempDir()
	manager, _ := NewManager(dir)

	config := createValidConfig()
	config.Name = "Saved"
	if err := manager.SaveConfig("saved", config); err != nil {
		t.Fatalf("SaveConfig returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "saved.json")); err != nil {
		t.Fatalf("Expected file on disk: %v", err)
	}

	loaded, err := manager.LoadConfig("saved")
	if err != nil || loaded.Name != "Saved" {
		t.Fatalf("Expected saved config, got %+v (%v)", loaded, err)
	}

	bad := createValidConfig()
	bad.Description = ""
	if err := manager.SaveConfig("bad", bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if err := manager.SaveConfig("../escape", config); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for bad name, got %v", err)
	}
}

func TestManager_SetDefaultAndRefresh(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "classic", createValidConfig())
	alt := createValidConfig()
	alt.Name = "Alt"
	writeConfigFile(t, dir, "alt", alt)

	manager, _ := NewManager(dir)
	if err := manager.SetDefault("alt"); err != nil {
		t.Fatalf("SetDefault returned error: %v", err)
	}
	if manager.GetDefault().Name != "Alt" {
		t.Errorf("Expected Alt default, got %s", manager.GetDefault().Name)
	}
	if err := manager.SetDefault("missing"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}

	// Edit classic on disk; a refresh drops the cached copy.
	updated := createValidConfig()
	updated.Name = "Classic v2"
	writeConfigFile(t, dir, "classic", updated)

	manager.RefreshCache()
	if manager.GetDefault().Name != "Classic v2" {
		t.Errorf("Expected refreshed classic default, got %s", manager.GetDefault().Name)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 5; i++ {
		config := createValidConfig()
		config.Name = "Config" + string(rune('0'+i))
		writeConfigFile(t, dir, "config"+string(rune('0'+i)), config)
	}

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if _, err := manager.LoadConfig("config" + string(rune('0'+((id%5)+1)))); err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Unexpected error during concurrent access: %v", err)
	}
	if manager.count() != 5 {
		t.Errorf("Expected 5 configs in cache, got %d", manager.count())
	}
}

func TestRepositoryConfigs(t *testing.T) {
	manager, err := NewManager(filepath.Join("..", "..", "configs"))
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("ListConfigs returned error: %v", err)
	}
	want := map[string]bool{"classic": false, "entry_safe": false, "manual_choice": false}
	for _, c := range configs {
		if _, ok := want[c.ConfigID]; ok {
			want[c.ConfigID] = true
		}
	}
	for id, found := range want {
		if !found {
			t.Errorf("Expected shipped config %s", id)
		}
	}
	if manager.GetDefault().Name != "classic" {
		t.Errorf("Expected classic default, got %s", manager.GetDefault().Name)
	}
}
