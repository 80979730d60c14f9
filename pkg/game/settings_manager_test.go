package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 在临时 HOME 下创建 gdata manager
func createTestGdataManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.6 {
		t.Errorf("SoundVolume: got %v, want 0.6", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
	if settings.SoundVolume != 0.6 {
		t.Errorf("Degraded mode SoundVolume: got %v, want 0.6", settings.SoundVolume)
	}

	// 降级模式下保存不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := createTestGdataManager(t, "xmasreel_test_settings")

	sm1 := NewSettingsManager(gdataManager)
	sm1.SetSoundVolume(0.25)
	sm1.SetSoundEnabled(false)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)
	settings := sm2.GetSettings()

	if settings.SoundVolume != 0.25 {
		t.Errorf("Loaded SoundVolume: got %v, want 0.25", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestSettingsLoadCorrupted 数据损坏时回退默认值
func TestSettingsLoadCorrupted(t *testing.T) {
	gdataManager := createTestGdataManager(t, "xmasreel_test_corrupted")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	sm := NewSettingsManager(gdataManager)
	if sm.GetSettings().SoundVolume != DefaultSettings().SoundVolume {
		t.Errorf("Expected default volume after corrupted load, got %v", sm.GetSettings().SoundVolume)
	}

	if err := sm.Load(); err == nil {
		t.Error("Load() should report the unmarshal error")
	}
}

// TestSetSoundVolumeClamp 测试 SetSoundVolume 范围校验
func TestSetSoundVolumeClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},  // 正常值
		{0.0, 0.0},  // 下限
		{1.0, 1.0},  // 上限
		{-0.5, 0.0}, // 低于下限
		{1.5, 1.0},  // 高于上限
	}

	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if sm.GetSettings().SoundVolume != tt.expected {
			t.Errorf("SetSoundVolume(%v): got %v, want %v",
				tt.input, sm.GetSettings().SoundVolume, tt.expected)
		}
	}
}

// TestToggleSound 测试音效开关切换
func TestToggleSound(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.ToggleSound() {
		t.Error("First toggle should disable sound")
	}
	if !sm.ToggleSound() {
		t.Error("Second toggle should enable sound")
	}
}
