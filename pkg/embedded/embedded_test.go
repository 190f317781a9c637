package embedded

import (
	"testing"
	"testing/fstest"
)

func withFS(t *testing.T, files fstest.MapFS) {
	t.Helper()
	Init(files)
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	withFS(t, fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时读取
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	if _, err := ReadFile("data/scene.yaml"); err == nil {
		t.Error("Expected error when not initialized")
	}
	if Exists("data/scene.yaml") {
		t.Error("Exists should be false when not initialized")
	}
}

func TestReadFile(t *testing.T) {
	withFS(t, fstest.MapFS{
		"data/scene.yaml": {Data: []byte("window:\n  width: 1200\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain path", "data/scene.yaml", false},
		{"dot prefix", "./data/scene.yaml", false},
		{"missing file", "data/missing.yaml", true},
		{"bad prefix", "assets/scene.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Error("Expected file content")
			}
			if got := Exists(tt.path); got == tt.wantErr {
				t.Errorf("Exists(%q) = %v, expected %v", tt.path, got, !tt.wantErr)
			}
		})
	}
}
