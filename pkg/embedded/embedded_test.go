package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func withFS(t *testing.T, fsys fstest.MapFS) {
	t.Helper()
	Init(fsys)
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

func TestInit(t *testing.T) {
	Init(nil)
	if Exists("data/fireworks.yaml") {
		t.Error("Exists() = true before Init()")
	}

	withFS(t, fstest.MapFS{"data/fireworks.yaml": {Data: []byte("window: {}\n")}})
	if !Exists("data/fireworks.yaml") {
		t.Error("Exists() = false after Init()")
	}
}

func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	_, err := ReadFile("data/fireworks.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, want ErrNotInitialized", err)
	}
}

func TestReadFile(t *testing.T) {
	withFS(t, fstest.MapFS{
		"data/fireworks.yaml": {Data: []byte("window:\n  width: 640\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/fireworks.yaml", false},
		{"带 ./ 前缀", "./data/fireworks.yaml", false},
		{"未知前缀", "assets/fireworks.yaml", true},
		{"文件不存在", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Error("ReadFile() returned empty content")
			}
		})
	}
}

func TestExists(t *testing.T) {
	withFS(t, fstest.MapFS{
		"data/fireworks.yaml": {Data: []byte("{}")},
	})

	if !Exists("data/fireworks.yaml") {
		t.Error("Exists() = false for embedded file")
	}
	if Exists("data/other.yaml") {
		t.Error("Exists() = true for missing file")
	}
	if Exists("fireworks.yaml") {
		t.Error("Exists() = true for path without data/ prefix")
	}
}
