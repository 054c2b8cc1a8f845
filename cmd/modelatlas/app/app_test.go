package app

import (
	"sync"
	"testing"
)

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

// TestApp_Atlas_Singleton verifies that Atlas() returns the same instance.
func TestApp_Atlas_Singleton(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	a1, err := app.Atlas()
	if err != nil {
		t.Fatalf("Atlas() failed: %v", err)
	}

	a2, err := app.Atlas()
	if err != nil {
		t.Fatalf("Atlas() failed on second call: %v", err)
	}

	if a1 != a2 {
		t.Error("Atlas() returned different instances")
	}
}

// TestApp_Atlas_Concurrent verifies lazy initialization is safe under
// concurrent access.
func TestApp_Atlas_Concurrent(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := app.Atlas(); err != nil {
				t.Errorf("Atlas() failed: %v", err)
			}
		}()
	}
	wg.Wait()
}
