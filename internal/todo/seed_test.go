package todo

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndSave(t *testing.T) {
	for _, name := range []string{"tasks.json", "tasks.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			original := &File{
				SchemaVersion: SchemaVersion,
				Tasks: []Task{
					{ID: "a", Name: "Buy milk"},
					{ID: "b", Name: "Walk dog", Completed: true, InProgress: true},
				},
			}
			if err := original.Save(path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			loaded, err := LoadSeed(path)
			if err != nil {
				t.Fatalf("LoadSeed failed: %v", err)
			}
			if !reflect.DeepEqual(loaded, original) {
				t.Errorf("loaded: got %+v, want %+v", loaded, original)
			}
		})
	}
}

func TestSaveJSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := DefaultSeed().Save(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.HasSuffix(content, "\n") {
		t.Error("expected trailing newline")
	}
	if !strings.Contains(content, "\n  \"schema_version\": 1") {
		t.Errorf("expected 2-space indentation, got:\n%s", content)
	}
}

func TestLoadSeedBareArray(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "tasks.json", `[
  {"id": "todo-0", "name": "Eat", "completed": true},
  {"id": "todo-1", "name": "Sleep", "completed": false}
]`)
		f, err := LoadSeed(path)
		if err != nil {
			t.Fatalf("LoadSeed: %v", err)
		}
		if f.SchemaVersion != SchemaVersion {
			t.Errorf("SchemaVersion: got %d, want %d", f.SchemaVersion, SchemaVersion)
		}
		if len(f.Tasks) != 2 || !f.Tasks[0].Completed || f.Tasks[1].InProgress {
			t.Errorf("Tasks: got %+v", f.Tasks)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "tasks.yml", "- id: a\n  name: Buy milk\n  completed: false\n  inProgress: true\n")
		f, err := LoadSeed(path)
		if err != nil {
			t.Fatalf("LoadSeed: %v", err)
		}
		want := []Task{{ID: "a", Name: "Buy milk", InProgress: true}}
		if !reflect.DeepEqual(f.Tasks, want) {
			t.Errorf("Tasks: got %+v, want %+v", f.Tasks, want)
		}
	})
}

func TestLoadSeedErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.json"))
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			t.Errorf("got %v, want not-exist error", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeFile(t, "tasks.json", `{"tasks": [`)
		_, err := LoadSeed(path)
		if err == nil || !strings.Contains(err.Error(), "parse seed file") {
			t.Errorf("got %v, want parse error", err)
		}
	})
}

func TestLoadSeedOrDefault(t *testing.T) {
	f, usedDefault, err := LoadSeedOrDefault(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !usedDefault {
		t.Error("expected default seed for missing file")
	}
	if !reflect.DeepEqual(f, DefaultSeed()) {
		t.Errorf("got %+v, want default seed", f)
	}

	path := writeFile(t, "tasks.json", `{"schema_version": 1, "tasks": [{"id": "x", "name": "X", "completed": false}]}`)
	f, usedDefault, err = LoadSeedOrDefault(path)
	if err != nil {
		t.Fatal(err)
	}
	if usedDefault || len(f.Tasks) != 1 || f.Tasks[0].ID != "x" {
		t.Errorf("got %+v (default=%v), want file contents", f, usedDefault)
	}
}

func TestDefaultSeed(t *testing.T) {
	f := DefaultSeed()
	names := []string{}
	for _, task := range f.Tasks {
		names = append(names, task.Name)
	}
	if !reflect.DeepEqual(names, []string{"Eat", "Sleep", "Repeat"}) {
		t.Errorf("names: got %v", names)
	}
	if !f.Tasks[0].Completed || f.Tasks[1].Completed {
		t.Errorf("completed flags: got %+v", f.Tasks)
	}

	// each call returns an independent copy
	f.Tasks[0].Name = "changed"
	if DefaultSeed().Tasks[0].Name != "Eat" {
		t.Error("DefaultSeed shares state between calls")
	}
}
