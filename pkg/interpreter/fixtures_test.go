package interpreter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// fixtureCase is one scripted program in a testdata yaml file. A case either
// expects clean output or a runtime error of a given kind.
type fixtureCase struct {
	Name          string   `yaml:"name"`
	Source        string   `yaml:"source"`
	Input         []string `yaml:"input"`
	Output        []string `yaml:"output"`
	Error         string   `yaml:"error"`
	ErrorContains string   `yaml:"error_contains"`
}

func loadFixtures(t *testing.T, path string) []fixtureCase {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var cases []fixtureCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return cases
}

func kindFromName(t *testing.T, name string) ErrorKind {
	t.Helper()
	switch name {
	case "NameError":
		return NameError
	case "TypeError":
		return TypeError
	case "FaultError":
		return FaultError
	}
	t.Fatalf("unknown error kind %q", name)
	return 0
}

func TestFixturePrograms(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatalf("glob testdata: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixture files found under testdata")
	}
	for _, path := range paths {
		group := strings.TrimSuffix(filepath.Base(path), ".yaml")
		for _, tc := range loadFixtures(t, path) {
			t.Run(group+"/"+tc.Name, func(t *testing.T) {
				outputs, err := runSource(t, tc.Source, tc.Input...)
				if tc.Error != "" {
					var rte *RuntimeError
					if !errors.As(err, &rte) {
						t.Fatalf("expected %s, got err=%v outputs=%v", tc.Error, err, outputs)
					}
					if rte.Kind != kindFromName(t, tc.Error) {
						t.Fatalf("expected %s, got %s: %s", tc.Error, rte.Kind, rte.Message)
					}
					if tc.ErrorContains != "" && !strings.Contains(rte.Message, tc.ErrorContains) {
						t.Fatalf("error %q does not contain %q", rte.Message, tc.ErrorContains)
					}
					return
				}
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				want := tc.Output
				if want == nil {
					want = []string{}
				}
				if outputs == nil {
					outputs = []string{}
				}
				if diff := cmp.Diff(want, outputs); diff != "" {
					t.Fatalf("output mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}
