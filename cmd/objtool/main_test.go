package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/towergen/pkg/building"
	"github.com/Faultbox/towergen/pkg/formats"
)

func writeTestOBJ(t *testing.T) string {
	t.Helper()
	m, err := building.Build(4, []building.LevelSpec{{Height: 1, RadiusBottom: 1, RadiusTop: 1}}, building.Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "building_4_1_1_1.obj")
	if err := formats.WriteOBJFile(path, m); err != nil {
		t.Fatalf("WriteOBJFile failed: %v", err)
	}
	return path
}

func TestCmdInfo(t *testing.T) {
	path := writeTestOBJ(t)

	var out bytes.Buffer
	if err := cmdInfo(&out, []string{path}); err != nil {
		t.Fatalf("cmdInfo failed: %v", err)
	}

	for _, want := range []string{
		"Vertices: 10 (header 10)",
		"Normals:  16 (header 16)",
		"Faces:    16 (header 16)",
		"Size:     2.0000 x 1.0000 x 2.0000",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestCmdCheck(t *testing.T) {
	path := writeTestOBJ(t)

	var out bytes.Buffer
	if err := cmdCheck(&out, []string{path}); err != nil {
		t.Fatalf("cmdCheck failed: %v", err)
	}
	if !strings.Contains(out.String(), "OK") {
		t.Errorf("expected OK, got %q", out.String())
	}

	broken := filepath.Join(t.TempDir(), "broken.obj")
	data := "# 2 vertices\nv 0 0 0\nv 1 0 0\nv 0 0 1\n# 1 faces\nf 1//1 2//1 3//1\n"
	if err := os.WriteFile(broken, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	if err := cmdCheck(&out, []string{broken}); err == nil {
		t.Error("expected check to fail for mismatched header")
	}
}

func TestCmdUsage(t *testing.T) {
	if err := cmdInfo(&bytes.Buffer{}, nil); err == nil {
		t.Error("expected usage error without file argument")
	}
	if err := cmdCheck(&bytes.Buffer{}, []string{"a.obj", "b.obj"}); err == nil {
		t.Error("expected usage error with two file arguments")
	}
}
