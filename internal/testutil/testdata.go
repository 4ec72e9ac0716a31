// Package testutil loads fixtures from a package's testdata directory.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// LoadJSON decodes a JSON fixture into v.
func LoadJSON(t *testing.T, name string, v any) {
	t.Helper()
	data := readTestdata(t, name)
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decode %s: %v", name, err)
	}
}

// LoadHex returns a trimmed hex string fixture.
func LoadHex(t *testing.T, name string) string {
	t.Helper()
	return strings.TrimSpace(string(readTestdata(t, name)))
}

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read testdata file %s: %v", name, err)
	}
	return data
}
