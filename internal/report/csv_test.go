// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/paperlist/pkg/types"
)

func sampleRecords() []types.PaperRecord {
	return []types.PaperRecord{
		{
			PubmedID:           "39012345",
			Title:              "Checkpoint inhibition in solid tumors",
			PublicationDate:    "2024 Mar 15",
			NonAcademicAuthors: "Smith J, Jones K",
		},
		{
			PubmedID:        "39012344",
			Title:           "Unknown",
			PublicationDate: "Unknown",
		},
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	records := sampleRecords()

	if err := WriteCSV(path, records); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	// Header + one row per record.
	if len(rows) != len(records)+1 {
		t.Fatalf("len(rows) = %d, want %d", len(rows), len(records)+1)
	}
	if !reflect.DeepEqual(rows[0], Header) {
		t.Errorf("header = %v, want %v", rows[0], Header)
	}

	want := []string{
		"39012345",
		"Checkpoint inhibition in solid tumors",
		"2024 Mar 15",
		"Smith J, Jones K",
		"",
		"",
	}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("rows[1] = %v, want %v", rows[1], want)
	}
}

func TestWriteCSVOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")

	if err := WriteCSV(path, sampleRecords()); err != nil {
		t.Fatalf("first WriteCSV: %v", err)
	}
	if err := WriteCSV(path, nil); err != nil {
		t.Fatalf("second WriteCSV: %v", err)
	}

	rows, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("len(rows) = %d, want 1 (header only after overwrite)", len(rows))
	}
}

func TestWriteCSVCreateFailure(t *testing.T) {
	err := WriteCSV(filepath.Join(t.TempDir(), "missing-dir", "output.csv"), sampleRecords())
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
	if !strings.Contains(err.Error(), "creating") {
		t.Errorf("error = %q, should mention creating", err.Error())
	}
}

func TestDisplayCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	if err := WriteCSV(path, sampleRecords()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	var out bytes.Buffer
	if err := DisplayCSV(path, &out); err != nil {
		t.Fatalf("DisplayCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3 (header + 2 rows)", len(lines))
	}
	if !strings.Contains(lines[0], "PubmedID") {
		t.Errorf("first line = %q, should be the header", lines[0])
	}
	if !strings.Contains(lines[1], "39012345") {
		t.Errorf("second line = %q, should contain the first record", lines[1])
	}
}
