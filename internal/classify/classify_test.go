// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"reflect"
	"testing"

	"github.com/pdiddy/paperlist/pkg/types"
)

func TestNonAcademicAuthors(t *testing.T) {
	tests := []struct {
		name    string
		authors []types.Author
		want    []string
	}{
		{
			name: "company affiliation is flagged",
			authors: []types.Author{
				{Name: "B", Affiliation: "Acme Corp"},
			},
			want: []string{"B"},
		},
		{
			name: "university affiliation is excluded",
			authors: []types.Author{
				{Name: "A", Affiliation: "MIT University"},
				{Name: "B", Affiliation: "Acme Corp"},
			},
			want: []string{"B"},
		},
		{
			name: "empty affiliation is skipped, not flagged",
			authors: []types.Author{
				{Name: "C", Affiliation: ""},
				{Name: "D"},
			},
			want: nil,
		},
		{
			name: "matching is case-insensitive",
			authors: []types.Author{
				{Name: "E", Affiliation: "HARVARD UNIVERSITY"},
				{Name: "F", Affiliation: "Children's HOSPITAL of Boston"},
				{Name: "G", Affiliation: "InstItUte of Advanced Study"},
			},
			want: nil,
		},
		{
			name: "substring match, no word boundaries",
			authors: []types.Author{
				{Name: "H", Affiliation: "universitypark research campus"},
				{Name: "I", Affiliation: "Oldschool Ventures LLC"},
			},
			want: nil,
		},
		{
			name: "all five keywords exclude",
			authors: []types.Author{
				{Name: "1", Affiliation: "Some University"},
				{Name: "2", Affiliation: "Some College"},
				{Name: "3", Affiliation: "Some Institute"},
				{Name: "4", Affiliation: "Some Hospital"},
				{Name: "5", Affiliation: "Some School"},
				{Name: "6", Affiliation: "Some Startup"},
			},
			want: []string{"6"},
		},
		{
			name: "missing name falls back to Unknown",
			authors: []types.Author{
				{Affiliation: "Genentech Inc"},
			},
			want: []string{"Unknown"},
		},
		{
			name: "order of input is preserved",
			authors: []types.Author{
				{Name: "Z", Affiliation: "Zeta Pharma"},
				{Name: "Y", Affiliation: "Ypsilon Biotech"},
				{Name: "X", Affiliation: "Xavier University"},
				{Name: "W", Affiliation: "Wyvern Labs"},
			},
			want: []string{"Z", "Y", "W"},
		},
		{
			name:    "no authors",
			authors: nil,
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NonAcademicAuthors(tt.authors)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NonAcademicAuthors() = %v, want %v", got, tt.want)
			}
		})
	}
}
