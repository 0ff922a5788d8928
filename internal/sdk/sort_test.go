// SPDX-License-Identifier: MPL-2.0

package sdk

import (
	"slices"
	"testing"
)

func platformIDs(platforms []*Platform) []string {
	ids := make([]string, len(platforms))
	for i, p := range platforms {
		ids[i] = p.ID
	}
	return ids
}

func TestSortPlatforms(t *testing.T) {
	tests := []struct {
		name string
		in   []*Platform
		want []string
	}{
		{
			name: "ascending api level",
			in: []*Platform{
				{ID: "android-25", APILevel: 25},
				{ID: "android-19", APILevel: 19},
				{ID: "android-23", APILevel: 23},
			},
			want: []string{"android-19", "android-23", "android-25"},
		},
		{
			name: "ga before preview at equal level",
			in: []*Platform{
				{ID: "android-N", APILevel: 23, Codename: "N"},
				{ID: "android-23", APILevel: 23},
			},
			want: []string{"android-23", "android-N"},
		},
		{
			name: "previews alphabetical by codename",
			in: []*Platform{
				{ID: "android-N", APILevel: 24, Codename: "N"},
				{ID: "android-M", APILevel: 24, Codename: "M"},
			},
			want: []string{"android-M", "android-N"},
		},
		{
			name: "empty list",
			in:   nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sortPlatforms(tt.in)
			got := platformIDs(tt.in)
			if !slices.Equal(got, tt.want) {
				t.Errorf("sortPlatforms() order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortPlatforms_Idempotent(t *testing.T) {
	platforms := []*Platform{
		{ID: "android-19", APILevel: 19},
		{ID: "android-23", APILevel: 23},
		{ID: "android-M", APILevel: 23, Codename: "M"},
		{ID: "android-N", APILevel: 23, Codename: "N"},
	}

	sortPlatforms(platforms)
	first := platformIDs(platforms)
	sortPlatforms(platforms)
	second := platformIDs(platforms)

	if !slices.Equal(first, second) {
		t.Errorf("sorting an already-sorted list changed the order: %v then %v", first, second)
	}
}

func TestSortAddons(t *testing.T) {
	addons := []*Addon{
		{ID: "acme:maps:23", APILevel: 23},
		{ID: "acme:maps:19", APILevel: 19},
		{ID: "acme:maps:N", APILevel: 19, Codename: "N"},
	}

	sortAddons(addons)

	want := []string{"acme:maps:19", "acme:maps:N", "acme:maps:23"}
	for i, a := range addons {
		if a.ID != want[i] {
			t.Fatalf("sortAddons() order[%d] = %s, want %s", i, a.ID, want[i])
		}
	}
}
