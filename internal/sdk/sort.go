// SPDX-License-Identifier: MPL-2.0

package sdk

import (
	"sort"
	"strings"
)

// compareRelease orders two releases by ascending API level. At equal levels
// a GA release (empty codename) strictly precedes any preview, and previews
// order lexicographically by codename. Returns <0, 0 or >0.
func compareRelease(aAPI int, aCodename string, bAPI int, bCodename string) int {
	if aAPI != bAPI {
		return aAPI - bAPI
	}
	switch {
	case aCodename == bCodename:
		return 0
	case aCodename == "":
		return -1
	case bCodename == "":
		return 1
	default:
		return strings.Compare(aCodename, bCodename)
	}
}

func sortPlatforms(platforms []*Platform) {
	sort.SliceStable(platforms, func(i, j int) bool {
		return compareRelease(platforms[i].APILevel, platforms[i].Codename,
			platforms[j].APILevel, platforms[j].Codename) < 0
	})
}

func sortAddons(addons []*Addon) {
	sort.SliceStable(addons, func(i, j int) bool {
		return compareRelease(addons[i].APILevel, addons[i].Codename,
			addons[j].APILevel, addons[j].Codename) < 0
	})
}
