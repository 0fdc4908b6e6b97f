// SPDX-License-Identifier: MIT
package builder

import "strconv"

// NameFn generates a station display name from its uid.
// It must be pure: the same uid always yields the same name, and distinct
// uids must yield names that differ case-insensitively.
type NameFn func(uid int) string

// DefaultNameFn returns "S" followed by the uid, e.g. 7→"S7".
func DefaultNameFn(uid int) string {
	return "S" + strconv.Itoa(uid)
}
