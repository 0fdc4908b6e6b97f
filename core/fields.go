// SPDX-License-Identifier: MIT
//
// File: fields.go
// Role: Conversions between raw record values and station ids.
package core

import (
	"strconv"
	"strings"
)

// ParseUID converts a raw field value into a positive station id.
func ParseUID(raw string) (int, error) {
	uid, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, dataFormatf("uid %q is not an integer", raw)
	}
	if uid <= 0 {
		return 0, dataFormatf("uid %d is not positive", uid)
	}

	return uid, nil
}

// SplitUIDs parses a list field ("1$2$3") into ids, preserving order.
// An empty or blank field yields an empty slice.
func SplitUIDs(raw, sep string) ([]int, error) {
	if sep == "" {
		sep = DefaultListDelimiter
	}
	if strings.TrimSpace(raw) == "" {
		return []int{}, nil
	}
	parts := strings.Split(raw, sep)
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		uid, err := ParseUID(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uid)
	}

	return ids, nil
}

// JoinUIDs is the inverse of SplitUIDs.
func JoinUIDs(ids []int, sep string) string {
	if sep == "" {
		sep = DefaultListDelimiter
	}
	parts := make([]string, len(ids))
	for i, uid := range ids {
		parts[i] = strconv.Itoa(uid)
	}

	return strings.Join(parts, sep)
}

// UIDs returns the ids of stations, preserving order.
func UIDs(stations []*Station) []int {
	out := make([]int, len(stations))
	for i, st := range stations {
		out[i] = st.UID
	}

	return out
}
