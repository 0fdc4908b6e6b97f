// SPDX-License-Identifier: MIT
// Package: metro/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs (nil funcs).
//     Constructors themselves never panic.

package builder

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithNameScheme sets the uid → name generator. Panics on nil.
func WithNameScheme(fn NameFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}

	return func(c *builderConfig) { c.nameFn = fn }
}

// WithNames pins explicit names for selected uids; others use the name scheme.
func WithNames(names map[int]string) BuilderOption {
	return func(c *builderConfig) {
		for uid, name := range names {
			c.names[uid] = name
		}
	}
}

// WithListDelimiter sets the separator used in emitted list fields.
// Empty keeps the default.
func WithListDelimiter(sep string) BuilderOption {
	return func(c *builderConfig) {
		if sep != "" {
			c.listDelim = sep
		}
	}
}
