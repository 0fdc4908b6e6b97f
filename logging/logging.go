// SPDX-License-Identifier: MIT

// Package logging provides the line-oriented slog handler used by every
// metro component:
//
//	2006/01/02 15:04:05 INFO stations loaded stations=12 mirrored=1
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// ErrUnknownLevel is returned by ParseLevel for an unrecognised name.
var ErrUnknownLevel = errors.New("logging: unknown level")

const timeLayout = "2006/01/02 15:04:05"

// Handler writes one line per record. Writes are serialised so a Handler can
// be shared by loggers derived through WithAttrs and WithGroup.
type Handler struct {
	level  slog.Leveler
	mu     *sync.Mutex
	out    io.Writer
	prefix string // group path, dot terminated
	attrs  []string
}

// NewHandler returns a Handler writing to w. A nil opts logs at Info and above.
func NewHandler(w io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	return &Handler{level: level, mu: &sync.Mutex{}, out: w}
}

// New returns a logger backed by a Handler at level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps debug, info, warn or error (any case) to a level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}

	return l, nil
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, a := range attrs {
		next.attrs = appendAttr(next.attrs, h.prefix, a)
	}

	return next
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.prefix += name + "."

	return next
}

func (h *Handler) clone() *Handler {
	return &Handler{
		level:  h.level,
		mu:     h.mu,
		out:    h.out,
		prefix: h.prefix,
		attrs:  append([]string(nil), h.attrs...),
	}
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	strs := []string{r.Time.Format(timeLayout), r.Level.String(), r.Message}
	strs = append(strs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		strs = appendAttr(strs, h.prefix, a)
		return true
	})
	b := []byte(strings.Join(strs, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.out.Write(b)

	return err
}

// appendAttr renders a as key=value, flattening groups into dotted keys.
func appendAttr(dst []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, prefix, ga)
		}
		return dst
	}
	val := a.Value.String()
	if strings.ContainsAny(val, " \t\n\"=") || val == "" {
		val = fmt.Sprintf("%q", val)
	}

	return append(dst, prefix+a.Key+"="+val)
}
