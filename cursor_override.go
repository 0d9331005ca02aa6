package cellgrid

import "github.com/google/uuid"

// CursorStyle is a host-defined cursor identifier (e.g. "default",
// "row-resize", "col-resize"); the core never interprets it, only hands it
// to a CursorHost.
type CursorStyle string

// CursorHost is implemented by an adapter to apply/restore the document-wide
// cursor style. Acquisitions are LIFO (spec §6): PushCursor returns the
// style that was active before the push, which the next Pop restores.
type CursorHost interface {
	PushCursor(style CursorStyle) (previous CursorStyle)
	PopCursor(previous CursorStyle)
}

// CursorOverride is a scoped acquisition of the document-wide cursor style.
// Construction (AcquireCursor) sets the host cursor; Release restores it.
// Release is idempotent and safe to call on every exit path, including from
// a deferred recover(), matching spec §3/§6's "guaranteed release on all
// exit paths".
type CursorOverride struct {
	id       uuid.UUID
	host     CursorHost
	previous CursorStyle
	released bool
}

// AcquireCursor pushes style onto host's cursor stack and returns a token
// whose Release pops it back off.
func AcquireCursor(host CursorHost, style CursorStyle) *CursorOverride {
	prev := host.PushCursor(style)
	return &CursorOverride{id: uuid.New(), host: host, previous: prev}
}

// Release restores the cursor style active before this override was
// acquired. Calling Release more than once is a no-op.
func (c *CursorOverride) Release() {
	if c == nil || c.released {
		return
	}
	c.released = true
	c.host.PopCursor(c.previous)
}

// ID returns the override's opaque correlation id, useful for logging which
// acquisition a given release corresponds to.
func (c *CursorOverride) ID() uuid.UUID { return c.id }
