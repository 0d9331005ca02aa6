package cellgrid

// PressKind discriminates the PressData tagged union (spec §3/§9: "a tagged
// variant whose branches carry disjoint payloads").
type PressKind int

const (
	PressRowResize PressKind = iota
	PressColumnResize
	PressSelect
)

// PressData is transient state kept only between a pointer press and its
// matching release. Exactly one branch is populated, selected by Kind.
type PressData struct {
	Kind PressKind

	// RowResize / ColumnResize fields.
	Region       CellRegion
	Index        int
	OriginalSize int
	ClientOrigin float64 // client_y0 for row resize, client_x0 for column resize

	// Select fields.
	Row0, Column0       int
	LocalX, LocalY      float64
	LastClientX, LastClientY float64

	// autoscroll is the active scheduled timer's handle, or nil when
	// autoscroll is not scheduled. Cancelling it (see scheduler.go's cancel)
	// sets its cancelled flag, which cooperatively stops a pending reschedule
	// even if the timer already fired and is mid-callback.
	autoscroll *scheduler

	// Override is the scoped cursor acquisition for this press, if any.
	Override *CursorOverride
}

// NewRowResizePress builds a PressRowResize PressData.
func NewRowResizePress(region CellRegion, index, originalSize int, clientY0 float64) *PressData {
	return &PressData{Kind: PressRowResize, Region: region, Index: index, OriginalSize: originalSize, ClientOrigin: clientY0}
}

// NewColumnResizePress builds a PressColumnResize PressData.
func NewColumnResizePress(region CellRegion, index, originalSize int, clientX0 float64) *PressData {
	return &PressData{Kind: PressColumnResize, Region: region, Index: index, OriginalSize: originalSize, ClientOrigin: clientX0}
}

// NewSelectPress builds a PressSelect PressData.
func NewSelectPress(region CellRegion, row0, column0 int, localX, localY float64) *PressData {
	return &PressData{Kind: PressSelect, Region: region, Row0: row0, Column0: column0, LocalX: localX, LocalY: localY}
}

// Dispose releases any cursor override and cancels any pending autoscroll
// timer. Safe to call multiple times.
func (p *PressData) Dispose() {
	if p == nil {
		return
	}
	if p.autoscroll != nil {
		p.autoscroll.cancel()
		p.autoscroll = nil
	}
	if p.Override != nil {
		logger.Debug().Str("id", p.Override.ID().String()).Msg("cursor override released")
	}
	p.Override.Release()
}
