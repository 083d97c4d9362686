package style

import "github.com/faceswap-tools/faceswap/internal/domain"

// Styler exposes the package functions as a domain.Styler.
type Styler struct{}

func NewStyler() *Styler { return &Styler{} }

func (*Styler) Enabled() bool              { return Enabled() }
func (*Styler) Success(text string) string { return Success(text) }
func (*Styler) Warning(text string) string { return Warning(text) }
func (*Styler) Error(text string) string   { return Error(text) }
func (*Styler) Info(text string) string    { return Info(text) }
func (*Styler) Muted(text string) string   { return Muted(text) }
func (*Styler) Header(text string) string  { return Header(text) }

// NopStyler returns text unchanged.
type NopStyler struct{}

func (NopStyler) Enabled() bool              { return false }
func (NopStyler) Success(text string) string { return text }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Error(text string) string   { return text }
func (NopStyler) Info(text string) string    { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Header(text string) string  { return text }

var _ domain.Styler = (*Styler)(nil)
var _ domain.Styler = NopStyler{}
