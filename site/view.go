package site

import "github.com/spektr-org/stemfolio/engine"

// BlockKind names how a block renders.
type BlockKind string

const (
	BlockHeading  BlockKind = "heading"
	BlockText     BlockKind = "text"
	BlockFields   BlockKind = "fields"
	BlockList     BlockKind = "list"
	BlockImage    BlockKind = "image"
	BlockEquation BlockKind = "equation"
	BlockResult   BlockKind = "result"
	BlockTable    BlockKind = "table"
	BlockChart    BlockKind = "chart"
	BlockSuccess  BlockKind = "success"
	BlockError    BlockKind = "error"
	BlockInfo     BlockKind = "info"
)

// Field is a labelled value.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Image is a picture with a caption.
type Image struct {
	Path    string `json:"path"`
	Caption string `json:"caption"`
}

// Block is one render-ready element of a page.
type Block struct {
	Kind   BlockKind           `json:"kind"`
	Text   string              `json:"text,omitempty"`
	Items  []string            `json:"items,omitempty"`
	Fields []Field             `json:"fields,omitempty"`
	Image  *Image              `json:"image,omitempty"`
	Table  *engine.TableData   `json:"table,omitempty"`
	Chart  *engine.ChartConfig `json:"chart,omitempty"`
}

// View is a rendered page.
type View struct {
	Page   Page    `json:"-"`
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`

	// Err is the user error shown in the error banner, if any.
	Err error `json:"-"`
}

func (v *View) add(b Block) { v.Blocks = append(v.Blocks, b) }

func (v *View) heading(text string) { v.add(Block{Kind: BlockHeading, Text: text}) }

func (v *View) text(text string) { v.add(Block{Kind: BlockText, Text: text}) }

func (v *View) info(text string) { v.add(Block{Kind: BlockInfo, Text: text}) }

func (v *View) fail(err error, text string) {
	v.Err = err
	v.add(Block{Kind: BlockError, Text: text})
}

// Tables returns the tables on the page in order.
func (v *View) Tables() []*engine.TableData {
	var out []*engine.TableData
	for _, b := range v.Blocks {
		if b.Table != nil {
			out = append(out, b.Table)
		}
	}
	return out
}

// Charts returns the charts on the page in order.
func (v *View) Charts() []*engine.ChartConfig {
	var out []*engine.ChartConfig
	for _, b := range v.Blocks {
		if b.Chart != nil {
			out = append(out, b.Chart)
		}
	}
	return out
}
