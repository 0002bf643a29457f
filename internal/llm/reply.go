package llm

import "strings"

// BlockKind tags one unit of reply content.
type BlockKind string

const (
	BlockText    BlockKind = "text"
	BlockToolUse BlockKind = "tool_use"
	BlockOther   BlockKind = "other"
)

// ContentBlock is one unit of a model reply's content. Only text blocks
// carry text; every other kind contributes nothing when flattened.
type ContentBlock struct {
	Kind BlockKind
	Text string
}

// Reply is a model reply as a tagged variant: either plain Text or a
// sequence of heterogeneous Blocks, depending on what the provider
// returned. Exactly one of the two is populated.
type Reply struct {
	Text   string
	Blocks []ContentBlock
	Usage  TokenUsage
}

// Flatten reduces either variant to a single raw string. Non-text
// blocks contribute nothing.
func (r Reply) Flatten() string {
	if len(r.Blocks) == 0 {
		return r.Text
	}
	var b strings.Builder
	for _, block := range r.Blocks {
		if block.Kind == BlockText {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}
