package content

import (
	"encoding/json"
	"fmt"
)

// BlockKind is the discriminator carried by every article block.
type BlockKind string

const (
	KindParagraph BlockKind = "p"
	KindHeading   BlockKind = "h2"
	KindQuote     BlockKind = "blockquote"
	KindComponent BlockKind = "component"
)

// Block is one entry of the ordered article body. The set of implementations
// is closed: Paragraph, Heading, Quote and ComponentReference.
type Block interface {
	Kind() BlockKind
	isBlock()
}

type Paragraph struct {
	Text string
}

type Heading struct {
	Text string
}

type Quote struct {
	Text     string
	Citation string
}

// ComponentReference mounts a named visualization whose data lives in a
// sibling field of the same LocaleContent.
type ComponentReference struct {
	Name ComponentName
}

func (Paragraph) Kind() BlockKind          { return KindParagraph }
func (Heading) Kind() BlockKind            { return KindHeading }
func (Quote) Kind() BlockKind              { return KindQuote }
func (ComponentReference) Kind() BlockKind { return KindComponent }

func (Paragraph) isBlock()          {}
func (Heading) isBlock()            {}
func (Quote) isBlock()              {}
func (ComponentReference) isBlock() {}

func (b Paragraph) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind BlockKind `json:"kind"`
		Text string    `json:"text"`
	}{b.Kind(), b.Text})
}

func (b Heading) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind BlockKind `json:"kind"`
		Text string    `json:"text"`
	}{b.Kind(), b.Text})
}

func (b Quote) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     BlockKind `json:"kind"`
		Text     string    `json:"text"`
		Citation string    `json:"citation"`
	}{b.Kind(), b.Text, b.Citation})
}

func (b ComponentReference) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind          BlockKind     `json:"kind"`
		ComponentName ComponentName `json:"componentName"`
	}{b.Kind(), b.Name})
}

// ComponentReferences returns the component names referenced by blocks, in
// article order.
func ComponentReferences(blocks []Block) []ComponentName {
	var names []ComponentName
	for _, b := range blocks {
		if ref, ok := b.(ComponentReference); ok {
			names = append(names, ref.Name)
		}
	}
	return names
}

// BlockText returns the primary text of a block, or "" for component
// references. It panics on a Block implementation it does not know, which can
// only happen if the closed set above is extended without updating consumers.
func BlockText(b Block) string {
	switch v := b.(type) {
	case Paragraph:
		return v.Text
	case Heading:
		return v.Text
	case Quote:
		return v.Text
	case ComponentReference:
		return ""
	default:
		panic(fmt.Sprintf("content: unhandled block type %T", b))
	}
}
