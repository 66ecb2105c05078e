package parser

import "iter"

// AttributeID identifies a known HTML attribute.
type AttributeID int

// UnknownAttribute is returned for names that are not in the attribute table.
const UnknownAttribute AttributeID = -1

const (
	AbbrAttribute AttributeID = iota
	AcceptAttribute
	AcceptCharsetAttribute
	AccessKeyAttribute
	ActionAttribute
	AlignAttribute
	ALinkAttribute
	AltAttribute
	ArchiveAttribute
	AxisAttribute
	BackgroundAttribute
	BGColorAttribute
	BorderAttribute
	CellPaddingAttribute
	CellSpacingAttribute
	CharAttribute
	CharOffAttribute
	CharsetAttribute
	CheckedAttribute
	CiteAttribute
	ClassAttribute
	ClassIDAttribute
	ClearAttribute
	CodeAttribute
	CodeBaseAttribute
	CodeTypeAttribute
	ColorAttribute
	ColsAttribute
	ColSpanAttribute
	CompactAttribute
	ContentAttribute
	CoordsAttribute
	DataAttribute
	DateTimeAttribute
	DeclareAttribute
	DeferAttribute
	DirAttribute
	DisabledAttribute
	EncTypeAttribute
	FaceAttribute
	ForAttribute
	FrameAttribute
	FrameBorderAttribute
	HeadersAttribute
	HeightAttribute
	HrefAttribute
	HrefLangAttribute
	HSpaceAttribute
	HTTPEquivAttribute
	IDAttribute
	IsMapAttribute
	LabelAttribute
	LangAttribute
	LanguageAttribute
	LeftMarginAttribute
	LinkAttribute
	LongDescAttribute
	LowSrcAttribute
	MarginHeightAttribute
	MarginWidthAttribute
	MaxLengthAttribute
	MediaAttribute
	MethodAttribute
	MultipleAttribute
	NameAttribute
	NoHrefAttribute
	NoResizeAttribute
	NoShadeAttribute
	NoWrapAttribute
	ObjectAttribute
	ProfileAttribute
	PromptAttribute
	ReadOnlyAttribute
	RelAttribute
	RevAttribute
	RowsAttribute
	RowSpanAttribute
	RulesAttribute
	SchemeAttribute
	ScopeAttribute
	ScrollingAttribute
	SelectedAttribute
	ShapeAttribute
	SizeAttribute
	SpanAttribute
	SrcAttribute
	StandByAttribute
	StartAttribute
	StyleAttribute
	SummaryAttribute
	TabIndexAttribute
	TargetAttribute
	TextAttribute
	TitleAttribute
	TopMarginAttribute
	TypeAttribute
	UseMapAttribute
	VAlignAttribute
	ValueAttribute
	ValueTypeAttribute
	VersionAttribute
	VLinkAttribute
	VSpaceAttribute
	WidthAttribute
	XmlNSAttribute

	attributeCount
)

var attributeNames = [attributeCount]string{
	AbbrAttribute:          "abbr",
	AcceptAttribute:        "accept",
	AcceptCharsetAttribute: "accept-charset",
	AccessKeyAttribute:     "accesskey",
	ActionAttribute:        "action",
	AlignAttribute:         "align",
	ALinkAttribute:         "alink",
	AltAttribute:           "alt",
	ArchiveAttribute:       "archive",
	AxisAttribute:          "axis",
	BackgroundAttribute:    "background",
	BGColorAttribute:       "bgcolor",
	BorderAttribute:        "border",
	CellPaddingAttribute:   "cellpadding",
	CellSpacingAttribute:   "cellspacing",
	CharAttribute:          "char",
	CharOffAttribute:       "charoff",
	CharsetAttribute:       "charset",
	CheckedAttribute:       "checked",
	CiteAttribute:          "cite",
	ClassAttribute:         "class",
	ClassIDAttribute:       "classid",
	ClearAttribute:         "clear",
	CodeAttribute:          "code",
	CodeBaseAttribute:      "codebase",
	CodeTypeAttribute:      "codetype",
	ColorAttribute:         "color",
	ColsAttribute:          "cols",
	ColSpanAttribute:       "colspan",
	CompactAttribute:       "compact",
	ContentAttribute:       "content",
	CoordsAttribute:        "coords",
	DataAttribute:          "data",
	DateTimeAttribute:      "datetime",
	DeclareAttribute:       "declare",
	DeferAttribute:         "defer",
	DirAttribute:           "dir",
	DisabledAttribute:      "disabled",
	EncTypeAttribute:       "enctype",
	FaceAttribute:          "face",
	ForAttribute:           "for",
	FrameAttribute:         "frame",
	FrameBorderAttribute:   "frameborder",
	HeadersAttribute:       "headers",
	HeightAttribute:        "height",
	HrefAttribute:          "href",
	HrefLangAttribute:      "hreflang",
	HSpaceAttribute:        "hspace",
	HTTPEquivAttribute:     "http-equiv",
	IDAttribute:            "id",
	IsMapAttribute:         "ismap",
	LabelAttribute:         "label",
	LangAttribute:          "lang",
	LanguageAttribute:      "language",
	LeftMarginAttribute:    "leftmargin",
	LinkAttribute:          "link",
	LongDescAttribute:      "longdesc",
	LowSrcAttribute:        "lowsrc",
	MarginHeightAttribute:  "marginheight",
	MarginWidthAttribute:   "marginwidth",
	MaxLengthAttribute:     "maxlength",
	MediaAttribute:         "media",
	MethodAttribute:        "method",
	MultipleAttribute:      "multiple",
	NameAttribute:          "name",
	NoHrefAttribute:        "nohref",
	NoResizeAttribute:      "noresize",
	NoShadeAttribute:       "noshade",
	NoWrapAttribute:        "nowrap",
	ObjectAttribute:        "object",
	ProfileAttribute:       "profile",
	PromptAttribute:        "prompt",
	ReadOnlyAttribute:      "readonly",
	RelAttribute:           "rel",
	RevAttribute:           "rev",
	RowsAttribute:          "rows",
	RowSpanAttribute:       "rowspan",
	RulesAttribute:         "rules",
	SchemeAttribute:        "scheme",
	ScopeAttribute:         "scope",
	ScrollingAttribute:     "scrolling",
	SelectedAttribute:      "selected",
	ShapeAttribute:         "shape",
	SizeAttribute:          "size",
	SpanAttribute:          "span",
	SrcAttribute:           "src",
	StandByAttribute:       "standby",
	StartAttribute:         "start",
	StyleAttribute:         "style",
	SummaryAttribute:       "summary",
	TabIndexAttribute:      "tabindex",
	TargetAttribute:        "target",
	TextAttribute:          "text",
	TitleAttribute:         "title",
	TopMarginAttribute:     "topmargin",
	TypeAttribute:          "type",
	UseMapAttribute:        "usemap",
	VAlignAttribute:        "valign",
	ValueAttribute:         "value",
	ValueTypeAttribute:     "valuetype",
	VersionAttribute:       "version",
	VLinkAttribute:         "vlink",
	VSpaceAttribute:        "vspace",
	WidthAttribute:         "width",
	XmlNSAttribute:         "xmlns",
}

var attributeIDs = func() map[string]AttributeID {
	m := make(map[string]AttributeID, attributeCount)
	for id := AttributeID(0); id < attributeCount; id++ {
		m[attributeNames[id]] = id
	}
	return m
}()

// Name returns the canonical lower-case attribute name, or "" for
// UnknownAttribute.
func (id AttributeID) Name() string {
	if id < 0 || id >= attributeCount {
		return ""
	}
	return attributeNames[id]
}

func (id AttributeID) String() string {
	if name := id.Name(); name != "" {
		return name
	}
	return "unknown"
}

// AttributeNameToID looks an attribute name up, ignoring ASCII case.
func AttributeNameToID(name string) AttributeID {
	if id, ok := attributeIDs[asciiLower(name)]; ok {
		return id
	}
	return UnknownAttribute
}

// Attribute is a single name/value pair of a tag. Value is nil when the
// attribute was written without '='.
type Attribute struct {
	Name  string
	ID    AttributeID
	Value *string
}

// NewAttribute creates an attribute, resolving its ID from the name.
func NewAttribute(name string, value *string) Attribute {
	return Attribute{Name: name, ID: AttributeNameToID(name), Value: value}
}

// Val returns the attribute value, or "" when it has none.
func (a Attribute) Val() string {
	if a.Value == nil {
		return ""
	}
	return *a.Value
}

// Equal reports whether two attributes have the same name, ID and value.
func (a Attribute) Equal(b Attribute) bool {
	if a.Name != b.Name || a.ID != b.ID {
		return false
	}
	if a.Value == nil || b.Value == nil {
		return a.Value == nil && b.Value == nil
	}
	return *a.Value == *b.Value
}

// AttributeTable holds the attributes of a tag in the order they were
// written. Duplicate names are kept.
type AttributeTable struct {
	attrs []Attribute
}

// Add appends an attribute.
func (t *AttributeTable) Add(a Attribute) {
	t.attrs = append(t.attrs, a)
}

// Len returns the number of attributes.
func (t *AttributeTable) Len() int {
	return len(t.attrs)
}

// At returns the i'th attribute.
func (t *AttributeTable) At(i int) Attribute {
	return t.attrs[i]
}

// All iterates over the attributes in insertion order.
func (t *AttributeTable) All() iter.Seq2[int, Attribute] {
	return func(yield func(int, Attribute) bool) {
		for i, a := range t.attrs {
			if !yield(i, a) {
				return
			}
		}
	}
}

// IndexOfName returns the index of the first attribute called name,
// ignoring ASCII case, or -1.
func (t *AttributeTable) IndexOfName(name string) int {
	for i := range t.attrs {
		if asciiEqualFold(t.attrs[i].Name, name) {
			return i
		}
	}
	return -1
}

// IndexOfID returns the index of the first attribute with the given ID, or
// -1. UnknownAttribute never matches.
func (t *AttributeTable) IndexOfID(id AttributeID) int {
	if id == UnknownAttribute {
		return -1
	}
	for i := range t.attrs {
		if t.attrs[i].ID == id {
			return i
		}
	}
	return -1
}

// TryGetName returns the first attribute called name.
func (t *AttributeTable) TryGetName(name string) (Attribute, bool) {
	if i := t.IndexOfName(name); i >= 0 {
		return t.attrs[i], true
	}
	return Attribute{}, false
}

// TryGetID returns the first attribute with the given ID.
func (t *AttributeTable) TryGetID(id AttributeID) (Attribute, bool) {
	if i := t.IndexOfID(id); i >= 0 {
		return t.attrs[i], true
	}
	return Attribute{}, false
}

// Equal reports whether both tables hold equal attributes in the same
// order.
func (t AttributeTable) Equal(u AttributeTable) bool {
	if len(t.attrs) != len(u.attrs) {
		return false
	}
	for i := range t.attrs {
		if !t.attrs[i].Equal(u.attrs[i]) {
			return false
		}
	}
	return true
}
