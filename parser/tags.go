package parser

// TagID identifies a known HTML element.
type TagID int

// UnknownTag is returned for names that are not in the tag table.
const UnknownTag TagID = -1

const (
	ATag TagID = iota
	AbbrTag
	AcronymTag
	AddressTag
	AppletTag
	AreaTag
	ArticleTag
	AsideTag
	AudioTag
	BTag
	BaseTag
	BaseFontTag
	BdiTag
	BdoTag
	BGSoundTag
	BigTag
	BlinkTag
	BlockQuoteTag
	BodyTag
	BrTag
	ButtonTag
	CanvasTag
	CaptionTag
	CenterTag
	CiteTag
	CodeTag
	ColTag
	ColGroupTag
	CommandTag
	CommentTag
	DataListTag
	DDTag
	DelTag
	DetailsTag
	DfnTag
	DialogTag
	DirTag
	DivTag
	DLTag
	DTTag
	EMTag
	EmbedTag
	FieldSetTag
	FigCaptionTag
	FigureTag
	FontTag
	FooterTag
	FormTag
	FrameTag
	FrameSetTag
	H1Tag
	H2Tag
	H3Tag
	H4Tag
	H5Tag
	H6Tag
	HeadTag
	HeaderTag
	HGroupTag
	HRTag
	HtmlTag
	ITag
	IFrameTag
	ImageTag
	ImgTag
	InputTag
	InsTag
	IsIndexTag
	KbdTag
	KeygenTag
	LabelTag
	LegendTag
	LITag
	LinkTag
	ListingTag
	MainTag
	MapTag
	MarkTag
	MarqueeTag
	MenuTag
	MenuItemTag
	MetaTag
	MeterTag
	NavTag
	NextIDTag
	NoBRTag
	NoEmbedTag
	NoFramesTag
	NoScriptTag
	ObjectTag
	OLTag
	OptGroupTag
	OptionTag
	OutputTag
	PTag
	ParamTag
	PlainTextTag
	PreTag
	ProgressTag
	QTag
	RPTag
	RTTag
	RubyTag
	STag
	SampTag
	ScriptTag
	SectionTag
	SelectTag
	SmallTag
	SourceTag
	SpanTag
	StrikeTag
	StrongTag
	StyleTag
	SubTag
	SummaryTag
	SupTag
	TableTag
	TBodyTag
	TDTag
	TemplateTag
	TextAreaTag
	TFootTag
	THTag
	THeadTag
	TimeTag
	TitleTag
	TRTag
	TrackTag
	TTTag
	UTag
	ULTag
	VarTag
	VideoTag
	WbrTag
	XmlTag
	XmpTag

	tagCount
)

var tagNames = [tagCount]string{
	ATag:          "a",
	AbbrTag:       "abbr",
	AcronymTag:    "acronym",
	AddressTag:    "address",
	AppletTag:     "applet",
	AreaTag:       "area",
	ArticleTag:    "article",
	AsideTag:      "aside",
	AudioTag:      "audio",
	BTag:          "b",
	BaseTag:       "base",
	BaseFontTag:   "basefont",
	BdiTag:        "bdi",
	BdoTag:        "bdo",
	BGSoundTag:    "bgsound",
	BigTag:        "big",
	BlinkTag:      "blink",
	BlockQuoteTag: "blockquote",
	BodyTag:       "body",
	BrTag:         "br",
	ButtonTag:     "button",
	CanvasTag:     "canvas",
	CaptionTag:    "caption",
	CenterTag:     "center",
	CiteTag:       "cite",
	CodeTag:       "code",
	ColTag:        "col",
	ColGroupTag:   "colgroup",
	CommandTag:    "command",
	CommentTag:    "!",
	DataListTag:   "datalist",
	DDTag:         "dd",
	DelTag:        "del",
	DetailsTag:    "details",
	DfnTag:        "dfn",
	DialogTag:     "dialog",
	DirTag:        "dir",
	DivTag:        "div",
	DLTag:         "dl",
	DTTag:         "dt",
	EMTag:         "em",
	EmbedTag:      "embed",
	FieldSetTag:   "fieldset",
	FigCaptionTag: "figcaption",
	FigureTag:     "figure",
	FontTag:       "font",
	FooterTag:     "footer",
	FormTag:       "form",
	FrameTag:      "frame",
	FrameSetTag:   "frameset",
	H1Tag:         "h1",
	H2Tag:         "h2",
	H3Tag:         "h3",
	H4Tag:         "h4",
	H5Tag:         "h5",
	H6Tag:         "h6",
	HeadTag:       "head",
	HeaderTag:     "header",
	HGroupTag:     "hgroup",
	HRTag:         "hr",
	HtmlTag:       "html",
	ITag:          "i",
	IFrameTag:     "iframe",
	ImageTag:      "image",
	ImgTag:        "img",
	InputTag:      "input",
	InsTag:        "ins",
	IsIndexTag:    "isindex",
	KbdTag:        "kbd",
	KeygenTag:     "keygen",
	LabelTag:      "label",
	LegendTag:     "legend",
	LITag:         "li",
	LinkTag:       "link",
	ListingTag:    "listing",
	MainTag:       "main",
	MapTag:        "map",
	MarkTag:       "mark",
	MarqueeTag:    "marquee",
	MenuTag:       "menu",
	MenuItemTag:   "menuitem",
	MetaTag:       "meta",
	MeterTag:      "meter",
	NavTag:        "nav",
	NextIDTag:     "nextid",
	NoBRTag:       "nobr",
	NoEmbedTag:    "noembed",
	NoFramesTag:   "noframes",
	NoScriptTag:   "noscript",
	ObjectTag:     "object",
	OLTag:         "ol",
	OptGroupTag:   "optgroup",
	OptionTag:     "option",
	OutputTag:     "output",
	PTag:          "p",
	ParamTag:      "param",
	PlainTextTag:  "plaintext",
	PreTag:        "pre",
	ProgressTag:   "progress",
	QTag:          "q",
	RPTag:         "rp",
	RTTag:         "rt",
	RubyTag:       "ruby",
	STag:          "s",
	SampTag:       "samp",
	ScriptTag:     "script",
	SectionTag:    "section",
	SelectTag:     "select",
	SmallTag:      "small",
	SourceTag:     "source",
	SpanTag:       "span",
	StrikeTag:     "strike",
	StrongTag:     "strong",
	StyleTag:      "style",
	SubTag:        "sub",
	SummaryTag:    "summary",
	SupTag:        "sup",
	TableTag:      "table",
	TBodyTag:      "tbody",
	TDTag:         "td",
	TemplateTag:   "template",
	TextAreaTag:   "textarea",
	TFootTag:      "tfoot",
	THTag:         "th",
	THeadTag:      "thead",
	TimeTag:       "time",
	TitleTag:      "title",
	TRTag:         "tr",
	TrackTag:      "track",
	TTTag:         "tt",
	UTag:          "u",
	ULTag:         "ul",
	VarTag:        "var",
	VideoTag:      "video",
	WbrTag:        "wbr",
	XmlTag:        "xml",
	XmpTag:        "xmp",
}

// tagIDs is keyed by the lower-case tag name.
var tagIDs = func() map[string]TagID {
	m := make(map[string]TagID, tagCount)
	for id := TagID(0); id < tagCount; id++ {
		m[tagNames[id]] = id
	}
	return m
}()

// Name returns the canonical lower-case name of the tag, or "" for
// UnknownTag.
func (id TagID) Name() string {
	if id < 0 || id >= tagCount {
		return ""
	}
	return tagNames[id]
}

func (id TagID) String() string {
	if name := id.Name(); name != "" {
		return name
	}
	return "unknown"
}

// TagNameToID looks a tag name up, ignoring ASCII case. Any name starting
// with '!' maps to CommentTag.
func TagNameToID(name string) TagID {
	if name == "" {
		return UnknownTag
	}
	if name[0] == '!' {
		return CommentTag
	}
	if id, ok := tagIDs[asciiLower(name)]; ok {
		return id
	}
	return UnknownTag
}

// IsVoidElement reports whether the element never has content.
func (id TagID) IsVoidElement() bool {
	switch id {
	case AreaTag, BaseTag, BrTag, ColTag, CommandTag, EmbedTag, HRTag, ImgTag, InputTag,
		KeygenTag, LinkTag, MetaTag, ParamTag, SourceTag, TrackTag, WbrTag:
		return true
	default:
		return false
	}
}

// IsFormattingElement reports whether the element is one of the legacy
// inline formatting elements.
func (id TagID) IsFormattingElement() bool {
	switch id {
	case ATag, BTag, BigTag, CodeTag, EMTag, FontTag, ITag, NoBRTag, STag,
		SmallTag, StrikeTag, StrongTag, TTTag, UTag:
		return true
	default:
		return false
	}
}

// asciiLower lower-cases the ASCII letters of s and leaves every other rune
// alone.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if c := b[j]; 'A' <= c && c <= 'Z' {
					b[j] = c + 0x20
				}
			}
			return string(b)
		}
	}
	return s
}

// asciiEqualFold is strings.EqualFold restricted to ASCII letters.
func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 0x20
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 0x20
		}
		if ca != cb {
			return false
		}
	}
	return true
}
