package parser

// Namespace is a namespace an <html> element may declare with xmlns.
type Namespace uint

const (
	HTMLNamespace Namespace = iota
	MathMLNamespace
	SVGNamespace
	XLinkNamespace
	XMLNamespace
	XMLNSNamespace
)

var namespaceURIs = [...]string{
	HTMLNamespace:   "http://www.w3.org/1999/xhtml",
	MathMLNamespace: "http://www.w3.org/1998/Math/MathML",
	SVGNamespace:    "http://www.w3.org/2000/svg",
	XLinkNamespace:  "http://www.w3.org/1999/xlink",
	XMLNamespace:    "http://www.w3.org/XML/1998/namespace",
	XMLNSNamespace:  "http://www.w3.org/2000/xmlns/",
}

// URI returns the namespace URI.
func (ns Namespace) URI() string {
	if int(ns) < len(namespaceURIs) {
		return namespaceURIs[ns]
	}
	return ""
}

func (ns Namespace) String() string {
	switch ns {
	case HTMLNamespace:
		return "html"
	case MathMLNamespace:
		return "mathml"
	case SVGNamespace:
		return "svg"
	case XLinkNamespace:
		return "xlink"
	case XMLNamespace:
		return "xml"
	case XMLNSNamespace:
		return "xmlns"
	}
	return "unknown"
}

// ParseNamespace maps a namespace URI, compared ignoring ASCII case, to a
// Namespace.
func ParseNamespace(uri string) (Namespace, bool) {
	for i, u := range namespaceURIs {
		if asciiEqualFold(u, uri) {
			return Namespace(i), true
		}
	}
	return HTMLNamespace, false
}
