package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeNameToID(t *testing.T) {
	assert.Equal(t, HrefAttribute, AttributeNameToID("href"))
	assert.Equal(t, HrefAttribute, AttributeNameToID("HREF"))
	assert.Equal(t, XmlNSAttribute, AttributeNameToID("xmlns"))
	assert.Equal(t, UnknownAttribute, AttributeNameToID("data-x"))
	assert.Equal(t, UnknownAttribute, AttributeNameToID(""))
	assert.Equal(t, "class", ClassAttribute.String())
}

func TestAttribute(t *testing.T) {
	a := attr("Class", "x")
	assert.Equal(t, ClassAttribute, a.ID)
	assert.Equal(t, "x", a.Val())

	b := NewAttribute("disabled", nil)
	assert.Equal(t, "", b.Val())
	assert.True(t, b.Equal(NewAttribute("disabled", nil)))
	assert.False(t, b.Equal(attr("disabled", "")))
	assert.False(t, a.Equal(attr("class", "x")))
}

func TestAttributeTable(t *testing.T) {
	var table AttributeTable
	table.Add(attr("src", "1"))
	table.Add(attr("ALT", "a"))
	table.Add(attr("src", "2"))
	table.Add(attr("data-x", "y"))

	assert.Equal(t, 4, table.Len())
	assert.Equal(t, "2", table.At(2).Val())
	assert.Equal(t, 1, table.IndexOfName("alt"))
	assert.Equal(t, -1, table.IndexOfName("title"))
	assert.Equal(t, 0, table.IndexOfID(SrcAttribute))
	assert.Equal(t, -1, table.IndexOfID(UnknownAttribute))

	a, ok := table.TryGetName("SRC")
	assert.True(t, ok)
	assert.Equal(t, "1", a.Val())
	_, ok = table.TryGetID(HrefAttribute)
	assert.False(t, ok)

	var names []string
	for i, a := range table.All() {
		if i == 3 {
			break
		}
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"src", "ALT", "src"}, names)

	var other AttributeTable
	assert.False(t, table.Equal(other))
	for _, a := range table.All() {
		other.Add(a)
	}
	assert.True(t, table.Equal(other))
}
