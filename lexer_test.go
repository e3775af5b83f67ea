package browserx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLex(t *testing.T) {
	type test struct {
		Name     string
		Body     string
		Expected string
	}

	tests := []test{
		{
			Name:     "SimpleTag",
			Body:     "<p>hi</p>",
			Expected: "hi",
		},
		{
			Name:     "NestedTags",
			Body:     "<html><body>Hello, <b>world</b>!</body></html>",
			Expected: "Hello, world!",
		},
		{
			Name:     "NoTags",
			Body:     "plain text",
			Expected: "plain text",
		},
		{
			Name:     "Entities",
			Body:     "1 &lt; 2 &gt; 0",
			Expected: "1 < 2 > 0",
		},
		{
			Name:     "EntityInsideTagIgnored",
			Body:     "<a href=\"x&lt;y\">link</a>",
			Expected: "link",
		},
		{
			Name:     "Empty",
			Body:     "",
			Expected: "",
		},
		{
			Name:     "AttributesStripped",
			Body:     "<img src=\"cat.png\" alt=\"cat\">meow",
			Expected: "meow",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			assert.Equal(t, test.Expected, Lex(test.Body))
		})
	}
}
