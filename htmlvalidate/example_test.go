package htmlvalidate_test

import (
	"fmt"

	"github.com/dstarostin/textkit/htmlvalidate"
)

func ExampleValidate() {
	err := htmlvalidate.Validate("<p>AT&T</p>", nil)
	fmt.Println(err)
	// Output: text contains unescaped &: "&T</p>"
}

func ExampleValidate_customWhitelist() {
	opts := &htmlvalidate.Options{
		AllowedTags: append(htmlvalidate.DefaultAllowedTags(), "code"),
	}
	err := htmlvalidate.Validate("<p>run <code>go test</code></p>", opts)
	fmt.Println(err)
	// Output: <nil>
}

func ExampleAsError() {
	err := htmlvalidate.Validate("<div>boxed</div>", nil)
	if verr, ok := htmlvalidate.AsError(err); ok {
		fmt.Println(verr.Code, verr.Tag)
	}
	// Output: disallowed-tag div
}
