package effect_test

import (
	"fmt"
	"strings"

	"github.com/charmingruby/adequate/effect"
)

func ExampleIO_Run() {
	window := map[string]string{"href": "http://localhost:8000/blog/posts?tag=go"}
	url := effect.New(func() string { return window["href"] })
	params := effect.Map(url, func(href string) []string {
		_, query, _ := strings.Cut(href, "?")
		return strings.Split(query, "&")
	})
	window["href"] = "http://localhost:8000/search?q=monads&page=2"
	fmt.Println(params.Run())
	// Output:
	// [q=monads page=2]
}
