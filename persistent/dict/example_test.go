package dict_test

import (
	"fmt"

	"github.com/npillmayer/pdict/persistent/dict"
)

func Example() {
	v1 := dict.Empty[string, int]().Add("a", 1)
	v2 := v1.Add("b", 2)
	v3 := v2.Remove("a")
	fmt.Println(v1.Keys(), v2.Keys(), v3.Keys())
	x, _ := v1.Get("a")
	fmt.Println(x)
	// Output:
	// [a] [a b] [b]
	// 1
}

func ExampleDict_Touch() {
	undo := dict.FromMap(map[string]string{"title": "draft"})
	doc := undo.Add("title", "final").Add("author", "N.N.")
	undo = undo.Touch() // queries on undo are O(1) from here on
	fmt.Println(undo)
	fmt.Println(doc)
	// Output:
	// {title:draft}
	// {author:N.N. title:final}
}

func ExampleDict_Lookup() {
	d := dict.Empty[int, string]().Add(7, "seven")
	fmt.Println(d.Lookup(7).WithDefault("?"), d.Lookup(8).WithDefault("?"))
	// Output: seven ?
}
