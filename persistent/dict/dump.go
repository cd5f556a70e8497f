package dict

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the representation of d, i.e. the chain of edits from d to the owner
// of its family's table. It is meant for debugging and does not rotate the table.
//
//     Dict(distance=2)
//     └── removed(a, was 1)
//         └── inserted(b, was absent)
//             └── owner(#1)
//
func (d Dict[K, V]) Dump() string {
	if d.c == nil {
		return "Dict(empty)\n"
	}
	path, err := chainOf(d.c)
	if err != nil {
		return fmt.Sprintf("Dict(corrupt: %v)\n", err)
	}
	printer := tp.New()
	printer.SetValue(fmt.Sprintf("Dict(distance=%d)", len(path)-1))
	branch := printer
	for _, c := range path {
		branch = branch.AddBranch(c.String())
	}
	return printer.String()
}
