package rdm_test

import (
	"fmt"

	"github.com/katalvlaran/neurorsa/cluster"
	"github.com/katalvlaran/neurorsa/rdm"
)

// ExampleModels builds the categorical RDM for a two-cluster hypothesis over
// four conditions and prints it. 0 = same cluster, 2 = different clusters.
func ExampleModels() {
	scheme := cluster.Scheme{
		Name: "animate vs inanimate",
		Specs: []cluster.Spec{
			{Targets: []int{1, 2}, Desc: "animate"},
			{Targets: []int{3, 4}, Desc: "inanimate"},
		},
	}

	models, err := rdm.Models(4, []cluster.Scheme{scheme})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	m := models[0]
	fmt.Println(m.Desc)
	for i := 0; i < m.Size(); i++ {
		for j := 0; j < m.Size(); j++ {
			if j > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%.0f", m.At(i, j))
		}
		fmt.Println()
	}
	fmt.Println("triangle:", m.TriangleVector())
	// Output:
	// animate vs inanimate
	// 0 0 2 2
	// 0 0 2 2
	// 2 2 0 0
	// 2 2 0 0
	// triangle: [0 2 2 2 2 0]
}
