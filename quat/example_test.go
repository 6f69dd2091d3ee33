// SPDX-License-Identifier: MIT

package quat_test

import (
	"fmt"

	"github.com/AlexS90/quatimage/quat"
)

// ExampleConjugate demonstrates quaternion conjugation: the real component
// is kept, the three imaginary-like components flip sign.
func ExampleConjugate() {
	q, _ := quat.NewMatrix(1, 1)
	_ = q.Set(0, 0, [4]float64{1, 2, 3, 4})

	c, _ := quat.Conjugate(q)
	v, _ := c.At(0, 0)
	fmt.Println(v)
	// Output: [1 -2 -3 -4]
}

// ExampleMul multiplies the basis quaternions i and j, yielding k.
func ExampleMul() {
	i, _ := quat.NewMatrix(1, 1)
	_ = i.Set(0, 0, [4]float64{0, 1, 0, 0})
	j, _ := quat.NewMatrix(1, 1)
	_ = j.Set(0, 0, [4]float64{0, 0, 1, 0})

	k, _ := quat.Mul(i, j)
	v, _ := k.At(0, 0)
	fmt.Println(v)
	// Output: [0 0 0 1]
}
