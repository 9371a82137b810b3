package mask_test

import (
	"fmt"

	"github.com/dmitrymomot/inputmask/pkg/mask"
)

func ExampleEngine_Mask() {
	e := mask.MustNew("(NNN) NNN-NNNN", mask.DefaultTokens())

	fmt.Printf("%q\n", e.Mask("5551234567"))
	fmt.Printf("%q\n", e.Mask("555"))
	// Output:
	// "(555) 123-4567"
	// "(555)    -    "
}

func ExampleEngine_Unmask() {
	e := mask.MustNew("NN/NN/NNNN", mask.DefaultTokens())

	fmt.Println(e.Unmask("12/31/2024", true))
	n, ok := e.UnmaskInt("12/31/2024", true)
	fmt.Println(n, ok)
	// Output:
	// 12312024
	// 12312024 true
}

func ExampleTokens_With() {
	hex := mask.DefaultTokens().With('H', func(r rune) bool {
		return mask.IsDigit(r) || (r >= 'a' && r <= 'f')
	})

	fmt.Println(mask.Format("deadbeef", "HH:HH:HH:HH", hex))
	// Output: de:ad:be:ef
}
