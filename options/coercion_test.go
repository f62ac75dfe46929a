package options_test

import (
	"fmt"

	"forecaster/options"
)

func ExampleCoercionEnum_Has() {
	flags := options.CoercionDefault | options.CoercionTextualBool

	fmt.Println(flags.Has(options.CoercionLeadingNumber))
	fmt.Println(flags.Has(options.CoercionAll))
	fmt.Println(options.CoercionDefault.Has(options.CoercionTextualBool))
	fmt.Println(options.CoercionNone.Has(options.CoercionNone))
	// Output:
	// true
	// true
	// false
	// true
}
