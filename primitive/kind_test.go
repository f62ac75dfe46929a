package primitive_test

import (
	"fmt"
	"reflect"

	"forecaster/primitive"
)

func Example() {
	type Level int

	fmt.Println(primitive.Lookup("integer"))
	fmt.Println(primitive.Lookup("double"))
	fmt.Println(primitive.Lookup("bool"))
	fmt.Println(primitive.Lookup("string"))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Level(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(struct{}{})))
	fmt.Println(primitive.Names())
	// Output:
	// KindInt true
	// KindFloat true
	// KindBool true
	// KindEnum(0) false
	// KindInt
	// KindEnum(0)
	// [bool boolean double float int integer real]
}
