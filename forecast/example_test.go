package forecast_test

import (
	"fmt"
	"os"
	"strings"

	"forecaster/forecast"
)

type order struct {
	ID     int
	Amount float64
	Tags   []any
}

func newOrder(processed map[string]any) *order {
	return &order{
		ID:     processed["id"].(int),
		Amount: processed["amount"].(float64),
		Tags:   processed["tags"].([]any),
	}
}

func Example() {
	record := map[string]any{
		"id":     "42",
		"amount": "19.90 EUR",
		"tags":   []any{"new", "gift"},
		"customer": map[string]any{
			"name": "Ada",
		},
	}

	out, err := forecast.Make(record).
		Cast("id", "id", forecast.Type("int")).
		Cast("amount", "amount", forecast.Type("float")).
		Cast("customer.name", "customer.display_name").
		CastAll("tags", "labels", forecast.Fn(strings.ToUpper)).
		Get(forecast.NoTarget())
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(out)
	// Output:
	// map[amount:19.9 customer:map[display_name:Ada] id:42 labels:[NEW GIFT]]
}

func ExampleRegistry() {
	reg := forecast.NewRegistry().
		MustRegister("csv", func(s string) []string { return strings.Split(s, ",") })

	cfg := forecast.DefaultConfig()
	cfg.Registry = reg

	out, _ := forecast.New(map[string]any{"test": "1,2,3"}, cfg).
		Cast("test", "output", forecast.Type("csv")).
		Get(forecast.NoTarget())

	fmt.Println(out)
	fmt.Println(reg.Has("csv"), reg.Has("int"), reg.Has("test"))

	err := reg.Register("int", strings.TrimSpace)
	fmt.Println(err)
	// Output:
	// map[output:[1 2 3]]
	// true true false
	// transformer type is a built in transformer: "int"
}

func ExampleCaster_When() {
	record := map[string]any{"test": "10", "admin": "1"}

	isAdmin := forecast.Condition(func(record any, _ map[string]any) bool {
		return record.(map[string]any)["admin"] == "1"
	})

	out, _ := forecast.Make(record).
		When(isAdmin, func(c *forecast.Caster) {
			c.Cast("test", "level", forecast.Type("int"))
		}).
		When(false, func(c *forecast.Caster) {
			c.Cast("test", "skipped")
		}).
		Get(forecast.NoTarget())

	fmt.Println(out)
	// Output:
	// map[level:10]
}

func ExampleConstructorTarget() {
	o, err := forecast.GetAs[*order](
		forecast.Make(map[string]any{"id": "7", "amount": "3.5", "tags": []any{}}).
			Cast("id", "id", forecast.Type("int")).
			Cast("amount", "amount", forecast.Type("float")).
			CastAll("tags", "tags"),
		forecast.ConstructorTarget(newOrder),
	)

	fmt.Printf("%+v %v\n", *o, err)
	// Output:
	// {ID:7 Amount:3.5 Tags:[]} <nil>
}

func ExampleObjectTarget() {
	obj, _ := forecast.Make(map[string]any{"test": "10", "first_name": "Ada"}).
		Cast("test", "output", forecast.Type("int")).
		Cast("first_name", "first_name").
		Get(forecast.ObjectTarget())

	fmt.Printf("%+v\n", obj)
	// Output:
	// &{FirstName:Ada Output:10}
}

func ExampleCaster_CastAll() {
	_, err := forecast.Make(map[string]any{"test": "1,2,3"}).
		CastAll("test", "output", forecast.Type("int")).
		Get(forecast.NoTarget())

	fmt.Println(err)
	// Output:
	// cast_all test -> output: field does not provide a sequence: got string
}

func ExampleCaster_Dump() {
	forecast.Make(map[string]any{"id": "7"}).
		Cast("id", "id", forecast.Type("int")).
		Dump(os.Stdout)
	// Output:
	// (map[string]interface {}) (len=1) {
	//   (string) (len=2) "id": (int) 7
	// }
}
