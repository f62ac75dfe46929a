package forecast

import (
	"fmt"
	"reflect"

	"forecaster/internal/common"
	"forecaster/internal/match"
	"forecaster/utils"
)

var anyType = reflect.TypeFor[any]()

// newObject builds a pointer to an ad-hoc struct holding the top-level
// processed keys. Keys map to exported field names, clashing names get a
// numeric suffix. Every field is tagged with its key for json, yaml and cast lookups.
func newObject(processed map[string]any) any {
	keys := utils.SortedKeys(processed)
	stem := common.NewStem(nil)

	fields := make([]reflect.StructField, len(keys))
	for i, key := range keys {
		typ := anyType
		if v := processed[key]; v != nil {
			typ = reflect.TypeOf(v)
		}

		fields[i] = reflect.StructField{
			Name: stem.Claim(match.ExportedName(key)),
			Type: typ,
			Tag:  reflect.StructTag(fmt.Sprintf("json:%q yaml:%q cast:%q", key, key, key)),
		}
	}

	obj := reflect.New(reflect.StructOf(fields))
	for i, key := range keys {
		if v := processed[key]; v != nil {
			obj.Elem().Field(i).Set(reflect.ValueOf(v))
		}
	}

	return obj.Interface()
}
