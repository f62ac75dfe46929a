// Package forecast casts fields of loosely structured records into a new,
// well typed shape.
//
// A Caster reads a field by dotted path, converts it and stores it under an
// output path:
//
//	out, err := forecast.Make(record).
//		Cast("id", "id", forecast.Type("int")).
//		Cast("name", "profile.name").
//		CastAll("tags", "labels", forecast.Fn(strings.ToUpper)).
//		Get(forecast.NoTarget())
//
// Conversions are chosen per call with Directives: a built-in primitive or a
// registered custom transformer by name (Type), a plain function (Fn), or a
// Transformer object that sees the whole record (With). Custom names live in
// a Registry passed through Config.
package forecast
