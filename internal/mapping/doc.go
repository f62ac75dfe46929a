// Package mapping provides the YAML schema, parsing, validation and
// application of cast plans.
//
// A plan is a declarative form of a Caster chain, so the same casting rules
// can be reviewed and versioned outside Go code.
//
// # Schema Overview
//
//	version: "1"
//	into: object            # "", "map" or "object"
//	steps:
//	  - source: test        # dotted path read from the record
//	    target: output      # dotted path written to the result
//	    type: int           # built-in or registered type name
//	  - source: tags
//	    target: labels
//	    all: true           # cast every element of a sequence
//	    type: [string, upper]
//	  - when: flags.enabled # nested steps run when the field is truthy
//	    steps:
//	      - source: name
//	        target: profile.name
//
// A step either casts (source, target, type, all) or branches (when, steps),
// never both. Several type names form a pipeline applied left to right.
package mapping
