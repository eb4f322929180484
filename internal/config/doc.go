// Package config provides YAML definitions, parsing, and eager validation
// for the composition pipeline's configuration.
//
// Configuration is a first-class input: field groups and typed-reference
// maps are explicit immutable values loaded before any document is
// touched, never module-level tables.
//
// # Schema Overview
//
// The configuration file has the following structure:
//
//	version: "1"
//	groups:
//	  - name: identity
//	    action: direct          # fields stay inline, never composed
//	    fields: [id, tenant_id, created_at]
//	  - name: physics
//	    action: compose         # fields move behind one $ref property
//	    ref: ../components/FieldExcitation.schema.json
//	    description: Field excitation physics state
//	    fields: [amplitude, energy, position, velocity, temperature]
//	targets:
//	  - entities/Thread.schema.json
//	  - entities/Moment.schema.json
//	typed_refs:
//	  - document: database/MessageModel.schema.json
//	    fields:
//	      - field: sender_id
//	        ref: ../primitives/UserId.schema.json
//	        nullable: true
//
// # Validation
//
// Validate rejects, before any document is read: duplicate or empty group
// names, overlapping group member sets, compose groups without a ref, and
// contradictory typed-reference entries. Violations surface as a single
// ConfigurationError listing every problem.
package config
