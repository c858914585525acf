// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// LLMEvent is the predicate function for llmevent builders.
type LLMEvent func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)
