// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Artifact is the predicate function for artifact builders.
type Artifact func(*sql.Selector)

// BillingEntry is the predicate function for billingentry builders.
type BillingEntry func(*sql.Selector)

// CreditReservation is the predicate function for creditreservation builders.
type CreditReservation func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ModelHealth is the predicate function for modelhealth builders.
type ModelHealth func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// Step is the predicate function for step builders.
type Step func(*sql.Selector)

// TokenUsage is the predicate function for tokenusage builders.
type TokenUsage func(*sql.Selector)
