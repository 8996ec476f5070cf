package eventstore

import (
	"slices"
)

type FilterEventTypeString = string
type FilterKeyString = string
type FilterValString = string

/***** Filter *****/

// Filter selects one "dynamic stream": a set of event types, optionally
// narrowed by predicates matched against the JSON payload. Custody operations
// always read the stream of a single book, so a Filter holds exactly one
// group of event types and one group of predicates.
type Filter struct {
	eventTypes             []FilterEventTypeString
	predicates             []FilterPredicate
	allPredicatesMustMatch bool
}

func (f Filter) EventTypes() []FilterEventTypeString {
	return f.eventTypes
}

func (f Filter) Predicates() []FilterPredicate {
	return f.predicates
}

func (f Filter) AllPredicatesMustMatch() bool {
	return f.allPredicatesMustMatch
}

// IsEmpty reports whether the filter matches every event.
func (f Filter) IsEmpty() bool {
	return len(f.eventTypes) == 0 && len(f.predicates) == 0
}

/***** FilterPredicate *****/

// FilterPredicate matches events whose JSON payload contains key: val.
type FilterPredicate struct {
	key FilterKeyString
	val FilterValString
}

func P(key FilterKeyString, val FilterValString) FilterPredicate {
	return FilterPredicate{key: key, val: val}
}

func (fp FilterPredicate) Key() FilterKeyString {
	return fp.key
}

func (fp FilterPredicate) Val() FilterValString {
	return fp.val
}

/***** FilterBuilder *****/

// FilterBuilder builds a Filter to be translated into queries by DB
// type-specific engine implementations. It only allows the combinations a
// custody operation actually needs:
//
//   - empty filter (every event)
//   - (eventType OR eventType...)
//   - (predicate OR predicate...)
//   - (predicate AND predicate...)
//   - ((eventType OR eventType...) AND (predicate OR predicate...))
//   - ((eventType OR eventType...) AND (predicate AND predicate...))
type FilterBuilder interface {
	// Matching starts the filter definition.
	Matching() EmptyFilterBuilder

	// MatchingAnyEvent directly creates an empty Filter.
	MatchingAnyEvent() Filter
}

type EmptyFilterBuilder interface {
	// AnyEventTypeOf adds one or multiple event types, matching events of ANY of them.
	//
	// It sanitizes the input: empty types removed, sorted, duplicates removed.
	AnyEventTypeOf(eventType FilterEventTypeString, eventTypes ...FilterEventTypeString) FilterBuilderLackingPredicates

	// AnyPredicateOf adds one or multiple predicates, matching events containing ANY of them.
	//
	// It sanitizes the input: empty/partial predicates removed, sorted, duplicates removed.
	AnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterBuilder

	// AllPredicatesOf adds one or multiple predicates, matching events containing ALL of them.
	//
	// It sanitizes the input: empty/partial predicates removed, sorted, duplicates removed.
	AllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterBuilder
}

type FilterBuilderLackingPredicates interface {
	// AndAnyPredicateOf adds one or multiple predicates, matching events containing ANY of them.
	AndAnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterBuilder

	// AndAllPredicatesOf adds one or multiple predicates, matching events containing ALL of them.
	AndAllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterBuilder

	// Finalize returns the Filter once it has at least one event type OR one predicate.
	Finalize() Filter
}

type CompletedFilterBuilder interface {
	// Finalize returns the Filter once it has at least one event type OR one predicate.
	Finalize() Filter
}

// filterBuilder implements all the interfaces of FilterBuilder.
type filterBuilder struct {
	filter Filter
}

// BuildEventFilter creates a FilterBuilder which must eventually be finalized
// with Finalize() or MatchingAnyEvent().
func BuildEventFilter() FilterBuilder {
	return filterBuilder{}
}

// Matching starts the filter definition.
func (fb filterBuilder) Matching() EmptyFilterBuilder {
	return fb
}

// MatchingAnyEvent directly creates an empty filter.
func (fb filterBuilder) MatchingAnyEvent() Filter {
	return fb.filter
}

func (fb filterBuilder) AnyEventTypeOf(
	eventType FilterEventTypeString,
	eventTypes ...FilterEventTypeString,
) FilterBuilderLackingPredicates {

	fb.filter.eventTypes = append(
		fb.filter.eventTypes,
		sanitizeEventTypes(eventType, eventTypes...)...,
	)

	return fb
}

func (fb filterBuilder) AnyPredicateOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) CompletedFilterBuilder {

	fb.filter.predicates = append(
		fb.filter.predicates,
		sanitizePredicates(predicate, predicates...)...,
	)

	return fb
}

func (fb filterBuilder) AllPredicatesOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) CompletedFilterBuilder {

	fb.filter.allPredicatesMustMatch = true

	fb.filter.predicates = append(
		fb.filter.predicates,
		sanitizePredicates(predicate, predicates...)...,
	)

	return fb
}

func (fb filterBuilder) AndAnyPredicateOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) CompletedFilterBuilder {

	return fb.AnyPredicateOf(predicate, predicates...)
}

func (fb filterBuilder) AndAllPredicatesOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) CompletedFilterBuilder {

	return fb.AllPredicatesOf(predicate, predicates...)
}

// Finalize returns the Filter.
func (fb filterBuilder) Finalize() Filter {
	return fb.filter
}

func sanitizeEventTypes(
	eventType FilterEventTypeString,
	eventTypes ...FilterEventTypeString,
) []FilterEventTypeString {

	allEventTypes := append([]FilterEventTypeString{eventType}, eventTypes...)
	allEventTypes = slices.DeleteFunc(
		allEventTypes,
		func(e FilterEventTypeString) bool {
			return e == ""
		})
	slices.Sort(allEventTypes)
	allEventTypes = slices.Compact(allEventTypes)
	allEventTypes = slices.Clip(allEventTypes)

	return allEventTypes
}

func sanitizePredicates(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) []FilterPredicate {

	allPredicates := append([]FilterPredicate{predicate}, predicates...)
	allPredicates = slices.DeleteFunc(
		allPredicates,
		func(e FilterPredicate) bool {
			return len(e.key) == 0 || len(e.val) == 0
		})
	slices.SortFunc(
		allPredicates,
		func(a, b FilterPredicate) int {
			if a.key > b.key {
				return 1
			}

			if a.key < b.key {
				return -1
			}

			return 0
		})

	allPredicates = slices.Compact(allPredicates)
	allPredicates = slices.Clip(allPredicates)

	return allPredicates
}
