// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Comment is the predicate function for comment builders.
type Comment func(*sql.Selector)

// Mention is the predicate function for mention builders.
type Mention func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TimeEntry is the predicate function for timeentry builders.
type TimeEntry func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
