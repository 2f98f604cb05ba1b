// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentSession is the predicate function for agentsession builders.
type AgentSession func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ExecutionPlan is the predicate function for executionplan builders.
type ExecutionPlan func(*sql.Selector)

// MemoryRecord is the predicate function for memoryrecord builders.
type MemoryRecord func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// SyncQueueItem is the predicate function for syncqueueitem builders.
type SyncQueueItem func(*sql.Selector)
