// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/elliebot/relay/ent/predicate"
	"github.com/elliebot/relay/ent/syncqueueitem"
)

// SyncQueueItemDelete is the builder for deleting a SyncQueueItem entity.
type SyncQueueItemDelete struct {
	config
	hooks    []Hook
	mutation *SyncQueueItemMutation
}

// Where appends a list predicates to the SyncQueueItemDelete builder.
func (_d *SyncQueueItemDelete) Where(ps ...predicate.SyncQueueItem) *SyncQueueItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SyncQueueItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SyncQueueItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SyncQueueItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(syncqueueitem.Table, sqlgraph.NewFieldSpec(syncqueueitem.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SyncQueueItemDeleteOne is the builder for deleting a single SyncQueueItem entity.
type SyncQueueItemDeleteOne struct {
	_d *SyncQueueItemDelete
}

// Where appends a list predicates to the SyncQueueItemDelete builder.
func (_d *SyncQueueItemDeleteOne) Where(ps ...predicate.SyncQueueItem) *SyncQueueItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SyncQueueItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{syncqueueitem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SyncQueueItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
