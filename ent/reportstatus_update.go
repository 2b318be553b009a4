// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"kolekta.io/kolekta/ent/predicate"
	"kolekta.io/kolekta/ent/reportstatus"
)

// ReportStatusUpdate is the builder for updating ReportStatus entities.
type ReportStatusUpdate struct {
	config
	hooks    []Hook
	mutation *ReportStatusMutation
}

// Where appends a list predicates to the ReportStatusUpdate builder.
func (_u *ReportStatusUpdate) Where(ps ...predicate.ReportStatus) *ReportStatusUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportStatusUpdate) SetUpdatedAt(v time.Time) *ReportStatusUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportStatusUpdate) SetStatus(v reportstatus.Status) *ReportStatusUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportStatusUpdate) SetNillableStatus(v *reportstatus.Status) *ReportStatusUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOfficialResponse sets the "official_response" field.
func (_u *ReportStatusUpdate) SetOfficialResponse(v string) *ReportStatusUpdate {
	_u.mutation.SetOfficialResponse(v)
	return _u
}

// SetNillableOfficialResponse sets the "official_response" field if the given value is not nil.
func (_u *ReportStatusUpdate) SetNillableOfficialResponse(v *string) *ReportStatusUpdate {
	if v != nil {
		_u.SetOfficialResponse(*v)
	}
	return _u
}

// ClearOfficialResponse clears the value of the "official_response" field.
func (_u *ReportStatusUpdate) ClearOfficialResponse() *ReportStatusUpdate {
	_u.mutation.ClearOfficialResponse()
	return _u
}

// Mutation returns the ReportStatusMutation object of the builder.
func (_u *ReportStatusUpdate) Mutation() *ReportStatusMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportStatusUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportStatusUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportStatusUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportStatusUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportStatusUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reportstatus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportStatusUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := reportstatus.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReportStatus.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportStatusUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportstatus.Table, reportstatus.Columns, sqlgraph.NewFieldSpec(reportstatus.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reportstatus.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reportstatus.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OfficialResponse(); ok {
		_spec.SetField(reportstatus.FieldOfficialResponse, field.TypeString, value)
	}
	if _u.mutation.OfficialResponseCleared() {
		_spec.ClearField(reportstatus.FieldOfficialResponse, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportStatusUpdateOne is the builder for updating a single ReportStatus entity.
type ReportStatusUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportStatusMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportStatusUpdateOne) SetUpdatedAt(v time.Time) *ReportStatusUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportStatusUpdateOne) SetStatus(v reportstatus.Status) *ReportStatusUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportStatusUpdateOne) SetNillableStatus(v *reportstatus.Status) *ReportStatusUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOfficialResponse sets the "official_response" field.
func (_u *ReportStatusUpdateOne) SetOfficialResponse(v string) *ReportStatusUpdateOne {
	_u.mutation.SetOfficialResponse(v)
	return _u
}

// SetNillableOfficialResponse sets the "official_response" field if the given value is not nil.
func (_u *ReportStatusUpdateOne) SetNillableOfficialResponse(v *string) *ReportStatusUpdateOne {
	if v != nil {
		_u.SetOfficialResponse(*v)
	}
	return _u
}

// ClearOfficialResponse clears the value of the "official_response" field.
func (_u *ReportStatusUpdateOne) ClearOfficialResponse() *ReportStatusUpdateOne {
	_u.mutation.ClearOfficialResponse()
	return _u
}

// Mutation returns the ReportStatusMutation object of the builder.
func (_u *ReportStatusUpdateOne) Mutation() *ReportStatusMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReportStatusUpdate builder.
func (_u *ReportStatusUpdateOne) Where(ps ...predicate.ReportStatus) *ReportStatusUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportStatusUpdateOne) Select(field string, fields ...string) *ReportStatusUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReportStatus entity.
func (_u *ReportStatusUpdateOne) Save(ctx context.Context) (*ReportStatus, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportStatusUpdateOne) SaveX(ctx context.Context) *ReportStatus {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportStatusUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportStatusUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportStatusUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reportstatus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportStatusUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := reportstatus.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReportStatus.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportStatusUpdateOne) sqlSave(ctx context.Context) (_node *ReportStatus, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportstatus.Table, reportstatus.Columns, sqlgraph.NewFieldSpec(reportstatus.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportStatus.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportstatus.FieldID)
		for _, f := range fields {
			if !reportstatus.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportstatus.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reportstatus.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reportstatus.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OfficialResponse(); ok {
		_spec.SetField(reportstatus.FieldOfficialResponse, field.TypeString, value)
	}
	if _u.mutation.OfficialResponseCleared() {
		_spec.ClearField(reportstatus.FieldOfficialResponse, field.TypeString)
	}
	_node = &ReportStatus{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
