// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"kolekta.io/kolekta/ent/predicate"
	"kolekta.io/kolekta/ent/schedule"
	"kolekta.io/kolekta/ent/schema"
)

// ScheduleUpdate is the builder for updating Schedule entities.
type ScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleMutation
}

// Where appends a list predicates to the ScheduleUpdate builder.
func (_u *ScheduleUpdate) Where(ps ...predicate.Schedule) *ScheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduleUpdate) SetUpdatedAt(v time.Time) *ScheduleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPurok sets the "purok" field.
func (_u *ScheduleUpdate) SetPurok(v string) *ScheduleUpdate {
	_u.mutation.SetPurok(v)
	return _u
}

// SetNillablePurok sets the "purok" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillablePurok(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetPurok(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *ScheduleUpdate) SetPlan(v schedule.Plan) *ScheduleUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillablePlan(v *schedule.Plan) *ScheduleUpdate {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *ScheduleUpdate) SetDay(v string) *ScheduleUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableDay(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *ScheduleUpdate) SetDate(v string) *ScheduleUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableDate(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *ScheduleUpdate) SetStartTime(v string) *ScheduleUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableStartTime(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *ScheduleUpdate) SetEndTime(v string) *ScheduleUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableEndTime(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetWasteType sets the "waste_type" field.
func (_u *ScheduleUpdate) SetWasteType(v schedule.WasteType) *ScheduleUpdate {
	_u.mutation.SetWasteType(v)
	return _u
}

// SetNillableWasteType sets the "waste_type" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableWasteType(v *schedule.WasteType) *ScheduleUpdate {
	if v != nil {
		_u.SetWasteType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduleUpdate) SetStatus(v schedule.Status) *ScheduleUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableStatus(v *schedule.Status) *ScheduleUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRoutePoints sets the "route_points" field.
func (_u *ScheduleUpdate) SetRoutePoints(v []schema.RoutePoint) *ScheduleUpdate {
	_u.mutation.SetRoutePoints(v)
	return _u
}

// AppendRoutePoints appends value to the "route_points" field.
func (_u *ScheduleUpdate) AppendRoutePoints(v []schema.RoutePoint) *ScheduleUpdate {
	_u.mutation.AppendRoutePoints(v)
	return _u
}

// ClearRoutePoints clears the value of the "route_points" field.
func (_u *ScheduleUpdate) ClearRoutePoints() *ScheduleUpdate {
	_u.mutation.ClearRoutePoints()
	return _u
}

// Mutation returns the ScheduleMutation object of the builder.
func (_u *ScheduleUpdate) Mutation() *ScheduleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := schedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduleUpdate) check() error {
	if v, ok := _u.mutation.Purok(); ok {
		if err := schedule.PurokValidator(v); err != nil {
			return &ValidationError{Name: "purok", err: fmt.Errorf(`ent: validator failed for field "Schedule.purok": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Plan(); ok {
		if err := schedule.PlanValidator(v); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`ent: validator failed for field "Schedule.plan": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := schedule.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "Schedule.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Date(); ok {
		if err := schedule.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "Schedule.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := schedule.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`ent: validator failed for field "Schedule.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := schedule.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`ent: validator failed for field "Schedule.end_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WasteType(); ok {
		if err := schedule.WasteTypeValidator(v); err != nil {
			return &ValidationError{Name: "waste_type", err: fmt.Errorf(`ent: validator failed for field "Schedule.waste_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := schedule.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Schedule.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedule.Table, schedule.Columns, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(schedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Purok(); ok {
		_spec.SetField(schedule.FieldPurok, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(schedule.FieldPlan, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(schedule.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(schedule.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(schedule.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(schedule.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.WasteType(); ok {
		_spec.SetField(schedule.FieldWasteType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(schedule.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RoutePoints(); ok {
		_spec.SetField(schedule.FieldRoutePoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoutePoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, schedule.FieldRoutePoints, value)
		})
	}
	if _u.mutation.RoutePointsCleared() {
		_spec.ClearField(schedule.FieldRoutePoints, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduleUpdateOne is the builder for updating a single Schedule entity.
type ScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduleUpdateOne) SetUpdatedAt(v time.Time) *ScheduleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPurok sets the "purok" field.
func (_u *ScheduleUpdateOne) SetPurok(v string) *ScheduleUpdateOne {
	_u.mutation.SetPurok(v)
	return _u
}

// SetNillablePurok sets the "purok" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillablePurok(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetPurok(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *ScheduleUpdateOne) SetPlan(v schedule.Plan) *ScheduleUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillablePlan(v *schedule.Plan) *ScheduleUpdateOne {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *ScheduleUpdateOne) SetDay(v string) *ScheduleUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableDay(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *ScheduleUpdateOne) SetDate(v string) *ScheduleUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableDate(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *ScheduleUpdateOne) SetStartTime(v string) *ScheduleUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableStartTime(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *ScheduleUpdateOne) SetEndTime(v string) *ScheduleUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableEndTime(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetWasteType sets the "waste_type" field.
func (_u *ScheduleUpdateOne) SetWasteType(v schedule.WasteType) *ScheduleUpdateOne {
	_u.mutation.SetWasteType(v)
	return _u
}

// SetNillableWasteType sets the "waste_type" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableWasteType(v *schedule.WasteType) *ScheduleUpdateOne {
	if v != nil {
		_u.SetWasteType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduleUpdateOne) SetStatus(v schedule.Status) *ScheduleUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableStatus(v *schedule.Status) *ScheduleUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRoutePoints sets the "route_points" field.
func (_u *ScheduleUpdateOne) SetRoutePoints(v []schema.RoutePoint) *ScheduleUpdateOne {
	_u.mutation.SetRoutePoints(v)
	return _u
}

// AppendRoutePoints appends value to the "route_points" field.
func (_u *ScheduleUpdateOne) AppendRoutePoints(v []schema.RoutePoint) *ScheduleUpdateOne {
	_u.mutation.AppendRoutePoints(v)
	return _u
}

// ClearRoutePoints clears the value of the "route_points" field.
func (_u *ScheduleUpdateOne) ClearRoutePoints() *ScheduleUpdateOne {
	_u.mutation.ClearRoutePoints()
	return _u
}

// Mutation returns the ScheduleMutation object of the builder.
func (_u *ScheduleUpdateOne) Mutation() *ScheduleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduleUpdate builder.
func (_u *ScheduleUpdateOne) Where(ps ...predicate.Schedule) *ScheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduleUpdateOne) Select(field string, fields ...string) *ScheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Schedule entity.
func (_u *ScheduleUpdateOne) Save(ctx context.Context) (*Schedule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleUpdateOne) SaveX(ctx context.Context) *Schedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := schedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduleUpdateOne) check() error {
	if v, ok := _u.mutation.Purok(); ok {
		if err := schedule.PurokValidator(v); err != nil {
			return &ValidationError{Name: "purok", err: fmt.Errorf(`ent: validator failed for field "Schedule.purok": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Plan(); ok {
		if err := schedule.PlanValidator(v); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`ent: validator failed for field "Schedule.plan": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := schedule.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "Schedule.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Date(); ok {
		if err := schedule.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "Schedule.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := schedule.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`ent: validator failed for field "Schedule.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := schedule.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`ent: validator failed for field "Schedule.end_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WasteType(); ok {
		if err := schedule.WasteTypeValidator(v); err != nil {
			return &ValidationError{Name: "waste_type", err: fmt.Errorf(`ent: validator failed for field "Schedule.waste_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := schedule.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Schedule.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduleUpdateOne) sqlSave(ctx context.Context) (_node *Schedule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedule.Table, schedule.Columns, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Schedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schedule.FieldID)
		for _, f := range fields {
			if !schedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schedule.FieldID {
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
		_spec.SetField(schedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Purok(); ok {
		_spec.SetField(schedule.FieldPurok, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(schedule.FieldPlan, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(schedule.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(schedule.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(schedule.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(schedule.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.WasteType(); ok {
		_spec.SetField(schedule.FieldWasteType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(schedule.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RoutePoints(); ok {
		_spec.SetField(schedule.FieldRoutePoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoutePoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, schedule.FieldRoutePoints, value)
		})
	}
	if _u.mutation.RoutePointsCleared() {
		_spec.ClearField(schedule.FieldRoutePoints, field.TypeJSON)
	}
	_node = &Schedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
