// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"kolekta.io/kolekta/ent/schedule"
	"kolekta.io/kolekta/ent/schema"
)

// ScheduleCreate is the builder for creating a Schedule entity.
type ScheduleCreate struct {
	config
	mutation *ScheduleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduleCreate) SetCreatedAt(v time.Time) *ScheduleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableCreatedAt(v *time.Time) *ScheduleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScheduleCreate) SetUpdatedAt(v time.Time) *ScheduleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableUpdatedAt(v *time.Time) *ScheduleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPurok sets the "purok" field.
func (_c *ScheduleCreate) SetPurok(v string) *ScheduleCreate {
	_c.mutation.SetPurok(v)
	return _c
}

// SetPlan sets the "plan" field.
func (_c *ScheduleCreate) SetPlan(v schedule.Plan) *ScheduleCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *ScheduleCreate) SetDay(v string) *ScheduleCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *ScheduleCreate) SetDate(v string) *ScheduleCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *ScheduleCreate) SetStartTime(v string) *ScheduleCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *ScheduleCreate) SetEndTime(v string) *ScheduleCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetWasteType sets the "waste_type" field.
func (_c *ScheduleCreate) SetWasteType(v schedule.WasteType) *ScheduleCreate {
	_c.mutation.SetWasteType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduleCreate) SetStatus(v schedule.Status) *ScheduleCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableStatus(v *schedule.Status) *ScheduleCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRoutePoints sets the "route_points" field.
func (_c *ScheduleCreate) SetRoutePoints(v []schema.RoutePoint) *ScheduleCreate {
	_c.mutation.SetRoutePoints(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduleCreate) SetID(v string) *ScheduleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScheduleMutation object of the builder.
func (_c *ScheduleCreate) Mutation() *ScheduleMutation {
	return _c.mutation
}

// Save creates the Schedule in the database.
func (_c *ScheduleCreate) Save(ctx context.Context) (*Schedule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduleCreate) SaveX(ctx context.Context) *Schedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := schedule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := schedule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := schedule.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Schedule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Schedule.updated_at"`)}
	}
	if _, ok := _c.mutation.Purok(); !ok {
		return &ValidationError{Name: "purok", err: errors.New(`ent: missing required field "Schedule.purok"`)}
	}
	if v, ok := _c.mutation.Purok(); ok {
		if err := schedule.PurokValidator(v); err != nil {
			return &ValidationError{Name: "purok", err: fmt.Errorf(`ent: validator failed for field "Schedule.purok": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Plan(); !ok {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required field "Schedule.plan"`)}
	}
	if v, ok := _c.mutation.Plan(); ok {
		if err := schedule.PlanValidator(v); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`ent: validator failed for field "Schedule.plan": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "Schedule.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := schedule.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "Schedule.day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "Schedule.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := schedule.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "Schedule.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "Schedule.start_time"`)}
	}
	if v, ok := _c.mutation.StartTime(); ok {
		if err := schedule.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`ent: validator failed for field "Schedule.start_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`ent: missing required field "Schedule.end_time"`)}
	}
	if v, ok := _c.mutation.EndTime(); ok {
		if err := schedule.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`ent: validator failed for field "Schedule.end_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WasteType(); !ok {
		return &ValidationError{Name: "waste_type", err: errors.New(`ent: missing required field "Schedule.waste_type"`)}
	}
	if v, ok := _c.mutation.WasteType(); ok {
		if err := schedule.WasteTypeValidator(v); err != nil {
			return &ValidationError{Name: "waste_type", err: fmt.Errorf(`ent: validator failed for field "Schedule.waste_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Schedule.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := schedule.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Schedule.status": %w`, err)}
		}
	}
	return nil
}

func (_c *ScheduleCreate) sqlSave(ctx context.Context) (*Schedule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Schedule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduleCreate) createSpec() (*Schedule, *sqlgraph.CreateSpec) {
	var (
		_node = &Schedule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schedule.Table, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(schedule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(schedule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Purok(); ok {
		_spec.SetField(schedule.FieldPurok, field.TypeString, value)
		_node.Purok = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(schedule.FieldPlan, field.TypeEnum, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(schedule.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(schedule.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(schedule.FieldStartTime, field.TypeString, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(schedule.FieldEndTime, field.TypeString, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.WasteType(); ok {
		_spec.SetField(schedule.FieldWasteType, field.TypeEnum, value)
		_node.WasteType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(schedule.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RoutePoints(); ok {
		_spec.SetField(schedule.FieldRoutePoints, field.TypeJSON, value)
		_node.RoutePoints = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Schedule.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduleCreate) OnConflict(opts ...sql.ConflictOption) *ScheduleUpsertOne {
	_c.conflict = opts
	return &ScheduleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduleCreate) OnConflictColumns(columns ...string) *ScheduleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduleUpsertOne{
		create: _c,
	}
}

type (
	// ScheduleUpsertOne is the builder for "upsert"-ing
	//  one Schedule node.
	ScheduleUpsertOne struct {
		create *ScheduleCreate
	}

	// ScheduleUpsert is the "OnConflict" setter.
	ScheduleUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ScheduleUpsert) SetUpdatedAt(v time.Time) *ScheduleUpsert {
	u.Set(schedule.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateUpdatedAt() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldUpdatedAt)
	return u
}

// SetPurok sets the "purok" field.
func (u *ScheduleUpsert) SetPurok(v string) *ScheduleUpsert {
	u.Set(schedule.FieldPurok, v)
	return u
}

// UpdatePurok sets the "purok" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdatePurok() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldPurok)
	return u
}

// SetPlan sets the "plan" field.
func (u *ScheduleUpsert) SetPlan(v schedule.Plan) *ScheduleUpsert {
	u.Set(schedule.FieldPlan, v)
	return u
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdatePlan() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldPlan)
	return u
}

// SetDay sets the "day" field.
func (u *ScheduleUpsert) SetDay(v string) *ScheduleUpsert {
	u.Set(schedule.FieldDay, v)
	return u
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateDay() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldDay)
	return u
}

// SetDate sets the "date" field.
func (u *ScheduleUpsert) SetDate(v string) *ScheduleUpsert {
	u.Set(schedule.FieldDate, v)
	return u
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateDate() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldDate)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *ScheduleUpsert) SetStartTime(v string) *ScheduleUpsert {
	u.Set(schedule.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateStartTime() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *ScheduleUpsert) SetEndTime(v string) *ScheduleUpsert {
	u.Set(schedule.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateEndTime() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldEndTime)
	return u
}

// SetWasteType sets the "waste_type" field.
func (u *ScheduleUpsert) SetWasteType(v schedule.WasteType) *ScheduleUpsert {
	u.Set(schedule.FieldWasteType, v)
	return u
}

// UpdateWasteType sets the "waste_type" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateWasteType() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldWasteType)
	return u
}

// SetStatus sets the "status" field.
func (u *ScheduleUpsert) SetStatus(v schedule.Status) *ScheduleUpsert {
	u.Set(schedule.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateStatus() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldStatus)
	return u
}

// SetRoutePoints sets the "route_points" field.
func (u *ScheduleUpsert) SetRoutePoints(v []schema.RoutePoint) *ScheduleUpsert {
	u.Set(schedule.FieldRoutePoints, v)
	return u
}

// UpdateRoutePoints sets the "route_points" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateRoutePoints() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldRoutePoints)
	return u
}

// ClearRoutePoints clears the value of the "route_points" field.
func (u *ScheduleUpsert) ClearRoutePoints() *ScheduleUpsert {
	u.SetNull(schedule.FieldRoutePoints)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(schedule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduleUpsertOne) UpdateNewValues() *ScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(schedule.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(schedule.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Schedule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScheduleUpsertOne) Ignore() *ScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduleUpsertOne) DoNothing() *ScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduleCreate.OnConflict
// documentation for more info.
func (u *ScheduleUpsertOne) Update(set func(*ScheduleUpsert)) *ScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScheduleUpsertOne) SetUpdatedAt(v time.Time) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateUpdatedAt() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPurok sets the "purok" field.
func (u *ScheduleUpsertOne) SetPurok(v string) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetPurok(v)
	})
}

// UpdatePurok sets the "purok" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdatePurok() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdatePurok()
	})
}

// SetPlan sets the "plan" field.
func (u *ScheduleUpsertOne) SetPlan(v schedule.Plan) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdatePlan() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdatePlan()
	})
}

// SetDay sets the "day" field.
func (u *ScheduleUpsertOne) SetDay(v string) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateDay() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateDay()
	})
}

// SetDate sets the "date" field.
func (u *ScheduleUpsertOne) SetDate(v string) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateDate() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateDate()
	})
}

// SetStartTime sets the "start_time" field.
func (u *ScheduleUpsertOne) SetStartTime(v string) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateStartTime() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *ScheduleUpsertOne) SetEndTime(v string) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateEndTime() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateEndTime()
	})
}

// SetWasteType sets the "waste_type" field.
func (u *ScheduleUpsertOne) SetWasteType(v schedule.WasteType) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetWasteType(v)
	})
}

// UpdateWasteType sets the "waste_type" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateWasteType() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateWasteType()
	})
}

// SetStatus sets the "status" field.
func (u *ScheduleUpsertOne) SetStatus(v schedule.Status) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateStatus() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateStatus()
	})
}

// SetRoutePoints sets the "route_points" field.
func (u *ScheduleUpsertOne) SetRoutePoints(v []schema.RoutePoint) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetRoutePoints(v)
	})
}

// UpdateRoutePoints sets the "route_points" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateRoutePoints() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateRoutePoints()
	})
}

// ClearRoutePoints clears the value of the "route_points" field.
func (u *ScheduleUpsertOne) ClearRoutePoints() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearRoutePoints()
	})
}

// Exec executes the query.
func (u *ScheduleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScheduleUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ScheduleUpsertOne.ID is not supported by MySQL driver. Use ScheduleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScheduleUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScheduleCreateBulk is the builder for creating many Schedule entities in bulk.
type ScheduleCreateBulk struct {
	config
	err      error
	builders []*ScheduleCreate
	conflict []sql.ConflictOption
}

// Save creates the Schedule entities in the database.
func (_c *ScheduleCreateBulk) Save(ctx context.Context) ([]*Schedule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Schedule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScheduleCreateBulk) SaveX(ctx context.Context) []*Schedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Schedule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScheduleUpsertBulk {
	_c.conflict = opts
	return &ScheduleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduleCreateBulk) OnConflictColumns(columns ...string) *ScheduleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduleUpsertBulk{
		create: _c,
	}
}

// ScheduleUpsertBulk is the builder for "upsert"-ing
// a bulk of Schedule nodes.
type ScheduleUpsertBulk struct {
	create *ScheduleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(schedule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduleUpsertBulk) UpdateNewValues() *ScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(schedule.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(schedule.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScheduleUpsertBulk) Ignore() *ScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduleUpsertBulk) DoNothing() *ScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduleCreateBulk.OnConflict
// documentation for more info.
func (u *ScheduleUpsertBulk) Update(set func(*ScheduleUpsert)) *ScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScheduleUpsertBulk) SetUpdatedAt(v time.Time) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateUpdatedAt() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPurok sets the "purok" field.
func (u *ScheduleUpsertBulk) SetPurok(v string) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetPurok(v)
	})
}

// UpdatePurok sets the "purok" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdatePurok() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdatePurok()
	})
}

// SetPlan sets the "plan" field.
func (u *ScheduleUpsertBulk) SetPlan(v schedule.Plan) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdatePlan() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdatePlan()
	})
}

// SetDay sets the "day" field.
func (u *ScheduleUpsertBulk) SetDay(v string) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateDay() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateDay()
	})
}

// SetDate sets the "date" field.
func (u *ScheduleUpsertBulk) SetDate(v string) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateDate() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateDate()
	})
}

// SetStartTime sets the "start_time" field.
func (u *ScheduleUpsertBulk) SetStartTime(v string) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateStartTime() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *ScheduleUpsertBulk) SetEndTime(v string) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateEndTime() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateEndTime()
	})
}

// SetWasteType sets the "waste_type" field.
func (u *ScheduleUpsertBulk) SetWasteType(v schedule.WasteType) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetWasteType(v)
	})
}

// UpdateWasteType sets the "waste_type" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateWasteType() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateWasteType()
	})
}

// SetStatus sets the "status" field.
func (u *ScheduleUpsertBulk) SetStatus(v schedule.Status) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateStatus() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateStatus()
	})
}

// SetRoutePoints sets the "route_points" field.
func (u *ScheduleUpsertBulk) SetRoutePoints(v []schema.RoutePoint) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetRoutePoints(v)
	})
}

// UpdateRoutePoints sets the "route_points" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateRoutePoints() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateRoutePoints()
	})
}

// ClearRoutePoints clears the value of the "route_points" field.
func (u *ScheduleUpsertBulk) ClearRoutePoints() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearRoutePoints()
	})
}

// Exec executes the query.
func (u *ScheduleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ScheduleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
