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
	"kolekta.io/kolekta/ent/reportstatus"
)

// ReportStatusCreate is the builder for creating a ReportStatus entity.
type ReportStatusCreate struct {
	config
	mutation *ReportStatusMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportStatusCreate) SetCreatedAt(v time.Time) *ReportStatusCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportStatusCreate) SetNillableCreatedAt(v *time.Time) *ReportStatusCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReportStatusCreate) SetUpdatedAt(v time.Time) *ReportStatusCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReportStatusCreate) SetNillableUpdatedAt(v *time.Time) *ReportStatusCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetReportID sets the "report_id" field.
func (_c *ReportStatusCreate) SetReportID(v string) *ReportStatusCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReportStatusCreate) SetStatus(v reportstatus.Status) *ReportStatusCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReportStatusCreate) SetNillableStatus(v *reportstatus.Status) *ReportStatusCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOfficialResponse sets the "official_response" field.
func (_c *ReportStatusCreate) SetOfficialResponse(v string) *ReportStatusCreate {
	_c.mutation.SetOfficialResponse(v)
	return _c
}

// SetNillableOfficialResponse sets the "official_response" field if the given value is not nil.
func (_c *ReportStatusCreate) SetNillableOfficialResponse(v *string) *ReportStatusCreate {
	if v != nil {
		_c.SetOfficialResponse(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReportStatusCreate) SetID(v string) *ReportStatusCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ReportStatusMutation object of the builder.
func (_c *ReportStatusCreate) Mutation() *ReportStatusMutation {
	return _c.mutation
}

// Save creates the ReportStatus in the database.
func (_c *ReportStatusCreate) Save(ctx context.Context) (*ReportStatus, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportStatusCreate) SaveX(ctx context.Context) *ReportStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportStatusCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportStatusCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportStatusCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reportstatus.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reportstatus.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := reportstatus.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportStatusCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReportStatus.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReportStatus.updated_at"`)}
	}
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "ReportStatus.report_id"`)}
	}
	if v, ok := _c.mutation.ReportID(); ok {
		if err := reportstatus.ReportIDValidator(v); err != nil {
			return &ValidationError{Name: "report_id", err: fmt.Errorf(`ent: validator failed for field "ReportStatus.report_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ReportStatus.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := reportstatus.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReportStatus.status": %w`, err)}
		}
	}
	return nil
}

func (_c *ReportStatusCreate) sqlSave(ctx context.Context) (*ReportStatus, error) {
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
			return nil, fmt.Errorf("unexpected ReportStatus.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReportStatusCreate) createSpec() (*ReportStatus, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportStatus{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reportstatus.Table, sqlgraph.NewFieldSpec(reportstatus.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reportstatus.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reportstatus.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ReportID(); ok {
		_spec.SetField(reportstatus.FieldReportID, field.TypeString, value)
		_node.ReportID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reportstatus.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OfficialResponse(); ok {
		_spec.SetField(reportstatus.FieldOfficialResponse, field.TypeString, value)
		_node.OfficialResponse = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReportStatus.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportStatusUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportStatusCreate) OnConflict(opts ...sql.ConflictOption) *ReportStatusUpsertOne {
	_c.conflict = opts
	return &ReportStatusUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReportStatus.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportStatusCreate) OnConflictColumns(columns ...string) *ReportStatusUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportStatusUpsertOne{
		create: _c,
	}
}

type (
	// ReportStatusUpsertOne is the builder for "upsert"-ing
	//  one ReportStatus node.
	ReportStatusUpsertOne struct {
		create *ReportStatusCreate
	}

	// ReportStatusUpsert is the "OnConflict" setter.
	ReportStatusUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ReportStatusUpsert) SetUpdatedAt(v time.Time) *ReportStatusUpsert {
	u.Set(reportstatus.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReportStatusUpsert) UpdateUpdatedAt() *ReportStatusUpsert {
	u.SetExcluded(reportstatus.FieldUpdatedAt)
	return u
}

// SetStatus sets the "status" field.
func (u *ReportStatusUpsert) SetStatus(v reportstatus.Status) *ReportStatusUpsert {
	u.Set(reportstatus.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReportStatusUpsert) UpdateStatus() *ReportStatusUpsert {
	u.SetExcluded(reportstatus.FieldStatus)
	return u
}

// SetOfficialResponse sets the "official_response" field.
func (u *ReportStatusUpsert) SetOfficialResponse(v string) *ReportStatusUpsert {
	u.Set(reportstatus.FieldOfficialResponse, v)
	return u
}

// UpdateOfficialResponse sets the "official_response" field to the value that was provided on create.
func (u *ReportStatusUpsert) UpdateOfficialResponse() *ReportStatusUpsert {
	u.SetExcluded(reportstatus.FieldOfficialResponse)
	return u
}

// ClearOfficialResponse clears the value of the "official_response" field.
func (u *ReportStatusUpsert) ClearOfficialResponse() *ReportStatusUpsert {
	u.SetNull(reportstatus.FieldOfficialResponse)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ReportStatus.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reportstatus.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportStatusUpsertOne) UpdateNewValues() *ReportStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(reportstatus.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(reportstatus.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.ReportID(); exists {
			s.SetIgnore(reportstatus.FieldReportID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReportStatus.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReportStatusUpsertOne) Ignore() *ReportStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportStatusUpsertOne) DoNothing() *ReportStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportStatusCreate.OnConflict
// documentation for more info.
func (u *ReportStatusUpsertOne) Update(set func(*ReportStatusUpsert)) *ReportStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportStatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReportStatusUpsertOne) SetUpdatedAt(v time.Time) *ReportStatusUpsertOne {
	return u.Update(func(s *ReportStatusUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReportStatusUpsertOne) UpdateUpdatedAt() *ReportStatusUpsertOne {
	return u.Update(func(s *ReportStatusUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStatus sets the "status" field.
func (u *ReportStatusUpsertOne) SetStatus(v reportstatus.Status) *ReportStatusUpsertOne {
	return u.Update(func(s *ReportStatusUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReportStatusUpsertOne) UpdateStatus() *ReportStatusUpsertOne {
	return u.Update(func(s *ReportStatusUpsert) {
		s.UpdateStatus()
	})
}

// SetOfficialResponse sets the "official_response" field.
func (u *ReportStatusUpsertOne) SetOfficialResponse(v string) *ReportStatusUpsertOne {
	return u.Update(func(s *ReportStatusUpsert) {
		s.SetOfficialResponse(v)
	})
}

// UpdateOfficialResponse sets the "official_response" field to the value that was provided on create.
func (u *ReportStatusUpsertOne) UpdateOfficialResponse() *ReportStatusUpsertOne {
	return u.Update(func(s *ReportStatusUpsert) {
		s.UpdateOfficialResponse()
	})
}

// ClearOfficialResponse clears the value of the "official_response" field.
func (u *ReportStatusUpsertOne) ClearOfficialResponse() *ReportStatusUpsertOne {
	return u.Update(func(s *ReportStatusUpsert) {
		s.ClearOfficialResponse()
	})
}

// Exec executes the query.
func (u *ReportStatusUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportStatusCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportStatusUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReportStatusUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReportStatusUpsertOne.ID is not supported by MySQL driver. Use ReportStatusUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReportStatusUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReportStatusCreateBulk is the builder for creating many ReportStatus entities in bulk.
type ReportStatusCreateBulk struct {
	config
	err      error
	builders []*ReportStatusCreate
	conflict []sql.ConflictOption
}

// Save creates the ReportStatus entities in the database.
func (_c *ReportStatusCreateBulk) Save(ctx context.Context) ([]*ReportStatus, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReportStatus, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportStatusMutation)
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
func (_c *ReportStatusCreateBulk) SaveX(ctx context.Context) []*ReportStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportStatusCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportStatusCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReportStatus.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportStatusUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportStatusCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReportStatusUpsertBulk {
	_c.conflict = opts
	return &ReportStatusUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReportStatus.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportStatusCreateBulk) OnConflictColumns(columns ...string) *ReportStatusUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportStatusUpsertBulk{
		create: _c,
	}
}

// ReportStatusUpsertBulk is the builder for "upsert"-ing
// a bulk of ReportStatus nodes.
type ReportStatusUpsertBulk struct {
	create *ReportStatusCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReportStatus.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reportstatus.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportStatusUpsertBulk) UpdateNewValues() *ReportStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(reportstatus.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(reportstatus.FieldCreatedAt)
			}
			if _, exists := b.mutation.ReportID(); exists {
				s.SetIgnore(reportstatus.FieldReportID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReportStatus.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReportStatusUpsertBulk) Ignore() *ReportStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportStatusUpsertBulk) DoNothing() *ReportStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportStatusCreateBulk.OnConflict
// documentation for more info.
func (u *ReportStatusUpsertBulk) Update(set func(*ReportStatusUpsert)) *ReportStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportStatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReportStatusUpsertBulk) SetUpdatedAt(v time.Time) *ReportStatusUpsertBulk {
	return u.Update(func(s *ReportStatusUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReportStatusUpsertBulk) UpdateUpdatedAt() *ReportStatusUpsertBulk {
	return u.Update(func(s *ReportStatusUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStatus sets the "status" field.
func (u *ReportStatusUpsertBulk) SetStatus(v reportstatus.Status) *ReportStatusUpsertBulk {
	return u.Update(func(s *ReportStatusUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReportStatusUpsertBulk) UpdateStatus() *ReportStatusUpsertBulk {
	return u.Update(func(s *ReportStatusUpsert) {
		s.UpdateStatus()
	})
}

// SetOfficialResponse sets the "official_response" field.
func (u *ReportStatusUpsertBulk) SetOfficialResponse(v string) *ReportStatusUpsertBulk {
	return u.Update(func(s *ReportStatusUpsert) {
		s.SetOfficialResponse(v)
	})
}

// UpdateOfficialResponse sets the "official_response" field to the value that was provided on create.
func (u *ReportStatusUpsertBulk) UpdateOfficialResponse() *ReportStatusUpsertBulk {
	return u.Update(func(s *ReportStatusUpsert) {
		s.UpdateOfficialResponse()
	})
}

// ClearOfficialResponse clears the value of the "official_response" field.
func (u *ReportStatusUpsertBulk) ClearOfficialResponse() *ReportStatusUpsertBulk {
	return u.Update(func(s *ReportStatusUpsert) {
		s.ClearOfficialResponse()
	})
}

// Exec executes the query.
func (u *ReportStatusUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReportStatusCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportStatusCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportStatusUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
