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
	"kolekta.io/kolekta/ent/educationalcontent"
)

// EducationalContentCreate is the builder for creating a EducationalContent entity.
type EducationalContentCreate struct {
	config
	mutation *EducationalContentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *EducationalContentCreate) SetCreatedAt(v time.Time) *EducationalContentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EducationalContentCreate) SetNillableCreatedAt(v *time.Time) *EducationalContentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EducationalContentCreate) SetUpdatedAt(v time.Time) *EducationalContentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EducationalContentCreate) SetNillableUpdatedAt(v *time.Time) *EducationalContentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *EducationalContentCreate) SetTitle(v string) *EducationalContentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *EducationalContentCreate) SetBody(v string) *EducationalContentCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *EducationalContentCreate) SetCategory(v string) *EducationalContentCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *EducationalContentCreate) SetNillableCategory(v *string) *EducationalContentCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetPublished sets the "published" field.
func (_c *EducationalContentCreate) SetPublished(v bool) *EducationalContentCreate {
	_c.mutation.SetPublished(v)
	return _c
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_c *EducationalContentCreate) SetNillablePublished(v *bool) *EducationalContentCreate {
	if v != nil {
		_c.SetPublished(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EducationalContentCreate) SetID(v string) *EducationalContentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EducationalContentMutation object of the builder.
func (_c *EducationalContentCreate) Mutation() *EducationalContentMutation {
	return _c.mutation
}

// Save creates the EducationalContent in the database.
func (_c *EducationalContentCreate) Save(ctx context.Context) (*EducationalContent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EducationalContentCreate) SaveX(ctx context.Context) *EducationalContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EducationalContentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EducationalContentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EducationalContentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := educationalcontent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := educationalcontent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Published(); !ok {
		v := educationalcontent.DefaultPublished
		_c.mutation.SetPublished(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EducationalContentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EducationalContent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EducationalContent.updated_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "EducationalContent.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := educationalcontent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "EducationalContent.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "EducationalContent.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := educationalcontent.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "EducationalContent.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Published(); !ok {
		return &ValidationError{Name: "published", err: errors.New(`ent: missing required field "EducationalContent.published"`)}
	}
	return nil
}

func (_c *EducationalContentCreate) sqlSave(ctx context.Context) (*EducationalContent, error) {
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
			return nil, fmt.Errorf("unexpected EducationalContent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EducationalContentCreate) createSpec() (*EducationalContent, *sqlgraph.CreateSpec) {
	var (
		_node = &EducationalContent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(educationalcontent.Table, sqlgraph.NewFieldSpec(educationalcontent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(educationalcontent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(educationalcontent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(educationalcontent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(educationalcontent.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(educationalcontent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Published(); ok {
		_spec.SetField(educationalcontent.FieldPublished, field.TypeBool, value)
		_node.Published = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EducationalContent.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EducationalContentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EducationalContentCreate) OnConflict(opts ...sql.ConflictOption) *EducationalContentUpsertOne {
	_c.conflict = opts
	return &EducationalContentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EducationalContent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EducationalContentCreate) OnConflictColumns(columns ...string) *EducationalContentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EducationalContentUpsertOne{
		create: _c,
	}
}

type (
	// EducationalContentUpsertOne is the builder for "upsert"-ing
	//  one EducationalContent node.
	EducationalContentUpsertOne struct {
		create *EducationalContentCreate
	}

	// EducationalContentUpsert is the "OnConflict" setter.
	EducationalContentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *EducationalContentUpsert) SetUpdatedAt(v time.Time) *EducationalContentUpsert {
	u.Set(educationalcontent.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EducationalContentUpsert) UpdateUpdatedAt() *EducationalContentUpsert {
	u.SetExcluded(educationalcontent.FieldUpdatedAt)
	return u
}

// SetTitle sets the "title" field.
func (u *EducationalContentUpsert) SetTitle(v string) *EducationalContentUpsert {
	u.Set(educationalcontent.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EducationalContentUpsert) UpdateTitle() *EducationalContentUpsert {
	u.SetExcluded(educationalcontent.FieldTitle)
	return u
}

// SetBody sets the "body" field.
func (u *EducationalContentUpsert) SetBody(v string) *EducationalContentUpsert {
	u.Set(educationalcontent.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *EducationalContentUpsert) UpdateBody() *EducationalContentUpsert {
	u.SetExcluded(educationalcontent.FieldBody)
	return u
}

// SetCategory sets the "category" field.
func (u *EducationalContentUpsert) SetCategory(v string) *EducationalContentUpsert {
	u.Set(educationalcontent.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EducationalContentUpsert) UpdateCategory() *EducationalContentUpsert {
	u.SetExcluded(educationalcontent.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *EducationalContentUpsert) ClearCategory() *EducationalContentUpsert {
	u.SetNull(educationalcontent.FieldCategory)
	return u
}

// SetPublished sets the "published" field.
func (u *EducationalContentUpsert) SetPublished(v bool) *EducationalContentUpsert {
	u.Set(educationalcontent.FieldPublished, v)
	return u
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *EducationalContentUpsert) UpdatePublished() *EducationalContentUpsert {
	u.SetExcluded(educationalcontent.FieldPublished)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EducationalContent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(educationalcontent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EducationalContentUpsertOne) UpdateNewValues() *EducationalContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(educationalcontent.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(educationalcontent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EducationalContent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EducationalContentUpsertOne) Ignore() *EducationalContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EducationalContentUpsertOne) DoNothing() *EducationalContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EducationalContentCreate.OnConflict
// documentation for more info.
func (u *EducationalContentUpsertOne) Update(set func(*EducationalContentUpsert)) *EducationalContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EducationalContentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EducationalContentUpsertOne) SetUpdatedAt(v time.Time) *EducationalContentUpsertOne {
	return u.Update(func(s *EducationalContentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EducationalContentUpsertOne) UpdateUpdatedAt() *EducationalContentUpsertOne {
	return u.Update(func(s *EducationalContentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTitle sets the "title" field.
func (u *EducationalContentUpsertOne) SetTitle(v string) *EducationalContentUpsertOne {
	return u.Update(func(s *EducationalContentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EducationalContentUpsertOne) UpdateTitle() *EducationalContentUpsertOne {
	return u.Update(func(s *EducationalContentUpsert) {
		s.UpdateTitle()
	})
}

// SetBody sets the "body" field.
func (u *EducationalContentUpsertOne) SetBody(v string) *EducationalContentUpsertOne {
	return u.Update(func(s *EducationalContentUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *EducationalContentUpsertOne) UpdateBody() *EducationalContentUpsertOne {
	return u.Update(func(s *EducationalContentUpsert) {
		s.UpdateBody()
	})
}

// SetCategory sets the "category" field.
func (u *EducationalContentUpsertOne) SetCategory(v string) *EducationalContentUpsertOne {
	return u.Update(func(s *EducationalContentUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EducationalContentUpsertOne) UpdateCategory() *EducationalContentUpsertOne {
	return u.Update(func(s *EducationalContentUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *EducationalContentUpsertOne) ClearCategory() *EducationalContentUpsertOne {
	return u.Update(func(s *EducationalContentUpsert) {
		s.ClearCategory()
	})
}

// SetPublished sets the "published" field.
func (u *EducationalContentUpsertOne) SetPublished(v bool) *EducationalContentUpsertOne {
	return u.Update(func(s *EducationalContentUpsert) {
		s.SetPublished(v)
	})
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *EducationalContentUpsertOne) UpdatePublished() *EducationalContentUpsertOne {
	return u.Update(func(s *EducationalContentUpsert) {
		s.UpdatePublished()
	})
}

// Exec executes the query.
func (u *EducationalContentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EducationalContentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EducationalContentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EducationalContentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EducationalContentUpsertOne.ID is not supported by MySQL driver. Use EducationalContentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EducationalContentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EducationalContentCreateBulk is the builder for creating many EducationalContent entities in bulk.
type EducationalContentCreateBulk struct {
	config
	err      error
	builders []*EducationalContentCreate
	conflict []sql.ConflictOption
}

// Save creates the EducationalContent entities in the database.
func (_c *EducationalContentCreateBulk) Save(ctx context.Context) ([]*EducationalContent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EducationalContent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EducationalContentMutation)
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
func (_c *EducationalContentCreateBulk) SaveX(ctx context.Context) []*EducationalContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EducationalContentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EducationalContentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EducationalContent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EducationalContentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EducationalContentCreateBulk) OnConflict(opts ...sql.ConflictOption) *EducationalContentUpsertBulk {
	_c.conflict = opts
	return &EducationalContentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EducationalContent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EducationalContentCreateBulk) OnConflictColumns(columns ...string) *EducationalContentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EducationalContentUpsertBulk{
		create: _c,
	}
}

// EducationalContentUpsertBulk is the builder for "upsert"-ing
// a bulk of EducationalContent nodes.
type EducationalContentUpsertBulk struct {
	create *EducationalContentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EducationalContent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(educationalcontent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EducationalContentUpsertBulk) UpdateNewValues() *EducationalContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(educationalcontent.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(educationalcontent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EducationalContent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EducationalContentUpsertBulk) Ignore() *EducationalContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EducationalContentUpsertBulk) DoNothing() *EducationalContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EducationalContentCreateBulk.OnConflict
// documentation for more info.
func (u *EducationalContentUpsertBulk) Update(set func(*EducationalContentUpsert)) *EducationalContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EducationalContentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EducationalContentUpsertBulk) SetUpdatedAt(v time.Time) *EducationalContentUpsertBulk {
	return u.Update(func(s *EducationalContentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EducationalContentUpsertBulk) UpdateUpdatedAt() *EducationalContentUpsertBulk {
	return u.Update(func(s *EducationalContentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTitle sets the "title" field.
func (u *EducationalContentUpsertBulk) SetTitle(v string) *EducationalContentUpsertBulk {
	return u.Update(func(s *EducationalContentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EducationalContentUpsertBulk) UpdateTitle() *EducationalContentUpsertBulk {
	return u.Update(func(s *EducationalContentUpsert) {
		s.UpdateTitle()
	})
}

// SetBody sets the "body" field.
func (u *EducationalContentUpsertBulk) SetBody(v string) *EducationalContentUpsertBulk {
	return u.Update(func(s *EducationalContentUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *EducationalContentUpsertBulk) UpdateBody() *EducationalContentUpsertBulk {
	return u.Update(func(s *EducationalContentUpsert) {
		s.UpdateBody()
	})
}

// SetCategory sets the "category" field.
func (u *EducationalContentUpsertBulk) SetCategory(v string) *EducationalContentUpsertBulk {
	return u.Update(func(s *EducationalContentUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EducationalContentUpsertBulk) UpdateCategory() *EducationalContentUpsertBulk {
	return u.Update(func(s *EducationalContentUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *EducationalContentUpsertBulk) ClearCategory() *EducationalContentUpsertBulk {
	return u.Update(func(s *EducationalContentUpsert) {
		s.ClearCategory()
	})
}

// SetPublished sets the "published" field.
func (u *EducationalContentUpsertBulk) SetPublished(v bool) *EducationalContentUpsertBulk {
	return u.Update(func(s *EducationalContentUpsert) {
		s.SetPublished(v)
	})
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *EducationalContentUpsertBulk) UpdatePublished() *EducationalContentUpsertBulk {
	return u.Update(func(s *EducationalContentUpsert) {
		s.UpdatePublished()
	})
}

// Exec executes the query.
func (u *EducationalContentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EducationalContentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EducationalContentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EducationalContentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
