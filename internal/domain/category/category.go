// Package category holds the Category entity of the catalog: its attributes,
// its name rules, and the soft-delete lifecycle driven by Activate,
// Deactivate and Update.
package category

import (
	"log/slog"
	"time"
)

// Category is a catalog category. Identity and creation time are fixed at
// construction; every transition advances UpdatedAt.
//
// A deactivated Category is soft-deleted: IsActive is false and DeletedAt
// records when that happened.
type Category struct {
	id          ID
	name        *string
	description string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time

	now func() time.Time
}

// Option configures New and Restore.
type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() ID
}

// WithClock sets the time source used at creation and by every transition.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithIDGenerator sets the identifier source used by New.
func WithIDGenerator(gen func() ID) Option {
	return func(o *options) {
		o.newID = gen
	}
}

func applyOptions(opts []Option) *options {
	o := &options{now: time.Now, newID: NewID}
	for _, opt := range opts {
		opt(o)
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.newID == nil {
		o.newID = NewID
	}
	return o
}

// New creates a Category with a fresh ID. No validation is performed; call
// Validate explicitly. An inactive Category starts out soft-deleted at its
// creation time.
func New(name *string, description string, isActive bool, opts ...Option) *Category {
	o := applyOptions(opts)
	now := o.now()

	c := &Category{
		id:          o.newID(),
		name:        cloneString(name),
		description: description,
		active:      isActive,
		createdAt:   now,
		updatedAt:   now,
		now:         o.now,
	}
	if !isActive {
		c.deletedAt = &now
	}
	return c
}

// Restore rebuilds a Category from previously stored attributes. Nothing is
// generated and nothing is validated.
func Restore(
	id ID,
	name *string,
	description string,
	active bool,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
	opts ...Option,
) *Category {
	o := applyOptions(opts)
	return &Category{
		id:          id,
		name:        cloneString(name),
		description: description,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		deletedAt:   cloneTime(deletedAt),
		now:         o.now,
	}
}

// Activate marks the category active and clears DeletedAt.
func (c *Category) Activate() *Category {
	c.touch()
	c.active = true
	c.deletedAt = nil
	return c
}

// Deactivate marks the category inactive and stamps DeletedAt with the
// transition time. Calling it again moves DeletedAt forward.
func (c *Category) Deactivate() *Category {
	now := c.touch()
	c.active = false
	c.deletedAt = &now
	return c
}

// Update replaces name, description and the active flag. The active flag is
// applied through Activate or Deactivate so DeletedAt stays consistent.
func (c *Category) Update(name *string, description string, isActive bool) *Category {
	c.name = cloneString(name)
	c.description = description
	if isActive {
		return c.Activate()
	}
	return c.Deactivate()
}

// Clone returns an independent copy of c.
func (c *Category) Clone() *Category {
	cp := *c
	cp.name = cloneString(c.name)
	cp.deletedAt = cloneTime(c.deletedAt)
	return &cp
}

// touch advances updatedAt and returns the new value. It never returns a
// time at or before the previous updatedAt, even if the clock stalls.
func (c *Category) touch() time.Time {
	clock := c.now
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	if !now.After(c.updatedAt) {
		now = c.updatedAt.Add(time.Nanosecond)
	}
	c.updatedAt = now
	return now
}

// ID returns the category identifier.
func (c *Category) ID() ID { return c.id }

// Name returns the name, or "" when it was never set.
func (c *Category) Name() string {
	if c.name == nil {
		return ""
	}
	return *c.name
}

// HasName reports whether a name was supplied at all.
func (c *Category) HasName() bool { return c.name != nil }

// Description returns the free-form description.
func (c *Category) Description() string { return c.description }

// IsActive reports whether the category is active (not soft-deleted).
func (c *Category) IsActive() bool { return c.active }

// CreatedAt returns when the category was created.
func (c *Category) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the time of the latest transition.
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

// DeletedAt returns when the category was deactivated, or nil while active.
func (c *Category) DeletedAt() *time.Time {
	return cloneTime(c.deletedAt)
}

// LogValue implements slog.LogValuer.
func (c *Category) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("id", c.id.String()),
		slog.String("name", c.Name()),
		slog.Bool("active", c.active),
	}
	if c.deletedAt != nil {
		attrs = append(attrs, slog.Time("deleted_at", *c.deletedAt))
	}
	return slog.GroupValue(attrs...)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
