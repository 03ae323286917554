package category

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/catalog-admin/internal/domain"
	"github.com/jsamuelsen11/catalog-admin/internal/domain/validation"
)

func strPtr(s string) *string { return &s }

// stepClock returns a clock that advances by one second on every call.
func stepClock() func() time.Time {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

// fixedClock returns the same instant forever.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func fixedID(id ID) func() ID {
	return func() ID { return id }
}

// requireSingleError asserts err is a *validation.DomainError with exactly
// one error carrying msg.
func requireSingleError(t *testing.T, err error, msg string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var derr *validation.DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("errors.As(err, *DomainError) = false, got %T", err)
	}
	if len(derr.Errors) != 1 {
		t.Fatalf("DomainError.Errors has %d entries, want 1: %v", len(derr.Errors), derr.Errors)
	}
	if derr.Errors[0].Message != msg {
		t.Errorf("Errors[0].Message = %q, want %q", derr.Errors[0].Message, msg)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	c := New(strPtr("Movies"), "Some description movie", true)

	if c == nil {
		t.Fatal("New() returned nil")
	}
	if c.ID() == "" {
		t.Error("ID() is empty, want generated id")
	}
	if _, err := ParseID(c.ID().String()); err != nil {
		t.Errorf("generated ID %q is not a UUID: %v", c.ID(), err)
	}
	if c.Name() != "Movies" {
		t.Errorf("Name() = %q, want %q", c.Name(), "Movies")
	}
	if c.Description() != "Some description movie" {
		t.Errorf("Description() = %q, want %q", c.Description(), "Some description movie")
	}
	if !c.IsActive() {
		t.Error("IsActive() = false, want true")
	}
	if c.CreatedAt().IsZero() {
		t.Error("CreatedAt() is zero")
	}
	if c.UpdatedAt().IsZero() {
		t.Error("UpdatedAt() is zero")
	}
	if c.DeletedAt() != nil {
		t.Errorf("DeletedAt() = %v, want nil", c.DeletedAt())
	}
	if err := c.Validate(validation.ThrowsHandler{}); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestNew_InjectedIDAndClock(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New(strPtr("Movies"), "", true, WithIDGenerator(fixedID("cat-1")), WithClock(fixedClock(at)))

	if c.ID() != "cat-1" {
		t.Errorf("ID() = %q, want %q", c.ID(), "cat-1")
	}
	if !c.CreatedAt().Equal(at) || !c.UpdatedAt().Equal(at) {
		t.Errorf("CreatedAt/UpdatedAt = %v/%v, want %v", c.CreatedAt(), c.UpdatedAt(), at)
	}
}

func TestNew_BlankDescriptionIsValid(t *testing.T) {
	t.Parallel()

	c := New(strPtr("Movies"), " ", true)

	if err := c.Validate(validation.ThrowsHandler{}); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if c.Description() != " " {
		t.Errorf("Description() = %q, want %q", c.Description(), " ")
	}
	if c.DeletedAt() != nil {
		t.Error("DeletedAt() != nil for active category")
	}
}

func TestNew_Inactive(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New(strPtr("Movies"), " ", false, WithClock(fixedClock(at)))

	if err := c.Validate(validation.ThrowsHandler{}); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if c.IsActive() {
		t.Error("IsActive() = true, want false")
	}
	if c.DeletedAt() == nil {
		t.Fatal("DeletedAt() = nil, want creation time")
	}
	if !c.DeletedAt().Equal(at) {
		t.Errorf("DeletedAt() = %v, want %v", *c.DeletedAt(), at)
	}
}

func TestNew_DoesNotAliasName(t *testing.T) {
	t.Parallel()

	name := "Movies"
	c := New(&name, "", true)
	name = "x"

	if c.Name() != "Movies" {
		t.Errorf("Name() = %q after caller mutation, want %q", c.Name(), "Movies")
	}
}

func TestValidate_NameRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   *string
		wantMsg string
	}{
		{
			name:    "nil name",
			input:   nil,
			wantMsg: MsgNameNull,
		},
		{
			name:    "empty name",
			input:   strPtr(""),
			wantMsg: MsgNameEmpty,
		},
		{
			name:    "whitespace-only name",
			input:   strPtr(" \t\n "),
			wantMsg: MsgNameEmpty,
		},
		{
			name:    "shorter than 3 after trim",
			input:   strPtr("ab "),
			wantMsg: MsgNameLength,
		},
		{
			name:    "single character",
			input:   strPtr("a"),
			wantMsg: MsgNameLength,
		},
		{
			name:    "longer than 255",
			input:   strPtr(strings.Repeat("a", NameMaxLength+1)),
			wantMsg: MsgNameLength,
		},
		{
			name:    "multi-line text longer than 255",
			input:   strPtr(strings.Repeat("O incentivo ao avanço tecnológico\n", 10)),
			wantMsg: MsgNameLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New(tt.input, "Some description movie", true)
			requireSingleError(t, c.Validate(validation.ThrowsHandler{}), tt.wantMsg)

			n := validation.NewNotification()
			if err := c.Validate(n); err != nil {
				t.Fatalf("Validate(Notification) = %v, want nil", err)
			}
			requireSingleError(t, n.Err(), tt.wantMsg)
		})
	}
}

func TestValidate_NameBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"exactly 3", "abc"},
		{"3 with surrounding spaces", "  abc  "},
		{"exactly 255", strings.Repeat("a", NameMaxLength)},
		{"255 multibyte characters", strings.Repeat("é", NameMaxLength)},
		{"255 after trimming padding", " " + strings.Repeat("a", NameMaxLength) + " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New(strPtr(tt.input), "", true)
			if err := c.Validate(validation.ThrowsHandler{}); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestValidate_IgnoresDescriptionAndActive(t *testing.T) {
	t.Parallel()

	c := New(strPtr("Movies"), "", false)

	n := validation.NewNotification()
	if err := c.Validate(n); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if n.HasErrors() {
		t.Errorf("Notification has errors %v, want none", n.Errors())
	}
}

func TestValidate_Deterministic(t *testing.T) {
	t.Parallel()

	c := New(strPtr("ab"), "", true)

	first := c.Validate(validation.ThrowsHandler{})
	second := c.Validate(validation.ThrowsHandler{})

	if first == nil || second == nil || first.Error() != second.Error() {
		t.Errorf("repeated Validate() = %v then %v, want identical errors", first, second)
	}
}

func TestDeactivate(t *testing.T) {
	t.Parallel()

	c := New(strPtr("Movies"), " ", true, WithClock(stepClock()))
	if err := c.Validate(validation.ThrowsHandler{}); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	id := c.ID()
	createdAt := c.CreatedAt()
	updatedAt := c.UpdatedAt()

	got := c.Deactivate()

	if got.ID() != id {
		t.Errorf("ID() = %q, want %q", got.ID(), id)
	}
	if got.Name() != "Movies" || got.Description() != " " {
		t.Errorf("Name/Description = %q/%q, want unchanged", got.Name(), got.Description())
	}
	if got.IsActive() {
		t.Error("IsActive() = true, want false")
	}
	if !got.CreatedAt().Equal(createdAt) {
		t.Errorf("CreatedAt() = %v, want %v", got.CreatedAt(), createdAt)
	}
	if !got.UpdatedAt().After(updatedAt) {
		t.Errorf("UpdatedAt() = %v, want after %v", got.UpdatedAt(), updatedAt)
	}
	if got.DeletedAt() == nil {
		t.Fatal("DeletedAt() = nil, want set")
	}
	if !got.DeletedAt().Equal(got.UpdatedAt()) {
		t.Errorf("DeletedAt() = %v, want transition time %v", *got.DeletedAt(), got.UpdatedAt())
	}
	if err := c.Validate(validation.ThrowsHandler{}); err != nil {
		t.Errorf("Validate() after Deactivate = %v, want nil", err)
	}
}

func TestDeactivate_Twice_OverwritesDeletedAt(t *testing.T) {
	t.Parallel()

	c := New(strPtr("Movies"), "", true, WithClock(stepClock()))

	first := *c.Deactivate().DeletedAt()
	second := *c.Deactivate().DeletedAt()

	if !second.After(first) {
		t.Errorf("second DeletedAt %v not after first %v", second, first)
	}
}

func TestActivate(t *testing.T) {
	t.Parallel()

	c := New(strPtr("Movies"), " ", false, WithClock(stepClock()))
	if c.IsActive() || c.DeletedAt() == nil {
		t.Fatal("precondition: category should start deactivated")
	}

	id := c.ID()
	updatedAt := c.UpdatedAt()

	got := c.Activate()

	if got.ID() != id {
		t.Errorf("ID() = %q, want %q", got.ID(), id)
	}
	if !got.IsActive() {
		t.Error("IsActive() = false, want true")
	}
	if got.DeletedAt() != nil {
		t.Errorf("DeletedAt() = %v, want nil", *got.DeletedAt())
	}
	if !got.UpdatedAt().After(updatedAt) {
		t.Errorf("UpdatedAt() = %v, want after %v", got.UpdatedAt(), updatedAt)
	}
}

func TestTransitions_StalledClockStillAdvances(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New(strPtr("Movies"), "", true, WithClock(fixedClock(at)))

	prev := c.UpdatedAt()
	for i, step := range []func() *Category{c.Deactivate, c.Activate, c.Deactivate} {
		step()
		if !c.UpdatedAt().After(prev) {
			t.Fatalf("step %d: UpdatedAt() = %v, want after %v", i, c.UpdatedAt(), prev)
		}
		prev = c.UpdatedAt()
	}
}

func TestTransitions_NilClockFallsBackToNow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		make func() *Category
	}{
		{name: "zero value", make: func() *Category { return &Category{} }},
		{name: "WithClock(nil)", make: func() *Category {
			return New(strPtr("Movies"), "", true, WithClock(nil), WithIDGenerator(nil))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := tt.make()
			before := c.UpdatedAt()

			c.Deactivate()
			if c.IsActive() || c.DeletedAt() == nil {
				t.Errorf("Deactivate() active = %v deletedAt = %v, want soft-deleted", c.IsActive(), c.DeletedAt())
			}
			c.Activate()
			c.Update(strPtr("Series"), "", true)

			if !c.UpdatedAt().After(before) {
				t.Errorf("UpdatedAt() = %v, want after %v", c.UpdatedAt(), before)
			}
		})
	}
}

func TestNew_NilIDGeneratorUsesUUID(t *testing.T) {
	t.Parallel()

	c := New(strPtr("Movies"), "", true, WithIDGenerator(nil))
	if _, err := ParseID(c.ID().String()); err != nil {
		t.Errorf("ID() = %q, want a valid UUID: %v", c.ID(), err)
	}
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		startActive bool
		isActive    bool
	}{
		{"active stays active", true, true},
		{"active to inactive", true, false},
		{"inactive to active", false, true},
		{"inactive stays inactive", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New(strPtr("Filme"), "Desc", tt.startActive, WithClock(stepClock()))
			id := c.ID()
			createdAt := c.CreatedAt()
			updatedAt := c.UpdatedAt()

			got := c.Update(strPtr("Movies"), "Description", tt.isActive)

			if got.ID() != id {
				t.Errorf("ID() = %q, want %q", got.ID(), id)
			}
			if got.Name() != "Movies" {
				t.Errorf("Name() = %q, want %q", got.Name(), "Movies")
			}
			if got.Description() != "Description" {
				t.Errorf("Description() = %q, want %q", got.Description(), "Description")
			}
			if got.IsActive() != tt.isActive {
				t.Errorf("IsActive() = %v, want %v", got.IsActive(), tt.isActive)
			}
			if !got.CreatedAt().Equal(createdAt) {
				t.Errorf("CreatedAt() = %v, want %v", got.CreatedAt(), createdAt)
			}
			if !got.UpdatedAt().After(updatedAt) {
				t.Errorf("UpdatedAt() = %v, want after %v", got.UpdatedAt(), updatedAt)
			}
			if (got.DeletedAt() == nil) != tt.isActive {
				t.Errorf("DeletedAt() nil = %v, want %v", got.DeletedAt() == nil, tt.isActive)
			}
			if err := got.Validate(validation.ThrowsHandler{}); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestUpdate_DoesNotValidate(t *testing.T) {
	t.Parallel()

	c := New(strPtr("Movies"), "", true)
	c.Update(nil, "", true)

	if c.HasName() {
		t.Error("HasName() = true after Update(nil), want false")
	}
	requireSingleError(t, c.Validate(validation.ThrowsHandler{}), MsgNameNull)
}

func TestRestore(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	deleted := updated

	c := Restore("cat-9", strPtr("Series"), "desc", false, created, updated, &deleted)

	if c.ID() != "cat-9" || c.Name() != "Series" || c.Description() != "desc" || c.IsActive() {
		t.Errorf("Restore() attributes = %v, want verbatim", c.LogValue())
	}
	if !c.CreatedAt().Equal(created) || !c.UpdatedAt().Equal(updated) {
		t.Errorf("timestamps = %v/%v, want %v/%v", c.CreatedAt(), c.UpdatedAt(), created, updated)
	}
	if c.DeletedAt() == nil || !c.DeletedAt().Equal(deleted) {
		t.Errorf("DeletedAt() = %v, want %v", c.DeletedAt(), deleted)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	c := New(strPtr("Movies"), "", false, WithClock(stepClock()))
	cp := c.Clone()

	c.Update(strPtr("Series"), "changed", true)

	if cp.Name() != "Movies" || cp.IsActive() || cp.DeletedAt() == nil {
		t.Errorf("clone changed with original: %v", cp.LogValue())
	}
	if cp.ID() != c.ID() {
		t.Errorf("clone ID = %q, want %q", cp.ID(), c.ID())
	}
}

func TestDeletedAt_ReturnsCopy(t *testing.T) {
	t.Parallel()

	c := New(strPtr("Movies"), "", false)
	d := c.DeletedAt()
	*d = time.Time{}

	if c.DeletedAt().IsZero() {
		t.Error("mutating DeletedAt() result changed the entity")
	}
}

func TestLogValue(t *testing.T) {
	t.Parallel()

	c := New(strPtr("Movies"), "", false, WithIDGenerator(fixedID("cat-1")))
	v := c.LogValue()

	if v.Kind() != slog.KindGroup {
		t.Fatalf("LogValue().Kind() = %v, want Group", v.Kind())
	}

	got := make(map[string]slog.Value)
	for _, a := range v.Group() {
		got[a.Key] = a.Value
	}
	if got["id"].String() != "cat-1" {
		t.Errorf("id = %q, want %q", got["id"].String(), "cat-1")
	}
	if got["active"].Bool() {
		t.Error("active = true, want false")
	}
	if _, ok := got["deleted_at"]; !ok {
		t.Error("deleted_at missing for inactive category")
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id := NewID()
	got, err := ParseID(id.String())
	if err != nil {
		t.Fatalf("ParseID(%q) error = %v", id, err)
	}
	if got != id {
		t.Errorf("ParseID() = %q, want %q", got, id)
	}

	if _, err := ParseID("not-a-uuid"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("ParseID(invalid) error = %v, want ErrValidation", err)
	}
}
